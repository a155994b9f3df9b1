package company

import (
	"context"

	"github.com/expenseflow/expense-backend-go/internal/domain/company"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
)

type companyServiceImpl struct {
	db          *database.DB
	companyRepo company.CompanyRepository
}

func NewCompanyService(db *database.DB, companyRepo company.CompanyRepository) company.CompanyService {
	return &companyServiceImpl{db: db, companyRepo: companyRepo}
}

// GetByID implements company.CompanyService.
func (s *companyServiceImpl) GetByID(ctx context.Context, id int64) (company.CompanyResponse, error) {
	found, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(found), nil
}

// List implements company.CompanyService.
func (s *companyServiceImpl) List(ctx context.Context, filter company.ListFilter) ([]company.CompanyResponse, error) {
	companies, err := s.companyRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return company.ToResponseList(companies), nil
}

// Create implements company.CompanyService.
func (s *companyServiceImpl) Create(ctx context.Context, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	name, baseCurrency := req.Normalized()
	created, err := s.companyRepo.Create(ctx, company.Company{Name: name, BaseCurrency: baseCurrency})
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(created), nil
}

// Update implements company.CompanyService.
func (s *companyServiceImpl) Update(ctx context.Context, id int64, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	updated, err := s.companyRepo.Update(ctx, id, req)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(updated), nil
}

// Delete implements company.CompanyService.
func (s *companyServiceImpl) Delete(ctx context.Context, id int64) (company.CompanyResponse, error) {
	deleted, err := s.companyRepo.Delete(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(deleted), nil
}
