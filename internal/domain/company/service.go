package company

import "context"

type CompanyService interface {
	GetByID(ctx context.Context, id int64) (CompanyResponse, error)
	List(ctx context.Context, filter ListFilter) ([]CompanyResponse, error)
	Create(ctx context.Context, req CreateCompanyRequest) (CompanyResponse, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) (CompanyResponse, error)
	Delete(ctx context.Context, id int64) (CompanyResponse, error)
}
