package company

import "context"

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (Company, error)
	List(ctx context.Context, filter ListFilter) ([]Company, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, req UpdateCompanyRequest) (Company, error)
	Delete(ctx context.Context, id int64) (Company, error)
}
