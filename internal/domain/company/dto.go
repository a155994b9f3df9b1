package company

import (
	"strings"
	"time"

	"github.com/expenseflow/expense-backend-go/internal/domain/currency"
	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

type CompanyResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	BaseCurrency string    `json:"baseCurrency"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		BaseCurrency: c.BaseCurrency,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func ToResponseList(companies []Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, ToResponse(c))
	}
	return out
}

type CreateCompanyRequest struct {
	Name         string  `json:"name"`
	BaseCurrency *string `json:"baseCurrency,omitempty"`
}

func (r *CreateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Code:    "MISSING_REQUIRED_FIELD",
			Message: "Company name is required",
		})
	} else if len(strings.TrimSpace(r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Code:    "INVALID_NAME_LENGTH",
			Message: "Company name must be at least 2 characters long",
		})
	}

	if r.BaseCurrency != nil && !currency.IsValid(*r.BaseCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "baseCurrency",
			Code:    "INVALID_CURRENCY",
			Message: "Invalid currency code. Must be one of: " + currency.List(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Normalized returns the trimmed name and the uppercased currency, defaulting
// to USD when no currency was provided.
func (r *CreateCompanyRequest) Normalized() (name, baseCurrency string) {
	name = strings.TrimSpace(r.Name)
	baseCurrency = currency.Default
	if r.BaseCurrency != nil {
		baseCurrency = currency.Normalize(*r.BaseCurrency)
	}
	return name, baseCurrency
}

type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty"`
	BaseCurrency *string `json:"baseCurrency,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Code:    "INVALID_NAME_LENGTH",
			Message: "Company name must be at least 2 characters long",
		})
	}

	if r.BaseCurrency != nil && !currency.IsValid(*r.BaseCurrency) {
		errs = append(errs, validator.ValidationError{
			Field:   "baseCurrency",
			Code:    "INVALID_CURRENCY",
			Message: "Invalid currency code. Must be one of: " + currency.List(),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	Search string
	Sort   string
	Order  string
	Limit  int
	Offset int
}

type DeleteCompanyResponse struct {
	Message        string          `json:"message"`
	DeletedCompany CompanyResponse `json:"deletedCompany"`
}
