package company

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expenseflow/expense-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func firstCode(t *testing.T, err error) string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.First().Code
}

func TestCreateCompanyRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "Acme Corp"}
		assert.NoError(t, req.Validate())
	})

	t.Run("valid with currency", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "Acme Corp", BaseCurrency: strPtr("eur")}
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "   "}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "MISSING_REQUIRED_FIELD", firstCode(t, err))
	})

	t.Run("name too short", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "A"}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "INVALID_NAME_LENGTH", firstCode(t, err))
	})

	t.Run("invalid currency", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "Acme Corp", BaseCurrency: strPtr("BTC")}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "INVALID_CURRENCY", firstCode(t, err))
	})
}

func TestCreateCompanyRequest_Normalized(t *testing.T) {
	t.Run("defaults to USD", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "  Acme Corp  "}
		name, baseCurrency := req.Normalized()
		assert.Equal(t, "Acme Corp", name)
		assert.Equal(t, "USD", baseCurrency)
	})

	t.Run("uppercases currency", func(t *testing.T) {
		req := CreateCompanyRequest{Name: "Acme Corp", BaseCurrency: strPtr("eur")}
		_, baseCurrency := req.Normalized()
		assert.Equal(t, "EUR", baseCurrency)
	})
}

func TestUpdateCompanyRequest_Validate(t *testing.T) {
	t.Run("empty update is valid", func(t *testing.T) {
		req := UpdateCompanyRequest{}
		assert.NoError(t, req.Validate())
	})

	t.Run("name too short", func(t *testing.T) {
		req := UpdateCompanyRequest{Name: strPtr(" X ")}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "INVALID_NAME_LENGTH", firstCode(t, err))
	})

	t.Run("invalid currency", func(t *testing.T) {
		req := UpdateCompanyRequest{BaseCurrency: strPtr("XYZ")}
		err := req.Validate()
		require.Error(t, err)
		assert.Equal(t, "INVALID_CURRENCY", firstCode(t, err))
	})
}
