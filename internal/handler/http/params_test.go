package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		url    string
		wantID int64
		wantOK bool
	}{
		{"/api/companies?id=42", 42, true},
		{"/api/companies?id=abc", 0, false},
		{"/api/companies?id=", 0, false},
		{"/api/companies", 0, false},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		id, ok := parseID(r)
		assert.Equal(t, c.wantOK, ok, c.url)
		assert.Equal(t, c.wantID, id, c.url)
	}
}

func TestHasIDParam(t *testing.T) {
	assert.True(t, hasIDParam(httptest.NewRequest("GET", "/api/users?id=abc", nil)))
	assert.False(t, hasIDParam(httptest.NewRequest("GET", "/api/users?limit=5", nil)))
}

func TestParsePagination(t *testing.T) {
	cases := []struct {
		url        string
		wantLimit  int
		wantOffset int
	}{
		{"/api/expenses", 10, 0},
		{"/api/expenses?limit=25", 25, 0},
		{"/api/expenses?limit=500", 100, 0},
		{"/api/expenses?limit=0", 10, 0},
		{"/api/expenses?limit=-5", 10, 0},
		{"/api/expenses?limit=abc", 10, 0},
		{"/api/expenses?offset=30", 10, 30},
		{"/api/expenses?offset=-1", 10, 0},
		{"/api/expenses?limit=20&offset=40", 20, 40},
	}
	for _, c := range cases {
		r := httptest.NewRequest("GET", c.url, nil)
		limit, offset := parsePagination(r)
		assert.Equal(t, c.wantLimit, limit, c.url)
		assert.Equal(t, c.wantOffset, offset, c.url)
	}
}

func TestParseInt64Param(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/expenses?userId=4", nil)
	got := parseInt64Param(r, "userId")
	assert.NotNil(t, got)
	assert.Equal(t, int64(4), *got)

	assert.Nil(t, parseInt64Param(httptest.NewRequest("GET", "/api/expenses", nil), "userId"))
	assert.Nil(t, parseInt64Param(httptest.NewRequest("GET", "/api/expenses?userId=x", nil), "userId"))
}
