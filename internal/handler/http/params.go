package http

import (
	"net/http"
	"strconv"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// parseID reads the ?id= query parameter. ok is false when the parameter is
// absent or not a valid integer.
func parseID(r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// hasIDParam reports whether the request addresses a single entity.
func hasIDParam(r *http.Request) bool {
	return r.URL.Query().Get("id") != ""
}

// parsePagination reads limit/offset with the shared defaults: limit 10,
// clamped to 100; offset 0, never negative.
func parsePagination(r *http.Request) (limit, offset int) {
	limit = defaultLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed > 0 {
			offset = parsed
		}
	}
	return limit, offset
}

// parseInt64Param reads an optional integer query parameter, nil when absent
// or unparseable.
func parseInt64Param(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
