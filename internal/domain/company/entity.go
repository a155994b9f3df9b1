package company

import "time"

type Company struct {
	ID           int64
	Name         string
	BaseCurrency string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
