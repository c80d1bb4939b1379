package services

import (
	"github.com/shopspring/decimal"

	"investio/internal/pagination"
)

func pageRequest(page, size int) pagination.PageRequest {
	return pagination.PageRequest{Page: page, PageSize: size}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
