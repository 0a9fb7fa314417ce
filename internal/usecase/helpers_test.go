package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"
)

func day(year int, month time.Month, d int) *time.Time {
	t := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var fixedNow = time.Date(2025, 1, 2, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }
