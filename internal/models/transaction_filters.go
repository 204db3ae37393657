package models

import "github.com/shopspring/decimal"

// TransactionFilters narrows a transaction listing. Empty fields are ignored.
type TransactionFilters struct {
	StartDate string `query:"startDate" validate:"omitempty,iso_date"`
	EndDate   string `query:"endDate" validate:"omitempty,iso_date"`
	Category  string `query:"category" validate:"omitempty,category"`
	Account   string `query:"account" validate:"omitempty,bank_account"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset    int    `query:"offset" validate:"omitempty,min=0"`
}

// CategoryTotal is the summed amount for one category
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// MonthlyTotal holds income and expense sums for one YYYY-MM month
type MonthlyTotal struct {
	Month    string          `json:"month"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Summary mirrors the dashboard metrics computed over a batch
type Summary struct {
	Rows             int             `json:"rows"`
	StartingBalance  decimal.Decimal `json:"starting_balance"`
	NetWorth         decimal.Decimal `json:"net_worth"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	TotalInvestments decimal.Decimal `json:"total_investments"`
	LatestMonth      string          `json:"latest_month,omitempty"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	MonthlySavings   decimal.Decimal `json:"monthly_savings"`
	ByCategory       []CategoryTotal `json:"by_category"`
	ByMonth          []MonthlyTotal  `json:"by_month"`
}
