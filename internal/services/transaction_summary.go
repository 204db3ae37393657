package services

import (
	"sort"

	"transaction-seeder/internal/models"

	"github.com/shopspring/decimal"
)

// InitialNetWorth is the opening balance the dashboard metrics start from
const InitialNetWorth = 1000000000

type transactionSummarizer struct {
	startingBalance decimal.Decimal
}

// NewTransactionSummarizer creates a summarizer starting from InitialNetWorth
func NewTransactionSummarizer() TransactionSummarizerInterface {
	return &transactionSummarizer{
		startingBalance: decimal.NewFromInt(InitialNetWorth),
	}
}

// Summarize computes batch totals and the metrics for the latest month.
// Investment outflows count as investments, not expenses.
func (s *transactionSummarizer) Summarize(transactions []*models.Transaction) models.Summary {
	summary := models.Summary{
		Rows:             len(transactions),
		StartingBalance:  s.startingBalance,
		NetWorth:         s.startingBalance,
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		TotalInvestments: decimal.Zero,
		MonthlyIncome:    decimal.Zero,
		MonthlyExpenses:  decimal.Zero,
		MonthlySavings:   decimal.Zero,
		ByCategory:       []models.CategoryTotal{},
		ByMonth:          []models.MonthlyTotal{},
	}
	if len(transactions) == 0 {
		return summary
	}

	categoryTotals := make(map[string]*models.CategoryTotal)
	monthTotals := make(map[string]*models.MonthlyTotal)

	for _, t := range transactions {
		summary.NetWorth = summary.NetWorth.Add(t.Amount)
		addCategoryTotal(categoryTotals, t)
		addMonthlyTotal(monthTotals, t)

		month := monthOf(t.Date)
		if month > summary.LatestMonth {
			summary.LatestMonth = month
		}

		switch {
		case t.Category == models.CategoryInvestment:
			summary.TotalInvestments = summary.TotalInvestments.Add(t.Amount.Abs())
		case t.Amount.IsPositive():
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case t.Amount.IsNegative():
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount.Abs())
		}
	}

	for _, t := range transactions {
		if monthOf(t.Date) != summary.LatestMonth || t.Category == models.CategoryInvestment {
			continue
		}
		if t.Amount.IsPositive() {
			summary.MonthlyIncome = summary.MonthlyIncome.Add(t.Amount)
		} else if t.Amount.IsNegative() {
			summary.MonthlyExpenses = summary.MonthlyExpenses.Add(t.Amount.Abs())
		}
	}
	summary.MonthlySavings = summary.MonthlyIncome.Sub(summary.MonthlyExpenses)

	for _, category := range models.AllCategories() {
		if total, ok := categoryTotals[category]; ok {
			summary.ByCategory = append(summary.ByCategory, *total)
		}
	}

	for _, total := range monthTotals {
		summary.ByMonth = append(summary.ByMonth, *total)
	}
	sort.Slice(summary.ByMonth, func(i, j int) bool {
		return summary.ByMonth[i].Month < summary.ByMonth[j].Month
	})

	return summary
}

func addCategoryTotal(totals map[string]*models.CategoryTotal, t *models.Transaction) {
	total, ok := totals[t.Category]
	if !ok {
		total = &models.CategoryTotal{Category: t.Category, Total: decimal.Zero}
		totals[t.Category] = total
	}
	total.Total = total.Total.Add(t.Amount)
	total.Count++
}

func addMonthlyTotal(totals map[string]*models.MonthlyTotal, t *models.Transaction) {
	month := monthOf(t.Date)
	total, ok := totals[month]
	if !ok {
		total = &models.MonthlyTotal{Month: month, Income: decimal.Zero, Expenses: decimal.Zero}
		totals[month] = total
	}
	if t.Amount.IsPositive() {
		total.Income = total.Income.Add(t.Amount)
	} else {
		total.Expenses = total.Expenses.Add(t.Amount.Abs())
	}
}

func monthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
