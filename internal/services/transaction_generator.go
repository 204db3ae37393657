package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"transaction-seeder/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidRowCount = errors.New("row count must be positive")
)

type transactionGenerator struct {
	scenario models.Scenario
	expenses []models.CategoryDefinition
	income   models.CategoryDefinition
	rng      *rand.Rand
	now      func() time.Time
}

// GeneratorOption configures a transaction generator
type GeneratorOption func(*transactionGenerator)

// WithRand injects the random source used for every draw
func WithRand(rng *rand.Rand) GeneratorOption {
	return func(g *transactionGenerator) {
		g.rng = rng
	}
}

// WithSeed seeds a private random source so output is reproducible
func WithSeed(seed int64) GeneratorOption {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithClock overrides the clock used to resolve "today" windows
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *transactionGenerator) {
		g.now = now
	}
}

// NewTransactionGenerator creates a generator for the given scenario.
// Without WithRand or WithSeed the source is seeded from the wall clock.
func NewTransactionGenerator(scenario models.Scenario, opts ...GeneratorOption) (TransactionGeneratorInterface, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	income, _ := scenario.IncomeCategory()
	g := &transactionGenerator{
		scenario: scenario,
		expenses: scenario.ExpenseCategories(),
		income:   income,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return g, nil
}

// Scenario returns the scenario the generator draws from
func (g *transactionGenerator) Scenario() models.Scenario {
	return g.scenario
}

// Window resolves the scenario window against the generator clock
func (g *transactionGenerator) Window() models.DateWindow {
	return g.scenario.Window(g.now())
}

// GenerateTransactions produces exactly count records sorted by date, newest first
func (g *transactionGenerator) GenerateTransactions(count int) ([]*models.Transaction, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRowCount, count)
	}

	window := g.Window()
	transactions := make([]*models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		transactions = append(transactions, g.GenerateTransaction(window))
	}

	sortTransactionsByDate(transactions)

	return transactions, nil
}

// GenerateTransaction draws a single record. Draw order is fixed: date,
// income roll, category, detail, amount, account.
func (g *transactionGenerator) GenerateTransaction(window models.DateWindow) *models.Transaction {
	date := g.GenerateDate(window)
	def := g.SelectCategory()
	detail := def.Labels[g.rng.Intn(len(def.Labels))]
	amount := g.GenerateAmount(def)

	return &models.Transaction{
		Date:     date,
		Detail:   detail,
		Amount:   amount,
		Account:  g.SelectAccount(),
		Category: def.Name,
	}
}

// GenerateDate picks a day uniformly from the window
func (g *transactionGenerator) GenerateDate(window models.DateWindow) string {
	offset := g.rng.Intn(window.Days)
	return window.Start.AddDate(0, 0, offset).Format(models.DateLayout)
}

// SelectCategory rolls income against the scenario probability, otherwise
// picks an expense category uniformly
func (g *transactionGenerator) SelectCategory() models.CategoryDefinition {
	if g.rng.Float64() < g.scenario.IncomeProbability {
		return g.income
	}
	return g.expenses[g.rng.Intn(len(g.expenses))]
}

// GenerateAmount draws a magnitude from the category range, applies the
// category sign and rounds to the category granularity
func (g *transactionGenerator) GenerateAmount(def models.CategoryDefinition) decimal.Decimal {
	rule := def.Amount
	magnitude := rule.Min + g.rng.Int63n(rule.Max-rule.Min+1)

	signed := decimal.NewFromInt(magnitude)
	if !def.Income {
		signed = signed.Neg()
	}
	return RoundToGranularity(signed, rule.Granularity)
}

// SelectAccount picks an account uniformly, independent of category
func (g *transactionGenerator) SelectAccount() string {
	return g.scenario.Accounts[g.rng.Intn(len(g.scenario.Accounts))]
}

// RoundToGranularity rounds the signed value to the nearest multiple of
// granularity, ties to even. Zero stays zero; decimal has no negative zero.
func RoundToGranularity(value decimal.Decimal, granularity int64) decimal.Decimal {
	step := decimal.NewFromInt(granularity)
	return value.Div(step).RoundBank(0).Mul(step)
}

// sortTransactionsByDate sorts newest first, keeping generation order on ties
func sortTransactionsByDate(transactions []*models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})
}
