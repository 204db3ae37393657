package models

import (
	"errors"
	"fmt"
	"time"
)

// Scenario names
const (
	ScenarioRecent     = "recent"
	ScenarioHistorical = "historical"
)

const (
	DateLayout = "2006-01-02"

	recentWindowDays     = 181
	historicalWindowDays = 366

	incomeGranularity  = 100000
	expenseGranularity = 1000
)

var (
	ErrUnknownScenario = errors.New("unknown scenario")
	ErrInvalidScenario = errors.New("invalid scenario")
)

// historicalWindowStart anchors the historical scenario to the 2024 calendar year
var historicalWindowStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// AmountRule describes how the magnitude of an amount is drawn and rounded.
// Min and Max are inclusive and non-negative; the sign comes from the category.
type AmountRule struct {
	Min         int64
	Max         int64
	Granularity int64
}

// CategoryDefinition ties a category to its labels and amount rule
type CategoryDefinition struct {
	Name   string
	Labels []string
	Amount AmountRule
	Income bool
}

// DateWindow is a run of consecutive days starting at Start
type DateWindow struct {
	Start time.Time
	Days  int
}

// End returns the last day inside the window
func (w DateWindow) End() time.Time {
	return w.Start.AddDate(0, 0, w.Days-1)
}

// Contains reports whether an ISO date string falls inside the window
func (w DateWindow) Contains(date string) bool {
	return date >= w.Start.Format(DateLayout) && date <= w.End().Format(DateLayout)
}

// Scenario bundles every table the generator reads. Scenarios are values:
// constructors build fresh copies and nothing mutates them afterwards.
type Scenario struct {
	Name              string
	IncomeProbability float64
	DefaultRows       int
	Categories        []CategoryDefinition
	Accounts          []string

	// window resolves the date window against the current time
	window func(now time.Time) DateWindow
}

// Window returns the scenario's date window relative to now
func (s Scenario) Window(now time.Time) DateWindow {
	if s.window == nil {
		return DateWindow{}
	}
	return s.window(now)
}

// IncomeCategory returns the single income definition
func (s Scenario) IncomeCategory() (CategoryDefinition, bool) {
	for _, def := range s.Categories {
		if def.Income {
			return def, true
		}
	}
	return CategoryDefinition{}, false
}

// ExpenseCategories returns the expense definitions in table order
func (s Scenario) ExpenseCategories() []CategoryDefinition {
	expenses := make([]CategoryDefinition, 0, len(s.Categories))
	for _, def := range s.Categories {
		if !def.Income {
			expenses = append(expenses, def)
		}
	}
	return expenses
}

// Definition looks up a category definition by name
func (s Scenario) Definition(category string) (CategoryDefinition, bool) {
	for _, def := range s.Categories {
		if def.Name == category {
			return def, true
		}
	}
	return CategoryDefinition{}, false
}

// Validate checks the scenario tables for values the generator cannot use
func (s Scenario) Validate() error {
	if s.IncomeProbability < 0 || s.IncomeProbability > 1 {
		return fmt.Errorf("%w: income probability %v outside [0,1]", ErrInvalidScenario, s.IncomeProbability)
	}
	if s.window == nil {
		return fmt.Errorf("%w: no date window", ErrInvalidScenario)
	}
	if days := s.window(time.Now()).Days; days < 1 {
		return fmt.Errorf("%w: date window of %d days", ErrInvalidScenario, days)
	}

	if len(s.Accounts) == 0 {
		return fmt.Errorf("%w: no accounts", ErrInvalidScenario)
	}

	incomeCount := 0
	for _, def := range s.Categories {
		if def.Income {
			incomeCount++
		}
		if len(def.Labels) == 0 {
			return fmt.Errorf("%w: category %s has no labels", ErrInvalidScenario, def.Name)
		}
		if err := def.Amount.validate(); err != nil {
			return fmt.Errorf("%w: category %s: %v", ErrInvalidScenario, def.Name, err)
		}
	}

	if incomeCount != 1 {
		return fmt.Errorf("%w: expected exactly one income category, found %d", ErrInvalidScenario, incomeCount)
	}
	if len(s.Categories) == incomeCount {
		return fmt.Errorf("%w: no expense categories", ErrInvalidScenario)
	}
	return nil
}

func (r AmountRule) validate() error {
	if r.Min < 0 {
		return fmt.Errorf("negative minimum %d", r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("minimum %d above maximum %d", r.Min, r.Max)
	}
	if r.Granularity <= 0 {
		return fmt.Errorf("granularity must be positive, got %d", r.Granularity)
	}
	return nil
}

// WithWindow returns a copy of the scenario using a fixed window
func (s Scenario) WithWindow(window DateWindow) Scenario {
	s.window = func(time.Time) DateWindow { return window }
	return s
}

// WithCategories returns a copy of the scenario using the given definitions
func (s Scenario) WithCategories(categories []CategoryDefinition) Scenario {
	s.Categories = categories
	return s
}

// RecentScenario covers the 181 days ending today with a 10% income rate
func RecentScenario() Scenario {
	return Scenario{
		Name:              ScenarioRecent,
		IncomeProbability: 0.10,
		DefaultRows:       200,
		Categories:        defaultCategoryDefinitions(),
		Accounts:          AllAccounts(),
		window: func(now time.Time) DateWindow {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			return DateWindow{
				Start: today.AddDate(0, 0, -(recentWindowDays - 1)),
				Days:  recentWindowDays,
			}
		},
	}
}

// HistoricalScenario covers calendar year 2024 with a 7% income rate
func HistoricalScenario() Scenario {
	return Scenario{
		Name:              ScenarioHistorical,
		IncomeProbability: 0.07,
		DefaultRows:       800,
		Categories:        defaultCategoryDefinitions(),
		Accounts:          AllAccounts(),
		window: func(time.Time) DateWindow {
			return DateWindow{Start: historicalWindowStart, Days: historicalWindowDays}
		},
	}
}

// AllScenarioNames lists the preset scenario names
func AllScenarioNames() []string {
	return []string{ScenarioRecent, ScenarioHistorical}
}

// LookupScenario returns the preset with the given name
func LookupScenario(name string) (Scenario, error) {
	switch name {
	case ScenarioRecent:
		return RecentScenario(), nil
	case ScenarioHistorical:
		return HistoricalScenario(), nil
	default:
		return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
}

func defaultCategoryDefinitions() []CategoryDefinition {
	labels := CategoryLabels()

	daily := AmountRule{Min: 10000, Max: 500000, Granularity: expenseGranularity}
	rules := map[string]AmountRule{
		CategoryFood:          daily,
		CategoryTransport:     daily,
		CategoryShopping:      daily,
		CategoryBills:         {Min: 100000, Max: 2000000, Granularity: expenseGranularity},
		CategorySalary:        {Min: 5000000, Max: 50000000, Granularity: incomeGranularity},
		CategoryInvestment:    {Min: 1000000, Max: 10000000, Granularity: expenseGranularity},
		CategoryEntertainment: daily,
	}

	definitions := make([]CategoryDefinition, 0, len(rules))
	for _, category := range AllCategories() {
		definitions = append(definitions, CategoryDefinition{
			Name:   category,
			Labels: labels[category],
			Amount: rules[category],
			Income: category == CategorySalary,
		})
	}
	return definitions
}
