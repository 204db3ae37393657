package models

// Transaction categories used by the sample dataset
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryBills         = "Bills"
	CategorySalary        = "Salary"
	CategoryInvestment    = "Investment"
	CategoryEntertainment = "Entertainment"
)

// Bank accounts a generated transaction can be booked against
const (
	AccountBCA     = "BCA"
	AccountMandiri = "Mandiri"
	AccountJenius  = "Jenius"
	AccountGoPay   = "GoPay"
	AccountOVO     = "OVO"
)

// AllCategories returns all valid categories in table order
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryBills,
		CategorySalary,
		CategoryInvestment,
		CategoryEntertainment,
	}
}

// AllAccounts returns the fixed account set
func AllAccounts() []string {
	return []string{
		AccountBCA,
		AccountMandiri,
		AccountJenius,
		AccountGoPay,
		AccountOVO,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// IsValidAccount checks if an account label belongs to the fixed account set
func IsValidAccount(account string) bool {
	for _, validAccount := range AllAccounts() {
		if account == validAccount {
			return true
		}
	}
	return false
}

// CategoryLabels returns the transaction detail labels for every category.
// A fresh map is built on each call so callers cannot mutate the tables.
func CategoryLabels() map[string][]string {
	return map[string][]string{
		CategoryFood:          {"Gofood", "GrabFood", "Indomaret", "Alfamart", "Warung Makan", "Starbucks", "Kopi Kenangan", "Hokben"},
		CategoryTransport:     {"Gojek", "Grab", "Bluebird", "Shell", "Pertamina", "Parking"},
		CategoryShopping:      {"Tokopedia", "Shopee", "Uniqlo", "H&M", "Grand Indonesia", "Ace Hardware"},
		CategoryBills:         {"PLN Token", "Telkomsel", "Indihome", "BPJS", "Apartment Maintenance"},
		CategorySalary:        {"Monthly Salary", "Bonus", "Freelance Project"},
		CategoryInvestment:    {"Bibit", "Ajaib", "Stockbit", "Pluang"},
		CategoryEntertainment: {"Netflix", "Spotify", "CGV Cinema", "XXI Premiere"},
	}
}

// IsValidDetail reports whether detail is one of the labels of category
func IsValidDetail(category, detail string) bool {
	for _, label := range CategoryLabels()[category] {
		if label == detail {
			return true
		}
	}
	return false
}
