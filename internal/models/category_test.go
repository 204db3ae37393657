package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabels(t *testing.T) {
	labels := CategoryLabels()

	assert.Len(t, labels, len(AllCategories()))
	for _, category := range AllCategories() {
		assert.NotEmpty(t, labels[category], category)
	}
	assert.Equal(t, []string{"Monthly Salary", "Bonus", "Freelance Project"}, labels[CategorySalary])

	labels[CategoryFood] = nil
	assert.NotEmpty(t, CategoryLabels()[CategoryFood])
}

func TestIsValidCategory(t *testing.T) {
	for _, category := range AllCategories() {
		assert.True(t, IsValidCategory(category), category)
	}
	assert.False(t, IsValidCategory("food"))
	assert.False(t, IsValidCategory(""))
}

func TestIsValidAccount(t *testing.T) {
	assert.Equal(t, []string{"BCA", "Mandiri", "Jenius", "GoPay", "OVO"}, AllAccounts())
	assert.True(t, IsValidAccount(AccountJenius))
	assert.False(t, IsValidAccount("bca"))
}

func TestIsValidDetail(t *testing.T) {
	assert.True(t, IsValidDetail(CategoryShopping, "H&M"))
	assert.True(t, IsValidDetail(CategoryBills, "Apartment Maintenance"))
	assert.False(t, IsValidDetail(CategoryFood, "Netflix"))
	assert.False(t, IsValidDetail("Health", "Gym"))
}
