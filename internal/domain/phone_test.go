package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5511987654321", NormalizePhone("+55 (11) 98765-4321"))
	assert.Equal(t, "", NormalizePhone("n/a"))
}

func TestIsNotifiablePhone(t *testing.T) {
	assert.True(t, IsNotifiablePhone("(11) 98765-4321"))
	assert.True(t, IsNotifiablePhone("1198765432"))
	assert.False(t, IsNotifiablePhone("98765-432"))
	assert.False(t, IsNotifiablePhone(""))
}

func TestSummarize(t *testing.T) {
	summary := Summarize([]Transaction{
		{Type: TransactionIncome, Amount: 45},
		{Type: TransactionIncome, Amount: 70},
		{Type: TransactionExpense, Amount: 20},
	})

	assert.Equal(t, 115.0, summary.Income)
	assert.Equal(t, 20.0, summary.Expense)
	assert.Equal(t, 95.0, summary.Balance)
}
