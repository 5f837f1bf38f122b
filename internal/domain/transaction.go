package domain

import "time"

// TransactionType тип финансовой операции
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid проверяет, что тип известен
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction запись финансового журнала.
// AppointmentID задан только у доходов, порождённых подтверждением записи
type Transaction struct {
	ID            string
	AppointmentID *string
	Title         string
	Type          TransactionType
	Amount        float64
	Date          time.Time
	CreatedAt     time.Time
}

// TransactionFilter фильтр журнала
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
	Type *TransactionType
}

// LedgerSummary сводка по журналу
type LedgerSummary struct {
	Income  float64
	Expense float64
	Balance float64
}

// Summarize считает сводку по списку операций
func Summarize(transactions []Transaction) LedgerSummary {
	var summary LedgerSummary
	for _, t := range transactions {
		switch t.Type {
		case TransactionIncome:
			summary.Income += t.Amount
		case TransactionExpense:
			summary.Expense += t.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary
}
