package enum

// TransactionType tags a ledger entry as money in or money out.
type TransactionType string

const (
	TransactionTypeSale    TransactionType = "SALE"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a recognized transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeSale || t == TransactionTypeExpense
}

func (t TransactionType) String() string {
	return string(t)
}
