package entity

import "github.com/shopspring/decimal"

// Employee is a staff record. Payroll and attendance modules are future
// features; the list is carried in the persisted state and its size feeds the
// insights prompt.
type Employee struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       string          `json:"role"`
	Salary     decimal.Decimal `json:"salary"`
	JoinDate   string          `json:"join_date"`
	Attendance float64         `json:"attendance"`
}
