package domain

import "errors"

// ErrInvalidAmount indicates invalid amount.
var ErrInvalidAmount = errors.New("invalid amount")

// NonGroupExpenseName is substituted for the group name when an expense has
// no group or the group lookup fails.
const NonGroupExpenseName = "Non-group expenses"

// ExpenseShare is one participant's slice of an expense draft.
type ExpenseShare struct {
	UserID    int64  `json:"user_id"`
	PaidShare string `json:"paid_share"`
	OwedShare string `json:"owed_share"`
}

// ExpenseDraft is the not-yet-submitted expense record.
//
// Dropped lists requested participants that could not be resolved to a
// ledger user id and were left out of the shares.
type ExpenseDraft struct {
	Cost         string         `json:"cost"`
	Description  string         `json:"description"`
	CurrencyCode string         `json:"currency_code"`
	Shares       []ExpenseShare `json:"users"`
	Dropped      []string       `json:"-"`
}

// Expense is an expense record fetched from the ledger.
type Expense struct {
	ID           int64  `json:"id"`
	GroupID      int64  `json:"group_id"`
	Description  string `json:"description"`
	Cost         string `json:"cost"`
	Details      string `json:"details"`
	Date         string `json:"date"`
	CurrencyCode string `json:"currency_code"`
	CreatedBy    User   `json:"created_by"`
}

// ExpenseDetail is the flat expense projection returned to the agent.
type ExpenseDetail struct {
	ID           int64  `json:"Id of Expense"`
	Description  string `json:"Description"`
	Cost         string `json:"Cost(Expense)"`
	Details      string `json:"Details of transaction"`
	CreatedBy    string `json:"Created by"`
	Date         string `json:"Date of Expense"`
	CurrencyCode string `json:"Currency code of transaction"`
	GroupName    string `json:"Group Name"`
}

// CreateExpenseResult is the success payload of expense submission.
type CreateExpenseResult struct {
	Message   string   `json:"message"`
	ExpenseID int64    `json:"expense_id"`
	Dropped   []string `json:"-"`
}
