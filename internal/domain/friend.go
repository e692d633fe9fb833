package domain

// User holds the identity fields of a ledger account.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Balance is one (currency, amount) pair of a friend's outstanding balance.
type Balance struct {
	CurrencyCode string `json:"currency_code"`
	Amount       string `json:"amount"`
}

// Friend is a roster entry of the authenticated account.
type Friend struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Balances  []Balance `json:"balance"`
}

// FriendBalance is the flat friend projection returned to the agent.
//
// Balance is the amount of the first balance entry; multi-currency balances
// beyond the first entry are not supported.
type FriendBalance struct {
	Name    string `json:"Name"`
	ID      int64  `json:"Id"`
	Balance string `json:"Balance"`
}

// IdentityMap maps display first names to ledger user ids. It is built fresh
// per invocation and never outlives the call; duplicate first names collapse
// to a single entry, last write wins.
type IdentityMap map[string]int64
