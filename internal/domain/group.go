package domain

// Group holds ledger group data.
type Group struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Member is the normalized record of a user enrolled into a group.
type Member struct {
	ID    int64  `json:"Id"`
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

// EnrollUserParams is the input data to add one user to a group.
type EnrollUserParams struct {
	GroupID   int64  `json:"group_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// CreateGroupResult is the payload of group provisioning.
//
// MembersAdded accumulates in enrollment order. When enrollment fails midway
// the result holds every member enrolled before the failure; nothing is
// rolled back on the remote service.
type CreateGroupResult struct {
	Message      string   `json:"message,omitempty"`
	GroupID      int64    `json:"group_id"`
	GroupName    string   `json:"group_name"`
	MembersAdded []Member `json:"members_added"`
}
