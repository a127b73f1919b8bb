package model

const (
	RoleManager = "manager"
	RoleGuest   = "guest"
)

// Principal is the operator issuing a request.
type Principal struct {
	Role string
}

func (p Principal) IsManager() bool {
	return p.Role == RoleManager
}
