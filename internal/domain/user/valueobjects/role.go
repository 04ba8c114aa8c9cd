package valueobjects

import "fmt"

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleManager       Role = "manager"
	RoleAgent         Role = "agent"
	RoleCustomer      Role = "customer"
)

var validRoles = map[Role]bool{
	RoleAdministrator: true,
	RoleManager:       true,
	RoleAgent:         true,
	RoleCustomer:      true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

func (r Role) IsManager() bool {
	return r == RoleManager
}

func (r Role) IsAgent() bool {
	return r == RoleAgent
}

func (r Role) IsCustomer() bool {
	return r == RoleCustomer
}

// IsStaff reports whether the role can manage tickets beyond its own.
func (r Role) IsStaff() bool {
	return r == RoleAdministrator || r == RoleManager || r == RoleAgent
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
