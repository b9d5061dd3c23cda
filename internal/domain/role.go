package domain

import "strings"

// Role identifies one of the fixed demo roles. No role inherits another's
// permissions; each allowed-screen set is enumerated explicitly.
type Role string

const (
	RoleAdmin              Role = "ADMIN"
	RoleManager            Role = "MANAGER"
	RoleProcurementOfficer Role = "PROCUREMENT_OFFICER"
	RoleEmployee           Role = "EMPLOYEE"
	RoleFinanceTeam        Role = "FINANCE_TEAM"
)

var roles = map[Role]struct{}{
	RoleAdmin:              {},
	RoleManager:            {},
	RoleProcurementOfficer: {},
	RoleEmployee:           {},
	RoleFinanceTeam:        {},
}

// ParseRole returns the role for a given code (case-insensitive).
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := roles[role]

	return role, ok
}
