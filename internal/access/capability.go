package access

import "github.com/procureflow/backend-go/internal/domain"

// Action identifies a mutation that is gated independently of screen
// access, so permission checks live in one table instead of being
// scattered across handlers.
type Action string

const (
	ActionCreatePR     Action = "pr.create"
	ActionUpdatePR     Action = "pr.update"
	ActionApprovePR    Action = "pr.approve"
	ActionRejectPR     Action = "pr.reject"
	ActionCreatePO     Action = "po.create"
	ActionUpdatePO     Action = "po.update"
	ActionCreateVendor Action = "vendor.create"
	ActionUpdateVendor Action = "vendor.update"
	ActionTrackPayment Action = "payment.track"
	ActionAdminSetting Action = "admin.settings"
)

var actionRoles = map[Action][]domain.Role{
	ActionCreatePR: {
		domain.RoleAdmin,
		domain.RoleManager,
		domain.RoleProcurementOfficer,
		domain.RoleEmployee,
	},
	ActionUpdatePR: {
		domain.RoleAdmin,
		domain.RoleManager,
		domain.RoleProcurementOfficer,
		domain.RoleEmployee,
	},
	ActionApprovePR:    {domain.RoleAdmin, domain.RoleManager},
	ActionRejectPR:     {domain.RoleAdmin, domain.RoleManager},
	ActionCreatePO:     {domain.RoleProcurementOfficer},
	ActionUpdatePO:     {domain.RoleProcurementOfficer},
	ActionCreateVendor: {domain.RoleProcurementOfficer},
	ActionUpdateVendor: {domain.RoleProcurementOfficer},
	ActionTrackPayment: {domain.RoleAdmin, domain.RoleFinanceTeam},
	ActionAdminSetting: {domain.RoleAdmin},
}

// Can reports whether the role may perform the action. Unknown actions
// and roles are denied.
func Can(role domain.Role, action Action) bool {
	for _, allowed := range actionRoles[action] {
		if allowed == role {
			return true
		}
	}

	return false
}
