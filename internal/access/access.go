// Package access holds the static role-based access tables: which screens
// a role may open and which actions a role may perform. Unknown roles,
// screens and actions are denied by default.
package access

import "github.com/procureflow/backend-go/internal/domain"

var roleScreens = map[domain.Role][]domain.Screen{
	domain.RoleAdmin: {
		domain.ScreenDashboard,
		domain.ScreenPRList,
		domain.ScreenPRDetail,
		domain.ScreenPRForm,
		domain.ScreenPOList,
		domain.ScreenPODetail,
		domain.ScreenVendorList,
		domain.ScreenVendorDetail,
		domain.ScreenAdminSettings,
	},
	domain.RoleManager: {
		domain.ScreenDashboard,
		domain.ScreenPRList,
		domain.ScreenPRDetail,
		domain.ScreenPRForm,
		domain.ScreenApprovalsList,
		domain.ScreenPOList,
		domain.ScreenPODetail,
		domain.ScreenVendorList,
		domain.ScreenVendorDetail,
	},
	domain.RoleProcurementOfficer: {
		domain.ScreenDashboard,
		domain.ScreenPRList,
		domain.ScreenPRDetail,
		domain.ScreenPRForm,
		domain.ScreenPOList,
		domain.ScreenPODetail,
		domain.ScreenPOForm,
		domain.ScreenVendorList,
		domain.ScreenVendorDetail,
		domain.ScreenVendorForm,
	},
	domain.RoleEmployee: {
		domain.ScreenDashboard,
		domain.ScreenPRList,
		domain.ScreenPRDetail,
		domain.ScreenPRForm,
	},
	domain.RoleFinanceTeam: {
		domain.ScreenDashboard,
		domain.ScreenPOList,
		domain.ScreenPODetail,
		domain.ScreenPaymentTracking,
	},
}

// HasAccess reports whether the role may open the screen. An undefined
// role or unlisted screen returns false.
func HasAccess(role domain.Role, screen domain.Screen) bool {
	for _, allowed := range roleScreens[role] {
		if allowed == screen {
			return true
		}
	}

	return false
}

// ScreensFor returns a copy of the role's allowed-screen set.
func ScreensFor(role domain.Role) []domain.Screen {
	allowed := roleScreens[role]
	out := make([]domain.Screen, len(allowed))
	copy(out, allowed)

	return out
}
