package access

import (
	"testing"

	"github.com/procureflow/backend-go/internal/domain"
)

func TestHasAccess(t *testing.T) {
	tests := []struct {
		name   string
		role   domain.Role
		screen domain.Screen
		want   bool
	}{
		{"employee dashboard", domain.RoleEmployee, domain.ScreenDashboard, true},
		{"employee pr form", domain.RoleEmployee, domain.ScreenPRForm, true},
		{"employee admin settings", domain.RoleEmployee, domain.ScreenAdminSettings, false},
		{"employee po list", domain.RoleEmployee, domain.ScreenPOList, false},
		{"admin settings", domain.RoleAdmin, domain.ScreenAdminSettings, true},
		{"admin po form", domain.RoleAdmin, domain.ScreenPOForm, false},
		{"manager approvals", domain.RoleManager, domain.ScreenApprovalsList, true},
		{"manager payment tracking", domain.RoleManager, domain.ScreenPaymentTracking, false},
		{"procurement vendor form", domain.RoleProcurementOfficer, domain.ScreenVendorForm, true},
		{"finance payment tracking", domain.RoleFinanceTeam, domain.ScreenPaymentTracking, true},
		{"finance pr list", domain.RoleFinanceTeam, domain.ScreenPRList, false},
		{"unknown role", domain.Role("INTERN"), domain.ScreenDashboard, false},
		{"unknown screen", domain.RoleAdmin, domain.Screen("REPORTS"), false},
		{"profile unlisted for all", domain.RoleAdmin, domain.ScreenProfile, false},
		{"login unlisted for all", domain.RoleManager, domain.ScreenLogin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAccess(tt.role, tt.screen); got != tt.want {
				t.Errorf("HasAccess(%s, %s) = %v, want %v", tt.role, tt.screen, got, tt.want)
			}
		})
	}
}

func TestHasAccessIsDeterministic(t *testing.T) {
	for role := range roleScreens {
		for _, screen := range roleScreens[role] {
			for i := 0; i < 3; i++ {
				if !HasAccess(role, screen) {
					t.Fatalf("HasAccess(%s, %s) flipped to false", role, screen)
				}
			}
		}
	}
}

func TestCan(t *testing.T) {
	tests := []struct {
		name   string
		role   domain.Role
		action Action
		want   bool
	}{
		{"manager approves pr", domain.RoleManager, ActionApprovePR, true},
		{"admin rejects pr", domain.RoleAdmin, ActionRejectPR, true},
		{"employee approves pr", domain.RoleEmployee, ActionApprovePR, false},
		{"employee creates pr", domain.RoleEmployee, ActionCreatePR, true},
		{"procurement creates po", domain.RoleProcurementOfficer, ActionCreatePO, true},
		{"manager creates po", domain.RoleManager, ActionCreatePO, false},
		{"procurement updates vendor", domain.RoleProcurementOfficer, ActionUpdateVendor, true},
		{"finance tracks payments", domain.RoleFinanceTeam, ActionTrackPayment, true},
		{"finance creates vendor", domain.RoleFinanceTeam, ActionCreateVendor, false},
		{"admin settings", domain.RoleAdmin, ActionAdminSetting, true},
		{"unknown action", domain.RoleAdmin, Action("pr.delete"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Can(tt.role, tt.action); got != tt.want {
				t.Errorf("Can(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}

func TestScreensForReturnsCopy(t *testing.T) {
	first := ScreensFor(domain.RoleEmployee)
	first[0] = domain.ScreenAdminSettings

	if HasAccess(domain.RoleEmployee, domain.ScreenAdminSettings) {
		t.Fatal("mutating ScreensFor result leaked into the access table")
	}
}
