package domain

import "strings"

// Screen identifies a navigable view in the presentation layer.
type Screen string

const (
	ScreenDashboard       Screen = "DASHBOARD"
	ScreenPRList          Screen = "PR_LIST"
	ScreenPRDetail        Screen = "PR_DETAIL"
	ScreenPRForm          Screen = "PR_FORM"
	ScreenPOList          Screen = "PO_LIST"
	ScreenPODetail        Screen = "PO_DETAIL"
	ScreenPOForm          Screen = "PO_FORM"
	ScreenVendorList      Screen = "VENDOR_LIST"
	ScreenVendorDetail    Screen = "VENDOR_DETAIL"
	ScreenVendorForm      Screen = "VENDOR_FORM"
	ScreenApprovalsList   Screen = "APPROVALS_LIST"
	ScreenAdminSettings   Screen = "ADMIN_SETTINGS"
	ScreenPaymentTracking Screen = "PAYMENT_TRACKING_LIST"
	ScreenProfile         Screen = "PROFILE"
	ScreenLogin           Screen = "LOGIN"
)

var screens = map[Screen]struct{}{
	ScreenDashboard:       {},
	ScreenPRList:          {},
	ScreenPRDetail:        {},
	ScreenPRForm:          {},
	ScreenPOList:          {},
	ScreenPODetail:        {},
	ScreenPOForm:          {},
	ScreenVendorList:      {},
	ScreenVendorDetail:    {},
	ScreenVendorForm:      {},
	ScreenApprovalsList:   {},
	ScreenAdminSettings:   {},
	ScreenPaymentTracking: {},
	ScreenProfile:         {},
	ScreenLogin:           {},
}

// ParseScreen returns the screen id for a given code (case-insensitive).
func ParseScreen(s string) (Screen, bool) {
	screen := Screen(strings.ToUpper(strings.TrimSpace(s)))
	_, ok := screens[screen]

	return screen, ok
}

// IsDetail reports whether the screen renders a single entity by id.
func (s Screen) IsDetail() bool {
	return strings.HasSuffix(string(s), "_DETAIL")
}
