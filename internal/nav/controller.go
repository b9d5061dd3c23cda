// Package nav holds the per-session navigation state machine: the current
// view, role-gated transitions and the breadcrumb trail.
package nav

import (
	"errors"
	"strings"
	"sync"

	"github.com/procureflow/backend-go/internal/access"
	"github.com/procureflow/backend-go/internal/domain"
)

var (
	// ErrAccessDenied is returned when the target screen is not in the
	// current role's allowed set. The view state is left unchanged.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotSignedIn is returned when navigation is attempted without a
	// signed-in user.
	ErrNotSignedIn = errors.New("no signed-in user")
)

// Crumb is one element of the breadcrumb trail. Every crumb except the
// last is a navigation target.
type Crumb struct {
	Label  string            `json:"label"`
	Screen domain.Screen     `json:"screen"`
	Params map[string]string `json:"params,omitempty"`
}

// Controller owns a ViewState exclusively; the view is mutated only
// through Navigate (and reset on logout).
type Controller struct {
	mu   sync.Mutex
	user *domain.User
	view domain.ViewState
}

// NewController starts a signed-in session on the dashboard.
func NewController(user domain.User) *Controller {
	return &Controller{
		user: &user,
		view: domain.ViewState{Screen: domain.ScreenDashboard, Params: map[string]string{}},
	}
}

// User returns the signed-in user, if any.
func (c *Controller) User() (domain.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return domain.User{}, false
	}

	return *c.user, true
}

// View returns the current view state.
func (c *Controller) View() domain.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cloneView(c.view)
}

// Navigate switches to the target screen if the signed-in user's role
// allows it. On denial the view is unchanged and the error surfaces to
// the caller; nothing is retried.
func (c *Controller) Navigate(screen domain.Screen, params map[string]string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return ErrNotSignedIn
	}
	if !access.HasAccess(c.user.Role, screen) {
		return ErrAccessDenied
	}

	if params == nil {
		params = map[string]string{}
	}
	c.view = cloneView(domain.ViewState{Screen: screen, Params: params})

	return nil
}

// Logout clears the user and forces the view to the login screen. Until
// a new session is created every screen is denied.
func (c *Controller) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = nil
	c.view = domain.ViewState{Screen: domain.ScreenLogin, Params: map[string]string{}}
}

var screenLabels = map[domain.Screen]string{
	domain.ScreenPRList:          "Purchase Requests",
	domain.ScreenPRDetail:        "PR Details",
	domain.ScreenPOList:          "Purchase Orders",
	domain.ScreenPODetail:        "PO Details",
	domain.ScreenVendorList:      "Vendors",
	domain.ScreenVendorDetail:    "Vendor Details",
	domain.ScreenApprovalsList:   "My Approvals",
	domain.ScreenAdminSettings:   "Admin Settings",
	domain.ScreenPaymentTracking: "Payment Tracking",
}

var detailEntityNames = map[domain.Screen]string{
	domain.ScreenPRDetail:     "PR",
	domain.ScreenPODetail:     "PO",
	domain.ScreenVendorDetail: "Vendor",
}

// Breadcrumbs derives the trail from the current view: a fixed Home
// crumb, then the screen's label. Detail screens with an id collapse the
// generic label into one that embeds the entity id.
func (c *Controller) Breadcrumbs() []Crumb {
	c.mu.Lock()
	view := cloneView(c.view)
	c.mu.Unlock()

	crumbs := []Crumb{{Label: "Home", Screen: domain.ScreenDashboard}}
	if view.Screen == domain.ScreenDashboard {
		return crumbs
	}

	label := screenLabel(view.Screen, view.Params)
	if view.Screen.IsDetail() {
		if id := view.Params["id"]; id != "" {
			if entity, ok := detailEntityNames[view.Screen]; ok {
				label = entity + " #" + id
			}
		}
	}

	return append(crumbs, Crumb{Label: label, Screen: view.Screen, Params: view.Params})
}

func screenLabel(screen domain.Screen, params map[string]string) string {
	// Form labels depend on whether an entity is being edited.
	editing := params["id"] != ""
	switch screen {
	case domain.ScreenPRForm:
		if editing {
			return "Edit PR"
		}
		return "New PR"
	case domain.ScreenPOForm:
		if editing {
			return "Edit PO"
		}
		return "New PO"
	case domain.ScreenVendorForm:
		if editing {
			return "Edit Vendor"
		}
		return "New Vendor"
	}

	if label, ok := screenLabels[screen]; ok {
		return label
	}

	return humanize(string(screen))
}

// humanize turns an unmapped screen id like SOME_SCREEN into "Some Screen".
func humanize(id string) string {
	words := strings.Split(strings.ToLower(id), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}

func cloneView(view domain.ViewState) domain.ViewState {
	params := make(map[string]string, len(view.Params))
	for k, v := range view.Params {
		params[k] = v
	}

	return domain.ViewState{Screen: view.Screen, Params: params}
}
