package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/seed"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/session"
	"github.com/procureflow/backend-go/internal/store"
)

type testEnv struct {
	router *gin.Engine
	t      *testing.T
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(seed.Generate(seed.Config{
		PurchaseRequests: 7,
		PurchaseOrders:   8,
		Vendors:          6,
		Seed:             1,
	}))
	sessions := session.NewManager()
	services := &Services{
		PRService:        service.NewPRService(st),
		POService:        service.NewPOService(st),
		VendorService:    service.NewVendorService(st),
		DashboardService: service.NewDashboardService(st),
	}

	return &testEnv{router: NewRouter(st, sessions, services, nil), t: t}
}

func (e *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	return w
}

func (e *testEnv) login(role string) string {
	e.t.Helper()

	w := e.do(http.MethodPost, "/api/v1/auth/login", "", gin.H{"role": role})
	if w.Code != http.StatusOK {
		e.t.Fatalf("login as %s: status %d body %s", role, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		e.t.Fatalf("decode login response: %v", err)
	}

	return resp.Token
}

func TestHealth(t *testing.T) {
	env := setupTest(t)

	if w := env.do(http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health status = %d", w.Code)
	}
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	env := setupTest(t)

	if w := env.do(http.MethodGet, "/api/v1/prs", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if w := env.do(http.MethodGet, "/api/v1/prs", "bogus", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for unknown token", w.Code)
	}
}

func TestNavigateDeniedKeepsView(t *testing.T) {
	env := setupTest(t)
	token := env.login("EMPLOYEE")

	w := env.do(http.MethodPost, "/api/v1/session/navigate", token, gin.H{"screen": "ADMIN_SETTINGS"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}

	w = env.do(http.MethodGet, "/api/v1/session/view", token, nil)
	var view struct {
		Screen string `json:"screen"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	if view.Screen != "DASHBOARD" {
		t.Errorf("view = %s, want DASHBOARD after denied navigation", view.Screen)
	}
}

func TestNavigateAndBreadcrumbs(t *testing.T) {
	env := setupTest(t)
	token := env.login("EMPLOYEE")

	w := env.do(http.MethodPost, "/api/v1/session/navigate", token,
		gin.H{"screen": "PR_DETAIL", "params": gin.H{"id": "AB12"}})
	if w.Code != http.StatusOK {
		t.Fatalf("navigate status = %d body %s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodGet, "/api/v1/session/breadcrumbs", token, nil)
	var crumbs []struct {
		Label string `json:"label"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &crumbs); err != nil {
		t.Fatalf("decode crumbs: %v", err)
	}
	if len(crumbs) != 2 || crumbs[0].Label != "Home" || crumbs[1].Label != "PR #AB12" {
		t.Errorf("crumbs = %+v", crumbs)
	}
}

func TestCreatePRLifecycle(t *testing.T) {
	env := setupTest(t)
	employee := env.login("EMPLOYEE")

	w := env.do(http.MethodPost, "/api/v1/prs", employee, gin.H{
		"title":       "Laptops",
		"description": "Replacement laptops for the IT team",
		"department":  "IT",
		"amount":      "1200.00",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body %s", w.Code, w.Body.String())
	}

	var pr struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		CurrentStage string `json:"current_stage"`
		RequestedBy  string `json:"requested_by"`
		AuditLog     []struct {
			Action string `json:"action"`
		} `json:"audit_log"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pr); err != nil {
		t.Fatalf("decode PR: %v", err)
	}
	if pr.Status != "PENDING" || pr.CurrentStage != "submitted" {
		t.Errorf("new PR = status %s stage %s", pr.Status, pr.CurrentStage)
	}
	if pr.RequestedBy != "Alice Employee" {
		t.Errorf("requested by = %q", pr.RequestedBy)
	}
	if len(pr.AuditLog) != 1 || pr.AuditLog[0].Action != "Created PR" {
		t.Errorf("audit log = %+v", pr.AuditLog)
	}

	// Approval is role-gated: the employee is refused, the manager is not.
	if w := env.do(http.MethodPost, "/api/v1/prs/"+pr.ID+"/approve", employee, nil); w.Code != http.StatusForbidden {
		t.Errorf("employee approve status = %d, want 403", w.Code)
	}

	manager := env.login("MANAGER")
	if w := env.do(http.MethodPost, "/api/v1/prs/"+pr.ID+"/approve", manager, nil); w.Code != http.StatusOK {
		t.Fatalf("manager approve status = %d body %s", w.Code, w.Body.String())
	}

	w = env.do(http.MethodGet, "/api/v1/prs/"+pr.ID+"/workflow", manager, nil)
	var stages []struct {
		ID        string `json:"id"`
		Active    bool   `json:"active"`
		Completed bool   `json:"completed"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stages); err != nil {
		t.Fatalf("decode stages: %v", err)
	}
	if len(stages) != 5 {
		t.Fatalf("stage count = %d, want 5", len(stages))
	}
	if !stages[4].Active || stages[4].ID != "approved" {
		t.Errorf("terminal stage = %+v", stages[4])
	}
}

func TestCreatePRValidation(t *testing.T) {
	env := setupTest(t)
	token := env.login("EMPLOYEE")

	// Missing title.
	w := env.do(http.MethodPost, "/api/v1/prs", token, gin.H{
		"description": "x", "department": "IT", "amount": "10.00",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for missing title", w.Code)
	}

	// Non-positive amount.
	w = env.do(http.MethodPost, "/api/v1/prs", token, gin.H{
		"title": "x", "description": "y", "department": "IT", "amount": "-5",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for negative amount", w.Code)
	}
}

func TestUpdateMissingPRIsNotFound(t *testing.T) {
	env := setupTest(t)
	token := env.login("MANAGER")

	w := env.do(http.MethodPut, "/api/v1/prs/NOPE", token, gin.H{"title": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestVendorValidationRequiresEmail(t *testing.T) {
	env := setupTest(t)
	token := env.login("PROCUREMENT_OFFICER")

	w := env.do(http.MethodPost, "/api/v1/vendors", token, gin.H{
		"name": "Global Suppliers Ltd.", "contact_person": "John Doe",
		"email": "not-an-email", "phone": "1", "address": "a", "category": "IT Services",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed email", w.Code)
	}
}

func TestPaymentsGatedByRole(t *testing.T) {
	env := setupTest(t)

	finance := env.login("FINANCE_TEAM")
	if w := env.do(http.MethodGet, "/api/v1/payments", finance, nil); w.Code != http.StatusOK {
		t.Errorf("finance payments status = %d", w.Code)
	}

	employee := env.login("EMPLOYEE")
	if w := env.do(http.MethodGet, "/api/v1/payments", employee, nil); w.Code != http.StatusForbidden {
		t.Errorf("employee payments status = %d, want 403", w.Code)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	env := setupTest(t)
	token := env.login("ADMIN")

	if w := env.do(http.MethodPost, "/api/v1/auth/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	if w := env.do(http.MethodGet, "/api/v1/session/view", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 after logout", w.Code)
	}
}

func TestDashboardSummary(t *testing.T) {
	env := setupTest(t)
	token := env.login("ADMIN")

	w := env.do(http.MethodGet, "/api/v1/dashboard", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}

	var summary struct {
		TotalPRs   int `json:"total_prs"`
		TotalPOs   int `json:"total_pos"`
		Activities []struct {
			Type string `json:"type"`
		} `json:"activities"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.TotalPRs == 0 || summary.TotalPOs == 0 {
		t.Errorf("summary counts empty: %+v", summary)
	}
	if len(summary.Activities) != 5 {
		t.Errorf("activities = %d, want 5", len(summary.Activities))
	}
}
