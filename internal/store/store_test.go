package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/procureflow/backend-go/internal/domain"
)

func TestCreatePRDefaults(t *testing.T) {
	s := New(nil)

	pr := s.CreatePR("Alice Employee", PRFields{
		Title:      "Laptops",
		Department: "IT",
		Amount:     "1200.00",
	})

	if pr.ID == "" {
		t.Error("expected a generated id")
	}
	if pr.Status != domain.StatusPending {
		t.Errorf("status = %s, want PENDING", pr.Status)
	}
	if pr.CurrentStage != "submitted" {
		t.Errorf("current stage = %q, want submitted", pr.CurrentStage)
	}
	if pr.RequestedBy != "Alice Employee" {
		t.Errorf("requested by = %q", pr.RequestedBy)
	}
	if pr.SubmissionDate != time.Now().Format(dateLayout) {
		t.Errorf("submission date = %q", pr.SubmissionDate)
	}
	if pr.Currency != "USD" {
		t.Errorf("currency default = %q, want USD", pr.Currency)
	}
	if len(pr.AuditLog) != 1 {
		t.Fatalf("audit log length = %d, want 1", len(pr.AuditLog))
	}
	if !strings.Contains(pr.AuditLog[0].Action, "Created PR") {
		t.Errorf("audit action = %q, want it to mention Created PR", pr.AuditLog[0].Action)
	}
}

func TestUpdatePRAppendsOneAuditEntry(t *testing.T) {
	s := New(nil)
	pr := s.CreatePR("Alice Employee", PRFields{Title: "Monitors", Department: "IT", Amount: "400.00"})

	title := "Monitors (27in)"
	updated, err := s.UpdatePR("Bob Manager", pr.ID, domain.PRPatch{Title: &title})
	if err != nil {
		t.Fatalf("UpdatePR: %v", err)
	}

	if updated.Title != title {
		t.Errorf("title = %q, want %q", updated.Title, title)
	}
	if len(updated.AuditLog) != len(pr.AuditLog)+1 {
		t.Errorf("audit log length = %d, want %d", len(updated.AuditLog), len(pr.AuditLog)+1)
	}
	last := updated.AuditLog[len(updated.AuditLog)-1]
	if !strings.Contains(last.Action, "Status: PENDING") {
		t.Errorf("audit action = %q, want resulting status embedded", last.Action)
	}
	if last.User != "Bob Manager" {
		t.Errorf("audit user = %q", last.User)
	}
}

func TestUpdatePRNotFound(t *testing.T) {
	s := New(nil)
	s.CreatePR("Alice Employee", PRFields{Title: "Desks", Department: "HR", Amount: "900.00"})
	before := s.ListPRs()

	title := "x"
	_, err := s.UpdatePR("Alice Employee", "NOPE", domain.PRPatch{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	after := s.ListPRs()
	if len(after) != len(before) {
		t.Error("failed update changed the collection size")
	}
	for i := range before {
		if len(after[i].AuditLog) != len(before[i].AuditLog) {
			t.Error("failed update appended an audit entry")
		}
	}
}

func TestApprovePR(t *testing.T) {
	s := New(nil)
	pr := s.CreatePR("Alice Employee", PRFields{Title: "Laptops", Department: "IT", Amount: "1200.00"})

	approved, err := s.ApprovePR("Bob Manager", pr.ID)
	if err != nil {
		t.Fatalf("ApprovePR: %v", err)
	}

	if approved.Status != domain.StatusApproved {
		t.Errorf("status = %s, want APPROVED", approved.Status)
	}
	if approved.ApprovalDate != time.Now().Format(dateLayout) {
		t.Errorf("approval date = %q", approved.ApprovalDate)
	}
	if approved.CurrentStage != "approved" {
		t.Errorf("current stage = %q, want approved", approved.CurrentStage)
	}
	if len(approved.AuditLog) != 2 {
		t.Errorf("audit log length = %d, want 2", len(approved.AuditLog))
	}
}

func TestRejectPRParksAtTerminalStage(t *testing.T) {
	s := New(nil)
	pr := s.CreatePR("Alice Employee", PRFields{Title: "Travel", Department: "Marketing", Amount: "3000.00"})

	rejected, err := s.RejectPR("Bob Manager", pr.ID)
	if err != nil {
		t.Fatalf("RejectPR: %v", err)
	}

	if rejected.Status != domain.StatusRejected {
		t.Errorf("status = %s, want REJECTED", rejected.Status)
	}
	if rejected.CurrentStage != "approved" {
		t.Errorf("current stage = %q, want terminal stage approved", rejected.CurrentStage)
	}
	if rejected.ApprovalDate != "" {
		t.Errorf("approval date = %q, want empty on rejection", rejected.ApprovalDate)
	}
}

func TestUpdatePRRecomputesStageFromStatus(t *testing.T) {
	s := New(nil)
	pr := s.CreatePR("Alice Employee", PRFields{Title: "Software", Department: "IT", Amount: "250.00"})

	status := domain.StatusInReview
	updated, err := s.UpdatePR("Bob Manager", pr.ID, domain.PRPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdatePR: %v", err)
	}
	if updated.CurrentStage != "manager_review" {
		t.Errorf("current stage = %q, want manager_review", updated.CurrentStage)
	}
}

func TestUpdatePRReplacesAttachments(t *testing.T) {
	s := New(nil)
	pr := s.CreatePR("Alice Employee", PRFields{
		Title:       "Chairs",
		Department:  "Operations",
		Amount:      "700.00",
		Attachments: []domain.Attachment{{Name: "Quotation.pdf", URL: "#"}},
	})

	replacement := []domain.Attachment{{Name: "Invoice.pdf", URL: "#"}}
	updated, err := s.UpdatePR("Alice Employee", pr.ID, domain.PRPatch{Attachments: &replacement})
	if err != nil {
		t.Fatalf("UpdatePR: %v", err)
	}

	if len(updated.Attachments) != 1 || updated.Attachments[0].Name != "Invoice.pdf" {
		t.Errorf("attachments = %v, want replaced wholesale", updated.Attachments)
	}
}

func TestCreatePODefaults(t *testing.T) {
	s := New(nil)

	po := s.CreatePO("Charlie Procurement", POFields{
		PRID:       "PR1",
		VendorID:   "VEN1",
		VendorName: "Global Suppliers Ltd.",
		Item:       "Laptops x10",
		PONumber:   "PO-1000",
		Amount:     "12000.00",
	})

	if po.Status != domain.StatusDraft {
		t.Errorf("status = %s, want DRAFT", po.Status)
	}
	if po.CurrentStage != "draft" {
		t.Errorf("current stage = %q, want draft", po.CurrentStage)
	}
	if po.IssueDate != time.Now().Format(dateLayout) {
		t.Errorf("issue date = %q", po.IssueDate)
	}
	if len(po.AuditLog) != 1 || !strings.Contains(po.AuditLog[0].Action, "Created PO") {
		t.Errorf("audit log = %v", po.AuditLog)
	}
}

func TestUpdatePORecomputesStage(t *testing.T) {
	s := New(nil)
	po := s.CreatePO("Charlie Procurement", POFields{PONumber: "PO-1001", Item: "Desks", Amount: "5000.00"})

	status := domain.StatusPaid
	updated, err := s.UpdatePO("Diana Finance", po.ID, domain.POPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdatePO: %v", err)
	}
	if updated.CurrentStage != "paid" {
		t.Errorf("current stage = %q, want paid", updated.CurrentStage)
	}

	// COMPLETED maps to no stage; the stored stage must not drift.
	status = domain.StatusCompleted
	updated, err = s.UpdatePO("Diana Finance", po.ID, domain.POPatch{Status: &status})
	if err != nil {
		t.Fatalf("UpdatePO: %v", err)
	}
	if updated.CurrentStage != "paid" {
		t.Errorf("current stage = %q, want unchanged paid", updated.CurrentStage)
	}
	if len(updated.AuditLog) != 3 {
		t.Errorf("audit log length = %d, want 3", len(updated.AuditLog))
	}
}

func TestCreateVendorDefaults(t *testing.T) {
	s := New(nil)

	vendor := s.CreateVendor("Charlie Procurement", VendorFields{
		Name:          "Global Suppliers Ltd.",
		ContactPerson: "John Doe",
		Email:         "contact@globalsuppliers.com",
		Phone:         "+1-555-1000",
		Address:       "100 Business St",
		Category:      "IT Services",
	})

	if vendor.Status != domain.StatusDraft {
		t.Errorf("status = %s, want DRAFT", vendor.Status)
	}
	if vendor.OnboardingDate != time.Now().Format(dateLayout) {
		t.Errorf("onboarding date = %q", vendor.OnboardingDate)
	}
	if vendor.Contracts != 0 {
		t.Errorf("contracts = %d, want 0", vendor.Contracts)
	}
	if vendor.PerformanceScore != "" {
		t.Errorf("performance score = %q, want unset", vendor.PerformanceScore)
	}
	if len(vendor.AuditLog) != 1 || !strings.Contains(vendor.AuditLog[0].Action, "Created Vendor") {
		t.Errorf("audit log = %v", vendor.AuditLog)
	}
}

func TestUpdateVendorNotFound(t *testing.T) {
	s := New(nil)

	name := "x"
	if _, err := s.UpdateVendor("Eve Admin", "NOPE", domain.VendorPatch{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListPRsReturnsCopies(t *testing.T) {
	s := New(nil)
	s.CreatePR("Alice Employee", PRFields{Title: "Laptops", Department: "IT", Amount: "1200.00"})

	first := s.ListPRs()
	first[0].Title = "tampered"
	first[0].AuditLog[0].Action = "tampered"

	fresh := s.ListPRs()
	if fresh[0].Title == "tampered" || fresh[0].AuditLog[0].Action == "tampered" {
		t.Error("mutating a listed record leaked into the store")
	}
}

func TestSeededDatasetIsCopied(t *testing.T) {
	dataset := &domain.Dataset{
		PurchaseRequests: []domain.PurchaseRequest{{
			ID:       "PR1",
			Title:    "Seeded",
			Status:   domain.StatusPending,
			AuditLog: []domain.AuditEntry{{ID: "A1", Action: "Created PR"}},
		}},
		Users: []domain.User{{ID: "usr-1", Name: "Alice Employee", Role: domain.RoleEmployee}},
	}
	s := New(dataset)

	dataset.PurchaseRequests[0].Title = "tampered"

	pr, err := s.GetPR("PR1")
	if err != nil {
		t.Fatalf("GetPR: %v", err)
	}
	if pr.Title != "Seeded" {
		t.Errorf("title = %q, store shares memory with the seed dataset", pr.Title)
	}

	if _, err := s.UserByRole(domain.RoleEmployee); err != nil {
		t.Errorf("UserByRole: %v", err)
	}
}
