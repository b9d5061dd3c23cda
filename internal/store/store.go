// Package store owns the in-memory PR, PO and vendor collections. All
// mutations go through its methods: each one merges the change, appends
// exactly one audit entry and recomputes the derived workflow stage in a
// single critical section, so callers observe either the whole mutation
// or nothing.
package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/workflow"
)

const dateLayout = "2006-01-02"

type Store struct {
	mu         sync.RWMutex
	prs        []domain.PurchaseRequest
	pos        []domain.PurchaseOrder
	vendors    []domain.Vendor
	users      []domain.User
	activities []domain.Activity
}

// New builds a store seeded from the dataset. The store keeps its own
// copies; the caller's dataset is not retained.
func New(dataset *domain.Dataset) *Store {
	s := &Store{}
	if dataset == nil {
		return s
	}

	s.prs = make([]domain.PurchaseRequest, len(dataset.PurchaseRequests))
	for i, pr := range dataset.PurchaseRequests {
		s.prs[i] = clonePR(pr)
	}
	s.pos = make([]domain.PurchaseOrder, len(dataset.PurchaseOrders))
	for i, po := range dataset.PurchaseOrders {
		s.pos[i] = clonePO(po)
	}
	s.vendors = make([]domain.Vendor, len(dataset.Vendors))
	for i, v := range dataset.Vendors {
		s.vendors[i] = cloneVendor(v)
	}
	s.users = append(s.users, dataset.Users...)
	s.activities = append(s.activities, dataset.Activities...)

	return s
}

func newID() string {
	// Short uppercase ids match the seeded record format.
	return strings.ToUpper(uuid.NewString()[:8])
}

func auditEntry(user, action string) domain.AuditEntry {
	return domain.AuditEntry{
		ID:        newID(),
		Timestamp: time.Now().Format(time.RFC3339),
		User:      user,
		Action:    action,
	}
}

// --- Purchase Requests ---

// PRFields carries caller-supplied fields for a new PR; validation runs
// in the form layer before the store is called.
type PRFields struct {
	Title       string
	Description string
	Department  string
	Amount      string
	Currency    string
	Attachments []domain.Attachment
}

func (s *Store) ListPRs() []domain.PurchaseRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PurchaseRequest, len(s.prs))
	for i, pr := range s.prs {
		out[i] = clonePR(pr)
	}

	return out
}

func (s *Store) GetPR(id string) (domain.PurchaseRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, pr := range s.prs {
		if pr.ID == id {
			return clonePR(pr), nil
		}
	}

	return domain.PurchaseRequest{}, ErrNotFound
}

// CreatePR appends a new purchase request. New PRs always start as
// PENDING with the submitted stage and a single creation audit entry.
func (s *Store) CreatePR(actor string, fields PRFields) domain.PurchaseRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency := fields.Currency
	if currency == "" {
		currency = "USD"
	}
	stage, _ := workflow.StageForStatus(domain.EntityPurchaseRequest, domain.StatusPending)

	pr := domain.PurchaseRequest{
		ID:                  newID(),
		Title:               fields.Title,
		Description:         fields.Description,
		RequestedBy:         actor,
		Department:          fields.Department,
		Amount:              fields.Amount,
		Currency:            currency,
		Status:              domain.StatusPending,
		SubmissionDate:      time.Now().Format(dateLayout),
		ManagerApproval:     "Pending",
		ProcurementApproval: "Pending",
		CurrentStage:        stage,
		Attachments:         append([]domain.Attachment(nil), fields.Attachments...),
		AuditLog:            []domain.AuditEntry{auditEntry(actor, "Created PR")},
	}
	s.prs = append(s.prs, pr)

	return clonePR(pr)
}

// UpdatePR merges the patch into the PR, recomputes the workflow stage
// from the resulting status and appends one audit entry.
func (s *Store) UpdatePR(actor, id string, patch domain.PRPatch) (domain.PurchaseRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.prs {
		if s.prs[i].ID != id {
			continue
		}
		pr := &s.prs[i]
		applyPRPatch(pr, patch)
		if stage, ok := workflow.StageForStatus(domain.EntityPurchaseRequest, pr.Status); ok {
			pr.CurrentStage = stage
		}
		pr.AuditLog = append(pr.AuditLog, auditEntry(actor, "Updated PR (Status: "+string(pr.Status)+")"))

		return clonePR(*pr), nil
	}

	return domain.PurchaseRequest{}, ErrNotFound
}

// ApprovePR marks the PR approved and stamps the approval date.
func (s *Store) ApprovePR(actor, id string) (domain.PurchaseRequest, error) {
	status := domain.StatusApproved
	approvalDate := time.Now().Format(dateLayout)

	return s.UpdatePR(actor, id, domain.PRPatch{Status: &status, ApprovalDate: &approvalDate})
}

// RejectPR marks the PR rejected. The workflow track has no rejected
// lane, so the stage recompute parks it at the terminal position.
func (s *Store) RejectPR(actor, id string) (domain.PurchaseRequest, error) {
	status := domain.StatusRejected

	return s.UpdatePR(actor, id, domain.PRPatch{Status: &status})
}

// --- Purchase Orders ---

type POFields struct {
	PRID         string
	VendorID     string
	VendorName   string
	Item         string
	PONumber     string
	Amount       string
	Currency     string
	DeliveryDate string
	PaymentTerms string
}

func (s *Store) ListPOs() []domain.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.PurchaseOrder, len(s.pos))
	for i, po := range s.pos {
		out[i] = clonePO(po)
	}

	return out
}

func (s *Store) GetPO(id string) (domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, po := range s.pos {
		if po.ID == id {
			return clonePO(po), nil
		}
	}

	return domain.PurchaseOrder{}, ErrNotFound
}

// CreatePO appends a new purchase order in DRAFT with today's issue date.
func (s *Store) CreatePO(actor string, fields POFields) domain.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	currency := fields.Currency
	if currency == "" {
		currency = "USD"
	}
	stage, _ := workflow.StageForStatus(domain.EntityPurchaseOrder, domain.StatusDraft)

	po := domain.PurchaseOrder{
		ID:           newID(),
		PRID:         fields.PRID,
		VendorID:     fields.VendorID,
		VendorName:   fields.VendorName,
		Item:         fields.Item,
		PONumber:     fields.PONumber,
		Amount:       fields.Amount,
		Currency:     currency,
		Status:       domain.StatusDraft,
		IssueDate:    time.Now().Format(dateLayout),
		DeliveryDate: fields.DeliveryDate,
		PaymentTerms: fields.PaymentTerms,
		CurrentStage: stage,
		AuditLog:     []domain.AuditEntry{auditEntry(actor, "Created PO")},
	}
	s.pos = append(s.pos, po)

	return clonePO(po)
}

func (s *Store) UpdatePO(actor, id string, patch domain.POPatch) (domain.PurchaseOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.pos {
		if s.pos[i].ID != id {
			continue
		}
		po := &s.pos[i]
		applyPOPatch(po, patch)
		if stage, ok := workflow.StageForStatus(domain.EntityPurchaseOrder, po.Status); ok {
			po.CurrentStage = stage
		}
		po.AuditLog = append(po.AuditLog, auditEntry(actor, "Updated PO (Status: "+string(po.Status)+")"))

		return clonePO(*po), nil
	}

	return domain.PurchaseOrder{}, ErrNotFound
}

// --- Vendors ---

type VendorFields struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Category      string
}

func (s *Store) ListVendors() []domain.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Vendor, len(s.vendors))
	for i, v := range s.vendors {
		out[i] = cloneVendor(v)
	}

	return out
}

func (s *Store) GetVendor(id string) (domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.vendors {
		if v.ID == id {
			return cloneVendor(v), nil
		}
	}

	return domain.Vendor{}, ErrNotFound
}

// CreateVendor appends a new vendor at the start of its onboarding
// lifecycle: DRAFT status, no performance score, zero contracts.
func (s *Store) CreateVendor(actor string, fields VendorFields) domain.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendor := domain.Vendor{
		ID:             newID(),
		Name:           fields.Name,
		ContactPerson:  fields.ContactPerson,
		Email:          fields.Email,
		Phone:          fields.Phone,
		Address:        fields.Address,
		Category:       fields.Category,
		Status:         domain.StatusDraft,
		OnboardingDate: time.Now().Format(dateLayout),
		Contracts:      0,
		AuditLog:       []domain.AuditEntry{auditEntry(actor, "Created Vendor")},
	}
	s.vendors = append(s.vendors, vendor)

	return cloneVendor(vendor)
}

func (s *Store) UpdateVendor(actor, id string, patch domain.VendorPatch) (domain.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.vendors {
		if s.vendors[i].ID != id {
			continue
		}
		vendor := &s.vendors[i]
		applyVendorPatch(vendor, patch)
		vendor.AuditLog = append(vendor.AuditLog, auditEntry(actor, "Updated Vendor (Status: "+string(vendor.Status)+")"))

		return cloneVendor(*vendor), nil
	}

	return domain.Vendor{}, ErrNotFound
}

// --- Users and activities (read-only after seeding) ---

func (s *Store) Users() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.User(nil), s.users...)
}

func (s *Store) UserByID(id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}

	return domain.User{}, ErrNotFound
}

func (s *Store) UserByRole(role domain.Role) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Role == role {
			return u, nil
		}
	}

	return domain.User{}, ErrNotFound
}

func (s *Store) Activities() []domain.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Activity(nil), s.activities...)
}
