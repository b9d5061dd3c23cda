package domain

// EntityType discriminates the workflow track an entity follows.
type EntityType string

const (
	EntityPurchaseRequest EntityType = "PURCHASE_REQUEST"
	EntityPurchaseOrder   EntityType = "PURCHASE_ORDER"
)

// AuditEntry is a single append-only audit record. Every successful
// mutation of an owning entity appends exactly one entry.
type AuditEntry struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Action    string `json:"action"`
}

// Attachment is file metadata only; blob storage is out of scope.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PurchaseRequest is an employee-initiated spend request requiring approval.
type PurchaseRequest struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Description         string       `json:"description"`
	RequestedBy         string       `json:"requested_by"`
	Department          string       `json:"department"`
	Amount              string       `json:"amount"`
	Currency            string       `json:"currency"`
	Status              Status       `json:"status"`
	SubmissionDate      string       `json:"submission_date"`
	ApprovalDate        string       `json:"approval_date,omitempty"`
	ManagerApproval     string       `json:"manager_approval"`
	ProcurementApproval string       `json:"procurement_approval"`
	RelatedPOID         string       `json:"related_po_id,omitempty"`
	SLABreach           bool         `json:"sla_breach"`
	CurrentStage        string       `json:"current_stage"`
	Attachments         []Attachment `json:"attachments"`
	AuditLog            []AuditEntry `json:"audit_log"`
}

// PurchaseOrder is a vendor-facing commitment derived from an approved PR.
// PRID and VendorID are weak references resolved by lookup, never ownership.
type PurchaseOrder struct {
	ID           string       `json:"id"`
	PRID         string       `json:"pr_id"`
	VendorID     string       `json:"vendor_id"`
	VendorName   string       `json:"vendor_name"`
	Item         string       `json:"item"`
	PONumber     string       `json:"po_number"`
	Amount       string       `json:"amount"`
	Currency     string       `json:"currency"`
	Status       Status       `json:"status"`
	IssueDate    string       `json:"issue_date"`
	DeliveryDate string       `json:"delivery_date"`
	PaymentTerms string       `json:"payment_terms"`
	SLABreach    bool         `json:"sla_breach"`
	CurrentStage string       `json:"current_stage"`
	AuditLog     []AuditEntry `json:"audit_log"`
}

// Vendor reuses the shared status codes for its onboarding lifecycle:
// DRAFT (new), IN_REVIEW (onboarding), APPROVED (active), REJECTED (inactive).
type Vendor struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ContactPerson    string       `json:"contact_person"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	Address          string       `json:"address"`
	Category         string       `json:"category"`
	Status           Status       `json:"status"`
	OnboardingDate   string       `json:"onboarding_date"`
	PerformanceScore string       `json:"performance_score,omitempty"`
	Contracts        int          `json:"contracts"`
	AuditLog         []AuditEntry `json:"audit_log"`
}

// User is a seeded demo identity; there is no real authentication.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Activity is a dashboard feed item seeded at startup.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Status      Status `json:"status"`
	EntityID    string `json:"entity_id"`
}

// ViewState is the navigation controller's current position. It is owned
// exclusively by the controller and mutated only through Navigate.
type ViewState struct {
	Screen Screen            `json:"screen"`
	Params map[string]string `json:"params"`
}
