package domain

// Patches carry partial updates: nil fields are left untouched, non-nil
// fields replace the existing value. Slices are replaced wholesale, never
// merged; callers that want a merge supply the merged slice.

type PRPatch struct {
	Title               *string       `json:"title,omitempty"`
	Description         *string       `json:"description,omitempty"`
	Department          *string       `json:"department,omitempty"`
	Amount              *string       `json:"amount,omitempty"`
	Currency            *string       `json:"currency,omitempty"`
	Status              *Status       `json:"status,omitempty"`
	ApprovalDate        *string       `json:"approval_date,omitempty"`
	ManagerApproval     *string       `json:"manager_approval,omitempty"`
	ProcurementApproval *string       `json:"procurement_approval,omitempty"`
	RelatedPOID         *string       `json:"related_po_id,omitempty"`
	SLABreach           *bool         `json:"sla_breach,omitempty"`
	Attachments         *[]Attachment `json:"attachments,omitempty"`
}

type POPatch struct {
	PRID         *string `json:"pr_id,omitempty"`
	VendorID     *string `json:"vendor_id,omitempty"`
	VendorName   *string `json:"vendor_name,omitempty"`
	Item         *string `json:"item,omitempty"`
	PONumber     *string `json:"po_number,omitempty"`
	Amount       *string `json:"amount,omitempty"`
	Currency     *string `json:"currency,omitempty"`
	Status       *Status `json:"status,omitempty"`
	DeliveryDate *string `json:"delivery_date,omitempty"`
	PaymentTerms *string `json:"payment_terms,omitempty"`
	SLABreach    *bool   `json:"sla_breach,omitempty"`
}

type VendorPatch struct {
	Name             *string `json:"name,omitempty"`
	ContactPerson    *string `json:"contact_person,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Address          *string `json:"address,omitempty"`
	Category         *string `json:"category,omitempty"`
	Status           *Status `json:"status,omitempty"`
	PerformanceScore *string `json:"performance_score,omitempty"`
	Contracts        *int    `json:"contracts,omitempty"`
}
