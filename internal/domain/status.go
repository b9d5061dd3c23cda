package domain

import "strings"

// Status is the shared lifecycle code for PRs, POs and vendors.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusNew       Status = "NEW"
	StatusPending   Status = "PENDING"
	StatusInReview  Status = "IN_REVIEW"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusPaid      Status = "PAID"
	StatusOverdue   Status = "OVERDUE"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

var statusLabels = map[Status]string{
	StatusDraft:     "Draft",
	StatusNew:       "New",
	StatusPending:   "Pending",
	StatusInReview:  "In Review",
	StatusApproved:  "Approved",
	StatusRejected:  "Rejected",
	StatusPaid:      "Paid",
	StatusOverdue:   "Overdue",
	StatusCancelled: "Cancelled",
	StatusCompleted: "Completed",
}

// NEW renders with the Draft styling class.
var statusClasses = map[Status]string{
	StatusDraft:     "status-DRAFT",
	StatusNew:       "status-DRAFT",
	StatusPending:   "status-PENDING",
	StatusInReview:  "status-IN_REVIEW",
	StatusApproved:  "status-APPROVED",
	StatusRejected:  "status-REJECTED",
	StatusPaid:      "status-PAID",
	StatusOverdue:   "status-OVERDUE",
	StatusCancelled: "status-CANCELLED",
	StatusCompleted: "status-COMPLETED",
}

// StatusLabel returns a human-readable label for a status code.
func StatusLabel(status Status) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}

	return "Draft"
}

// StatusClass returns the display class for a status code.
func StatusClass(status Status) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}

	return "status-DRAFT"
}

// ParseStatus returns the status code for a given label or code
// (case-insensitive).
func ParseStatus(s string) (Status, bool) {
	upper := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statusLabels[upper]; ok {
		return upper, true
	}
	for code, label := range statusLabels {
		if strings.EqualFold(label, s) {
			return code, true
		}
	}

	return "", false
}

// Valid reports whether the status is one of the registered codes.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}
