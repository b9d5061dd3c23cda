// Package workflow derives an entity's position in its fixed stage
// sequence from its current status. The engine is pure: it never touches
// entity state.
package workflow

import "github.com/procureflow/backend-go/internal/domain"

// Stage is a named position in an entity type's workflow track, tagged
// with the status codes that place an entity into it.
type Stage struct {
	ID       string
	Name     string
	Statuses []domain.Status
}

var stageTracks = map[domain.EntityType][]Stage{
	domain.EntityPurchaseRequest: {
		{ID: "draft", Name: "Draft", Statuses: []domain.Status{domain.StatusDraft}},
		{ID: "submitted", Name: "Submitted", Statuses: []domain.Status{domain.StatusPending}},
		{ID: "manager_review", Name: "Manager Review", Statuses: []domain.Status{domain.StatusInReview}},
		{ID: "procurement_review", Name: "Procurement Review", Statuses: []domain.Status{domain.StatusInReview}},
		{ID: "approved", Name: "Approved", Statuses: []domain.Status{domain.StatusApproved}},
	},
	domain.EntityPurchaseOrder: {
		{ID: "draft", Name: "Draft", Statuses: []domain.Status{domain.StatusDraft}},
		{ID: "issued", Name: "Issued", Statuses: []domain.Status{domain.StatusPending}},
		{ID: "vendor_acknowledgement", Name: "Vendor Ack.", Statuses: []domain.Status{domain.StatusInReview}},
		{ID: "goods_received", Name: "Goods Received", Statuses: []domain.Status{domain.StatusPending}},
		{ID: "invoiced", Name: "Invoiced", Statuses: []domain.Status{domain.StatusInReview}},
		{ID: "paid", Name: "Paid", Statuses: []domain.Status{domain.StatusPaid}},
	},
}

// A rejected PR parks at the terminal stage position; the track has no
// separate rejected lane.
var terminalStages = map[domain.EntityType]map[domain.Status]string{
	domain.EntityPurchaseRequest: {
		domain.StatusRejected: "approved",
	},
}

func (s Stage) contains(status domain.Status) bool {
	for _, candidate := range s.Statuses {
		if candidate == status {
			return true
		}
	}

	return false
}

// Stages returns a copy of the entity type's stage track.
func Stages(entityType domain.EntityType) []Stage {
	track := stageTracks[entityType]
	out := make([]Stage, len(track))
	copy(out, track)

	return out
}
