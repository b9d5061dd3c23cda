package service

import (
	"github.com/procureflow/backend-go/internal/access"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/store"
	"github.com/procureflow/backend-go/internal/workflow"
)

type POService struct {
	store *store.Store
}

func NewPOService(s *store.Store) *POService {
	return &POService{store: s}
}

// PODetail resolves the PO's weak references for the detail screen.
// Dangling pr/vendor ids leave the pointers nil rather than failing.
type PODetail struct {
	domain.PurchaseOrder
	RelatedPR *domain.PurchaseRequest `json:"related_pr,omitempty"`
	Vendor    *domain.Vendor          `json:"vendor,omitempty"`
}

func (s *POService) List() []domain.PurchaseOrder {
	return s.store.ListPOs()
}

func (s *POService) Get(id string) (PODetail, error) {
	po, err := s.store.GetPO(id)
	if err != nil {
		return PODetail{}, err
	}

	detail := PODetail{PurchaseOrder: po}
	if po.PRID != "" {
		if pr, err := s.store.GetPR(po.PRID); err == nil {
			detail.RelatedPR = &pr
		}
	}
	if po.VendorID != "" {
		if vendor, err := s.store.GetVendor(po.VendorID); err == nil {
			detail.Vendor = &vendor
		}
	}

	return detail, nil
}

// Create snapshots the vendor name onto the PO when the vendor resolves;
// the stored name survives later vendor changes by design.
func (s *POService) Create(actor domain.User, fields store.POFields) (domain.PurchaseOrder, error) {
	if !access.Can(actor.Role, access.ActionCreatePO) {
		return domain.PurchaseOrder{}, ErrForbidden
	}

	if fields.VendorName == "" && fields.VendorID != "" {
		if vendor, err := s.store.GetVendor(fields.VendorID); err == nil {
			fields.VendorName = vendor.Name
		} else {
			fields.VendorName = "Unknown Vendor"
		}
	}

	return s.store.CreatePO(actor.Name, fields), nil
}

func (s *POService) Update(actor domain.User, id string, patch domain.POPatch) (domain.PurchaseOrder, error) {
	if !access.Can(actor.Role, access.ActionUpdatePO) {
		return domain.PurchaseOrder{}, ErrForbidden
	}

	return s.store.UpdatePO(actor.Name, id, patch)
}

// Workflow returns the PO's stage view for the detail screen.
func (s *POService) Workflow(id string) ([]workflow.StageView, error) {
	po, err := s.store.GetPO(id)
	if err != nil {
		return nil, err
	}

	return workflow.ComputeStages(domain.EntityPurchaseOrder, po.Status, po.SLABreach), nil
}

// PaymentTracking lists POs relevant to the finance team: issued, overdue
// or already paid.
func (s *POService) PaymentTracking(actor domain.User) ([]domain.PurchaseOrder, error) {
	if !access.Can(actor.Role, access.ActionTrackPayment) {
		return nil, ErrForbidden
	}

	var tracked []domain.PurchaseOrder
	for _, po := range s.store.ListPOs() {
		switch po.Status {
		case domain.StatusPending, domain.StatusOverdue, domain.StatusPaid:
			tracked = append(tracked, po)
		}
	}

	return tracked, nil
}
