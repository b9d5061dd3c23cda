package service

import (
	"github.com/procureflow/backend-go/internal/access"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/store"
	"github.com/procureflow/backend-go/internal/workflow"
)

type PRService struct {
	store *store.Store
}

func NewPRService(s *store.Store) *PRService {
	return &PRService{store: s}
}

// PRDetail is a PR with its weak PO reference resolved. RelatedPO is nil
// when the reference is absent or dangling; a dangling link never fails
// the lookup of the PR itself.
type PRDetail struct {
	domain.PurchaseRequest
	RelatedPO *domain.PurchaseOrder `json:"related_po,omitempty"`
}

func (s *PRService) List() []domain.PurchaseRequest {
	return s.store.ListPRs()
}

func (s *PRService) Get(id string) (PRDetail, error) {
	pr, err := s.store.GetPR(id)
	if err != nil {
		return PRDetail{}, err
	}

	detail := PRDetail{PurchaseRequest: pr}
	if pr.RelatedPOID != "" {
		if po, err := s.store.GetPO(pr.RelatedPOID); err == nil {
			detail.RelatedPO = &po
		}
	}

	return detail, nil
}

func (s *PRService) Create(actor domain.User, fields store.PRFields) (domain.PurchaseRequest, error) {
	if !access.Can(actor.Role, access.ActionCreatePR) {
		return domain.PurchaseRequest{}, ErrForbidden
	}

	return s.store.CreatePR(actor.Name, fields), nil
}

func (s *PRService) Update(actor domain.User, id string, patch domain.PRPatch) (domain.PurchaseRequest, error) {
	if !access.Can(actor.Role, access.ActionUpdatePR) {
		return domain.PurchaseRequest{}, ErrForbidden
	}

	return s.store.UpdatePR(actor.Name, id, patch)
}

func (s *PRService) Approve(actor domain.User, id string) (domain.PurchaseRequest, error) {
	if !access.Can(actor.Role, access.ActionApprovePR) {
		return domain.PurchaseRequest{}, ErrForbidden
	}

	return s.store.ApprovePR(actor.Name, id)
}

func (s *PRService) Reject(actor domain.User, id string) (domain.PurchaseRequest, error) {
	if !access.Can(actor.Role, access.ActionRejectPR) {
		return domain.PurchaseRequest{}, ErrForbidden
	}

	return s.store.RejectPR(actor.Name, id)
}

// Workflow returns the PR's stage view for the detail screen.
func (s *PRService) Workflow(id string) ([]workflow.StageView, error) {
	pr, err := s.store.GetPR(id)
	if err != nil {
		return nil, err
	}

	return workflow.ComputeStages(domain.EntityPurchaseRequest, pr.Status, pr.SLABreach), nil
}

// PendingApprovals lists PRs waiting on a decision, for the approvals
// queue screen.
func (s *PRService) PendingApprovals() []domain.PurchaseRequest {
	var pending []domain.PurchaseRequest
	for _, pr := range s.store.ListPRs() {
		if pr.Status == domain.StatusPending || pr.Status == domain.StatusInReview {
			pending = append(pending, pr)
		}
	}

	return pending
}
