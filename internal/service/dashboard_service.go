package service

import (
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/store"
)

type DashboardService struct {
	store *store.Store
}

func NewDashboardService(s *store.Store) *DashboardService {
	return &DashboardService{store: s}
}

// DashboardSummary feeds the landing screen's stat cards and feed.
type DashboardSummary struct {
	TotalPRs         int               `json:"total_prs"`
	PendingApprovals int               `json:"pending_approvals"`
	ApprovedPRs      int               `json:"approved_prs"`
	SLABreaches      int               `json:"sla_breaches"`
	TotalPOs         int               `json:"total_pos"`
	OverduePOs       int               `json:"overdue_pos"`
	ActiveVendors    int               `json:"active_vendors"`
	Activities       []domain.Activity `json:"activities"`
}

func (s *DashboardService) Summary() DashboardSummary {
	summary := DashboardSummary{Activities: s.store.Activities()}

	for _, pr := range s.store.ListPRs() {
		summary.TotalPRs++
		switch pr.Status {
		case domain.StatusPending, domain.StatusInReview:
			summary.PendingApprovals++
		case domain.StatusApproved:
			summary.ApprovedPRs++
		}
		if pr.SLABreach {
			summary.SLABreaches++
		}
	}

	for _, po := range s.store.ListPOs() {
		summary.TotalPOs++
		if po.Status == domain.StatusOverdue {
			summary.OverduePOs++
		}
		if po.SLABreach {
			summary.SLABreaches++
		}
	}

	for _, vendor := range s.store.ListVendors() {
		if vendor.Status == domain.StatusApproved {
			summary.ActiveVendors++
		}
	}

	return summary
}
