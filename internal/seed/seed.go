// Package seed produces the demo dataset the store is initialized with.
// It is an opaque initial-state provider: nothing at runtime depends on
// it after startup.
package seed

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/workflow"
)

const dateLayout = "2006-01-02"

type Config struct {
	PurchaseRequests int
	PurchaseOrders   int
	Vendors          int
	// Seed fixes the RNG for reproducible fixtures; 0 uses the clock.
	Seed int64
}

var prStatuses = []domain.Status{
	domain.StatusDraft,
	domain.StatusPending,
	domain.StatusInReview,
	domain.StatusApproved,
	domain.StatusRejected,
}

var poStatuses = []domain.Status{
	domain.StatusDraft,
	domain.StatusPending,
	domain.StatusPaid,
	domain.StatusOverdue,
	domain.StatusCompleted,
}

// Vendor onboarding states map onto the shared status codes.
var vendorStatuses = []domain.Status{
	domain.StatusApproved,
	domain.StatusRejected,
	domain.StatusInReview,
	domain.StatusDraft,
}

var (
	prTopics    = []string{"Laptops", "Office Supplies", "Software Licenses", "Consulting Services", "Server Upgrade", "Marketing Campaign", "Conference Travel"}
	prReasons   = []string{"Q3 budget", "urgent needs", "annual renewal", "new project launch"}
	departments = []string{"IT", "HR", "Marketing", "Finance", "Operations"}
	categories  = []string{"IT Services", "Office Supplies", "Logistics", "Marketing", "Consulting"}
)

type generator struct {
	rng *rand.Rand
	now time.Time
}

func (g *generator) id() string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, 9)
	for i := range b {
		b[i] = charset[g.rng.Intn(len(charset))]
	}

	return string(b)
}

func (g *generator) daysAgo(maxDays int) string {
	return g.now.AddDate(0, 0, -g.rng.Intn(maxDays)).Format(dateLayout)
}

// Generate builds a full demo dataset: PRs, POs, vendors, the five fixed
// demo users and a small activity feed.
func Generate(cfg Config) *domain.Dataset {
	source := cfg.Seed
	if source == 0 {
		source = time.Now().UnixNano()
	}
	g := &generator{rng: rand.New(rand.NewSource(source)), now: time.Now()}

	dataset := &domain.Dataset{
		Users: Users(),
	}
	for i := 0; i < cfg.PurchaseRequests; i++ {
		dataset.PurchaseRequests = append(dataset.PurchaseRequests, g.purchaseRequest(i))
	}
	for i := 0; i < cfg.PurchaseOrders; i++ {
		dataset.PurchaseOrders = append(dataset.PurchaseOrders, g.purchaseOrder(i))
	}
	for i := 0; i < cfg.Vendors; i++ {
		dataset.Vendors = append(dataset.Vendors, g.vendor(i))
	}
	dataset.Activities = g.activities()

	return dataset
}

// Users returns the fixed demo identities, one per role.
func Users() []domain.User {
	return []domain.User{
		{ID: "usr-1", Name: "Alice Employee", Role: domain.RoleEmployee},
		{ID: "usr-2", Name: "Bob Manager", Role: domain.RoleManager},
		{ID: "usr-3", Name: "Charlie Procurement", Role: domain.RoleProcurementOfficer},
		{ID: "usr-4", Name: "Diana Finance", Role: domain.RoleFinanceTeam},
		{ID: "usr-5", Name: "Eve Admin", Role: domain.RoleAdmin},
	}
}

func (g *generator) purchaseRequest(i int) domain.PurchaseRequest {
	status := prStatuses[g.rng.Intn(len(prStatuses))]
	stage, _ := workflow.StageForStatus(domain.EntityPurchaseRequest, status)

	pr := domain.PurchaseRequest{
		ID:                  g.id(),
		Title:               "Purchase Request for " + prTopics[i%len(prTopics)],
		Description:         "Detailed request for " + prReasons[i%len(prReasons)] + ".",
		RequestedBy:         fmt.Sprintf("User %d", g.rng.Intn(5)+1),
		Department:          departments[i%len(departments)],
		Amount:              fmt.Sprintf("%.2f", g.rng.Float64()*10000+500),
		Currency:            "USD",
		Status:              status,
		SubmissionDate:      g.daysAgo(30),
		ManagerApproval:     "Pending",
		ProcurementApproval: "Pending",
		SLABreach:           status == domain.StatusPending && g.rng.Float64() > 0.7,
		CurrentStage:        stage,
		AuditLog: []domain.AuditEntry{
			{ID: g.id(), Timestamp: g.now.AddDate(0, 0, -5).Format(time.RFC3339), User: "System", Action: "Created PR"},
			{ID: g.id(), Timestamp: g.now.AddDate(0, 0, -3).Format(time.RFC3339), User: "Alice Employee", Action: "Submitted for Approval"},
		},
	}
	if i%2 == 0 {
		pr.Attachments = []domain.Attachment{{Name: "Quotation.pdf", URL: "#"}}
	}
	switch status {
	case domain.StatusInReview:
		pr.ManagerApproval = "Approved"
	case domain.StatusApproved:
		pr.ManagerApproval = "Approved"
		pr.ProcurementApproval = "Approved"
		pr.ApprovalDate = g.now.Format(dateLayout)
		pr.AuditLog = append(pr.AuditLog,
			domain.AuditEntry{ID: g.id(), Timestamp: g.now.Format(time.RFC3339), User: "Bob Manager", Action: "Approved Final"})
	case domain.StatusRejected:
		pr.AuditLog = append(pr.AuditLog,
			domain.AuditEntry{ID: g.id(), Timestamp: g.now.Format(time.RFC3339), User: "Bob Manager", Action: "Rejected"})
	}

	return pr
}

func (g *generator) purchaseOrder(i int) domain.PurchaseOrder {
	status := poStatuses[g.rng.Intn(len(poStatuses))]
	stage, ok := workflow.StageForStatus(domain.EntityPurchaseOrder, status)
	if !ok {
		// OVERDUE and COMPLETED sit past the invoicing stages.
		stage = "goods_received"
	}

	po := domain.PurchaseOrder{
		ID:           g.id(),
		PRID:         g.id(),
		VendorID:     g.id(),
		VendorName:   fmt.Sprintf("Vendor Inc. %d", i+1),
		Item:         fmt.Sprintf("Item %d for PO", i+1),
		PONumber:     fmt.Sprintf("PO-%d", 1000+i),
		Amount:       fmt.Sprintf("%.2f", g.rng.Float64()*50000+1000),
		Currency:     "USD",
		Status:       status,
		IssueDate:    g.daysAgo(20),
		DeliveryDate: g.now.AddDate(0, 0, g.rng.Intn(30)).Format(dateLayout),
		PaymentTerms: "Net 30",
		SLABreach:    status == domain.StatusPending && g.rng.Float64() > 0.6,
		CurrentStage: stage,
		AuditLog: []domain.AuditEntry{
			{ID: g.id(), Timestamp: g.now.AddDate(0, 0, -15).Format(time.RFC3339), User: "Charlie Procurement", Action: "Created PO"},
			{ID: g.id(), Timestamp: g.now.AddDate(0, 0, -10).Format(time.RFC3339), User: "Charlie Procurement", Action: "Issued to Vendor"},
		},
	}
	if status == domain.StatusPaid || status == domain.StatusCompleted {
		po.AuditLog = append(po.AuditLog,
			domain.AuditEntry{ID: g.id(), Timestamp: g.now.Format(time.RFC3339), User: "Diana Finance", Action: "Payment Processed"})
	}

	return po
}

func (g *generator) vendor(i int) domain.Vendor {
	status := vendorStatuses[g.rng.Intn(len(vendorStatuses))]

	vendor := domain.Vendor{
		ID:               g.id(),
		Name:             fmt.Sprintf("Global Suppliers Ltd. %d", i+1),
		ContactPerson:    fmt.Sprintf("John Doe %d", i+1),
		Email:            fmt.Sprintf("contact%d@globalsuppliers.com", i+1),
		Phone:            fmt.Sprintf("+1-%d-%d", 555+i, 1000+i),
		Address:          fmt.Sprintf("%d Business St, City, Country", 100+i),
		Category:         categories[i%len(categories)],
		Status:           status,
		OnboardingDate:   g.daysAgo(90),
		PerformanceScore: fmt.Sprintf("%.1f", g.rng.Float64()*5),
		Contracts:        g.rng.Intn(5),
		AuditLog: []domain.AuditEntry{
			{ID: g.id(), Timestamp: g.now.AddDate(0, 0, -60).Format(time.RFC3339), User: "Procurement Admin", Action: "Created Vendor"},
			{ID: g.id(), Timestamp: g.now.AddDate(0, 0, -30).Format(time.RFC3339), User: "Procurement Admin", Action: "Onboarding initiated"},
		},
	}
	if status == domain.StatusApproved {
		vendor.AuditLog = append(vendor.AuditLog,
			domain.AuditEntry{ID: g.id(), Timestamp: g.now.Format(time.RFC3339), User: "Procurement Admin", Action: "Approved & Activated"})
	}

	return vendor
}

func (g *generator) activities() []domain.Activity {
	return []domain.Activity{
		{ID: g.id(), Type: "Purchase Request", Description: "PR-1234 submitted by Alice Employee", Date: g.daysAgo(3), Status: domain.StatusPending, EntityID: "PR-1234"},
		{ID: g.id(), Type: "Purchase Order", Description: "PO-5678 issued to Vendor X", Date: g.daysAgo(4), Status: domain.StatusDraft, EntityID: "PO-5678"},
		{ID: g.id(), Type: "Vendor Onboarding", Description: "New vendor Global Suppliers Ltd. in review", Date: g.daysAgo(5), Status: domain.StatusInReview, EntityID: "VEN-9012"},
		{ID: g.id(), Type: "Purchase Request", Description: "PR-1235 approved by Bob Manager", Date: g.daysAgo(6), Status: domain.StatusApproved, EntityID: "PR-1235"},
		{ID: g.id(), Type: "Purchase Order", Description: "PO-5679 payment due for Vendor Y", Date: g.daysAgo(7), Status: domain.StatusOverdue, EntityID: "PO-5679"},
	}
}

// LoadFile reads a JSON fixture written by cmd/seed.
func LoadFile(path string) (*domain.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var dataset domain.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	return &dataset, nil
}

// WriteFile serializes the dataset as indented JSON.
func WriteFile(path string, dataset *domain.Dataset) error {
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return fmt.Errorf("encode seed data: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write seed file: %w", err)
	}

	return nil
}

// Describe summarizes a dataset for CLI output.
func Describe(dataset *domain.Dataset) string {
	return fmt.Sprintf("%d PRs, %d POs, %d vendors, %d users, %d activities",
		len(dataset.PurchaseRequests), len(dataset.PurchaseOrders),
		len(dataset.Vendors), len(dataset.Users), len(dataset.Activities))
}
