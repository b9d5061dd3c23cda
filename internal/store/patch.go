package store

import "github.com/procureflow/backend-go/internal/domain"

// Patch application is a shallow field replacement: nil patch fields keep
// the existing value, slices are replaced wholesale.

func applyPRPatch(pr *domain.PurchaseRequest, patch domain.PRPatch) {
	if patch.Title != nil {
		pr.Title = *patch.Title
	}
	if patch.Description != nil {
		pr.Description = *patch.Description
	}
	if patch.Department != nil {
		pr.Department = *patch.Department
	}
	if patch.Amount != nil {
		pr.Amount = *patch.Amount
	}
	if patch.Currency != nil {
		pr.Currency = *patch.Currency
	}
	if patch.Status != nil {
		pr.Status = *patch.Status
	}
	if patch.ApprovalDate != nil {
		pr.ApprovalDate = *patch.ApprovalDate
	}
	if patch.ManagerApproval != nil {
		pr.ManagerApproval = *patch.ManagerApproval
	}
	if patch.ProcurementApproval != nil {
		pr.ProcurementApproval = *patch.ProcurementApproval
	}
	if patch.RelatedPOID != nil {
		pr.RelatedPOID = *patch.RelatedPOID
	}
	if patch.SLABreach != nil {
		pr.SLABreach = *patch.SLABreach
	}
	if patch.Attachments != nil {
		pr.Attachments = append([]domain.Attachment(nil), (*patch.Attachments)...)
	}
}

func applyPOPatch(po *domain.PurchaseOrder, patch domain.POPatch) {
	if patch.PRID != nil {
		po.PRID = *patch.PRID
	}
	if patch.VendorID != nil {
		po.VendorID = *patch.VendorID
	}
	if patch.VendorName != nil {
		po.VendorName = *patch.VendorName
	}
	if patch.Item != nil {
		po.Item = *patch.Item
	}
	if patch.PONumber != nil {
		po.PONumber = *patch.PONumber
	}
	if patch.Amount != nil {
		po.Amount = *patch.Amount
	}
	if patch.Currency != nil {
		po.Currency = *patch.Currency
	}
	if patch.Status != nil {
		po.Status = *patch.Status
	}
	if patch.DeliveryDate != nil {
		po.DeliveryDate = *patch.DeliveryDate
	}
	if patch.PaymentTerms != nil {
		po.PaymentTerms = *patch.PaymentTerms
	}
	if patch.SLABreach != nil {
		po.SLABreach = *patch.SLABreach
	}
}

func applyVendorPatch(vendor *domain.Vendor, patch domain.VendorPatch) {
	if patch.Name != nil {
		vendor.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		vendor.ContactPerson = *patch.ContactPerson
	}
	if patch.Email != nil {
		vendor.Email = *patch.Email
	}
	if patch.Phone != nil {
		vendor.Phone = *patch.Phone
	}
	if patch.Address != nil {
		vendor.Address = *patch.Address
	}
	if patch.Category != nil {
		vendor.Category = *patch.Category
	}
	if patch.Status != nil {
		vendor.Status = *patch.Status
	}
	if patch.PerformanceScore != nil {
		vendor.PerformanceScore = *patch.PerformanceScore
	}
	if patch.Contracts != nil {
		vendor.Contracts = *patch.Contracts
	}
}

func clonePR(pr domain.PurchaseRequest) domain.PurchaseRequest {
	pr.Attachments = append([]domain.Attachment(nil), pr.Attachments...)
	pr.AuditLog = append([]domain.AuditEntry(nil), pr.AuditLog...)

	return pr
}

func clonePO(po domain.PurchaseOrder) domain.PurchaseOrder {
	po.AuditLog = append([]domain.AuditEntry(nil), po.AuditLog...)

	return po
}

func cloneVendor(vendor domain.Vendor) domain.Vendor {
	vendor.AuditLog = append([]domain.AuditEntry(nil), vendor.AuditLog...)

	return vendor
}
