package service

import (
	"github.com/procureflow/backend-go/internal/access"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/store"
)

type VendorService struct {
	store *store.Store
}

func NewVendorService(s *store.Store) *VendorService {
	return &VendorService{store: s}
}

func (s *VendorService) List() []domain.Vendor {
	return s.store.ListVendors()
}

func (s *VendorService) Get(id string) (domain.Vendor, error) {
	return s.store.GetVendor(id)
}

func (s *VendorService) Create(actor domain.User, fields store.VendorFields) (domain.Vendor, error) {
	if !access.Can(actor.Role, access.ActionCreateVendor) {
		return domain.Vendor{}, ErrForbidden
	}

	return s.store.CreateVendor(actor.Name, fields), nil
}

func (s *VendorService) Update(actor domain.User, id string, patch domain.VendorPatch) (domain.Vendor, error) {
	if !access.Can(actor.Role, access.ActionUpdateVendor) {
		return domain.Vendor{}, ErrForbidden
	}

	return s.store.UpdateVendor(actor.Name, id, patch)
}

// Orders lists the vendor's purchase orders by weak reference. The
// vendor itself must exist, but its order links never have to.
func (s *VendorService) Orders(id string) ([]domain.PurchaseOrder, error) {
	if _, err := s.store.GetVendor(id); err != nil {
		return nil, err
	}

	var orders []domain.PurchaseOrder
	for _, po := range s.store.ListPOs() {
		if po.VendorID == id {
			orders = append(orders, po)
		}
	}

	return orders, nil
}
