package domain

// Dataset is the opaque initial-state bundle handed to the store at
// startup, either generated in-process or loaded from a JSON fixture.
type Dataset struct {
	PurchaseRequests []PurchaseRequest `json:"purchase_requests"`
	PurchaseOrders   []PurchaseOrder   `json:"purchase_orders"`
	Vendors          []Vendor          `json:"vendors"`
	Users            []User            `json:"users"`
	Activities       []Activity        `json:"activities"`
}
