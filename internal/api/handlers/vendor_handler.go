package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/api/middleware"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/store"
)

type VendorHandler struct {
	vendorService *service.VendorService
}

func NewVendorHandler(vendorService *service.VendorService) *VendorHandler {
	return &VendorHandler{vendorService: vendorService}
}

func (h *VendorHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.vendorService.List())
}

func (h *VendorHandler) Get(c *gin.Context) {
	vendor, err := h.vendorService.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

type createVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Category      string `json:"category" binding:"required"`
}

func (h *VendorHandler) Create(c *gin.Context) {
	var req createVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "name, contact_person, email, phone, address and category are mandatory")
		return
	}

	s := middleware.CurrentSession(c)
	vendor, err := h.vendorService.Create(s.User, store.VendorFields{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Category:      req.Category,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

func (h *VendorHandler) Update(c *gin.Context) {
	var patch domain.VendorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid update payload")
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		badRequest(c, "unknown status")
		return
	}

	s := middleware.CurrentSession(c)
	vendor, err := h.vendorService.Update(s.User, c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// Orders lists the vendor's purchase orders for the detail screen.
func (h *VendorHandler) Orders(c *gin.Context) {
	orders, err := h.vendorService.Orders(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
