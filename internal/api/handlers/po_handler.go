package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/api/middleware"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/store"
)

type POHandler struct {
	poService *service.POService
}

func NewPOHandler(poService *service.POService) *POHandler {
	return &POHandler{poService: poService}
}

func (h *POHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.poService.List())
}

func (h *POHandler) Get(c *gin.Context) {
	detail, err := h.poService.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type createPORequest struct {
	PRID         string `json:"pr_id" binding:"required"`
	VendorID     string `json:"vendor_id" binding:"required"`
	Item         string `json:"item" binding:"required"`
	PONumber     string `json:"po_number" binding:"required"`
	Amount       string `json:"amount" binding:"required"`
	Currency     string `json:"currency"`
	DeliveryDate string `json:"delivery_date" binding:"required"`
	PaymentTerms string `json:"payment_terms"`
}

func (h *POHandler) Create(c *gin.Context) {
	var req createPORequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "pr_id, vendor_id, item, po_number, amount and delivery_date are mandatory")
		return
	}
	if !positiveAmount(req.Amount) {
		badRequest(c, "amount must be a positive number")
		return
	}

	s := middleware.CurrentSession(c)
	po, err := h.poService.Create(s.User, store.POFields{
		PRID:         req.PRID,
		VendorID:     req.VendorID,
		Item:         req.Item,
		PONumber:     req.PONumber,
		Amount:       req.Amount,
		Currency:     req.Currency,
		DeliveryDate: req.DeliveryDate,
		PaymentTerms: req.PaymentTerms,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, po)
}

func (h *POHandler) Update(c *gin.Context) {
	var patch domain.POPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequest(c, "invalid update payload")
		return
	}
	if patch.Amount != nil && !positiveAmount(*patch.Amount) {
		badRequest(c, "amount must be a positive number")
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		badRequest(c, "unknown status")
		return
	}

	s := middleware.CurrentSession(c)
	po, err := h.poService.Update(s.User, c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, po)
}

func (h *POHandler) Workflow(c *gin.Context) {
	stages, err := h.poService.Workflow(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stages)
}

// Payments serves the finance team's payment tracking screen.
func (h *POHandler) Payments(c *gin.Context) {
	s := middleware.CurrentSession(c)
	tracked, err := h.poService.PaymentTracking(s.User)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tracked)
}
