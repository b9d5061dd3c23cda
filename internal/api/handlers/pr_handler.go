package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/api/middleware"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/store"
)

type PRHandler struct {
	prService *service.PRService
}

func NewPRHandler(prService *service.PRService) *PRHandler {
	return &PRHandler{prService: prService}
}

func (h *PRHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.prService.List())
}

func (h *PRHandler) Get(c *gin.Context) {
	detail, err := h.prService.Get(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

type createPRRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Department  string              `json:"department" binding:"required"`
	Amount      string              `json:"amount" binding:"required"`
	Currency    string              `json:"currency"`
	Attachments []domain.Attachment `json:"attachments"`
}

func (h *PRHandler) Create(c *gin.Context) {
	var req createPRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "title, description, department and amount are mandatory")
		return
	}
	if !positiveAmount(req.Amount) {
		badRequest(c, "amount must be a positive number")
		return
	}

	s := middleware.CurrentSession(c)
	pr, err := h.prService.Create(s.User, store.PRFields{
		Title:       req.Title,
		Description: req.Description,
		Department:  req.Department,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Attachments: req.Attachments,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, pr)
}

func (h *PRHandler) Update(c *gin.Context) {
	var patch domain.PRPatch
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
	pr, err := h.prService.Update(s.User, c.Param("id"), patch)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, pr)
}

func (h *PRHandler) Approve(c *gin.Context) {
	s := middleware.CurrentSession(c)
	pr, err := h.prService.Approve(s.User, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, pr)
}

func (h *PRHandler) Reject(c *gin.Context) {
	s := middleware.CurrentSession(c)
	pr, err := h.prService.Reject(s.User, c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, pr)
}

func (h *PRHandler) Workflow(c *gin.Context) {
	stages, err := h.prService.Workflow(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, stages)
}

// Approvals serves the approvals queue screen.
func (h *PRHandler) Approvals(c *gin.Context) {
	c.JSON(http.StatusOK, h.prService.PendingApprovals())
}
