package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderapp "github.com/washpos/backend/internal/application/order"
)

// ReturnHandler handles return and refund API endpoints
type ReturnHandler struct {
	BaseHandler
	returnService *orderapp.ReturnService
}

// NewReturnHandler creates a new ReturnHandler
func NewReturnHandler(returnService *orderapp.ReturnService) *ReturnHandler {
	return &ReturnHandler{
		returnService: returnService,
	}
}

// Process accepts returned items against an order and records the refund.
// Retries carrying the same idempotency key are rejected as duplicates.
func (h *ReturnHandler) Process(c *gin.Context) {
	var req orderapp.ProcessReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ret, err := h.returnService.ProcessReturn(c.Request.Context(), &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, ret)
}

// GetByID retrieves a return by ID
func (h *ReturnHandler) GetByID(c *gin.Context) {
	returnID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid return ID format")
		return
	}

	ret, err := h.returnService.GetReturn(c.Request.Context(), returnID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ret)
}

// GetByNumber retrieves a return by its return number
func (h *ReturnHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Return number is required")
		return
	}

	ret, err := h.returnService.GetReturnByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, ret)
}

// ListForOrder retrieves every return recorded against one order
func (h *ReturnHandler) ListForOrder(c *gin.Context) {
	number := c.Param("number")
	if number == "" {
		h.BadRequest(c, "Order number is required")
		return
	}

	returns, err := h.returnService.ListReturnsForOrder(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, returns)
}

// List retrieves a paginated list of returns
func (h *ReturnHandler) List(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if complete := c.Query("complete"); complete != "" {
		filter.Filters["complete"] = complete == "true"
	}

	page, err := h.returnService.ListReturns(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}
