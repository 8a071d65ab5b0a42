package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealflow/internal/models/request_models"
	"dealflow/internal/services"
	"dealflow/pkg/utils"
)

type InvoiceController struct {
	invoiceService services.InvoiceServiceInterface
}

func NewInvoiceController(invoiceService services.InvoiceServiceInterface) *InvoiceController {
	return &InvoiceController{
		invoiceService: invoiceService,
	}
}

// GetInvoice godoc
// @Summary Invoice view for a deal
// @Description Deal details plus the owner's payout profile
// @Tags Invoices
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (i *InvoiceController) GetInvoice(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	invoice, err := i.invoiceService.GetInvoice(c.Request.Context(), userID, dealID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invoice, "Invoice fetched successfully")
}

// SendInvoice godoc
// @Summary Email the invoice to a recipient
// @Description Here the send is the whole point, so a dispatch failure fails the request
// @Tags Invoices
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body request_models.SendInvoiceRequest true "Recipient"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invoices/{id}/send [post]
func (i *InvoiceController) SendInvoice(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.SendInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := i.invoiceService.SendInvoice(c.Request.Context(), userID, dealID, req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Invoice sent")
}
