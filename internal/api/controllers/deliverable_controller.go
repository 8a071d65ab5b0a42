package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealflow/internal/models/request_models"
	"dealflow/internal/services"
	"dealflow/pkg/utils"
)

type DeliverableController struct {
	deliverableService services.DeliverableServiceInterface
}

func NewDeliverableController(deliverableService services.DeliverableServiceInterface) *DeliverableController {
	return &DeliverableController{
		deliverableService: deliverableService,
	}
}

// AddDeliverable godoc
// @Summary Add a checklist item to a deal
// @Tags Deliverables
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body request_models.AddDeliverableRequest true "Deliverable payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals/{id}/deliverables [post]
func (d *DeliverableController) AddDeliverable(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.AddDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	deliverable, err := d.deliverableService.AddDeliverable(c.Request.Context(), userID, dealID, req.Label)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deliverable, "Deliverable added")
}

// ListForDeal godoc
// @Summary List a deal's checklist in insertion order
// @Tags Deliverables
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals/{id}/deliverables [get]
func (d *DeliverableController) ListForDeal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	deliverables, err := d.deliverableService.ListForDeal(c.Request.Context(), userID, dealID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deliverables, "Deliverables fetched successfully")
}

// ToggleDeliverable godoc
// @Summary Mark a checklist item complete or incomplete
// @Tags Deliverables
// @Accept json
// @Produce json
// @Param id path string true "Deliverable ID"
// @Param request body request_models.ToggleDeliverableRequest true "Completion flag"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deliverables/{id}/toggle [patch]
func (d *DeliverableController) ToggleDeliverable(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.ToggleDeliverableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.deliverableService.ToggleDeliverable(c.Request.Context(), userID, id, req.Completed); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deliverable updated")
}

// UpdateProof godoc
// @Summary Attach proof to a checklist item
// @Tags Deliverables
// @Accept json
// @Produce json
// @Param id path string true "Deliverable ID"
// @Param request body request_models.UpdateProofRequest true "Proof URL, empty string clears it"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deliverables/{id}/proof [patch]
func (d *DeliverableController) UpdateProof(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.deliverableService.UpdateProof(c.Request.Context(), userID, id, req.Proof); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Proof updated")
}

// DeleteDeliverable godoc
// @Summary Remove a checklist item
// @Tags Deliverables
// @Produce json
// @Param id path string true "Deliverable ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deliverables/{id} [delete]
func (d *DeliverableController) DeleteDeliverable(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := d.deliverableService.DeleteDeliverable(c.Request.Context(), userID, id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deliverable removed")
}
