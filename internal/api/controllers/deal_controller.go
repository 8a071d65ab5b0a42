package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealflow/internal/models/request_models"
	"dealflow/internal/services"
	"dealflow/pkg/board"
	"dealflow/pkg/utils"
)

type DealController struct {
	dealService services.DealServiceInterface
}

func NewDealController(dealService services.DealServiceInterface) *DealController {
	return &DealController{
		dealService: dealService,
	}
}

// CreateDeal godoc
// @Summary Create a deal
// @Description Create a new sponsorship deal owned by the caller
// @Tags Deals
// @Accept json
// @Produce json
// @Param request body request_models.DealRequest true "Deal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals [post]
func (d *DealController) CreateDeal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	deal, err := d.dealService.CreateDeal(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deal, "Deal created successfully")
}

// UpdateDeal godoc
// @Summary Update a deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body request_models.DealRequest true "Deal payload"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals/{id} [put]
func (d *DealController) UpdateDeal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.DealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	deal, err := d.dealService.UpdateDeal(c.Request.Context(), userID, dealID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deal, "Deal updated successfully")
}

// UpdateDealStatus godoc
// @Summary Move a deal between pipeline stages
// @Description Status-only update so drag-and-drop never resends the full payload
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param request body request_models.UpdateDealStatusRequest true "New status"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals/{id}/status [patch]
func (d *DealController) UpdateDealStatus(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req request_models.UpdateDealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := d.dealService.UpdateDealStatus(c.Request.Context(), userID, dealID, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status updated")
}

// DeleteDeal godoc
// @Summary Delete a deal
// @Description Hard-deletes the deal and its deliverables
// @Tags Deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals/{id} [delete]
func (d *DealController) DeleteDeal(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	dealID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := d.dealService.DeleteDeal(c.Request.Context(), userID, dealID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Deal deleted")
}

// ListDeals godoc
// @Summary List the caller's deals
// @Tags Deals
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals [get]
func (d *DealController) ListDeals(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	deals, err := d.dealService.ListDeals(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, deals, "Deals fetched successfully")
}

// GetBoard godoc
// @Summary Pipeline board view
// @Description Deals filtered, sorted and grouped into the three stage columns
// @Tags Deals
// @Produce json
// @Param search query string false "Brand name substring"
// @Param sort query string false "Sort mode" Enums(newest, price_high, price_low, due_date) default(newest)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /deals/board [get]
func (d *DealController) GetBoard(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	deals, err := d.dealService.ListDeals(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	mode := board.SortMode(c.DefaultQuery("sort", string(board.SortNewest)))
	snapshot := board.Project(deals, c.Query("search"), mode)

	utils.RespondSuccess(c, snapshot, "Board fetched successfully")
}
