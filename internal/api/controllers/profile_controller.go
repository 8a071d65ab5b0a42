package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dealflow/internal/models/request_models"
	"dealflow/internal/services"
	"dealflow/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetMyProfile godoc
// @Summary Get the caller's profile
// @Tags Profiles
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/me [get]
func (p *ProfileController) GetMyProfile(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	profile, err := p.profileService.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

// UpdateSettings godoc
// @Summary Update the caller's settings
// @Description Upserts display name, payout details, handles and revenue goal
// @Tags Profiles
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Settings payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /profiles/me [put]
func (p *ProfileController) UpdateSettings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := p.profileService.UpdateSettings(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Settings updated")
}
