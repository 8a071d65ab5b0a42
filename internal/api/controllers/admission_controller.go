package controllers

import (
	"github.com/gin-gonic/gin"

	"dealflow/internal/services"
	"dealflow/pkg/utils"
)

type AdmissionController struct {
	admissionService services.AdmissionServiceInterface
}

func NewAdmissionController(admissionService services.AdmissionServiceInterface) *AdmissionController {
	return &AdmissionController{
		admissionService: admissionService,
	}
}

// ListPending godoc
// @Summary List pending signup applications
// @Description Admin only; the admin flag is re-checked server-side
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/applications [get]
func (a *AdmissionController) ListPending(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}

	profiles, err := a.admissionService.ListPendingApplications(c.Request.Context(), adminID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profiles, "Pending applications fetched")
}

// Approve godoc
// @Summary Approve a pending application
// @Description Terminal transition; triggers a best-effort welcome email
// @Tags Admin
// @Produce json
// @Param id path string true "Applicant account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/approve [post]
func (a *AdmissionController) Approve(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	applicantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := a.admissionService.ApproveApplication(c.Request.Context(), adminID, applicantID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Application approved")
}

// Reject godoc
// @Summary Reject a pending application
// @Tags Admin
// @Produce json
// @Param id path string true "Applicant account ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /admin/applications/{id}/reject [post]
func (a *AdmissionController) Reject(c *gin.Context) {
	adminID, ok := callerID(c)
	if !ok {
		return
	}
	applicantID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := a.admissionService.RejectApplication(c.Request.Context(), adminID, applicantID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Application rejected")
}
