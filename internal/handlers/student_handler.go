package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CampusPrep-2025/placement-service/internal/models"
	"github.com/CampusPrep-2025/placement-service/internal/services"
	"github.com/CampusPrep-2025/placement-service/internal/utils"
	"github.com/CampusPrep-2025/placement-service/internal/validator"
)

// UpdateDocumentRequest replaces the student's profile and roadmaps, used by
// the onboarding and personalize flows.
type UpdateDocumentRequest struct {
	Profile  models.StudentProfile `json:"profile" validate:"required"`
	Roadmaps []models.Roadmap      `json:"roadmaps"`
}

// UpdateRoadmapsRequest replaces just the roadmap sequence (step toggles and
// edits arrive as a full replacement).
type UpdateRoadmapsRequest struct {
	Roadmaps []models.Roadmap `json:"roadmaps"`
}

type StudentHandler struct {
	BaseHandler
	accounts  services.AccountService
	export    services.ExportService
	validator *validator.Validator
}

func NewStudentHandler(accounts services.AccountService, export services.ExportService, validator *validator.Validator, logger utils.Logger) *StudentHandler {
	return &StudentHandler{
		BaseHandler: NewBaseHandler(logger),
		accounts:    accounts,
		export:      export,
		validator:   validator,
	}
}

// GetDocument returns the signed-in student's full record.
// @Router /students/me [get]
func (h *StudentHandler) GetDocument(c *gin.Context) {
	identity, _ := currentIdentity(c)

	doc, err := h.accounts.GetDocument(c.Request.Context(), identity.UID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if doc == nil {
		// Admins and stale sessions own no document.
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateDocument replaces the profile and roadmaps.
// @Router /students/me [put]
func (h *StudentHandler) UpdateDocument(c *gin.Context) {
	identity, _ := currentIdentity(c)

	var req UpdateDocumentRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	if err := h.accounts.SaveProfileAndRoadmaps(c.Request.Context(), identity.UID, &req.Profile, req.Roadmaps); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Profile updated"})
}

// UpdateRoadmaps replaces the roadmap sequence.
// @Router /students/me/roadmaps [put]
func (h *StudentHandler) UpdateRoadmaps(c *gin.Context) {
	identity, _ := currentIdentity(c)

	var req UpdateRoadmapsRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	if err := h.accounts.SaveRoadmaps(c.Request.Context(), identity.UID, req.Roadmaps); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Roadmaps updated"})
}

// RecordTest appends a completed mock test to the student's history.
// @Router /students/me/tests [post]
func (h *StudentHandler) RecordTest(c *gin.Context) {
	identity, _ := currentIdentity(c)

	var req services.RecordTestRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	result, err := h.accounts.AppendMockTestResult(c.Request.Context(), identity.UID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ExportTests streams a student's mock-test history as .xlsx (admin only).
// @Router /students/{uid}/tests/export [get]
func (h *StudentHandler) ExportTests(c *gin.Context) {
	uid := ParseStringIDParam(c, "uid")
	if uid == "" {
		return
	}

	data, err := h.export.ExportMockTests(c.Request.Context(), uid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("mock-tests-%s.xlsx", uid)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
