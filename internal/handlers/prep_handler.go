package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CampusPrep-2025/placement-service/internal/services"
	"github.com/CampusPrep-2025/placement-service/internal/utils"
	"github.com/CampusPrep-2025/placement-service/internal/validator"
)

// GenerateRoadmapRequest names the target role for a new roadmap.
type GenerateRoadmapRequest struct {
	Role string `json:"role" validate:"required,max=255"`
}

type PrepHandler struct {
	BaseHandler
	prep      services.PrepService
	validator *validator.Validator
}

func NewPrepHandler(prep services.PrepService, validator *validator.Validator, logger utils.Logger) *PrepHandler {
	return &PrepHandler{
		BaseHandler: NewBaseHandler(logger),
		prep:        prep,
		validator:   validator,
	}
}

// GenerateRoadmap generates a roadmap for the role and saves it onto the
// signed-in student's document.
// @Router /prep/roadmaps [post]
func (h *PrepHandler) GenerateRoadmap(c *gin.Context) {
	identity, _ := currentIdentity(c)

	var req GenerateRoadmapRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	h.LogRequest(c, "Generating roadmap", "role", req.Role)

	roadmap, err := h.prep.GenerateRoadmap(c.Request.Context(), identity.UID, req.Role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, roadmap)
}

// GenerateMockTest returns a freshly generated question set.
// @Router /prep/tests [post]
func (h *PrepHandler) GenerateMockTest(c *gin.Context) {
	var req services.GenerateTestRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	h.LogRequest(c, "Generating mock test", "topic", req.Topic, "difficulty", req.Difficulty)

	questions, err := h.prep.GenerateMockTest(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// GenerateInterviewQuestions returns company-specific interview prep.
// @Router /prep/interview [post]
func (h *PrepHandler) GenerateInterviewQuestions(c *gin.Context) {
	var req services.InterviewPrepRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	questions, err := h.prep.GenerateInterviewQuestions(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// AnalyzeResume returns ATS-style feedback for the submitted resume text.
// @Router /prep/resume [post]
func (h *PrepHandler) AnalyzeResume(c *gin.Context) {
	var req services.AnalyzeResumeRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	feedback, err := h.prep.AnalyzeResume(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, feedback)
}
