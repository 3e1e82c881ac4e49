package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CampusPrep-2025/placement-service/internal/services"
	"github.com/CampusPrep-2025/placement-service/internal/utils"
	"github.com/CampusPrep-2025/placement-service/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DriveHandler struct {
	BaseHandler
	drives    services.DriveService
	export    services.ExportService
	validator *validator.Validator
}

func NewDriveHandler(drives services.DriveService, export services.ExportService, validator *validator.Validator, logger utils.Logger) *DriveHandler {
	return &DriveHandler{
		BaseHandler: NewBaseHandler(logger),
		drives:      drives,
		export:      export,
		validator:   validator,
	}
}

// ListDrives returns the catalog, newest first.
// @Router /drives [get]
func (h *DriveHandler) ListDrives(c *gin.Context) {
	drives, err := h.drives.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, drives)
}

// AddDrive posts a new drive (admin only).
// @Router /drives [post]
func (h *DriveHandler) AddDrive(c *gin.Context) {
	var req services.AddDriveRequest
	if !h.bindAndValidate(c, h.validator.ValidateStruct, &req) {
		return
	}

	h.LogRequest(c, "Posting drive", "company", req.CompanyName)

	drive, err := h.drives.Add(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, drive)
}

// RemoveDrive deletes a drive (admin only). Removing an unknown id succeeds.
// @Router /drives/{id} [delete]
func (h *DriveHandler) RemoveDrive(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	if err := h.drives.Remove(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportDrives streams the catalog as an .xlsx workbook (admin only).
// @Router /drives/export [get]
func (h *DriveHandler) ExportDrives(c *gin.Context) {
	data, err := h.export.ExportDrives(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("drives-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
