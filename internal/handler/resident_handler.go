package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"villa-be-svc/internal/models/response"
	"villa-be-svc/internal/service"
	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ResidentHandler handles resident-related HTTP requests
type ResidentHandler struct {
	residentService service.ResidentService
	logger          *logger.Logger
}

// NewResidentHandler creates a new resident handler
func NewResidentHandler(residentService service.ResidentService, logger *logger.Logger) *ResidentHandler {
	return &ResidentHandler{
		residentService: residentService,
		logger:          logger,
	}
}

// CreateResident handles POST /api/v1/residents
// @Summary Create resident
// @Description Validate a resident, open its login account and persist it
// @Tags residents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateResidentRequest true "Resident data"
// @Success 201 {object} utils.APIResponse{data=response.CreateResidentResponse} "Resident created successfully"
// @Failure 400 {object} utils.APIResponse "Invalid resident data"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [post]
func (h *ResidentHandler) CreateResident(c *gin.Context) {
	var req service.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	resident, err := h.residentService.Create(&req)
	if err != nil {
		respondServiceError(c, err, "Failed to create resident")
		return
	}

	utils.CreatedResponse(c, "Resident created successfully", resident)
}

// ListResidents handles GET /api/v1/residents
// @Summary List residents
// @Description Get the name and ID of every resident
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.ResidentNameAndID} "Residents retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents [get]
func (h *ResidentHandler) ListResidents(c *gin.Context) {
	residents, err := h.residentService.ListResidents()
	if err != nil {
		respondServiceError(c, err, "Failed to list residents")
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", nonNil(residents))
}

// GetAllResidents handles GET /api/v1/residents/all
// @Summary Get all residents
// @Description Get every resident record
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]response.ResidentResponse} "Residents retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/all [get]
func (h *ResidentHandler) GetAllResidents(c *gin.Context) {
	residents, err := h.residentService.GetAll()
	if err != nil {
		respondServiceError(c, err, "Failed to get residents")
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// GetResident handles GET /api/v1/residents/:id
// @Summary Get resident by ID
// @Description Get a resident in the shape it was created with, without password
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse{data=service.CreateResidentRequest} "Resident retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid resident ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 404 {object} utils.APIResponse "Resident not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [get]
func (h *ResidentHandler) GetResident(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.logger.WithError(err).WithField("id_param", c.Param("id")).Error("Invalid resident ID parameter")
		utils.BadRequestResponse(c, "Invalid resident ID", err)
		return
	}

	resident, err := h.residentService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "Failed to get resident")
		return
	}

	utils.SuccessResponse(c, "Resident retrieved successfully", resident)
}

// FilterByName handles GET /api/v1/residents/filter
// @Summary Filter residents by name
// @Description Get residents whose name contains the given text, ignoring case
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param name query string true "Part of the name"
// @Success 200 {object} utils.APIResponse{data=[]response.ResidentNameAndID} "Residents retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Name is required"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/filter [get]
func (h *ResidentHandler) FilterByName(c *gin.Context) {
	residents, err := h.residentService.FilterByName(c.Query("name"))
	if err != nil {
		respondServiceError(c, err, "Failed to filter residents")
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", nonNil(residents))
}

// FilterByMonth handles GET /api/v1/residents/birthdays
// @Summary Filter residents by birth month
// @Description Get residents born in the named month, e.g. "janeiro", matched ignoring case
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param month query string true "Month name in the configured locale"
// @Success 200 {object} utils.APIResponse{data=[]response.ResidentNameAndID} "Residents retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Month is required"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/birthdays [get]
func (h *ResidentHandler) FilterByMonth(c *gin.Context) {
	residents, err := h.residentService.FilterByMonth(c.Query("month"))
	if err != nil {
		respondServiceError(c, err, "Failed to filter residents")
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// FilterByAge handles GET /api/v1/residents/age
// @Summary Filter residents by minimum age
// @Description Get residents aged at least min_age whole years
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param min_age query int true "Minimum age in years"
// @Success 200 {object} utils.APIResponse{data=[]response.ResidentNameAndID} "Residents retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid minimum age"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/age [get]
func (h *ResidentHandler) FilterByAge(c *gin.Context) {
	minAge, err := utils.GetOptionalIntQuery(c, "min_age")
	if err != nil {
		h.logger.WithError(err).WithField("min_age", c.Query("min_age")).Error("Invalid min_age parameter")
		utils.BadRequestResponse(c, "Invalid minimum age", err)
		return
	}

	residents, err := h.residentService.FilterByAge(minAge)
	if err != nil {
		respondServiceError(c, err, "Failed to filter residents")
		return
	}

	utils.SuccessResponse(c, "Residents retrieved successfully", residents)
}

// DeleteResident handles DELETE /api/v1/residents/:id
// @Summary Delete resident
// @Description Delete a resident by ID. Deleting a missing resident succeeds.
// @Tags residents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resident ID"
// @Success 200 {object} utils.APIResponse "Resident deleted successfully"
// @Failure 400 {object} utils.APIResponse "Invalid resident ID"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/{id} [delete]
func (h *ResidentHandler) DeleteResident(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.logger.WithError(err).WithField("id_param", c.Param("id")).Error("Invalid resident ID parameter")
		utils.BadRequestResponse(c, "Invalid resident ID", err)
		return
	}

	if err := h.residentService.DeleteByID(id); err != nil {
		respondServiceError(c, err, "Failed to delete resident")
		return
	}

	utils.SuccessResponse(c, "Resident deleted successfully", nil)
}

// ExportResidents handles GET /api/v1/residents/export
// @Summary Export residents to Excel
// @Description Download every resident as an .xlsx workbook
// @Tags residents
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "Excel file"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Failure 403 {object} utils.APIResponse "Forbidden"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/residents/export [get]
func (h *ResidentHandler) ExportResidents(c *gin.Context) {
	data, filename, err := h.residentService.ExportResidents()
	if err != nil {
		respondServiceError(c, err, "Failed to export residents")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Transfer-Encoding", "binary")
	c.Data(http.StatusOK, xlsxContentType, data)
}

// nonNil keeps empty projections serialized as [] instead of null
func nonNil(residents []*response.ResidentNameAndID) []*response.ResidentNameAndID {
	if residents == nil {
		return []*response.ResidentNameAndID{}
	}
	return residents
}
