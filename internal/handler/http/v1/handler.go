package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sgob/incident_reporting_system/internal/config"
	"github.com/sgob/incident_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	authService     service.AuthService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(incidentService service.IncidentService, authService service.AuthService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		incidentService: incidentService,
		authService:     authService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new ocorrência
// @Description Create a new incident record. A non-numeric caller id is kept as id_custom.
// @Tags Ocorrencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ocorrencia body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := CreateRequestToModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, model)
}

// @Summary List all ocorrências
// @Description Get every incident record, newest first, without filters or pagination.
// @Tags Ocorrencias
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Get ocorrência by id
// @Description Get a single incident by its numeric id or id_custom.
// @Tags Ocorrencias
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident id (numeric) or id_custom"
// @Success 200 {object} models.Incident
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	ident := c.Param("id")
	log := h.logger.WithField("method", "getIncident").WithField("id", ident)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), ident)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ocorrência not found"})
			return
		}
		log.WithError(err).Error("Failed to get incident from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, incident)
}

// @Summary Filter ocorrências
// @Description Unpaginated filter: equality fields plus data_inicio/data_fim, all matches newest first.
// @Tags Ocorrencias
// @Produce json
// @Security BearerAuth
// @Param municipio query string false "Municipality"
// @Param natureza_ocorrencia query string false "Incident nature"
// @Param situacao query string false "Status"
// @Param data_inicio query string false "Dispatch date range start (YYYY-MM-DD or RFC3339)"
// @Param data_fim query string false "Dispatch date range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} models.Incident
// @Failure 400 {object} map[string]string "Invalid date parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/filtro [get]
func (h *Handler) filterIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "filterIncidents")

	filter, err := parseIncidentFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid filter parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents, err := h.incidentService.FilterIncidents(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to filter incidents in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, incidents)
}

// @Summary Advanced filter with pagination
// @Description Same filter fields plus page, limit, sortBy and sortOrder; returns one page and pagination metadata.
// @Tags Ocorrencias
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Param sortBy query string false "Sort column" default(data_hora)
// @Param sortOrder query string false "ASC or DESC" default(DESC)
// @Success 200 {object} models.IncidentPage
// @Failure 400 {object} map[string]string "Invalid date parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/filtro-avancado [get]
func (h *Handler) filterIncidentsAdvanced(c *gin.Context) {
	log := h.logger.WithField("method", "filterIncidentsAdvanced")

	filter, err := parseIncidentFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid filter parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page := parsePageRequest(c)

	result, err := h.incidentService.FilterIncidentsPage(c.Request.Context(), filter, page)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incident page in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Update an ocorrência
// @Description Partial update by id or id_custom; returns the record after the update.
// @Tags Ocorrencias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident id (numeric) or id_custom"
// @Param ocorrencia body UpdateIncidentRequest true "Fields to change"
// @Success 200 {object} models.Incident
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/{id} [put]
func (h *Handler) updateIncident(c *gin.Context) {
	ident := c.Param("id")
	log := h.logger.WithField("method", "updateIncident").WithField("id", ident)

	var input UpdateIncidentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.incidentService.UpdateIncident(c.Request.Context(), ident, UpdateRequestToModel(input))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ocorrência not found"})
			return
		}
		log.WithError(err).Error("Failed to update incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete an ocorrência
// @Description Delete by id or id_custom. Requires admin role. Deleting twice yields 404.
// @Tags Ocorrencias
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident id (numeric) or id_custom"
// @Success 200 {object} DeleteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	ident := c.Param("id")
	log := h.logger.WithField("method", "deleteIncident").WithField("id", ident)

	if err := h.incidentService.DeleteIncident(c.Request.Context(), ident); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ocorrência not found"})
			return
		}
		log.WithError(err).Error("Failed to delete incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, DeleteResponse{Success: true})
}

// @Summary Dashboard statistics
// @Description Fixed aggregate snapshot: totals, groupings, trailing 30-day count and 5 most recent records.
// @Tags Ocorrencias
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/estatisticas [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	stats, err := h.incidentService.GetDashboard(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get dashboard stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{
		DashboardStats: *stats,
		GeradoEm:       time.Now(),
	})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
