package v1

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgob/incident_reporting_system/internal/models"
)

var csvHeader = []string{
	"id", "id_custom", "data_hora", "data_hora_acionamento",
	"hora_acionamento", "hora_chegada", "hora_saida",
	"municipio", "regiao", "bairro", "diretoria", "grupamento",
	"natureza_ocorrencia", "grupo_natureza", "subgrupo_natureza",
	"situacao", "viatura", "numero_vtr", "forma_acionamento",
	"tipo_logradouro", "ais", "ponto_base",
	"vitima", "sexo_vitima", "idade_vitima", "classificacao_vitima", "destino_vitima",
	"fotos", "created_at", "updated_at",
}

// @Summary Export ocorrências as CSV
// @Description Export all records matching the same filter fields as /ocorrencias/filtro.
// @Tags Ocorrencias
// @Produce text/csv
// @Security BearerAuth
// @Param municipio query string false "Municipality"
// @Param data_inicio query string false "Dispatch date range start (YYYY-MM-DD or RFC3339)"
// @Param data_fim query string false "Dispatch date range end (YYYY-MM-DD or RFC3339)"
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} map[string]string "Invalid date parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ocorrencias/exportar [get]
func (h *Handler) exportIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "exportIncidents")

	filter, err := parseIncidentFilter(c)
	if err != nil {
		log.WithError(err).Warn("Invalid filter parameters")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incidents, err := h.incidentService.FilterIncidents(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("Failed to filter incidents for export")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="ocorrencias.csv"`)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(csvHeader); err != nil {
		log.WithError(err).Error("Failed to write CSV header")
		return
	}
	for _, inc := range incidents {
		if err := w.Write(incidentToCSVRow(inc)); err != nil {
			log.WithError(err).Error("Failed to write CSV row")
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.WithError(err).Error("Failed to flush CSV output")
	}
}

func incidentToCSVRow(inc *models.Incident) []string {
	return []string{
		strconv.FormatInt(inc.ID, 10),
		strOrEmpty(inc.IDCustom),
		inc.DataHora.Format(time.RFC3339),
		timeOrEmpty(inc.DataHoraAcionamento),
		strOrEmpty(inc.HoraAcionamento),
		strOrEmpty(inc.HoraChegada),
		strOrEmpty(inc.HoraSaida),
		strOrEmpty(inc.Municipio),
		strOrEmpty(inc.Regiao),
		strOrEmpty(inc.Bairro),
		strOrEmpty(inc.Diretoria),
		strOrEmpty(inc.Grupamento),
		strOrEmpty(inc.NaturezaOcorrencia),
		strOrEmpty(inc.GrupoNatureza),
		strOrEmpty(inc.SubgrupoNatureza),
		strOrEmpty(inc.Situacao),
		strOrEmpty(inc.Viatura),
		strOrEmpty(inc.NumeroVTR),
		strOrEmpty(inc.FormaAcionamento),
		strOrEmpty(inc.TipoLogradouro),
		strOrEmpty(inc.AIS),
		strOrEmpty(inc.PontoBase),
		strconv.FormatBool(inc.Vitima),
		strOrEmpty(inc.SexoVitima),
		intOrEmpty(inc.IdadeVitima),
		strOrEmpty(inc.ClassificacaoVitima),
		strOrEmpty(inc.DestinoVitima),
		strings.Join(inc.Fotos, ";"),
		inc.CreatedAt.Format(time.RFC3339),
		inc.UpdatedAt.Format(time.RFC3339),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
