package v1

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgob/incident_reporting_system/internal/models"
)

const dateOnlyLayout = "2006-01-02"

// parseIncidentFilter читает allow-list параметров запроса в типизированный
// фильтр. Присутствие проверяется явно через GetQuery: ограничение ставится,
// только когда параметр передан и не пуст, так что значение "0" не теряется.
// Незнакомые параметры молча игнорируются.
func parseIncidentFilter(c *gin.Context) (models.IncidentFilter, error) {
	var f models.IncidentFilter

	str := func(name string) *string {
		if v, ok := c.GetQuery(name); ok && v != "" {
			return &v
		}
		return nil
	}

	f.Municipio = str("municipio")
	f.Regiao = str("regiao")
	f.Bairro = str("bairro")
	f.Diretoria = str("diretoria")
	f.Grupamento = str("grupamento")
	f.NaturezaOcorrencia = str("natureza_ocorrencia")
	f.GrupoNatureza = str("grupo_natureza")
	f.SubgrupoNatureza = str("subgrupo_natureza")
	f.Situacao = str("situacao")
	f.Viatura = str("viatura")
	f.NumeroVTR = str("numero_vtr")
	f.FormaAcionamento = str("forma_acionamento")
	f.TipoLogradouro = str("tipo_logradouro")
	f.AIS = str("ais")
	f.PontoBase = str("ponto_base")

	if v, ok := c.GetQuery("data_inicio"); ok && v != "" {
		t, err := parseDateParam(v, false)
		if err != nil {
			return f, fmt.Errorf("invalid data_inicio: %w", err)
		}
		f.DateFrom = &t
	}
	if v, ok := c.GetQuery("data_fim"); ok && v != "" {
		t, err := parseDateParam(v, true)
		if err != nil {
			return f, fmt.Errorf("invalid data_fim: %w", err)
		}
		f.DateTo = &t
	}

	return f, nil
}

// parseDateParam принимает RFC3339 или дату без времени. Дата без времени
// для верхней границы растягивается до конца суток, чтобы диапазон
// оставался включительным.
func parseDateParam(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %q or RFC3339 timestamp", dateOnlyLayout)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// parsePageRequest читает параметры пагинации; некорректные числа
// заменяются значениями по умолчанию, нормализацию границ делает сервис.
func parsePageRequest(c *gin.Context) models.PageRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return models.PageRequest{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
}
