package repository

import (
	"testing"
	"time"

	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestBuildIncidentWhere_Empty(t *testing.T) {
	where, args := buildIncidentWhere(models.IncidentFilter{}, 1)

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildIncidentWhere_SingleField(t *testing.T) {
	filter := models.IncidentFilter{Municipio: strPtr("Recife")}

	where, args := buildIncidentWhere(filter, 1)

	assert.Equal(t, "WHERE municipio = $1", where)
	assert.Equal(t, []any{"Recife"}, args)
}

func TestBuildIncidentWhere_Conjunction(t *testing.T) {
	filter := models.IncidentFilter{
		Municipio: strPtr("Olinda"),
		Situacao:  strPtr("finalizada"),
	}

	where, args := buildIncidentWhere(filter, 1)

	// Несколько ограничений всегда соединяются через AND.
	assert.Equal(t, "WHERE municipio = $1 AND situacao = $2", where)
	assert.Equal(t, []any{"Olinda", "finalizada"}, args)
}

func TestBuildIncidentWhere_ZeroValueIsPresent(t *testing.T) {
	// Критерий участия - наличие поля, а не его "непустота": строка "0"
	// должна попасть в условие как обычное значение.
	filter := models.IncidentFilter{NumeroVTR: strPtr("0")}

	where, args := buildIncidentWhere(filter, 1)

	assert.Equal(t, "WHERE numero_vtr = $1", where)
	assert.Equal(t, []any{"0"}, args)
}

func TestBuildIncidentWhere_DateRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	filter := models.IncidentFilter{
		Municipio: strPtr("Recife"),
		DateFrom:  &from,
		DateTo:    &to,
	}

	where, args := buildIncidentWhere(filter, 1)

	assert.Equal(t, "WHERE municipio = $1 AND data_hora_acionamento >= $2 AND data_hora_acionamento <= $3", where)
	require.Len(t, args, 3)
	assert.Equal(t, from, args[1])
	assert.Equal(t, to, args[2])
}

func TestBuildIncidentWhere_StartArgOffset(t *testing.T) {
	// Нумерация параметров должна продолжаться с startArg, когда перед
	// фильтром в запросе уже есть свои параметры.
	filter := models.IncidentFilter{Bairro: strPtr("Boa Viagem")}

	where, args := buildIncidentWhere(filter, 3)

	assert.Equal(t, "WHERE bairro = $3", where)
	assert.Equal(t, []any{"Boa Viagem"}, args)
}

func TestResolveSortColumn(t *testing.T) {
	assert.Equal(t, "municipio", resolveSortColumn("municipio"))
	assert.Equal(t, "data_hora_acionamento", resolveSortColumn("data_hora_acionamento"))

	// Неизвестное поле молча заменяется колонкой по умолчанию.
	assert.Equal(t, defaultSortColumn, resolveSortColumn("fotos; DROP TABLE ocorrencias"))
	assert.Equal(t, defaultSortColumn, resolveSortColumn(""))
}

func TestResolveSortOrder(t *testing.T) {
	assert.Equal(t, models.SortAsc, resolveSortOrder("ASC"))
	assert.Equal(t, models.SortAsc, resolveSortOrder("asc"))
	assert.Equal(t, models.SortDesc, resolveSortOrder("DESC"))
	assert.Equal(t, models.SortDesc, resolveSortOrder(""))
	assert.Equal(t, models.SortDesc, resolveSortOrder("sideways"))
}

func TestBuildIncidentSet_Partial(t *testing.T) {
	sets, args, err := buildIncidentSet(models.IncidentUpdate{
		Situacao:  strPtr("finalizada"),
		Municipio: strPtr("Caruaru"),
	}, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"municipio = $1", "situacao = $2"}, sets)
	assert.Equal(t, []any{"Caruaru", "finalizada"}, args)
}

func TestBuildIncidentSet_Empty(t *testing.T) {
	sets, args, err := buildIncidentSet(models.IncidentUpdate{}, 1)

	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.Empty(t, args)
}

func TestFotos_RoundTrip(t *testing.T) {
	fotos := []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"}

	raw, err := fotosToDB(fotos)
	require.NoError(t, err)
	require.NotNil(t, raw)

	parsed, err := fotosFromDB(raw)
	require.NoError(t, err)
	assert.Equal(t, fotos, parsed)
}

func TestFotos_NilStaysNull(t *testing.T) {
	raw, err := fotosToDB(nil)
	require.NoError(t, err)
	assert.Nil(t, raw)

	parsed, err := fotosFromDB(nil)
	require.NoError(t, err)
	assert.Nil(t, parsed)
}
