package repository

import (
	"fmt"
	"strings"

	"github.com/sgob/incident_reporting_system/internal/models"
)

// buildIncidentWhere собирает WHERE-условие как конъюнкцию всех заданных
// ограничений фильтра. Значения передаются только связанными параметрами
// ($N), нумерация начинается с startArg. Пустой фильтр дает пустое условие.
func buildIncidentWhere(f models.IncidentFilter, startArg int) (string, []any) {
	var conds []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, startArg+len(args)-1))
	}

	if f.Municipio != nil {
		add("municipio", *f.Municipio)
	}
	if f.Regiao != nil {
		add("regiao", *f.Regiao)
	}
	if f.Bairro != nil {
		add("bairro", *f.Bairro)
	}
	if f.Diretoria != nil {
		add("diretoria", *f.Diretoria)
	}
	if f.Grupamento != nil {
		add("grupamento", *f.Grupamento)
	}
	if f.NaturezaOcorrencia != nil {
		add("natureza_ocorrencia", *f.NaturezaOcorrencia)
	}
	if f.GrupoNatureza != nil {
		add("grupo_natureza", *f.GrupoNatureza)
	}
	if f.SubgrupoNatureza != nil {
		add("subgrupo_natureza", *f.SubgrupoNatureza)
	}
	if f.Situacao != nil {
		add("situacao", *f.Situacao)
	}
	if f.Viatura != nil {
		add("viatura", *f.Viatura)
	}
	if f.NumeroVTR != nil {
		add("numero_vtr", *f.NumeroVTR)
	}
	if f.FormaAcionamento != nil {
		add("forma_acionamento", *f.FormaAcionamento)
	}
	if f.TipoLogradouro != nil {
		add("tipo_logradouro", *f.TipoLogradouro)
	}
	if f.AIS != nil {
		add("ais", *f.AIS)
	}
	if f.PontoBase != nil {
		add("ponto_base", *f.PontoBase)
	}

	// Диапазон дат включительно и только по моменту диспетчеризации,
	// не по времени создания записи.
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		conds = append(conds, fmt.Sprintf("data_hora_acionamento >= $%d", startArg+len(args)-1))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		conds = append(conds, fmt.Sprintf("data_hora_acionamento <= $%d", startArg+len(args)-1))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// sortableColumns - фиксированный allow-list колонок для ORDER BY.
// Поле сортировки приходит от клиента и никогда не подставляется в запрос
// без проверки по этому списку.
var sortableColumns = map[string]string{
	"id":                    "id",
	"data_hora":             "data_hora",
	"data_hora_acionamento": "data_hora_acionamento",
	"municipio":             "municipio",
	"regiao":                "regiao",
	"bairro":                "bairro",
	"diretoria":             "diretoria",
	"grupamento":            "grupamento",
	"natureza_ocorrencia":   "natureza_ocorrencia",
	"situacao":              "situacao",
	"created_at":            "created_at",
	"updated_at":            "updated_at",
}

const defaultSortColumn = "data_hora"

// resolveSortColumn возвращает безопасную колонку сортировки;
// неизвестное поле молча заменяется колонкой по умолчанию.
func resolveSortColumn(sortBy string) string {
	if col, ok := sortableColumns[sortBy]; ok {
		return col
	}
	return defaultSortColumn
}

// resolveSortOrder допускает только ASC и DESC, по умолчанию DESC.
func resolveSortOrder(order string) string {
	if strings.EqualFold(order, models.SortAsc) {
		return models.SortAsc
	}
	return models.SortDesc
}

// groupableColumns - allow-list колонок для сгруппированных агрегатов.
var groupableColumns = map[models.GroupField]string{
	models.GroupByMunicipio: "municipio",
	models.GroupBySituacao:  "situacao",
	models.GroupByNatureza:  "natureza_ocorrencia",
}
