package models

// NotInformed - метка-корзина для записей без значения в группируемом поле.
// Такие записи не выбрасываются из агрегатов.
const NotInformed = "Não informado"

// GroupField - поле, по которому агрегатор считает сгруппированные количества.
type GroupField string

const (
	GroupByMunicipio GroupField = "municipio"
	GroupBySituacao  GroupField = "situacao"
	GroupByNatureza  GroupField = "natureza_ocorrencia"
)

// GroupCount - одна строка сгруппированного подсчета.
type GroupCount struct {
	Label string `json:"label"`
	Total int64  `json:"total"`
}

// DashboardStats - фиксированная сводка для дашборда, не зависит от фильтров.
// Снимок best-effort: подзапросы выполняются параллельно без изоляции,
// параллельные записи могут попасть в одни подрезультаты и не попасть в другие.
type DashboardStats struct {
	Total        int64        `json:"total"`
	PorMunicipio []GroupCount `json:"por_municipio"`
	PorSituacao  []GroupCount `json:"por_situacao"`
	PorNatureza  []GroupCount `json:"por_natureza"`
	UltimoMes    int64        `json:"ultimo_mes"`
	Recentes     []*Incident  `json:"recentes"`
}
