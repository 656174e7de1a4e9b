package models

import "time"

// IncidentFilter - типизированный набор необязательных фильтров.
// Присутствие ограничения определяется по nil, а не по "truthiness":
// указатель на пустую строку или на "0" - это тоже валидный фильтр.
// Все заданные поля объединяются через AND; пустой фильтр совпадает со всеми записями.
type IncidentFilter struct {
	Municipio          *string
	Regiao             *string
	Bairro             *string
	Diretoria          *string
	Grupamento         *string
	NaturezaOcorrencia *string
	GrupoNatureza      *string
	SubgrupoNatureza   *string
	Situacao           *string
	Viatura            *string
	NumeroVTR          *string
	FormaAcionamento   *string
	TipoLogradouro     *string
	AIS                *string
	PontoBase          *string

	// Диапазон дат включительно, применяется только к data_hora_acionamento.
	DateFrom *time.Time
	DateTo   *time.Time
}

// IsEmpty сообщает, задано ли хоть одно ограничение.
func (f IncidentFilter) IsEmpty() bool {
	return f.Municipio == nil && f.Regiao == nil && f.Bairro == nil &&
		f.Diretoria == nil && f.Grupamento == nil && f.NaturezaOcorrencia == nil &&
		f.GrupoNatureza == nil && f.SubgrupoNatureza == nil && f.Situacao == nil &&
		f.Viatura == nil && f.NumeroVTR == nil && f.FormaAcionamento == nil &&
		f.TipoLogradouro == nil && f.AIS == nil && f.PontoBase == nil &&
		f.DateFrom == nil && f.DateTo == nil
}
