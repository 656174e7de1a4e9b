package models

import (
	"time"
)

// Incident представляет одну запись об оперативном выезде ("ocorrência").
// Классификационные поля - свободные строки, сервер их не нормализует.
type Incident struct {
	ID       int64   `json:"id"`
	IDCustom *string `json:"id_custom,omitempty"`

	DataHora            time.Time  `json:"data_hora"`
	DataHoraAcionamento *time.Time `json:"data_hora_acionamento,omitempty"`
	HoraAcionamento     *string    `json:"hora_acionamento,omitempty"`
	HoraChegada         *string    `json:"hora_chegada,omitempty"`
	HoraSaida           *string    `json:"hora_saida,omitempty"`

	Municipio          *string `json:"municipio,omitempty"`
	Regiao             *string `json:"regiao,omitempty"`
	Bairro             *string `json:"bairro,omitempty"`
	Diretoria          *string `json:"diretoria,omitempty"`
	Grupamento         *string `json:"grupamento,omitempty"`
	NaturezaOcorrencia *string `json:"natureza_ocorrencia,omitempty"`
	GrupoNatureza      *string `json:"grupo_natureza,omitempty"`
	SubgrupoNatureza   *string `json:"subgrupo_natureza,omitempty"`
	Situacao           *string `json:"situacao,omitempty"`
	Viatura            *string `json:"viatura,omitempty"`
	NumeroVTR          *string `json:"numero_vtr,omitempty"`
	FormaAcionamento   *string `json:"forma_acionamento,omitempty"`
	TipoLogradouro     *string `json:"tipo_logradouro,omitempty"`
	AIS                *string `json:"ais,omitempty"`
	PontoBase          *string `json:"ponto_base,omitempty"`

	Vitima              bool    `json:"vitima"`
	SexoVitima          *string `json:"sexo_vitima,omitempty"`
	IdadeVitima         *int    `json:"idade_vitima,omitempty"`
	ClassificacaoVitima *string `json:"classificacao_vitima,omitempty"`
	DestinoVitima       *string `json:"destino_vitima,omitempty"`

	// Ссылки на фотографии; в БД хранятся одной JSON-строкой в текстовой колонке.
	Fotos []string `json:"fotos,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IncidentUpdate описывает частичное обновление: nil-поле не трогает колонку.
type IncidentUpdate struct {
	DataHora            *time.Time
	DataHoraAcionamento *time.Time
	HoraAcionamento     *string
	HoraChegada         *string
	HoraSaida           *string

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

	Vitima              *bool
	SexoVitima          *string
	IdadeVitima         *int
	ClassificacaoVitima *string
	DestinoVitima       *string

	Fotos *[]string
}
