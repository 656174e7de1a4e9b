package v1

import (
	"time"

	"github.com/sgob/incident_reporting_system/internal/models"
)

// CreateIncidentRequest DTO для создания ocorrência.
// Поле id опционально: числовое значение игнорируется (ключ выдает БД),
// нечисловое сохраняется как id_custom.
// @Description DTO для создания ocorrência
type CreateIncidentRequest struct {
	ID *string `json:"id,omitempty"`

	DataHora            *time.Time `json:"data_hora,omitempty"`
	DataHoraAcionamento *time.Time `json:"data_hora_acionamento,omitempty"`
	HoraAcionamento     *string    `json:"hora_acionamento,omitempty"`
	HoraChegada         *string    `json:"hora_chegada,omitempty"`
	HoraSaida           *string    `json:"hora_saida,omitempty"`

	Municipio          *string `json:"municipio,omitempty"`
	Regiao             *string `json:"regiao,omitempty"`
	Bairro             *string `json:"bairro,omitempty"`
	Diretoria          *string `json:"diretoria,omitempty"`
	Grupamento         *string `json:"grupamento,omitempty"`
	NaturezaOcorrencia string  `json:"natureza_ocorrencia" validate:"required,min=2,max=255"`
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
	IdadeVitima         *int    `json:"idade_vitima,omitempty" validate:"omitempty,gte=0,lte=130"`
	ClassificacaoVitima *string `json:"classificacao_vitima,omitempty"`
	DestinoVitima       *string `json:"destino_vitima,omitempty"`

	Fotos []string `json:"fotos,omitempty"`
}

// UpdateIncidentRequest DTO для частичного обновления: непереданные поля
// не меняются.
// @Description DTO для частичного обновления ocorrência
type UpdateIncidentRequest struct {
	DataHora            *time.Time `json:"data_hora,omitempty"`
	DataHoraAcionamento *time.Time `json:"data_hora_acionamento,omitempty"`
	HoraAcionamento     *string    `json:"hora_acionamento,omitempty"`
	HoraChegada         *string    `json:"hora_chegada,omitempty"`
	HoraSaida           *string    `json:"hora_saida,omitempty"`

	Municipio          *string `json:"municipio,omitempty"`
	Regiao             *string `json:"regiao,omitempty"`
	Bairro             *string `json:"bairro,omitempty"`
	Diretoria          *string `json:"diretoria,omitempty"`
	Grupamento         *string `json:"grupamento,omitempty"`
	NaturezaOcorrencia *string `json:"natureza_ocorrencia,omitempty" validate:"omitempty,min=2,max=255"`
	GrupoNatureza      *string `json:"grupo_natureza,omitempty"`
	SubgrupoNatureza   *string `json:"subgrupo_natureza,omitempty"`
	Situacao           *string `json:"situacao,omitempty"`
	Viatura            *string `json:"viatura,omitempty"`
	NumeroVTR          *string `json:"numero_vtr,omitempty"`
	FormaAcionamento   *string `json:"forma_acionamento,omitempty"`
	TipoLogradouro     *string `json:"tipo_logradouro,omitempty"`
	AIS                *string `json:"ais,omitempty"`
	PontoBase          *string `json:"ponto_base,omitempty"`

	Vitima              *bool   `json:"vitima,omitempty"`
	SexoVitima          *string `json:"sexo_vitima,omitempty"`
	IdadeVitima         *int    `json:"idade_vitima,omitempty" validate:"omitempty,gte=0,lte=130"`
	ClassificacaoVitima *string `json:"classificacao_vitima,omitempty"`
	DestinoVitima       *string `json:"destino_vitima,omitempty"`

	Fotos *[]string `json:"fotos,omitempty"`
}

// StatsResponse DTO сводки дашборда; gerado_em проставляет хэндлер,
// а не агрегатор.
// @Description Сводка дашборда
type StatsResponse struct {
	models.DashboardStats
	GeradoEm time.Time `json:"gerado_em"`
}

// LoginRequest DTO для входа
// @Description DTO для входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse DTO с выданным токеном
// @Description DTO с выданным токеном
type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RegisterRequest DTO для создания пользователя администратором
// @Description DTO для создания пользователя
type RegisterRequest struct {
	Nome       string  `json:"nome" validate:"required,min=2,max=255"`
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	Role       string  `json:"role" validate:"omitempty,oneof=admin bombeiro"`
	Grupamento *string `json:"grupamento,omitempty"`
}

// DeleteResponse DTO подтверждения удаления
// @Description DTO подтверждения удаления
type DeleteResponse struct {
	Success bool `json:"success"`
}
