package v1

import (
	"strconv"

	"github.com/sgob/incident_reporting_system/internal/models"
)

// CreateRequestToModel преобразует DTO создания в доменную модель.
// Числовой клиентский id отбрасывается (первичный ключ назначает БД),
// нечисловой сохраняется как id_custom.
func CreateRequestToModel(req CreateIncidentRequest) *models.Incident {
	inc := &models.Incident{
		DataHoraAcionamento: req.DataHoraAcionamento,
		HoraAcionamento:     req.HoraAcionamento,
		HoraChegada:         req.HoraChegada,
		HoraSaida:           req.HoraSaida,
		Municipio:           req.Municipio,
		Regiao:              req.Regiao,
		Bairro:              req.Bairro,
		Diretoria:           req.Diretoria,
		Grupamento:          req.Grupamento,
		NaturezaOcorrencia:  &req.NaturezaOcorrencia,
		GrupoNatureza:       req.GrupoNatureza,
		SubgrupoNatureza:    req.SubgrupoNatureza,
		Situacao:            req.Situacao,
		Viatura:             req.Viatura,
		NumeroVTR:           req.NumeroVTR,
		FormaAcionamento:    req.FormaAcionamento,
		TipoLogradouro:      req.TipoLogradouro,
		AIS:                 req.AIS,
		PontoBase:           req.PontoBase,
		Vitima:              req.Vitima,
		SexoVitima:          req.SexoVitima,
		IdadeVitima:         req.IdadeVitima,
		ClassificacaoVitima: req.ClassificacaoVitima,
		DestinoVitima:       req.DestinoVitima,
		Fotos:               req.Fotos,
	}
	if req.DataHora != nil {
		inc.DataHora = *req.DataHora
	}
	if req.ID != nil {
		if _, err := strconv.ParseInt(*req.ID, 10, 64); err != nil {
			inc.IDCustom = req.ID
		}
	}
	return inc
}

// UpdateRequestToModel преобразует DTO обновления в набор изменений.
func UpdateRequestToModel(req UpdateIncidentRequest) models.IncidentUpdate {
	return models.IncidentUpdate{
		DataHora:            req.DataHora,
		DataHoraAcionamento: req.DataHoraAcionamento,
		HoraAcionamento:     req.HoraAcionamento,
		HoraChegada:         req.HoraChegada,
		HoraSaida:           req.HoraSaida,
		Municipio:           req.Municipio,
		Regiao:              req.Regiao,
		Bairro:              req.Bairro,
		Diretoria:           req.Diretoria,
		Grupamento:          req.Grupamento,
		NaturezaOcorrencia:  req.NaturezaOcorrencia,
		GrupoNatureza:       req.GrupoNatureza,
		SubgrupoNatureza:    req.SubgrupoNatureza,
		Situacao:            req.Situacao,
		Viatura:             req.Viatura,
		NumeroVTR:           req.NumeroVTR,
		FormaAcionamento:    req.FormaAcionamento,
		TipoLogradouro:      req.TipoLogradouro,
		AIS:                 req.AIS,
		PontoBase:           req.PontoBase,
		Vitima:              req.Vitima,
		SexoVitima:          req.SexoVitima,
		IdadeVitima:         req.IdadeVitima,
		ClassificacaoVitima: req.ClassificacaoVitima,
		DestinoVitima:       req.DestinoVitima,
		Fotos:               req.Fotos,
	}
}

// RegisterRequestToModel преобразует DTO регистрации в модель пользователя.
func RegisterRequestToModel(req RegisterRequest) *models.User {
	return &models.User{
		Nome:       req.Nome,
		Email:      req.Email,
		Role:       req.Role,
		Grupamento: req.Grupamento,
	}
}
