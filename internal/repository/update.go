package repository

import (
	"encoding/json"
	"fmt"

	"github.com/sgob/incident_reporting_system/internal/models"
)

// buildIncidentSet собирает SET-часть частичного UPDATE из ненулевых полей.
// Нумерация параметров начинается с startArg. updated_at сюда не входит,
// его всегда добавляет сам запрос.
func buildIncidentSet(upd models.IncidentUpdate, startArg int) ([]string, []any, error) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, startArg+len(args)-1))
	}

	if upd.DataHora != nil {
		add("data_hora", *upd.DataHora)
	}
	if upd.DataHoraAcionamento != nil {
		add("data_hora_acionamento", *upd.DataHoraAcionamento)
	}
	if upd.HoraAcionamento != nil {
		add("hora_acionamento", *upd.HoraAcionamento)
	}
	if upd.HoraChegada != nil {
		add("hora_chegada", *upd.HoraChegada)
	}
	if upd.HoraSaida != nil {
		add("hora_saida", *upd.HoraSaida)
	}
	if upd.Municipio != nil {
		add("municipio", *upd.Municipio)
	}
	if upd.Regiao != nil {
		add("regiao", *upd.Regiao)
	}
	if upd.Bairro != nil {
		add("bairro", *upd.Bairro)
	}
	if upd.Diretoria != nil {
		add("diretoria", *upd.Diretoria)
	}
	if upd.Grupamento != nil {
		add("grupamento", *upd.Grupamento)
	}
	if upd.NaturezaOcorrencia != nil {
		add("natureza_ocorrencia", *upd.NaturezaOcorrencia)
	}
	if upd.GrupoNatureza != nil {
		add("grupo_natureza", *upd.GrupoNatureza)
	}
	if upd.SubgrupoNatureza != nil {
		add("subgrupo_natureza", *upd.SubgrupoNatureza)
	}
	if upd.Situacao != nil {
		add("situacao", *upd.Situacao)
	}
	if upd.Viatura != nil {
		add("viatura", *upd.Viatura)
	}
	if upd.NumeroVTR != nil {
		add("numero_vtr", *upd.NumeroVTR)
	}
	if upd.FormaAcionamento != nil {
		add("forma_acionamento", *upd.FormaAcionamento)
	}
	if upd.TipoLogradouro != nil {
		add("tipo_logradouro", *upd.TipoLogradouro)
	}
	if upd.AIS != nil {
		add("ais", *upd.AIS)
	}
	if upd.PontoBase != nil {
		add("ponto_base", *upd.PontoBase)
	}
	if upd.Vitima != nil {
		add("vitima", *upd.Vitima)
	}
	if upd.SexoVitima != nil {
		add("sexo_vitima", *upd.SexoVitima)
	}
	if upd.IdadeVitima != nil {
		add("idade_vitima", *upd.IdadeVitima)
	}
	if upd.ClassificacaoVitima != nil {
		add("classificacao_vitima", *upd.ClassificacaoVitima)
	}
	if upd.DestinoVitima != nil {
		add("destino_vitima", *upd.DestinoVitima)
	}
	if upd.Fotos != nil {
		raw, err := fotosToDB(*upd.Fotos)
		if err != nil {
			return nil, nil, err
		}
		add("fotos", raw)
	}

	return sets, args, nil
}

// fotosToDB сериализует список ссылок на фото в одну JSON-строку.
// nil остается NULL в БД.
func fotosToDB(fotos []string) (*string, error) {
	if fotos == nil {
		return nil, nil
	}
	raw, err := json.Marshal(fotos)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fotos: %w", err)
	}
	s := string(raw)
	return &s, nil
}

// fotosFromDB разбирает JSON-строку из текстовой колонки обратно в список.
func fotosFromDB(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var fotos []string
	if err := json.Unmarshal([]byte(*raw), &fotos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fotos: %w", err)
	}
	return fotos, nil
}
