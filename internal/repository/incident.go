package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/sgob/incident_reporting_system/internal/service"
)

const (
	incidentCacheTTL  = 5 * time.Minute
	dashboardCacheTTL = time.Minute

	dashboardCacheKey = "dashboard:stats"
)

// incidentColumns - полный список колонок таблицы ocorrencias в порядке scanIncident.
const incidentColumns = `
	id, id_custom, data_hora, data_hora_acionamento,
	hora_acionamento, hora_chegada, hora_saida,
	municipio, regiao, bairro, diretoria, grupamento,
	natureza_ocorrencia, grupo_natureza, subgrupo_natureza,
	situacao, viatura, numero_vtr, forma_acionamento,
	tipo_logradouro, ais, ponto_base,
	vitima, sexo_vitima, idade_vitima, classificacao_vitima, destino_vitima,
	fotos, created_at, updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanIncident читает одну строку выборки в модель; порядок полей
// должен совпадать с incidentColumns.
func scanIncident(row rowScanner) (*models.Incident, error) {
	inc := &models.Incident{}
	var rawFotos *string
	err := row.Scan(
		&inc.ID,
		&inc.IDCustom,
		&inc.DataHora,
		&inc.DataHoraAcionamento,
		&inc.HoraAcionamento,
		&inc.HoraChegada,
		&inc.HoraSaida,
		&inc.Municipio,
		&inc.Regiao,
		&inc.Bairro,
		&inc.Diretoria,
		&inc.Grupamento,
		&inc.NaturezaOcorrencia,
		&inc.GrupoNatureza,
		&inc.SubgrupoNatureza,
		&inc.Situacao,
		&inc.Viatura,
		&inc.NumeroVTR,
		&inc.FormaAcionamento,
		&inc.TipoLogradouro,
		&inc.AIS,
		&inc.PontoBase,
		&inc.Vitima,
		&inc.SexoVitima,
		&inc.IdadeVitima,
		&inc.ClassificacaoVitima,
		&inc.DestinoVitima,
		&rawFotos,
		&inc.CreatedAt,
		&inc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inc.Fotos, err = fotosFromDB(rawFotos)
	if err != nil {
		return nil, err
	}
	return inc, nil
}

func collectIncidents(rows pgx.Rows) ([]*models.Incident, error) {
	defer rows.Close()
	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		inc, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incident rows: %w", err)
	}
	return incidents, nil
}

// Create вставляет новую запись и читает назад серверные поля.
func (r *IncidentRepository) Create(ctx context.Context, inc *models.Incident) error {
	rawFotos, err := fotosToDB(inc.Fotos)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ocorrencias (
			id_custom, data_hora, data_hora_acionamento,
			hora_acionamento, hora_chegada, hora_saida,
			municipio, regiao, bairro, diretoria, grupamento,
			natureza_ocorrencia, grupo_natureza, subgrupo_natureza,
			situacao, viatura, numero_vtr, forma_acionamento,
			tipo_logradouro, ais, ponto_base,
			vitima, sexo_vitima, idade_vitima, classificacao_vitima, destino_vitima,
			fotos
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		) RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		inc.IDCustom,
		inc.DataHora,
		inc.DataHoraAcionamento,
		inc.HoraAcionamento,
		inc.HoraChegada,
		inc.HoraSaida,
		inc.Municipio,
		inc.Regiao,
		inc.Bairro,
		inc.Diretoria,
		inc.Grupamento,
		inc.NaturezaOcorrencia,
		inc.GrupoNatureza,
		inc.SubgrupoNatureza,
		inc.Situacao,
		inc.Viatura,
		inc.NumeroVTR,
		inc.FormaAcionamento,
		inc.TipoLogradouro,
		inc.AIS,
		inc.PontoBase,
		inc.Vitima,
		inc.SexoVitima,
		inc.IdadeVitima,
		inc.ClassificacaoVitima,
		inc.DestinoVitima,
		rawFotos,
	).Scan(&inc.ID, &inc.CreatedAt, &inc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает запись по числовому первичному ключу.
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM ocorrencias WHERE id = $1;`, incidentColumns)
	inc, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return inc, nil
}

// GetByCustomID возвращает запись по строковому идентификатору id_custom.
func (r *IncidentRepository) GetByCustomID(ctx context.Context, idCustom string) (*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM ocorrencias WHERE id_custom = $1;`, incidentColumns)
	inc, err := scanIncident(r.db.QueryRow(ctx, query, idCustom))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get incident by custom id: %w", err)
	}
	return inc, nil
}

// Update выполняет частичное обновление; updated_at обновляется всегда,
// даже когда других изменений нет.
func (r *IncidentRepository) Update(ctx context.Context, id int64, upd models.IncidentUpdate) error {
	sets, args, err := buildIncidentSet(upd, 1)
	if err != nil {
		return err
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE ocorrencias SET %s WHERE id = $%d;`,
		strings.Join(sets, ", "), len(args),
	)
	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// Delete удаляет запись физически, мягкого удаления нет.
func (r *IncidentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ocorrencias WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

// ListAll возвращает все записи, новые первыми.
func (r *IncidentRepository) ListAll(ctx context.Context) ([]*models.Incident, error) {
	query := fmt.Sprintf(`SELECT %s FROM ocorrencias ORDER BY data_hora DESC;`, incidentColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	return collectIncidents(rows)
}

// Find возвращает все совпадения фильтра без пагинации, новые первыми.
func (r *IncidentRepository) Find(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	where, args := buildIncidentWhere(filter, 1)
	query := fmt.Sprintf(
		`SELECT %s FROM ocorrencias %s ORDER BY data_hora DESC;`,
		incidentColumns, where,
	)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents: %w", err)
	}
	return collectIncidents(rows)
}

// FindPage возвращает одну страницу совпадений и общее количество строк,
// удовлетворяющих тому же фильтру. Оба запроса используют один и тот же
// предикат; страница за пределами выдачи - пустой срез, не ошибка.
func (r *IncidentRepository) FindPage(ctx context.Context, filter models.IncidentFilter, page models.PageRequest) ([]*models.Incident, int64, error) {
	where, args := buildIncidentWhere(filter, 1)

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM ocorrencias %s;`, where)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	sortColumn := resolveSortColumn(page.SortBy)
	sortOrder := resolveSortOrder(page.SortOrder)

	pageArgs := append(args, page.Limit, page.Offset())
	dataQuery := fmt.Sprintf(
		`SELECT %s FROM ocorrencias %s ORDER BY %s %s LIMIT $%d OFFSET $%d;`,
		incidentColumns, where, sortColumn, sortOrder, len(pageArgs)-1, len(pageArgs),
	)
	rows, err := r.db.Query(ctx, dataQuery, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch incident page: %w", err)
	}
	incidents, err := collectIncidents(rows)
	if err != nil {
		return nil, 0, err
	}
	return incidents, total, nil
}

// CountAll возвращает общее число записей.
func (r *IncidentRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ocorrencias;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

// CountGrouped считает записи по значению поля, по убыванию количества.
// NULL и пустая строка попадают в корзину models.NotInformed.
func (r *IncidentRepository) CountGrouped(ctx context.Context, field models.GroupField) ([]models.GroupCount, error) {
	column, ok := groupableColumns[field]
	if !ok {
		return nil, fmt.Errorf("unknown group field %q", field)
	}
	query := fmt.Sprintf(`
		SELECT COALESCE(NULLIF(%s, ''), $1) AS label, COUNT(*) AS total
		FROM ocorrencias
		GROUP BY 1
		ORDER BY 2 DESC;
	`, column)
	rows, err := r.db.Query(ctx, query, models.NotInformed)
	if err != nil {
		return nil, fmt.Errorf("failed to count incidents by %s: %w", column, err)
	}
	defer rows.Close()

	counts := make([]models.GroupCount, 0)
	for rows.Next() {
		var gc models.GroupCount
		if err := rows.Scan(&gc.Label, &gc.Total); err != nil {
			return nil, fmt.Errorf("failed to scan group count row: %w", err)
		}
		counts = append(counts, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group count rows: %w", err)
	}
	return counts, nil
}

// CountSince считает записи, созданные не раньше заданного момента.
func (r *IncidentRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ocorrencias WHERE data_hora >= $1;`, since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent incidents: %w", err)
	}
	return count, nil
}

// Recent возвращает limit последних записей по времени создания.
func (r *IncidentRepository) Recent(ctx context.Context, limit int) ([]*models.Incident, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM ocorrencias ORDER BY data_hora DESC LIMIT $1;`,
		incidentColumns,
	)
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent incidents: %w", err)
	}
	return collectIncidents(rows)
}

// GetIncidentFromCache пытается получить запись из Redis; промах - (nil, nil).
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error) {
	key := fmt.Sprintf("ocorrencia:%d", id)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	inc := &models.Incident{}
	if err := json.Unmarshal(val, inc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return inc, nil
}

// SetIncidentCache сохраняет запись в Redis.
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, inc *models.Incident) error {
	key := fmt.Sprintf("ocorrencia:%d", inc.ID)
	val, err := json.Marshal(inc)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache убирает запись из кэша после изменения или удаления.
// Вместе с ней сбрасывается и кэш дашборда: любая запись меняет агрегаты.
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id int64) error {
	key := fmt.Sprintf("ocorrencia:%d", id)
	if err := r.redisClient.Del(ctx, key, dashboardCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// GetDashboardFromCache пытается получить готовую сводку; промах - (nil, nil).
func (r *IncidentRepository) GetDashboardFromCache(ctx context.Context) (*models.DashboardStats, error) {
	val, err := r.redisClient.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard from cache: %w", err)
	}

	stats := &models.DashboardStats{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard from cache: %w", err)
	}
	return stats, nil
}

// SetDashboardCache сохраняет сводку с коротким TTL; сводка - best-effort
// снимок, поэтому короткое устаревание допустимо.
func (r *IncidentRepository) SetDashboardCache(ctx context.Context, stats *models.DashboardStats) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, dashboardCacheKey, val, dashboardCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set dashboard in cache: %w", err)
	}
	return nil
}
