package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/sgob/incident_reporting_system/internal/webhook"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100

	recentIncidentsLimit = 5
	lastMonthWindow      = 30 * 24 * time.Hour
)

// IncidentRepository определяет контракт для работы с хранилищем ocorrências.
type IncidentRepository interface {
	Create(ctx context.Context, inc *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	GetByCustomID(ctx context.Context, idCustom string) (*models.Incident, error)
	Update(ctx context.Context, id int64, upd models.IncidentUpdate) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]*models.Incident, error)
	Find(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	FindPage(ctx context.Context, filter models.IncidentFilter, page models.PageRequest) ([]*models.Incident, int64, error)

	CountAll(ctx context.Context) (int64, error)
	CountGrouped(ctx context.Context, field models.GroupField) ([]models.GroupCount, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
	Recent(ctx context.Context, limit int) ([]*models.Incident, error)

	GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, inc *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id int64) error
	GetDashboardFromCache(ctx context.Context) (*models.DashboardStats, error)
	SetDashboardCache(ctx context.Context, stats *models.DashboardStats) error
}

// IncidentService определяет контракт бизнес-логики управления ocorrências.
// Идентификатор ident - либо числовой первичный ключ, либо id_custom.
type IncidentService interface {
	CreateIncident(ctx context.Context, inc *models.Incident) error
	GetIncident(ctx context.Context, ident string) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	FilterIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	FilterIncidentsPage(ctx context.Context, filter models.IncidentFilter, page models.PageRequest) (*models.IncidentPage, error)
	UpdateIncident(ctx context.Context, ident string, upd models.IncidentUpdate) (*models.Incident, error)
	DeleteIncident(ctx context.Context, ident string) error
	GetDashboard(ctx context.Context) (*models.DashboardStats, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.Publisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// resolveID переводит внешний идентификатор во внутренний первичный ключ.
// Числовая строка - это PK, любая другая ищется по id_custom.
func (s *incidentService) resolveID(ctx context.Context, ident string) (int64, error) {
	if id, err := strconv.ParseInt(ident, 10, 64); err == nil {
		return id, nil
	}
	inc, err := s.repo.GetByCustomID(ctx, ident)
	if err != nil {
		return 0, err
	}
	return inc.ID, nil
}

// CreateIncident создает ocorrência; data_hora проставляется сервером,
// если клиент ее не передал.
func (s *incidentService) CreateIncident(ctx context.Context, inc *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
	})
	log.Info("Creating a new incident")

	if inc.DataHora.IsZero() {
		inc.DataHora = time.Now()
	}

	if err := s.repo.Create(ctx, inc); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, inc.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate cache after create")
	}
	s.publish(ctx, webhook.EventIncidentCreated, inc)

	log.WithField("incident_id", inc.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает ocorrência по внешнему идентификатору, сначала из кэша.
func (s *incidentService) GetIncident(ctx context.Context, ident string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": ident,
	})

	if id, err := strconv.ParseInt(ident, 10, 64); err == nil {
		cached, err := s.repo.GetIncidentFromCache(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Incident cache lookup failed")
		} else if cached != nil {
			return cached, nil
		}

		inc, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				log.WithError(err).Error("Failed to get incident from repository")
			}
			return nil, fmt.Errorf("service: could not get incident: %w", err)
		}
		if err := s.repo.SetIncidentCache(ctx, inc); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
		return inc, nil
	}

	inc, err := s.repo.GetByCustomID(ctx, ident)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("Failed to get incident by custom id")
		}
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return inc, nil
}

// ListIncidents возвращает все записи без фильтра, новые первыми.
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	incidents, err := s.repo.ListAll(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// FilterIncidents возвращает все совпадения фильтра без ограничения размера.
// Это осознанно отдельная операция от постраничной выборки.
func (s *incidentService) FilterIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "FilterIncidents",
	})

	incidents, err := s.repo.Find(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to filter incidents in repository")
		return nil, fmt.Errorf("service: could not filter incidents: %w", err)
	}
	log.WithField("count", len(incidents)).Info("Incidents filtered successfully")
	return incidents, nil
}

// FilterIncidentsPage возвращает одну страницу совпадений плюс метаданные
// пагинации. Страница за пределами выдачи - пустые данные с теми же total
// и totalPages, не ошибка.
func (s *incidentService) FilterIncidentsPage(ctx context.Context, filter models.IncidentFilter, page models.PageRequest) (*models.IncidentPage, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "FilterIncidentsPage",
		"page":    page.Page,
		"limit":   page.Limit,
	})

	data, total, err := s.repo.FindPage(ctx, filter, page)
	if err != nil {
		log.WithError(err).Error("Failed to fetch incident page from repository")
		return nil, fmt.Errorf("service: could not fetch incident page: %w", err)
	}

	result := &models.IncidentPage{
		Data: data,
		Pagination: models.Pagination{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      total,
			TotalPages: models.TotalPages(total, page.Limit),
		},
	}
	log.WithField("total", total).Info("Incident page fetched successfully")
	return result, nil
}

// UpdateIncident выполняет частичное обновление и возвращает запись после него.
// Чтение после записи - два независимых запроса без транзакции: параллельное
// удаление между ними превращается в not-found, не в сбой.
func (s *incidentService) UpdateIncident(ctx context.Context, ident string, upd models.IncidentUpdate) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": ident,
	})

	id, err := s.resolveID(ctx, ident)
	if err != nil {
		return nil, fmt.Errorf("service: incident %s not found for update: %w", ident, err)
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to update a non-existent incident")
		} else {
			log.WithError(err).Error("Failed to update incident in repository")
		}
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate cache after update")
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not read back updated incident: %w", err)
	}
	log.Info("Incident updated successfully")
	return updated, nil
}

// DeleteIncident удаляет запись; повторное удаление возвращает not-found.
func (s *incidentService) DeleteIncident(ctx context.Context, ident string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": ident,
	})

	id, err := s.resolveID(ctx, ident)
	if err != nil {
		return fmt.Errorf("service: incident %s not found for delete: %w", ident, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to delete a non-existent incident")
		} else {
			log.WithError(err).Error("Failed to delete incident in repository")
		}
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate cache after delete")
	}
	s.publish(ctx, webhook.EventIncidentDeleted, &models.Incident{ID: id})

	log.Info("Incident deleted successfully")
	return nil
}

// GetDashboard собирает фиксированную сводку. Шесть подзапросов выполняются
// параллельно без изоляции; ошибка любого из них фатальна для всей сводки.
func (s *incidentService) GetDashboard(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetDashboard",
	})

	cached, err := s.repo.GetDashboardFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Dashboard cache lookup failed")
	} else if cached != nil {
		return cached, nil
	}

	stats := &models.DashboardStats{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats.Total, err = s.repo.CountAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PorMunicipio, err = s.repo.CountGrouped(gctx, models.GroupByMunicipio)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PorSituacao, err = s.repo.CountGrouped(gctx, models.GroupBySituacao)
		return err
	})
	g.Go(func() error {
		var err error
		stats.PorNatureza, err = s.repo.CountGrouped(gctx, models.GroupByNatureza)
		return err
	})
	g.Go(func() error {
		var err error
		stats.UltimoMes, err = s.repo.CountSince(gctx, time.Now().Add(-lastMonthWindow))
		return err
	})
	g.Go(func() error {
		var err error
		stats.Recentes, err = s.repo.Recent(gctx, recentIncidentsLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Failed to build dashboard stats")
		return nil, fmt.Errorf("service: could not build dashboard stats: %w", err)
	}

	if err := s.repo.SetDashboardCache(ctx, stats); err != nil {
		log.WithError(err).Warn("Failed to cache dashboard stats")
	}

	log.Info("Dashboard stats built successfully")
	return stats, nil
}

// publish отправляет событие в очередь вебхуков; доставка best-effort,
// ошибка публикации не валит исходную операцию.
func (s *incidentService) publish(ctx context.Context, eventType string, inc *models.Incident) {
	event := webhook.NewEvent(eventType, inc)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", eventType).
			Warn("Failed to publish webhook event")
	}
}
