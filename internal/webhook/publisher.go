package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sgob/incident_reporting_system/internal/models"
)

const webhookQueueKey = "webhook_events"

// Типы событий жизненного цикла ocorrência, уходящие внешним системам.
const (
	EventIncidentCreated = "ocorrencia.criada"
	EventIncidentDeleted = "ocorrencia.excluida"
)

// Event - полезная нагрузка вебхука.
type Event struct {
	EventID   uuid.UUID        `json:"event_id"`
	Type      string           `json:"type"`
	Timestamp time.Time        `json:"timestamp"`
	Incident  *models.Incident `json:"ocorrencia,omitempty"`
}

// NewEvent создает событие с уникальным идентификатором и текущим временем.
func NewEvent(eventType string, inc *models.Incident) Event {
	return Event{
		EventID:   uuid.New(),
		Type:      eventType,
		Timestamp: time.Now(),
		Incident:  inc,
	}
}

// Publisher - интерфейс для публикации событий вебхуков.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher поверх очереди-списка в Redis.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish кладет событие в левый конец списка-очереди.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
