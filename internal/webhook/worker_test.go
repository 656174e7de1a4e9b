package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sgob/incident_reporting_system/internal/config"
	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(cfg *config.Config) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewWorker(nil, logger, cfg)
}

func TestDeliver_SignsPayload(t *testing.T) {
	// Подготовка
	var gotSignature atomic.Value
	var gotBody atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature.Store(r.Header.Get("X-Webhook-Signature"))
		body, _ := io.ReadAll(r.Body)
		gotBody.Store(string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookSecret:     "test-secret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event := NewEvent(EventIncidentCreated, &models.Incident{ID: 1})
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	// Действие
	worker.deliver(context.Background(), event, string(payload))

	// Проверки: тело уходит как есть, подпись - HMAC-SHA256 от тела.
	mac := hmac.New(sha256.New, []byte(cfg.WebhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, gotSignature.Load())
	assert.Equal(t, string(payload), gotBody.Load())
}

func TestDeliver_RetriesOnServerError(t *testing.T) {
	// Подготовка: первые две попытки падают, третья проходит.
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := &config.Config{
		WebhookURL:        server.URL,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 5,
		WebhookBaseDelay:  time.Millisecond,
	}
	worker := newTestWorker(cfg)

	event := NewEvent(EventIncidentDeleted, &models.Incident{ID: 2})
	payload, _ := json.Marshal(event)

	// Действие
	worker.deliver(context.Background(), event, string(payload))

	// Проверки
	assert.Equal(t, int32(3), calls.Load())
}

func TestNewEvent_FillsMetadata(t *testing.T) {
	event := NewEvent(EventIncidentCreated, &models.Incident{ID: 3})

	assert.Equal(t, EventIncidentCreated, event.Type)
	assert.NotEmpty(t, event.EventID)
	assert.False(t, event.Timestamp.IsZero())
	require.NotNil(t, event.Incident)
	assert.Equal(t, int64(3), event.Incident.ID)
}
