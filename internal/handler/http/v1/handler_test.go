package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sgob/incident_reporting_system/internal/config"
	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/sgob/incident_reporting_system/internal/service"
	"github.com/sgob/incident_reporting_system/internal/handler/http/v1/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockIncidentService, *mocks.MockAuthService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockIncidents := mocks.NewMockIncidentService(ctrl)
	mockAuth := mocks.NewMockAuthService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(mockIncidents, mockAuth, logger, &config.Config{})

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockIncidents, mockAuth, router
}

// authHeaders настраивает мок проверки токена и возвращает заголовок
// с валидным Bearer-токеном под заданную роль.
func authHeaders(mockAuth *mocks.MockAuthService, role string) map[string]string {
	mockAuth.EXPECT().
		ValidateToken("test-token").
		Return(&service.Claims{Nome: "Test User", Role: role}, nil).
		AnyTimes()
	return map[string]string{"Authorization": "Bearer test-token"}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateIncident_Success(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		NaturezaOcorrencia: "Incêndio em edificação",
	}

	mockIncidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Симулируем сервис: БД выдала ключ, сервер проставил data_hora
			inc.ID = 7
			inc.DataHora = time.Now()
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ocorrencias", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.Incident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.False(t, resp.DataHora.IsZero())
	require.NotNil(t, resp.NaturezaOcorrencia)
	assert.Equal(t, reqBody.NaturezaOcorrencia, *resp.NaturezaOcorrencia)
}

func TestCreateIncident_CustomID(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	customID := "OC-2024-0001"
	reqBody := CreateIncidentRequest{
		ID:                 &customID,
		NaturezaOcorrencia: "Resgate de vítima",
	}

	mockIncidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Нечисловой клиентский id должен дойти до сервиса как id_custom
			require.NotNil(t, inc.IDCustom)
			assert.Equal(t, customID, *inc.IDCustom)
			inc.ID = 8
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ocorrencias", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/ocorrencias", bytes.NewBufferString(`{"municipio": "Recife"`), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{} // Отсутствует NaturezaOcorrencia

	mockIncidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ocorrencias", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'NaturezaOcorrencia' failed on the 'required' tag")
}

func TestCreateIncident_Unauthorized(t *testing.T) {
	mockIncidents, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{NaturezaOcorrencia: "Incêndio"}

	mockIncidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ocorrencias", bytes.NewBuffer(bodyBytes)) // Нет токена

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{NaturezaOcorrencia: "Incêndio"}
	serviceError := errors.New("failed to create incident in service")

	mockIncidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/ocorrencias", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	municipio := "Recife"
	expectedIncident := &models.Incident{ID: 42, Municipio: &municipio}

	mockIncidents.EXPECT().GetIncident(gomock.Any(), "42").Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/42", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Incident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestGetIncident_NotFound(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().GetIncident(gomock.Any(), "99").Return(nil, service.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/99", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestListIncidents_Success(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{{ID: 2}, {ID: 1}}

	mockIncidents.EXPECT().ListIncidents(gomock.Any()).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Incident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestFilterIncidents_ByMunicipio(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	municipio := "Recife"
	expectedIncidents := []*models.Incident{{ID: 1, Municipio: &municipio}}

	mockIncidents.EXPECT().
		FilterIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
			// В фильтр попадает только переданный параметр
			require.NotNil(t, filter.Municipio)
			assert.Equal(t, "Recife", *filter.Municipio)
			assert.Nil(t, filter.Situacao)
			return expectedIncidents, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/filtro?municipio=Recife", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Incident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestFilterIncidents_DateRange(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().
		FilterIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, error) {
			require.NotNil(t, filter.DateFrom)
			require.NotNil(t, filter.DateTo)
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
			// Верхняя граница без времени растягивается до конца суток
			assert.Equal(t, 23, filter.DateTo.Hour())
			return nil, nil
		}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/filtro?data_inicio=2024-01-01&data_fim=2024-01-31", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFilterIncidents_InvalidDate(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().FilterIncidents(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/filtro?data_inicio=31-01-2024", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid data_inicio")
}

func TestFilterIncidentsAdvanced_Pagination(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	expectedPage := &models.IncidentPage{
		Data: []*models.Incident{{ID: 3}, {ID: 4}},
		Pagination: models.Pagination{
			Page:       2,
			Limit:      2,
			Total:      5,
			TotalPages: 3,
		},
	}

	mockIncidents.EXPECT().
		FilterIncidentsPage(gomock.Any(), gomock.Any(), models.PageRequest{Page: 2, Limit: 2, SortBy: "municipio", SortOrder: "ASC"}).
		Return(expectedPage, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/filtro-avancado?page=2&limit=2&sortBy=municipio&sortOrder=ASC", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.IncidentPage
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, int64(3), resp.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Pagination.Page)
}

func TestFilterIncidentsAdvanced_Defaults(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	// Без параметров запроса хэндлер передает значения по умолчанию.
	mockIncidents.EXPECT().
		FilterIncidentsPage(gomock.Any(), gomock.Any(), models.PageRequest{Page: 1, Limit: 10}).
		Return(&models.IncidentPage{Pagination: models.Pagination{Page: 1, Limit: 10}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/filtro-avancado", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncident_Success(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	situacao := "finalizada"
	reqBody := UpdateIncidentRequest{Situacao: &situacao}
	updatedIncident := &models.Incident{ID: 42, Situacao: &situacao}

	mockIncidents.EXPECT().
		UpdateIncident(gomock.Any(), "42", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.IncidentUpdate) (*models.Incident, error) {
			require.NotNil(t, upd.Situacao)
			assert.Equal(t, situacao, *upd.Situacao)
			assert.Nil(t, upd.Municipio)
			return updatedIncident, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/ocorrencias/42", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Incident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Situacao)
	assert.Equal(t, situacao, *resp.Situacao)
}

func TestUpdateIncident_NotFound(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	situacao := "finalizada"
	reqBody := UpdateIncidentRequest{Situacao: &situacao}

	mockIncidents.EXPECT().
		UpdateIncident(gomock.Any(), "99", gomock.Any()).
		Return(nil, service.ErrNotFound).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/ocorrencias/99", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestDeleteIncident_Success(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().DeleteIncident(gomock.Any(), "42").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/ocorrencias/42", nil, authHeaders(mockAuth, models.RoleAdmin))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DeleteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestDeleteIncident_ForbiddenForNonAdmin(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().DeleteIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/ocorrencias/42", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient permissions")
}

func TestDeleteIncident_NotFound(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockIncidents.EXPECT().DeleteIncident(gomock.Any(), "42").Return(service.ErrNotFound).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/ocorrencias/42", nil, authHeaders(mockAuth, models.RoleAdmin))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetDashboard_EmptyStore(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	// Пустое хранилище - валидная сводка с нулями, а не ошибка.
	mockIncidents.EXPECT().
		GetDashboard(gomock.Any()).
		Return(&models.DashboardStats{
			PorMunicipio: []models.GroupCount{},
			PorSituacao:  []models.GroupCount{},
			PorNatureza:  []models.GroupCount{},
			Recentes:     []*models.Incident{},
		}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/estatisticas", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Total)
	assert.Empty(t, resp.PorMunicipio)
	assert.Empty(t, resp.Recentes)
	assert.False(t, resp.GeradoEm.IsZero())
}

func TestGetDashboard_ServiceError(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	serviceError := errors.New("could not build dashboard stats")

	mockIncidents.EXPECT().GetDashboard(gomock.Any()).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/estatisticas", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestExportIncidents_CSV(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)
	municipio := "Recife"
	natureza := "Incêndio"
	incidents := []*models.Incident{
		{ID: 1, Municipio: &municipio, NaturezaOcorrencia: &natureza, Fotos: []string{"a.jpg", "b.jpg"}},
	}

	mockIncidents.EXPECT().FilterIncidents(gomock.Any(), gomock.Any()).Return(incidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias/exportar?municipio=Recife", nil, authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ocorrencias.csv")

	body := w.Body.String()
	assert.Contains(t, body, "id,id_custom,data_hora")
	assert.Contains(t, body, "Recife")
	assert.Contains(t, body, "a.jpg;b.jpg")
}

func TestLogin_Success(t *testing.T) {
	_, mockAuth, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "silva@cbm.example", Password: "correct-horse"}
	user := &models.User{ID: 1, Nome: "Sgt. Silva", Email: reqBody.Email, Role: models.RoleBombeiro}

	mockAuth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("signed-token", user, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.Email, resp.User.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	_, mockAuth, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "silva@cbm.example", Password: "wrong"}

	mockAuth.EXPECT().
		Login(gomock.Any(), reqBody.Email, reqBody.Password).
		Return("", nil, service.ErrInvalidCredentials).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogin_ValidationError(t *testing.T) {
	_, mockAuth, router := newTestHandler(t)
	reqBody := LoginRequest{Email: "not-an-email", Password: "whatever"}

	mockAuth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/login", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Email' failed on the 'email' tag")
}

func TestRegister_Success(t *testing.T) {
	_, mockAuth, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Nome:     "Cb. Souza",
		Email:    "souza@cbm.example",
		Password: "strong-password",
		Role:     models.RoleBombeiro,
	}

	mockAuth.EXPECT().
		Register(gomock.Any(), gomock.Any(), reqBody.Password).
		DoAndReturn(func(_ context.Context, u *models.User, _ string) error {
			assert.Equal(t, reqBody.Email, u.Email)
			u.ID = 2
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleAdmin))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.User
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
	// Хэш пароля никогда не попадает в ответ
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestRegister_ForbiddenForNonAdmin(t *testing.T) {
	_, mockAuth, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Nome:     "Cb. Souza",
		Email:    "souza@cbm.example",
		Password: "strong-password",
	}

	mockAuth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleBombeiro))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegister_EmailTaken(t *testing.T) {
	_, mockAuth, router := newTestHandler(t)
	reqBody := RegisterRequest{
		Nome:     "Cb. Souza",
		Email:    "souza@cbm.example",
		Password: "strong-password",
	}

	mockAuth.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.ErrEmailTaken).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/auth/register", bytes.NewBuffer(bodyBytes), authHeaders(mockAuth, models.RoleAdmin))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email already registered")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	mockIncidents, mockAuth, router := newTestHandler(t)

	mockAuth.EXPECT().
		ValidateToken("expired-token").
		Return(nil, service.ErrInvalidCredentials).
		Times(1)
	mockIncidents.EXPECT().ListIncidents(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/ocorrencias", nil, map[string]string{"Authorization": "Bearer expired-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
