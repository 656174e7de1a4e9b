package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/sgob/incident_reporting_system/internal/config"
	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/sgob/incident_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// newTestAuthService — вспомогательная функция для создания сервиса аутентификации с моками.
func newTestAuthService(t *testing.T) (AuthService, *mocks.MockUserRepository, *config.Config) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	return NewAuthService(usersMock, logger, cfg), usersMock, cfg
}

func mustHash(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{
		ID:           1,
		Nome:         "Sgt. Silva",
		Email:        "silva@cbm.example",
		PasswordHash: mustHash(t, "correct-horse"),
		Role:         models.RoleBombeiro,
	}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)

	// Действие
	token, loggedIn, err := service.Login(ctx, user.Email, "correct-horse")

	// Проверки
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user, loggedIn)

	// Выпущенный токен должен проходить собственную проверку сервиса.
	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.Subject)
	assert.Equal(t, user.Nome, claims.Nome)
	assert.Equal(t, models.RoleBombeiro, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{
		ID:           1,
		Email:        "silva@cbm.example",
		PasswordHash: mustHash(t, "correct-horse"),
	}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)

	// Действие
	token, loggedIn, err := service.Login(ctx, user.Email, "wrong-password")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, loggedIn)
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания: для клиента неизвестный email неотличим от неверного пароля.
	usersMock.EXPECT().GetByEmail(ctx, "ghost@cbm.example").Return(nil, ErrNotFound).Times(1)

	// Действие
	token, loggedIn, err := service.Login(ctx, "ghost@cbm.example", "whatever")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	assert.Nil(t, loggedIn)
}

func TestValidateToken_Garbage(t *testing.T) {
	// Подготовка
	service, _, _ := newTestAuthService(t)

	// Действие
	claims, err := service.ValidateToken("not-a-jwt")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Подготовка: два сервиса с разными секретами.
	serviceA, usersMockA, _ := newTestAuthService(t)

	ctrl := gomock.NewController(t)
	usersMockB := mocks.NewMockUserRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	serviceB := NewAuthService(usersMockB, logger, &config.Config{
		JWTSecret: "another-secret",
		JWTTTL:    time.Hour,
	})

	ctx := context.Background()
	user := &models.User{
		ID:           1,
		Email:        "silva@cbm.example",
		PasswordHash: mustHash(t, "correct-horse"),
		Role:         models.RoleBombeiro,
	}
	usersMockA.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil).Times(1)

	token, _, err := serviceA.Login(ctx, user.Email, "correct-horse")
	require.NoError(t, err)

	// Действие: токен, подписанный чужим секретом, не проходит проверку.
	claims, err := serviceB.ValidateToken(token)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, claims)
}

func TestRegister_Success_DefaultRole(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	user := &models.User{
		Nome:  "Cb. Souza",
		Email: "souza@cbm.example",
	}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, user.Email).Return(nil, ErrNotFound).Times(1)
	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, u *models.User) error {
			// Пустая роль заменяется ролью по умолчанию, пароль хранится хэшем.
			assert.Equal(t, models.RoleBombeiro, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("strong-password")))
			u.ID = 2
			return nil
		}).Times(1)

	// Действие
	err := service.Register(ctx, user, "strong-password")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()
	existing := &models.User{ID: 1, Email: "silva@cbm.example"}

	// Ожидания
	usersMock.EXPECT().GetByEmail(ctx, existing.Email).Return(existing, nil).Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.Register(ctx, &models.User{Email: existing.Email}, "whatever")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestEnsureAdminUser_BootstrapsOnEmptyTable(t *testing.T) {
	// Подготовка
	service, usersMock, cfg := newTestAuthService(t)
	cfg.AdminEmail = "admin@cbm.example"
	cfg.AdminPassword = "bootstrap-password"
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().Count(ctx).Return(int64(0), nil).Times(1)
	usersMock.EXPECT().GetByEmail(ctx, cfg.AdminEmail).Return(nil, ErrNotFound).Times(1)
	usersMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, u *models.User) {
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.Equal(t, cfg.AdminEmail, u.Email)
		}).Return(nil).Times(1)

	// Действие
	err := service.EnsureAdminUser(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestEnsureAdminUser_SkipsWhenUsersExist(t *testing.T) {
	// Подготовка
	service, usersMock, cfg := newTestAuthService(t)
	cfg.AdminEmail = "admin@cbm.example"
	cfg.AdminPassword = "bootstrap-password"
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().Count(ctx).Return(int64(3), nil).Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.EnsureAdminUser(ctx)

	// Проверки
	require.NoError(t, err)
}

func TestEnsureAdminUser_SkipsWithoutConfig(t *testing.T) {
	// Подготовка
	service, usersMock, _ := newTestAuthService(t)
	ctx := context.Background()

	// Ожидания: без ADMIN_EMAIL/ADMIN_PASSWORD бутстрап молча пропускается.
	usersMock.EXPECT().Count(ctx).Return(int64(0), nil).Times(1)
	usersMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.EnsureAdminUser(ctx)

	// Проверки
	require.NoError(t, err)
}
