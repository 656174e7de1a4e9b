package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sgob/incident_reporting_system/internal/config"
	"github.com/sgob/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт хранилища пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

// Claims - полезная нагрузка JWT.
type Claims struct {
	jwt.RegisteredClaims
	Nome string `json:"nome"`
	Role string `json:"role"`
}

// AuthService определяет контракт аутентификации.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	Register(ctx context.Context, user *models.User, password string) error
	ValidateToken(tokenString string) (*Claims, error)
	EnsureAdminUser(ctx context.Context) error
}

type authService struct {
	users  UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(users UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		logger: logger,
		cfg:    cfg,
	}
}

// Login проверяет пару email/пароль и выпускает подписанный токен.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Login",
		"email":   email,
	})

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown email")
			return "", nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to fetch user for login")
		return "", nil, fmt.Errorf("service: could not fetch user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempt with wrong password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return "", nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in")
	return token, user, nil
}

func (s *authService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTTTL)),
			ID:        uuid.NewString(),
		},
		Nome: user.Nome,
		Role: user.Role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken разбирает и проверяет подпись и срок действия токена.
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// Register создает пользователя с bcrypt-хэшем пароля.
// Проверка занятости email идет отдельным запросом до вставки; гонку
// двух одновременных регистраций в итоге ловит уникальный индекс БД.
func (s *authService) Register(ctx context.Context, user *models.User, password string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "Register",
		"email":   user.Email,
	})

	if _, err := s.users.GetByEmail(ctx, user.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to check email availability")
		return fmt.Errorf("service: could not check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: could not hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if user.Role == "" {
		user.Role = models.RoleBombeiro
	}

	if err := s.users.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered")
	return nil
}

// EnsureAdminUser создает администратора из конфигурации, когда таблица
// пользователей пуста. Замена захардкоженных учеток из старой системы.
func (s *authService) EnsureAdminUser(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "auth",
		"method":  "EnsureAdminUser",
	})

	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("service: could not count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		log.Warn("Users table is empty and no ADMIN_EMAIL/ADMIN_PASSWORD configured; skipping bootstrap")
		return nil
	}

	admin := &models.User{
		Nome:  "Administrador",
		Email: s.cfg.AdminEmail,
		Role:  models.RoleAdmin,
	}
	if err := s.Register(ctx, admin, s.cfg.AdminPassword); err != nil {
		return fmt.Errorf("service: could not bootstrap admin user: %w", err)
	}

	log.WithField("email", admin.Email).Info("Bootstrap admin user created")
	return nil
}
