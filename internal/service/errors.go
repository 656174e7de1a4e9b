package service

import "errors"

// Сигнальные ошибки слоя хранения и бизнес-логики. Репозитории возвращают
// их как есть, сервисы оборачивают через %w, хэндлеры различают errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
