package service

import (
	"go.uber.org/zap"

	"github.com/kirkclark82/UGCC-APP/internal/repository"
	"github.com/kirkclark82/UGCC-APP/internal/validation"
	"github.com/kirkclark82/UGCC-APP/pkg/password"
)

// Client-facing failure messages shared across services.
const (
	MsgDatabaseError = "Database error"
	MsgServerError   = "Server error"
	MsgUserNotFound  = "User not found"
)

// Service aggregate of all services
type Service struct {
	Auth   AuthService
	User   UserService
	Export ExportService
}

// NewService wires every service onto one repository set.
func NewService(
	repo *repository.Repository,
	hasher password.Hasher,
	validator *validation.Validator,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:   NewAuthService(repo, hasher, validator, logger),
		User:   NewUserService(repo, validator, logger),
		Export: NewExportService(repo, logger),
	}
}
