package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kirkclark82/UGCC-APP/internal/dto"
	"github.com/kirkclark82/UGCC-APP/internal/model"
	"github.com/kirkclark82/UGCC-APP/internal/repository"
	"github.com/kirkclark82/UGCC-APP/internal/validation"
	pkgerrors "github.com/kirkclark82/UGCC-APP/pkg/errors"
	"github.com/kirkclark82/UGCC-APP/pkg/password"
)

const (
	MsgEmailRegistered    = "Email already registered"
	MsgUSIRegistered      = "Student USI already registered"
	MsgRegisterFailed     = "Failed to register user"
	MsgInvalidCredentials = "Invalid email or password"
)

// AuthService registration and login
type AuthService interface {
	// Register creates an account and returns its id.
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	// Login verifies credentials and returns the stored profile.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserProfile, error)
}

type authService struct {
	repo      *repository.Repository
	hasher    password.Hasher
	validator *validation.Validator
	logger    *zap.Logger
}

// NewAuthService creates an AuthService
func NewAuthService(
	repo *repository.Repository,
	hasher password.Hasher,
	validator *validation.Validator,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		logger:    logger,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	if err := s.validator.Check(req, validation.RegisterMessages); err != nil {
		return 0, err
	}

	// email is reported before USI when both are taken
	if err := s.ensureFree(ctx, s.repo.User.GetByEmail, req.Email, MsgEmailRegistered); err != nil {
		return 0, err
	}
	if err := s.ensureFree(ctx, s.repo.User.GetByUSI, req.StudentUSI, MsgUSIRegistered); err != nil {
		return 0, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("hash password", zap.Error(err))
		return 0, pkgerrors.Internal(MsgServerError, err)
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		USI:          req.StudentUSI,
		PasswordHash: hash,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		// a concurrent registration can still win the race after the pre-checks
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return 0, pkgerrors.Conflict(MsgEmailRegistered)
		case errors.Is(err, repository.ErrDuplicateUSI):
			return 0, pkgerrors.Conflict(MsgUSIRegistered)
		}
		s.logger.Error("insert registration", zap.Error(err))
		return 0, pkgerrors.Internal(MsgRegisterFailed, err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID))
	return user.ID, nil
}

// ensureFree fails with a conflict when lookup finds a record for value.
func (s *authService) ensureFree(
	ctx context.Context,
	lookup func(context.Context, string) (*model.User, error),
	value, conflictMsg string,
) error {
	_, err := lookup(ctx, value)
	switch {
	case err == nil:
		return pkgerrors.Conflict(conflictMsg)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		s.logger.Error("uniqueness lookup", zap.Error(err))
		return pkgerrors.Internal(MsgDatabaseError, err)
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserProfile, error) {
	if err := s.validator.Check(req, validation.LoginMessages); err != nil {
		return nil, err
	}

	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, pkgerrors.Auth(MsgInvalidCredentials)
		}
		s.logger.Error("load user for login", zap.Error(err))
		return nil, pkgerrors.Internal(MsgDatabaseError, err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, req.Password)
	if err != nil {
		s.logger.Error("compare password", zap.Int64("user_id", user.ID), zap.Error(err))
		return nil, pkgerrors.Internal(MsgServerError, err)
	}
	if !ok {
		return nil, pkgerrors.Auth(MsgInvalidCredentials)
	}

	return toUserProfile(user), nil
}

func toUserProfile(u *model.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:                u.ID,
		FullName:          u.FullName,
		Email:             u.Email,
		USI:               u.USI,
		Address:           u.Address,
		Department:        u.Department,
		Year:              u.Year,
		Telephone:         u.Telephone,
		EmergencyContact:  u.EmergencyContact,
		Interest:          u.Interest,
		AreasOfInterest:   u.AreasOfInterest,
		LevelOfExperience: u.LevelOfExperience,
	}
}
