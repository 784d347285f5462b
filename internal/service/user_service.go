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
)

const (
	MsgEmailInUse   = "Email already in use by another account"
	MsgUSIInUse     = "Student USI already in use by another account"
	MsgUpdateFailed = "Failed to update account information"
)

// UserService account settings and the registrations listing
type UserService interface {
	// UpdateProfile overwrites identity and profile fields of user id.
	UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) error
	// ListRegistrations returns every registration, newest first.
	ListRegistrations(ctx context.Context) ([]dto.RegistrationSummary, error)
}

type userService struct {
	repo      *repository.Repository
	validator *validation.Validator
	logger    *zap.Logger
}

// NewUserService creates a UserService
func NewUserService(repo *repository.Repository, validator *validation.Validator, logger *zap.Logger) UserService {
	return &userService{repo: repo, validator: validator, logger: logger}
}

// ────────────────────── UpdateProfile ──────────────────────

func (s *userService) UpdateProfile(ctx context.Context, id int64, req *dto.UpdateProfileRequest) error {
	if err := s.validator.Check(req, validation.ProfileMessages); err != nil {
		return err
	}

	if _, err := s.repo.User.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return pkgerrors.NotFound(MsgUserNotFound)
		}
		s.logger.Error("load user for update", zap.Int64("user_id", id), zap.Error(err))
		return pkgerrors.Internal(MsgDatabaseError, err)
	}

	if err := s.ensureNotTakenByOther(ctx, s.repo.User.GetByEmail, req.Email, id, MsgEmailInUse); err != nil {
		return err
	}
	if err := s.ensureNotTakenByOther(ctx, s.repo.User.GetByUSI, req.USI, id, MsgUSIInUse); err != nil {
		return err
	}

	user := &model.User{
		ID:                id,
		FullName:          req.FullName,
		Email:             req.Email,
		USI:               req.USI,
		Address:           req.Address,
		Department:        req.Department,
		Year:              req.Year,
		Telephone:         req.Telephone,
		EmergencyContact:  req.EmergencyContact,
		Interest:          req.Interest,
		AreasOfInterest:   string(req.AreasOfInterest),
		LevelOfExperience: req.LevelOfExperience,
	}
	if err := s.repo.User.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return pkgerrors.NotFound(MsgUserNotFound)
		case errors.Is(err, repository.ErrDuplicateEmail):
			return pkgerrors.Conflict(MsgEmailInUse)
		case errors.Is(err, repository.ErrDuplicateUSI):
			return pkgerrors.Conflict(MsgUSIInUse)
		}
		s.logger.Error("update profile", zap.Int64("user_id", id), zap.Error(err))
		return pkgerrors.Internal(MsgUpdateFailed, err)
	}

	s.logger.Info("profile updated", zap.Int64("user_id", id))
	return nil
}

// ensureNotTakenByOther fails with a conflict when value belongs to a record other than self.
func (s *userService) ensureNotTakenByOther(
	ctx context.Context,
	lookup func(context.Context, string) (*model.User, error),
	value string, self int64, conflictMsg string,
) error {
	other, err := lookup(ctx, value)
	switch {
	case err == nil:
		if other.ID != self {
			return pkgerrors.Conflict(conflictMsg)
		}
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		s.logger.Error("uniqueness lookup", zap.Int64("user_id", self), zap.Error(err))
		return pkgerrors.Internal(MsgDatabaseError, err)
	}
}

// ────────────────────── ListRegistrations ──────────────────────

func (s *userService) ListRegistrations(ctx context.Context) ([]dto.RegistrationSummary, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list registrations", zap.Error(err))
		return nil, pkgerrors.Internal(MsgDatabaseError, err)
	}

	result := make([]dto.RegistrationSummary, 0, len(users))
	for _, u := range users {
		result = append(result, dto.RegistrationSummary{
			ID:        u.ID,
			FullName:  u.FullName,
			Email:     u.Email,
			USI:       u.USI,
			CreatedAt: u.CreatedAt,
		})
	}
	return result, nil
}
