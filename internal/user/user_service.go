package user

import (
	"context"
	"io"
	"strconv"
	"strings"

	"go-hrms/internal/shared/apperror"
	usererrors "go-hrms/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetProfile(ctx context.Context, actorID, actorRole, targetID string) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, actorID, actorRole, targetID string, req UpdateProfileRequest) (ProfileResponse, error)
	UpdateProfilePicture(ctx context.Context, actorID, filename string, file io.Reader) (ProfileResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	files  FileStore
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, files FileStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, files: files, logger: l}
}

// resolveTarget decides whose profile the request is about. Only HR may look
// past their own record.
func resolveTarget(actorID, actorRole, targetID string) (string, error) {
	if targetID == "" || targetID == actorID {
		return actorID, nil
	}
	if actorRole != RoleHR {
		return "", apperror.ErrForbidden
	}
	if _, err := uuid.Parse(targetID); err != nil {
		return "", usererrors.ErrInvalidUserID
	}
	return targetID, nil
}

func (s *service) GetProfile(ctx context.Context, actorID, actorRole, targetID string) (ProfileResponse, error) {
	id, err := resolveTarget(actorID, actorRole, targetID)
	if err != nil {
		return ProfileResponse{}, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}
	return MapToProfileResponse(u), nil
}

func (s *service) UpdateProfile(ctx context.Context, actorID, actorRole, targetID string, req UpdateProfileRequest) (ProfileResponse, error) {
	id, err := resolveTarget(actorID, actorRole, targetID)
	if err != nil {
		return ProfileResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ProfileResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}

	if actorRole == RoleHR {
		if err := applyHRFields(u, req); err != nil {
			return ProfileResponse{}, err
		}
	} else {
		// Employees may only touch their contact fields; anything else
		// submitted is ignored.
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		if req.Address != nil {
			u.Address = *req.Address
		}
	}

	if err := qtx.Update(ctx, u); err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return ProfileResponse{}, err
	}

	s.logger.Info("profile updated",
		zap.String("user_id", id),
		zap.String("actor_id", actorID),
	)
	return MapToProfileResponse(u), nil
}

func applyHRFields(u *User, req UpdateProfileRequest) error {
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}
	if req.Address != nil {
		u.Address = *req.Address
	}
	if req.Department != nil {
		u.Department = *req.Department
	}
	if req.Position != nil {
		u.Position = *req.Position
	}
	if req.Salary != nil {
		amount, err := strconv.ParseFloat(strings.TrimSpace(*req.Salary), 64)
		if err != nil || amount < 0 {
			return usererrors.ErrInvalidSalary
		}
		u.Salary = &amount
	}
	return nil
}

func (s *service) UpdateProfilePicture(ctx context.Context, actorID, filename string, file io.Reader) (ProfileResponse, error) {
	if strings.TrimSpace(filename) == "" {
		return ProfileResponse{}, usererrors.ErrMissingFile
	}

	storedName, err := s.files.Save(actorID+"_"+sanitizeFilename(filename), file)
	if err != nil {
		s.logger.Error("profile picture store failed", zap.Error(err))
		return ProfileResponse{}, apperror.ErrInternal
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ProfileResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, actorID)
	if err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}
	u.ProfilePicture = &storedName

	if err := qtx.Update(ctx, u); err != nil {
		return ProfileResponse{}, MapRepositoryError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return ProfileResponse{}, err
	}

	return MapToProfileResponse(u), nil
}
