package auth

import (
	"context"
	"errors"
	"time"

	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/session"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (AuthResponse, error)
}

type service struct {
	db       *gorm.DB
	users    user.Repository
	sessions *session.Store
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, users user.Repository, sessions *session.Store, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, users: users, sessions: sessions, outbox: outbox, logger: l}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return AuthResponse{}, autherrors.ErrPasswordMismatch
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
		Password:   string(hashed),
		Role:       req.Role,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return AuthResponse{}, tx.Error
	}
	defer tx.Rollback()

	if err := s.users.WithTx(tx).Create(ctx, u); err != nil {
		return AuthResponse{}, user.MapRepositoryError(err)
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"user",
		u.ID.String(),
		events.UserRegisteredEventType,
		events.UserRegisteredTopic,
		events.UserRegisteredEvent{
			EventType:  events.UserRegisteredEventType,
			UserID:     u.ID.String(),
			EmployeeID: u.EmployeeID,
			Role:       u.Role,
			OccurredAt: time.Now().UTC(),
		},
	)
	if err != nil {
		return AuthResponse{}, err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		return AuthResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return AuthResponse{}, err
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("employee_id", u.EmployeeID),
		zap.String("role", u.Role),
	)
	return mapToAuthResponse(u), nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", AuthResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, u.ID.String(), u.Role)
	if err != nil {
		return "", AuthResponse{}, err
	}

	s.logger.Info("user logged in", zap.String("user_id", u.ID.String()))
	return token, mapToAuthResponse(u), nil
}

func (s *service) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *service) Me(ctx context.Context, userID string) (AuthResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, user.MapRepositoryError(err)
	}
	return mapToAuthResponse(u), nil
}
