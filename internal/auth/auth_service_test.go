package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/auth"
	autherrors "go-hrms/internal/auth/errors"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/session"
	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeUserRepository struct {
	createFn      func(ctx context.Context, u *user.User) error
	findByIDFn    func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (f *fakeUserRepository) WithTx(tx *gorm.DB) user.Repository { return f }

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindAllByRole(ctx context.Context, role string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	return nil
}

type authServiceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   auth.Service
	users     *fakeUserRepository
	outbox    *fakeOutboxRepository
}

func setupAuthServiceTest(t *testing.T) *authServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	sessions := session.NewStore(rdb, time.Hour)

	users := &fakeUserRepository{}
	outbox := &fakeOutboxRepository{}
	svc := auth.NewService(gormDB, users, sessions, outbox)

	return &authServiceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		users:     users,
		outbox:    outbox,
	}
}

func registerReq() auth.RegisterRequest {
	return auth.RegisterRequest{
		EmployeeID:      "EMP001",
		Email:           "ada@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		Role:            user.RoleEmployee,
		FirstName:       "Ada",
		LastName:        "Lovelace",
	}
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		var created *user.User
		deps.users.createFn = func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		}
		var staged *kafka.OutboxEvent
		deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
			staged = &event
			return nil
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(context.Background(), registerReq())
		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.EmployeeID)

		assert.NotNil(t, created)
		assert.NotEqual(t, "supersecret", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("supersecret")))

		assert.NotNil(t, staged)
		assert.Equal(t, "hrms.user.lifecycle.v1", staged.Topic)
		assert.Equal(t, "user.registered", staged.EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative password mismatch", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		req := registerReq()
		req.ConfirmPassword = "different"
		_, err := deps.service.Register(context.Background(), req)
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
	})

	t.Run("negative duplicate email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		deps.users.createFn = func(ctx context.Context, u *user.User) error {
			return errors.New(`duplicate key value violates unique constraint "uq_users_email"`)
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(context.Background(), registerReq())
		assert.ErrorIs(t, err, usererrors.ErrEmailTaken)
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	stored := &user.User{
		ID:         uuid.New(),
		EmployeeID: "EMP001",
		Email:      "ada@example.com",
		Password:   string(hashed),
		Role:       user.RoleEmployee,
	}

	t.Run("success", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "ada@example.com", email)
			return stored, nil
		}
		deps.redisMock.Regexp().ExpectSet(`session:[0-9a-f-]+`, `.+`, time.Hour).SetVal("OK")

		token, resp, err := deps.service.Login(context.Background(), auth.LoginRequest{
			Email:    "ada@example.com",
			Password: "supersecret",
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, stored.ID.String(), resp.ID)
	})

	t.Run("negative wrong password", func(t *testing.T) {
		deps := setupAuthServiceTest(t)
		deps.users.findByEmailFn = func(ctx context.Context, email string) (*user.User, error) {
			return stored, nil
		}

		_, _, err := deps.service.Login(context.Background(), auth.LoginRequest{
			Email:    "ada@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("negative unknown email", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		_, _, err := deps.service.Login(context.Background(), auth.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_Me(t *testing.T) {
	t.Run("negative unknown user", func(t *testing.T) {
		deps := setupAuthServiceTest(t)

		_, err := deps.service.Me(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
