package payroll_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeUserRepository struct {
	findByIDFn      func(ctx context.Context, id string) (*user.User, error)
	findAllByRoleFn func(ctx context.Context, role string) ([]user.User, error)
	updateFn        func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) WithTx(tx *gorm.DB) user.Repository { return f }

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindAllByRole(ctx context.Context, role string) ([]user.User, error) {
	if f.findAllByRoleFn != nil {
		return f.findAllByRoleFn(ctx, role)
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

type payrollServiceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   payroll.Service
	users     *fakeUserRepository
}

func setupPayrollServiceTest(t *testing.T) *payrollServiceDeps {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	assert.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	users := &fakeUserRepository{}
	svc := payroll.NewService(gormDB, users, rdb)

	return &payrollServiceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		service:   svc,
		users:     users,
	}
}

func salaried(amount float64) user.User {
	return user.User{
		ID:         uuid.New(),
		EmployeeID: "EMP001",
		Role:       user.RoleEmployee,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Department: "Engineering",
		Position:   "Engineer",
		Salary:     &amount,
	}
}

func TestPayrollService_List(t *testing.T) {
	t.Run("success hr cache miss hits database", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		deps.redisMock.ExpectGet("payroll:employees").RedisNil()
		deps.redisMock.Regexp().ExpectSet("payroll:employees", `.+`, 5*time.Minute).SetVal("OK")

		emp := salaried(4200)
		deps.users.findAllByRoleFn = func(ctx context.Context, role string) ([]user.User, error) {
			assert.Equal(t, user.RoleEmployee, role)
			return []user.User{emp}, nil
		}

		entries, err := deps.service.List(context.Background(), uuid.NewString(), user.RoleHR)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "EMP001", entries[0].EmployeeID)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("success hr cache hit skips database", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		cached, _ := json.Marshal([]payroll.PayrollEntry{{EmployeeID: "EMP009"}})
		deps.redisMock.ExpectGet("payroll:employees").SetVal(string(cached))

		deps.users.findAllByRoleFn = func(ctx context.Context, role string) ([]user.User, error) {
			t.Fatal("cache hit must not query the database")
			return nil, nil
		}

		entries, err := deps.service.List(context.Background(), uuid.NewString(), user.RoleHR)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "EMP009", entries[0].EmployeeID)
	})

	t.Run("success employee sees only own entry", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		own := salaried(3100)
		deps.users.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			assert.Equal(t, own.ID.String(), id)
			return &own, nil
		}

		entries, err := deps.service.List(context.Background(), own.ID.String(), user.RoleEmployee)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.InDelta(t, 3100, *entries[0].Salary, 0.001)
	})
}

func TestPayrollService_UpdateSalary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		emp := salaried(4200)
		deps.users.findByIDFn = func(ctx context.Context, id string) (*user.User, error) {
			return &emp, nil
		}
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel("payroll:employees").SetVal(1)

		entry, err := deps.service.UpdateSalary(context.Background(), emp.ID.String(), payroll.UpdateSalaryRequest{
			Salary: "5000.75",
		})
		assert.NoError(t, err)
		assert.InDelta(t, 5000.75, *entry.Salary, 0.001)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("negative invalid amount", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)

		_, err := deps.service.UpdateSalary(context.Background(), uuid.NewString(), payroll.UpdateSalaryRequest{
			Salary: "a lot",
		})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidAmount)
	})

	t.Run("negative unknown employee", func(t *testing.T) {
		deps := setupPayrollServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.UpdateSalary(context.Background(), uuid.NewString(), payroll.UpdateSalaryRequest{
			Salary: "1000",
		})
		assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
	})
}
