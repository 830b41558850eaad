package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/user"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	cacheKey = "payroll:employees"
	cacheTTL = 5 * time.Minute
)

type Service interface {
	List(ctx context.Context, actorID, actorRole string) ([]PayrollEntry, error)
	UpdateSalary(ctx context.Context, employeeUserID string, req UpdateSalaryRequest) (PayrollEntry, error)
}

type service struct {
	db     *gorm.DB
	users  user.Repository
	cache  *redis.Client
	logger *zap.Logger
}

func NewService(db *gorm.DB, users user.Repository, cache *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, users: users, cache: cache, logger: l}
}

func (s *service) List(ctx context.Context, actorID, actorRole string) ([]PayrollEntry, error) {
	if actorRole != user.RoleHR {
		u, err := s.users.FindByID(ctx, actorID)
		if err != nil {
			return nil, user.MapRepositoryError(err)
		}
		return []PayrollEntry{mapToPayrollEntry(u)}, nil
	}

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		var entries []PayrollEntry
		if err := json.Unmarshal([]byte(cached), &entries); err == nil {
			return entries, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.logger.Warn("payroll cache read failed", zap.Error(err))
	}

	employees, err := s.users.FindAllByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, err
	}

	entries := make([]PayrollEntry, 0, len(employees))
	for i := range employees {
		entries = append(entries, mapToPayrollEntry(&employees[i]))
	}

	if body, err := json.Marshal(entries); err == nil {
		if err := s.cache.Set(ctx, cacheKey, body, cacheTTL).Err(); err != nil {
			s.logger.Warn("payroll cache write failed", zap.Error(err))
		}
	}

	return entries, nil
}

func (s *service) UpdateSalary(ctx context.Context, employeeUserID string, req UpdateSalaryRequest) (PayrollEntry, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Salary), 64)
	if err != nil || amount < 0 {
		return PayrollEntry{}, payrollerrors.ErrInvalidAmount
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return PayrollEntry{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.users.WithTx(tx)

	u, err := qtx.FindByID(ctx, employeeUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollEntry{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollEntry{}, err
	}

	u.Salary = &amount
	if err := qtx.Update(ctx, u); err != nil {
		return PayrollEntry{}, user.MapRepositoryError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return PayrollEntry{}, err
	}

	if err := s.cache.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warn("payroll cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("salary updated", zap.String("user_id", employeeUserID))
	return mapToPayrollEntry(u), nil
}
