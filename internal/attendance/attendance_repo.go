package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	FindAllByDateRange(ctx context.Context, from, to time.Time) ([]Attendance, error)
	FindByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error)
	FindRecent(ctx context.Context, limit int) ([]Attendance, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		First(&a, "user_id = ? AND date = ?", userID, date).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) FindAllByDateRange(ctx context.Context, from, to time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByUserAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindRecent(ctx context.Context, limit int) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *repository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]Attendance, error) {
	var records []Attendance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
