package record

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=record_repo.go -destination=mock/record_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *LeaveRecord) error
	FindAll(ctx context.Context) ([]LeaveRecord, error)
	FindByID(ctx context.Context, id string) (*LeaveRecord, error)
	Update(ctx context.Context, r *LeaveRecord) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *LeaveRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindAll returns the full set ordered by effective day ascending. Period
// records sort on their start day; name breaks ties so snapshots are stable.
func (r *repository) FindAll(ctx context.Context) ([]LeaveRecord, error) {
	var records []LeaveRecord
	err := r.db.WithContext(ctx).
		Order("COALESCE(date, start_date) ASC").
		Order("name ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRecord, error) {
	var rec LeaveRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	return &rec, err
}

func (r *repository) Update(ctx context.Context, rec *LeaveRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&LeaveRecord{}, "id = ?", id).Error
}
