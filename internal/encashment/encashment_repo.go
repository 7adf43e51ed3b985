package encashment

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=encashment_repo.go -destination=mock/encashment_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Encashment) error
	FindByID(ctx context.Context, id string) (*Encashment, error)
	FindPending(ctx context.Context) ([]Encashment, error)
	UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error)
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

func (r *repository) Create(ctx context.Context, e *Encashment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Encashment, error) {
	var e Encashment
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindPending(ctx context.Context) ([]Encashment, error) {
	var list []Encashment
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("status = ?", StatusPending).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// UpdateStatusIfPending is the conditional transition out of pending.
// Zero rows affected means another decision already won the race.
func (r *repository) UpdateStatusIfPending(ctx context.Context, id, status string) (bool, error) {
	query := `
UPDATE encashments
SET
	status = $1,
	updated_at = NOW()
WHERE id = $2 AND status = $3
`
	exec, err := r.execer()
	if err != nil {
		return false, err
	}

	res, err := exec.ExecContext(ctx, query, status, id, StatusPending)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *repository) execer() (interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, error) {
	if r.tx != nil {
		return r.tx, nil
	}
	return r.db.DB()
}
