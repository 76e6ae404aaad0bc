package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mohamedlefliti/projetennaciria/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id matches no row.
var ErrNotFound = errors.New("transaction not found")

// TransactionRepository runs CRUD statements against the transactions table.
type TransactionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

type Option func(*TransactionRepository)

// WithClock replaces time.Now as the source of insertion dates.
func WithClock(now func() time.Time) Option {
	return func(r *TransactionRepository) {
		r.now = now
	}
}

func New(db *gorm.DB, opts ...Option) *TransactionRepository {
	r := &TransactionRepository{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Insert stamps today's date and writes one new row.
func (r *TransactionRepository) Insert(ctx context.Context, in models.Input) (models.Transaction, error) {
	tx := models.Transaction{
		Date:        r.now().Format(models.DateLayout),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
	}
	if err := r.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return models.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	return tx, nil
}

// ListAll returns every row in primary key order.
func (r *TransactionRepository) ListAll(ctx context.Context) ([]models.Transaction, error) {
	var rows []models.Transaction
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return rows, nil
}

func (r *TransactionRepository) Get(ctx context.Context, id uint) (models.Transaction, error) {
	var tx models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Transaction{}, fmt.Errorf("get transaction %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return tx, nil
}

func (r *TransactionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}

// Update rewrites the editable fields of row id. Date and id are left alone.
func (r *TransactionRepository) Update(ctx context.Context, id uint, in models.Input) error {
	res := r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"description": in.Description,
			"amount":      in.Amount,
			"type":        in.Type,
			"category":    in.Category,
		})
	if res.Error != nil {
		return fmt.Errorf("update transaction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update transaction %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Transaction{})
	if res.Error != nil {
		return fmt.Errorf("delete transaction %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete transaction %d: %w", id, ErrNotFound)
	}
	return nil
}
