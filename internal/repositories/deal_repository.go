package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dealflow/internal/models/db_models"
)

// DealRepository guards every mutation with the compound ownership predicate
// (id = ? AND user_id = ?) so the write itself is a no-op when the caller
// does not own the row. Callers translate zero affected rows into
// ErrNotFoundOrForbidden.
type DealRepository interface {
	Insert(ctx context.Context, deal *db_models.Deal) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Deal, error)
	FindByIDForUser(ctx context.Context, dealID, userID uuid.UUID) (*db_models.Deal, error)
	UpdateFields(ctx context.Context, dealID, userID uuid.UUID, fields map[string]interface{}) (int64, error)
	UpdateStatus(ctx context.Context, dealID, userID uuid.UUID, status db_models.DealStatus) (int64, error)
	// DeleteWithDeliverables removes the deal and its children in one
	// transaction so no orphaned checklist rows survive.
	DeleteWithDeliverables(ctx context.Context, dealID, userID uuid.UUID) (int64, error)
}

type dealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) DealRepository {
	return &dealRepository{db: db}
}

func (r *dealRepository) Insert(ctx context.Context, deal *db_models.Deal) error {
	return r.db.WithContext(ctx).Create(deal).Error
}

func (r *dealRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Deal, error) {
	var deals []db_models.Deal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&deals).Error

	if err != nil {
		return nil, err
	}

	return deals, nil
}

func (r *dealRepository) FindByIDForUser(ctx context.Context, dealID, userID uuid.UUID) (*db_models.Deal, error) {
	var deal db_models.Deal
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", dealID, userID).
		First(&deal).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &deal, nil
}

func (r *dealRepository) UpdateFields(ctx context.Context, dealID, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Where("id = ? AND user_id = ?", dealID, userID).
		Updates(fields)

	return res.RowsAffected, res.Error
}

func (r *dealRepository) UpdateStatus(ctx context.Context, dealID, userID uuid.UUID, status db_models.DealStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Where("id = ? AND user_id = ?", dealID, userID).
		Update("status", status)

	return res.RowsAffected, res.Error
}

func (r *dealRepository) DeleteWithDeliverables(ctx context.Context, dealID, userID uuid.UUID) (int64, error) {
	var affected int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", dealID, userID).
			Delete(&db_models.Deal{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			// Nothing matched the ownership predicate; leave children alone.
			return nil
		}

		return tx.Where("deal_id = ?", dealID).
			Delete(&db_models.Deliverable{}).Error
	})

	return affected, err
}
