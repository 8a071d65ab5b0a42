package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dealflow/internal/models/db_models"
)

// DeliverableRepository scopes every operation through the parent deal's
// owner: mutations by deliverable id are predicated on a subquery over the
// caller's deals, so a client-supplied id never reaches another user's
// checklist.
type DeliverableRepository interface {
	Insert(ctx context.Context, deliverable *db_models.Deliverable) error
	InsertBatch(ctx context.Context, deliverables []db_models.Deliverable) error
	ListForDeal(ctx context.Context, dealID, userID uuid.UUID) ([]db_models.Deliverable, error)
	Toggle(ctx context.Context, id, userID uuid.UUID, completed bool) (int64, error)
	UpdateProof(ctx context.Context, id, userID uuid.UUID, proof string) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)

	// DealExistsForUser re-derives parent ownership before an insert.
	DealExistsForUser(ctx context.Context, dealID, userID uuid.UUID) (bool, error)
}

type deliverableRepository struct {
	db *gorm.DB
}

func NewDeliverableRepository(db *gorm.DB) DeliverableRepository {
	return &deliverableRepository{db: db}
}

func (r *deliverableRepository) ownedDealIDs(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Select("id").
		Where("user_id = ?", userID)
}

func (r *deliverableRepository) Insert(ctx context.Context, deliverable *db_models.Deliverable) error {
	return r.db.WithContext(ctx).Create(deliverable).Error
}

func (r *deliverableRepository) InsertBatch(ctx context.Context, deliverables []db_models.Deliverable) error {
	if len(deliverables) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&deliverables).Error
}

func (r *deliverableRepository) ListForDeal(ctx context.Context, dealID, userID uuid.UUID) ([]db_models.Deliverable, error) {
	var deliverables []db_models.Deliverable
	err := r.db.WithContext(ctx).
		Where("deal_id = ? AND deal_id IN (?)", dealID, r.ownedDealIDs(ctx, userID)).
		Order("created_at asc").
		Find(&deliverables).Error

	if err != nil {
		return nil, err
	}

	return deliverables, nil
}

func (r *deliverableRepository) Toggle(ctx context.Context, id, userID uuid.UUID, completed bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Deliverable{}).
		Where("id = ? AND deal_id IN (?)", id, r.ownedDealIDs(ctx, userID)).
		Update("completed", completed)

	return res.RowsAffected, res.Error
}

func (r *deliverableRepository) UpdateProof(ctx context.Context, id, userID uuid.UUID, proof string) (int64, error) {
	// Empty proof writes NULL so a link can be removed again.
	var value interface{}
	if proof != "" {
		value = proof
	}
	res := r.db.WithContext(ctx).
		Model(&db_models.Deliverable{}).
		Where("id = ? AND deal_id IN (?)", id, r.ownedDealIDs(ctx, userID)).
		Update("proof_url", value)

	return res.RowsAffected, res.Error
}

func (r *deliverableRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND deal_id IN (?)", id, r.ownedDealIDs(ctx, userID)).
		Delete(&db_models.Deliverable{})

	return res.RowsAffected, res.Error
}

func (r *deliverableRepository) DealExistsForUser(ctx context.Context, dealID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Deal{}).
		Where("id = ? AND user_id = ?", dealID, userID).
		Count(&count).Error

	return count > 0, err
}
