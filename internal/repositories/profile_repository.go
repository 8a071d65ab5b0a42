package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dealflow/internal/models/db_models"
)

type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error)
	// UpsertSettings writes only user-editable settings columns; a missing
	// profile row is created on first write.
	UpsertSettings(ctx context.Context, accountID uuid.UUID, fields map[string]interface{}) (*db_models.Profile, error)

	ListPending(ctx context.Context) ([]db_models.Profile, error)
	// SetApplicationStatus transitions a pending application and reports
	// how many rows matched; approved/rejected are terminal, so the update
	// is predicated on the row still being pending.
	SetApplicationStatus(ctx context.Context, accountID uuid.UUID, status db_models.ApplicationStatus) (int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (p *profileRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Profile, error) {
	var profile db_models.Profile
	err := p.db.WithContext(ctx).First(&profile, "account_id = ?", accountID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (p *profileRepository) UpsertSettings(ctx context.Context, accountID uuid.UUID, fields map[string]interface{}) (*db_models.Profile, error) {
	var profile db_models.Profile

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&profile, "account_id = ?", accountID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			profile = db_models.Profile{AccountID: accountID}
			if err := tx.Create(&profile).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.Model(&profile).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&profile, "account_id = ?", accountID).Error
	})
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (p *profileRepository) ListPending(ctx context.Context) ([]db_models.Profile, error) {
	var profiles []db_models.Profile
	err := p.db.WithContext(ctx).
		Where("application_status = ?", db_models.ApplicationPending).
		Order("updated_at desc").
		Find(&profiles).Error

	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (p *profileRepository) SetApplicationStatus(ctx context.Context, accountID uuid.UUID, status db_models.ApplicationStatus) (int64, error) {
	res := p.db.WithContext(ctx).
		Model(&db_models.Profile{}).
		Where("account_id = ? AND application_status = ?", accountID, db_models.ApplicationPending).
		Update("application_status", status)

	return res.RowsAffected, res.Error
}
