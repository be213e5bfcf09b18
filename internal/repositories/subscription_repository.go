package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"soko/internal/models/db_models"
)

type SubscriptionRepositoryInterface interface {
	CrudRepositoryInterface[db_models.Subscription]
	Pay(ctx context.Context, userID uuid.UUID, amount float64) (*db_models.Subscription, error)
}

type SubscriptionRepository struct {
	*CrudRepository[db_models.Subscription]
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	preloads := []Preload{
		{Relation: "User", Columns: []string{"id", "name"}},
	}
	return &SubscriptionRepository{
		CrudRepository: NewCrudRepository[db_models.Subscription](db, db_models.SubscriptionQuery, preloads, nil),
		db:             db,
	}
}

// Pay writes the payment row and flips the user's subscription in one
// transaction, so a failed user update never leaves an orphan payment.
func (r *SubscriptionRepository) Pay(ctx context.Context, userID uuid.UUID, amount float64) (*db_models.Subscription, error) {
	now := time.Now().Unix()
	subscription := &db_models.Subscription{
		UserID:   userID,
		Amount:   amount,
		DatePaid: now,
		Paid:     true,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(subscription).Error; err != nil {
			return err
		}
		return tx.Model(&db_models.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"subscription_status": db_models.SubscriptionActive,
				"last_payment_at":     now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return subscription, nil
}
