package services

import (
	"context"

	"soko/internal/models/db_models"
	"soko/internal/repositories"
)

type SubscriptionServiceInterface interface {
	ResourceServiceInterface[db_models.Subscription]
	Pay(ctx context.Context, user *db_models.User, amount float64) (*db_models.Subscription, error)
}

type SubscriptionService struct {
	*ResourceService[db_models.Subscription]
	subscriptionRepo repositories.SubscriptionRepositoryInterface
}

func NewSubscriptionService(subscriptionRepo repositories.SubscriptionRepositoryInterface) SubscriptionServiceInterface {
	return &SubscriptionService{
		ResourceService:  NewResourceService[db_models.Subscription](subscriptionRepo),
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *SubscriptionService) Pay(ctx context.Context, user *db_models.User, amount float64) (*db_models.Subscription, error) {
	return s.subscriptionRepo.Pay(ctx, user.ID, amount)
}
