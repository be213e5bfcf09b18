package subscriptions_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"soko/internal/repositories"
	"soko/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionRepo, provideSubscriptionService)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepositoryInterface {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(subscriptionRepo repositories.SubscriptionRepositoryInterface) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(subscriptionRepo)
}
