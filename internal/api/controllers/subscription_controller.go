package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soko/internal/models/db_models"
	"soko/internal/models/request_models"
	"soko/internal/services"
	"soko/pkg/middleware"
	"soko/pkg/utils"
)

type SubscriptionController struct {
	*ResourceController[db_models.Subscription]
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		ResourceController: NewResourceController[db_models.Subscription](subscriptionService, db_models.SubscriptionQuery),
		subscriptionService: subscriptionService,
	}
}

// Pay records a subscription payment for the caller and reactivates the
// account in the same transaction.
func (s *SubscriptionController) Pay(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, utils.NewAppError(http.StatusUnauthorized, "You are not logged in! Please log in to get access."))
		return
	}

	var req request_models.PaySubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, err)
		return
	}

	subscription, err := s.subscriptionService.Pay(c.Request.Context(), user, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	utils.RespondCreated(c, gin.H{"subscription": subscription}, "")
}

// CreateRefused rejects the generic create, payments only happen through the
// guarded route.
func (s *SubscriptionController) CreateRefused(c *gin.Context) {
	fail(c, utils.NewAppError(http.StatusInternalServerError,
		"This route is not defined! Please use /subscriptions/pay instead"))
}

// MyScope narrows a listing to the caller's own payments.
func (s *SubscriptionController) MyScope(c *gin.Context) map[string]any {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return map[string]any{"user_id": ""}
	}
	return map[string]any{"user_id": user.ID}
}

func (s *SubscriptionController) BindUpdates(c *gin.Context) (map[string]any, error) {
	var req request_models.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.Changes(), nil
}
