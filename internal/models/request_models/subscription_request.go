package request_models

type PaySubscriptionRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type UpdateSubscriptionRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gt=0"`
	Paid   *bool    `json:"paid"`
}

func (r *UpdateSubscriptionRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Amount != nil {
		changes["amount"] = *r.Amount
	}
	if r.Paid != nil {
		changes["paid"] = *r.Paid
	}
	return changes
}
