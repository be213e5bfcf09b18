package db_models

import (
	"github.com/google/uuid"

	"soko/pkg/query"
)

// Subscription records one payment made by a user. Rows are created only by
// the guarded payment workflow, never by the generic create operation.
type Subscription struct {
	BaseModel
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Amount   float64   `json:"amount"`
	DatePaid int64     `json:"datePaid"`
	Paid     bool      `json:"paid"`
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

var SubscriptionQuery = query.Spec{
	Filterable: map[string]string{
		"amount":    "amount",
		"paid":      "paid",
		"datePaid":  "date_paid",
		"user":      "user_id",
		"createdAt": "created_at",
	},
	Sortable: map[string]string{
		"amount":    "amount",
		"datePaid":  "date_paid",
		"createdAt": "created_at",
	},
	Selectable: map[string]string{
		"amount":    "amount",
		"paid":      "paid",
		"datePaid":  "date_paid",
		"createdAt": "created_at",
	},
	DefaultSort: "created_at DESC",
}
