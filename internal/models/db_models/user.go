package db_models

import (
	"time"

	"soko/pkg/query"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
)

// User is the authenticated principal. The password hash and the reset-token
// fields never serialize, deactivated accounts stay in the table with
// Active=false and are invisible to every lookup.
type User struct {
	BaseModel
	Name                 string  `json:"name"`
	Shop                 string  `json:"shop,omitempty"`
	Email                string  `gorm:"uniqueIndex" json:"email"`
	Telephone            string  `json:"telephone,omitempty"`
	Photo                string  `json:"photo,omitempty"`
	Role                 string  `gorm:"default:user" json:"role"`
	Password             string  `json:"-"`
	PasswordChangedAt    int64   `json:"-"`
	PasswordResetToken   string  `json:"-"`
	PasswordResetExpires int64   `json:"-"`
	SubscriptionStatus   string  `gorm:"default:inactive" json:"subscriptionStatus"`
	LastPaymentAt        int64   `json:"lastPaymentAt,omitempty"`
	Active               bool    `gorm:"default:true" json:"-"`
	Stores               []Store `gorm:"foreignKey:OwnerID" json:"-"`
}

// ChangedPasswordAfter reports whether the password changed after the given
// token issue time, which invalidates the token without a blacklist.
func (u *User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if u.PasswordChangedAt == 0 {
		return false
	}
	return issuedAt.Unix() < u.PasswordChangedAt
}

var UserQuery = query.Spec{
	Filterable: map[string]string{
		"name":               "name",
		"shop":               "shop",
		"email":              "email",
		"role":               "role",
		"subscriptionStatus": "subscription_status",
		"createdAt":          "created_at",
	},
	Sortable: map[string]string{
		"name":      "name",
		"email":     "email",
		"createdAt": "created_at",
	},
	Selectable: map[string]string{
		"name":               "name",
		"shop":               "shop",
		"email":              "email",
		"telephone":          "telephone",
		"photo":              "photo",
		"role":               "role",
		"subscriptionStatus": "subscription_status",
		"createdAt":          "created_at",
	},
	SearchColumn: "name",
	DefaultSort:  "created_at DESC",
}
