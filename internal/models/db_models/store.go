package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"soko/pkg/query"
)

// Store is owned by exactly one user. Address and Location are free-form
// jsonb blocks, the location follows the GeoJSON point shape.
type Store struct {
	BaseModel
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Employees   int            `json:"employees,omitempty"`
	Telephone   string         `json:"telephone,omitempty"`
	Logo        string         `json:"logo,omitempty"`
	Address     datatypes.JSON `gorm:"type:jsonb" json:"address,omitempty"`
	Location    datatypes.JSON `gorm:"type:jsonb" json:"location,omitempty"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;index" json:"owner_id"`
	Owner       *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Products    []Product      `gorm:"foreignKey:StoreID" json:"products,omitempty"`
	Fee         float64        `gorm:"-" json:"fee,omitempty"`
}

// AfterFind derives the monthly fee from the employee count so it is present
// on every read without being stored.
func (s *Store) AfterFind(tx *gorm.DB) error {
	s.Fee = MonthlyFee(s.Employees)
	return nil
}

// MonthlyFee bands the subscription fee by store size, amounts in UGX.
func MonthlyFee(employees int) float64 {
	switch {
	case employees <= 5:
		return 50000
	case employees <= 20:
		return 100000
	case employees <= 50:
		return 200000
	default:
		return 350000
	}
}

var StoreQuery = query.Spec{
	Filterable: map[string]string{
		"name":      "name",
		"employees": "employees",
		"owner":     "owner_id",
		"createdAt": "created_at",
	},
	Sortable: map[string]string{
		"name":      "name",
		"employees": "employees",
		"createdAt": "created_at",
	},
	Selectable: map[string]string{
		"name":        "name",
		"description": "description",
		"employees":   "employees",
		"telephone":   "telephone",
		"logo":        "logo",
		"createdAt":   "created_at",
	},
	SearchColumn: "name",
	DefaultSort:  "created_at DESC",
}
