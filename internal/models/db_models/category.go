package db_models

import "soko/pkg/query"

// Category is a named grouping. The Products relation is resolved with an
// explicit read-time join when a single category is fetched, it is never
// stored or cached.
type Category struct {
	BaseModel
	Name        string    `gorm:"uniqueIndex" json:"name"`
	Description string    `json:"description,omitempty"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

var CategoryQuery = query.Spec{
	Filterable: map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	},
	Sortable: map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	},
	Selectable: map[string]string{
		"name":        "name",
		"description": "description",
		"createdAt":   "created_at",
	},
	SearchColumn: "name",
	DefaultSort:  "created_at DESC",
}
