package db_models

import (
	"math"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"soko/pkg/query"
)

const (
	CurrencyUGX  = "UGX"
	CurrencyUSD  = "USD"
	CurrencyEuro = "EURO"
)

// Product belongs to one store and one category. The discount invariant
// (PriceDiscount < Price) is enforced by the product service on every write.
type Product struct {
	BaseModel
	Name               string         `json:"name"`
	Brand              string         `json:"brand,omitempty"`
	Price              float64        `json:"price"`
	Currency           string         `gorm:"default:UGX" json:"currency"`
	PriceDiscount      float64        `json:"priceDiscount,omitempty"`
	PercentageDiscount float64        `json:"percentageDiscount"`
	ImageCover         string         `json:"imageCover,omitempty"`
	Images             pq.StringArray `gorm:"type:text[]" json:"images,omitempty"`
	Description        string         `json:"description,omitempty"`
	CategoryID         uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	StoreID            uuid.UUID      `gorm:"type:uuid;index" json:"store_id"`
	Category           *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Store              *Store         `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

// PercentageDiscountFor computes the rounded discount percentage, zero when
// there is no discount.
func PercentageDiscountFor(price, priceDiscount float64) float64 {
	if priceDiscount <= 0 || price <= 0 {
		return 0
	}
	return math.Round((price-priceDiscount)/price*10000) / 100
}

var ProductQuery = query.Spec{
	Filterable: map[string]string{
		"name":               "name",
		"brand":              "brand",
		"price":              "price",
		"currency":           "currency",
		"priceDiscount":      "price_discount",
		"percentageDiscount": "percentage_discount",
		"category":           "category_id",
		"store":              "store_id",
		"createdAt":          "created_at",
	},
	Sortable: map[string]string{
		"name":               "name",
		"price":              "price",
		"percentageDiscount": "percentage_discount",
		"createdAt":          "created_at",
	},
	Selectable: map[string]string{
		"name":               "name",
		"brand":              "brand",
		"price":              "price",
		"currency":           "currency",
		"priceDiscount":      "price_discount",
		"percentageDiscount": "percentage_discount",
		"imageCover":         "image_cover",
		"description":        "description",
		"createdAt":          "created_at",
	},
	SearchColumn: "name",
	DefaultSort:  "created_at DESC",
}
