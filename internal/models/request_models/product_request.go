package request_models

type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=5,max=40"`
	Brand         string  `json:"brand"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"omitempty,oneof=UGX USD EURO"`
	PriceDiscount float64 `json:"priceDiscount" binding:"omitempty,gt=0"`
	ImageCover    string  `json:"imageCover"`
	Description   string  `json:"description"`
	Category      string  `json:"category" binding:"required,uuid4"`
	Store         string  `json:"store" binding:"omitempty,uuid4"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=5,max=40"`
	Brand         *string  `json:"brand"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Currency      *string  `json:"currency" binding:"omitempty,oneof=UGX USD EURO"`
	PriceDiscount *float64 `json:"priceDiscount" binding:"omitempty,gte=0"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category" binding:"omitempty,uuid4"`
}

func (r *UpdateProductRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Brand != nil {
		changes["brand"] = *r.Brand
	}
	if r.Price != nil {
		changes["price"] = *r.Price
	}
	if r.Currency != nil {
		changes["currency"] = *r.Currency
	}
	if r.PriceDiscount != nil {
		changes["price_discount"] = *r.PriceDiscount
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Category != nil {
		changes["category_id"] = *r.Category
	}
	return changes
}
