package request_models

import "encoding/json"

type CreateStoreRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Employees   int             `json:"employees" binding:"required,gt=0"`
	Telephone   string          `json:"telephone"`
	Address     json.RawMessage `json:"address"`
	Location    json.RawMessage `json:"location"`
}

type UpdateStoreRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Employees   *int            `json:"employees" binding:"omitempty,gt=0"`
	Telephone   *string         `json:"telephone"`
	Address     json.RawMessage `json:"address"`
	Location    json.RawMessage `json:"location"`
}

// Changes maps the provided fields onto their columns for a partial update.
func (r *UpdateStoreRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Employees != nil {
		changes["employees"] = *r.Employees
	}
	if r.Telephone != nil {
		changes["telephone"] = *r.Telephone
	}
	if len(r.Address) > 0 {
		changes["address"] = []byte(r.Address)
	}
	if len(r.Location) > 0 {
		changes["location"] = []byte(r.Location)
	}
	return changes
}
