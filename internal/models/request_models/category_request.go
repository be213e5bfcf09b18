package request_models

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateCategoryRequest) Changes() map[string]any {
	changes := make(map[string]any)
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	return changes
}
