package request

type CreateHallRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Size int    `json:"size" validate:"required,gte=20"`
}

// UpdateHallRequest is a patch; absent fields keep their current values.
type UpdateHallRequest struct {
	Name *string `json:"name" validate:"omitempty,max=120"`
	Size *int    `json:"size" validate:"omitempty,gte=20"`
}
