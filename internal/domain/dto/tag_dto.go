package dto

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateTagRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}
