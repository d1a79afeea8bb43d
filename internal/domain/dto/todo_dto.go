package dto

type CreateTodoRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

type ToggleTodoRequest struct {
	Completed bool `json:"completed"`
}
