package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type TodoHandler struct {
	svc usecases.TodoService
	log *zap.Logger
}

func NewTodoHandler(svc usecases.TodoService, log *zap.Logger) *TodoHandler {
	return &TodoHandler{svc: svc, log: log}
}

func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTodoRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	todo, err := h.svc.Create(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(todo)
}

func (h *TodoHandler) List(c *fiber.Ctx) error {
	todos, err := h.svc.List(c.UserContext())
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(todos)
}

func (h *TodoHandler) Toggle(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.HandleError(c, h.log, apperrors.ErrValidation(err))
	}

	var req dto.ToggleTodoRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	if err := h.svc.Toggle(c.UserContext(), id, req.Completed); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *TodoHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return apperrors.HandleError(c, h.log, apperrors.ErrValidation(err))
	}

	if err := h.svc.Delete(c.UserContext(), id); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
