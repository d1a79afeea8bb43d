package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type ModelHandler struct {
	svc usecases.ModelService
	log *zap.Logger
}

func NewModelHandler(svc usecases.ModelService, log *zap.Logger) *ModelHandler {
	return &ModelHandler{svc: svc, log: log}
}

func (h *ModelHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateModelRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	model, err := h.svc.Create(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(model)
}

func (h *ModelHandler) List(c *fiber.Ctx) error {
	var q dto.ModelListQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.HandleError(c, h.log, apperrors.ErrValidation(err))
	}

	page, err := h.svc.List(c.UserContext(), q)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(page)
}

func (h *ModelHandler) GetByID(c *fiber.Ctx) error {
	model, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(model)
}

func (h *ModelHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateModelRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	model, err := h.svc.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(model)
}

func (h *ModelHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
