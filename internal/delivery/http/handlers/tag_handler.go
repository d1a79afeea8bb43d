package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type TagHandler struct {
	svc usecases.TagService
	log *zap.Logger
}

func NewTagHandler(svc usecases.TagService, log *zap.Logger) *TagHandler {
	return &TagHandler{svc: svc, log: log}
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTagRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	tag, err := h.svc.Create(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.svc.List(c.UserContext())
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(tags)
}

func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	tag, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(tag)
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTagRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	tag, err := h.svc.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(tag)
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
