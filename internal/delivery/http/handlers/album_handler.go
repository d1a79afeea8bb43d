package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type AlbumHandler struct {
	svc usecases.AlbumService
	log *zap.Logger
}

func NewAlbumHandler(svc usecases.AlbumService, log *zap.Logger) *AlbumHandler {
	return &AlbumHandler{svc: svc, log: log}
}

func (h *AlbumHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAlbumRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	album, err := h.svc.Create(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(album)
}

func (h *AlbumHandler) List(c *fiber.Ctx) error {
	var q dto.AlbumListQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.HandleError(c, h.log, apperrors.ErrValidation(err))
	}

	page, err := h.svc.List(c.UserContext(), q)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(page)
}

func (h *AlbumHandler) GetByID(c *fiber.Ctx) error {
	album, err := h.svc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(album)
}

func (h *AlbumHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateAlbumRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	album, err := h.svc.Update(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(album)
}

func (h *AlbumHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
