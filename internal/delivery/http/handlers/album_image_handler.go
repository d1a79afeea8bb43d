package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type AlbumImageHandler struct {
	svc usecases.AlbumImageService
	log *zap.Logger
}

func NewAlbumImageHandler(svc usecases.AlbumImageService, log *zap.Logger) *AlbumImageHandler {
	return &AlbumImageHandler{svc: svc, log: log}
}

func (h *AlbumImageHandler) Add(c *fiber.Ctx) error {
	var req dto.AddImagesRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	images, err := h.svc.AddImages(c.UserContext(), c.Params("id"), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(images)
}

func (h *AlbumImageHandler) ListByAlbum(c *fiber.Ctx) error {
	images, err := h.svc.ListByAlbum(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(images)
}

func (h *AlbumImageHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateImageRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	image, err := h.svc.Update(c.UserContext(), c.Params("imageId"), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(image)
}

func (h *AlbumImageHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("imageId")); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
