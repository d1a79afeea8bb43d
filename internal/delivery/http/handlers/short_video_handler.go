package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type ShortVideoHandler struct {
	svc usecases.ShortVideoService
	log *zap.Logger
}

func NewShortVideoHandler(svc usecases.ShortVideoService, log *zap.Logger) *ShortVideoHandler {
	return &ShortVideoHandler{svc: svc, log: log}
}

// Ingest resolves a share link, re-hosts the video and returns the stored
// record. Re-posting a known link returns the existing record untouched.
func (h *ShortVideoHandler) Ingest(c *fiber.Ctx) error {
	var req dto.IngestRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	resp, err := h.svc.Ingest(c.UserContext(), req.OriginalURL)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *ShortVideoHandler) List(c *fiber.Ctx) error {
	videos, err := h.svc.List(c.UserContext())
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(videos)
}

func (h *ShortVideoHandler) FileURL(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return apperrors.HandleError(c, h.log, apperrors.ErrValidation(nil))
	}

	resp, err := h.svc.FileURL(c.UserContext(), key)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}
