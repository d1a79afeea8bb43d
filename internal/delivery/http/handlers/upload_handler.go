package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/langliu/budgie/internal/domain/dto"
	"github.com/langliu/budgie/internal/usecases"
	apperrors "github.com/langliu/budgie/pkg/errors"
)

type UploadHandler struct {
	svc usecases.UploadService
	log *zap.Logger
}

func NewUploadHandler(svc usecases.UploadService, log *zap.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, log: log}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	var req dto.UploadRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	resp, err := h.svc.Upload(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *UploadHandler) Presign(c *fiber.Ctx) error {
	var req dto.PresignRequest
	if err := parseBody(c, &req); err != nil {
		return apperrors.HandleError(c, h.log, err)
	}

	resp, err := h.svc.Presign(c.UserContext(), &req)
	if err != nil {
		return apperrors.HandleError(c, h.log, err)
	}
	return c.JSON(resp)
}
