package http

import (
	"shop-ledger/internal/catalog/usecase"
	"shop-ledger/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *CatalogHandler) ListExports(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	email := c.Query("email")
	if email != "" {
		ctx = utils.WithUserEmail(ctx, email)
	}
	docs, err := h.ExportUC.ListExports(ctx, email)
	if err != nil {
		return h.respondError(c, err, usecase.MsgFetchExportsFailed)
	}
	return c.JSON(docs)
}

func (h *CatalogHandler) AddExport(c *fiber.Ctx) error {
	body := h.payload(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ExportUC.AddExport(ctx, body)
	if err != nil {
		return h.respondError(c, err, usecase.MsgAddExportFailed)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": usecase.MsgExportAdded,
		"data":    res,
	})
}

func (h *CatalogHandler) UpdateExport(c *fiber.Ctx) error {
	body := h.payload(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ExportUC.UpdateExport(ctx, c.Params("id"), body)
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(res)
}

func (h *CatalogHandler) DeleteExport(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ExportUC.DeleteExport(ctx, c.Params("id"))
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(res)
}
