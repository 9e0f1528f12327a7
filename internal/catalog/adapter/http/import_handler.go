package http

import (
	"shop-ledger/internal/catalog/usecase"
	"shop-ledger/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *CatalogHandler) ListImports(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	email := c.Query("email")
	if email != "" {
		ctx = utils.WithUserEmail(ctx, email)
	}
	docs, err := h.ImportUC.ListImports(ctx, email)
	if err != nil {
		return h.respondError(c, err, usecase.MsgFetchImportsFailed)
	}
	return c.JSON(docs)
}

func (h *CatalogHandler) GetImport(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	doc, err := h.ImportUC.GetImport(ctx, c.Params("id"))
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(doc)
}

func (h *CatalogHandler) CreateImport(c *fiber.Ctx) error {
	body := h.payload(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.ImportUC.CreateImport(ctx, body)
	if err != nil {
		return h.respondError(c, err, usecase.MsgImportFailed)
	}
	return c.JSON(out)
}

func (h *CatalogHandler) DeleteImport(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ImportUC.DeleteImport(ctx, c.Params("id"))
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(res)
}
