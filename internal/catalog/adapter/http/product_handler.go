package http

import (
	"shop-ledger/internal/catalog/usecase"

	"github.com/gofiber/fiber/v2"
)

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	body := h.payload(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ProductUC.CreateProduct(ctx, body)
	if err != nil {
		return h.respondError(c, err, usecase.MsgInsertProductFailed)
	}
	return c.JSON(res)
}

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	docs, err := h.ProductUC.ListProducts(ctx)
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(docs)
}

func (h *CatalogHandler) ListPopularProducts(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	docs, err := h.ProductUC.ListPopularProducts(ctx)
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(docs)
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	doc, err := h.ProductUC.GetProduct(ctx, c.Params("id"))
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(doc)
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	body := h.payload(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ProductUC.UpdateProduct(ctx, c.Params("id"), body)
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(res)
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := h.ProductUC.DeleteProduct(ctx, c.Params("id"))
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	return c.JSON(res)
}
