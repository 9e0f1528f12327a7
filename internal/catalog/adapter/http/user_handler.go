package http

import (
	"shop-ledger/internal/catalog/usecase"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser answers with the insert result, or with a notice when the
// email is already registered.
func (h *CatalogHandler) RegisterUser(c *fiber.Ctx) error {
	body := h.payload(c)
	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.UserUC.RegisterUser(ctx, body)
	if err != nil {
		return h.respondError(c, err, usecase.MsgServerError)
	}
	if out.Existing {
		return c.JSON(fiber.Map{"message": usecase.MsgUserExists})
	}
	return c.JSON(out.Inserted)
}
