package http

import (
	"context"
	"time"

	"shop-ledger/internal/catalog/usecase"
	"shop-ledger/internal/shared/logger"
	"shop-ledger/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

const defaultRequestTimeout = 10 * time.Second

// CatalogHandler serves the catalog and trade-ledger REST endpoints.
type CatalogHandler struct {
	ProductUC      usecase.ProductUsecaseInterface
	UserUC         usecase.UserUsecaseInterface
	ImportUC       usecase.ImportUsecaseInterface
	ExportUC       usecase.ExportUsecaseInterface
	Log            logger.Logger
	RequestTimeout time.Duration
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(
	productUC usecase.ProductUsecaseInterface,
	userUC usecase.UserUsecaseInterface,
	importUC usecase.ImportUsecaseInterface,
	exportUC usecase.ExportUsecaseInterface,
	log logger.Logger,
	requestTimeout time.Duration,
) *CatalogHandler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	return &CatalogHandler{
		ProductUC:      productUC,
		UserUC:         userUC,
		ImportUC:       importUC,
		ExportUC:       exportUC,
		Log:            log.WithComponent("catalog.http"),
		RequestTimeout: requestTimeout,
	}
}

func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	users := componentScope("users")
	products := componentScope("products")
	imports := componentScope("imports")
	exports := componentScope("exports")

	router.Post("/users", users, h.RegisterUser)

	router.Post("/products", products, h.CreateProduct)
	router.Get("/products", products, h.ListProducts)
	router.Get("/popularproducts", products, h.ListPopularProducts)
	router.Get("/products/:id", products, h.GetProduct)
	router.Patch("/products/:id", products, h.UpdateProduct)
	router.Delete("/products/:id", products, h.DeleteProduct)

	router.Get("/myimports", imports, h.ListImports)
	router.Get("/myimports/:id", imports, h.GetImport)
	router.Post("/myimports", imports, h.CreateImport)
	router.Delete("/myimports/:id", imports, h.DeleteImport)

	router.Get("/myexports", exports, h.ListExports)
	router.Patch("/myexports/:id", exports, h.UpdateExport)
	router.Delete("/myexports/:id", exports, h.DeleteExport)
	router.Post("/addexports", exports, h.AddExport)
}

// componentScope tags the request context with the resource family it
// serves, so every log line written for the request carries it.
func componentScope(component string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(utils.WithComponent(c.UserContext(), component))
		return c.Next()
	}
}

// requestContext bounds the store calls of one request.
func (h *CatalogHandler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	timeout := h.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}
