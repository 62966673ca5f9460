package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/storefront-admin/internal/application/dto"
	"github.com/tu-usuario/storefront-admin/internal/application/inventory"
	"github.com/tu-usuario/storefront-admin/internal/domain"
)

// InventoryHandler maneja ajustes de stock, listados de inventario,
// historial de movimientos, conciliación y el reporte PDF (protegido).
type InventoryHandler struct {
	adjust *inventory.AdjustStockUseCase
	query  *inventory.QueryUseCase
	report *inventory.ReportUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	adjust *inventory.AdjustStockUseCase,
	query *inventory.QueryUseCase,
	report *inventory.ReportUseCase,
) *InventoryHandler {
	return &InventoryHandler{adjust: adjust, query: query, report: report}
}

// Adjust godoc
// @Summary      Aplicar un ajuste de stock
// @Description  Delta firmado distinto de cero. Con idempotency_key repetida
//               devuelve 200 con el movimiento original en vez de aplicar de nuevo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, delta, type, notes, idempotency_key"
// @Success      201   {object}  dto.MovementResponse
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	var actorID *string
	if userID := GetUserID(c); userID != "" {
		actorID = &userID
	}
	result, err := h.adjust.Apply(c.Context(), inventory.AdjustmentInput{
		ProductID:      in.ProductID,
		VariantID:      in.VariantID,
		Delta:          in.Delta,
		Type:           in.Type,
		Notes:          in.Notes,
		ActorID:        actorID,
		IdempotencyKey: in.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDelta):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DELTA", Message: "delta debe ser distinto de cero"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo de movimiento inválido"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "el ajuste dejaría el stock negativo"})
		case errors.Is(err, domain.ErrConcurrencyConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONCURRENCY_CONFLICT", Message: "conflicto de concurrencia; reintentar"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	status := fiber.StatusCreated
	if result.Replayed {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(inventory.ToMovementResponse(result.Movement))
}

// ListInventory godoc
// @Summary      Listar inventario con estado derivado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Subcadena sobre name o sku"
// @Param        status  query  string  false  "in_stock | low_stock | out_of_stock"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {array}   dto.InventoryItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) ListInventory(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	items, err := h.query.ListInventory(c.Context(), c.Query("search"), c.Query("status"), page)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser in_stock, low_stock o out_of_stock"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// ListMovements godoc
// @Summary      Historial de movimientos (más recientes primero)
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto; vacío = feed global"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginación inválida"})
	}
	out, err := h.query.ListMovements(c.Context(), c.Query("product_id"), page)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Reconcile godoc
// @Summary      Comparar la proyección de stock contra el libro de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ReconciliationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/products/{id}/reconcile [get]
func (h *InventoryHandler) Reconcile(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.Reconcile(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del inventario actual
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.report.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="inventario-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(pdfBytes)
}
