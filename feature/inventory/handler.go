package inventory

import (
	"errors"

	"profile-sync/core/logger"
	"profile-sync/core/orchestrator"
	"profile-sync/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inventories.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/documents", h.HandleDocuments)
	group.Get("/hosts", h.HandleHosts)
}

// HandleDocuments lists the configured inventory sources.
// @Summary List Inventories
// @Description Loads every configured inventory source and reports its host and group counts.
// @Tags inventory
// @Produce json
// @Success 200 {array} DocumentInfo "Inventories"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/documents [get]
func (h *Handler) HandleDocuments(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	docs, err := h.service.Documents(c.Context())
	if err != nil {
		l.Error("Failed to load inventories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(docs)
}

// HandleHosts returns the resolved configuration of every host.
// @Summary Resolve Hosts
// @Description Resolves defaults, groups and host overrides for every host of every configured inventory.
// @Tags inventory
// @Produce json
// @Success 200 {array} resolver.Resolved "Resolved hosts"
// @Failure 422 {object} map[string]string "Invalid Inventory"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/hosts [get]
func (h *Handler) HandleHosts(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	hosts, err := h.service.Hosts(c.Context())
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, orchestrator.ErrEmptyInventory) || errors.Is(err, resolver.ErrMissingField) {
			status = fiber.StatusUnprocessableEntity
		}
		l.Error("Failed to resolve hosts", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(hosts)
}
