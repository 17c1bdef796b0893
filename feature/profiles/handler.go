package profiles

import (
	"errors"

	"profile-sync/core/logger"
	"profile-sync/core/orchestrator"
	"profile-sync/core/reconcile"
	"profile-sync/core/resolver"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for profiles.
type Handler struct {
	service  *Service
	readOnly bool
}

// PlanResponse describes a planned or applied sync.
type PlanResponse struct {
	Applied       bool                `json:"applied"`
	Summary       reconcile.Summary   `json:"summary"`
	Actions       []reconcile.Action  `json:"actions"`
	UnknownGroups map[string][]string `json:"unknown_groups,omitempty"`
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, readOnly bool) *Handler {
	return &Handler{service: service, readOnly: readOnly}
}

// RegisterRoutes registers the profile routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/profiles")
	group.Get("/", h.HandleList)
	group.Get("/plan", h.HandlePlan)
	if !h.readOnly {
		group.Post("/sync", h.HandleSync)
	}
}

// HandleList returns the persisted profiles.
// @Summary List Profiles
// @Description Returns the persisted profile records in store order.
// @Tags profiles
// @Produce json
// @Success 200 {array} profile.Record "Profiles"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /profiles [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context())
	if err != nil {
		l.Error("Failed to load profiles", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(records)
}

// HandlePlan returns what a sync would do.
// @Summary Plan Sync
// @Description Resolves the configured inventories and reconciles them against the store without writing anything.
// @Tags profiles
// @Produce json
// @Success 200 {object} PlanResponse "Plan"
// @Failure 422 {object} map[string]string "Invalid Inventory"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /profiles/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.Plan(c.Context())
	if err != nil {
		l.Error("Sync planning failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(newPlanResponse(res, false))
}

// HandleSync runs a sync and persists the result.
// @Summary Run Sync
// @Description Resolves the configured inventories, reconciles them against the store and writes the result. Syncs that drop profiles need confirm=true.
// @Tags profiles
// @Produce json
// @Param confirm query boolean false "Allow dropping profiles that left the inventory"
// @Success 200 {object} PlanResponse "Applied plan"
// @Failure 409 {object} PlanResponse "Drops need confirmation"
// @Failure 422 {object} map[string]string "Invalid Inventory"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /profiles/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	confirm := c.QueryBool("confirm", false)

	l.Info("Triggering profile sync", zap.Bool("confirm", confirm))
	res, err := h.service.Sync(c.Context(), confirm)
	if errors.Is(err, ErrDropNotConfirmed) {
		l.Warn("Sync would drop profiles", zap.Int("dropped", res.Plan.Summary.Dropped))
		return c.Status(fiber.StatusConflict).JSON(newPlanResponse(res, false))
	}
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(newPlanResponse(res, true))
}

func newPlanResponse(res *orchestrator.Result, applied bool) PlanResponse {
	actions := res.Plan.Actions
	if actions == nil {
		actions = []reconcile.Action{}
	}
	resp := PlanResponse{
		Applied: applied,
		Summary: res.Plan.Summary,
		Actions: actions,
	}
	if unknown := res.UnknownGroups(); len(unknown) > 0 {
		resp.UnknownGroups = unknown
	}
	return resp
}

// statusFor maps inventory errors to 422 and everything else to 500.
func statusFor(err error) int {
	if errors.Is(err, orchestrator.ErrEmptyInventory) || errors.Is(err, resolver.ErrMissingField) {
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}
