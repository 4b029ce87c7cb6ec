package weapons

import (
	"strconv"

	"armory/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the weapon catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the weapons routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/weapons")
	group.Post("/sync", h.HandleSync)
	group.Post("/sync/force", h.HandleForceSync)
	group.Delete("/cache/auxiliary", h.HandleClearAuxCache)
	group.Get("/status", h.HandleStatus)
	group.Get("/", h.HandleList)
	group.Get("/:hash", h.HandleGetWeapon)
	group.Get("/:hash/concise", h.HandleGetConcise)
}

// HandleSync runs a version check and, when needed, a full re-sync.
// @Summary Sync the weapon catalog
// @Description Checks the manifest version token and re-downloads and re-transforms the catalog only when it changed.
// @Tags weapons
// @Produce json
// @Success 200 {object} weapons.SyncResult "Sync outcome"
// @Failure 502 {object} map[string]string "Sync failed; previously cached records remain valid"
// @Router /weapons/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.CheckAndSync(c.Context())
	if err != nil {
		l.Error("Sync failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleForceSync clears the stored version token and re-syncs.
// @Summary Force a full re-sync
// @Description Clears the stored version token first, guaranteeing a full re-download.
// @Tags weapons
// @Produce json
// @Success 200 {object} weapons.SyncResult "Sync outcome"
// @Failure 502 {object} map[string]string "Sync failed"
// @Router /weapons/sync/force [post]
func (h *Handler) HandleForceSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.ForceRefresh(c.Context())
	if err != nil {
		l.Error("Forced sync failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(result)
}

// HandleClearAuxCache drops the cached auxiliary data blob.
// @Summary Clear the auxiliary data cache
// @Description Removes the cached season/event/craftable lookups; the next sync refetches them.
// @Tags weapons
// @Produce json
// @Success 204 "Cache cleared"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /weapons/cache/auxiliary [delete]
func (h *Handler) HandleClearAuxCache(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.ClearAuxCache(c.Context()); err != nil {
		l.Error("Auxiliary cache clear failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleStatus reports the persisted catalog state.
// @Summary Catalog status
// @Description Returns the persisted version token and record count without any network access.
// @Tags weapons
// @Produce json
// @Success 200 {object} weapons.Status "Catalog status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /weapons/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.GetStatus(c.Context())
	if err != nil {
		l.Error("Status read failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(status)
}

// HandleList returns every concise weapon record.
// @Summary List weapons
// @Description Returns the concise record of every persisted weapon. No ordering is guaranteed.
// @Tags weapons
// @Produce json
// @Success 200 {array} models.ConciseWeaponRecord "Concise records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /weapons [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.ListWeapons(c.Context())
	if err != nil {
		l.Error("Weapon list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(records)
}

// HandleGetWeapon returns one full weapon record.
// @Summary Get a weapon
// @Description Returns the full record (attributes, frame, intrinsics, perk columns) for one weapon hash.
// @Tags weapons
// @Produce json
// @Param hash path int true "Weapon hash"
// @Success 200 {object} models.WeaponRecord "Full record"
// @Failure 400 {object} map[string]string "Malformed hash"
// @Failure 404 {object} map[string]string "Unknown weapon"
// @Router /weapons/{hash} [get]
func (h *Handler) HandleGetWeapon(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	hash, err := parseHashParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	record, err := h.service.GetWeapon(c.Context(), hash)
	if err != nil {
		l.Error("Weapon read failed", zap.Uint32("hash", hash), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown weapon hash",
		})
	}
	return c.JSON(record)
}

// HandleGetConcise returns one concise weapon record.
// @Summary Get a concise weapon record
// @Description Returns the flattened record for one weapon hash.
// @Tags weapons
// @Produce json
// @Param hash path int true "Weapon hash"
// @Success 200 {object} models.ConciseWeaponRecord "Concise record"
// @Failure 400 {object} map[string]string "Malformed hash"
// @Failure 404 {object} map[string]string "Unknown weapon"
// @Router /weapons/{hash}/concise [get]
func (h *Handler) HandleGetConcise(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	hash, err := parseHashParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	record, err := h.service.GetConciseWeapon(c.Context(), hash)
	if err != nil {
		l.Error("Concise read failed", zap.Uint32("hash", hash), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown weapon hash",
		})
	}
	return c.JSON(record)
}

func parseHashParam(c *fiber.Ctx) (uint32, error) {
	hash, err := strconv.ParseUint(c.Params("hash"), 10, 32)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "hash must be a 32-bit unsigned integer")
	}
	return uint32(hash), nil
}
