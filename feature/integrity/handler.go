package integrity

import (
	"travel-admin/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/orphans", h.HandleOrphanCheck)
	group.Get("/media", h.HandleMediaCheck)
	group.Get("/media/*", h.HandleMediaStatus)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Runs the structure, schema and orphan checks concurrently. Nothing is fixed.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")
	return c.JSON(h.service.RunAll(c.UserContext()))
}

// HandleStructureCheck checks and optionally fixes the bucket layout.
// @Summary Check Structure
// @Description Checks that the bucket and upload folder exist. Optionally creates them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create missing bucket and folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckStructure(c.UserContext())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Missing structure detected", zap.Bool("bucket_missing", report.BucketMissing), zap.Strings("missing", report.Missing))

		if fix {
			l.Info("Attempting to fix structure")
			if err := h.service.FixStructure(c.UserContext(), report); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": report.Missing,
				})
			}
			return c.JSON(fiber.Map{
				"status":         "fixed",
				"bucket_created": report.BucketMissing,
				"fixed":          report.Missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":         "checked",
		"bucket_missing": report.BucketMissing,
		"missing":        report.Missing,
	})
}

// HandleSchemaCheck checks the database schema.
// @Summary Check Schema
// @Description Verifies every catalog table and column exists in the connected database.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Matched {
		l.Warn("Schema mismatches found")
	}
	return c.JSON(report)
}

// HandleOrphanCheck counts and optionally purges orphaned rows.
// @Summary Check Orphans
// @Description Counts child and membership rows whose owner no longer exists. Optionally deletes them.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Delete orphaned rows"
// @Success 200 {object} checks.OrphanReport "Orphan Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/orphans [get]
func (h *Handler) HandleOrphanCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report, err := h.service.CheckOrphans(c.UserContext(), fix)
	if err != nil {
		l.Error("Orphan check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !report.Clean {
		l.Warn("Orphaned rows detected", zap.Any("counts", report.Counts), zap.Bool("fixed", report.Fixed))
	}
	return c.JSON(report)
}

// HandleMediaCheck reconciles image URLs with uploaded objects.
// @Summary Check Media
// @Description Lists referenced images missing from storage and stored images nothing references. Optionally purges the latter.
// @Tags integrity
// @Produce json
// @Param purge query boolean false "Delete unreferenced uploads"
// @Success 200 {object} reconcile.Plan "Media Plan"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/media [get]
func (h *Handler) HandleMediaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	purge := c.Query("purge") == "true"

	plan, executed, err := h.service.CheckMedia(c.UserContext(), purge)
	if err != nil {
		l.Error("Media check failed", zap.Error(err), zap.Int("purged", executed))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error(), "purged": executed})
	}
	if plan.Summary.MissingStorage > 0 || plan.Summary.Unreferenced > 0 {
		l.Warn("Media drift detected",
			zap.Int("missing_storage", plan.Summary.MissingStorage),
			zap.Int("unreferenced", plan.Summary.Unreferenced),
			zap.Int("purged", executed),
		)
	}
	return c.JSON(fiber.Map{"plan": plan, "purged": executed})
}

// HandleMediaStatus reports one object.
// @Summary Media Status
// @Description Reports whether an object key is stored and which rows reference it.
// @Tags integrity
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} reconcile.Result "Media Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/media/{key} [get]
func (h *Handler) HandleMediaStatus(c *fiber.Ctx) error {
	result, err := h.service.MediaStatus(c.UserContext(), c.Params("*"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Media status failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}
