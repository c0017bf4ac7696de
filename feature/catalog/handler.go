package catalog

import (
	"travel-admin/core/errs"
	"travel-admin/core/logger"
	"travel-admin/feature/catalog/models"
	"travel-admin/feature/catalog/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog entities.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers CRUD routes for every parent kind.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	packages := app.Group("/packages")
	packages.Get("/", h.ListPackages)
	packages.Post("/", h.CreatePackage)
	packages.Get("/:id", h.GetPackage)
	packages.Put("/:id", h.UpdatePackage)
	packages.Delete("/:id", h.DeletePackage)

	destinations := app.Group("/destinations")
	destinations.Get("/", h.ListDestinations)
	destinations.Post("/", h.CreateDestination)
	destinations.Get("/:id", h.GetDestination)
	destinations.Put("/:id", h.UpdateDestination)
	destinations.Delete("/:id", h.DeleteDestination)

	blogs := app.Group("/blogs")
	blogs.Get("/", h.ListBlogs)
	blogs.Post("/", h.CreateBlog)
	blogs.Get("/:id", h.GetBlog)
	blogs.Put("/:id", h.UpdateBlog)
	blogs.Delete("/:id", h.DeleteBlog)

	testimonials := app.Group("/testimonials")
	testimonials.Get("/", h.ListTestimonials)
	testimonials.Post("/", h.CreateTestimonial)
	testimonials.Get("/:id", h.GetTestimonial)
	testimonials.Put("/:id", h.UpdateTestimonial)
	testimonials.Delete("/:id", h.DeleteTestimonial)
}

// ListPackages lists every package.
// @Summary List Packages
// @Description Returns every package with its itineraries, features, inclusions and exclusions, newest first.
// @Tags packages
// @Produce json
// @Success 200 {array} models.Package
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /packages [get]
func (h *Handler) ListPackages(c *fiber.Ctx) error {
	return list(c, h.log(c), h.service.Packages)
}

// CreatePackage creates a package.
// @Summary Create Package
// @Description Creates a package together with its itineraries, features, inclusions and exclusions in one transaction.
// @Tags packages
// @Accept json
// @Produce json
// @Param package body models.PackageInput true "Package"
// @Success 201 {object} models.Package
// @Failure 400 {object} map[string]string "Validation Failed"
// @Failure 409 {object} map[string]string "Retryable Conflict"
// @Failure 503 {object} map[string]string "Storage Unavailable"
// @Router /packages [post]
func (h *Handler) CreatePackage(c *fiber.Ctx) error {
	return create(c, h.log(c), h.service.Packages, new(models.PackageInput))
}

// GetPackage returns one package.
// @Summary Get Package
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} models.Package
// @Failure 404 {object} map[string]string "Not Found"
// @Router /packages/{id} [get]
func (h *Handler) GetPackage(c *fiber.Ctx) error {
	return get(c, h.log(c), h.service.Packages)
}

// UpdatePackage updates a package.
// @Summary Update Package
// @Description Updates present fields. Every collection present in the body replaces the stored one, even when empty.
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param package body models.PackageInput true "Package"
// @Success 200 {object} models.Package
// @Failure 400 {object} map[string]string "Validation Failed"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "Retryable Conflict"
// @Router /packages/{id} [put]
func (h *Handler) UpdatePackage(c *fiber.Ctx) error {
	return update(c, h.log(c), h.service.Packages, new(models.PackageInput))
}

// DeletePackage deletes a package and everything it owns.
// @Summary Delete Package
// @Tags packages
// @Param id path string true "Package ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /packages/{id} [delete]
func (h *Handler) DeletePackage(c *fiber.Ctx) error {
	return remove(c, h.log(c), h.service.Packages)
}

// ListDestinations lists every destination.
// @Summary List Destinations
// @Tags destinations
// @Produce json
// @Success 200 {array} models.Destination
// @Router /destinations [get]
func (h *Handler) ListDestinations(c *fiber.Ctx) error {
	return list(c, h.log(c), h.service.Destinations)
}

// CreateDestination creates a destination.
// @Summary Create Destination
// @Tags destinations
// @Accept json
// @Produce json
// @Param destination body models.DestinationInput true "Destination"
// @Success 201 {object} models.Destination
// @Failure 400 {object} map[string]string "Validation Failed"
// @Router /destinations [post]
func (h *Handler) CreateDestination(c *fiber.Ctx) error {
	return create(c, h.log(c), h.service.Destinations, new(models.DestinationInput))
}

// GetDestination returns one destination.
// @Summary Get Destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} models.Destination
// @Failure 404 {object} map[string]string "Not Found"
// @Router /destinations/{id} [get]
func (h *Handler) GetDestination(c *fiber.Ctx) error {
	return get(c, h.log(c), h.service.Destinations)
}

// UpdateDestination updates a destination.
// @Summary Update Destination
// @Tags destinations
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param destination body models.DestinationInput true "Destination"
// @Success 200 {object} models.Destination
// @Failure 404 {object} map[string]string "Not Found"
// @Router /destinations/{id} [put]
func (h *Handler) UpdateDestination(c *fiber.Ctx) error {
	return update(c, h.log(c), h.service.Destinations, new(models.DestinationInput))
}

// DeleteDestination deletes a destination with its FAQs and places.
// @Summary Delete Destination
// @Tags destinations
// @Param id path string true "Destination ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /destinations/{id} [delete]
func (h *Handler) DeleteDestination(c *fiber.Ctx) error {
	return remove(c, h.log(c), h.service.Destinations)
}

// ListBlogs lists every blog.
// @Summary List Blogs
// @Tags blogs
// @Produce json
// @Success 200 {array} models.Blog
// @Router /blogs [get]
func (h *Handler) ListBlogs(c *fiber.Ctx) error {
	return list(c, h.log(c), h.service.Blogs)
}

// CreateBlog creates a blog. Its id is the slug of its title.
// @Summary Create Blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param blog body models.BlogInput true "Blog"
// @Success 201 {object} models.Blog
// @Failure 400 {object} map[string]string "Validation Failed or Duplicate Title"
// @Router /blogs [post]
func (h *Handler) CreateBlog(c *fiber.Ctx) error {
	return create(c, h.log(c), h.service.Blogs, new(models.BlogInput))
}

// GetBlog returns one blog.
// @Summary Get Blog
// @Tags blogs
// @Produce json
// @Param id path string true "Blog slug"
// @Success 200 {object} models.Blog
// @Failure 404 {object} map[string]string "Not Found"
// @Router /blogs/{id} [get]
func (h *Handler) GetBlog(c *fiber.Ctx) error {
	return get(c, h.log(c), h.service.Blogs)
}

// UpdateBlog updates a blog. Categories present in the body replace the stored set.
// @Summary Update Blog
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog slug"
// @Param blog body models.BlogInput true "Blog"
// @Success 200 {object} models.Blog
// @Failure 404 {object} map[string]string "Not Found"
// @Router /blogs/{id} [put]
func (h *Handler) UpdateBlog(c *fiber.Ctx) error {
	return update(c, h.log(c), h.service.Blogs, new(models.BlogInput))
}

// DeleteBlog deletes a blog and its images. Categories are kept.
// @Summary Delete Blog
// @Tags blogs
// @Param id path string true "Blog slug"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /blogs/{id} [delete]
func (h *Handler) DeleteBlog(c *fiber.Ctx) error {
	return remove(c, h.log(c), h.service.Blogs)
}

// ListTestimonials lists every testimonial.
// @Summary List Testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} models.Testimonial
// @Router /testimonials [get]
func (h *Handler) ListTestimonials(c *fiber.Ctx) error {
	return list(c, h.log(c), h.service.Testimonials)
}

// CreateTestimonial creates a testimonial.
// @Summary Create Testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body models.TestimonialInput true "Testimonial"
// @Success 201 {object} models.Testimonial
// @Failure 400 {object} map[string]string "Validation Failed"
// @Router /testimonials [post]
func (h *Handler) CreateTestimonial(c *fiber.Ctx) error {
	return create(c, h.log(c), h.service.Testimonials, new(models.TestimonialInput))
}

// GetTestimonial returns one testimonial.
// @Summary Get Testimonial
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} map[string]string "Not Found"
// @Router /testimonials/{id} [get]
func (h *Handler) GetTestimonial(c *fiber.Ctx) error {
	return get(c, h.log(c), h.service.Testimonials)
}

// UpdateTestimonial updates a testimonial.
// @Summary Update Testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param testimonial body models.TestimonialInput true "Testimonial"
// @Success 200 {object} models.Testimonial
// @Failure 404 {object} map[string]string "Not Found"
// @Router /testimonials/{id} [put]
func (h *Handler) UpdateTestimonial(c *fiber.Ctx) error {
	return update(c, h.log(c), h.service.Testimonials, new(models.TestimonialInput))
}

// DeleteTestimonial deletes a testimonial.
// @Summary Delete Testimonial
// @Tags testimonials
// @Param id path string true "Testimonial ID"
// @Success 204
// @Failure 404 {object} map[string]string "Not Found"
// @Router /testimonials/{id} [delete]
func (h *Handler) DeleteTestimonial(c *fiber.Ctx) error {
	return remove(c, h.log(c), h.service.Testimonials)
}

func (h *Handler) log(c *fiber.Ctx) *zap.Logger {
	return logger.WithRayID(h.service.logger, c)
}

func list[T any](c *fiber.Ctx, l *zap.Logger, s *sync.Synchronizer[T]) error {
	items, err := s.List(c.UserContext())
	if err != nil {
		return fail(c, l, err)
	}
	return c.JSON(items)
}

func get[T any](c *fiber.Ctx, l *zap.Logger, s *sync.Synchronizer[T]) error {
	item, err := s.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, l, err)
	}
	return c.JSON(item)
}

func create[T any](c *fiber.Ctx, l *zap.Logger, s *sync.Synchronizer[T], in sync.Input) error {
	if err := c.BodyParser(in); err != nil {
		return fail(c, l, errs.Wrap(errs.ValidationFailed, s.Kind().Name+".create", err))
	}
	item, err := s.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func update[T any](c *fiber.Ctx, l *zap.Logger, s *sync.Synchronizer[T], in sync.Input) error {
	if err := c.BodyParser(in); err != nil {
		return fail(c, l, errs.Wrap(errs.ValidationFailed, s.Kind().Name+".update", err))
	}
	item, err := s.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, l, err)
	}
	return c.JSON(item)
}

func remove[T any](c *fiber.Ctx, l *zap.Logger, s *sync.Synchronizer[T]) error {
	if err := s.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.NotFound:
		return fiber.StatusNotFound
	case errs.ValidationFailed:
		return fiber.StatusBadRequest
	case errs.ConflictRetryable:
		return fiber.StatusConflict
	default:
		return fiber.StatusServiceUnavailable
	}
}

func fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusOf(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Catalog request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		l.Warn("Catalog request rejected", zap.String("path", c.Path()), zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  errs.KindOf(err),
	})
}
