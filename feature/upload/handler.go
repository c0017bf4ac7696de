package upload

import (
	"errors"
	"strings"

	"travel-admin/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request is the JSON form of an upload.
type Request struct {
	DataURL string `json:"dataUrl"`
	URL     string `json:"url"`
}

// Handler handles HTTP requests for uploads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the upload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/upload")
	group.Post("/", h.HandleUpload)
	group.Delete("/*", h.HandleRemove)
}

// HandleUpload stores an image.
// @Summary Upload Image
// @Description Stores a multipart "file", a base64 "dataUrl" or a remote "url" and returns its public URL.
// @Tags upload
// @Accept multipart/form-data,json
// @Produce json
// @Param file formData file false "Image file"
// @Param request body Request false "Data URL or remote URL"
// @Success 200 {object} Result
// @Failure 400 {object} map[string]string "Missing Input"
// @Failure 502 {object} map[string]string "Remote Fetch Failed"
// @Failure 500 {object} map[string]string "Storage Failure"
// @Router /upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.UserContext()

	var (
		res *Result
		err error
	)
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		file, ferr := c.FormFile("file")
		if ferr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file"})
		}
		f, ferr := file.Open()
		if ferr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ferr.Error()})
		}
		defer f.Close()
		ext := ""
		if i := strings.LastIndex(file.Filename, "."); i >= 0 {
			ext = file.Filename[i:]
		}
		res, err = h.service.Upload(ctx, f, file.Size, file.Header.Get(fiber.HeaderContentType), ext)
	} else {
		var req Request
		if perr := c.BodyParser(&req); perr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unsupported content-type or missing file"})
		}
		switch {
		case req.DataURL != "":
			res, err = h.service.UploadDataURL(ctx, req.DataURL)
		case req.URL != "":
			res, err = h.service.UploadRemote(ctx, req.URL)
		default:
			err = ErrNoInput
		}
	}

	if err != nil {
		status := statusOf(err)
		if status >= fiber.StatusInternalServerError {
			l.Error("Upload failed", zap.Error(err))
		} else {
			l.Warn("Upload rejected", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// HandleRemove deletes an uploaded object by public id.
// @Summary Remove Upload
// @Tags upload
// @Param public_id path string true "Public ID"
// @Success 204
// @Failure 400 {object} map[string]string "Foreign Object"
// @Failure 500 {object} map[string]string "Storage Failure"
// @Router /upload/{public_id} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.Remove(c.UserContext(), c.Params("*")); err != nil {
		l.Warn("Remove failed", zap.Error(err))
		return c.Status(statusOf(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNoInput), errors.Is(err, ErrInvalidDataURL), errors.Is(err, ErrForeignObject):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrFetch):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
