package routes

import (
	"errors"

	"shopadmin/catalog"
	"shopadmin/media"
	"shopadmin/models"

	"github.com/gofiber/fiber/v2"
)

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(models.Response{Success: true, Message: message, Data: data})
}

// fail is the single place a workflow error becomes an HTTP response.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := err.Error()

	var (
		verr     *catalog.ValidationError
		conflict *catalog.ConflictError
		uerr     *media.UploadError
	)
	switch {
	case errors.As(err, &verr):
		status = fiber.StatusBadRequest
	case errors.Is(err, catalog.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.As(err, &conflict):
		status = fiber.StatusBadRequest
	case errors.As(err, &uerr):
		if uerr.Timeout {
			message = "Image upload timed out. Please try again."
		} else {
			message = "Image upload failed: " + uerr.Message
		}
	}

	if status >= fiber.StatusInternalServerError {
		log := logger(c)
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(status).JSON(models.Response{Success: false, Message: message})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.Response{
		Success: false,
		Message: "Failed to parse request body",
	})
}

// paramID reads the :id path segment. Anything that is not a positive
// integer cannot name a record.
func paramID(c *fiber.Ctx, entity string) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, &catalog.NotFoundError{Entity: entity}
	}
	return uint(id), nil
}
