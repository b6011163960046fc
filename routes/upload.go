package routes

import (
	"encoding/base64"
	"io"

	"shopadmin/media"
	"shopadmin/models"

	"github.com/gofiber/fiber/v2"
)

const maxUploadSize = 5 * 1024 * 1024

// uploadImage takes a multipart file in the "img" field and forwards it to
// the image host as a thumbnail.
func uploadImage(uploader media.Uploader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("img")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false,
				Message: "File not uploaded",
			})
		}
		if file.Size > maxUploadSize {
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false,
				Message: "File too large (max 5MB)",
			})
		}

		f, err := file.Open()
		if err != nil {
			return fail(c, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return fail(c, err)
		}

		mime, err := media.DetectImage(data)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false,
				Message: "Only .jpeg, .jpg, .png files are allowed!",
			})
		}

		encoded := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
		url, err := uploader.Upload(c.UserContext(), encoded, media.WithTransformation(media.ThumbnailTransformation))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Image uploaded successfully", fiber.Map{"url": url})
	}
}
