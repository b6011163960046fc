package routes

import (
	"shopadmin/catalog"

	"github.com/gofiber/fiber/v2"
)

func getAllPosters(svc *catalog.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posters, err := svc.List(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Posters retrieved successfully.", posters)
	}
}

func getPoster(svc *catalog.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Poster")
		if err != nil {
			return fail(c, err)
		}
		poster, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Poster retrieved successfully.", poster)
	}
}

func createPoster(svc *catalog.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form catalog.PosterForm
		if err := c.BodyParser(&form); err != nil {
			return badBody(c)
		}
		if err := svc.Create(c.UserContext(), form); err != nil {
			return fail(c, err)
		}
		return ok(c, "Poster created successfully.", nil)
	}
}

func updatePoster(svc *catalog.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Poster")
		if err != nil {
			return fail(c, err)
		}
		var form catalog.PosterForm
		if err := c.BodyParser(&form); err != nil {
			return badBody(c)
		}
		if err := svc.Update(c.UserContext(), id, form); err != nil {
			return fail(c, err)
		}
		return ok(c, "Poster updated successfully.", nil)
	}
}

func deletePoster(svc *catalog.PosterService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Poster")
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return ok(c, "Poster deleted successfully.", nil)
	}
}
