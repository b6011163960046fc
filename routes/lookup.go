package routes

import (
	"shopadmin/catalog"

	"github.com/gofiber/fiber/v2"
)

// The reference tables share one set of handlers; singular and plural
// only name the entity in response messages.

func getAllLookups[T any](svc *catalog.LookupService[T], plural string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, plural+" retrieved successfully.", items)
	}
}

func getLookup[T any](svc *catalog.LookupService[T], singular string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, singular)
		if err != nil {
			return fail(c, err)
		}
		item, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, singular+" retrieved successfully.", item)
	}
}

func createLookup[T any](svc *catalog.LookupService[T], singular string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item := new(T)
		if err := c.BodyParser(item); err != nil {
			return badBody(c)
		}
		if err := svc.Create(c.UserContext(), item); err != nil {
			return fail(c, err)
		}
		return ok(c, singular+" created successfully.", nil)
	}
}

func updateLookup[T any](svc *catalog.LookupService[T], singular string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, singular)
		if err != nil {
			return fail(c, err)
		}
		patch := new(T)
		if err := c.BodyParser(patch); err != nil {
			return badBody(c)
		}
		if err := svc.Update(c.UserContext(), id, patch); err != nil {
			return fail(c, err)
		}
		return ok(c, singular+" updated successfully.", nil)
	}
}

func deleteLookup[T any](svc *catalog.LookupService[T], singular string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, singular)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return ok(c, singular+" deleted successfully.", nil)
	}
}
