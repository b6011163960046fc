package routes

import (
	"shopadmin/catalog"

	"github.com/gofiber/fiber/v2"
)

func getAllCategories(svc *catalog.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := svc.List(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Categories retrieved successfully.", categories)
	}
}

func getCategory(svc *catalog.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Category")
		if err != nil {
			return fail(c, err)
		}
		category, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Category retrieved successfully.", category)
	}
}

func createCategory(svc *catalog.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form catalog.CategoryForm
		if err := c.BodyParser(&form); err != nil {
			return badBody(c)
		}
		if err := svc.Create(c.UserContext(), form); err != nil {
			return fail(c, err)
		}
		return ok(c, "Category created successfully.", nil)
	}
}

func updateCategory(svc *catalog.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Category")
		if err != nil {
			return fail(c, err)
		}
		var form catalog.CategoryForm
		if err := c.BodyParser(&form); err != nil {
			return badBody(c)
		}
		if err := svc.Update(c.UserContext(), id, form); err != nil {
			return fail(c, err)
		}
		return ok(c, "Category updated successfully.", nil)
	}
}

func deleteCategory(svc *catalog.CategoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Category")
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return ok(c, "Category deleted successfully.", nil)
	}
}
