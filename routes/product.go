package routes

import (
	"shopadmin/catalog"

	"github.com/gofiber/fiber/v2"
)

func getAllProducts(svc *catalog.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		products, err := svc.List(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Products retrieved successfully.", products)
	}
}

func getProduct(svc *catalog.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Product")
		if err != nil {
			return fail(c, err)
		}
		product, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, "Product retrieved successfully.", product)
	}
}

func createProduct(svc *catalog.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form catalog.ProductForm
		if err := c.BodyParser(&form); err != nil {
			return badBody(c)
		}
		if err := svc.Create(c.UserContext(), form); err != nil {
			return fail(c, err)
		}
		return ok(c, "Product created successfully.", nil)
	}
}

func updateProduct(svc *catalog.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Product")
		if err != nil {
			return fail(c, err)
		}
		var form catalog.ProductForm
		if err := c.BodyParser(&form); err != nil {
			return badBody(c)
		}
		if err := svc.Update(c.UserContext(), id, form); err != nil {
			return fail(c, err)
		}
		return ok(c, "Product updated successfully.", nil)
	}
}

func deleteProduct(svc *catalog.ProductService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "Product")
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return fail(c, err)
		}
		return ok(c, "Product deleted successfully.", nil)
	}
}
