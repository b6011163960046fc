package routes

import (
	"net/http"

	"shopadmin/catalog"
	"shopadmin/media"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

// SetupRoutes mounts every catalog endpoint on app. events, when non-nil,
// is served as the websocket endpoint at /ws.
func SetupRoutes(app *fiber.App, cat *catalog.Catalog, uploader media.Uploader, events http.Handler) {
	if events != nil {
		app.Get("/ws", adaptor.HTTPHandler(events))
	}

	api := app.Group("/api")

	// Image upload route
	api.Post("/upload", uploadImage(uploader))

	// Category routes
	categories := api.Group("/categories")
	categories.Get("/", getAllCategories(cat.Categories))
	categories.Get("/:id", getCategory(cat.Categories))
	categories.Post("/", createCategory(cat.Categories))
	categories.Put("/:id", updateCategory(cat.Categories))
	categories.Delete("/:id", deleteCategory(cat.Categories))

	// Poster routes
	posters := api.Group("/posters")
	posters.Get("/", getAllPosters(cat.Posters))
	posters.Get("/:id", getPoster(cat.Posters))
	posters.Post("/", createPoster(cat.Posters))
	posters.Put("/:id", updatePoster(cat.Posters))
	posters.Delete("/:id", deletePoster(cat.Posters))

	// Product routes
	products := api.Group("/products")
	products.Get("/", getAllProducts(cat.Products))
	products.Get("/:id", getProduct(cat.Products))
	products.Post("/", createProduct(cat.Products))
	products.Put("/:id", updateProduct(cat.Products))
	products.Delete("/:id", deleteProduct(cat.Products))

	// SubCategory routes
	subCategories := api.Group("/subCategories")
	subCategories.Get("/", getAllLookups(cat.SubCategories, "Subcategories"))
	subCategories.Get("/:id", getLookup(cat.SubCategories, "Subcategory"))
	subCategories.Post("/", createLookup(cat.SubCategories, "Subcategory"))
	subCategories.Put("/:id", updateLookup(cat.SubCategories, "Subcategory"))
	subCategories.Delete("/:id", deleteLookup(cat.SubCategories, "Subcategory"))

	// Brand routes
	brands := api.Group("/brands")
	brands.Get("/", getAllLookups(cat.Brands, "Brands"))
	brands.Get("/:id", getLookup(cat.Brands, "Brand"))
	brands.Post("/", createLookup(cat.Brands, "Brand"))
	brands.Put("/:id", updateLookup(cat.Brands, "Brand"))
	brands.Delete("/:id", deleteLookup(cat.Brands, "Brand"))

	// VariantType routes
	variantTypes := api.Group("/variantTypes")
	variantTypes.Get("/", getAllLookups(cat.VariantTypes, "Variant Types"))
	variantTypes.Get("/:id", getLookup(cat.VariantTypes, "Variant Type"))
	variantTypes.Post("/", createLookup(cat.VariantTypes, "Variant Type"))
	variantTypes.Put("/:id", updateLookup(cat.VariantTypes, "Variant Type"))
	variantTypes.Delete("/:id", deleteLookup(cat.VariantTypes, "Variant Type"))

	// Variant routes
	variants := api.Group("/variants")
	variants.Get("/", getAllLookups(cat.Variants, "Variants"))
	variants.Get("/:id", getLookup(cat.Variants, "Variant"))
	variants.Post("/", createLookup(cat.Variants, "Variant"))
	variants.Put("/:id", updateLookup(cat.Variants, "Variant"))
	variants.Delete("/:id", deleteLookup(cat.Variants, "Variant"))
}
