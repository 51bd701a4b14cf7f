// Package category serves the static category catalog.
package category

import (
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Catalog is the body of GET /categories.
type Catalog struct {
	Assets      []category.Descriptor `json:"assets"`
	Liabilities []category.Descriptor `json:"liabilities"`
}

// Routes registers GET /categories. It needs no authentication.
func Routes(app *fiber.App) {
	app.Get("/categories", List())
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories", Catalog{
			Assets:      category.Assets(),
			Liabilities: category.Liabilities(),
		})
	}
}
