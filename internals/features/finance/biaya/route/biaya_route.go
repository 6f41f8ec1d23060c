// file: internals/features/finance/biaya/route/biaya_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/features/finance/biaya/controller"
)

func BiayaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBiayaController(db)

	api.Get("/biaya", ctrl.ListBiaya)
}
