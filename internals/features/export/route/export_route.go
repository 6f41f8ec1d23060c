// file: internals/features/export/route/export_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/features/export/controller"
)

// ExportRoutes dipasang di group admin. Rute /pendaftar/export harus
// terdaftar SEBELUM /pendaftar/:id di router, karena itu dipasang dari
// sini lebih dulu oleh SetupRoutes.
func ExportRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExportController(db)

	admin.Get("/pendaftar/export", ctrl.ExportExcel)
	admin.Get("/pendaftar/:id/pdf", ctrl.ExportPDF)
}
