// file: internals/features/registration/pendaftar/route/pendaftar_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/helpers/storage"
	"tpqnurislam_backend/internals/middlewares"

	"tpqnurislam_backend/internals/features/registration/pendaftar/controller"
)

// PendaftaranPublicRoutes: endpoint form pendaftaran, tanpa login.
func PendaftaranPublicRoutes(api fiber.Router, db *gorm.DB, st storage.DocumentStorage) {
	ctrl := controller.NewPendaftarController(db, st)

	api.Post("/pendaftaran", middlewares.PendaftaranRateLimiter(), ctrl.CreatePendaftar)
	api.Post("/pendaftaran/validate", ctrl.ValidateStep)
}

// PendaftaranAdminRoutes: CRUD dashboard, dipasang di group yang sudah
// melewati AdminAuthMiddleware.
func PendaftaranAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAdminPendaftarController(db)

	admin.Get("/pendaftar", ctrl.ListPendaftar)
	admin.Get("/pendaftar/:id", ctrl.GetPendaftar)
	admin.Post("/pendaftar/:id/verify", ctrl.VerifyPendaftar)
	admin.Post("/pendaftar/:id/unverify", ctrl.UnverifyPendaftar)
	admin.Delete("/pendaftar/:id", ctrl.DeletePendaftar)
}
