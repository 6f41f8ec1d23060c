// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/helpers/storage"
	"tpqnurislam_backend/internals/middlewares/auth"

	authRoute "tpqnurislam_backend/internals/features/admin/users/route"
	exportRoute "tpqnurislam_backend/internals/features/export/route"
	biayaRoute "tpqnurislam_backend/internals/features/finance/biaya/route"
	whatsappRoute "tpqnurislam_backend/internals/features/notification/whatsapp/route"
	pendaftarRoute "tpqnurislam_backend/internals/features/registration/pendaftar/route"
)

// SetupRoutes merakit seluruh endpoint di bawah /api.
// Group admin dibungkus AdminAuthMiddleware (JWT + cek tabel admin_users).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	var docStorage storage.DocumentStorage
	if st, err := storage.NewSupabaseStorageFromEnv(); err != nil {
		// Server tetap naik, endpoint submit akan menolak dengan 503.
		log.Printf("[WARNING] Storage dokumen tidak aktif: %v", err)
	} else {
		docStorage = st
	}

	api := app.Group("/api")

	// Publik
	pendaftarRoute.PendaftaranPublicRoutes(api, db, docStorage)
	biayaRoute.BiayaRoutes(api, db)
	authRoute.AuthRoutes(api, db)

	// Admin. Urutan penting: /pendaftar/export sebelum /pendaftar/:id.
	admin := api.Group("/admin", auth.AdminAuthMiddleware(db))
	exportRoute.ExportRoutes(admin, db)
	pendaftarRoute.PendaftaranAdminRoutes(admin, db)
	whatsappRoute.WhatsAppRoutes(admin, db)
}
