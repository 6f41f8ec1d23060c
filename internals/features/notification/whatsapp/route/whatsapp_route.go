// file: internals/features/notification/whatsapp/route/whatsapp_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/features/notification/whatsapp/controller"
)

func WhatsAppRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewWhatsAppController(db)

	admin.Post("/send-whatsapp", ctrl.SendMessage)
	admin.Get("/pendaftar/:id/whatsapp-link", ctrl.VerificationLink)
}
