// file: internals/features/notification/whatsapp/controller/whatsapp_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "tpqnurislam_backend/internals/helpers"

	pembayaranModel "tpqnurislam_backend/internals/features/finance/pembayaran/model"
	svc "tpqnurislam_backend/internals/features/notification/whatsapp/service"
	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

type WhatsAppController struct {
	DB     *gorm.DB
	Sender *svc.Sender
}

func NewWhatsAppController(db *gorm.DB) *WhatsAppController {
	return &WhatsAppController{DB: db, Sender: svc.NewSender()}
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// POST /api/admin/send-whatsapp
// Kirim pesan bebas lewat Cloud API. Body respons API diteruskan apa adanya.
func (h *WhatsAppController) SendMessage(c *fiber.Ctx) error {
	var req sendRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.Message) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor telepon dan pesan wajib diisi")
	}

	result, err := h.Sender.Send(c.UserContext(), req.Phone, req.Message)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Pesan WhatsApp terkirim", result)
}

// GET /api/admin/pendaftar/:id/whatsapp-link?phone=
// Susun pesan konfirmasi + deep link wa.me, lalu tandai notifikasi terkirim.
// Nomor tujuan default HP ayah, bisa dioverride lewat query.
func (h *WhatsAppController) VerificationLink(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var pendaftar model.PendaftarSantri
	if err := h.DB.WithContext(c.UserContext()).
		First(&pendaftar, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var pembayaran pembayaranModel.Pembayaran
	if err := h.DB.WithContext(c.UserContext()).
		First(&pembayaran, "pendaftar_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	phone := c.Query("phone", pendaftar.HpAyah)
	message := svc.BuildVerificationMessage(&pendaftar, pembayaran.TotalBiaya)
	link := svc.BuildWaLink(phone, message)

	if err := h.DB.WithContext(c.UserContext()).
		Model(&pendaftar).
		Update("notifikasi_terkirim", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi: "+err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"phone":   helper.NormalizePhone(phone),
		"message": message,
		"link":    link,
	})
}
