// file: internals/features/finance/biaya/controller/biaya_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "tpqnurislam_backend/internals/helpers"

	"tpqnurislam_backend/internals/features/finance/biaya/model"
	svc "tpqnurislam_backend/internals/features/finance/biaya/service"
)

type BiayaController struct {
	DB *gorm.DB
}

func NewBiayaController(db *gorm.DB) *BiayaController {
	return &BiayaController{DB: db}
}

// GET /api/biaya?kelompok_belajar=
// Tanpa query: seluruh tarif. Dengan query: item tertagih + total untuk
// kelompok tsb, dipakai form menampilkan rincian sebelum submit.
// Predikat filternya sama persis dengan yang dipakai saat insert
// pembayaran, jadi angka yang tampil = angka yang tersimpan.
func (h *BiayaController) ListBiaya(c *fiber.Ctx) error {
	var items []model.BiayaPendaftaran
	if err := h.DB.WithContext(c.UserContext()).
		Order("nama_biaya").
		Find(&items).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat daftar biaya: "+err.Error())
	}

	kelompok := c.Query("kelompok_belajar")
	if kelompok == "" {
		return helper.JsonOK(c, "", fiber.Map{"items": items})
	}

	filtered := svc.FilterBiaya(items, kelompok)
	return helper.JsonOK(c, "", fiber.Map{
		"items":       filtered,
		"total_biaya": svc.TotalBiaya(items, kelompok),
	})
}
