// file: internals/features/registration/pendaftar/controller/admin_pendaftar_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "tpqnurislam_backend/internals/helpers"
	"tpqnurislam_backend/internals/middlewares/auth"

	pembayaranModel "tpqnurislam_backend/internals/features/finance/pembayaran/model"
	verifSvc "tpqnurislam_backend/internals/features/finance/pembayaran/service"
	"tpqnurislam_backend/internals/features/registration/pendaftar/dto"
	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
	svc "tpqnurislam_backend/internals/features/registration/pendaftar/service"
)

const perPage = 10

/* =======================================================================
   Controller admin (dashboard)
======================================================================= */

type AdminPendaftarController struct {
	DB           *gorm.DB
	Registration *svc.RegistrationService
	Verification *verifSvc.VerificationService
}

func NewAdminPendaftarController(db *gorm.DB) *AdminPendaftarController {
	return &AdminPendaftarController{
		DB:           db,
		Registration: svc.NewRegistrationService(db, nil),
		Verification: verifSvc.NewVerificationService(db),
	}
}

// GET /api/admin/pendaftar?page=&status=&q=
// Halaman tetap 10 baris, terbaru dulu. Page di luar rentang di-clamp,
// bukan ditolak, supaya link lama tetap jalan setelah data berkurang.
func (h *AdminPendaftarController) ListPendaftar(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&model.PendaftarSantri{})

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := c.Query("q"); search != "" {
		q = q.Where("nama_lengkap ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, c.QueryInt("page", 1), perPage)

	var rows []model.PendaftarSantri
	if err := q.Order("tanggal_daftar DESC").
		Offset((pagination.Page - 1) * perPage).
		Limit(perPage).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	items := make([]dto.PendaftarListItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.ToListItem(&rows[i]))
	}
	return helper.JsonList(c, "", items, pagination)
}

// GET /api/admin/pendaftar/:id
func (h *AdminPendaftarController) GetPendaftar(c *fiber.Ctx) error {
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

	// Pembayaran bisa belum ada untuk data lama, bukan error.
	var pembayaran *pembayaranModel.Pembayaran
	var row pembayaranModel.Pembayaran
	err = h.DB.WithContext(c.UserContext()).
		First(&row, "pendaftar_id = ?", id).Error
	if err == nil {
		pembayaran = &row
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", fiber.Map{
		"pendaftar":  pendaftar,
		"pembayaran": pembayaran,
	})
}

// POST /api/admin/pendaftar/:id/verify
func (h *AdminPendaftarController) VerifyPendaftar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	adminID, err := auth.GetAdminUUID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	pendaftar, err := h.Verification.Verify(c.UserContext(), id, adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Pendaftar berhasil diverifikasi", pendaftar)
}

// POST /api/admin/pendaftar/:id/unverify
func (h *AdminPendaftarController) UnverifyPendaftar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	pendaftar, err := h.Verification.Unverify(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Verifikasi dibatalkan", pendaftar)
}

// DELETE /api/admin/pendaftar/:id
func (h *AdminPendaftarController) DeletePendaftar(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := h.Registration.Delete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Data pendaftar berhasil dihapus", fiber.Map{"id": id})
}
