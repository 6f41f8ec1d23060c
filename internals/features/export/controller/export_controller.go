// file: internals/features/export/controller/export_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "tpqnurislam_backend/internals/helpers"

	"tpqnurislam_backend/internals/features/export/excel"
	"tpqnurislam_backend/internals/features/export/pdf"
	pembayaranModel "tpqnurislam_backend/internals/features/finance/pembayaran/model"
	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

type ExportController struct {
	DB       *gorm.DB
	Renderer *pdf.Renderer
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db, Renderer: pdf.NewRenderer()}
}

// GET /api/admin/pendaftar/export
// Seluruh pendaftar (tanpa pagination), terbaru dulu, sebagai xlsx.
func (h *ExportController) ExportExcel(c *fiber.Ctx) error {
	var pendaftarList []model.PendaftarSantri
	if err := h.DB.WithContext(c.UserContext()).
		Order("tanggal_daftar DESC").
		Find(&pendaftarList).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data pendaftar: "+err.Error())
	}

	var pembayaranList []pembayaranModel.Pembayaran
	if err := h.DB.WithContext(c.UserContext()).
		Find(&pembayaranList).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat data pembayaran: "+err.Error())
	}
	statusByPendaftar := make(map[uuid.UUID]string, len(pembayaranList))
	for _, p := range pembayaranList {
		statusByPendaftar[p.PendaftarID] = p.StatusPembayaran
	}

	rows := make([]excel.ExportRow, 0, len(pendaftarList))
	for i := range pendaftarList {
		rows = append(rows, excel.ExportRow{
			Pendaftar:        &pendaftarList[i],
			StatusPembayaran: statusByPendaftar[pendaftarList[i].ID],
		})
	}

	workbook, err := excel.BuildWorkbook(rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membentuk file Excel: "+err.Error())
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menulis file Excel: "+err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, excel.Filename(time.Now())))
	return c.Send(buf.Bytes())
}

// GET /api/admin/pendaftar/:id/pdf
func (h *ExportController) ExportPDF(c *fiber.Ctx) error {
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

	data, err := h.Renderer.Render(c.UserContext(), &pendaftar)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membentuk PDF: "+err.Error())
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="Formulir_%s.pdf"`, sanitizeName(pendaftar.NamaLengkap)))
	return c.Send(data)
}

func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ':
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "Pendaftar"
	}
	return string(out)
}
