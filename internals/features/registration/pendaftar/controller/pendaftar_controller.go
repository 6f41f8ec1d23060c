// file: internals/features/registration/pendaftar/controller/pendaftar_controller.go
package controller

import (
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "tpqnurislam_backend/internals/helpers"
	"tpqnurislam_backend/internals/helpers/storage"

	"tpqnurislam_backend/internals/features/registration/pendaftar/dto"
	svc "tpqnurislam_backend/internals/features/registration/pendaftar/service"
)

/* =======================================================================
   Controller publik (form pendaftaran)
======================================================================= */

type PendaftarController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *svc.RegistrationService
}

func NewPendaftarController(db *gorm.DB, st storage.DocumentStorage) *PendaftarController {
	return &PendaftarController{
		DB:        db,
		Validator: validator.New(),
		Service:   svc.NewRegistrationService(db, st),
	}
}

// POST /api/pendaftaran, submit akhir wizard (multipart: field + 4 file).
func (h *PendaftarController) CreatePendaftar(c *fiber.Ctx) error {
	var req dto.CreatePendaftarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid form: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, validationErrors(err))
	}

	files := svc.DocumentFiles{
		FotoAkte: formFile(c, "foto_akte"),
		FotoKK:   formFile(c, "foto_kk"),
		Foto3x4:  formFile(c, "foto_3x4"),
		Foto2x4:  formFile(c, "foto_2x4"),
	}

	pendaftar, pembayaran, err := h.Service.Register(c.UserContext(), &req, files)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil dikirim", fiber.Map{
		"pendaftar":  pendaftar,
		"pembayaran": pembayaran,
	})
}

// POST /api/pendaftaran/validate, predikat kelengkapan satu langkah wizard.
func (h *PendaftarController) ValidateStep(c *fiber.Ctx) error {
	var req dto.ValidateStepRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if req.Step < 1 || req.Step > 3 {
		return helper.JsonError(c, fiber.StatusBadRequest, "step harus 1-3")
	}
	return helper.JsonOK(c, "", fiber.Map{
		"step":  req.Step,
		"valid": svc.ValidateStep(req.Step, &req.CreatePendaftarRequest),
	})
}

func formFile(c *fiber.Ctx, field string) *multipart.FileHeader {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}

func validationErrors(err error) map[string][]string {
	out := map[string][]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	} else {
		out["_"] = []string{err.Error()}
	}
	return out
}
