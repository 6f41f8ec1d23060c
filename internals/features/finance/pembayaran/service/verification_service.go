// file: internals/features/finance/pembayaran/service/verification_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	biayaModel "tpqnurislam_backend/internals/features/finance/biaya/model"
	feeSvc "tpqnurislam_backend/internals/features/finance/biaya/service"
	"tpqnurislam_backend/internals/features/finance/pembayaran/model"
	pendaftarModel "tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

/* =======================================================================
   Transisi status (murni, tanpa DB)
======================================================================= */

// ApplyVerifikasi: Menunggu Verifikasi → Diterima.
func ApplyVerifikasi(p *pendaftarModel.PendaftarSantri, adminID uuid.UUID, now time.Time) {
	p.Status = pendaftarModel.StatusDiterima
	p.IsVerified = true
	p.TanggalVerifikasi = &now
	p.VerifikasiOleh = &adminID
}

// ApplyBatalVerifikasi: Diterima → Menunggu Verifikasi. Status pembayaran
// sengaja TIDAK disentuh, pembayaran yang sudah dikonfirmasi tetap
// tercatat walau verifikasi dibatalkan.
func ApplyBatalVerifikasi(p *pendaftarModel.PendaftarSantri) {
	p.Status = pendaftarModel.StatusMenungguVerifikasi
	p.IsVerified = false
	p.TanggalVerifikasi = nil
	p.VerifikasiOleh = nil
}

/* =======================================================================
   Service
======================================================================= */

type VerificationService struct {
	DB *gorm.DB
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{DB: db}
}

// Verify menjalankan seluruh efek samping verifikasi dalam SATU
// transaksi, padanan server-side dari RPC verify_and_update_payment:
// update pendaftar, lalu konfirmasi pembayaran (atau sintesis baris
// pembayaran dari tarif biaya SAAT INI bila belum ada; total dihitung
// ulang sehingga bisa berbeda dari total saat mendaftar, risiko basi
// yang diterima, tidak dikoreksi di sini).
func (s *VerificationService) Verify(ctx context.Context, pendaftarID, adminID uuid.UUID) (*pendaftarModel.PendaftarSantri, error) {
	var pendaftar pendaftarModel.PendaftarSantri

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pendaftar, "id = ?", pendaftarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		ApplyVerifikasi(&pendaftar, adminID, time.Now())
		if err := tx.Model(&pendaftar).
			Select("status", "is_verified", "tanggal_verifikasi", "verifikasi_oleh").
			Updates(&pendaftar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status pendaftar: "+err.Error())
		}

		var pembayaran model.Pembayaran
		err := tx.First(&pembayaran, "pendaftar_id = ?", pendaftarID).Error
		switch {
		case err == nil:
			if err := tx.Model(&pembayaran).
				Update("status_pembayaran", model.StatusPembayaranDikonfirmasi).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal update pembayaran: "+err.Error())
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := s.createPembayaran(tx, &pendaftar); err != nil {
				return err
			}
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pendaftar, nil
}

func (s *VerificationService) createPembayaran(tx *gorm.DB, pendaftar *pendaftarModel.PendaftarSantri) error {
	var biayaList []biayaModel.BiayaPendaftaran
	if err := tx.Order("nama_biaya").Find(&biayaList).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar biaya: "+err.Error())
	}

	detail := feeSvc.DetailBiaya(biayaList, pendaftar.KelompokBelajar)
	total := feeSvc.TotalBiaya(biayaList, pendaftar.KelompokBelajar)

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membekukan rincian biaya: "+err.Error())
	}

	pembayaran := model.Pembayaran{
		PendaftarID:      pendaftar.ID,
		TotalBiaya:       total,
		DetailBiaya:      datatypes.JSON(detailJSON),
		StatusPembayaran: model.StatusPembayaranDikonfirmasi,
	}
	if err := tx.Create(&pembayaran).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pembayaran: "+err.Error())
	}
	return nil
}

// Unverify membatalkan verifikasi. Pembayaran dibiarkan apa adanya.
func (s *VerificationService) Unverify(ctx context.Context, pendaftarID uuid.UUID) (*pendaftarModel.PendaftarSantri, error) {
	var pendaftar pendaftarModel.PendaftarSantri

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&pendaftar, "id = ?", pendaftarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		ApplyBatalVerifikasi(&pendaftar)
		if err := tx.Model(&pendaftar).
			Select("status", "is_verified", "tanggal_verifikasi", "verifikasi_oleh").
			Updates(map[string]any{
				"status":             pendaftar.Status,
				"is_verified":        pendaftar.IsVerified,
				"tanggal_verifikasi": nil,
				"verifikasi_oleh":    nil,
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan verifikasi: "+err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pendaftar, nil
}
