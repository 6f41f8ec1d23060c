// file: internals/features/registration/pendaftar/service/registration_service.go
package service

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tpqnurislam_backend/internals/helpers/storage"

	biayaModel "tpqnurislam_backend/internals/features/finance/biaya/model"
	feeSvc "tpqnurislam_backend/internals/features/finance/biaya/service"
	pembayaranModel "tpqnurislam_backend/internals/features/finance/pembayaran/model"
	"tpqnurislam_backend/internals/features/registration/pendaftar/dto"
	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

/* =======================================================================
   Validasi per langkah wizard
======================================================================= */

// ValidateStep: predikat murni atas field langkah tsb saja, field
// langkah lain diabaikan. Dipakai client untuk mengunci tombol "Lanjut".
func ValidateStep(step int, r *dto.CreatePendaftarRequest) bool {
	switch step {
	case 1: // Biodata Santri
		return filled(r.NamaLengkap, r.NamaPanggilan, r.JenisKelamin,
			r.TempatLahir, r.TanggalLahir, r.AlamatRumah) &&
			r.AnakKe >= 1 && r.JumlahSaudara >= 0
	case 2: // Data Orang Tua
		return filled(r.NamaAyah, r.TempatLahirAyah, r.TanggalLahirAyah,
			r.SukuAyah, r.PendidikanAyah, r.PekerjaanAyah, r.AlamatAyah, r.HpAyah,
			r.NamaIbu, r.TempatLahirIbu, r.TanggalLahirIbu,
			r.SukuIbu, r.PendidikanIbu, r.PekerjaanIbu, r.AlamatIbu, r.HpIbu)
	case 3: // Asal Sekolah
		if !filled(r.StatusMasuk, r.KelompokBelajar) {
			return false
		}
		if r.StatusMasuk == model.StatusMasukPindahan &&
			!filled(r.NamaTpqSebelum, r.TanggalPindah) {
			return false
		}
		if r.KelompokBelajar == model.KelompokAlQuran {
			return r.JuzAlquran >= 1
		}
		return filled(r.TingkatPembelajaran)
	default:
		return false
	}
}

func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

/* =======================================================================
   Service
======================================================================= */

type RegistrationService struct {
	DB      *gorm.DB
	Storage storage.DocumentStorage
}

func NewRegistrationService(db *gorm.DB, st storage.DocumentStorage) *RegistrationService {
	return &RegistrationService{DB: db, Storage: st}
}

// DocumentFiles: empat dokumen wajib dari form multipart.
type DocumentFiles struct {
	FotoAkte *multipart.FileHeader
	FotoKK   *multipart.FileHeader
	Foto3x4  *multipart.FileHeader
	Foto2x4  *multipart.FileHeader
}

func (f DocumentFiles) Complete() bool {
	return f.FotoAkte != nil && f.FotoKK != nil && f.Foto3x4 != nil && f.Foto2x4 != nil
}

// Register menjalankan urutan submit: cek kelengkapan → upload 4 dokumen
// → hitung biaya → insert pendaftar + pembayaran dalam SATU transaksi DB.
// Upload yang sudah terjadi sebelum kegagalan tidak dibersihkan (gap yang
// diterima untuk domain ini).
func (s *RegistrationService) Register(ctx context.Context, req *dto.CreatePendaftarRequest, files DocumentFiles) (*model.PendaftarSantri, *pembayaranModel.Pembayaran, error) {
	if s.Storage == nil {
		return nil, nil, fiber.NewError(fiber.StatusServiceUnavailable, "Storage dokumen belum dikonfigurasi")
	}
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}
	if !files.Complete() {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Semua file harus diupload")
	}

	akteURL, err := s.Storage.UploadDocument(ctx, storage.DirAkte, files.FotoAkte)
	if err != nil {
		return nil, nil, err
	}
	kkURL, err := s.Storage.UploadDocument(ctx, storage.DirKK, files.FotoKK)
	if err != nil {
		return nil, nil, err
	}
	foto3x4URL, err := s.Storage.UploadDocument(ctx, storage.DirFoto3x4, files.Foto3x4)
	if err != nil {
		return nil, nil, err
	}
	foto2x4URL, err := s.Storage.UploadDocument(ctx, storage.DirFoto2x4, files.Foto2x4)
	if err != nil {
		return nil, nil, err
	}

	pendaftar := req.ToModel(dto.DocumentURLs{
		FotoAkte: akteURL,
		FotoKK:   kkURL,
		Foto3x4:  foto3x4URL,
		Foto2x4:  foto2x4URL,
	})

	var biayaList []biayaModel.BiayaPendaftaran
	if err := s.DB.WithContext(ctx).
		Order("nama_biaya").
		Find(&biayaList).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal memuat daftar biaya: "+err.Error())
	}

	detail := feeSvc.DetailBiaya(biayaList, req.KelompokBelajar)
	total := feeSvc.TotalBiaya(biayaList, req.KelompokBelajar)

	detailJSON, err := json.Marshal(detail)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membekukan rincian biaya: "+err.Error())
	}

	var pembayaran *pembayaranModel.Pembayaran
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pendaftar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pendaftar: "+err.Error())
		}
		pembayaran = &pembayaranModel.Pembayaran{
			PendaftarID:      pendaftar.ID,
			TotalBiaya:       total,
			DetailBiaya:      datatypes.JSON(detailJSON),
			StatusPembayaran: pembayaranModel.StatusPembayaranMenunggu,
		}
		if err := tx.Create(pembayaran).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pembayaran: "+err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return pendaftar, pembayaran, nil
}

// Delete menghapus pendaftar + pembayarannya secara atomik,
// pengganti server-side untuk RPC delete_pendaftar_data.
func (s *RegistrationService) Delete(ctx context.Context, pendaftarID uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pendaftar model.PendaftarSantri
		if err := tx.First(&pendaftar, "id = ?", pendaftarID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Data pendaftar tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if err := tx.Where("pendaftar_id = ?", pendaftarID).
			Delete(&pembayaranModel.Pembayaran{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pembayaran: "+err.Error())
		}
		if err := tx.Delete(&pendaftar).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghapus pendaftar: "+err.Error())
		}
		return nil
	})
}
