package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

/* =========================================================
   REQUEST DTOs (JSON tags = nama kolom DB, form tags untuk multipart)
========================================================= */

type CreatePendaftarRequest struct {
	// Biodata Santri
	NamaLengkap    string `json:"nama_lengkap" form:"nama_lengkap" validate:"required"`
	NamaPanggilan  string `json:"nama_panggilan" form:"nama_panggilan" validate:"required"`
	JenisKelamin   string `json:"jenis_kelamin" form:"jenis_kelamin" validate:"required,oneof=Laki-laki Perempuan"`
	TempatLahir    string `json:"tempat_lahir" form:"tempat_lahir" validate:"required"`
	TanggalLahir   string `json:"tanggal_lahir" form:"tanggal_lahir" validate:"required,datetime=2006-01-02"`
	AlamatRumah    string `json:"alamat_rumah" form:"alamat_rumah" validate:"required"`
	AnakKe         int    `json:"anak_ke" form:"anak_ke" validate:"required,min=1"`
	JumlahSaudara  int    `json:"jumlah_saudara" form:"jumlah_saudara" validate:"min=0"`
	GolonganDarah  string `json:"golongan_darah" form:"golongan_darah" validate:"omitempty,oneof=A B AB O"`
	PenyakitPernah string `json:"penyakit_pernah" form:"penyakit_pernah"`

	// Biodata Ayah
	NamaAyah         string `json:"nama_ayah" form:"nama_ayah" validate:"required"`
	TempatLahirAyah  string `json:"tempat_lahir_ayah" form:"tempat_lahir_ayah" validate:"required"`
	TanggalLahirAyah string `json:"tanggal_lahir_ayah" form:"tanggal_lahir_ayah" validate:"required,datetime=2006-01-02"`
	SukuAyah         string `json:"suku_ayah" form:"suku_ayah" validate:"required"`
	PendidikanAyah   string `json:"pendidikan_ayah" form:"pendidikan_ayah" validate:"required"`
	PekerjaanAyah    string `json:"pekerjaan_ayah" form:"pekerjaan_ayah" validate:"required"`
	AlamatAyah       string `json:"alamat_ayah" form:"alamat_ayah" validate:"required"`
	HpAyah           string `json:"hp_ayah" form:"hp_ayah" validate:"required"`

	// Biodata Ibu
	NamaIbu         string `json:"nama_ibu" form:"nama_ibu" validate:"required"`
	TempatLahirIbu  string `json:"tempat_lahir_ibu" form:"tempat_lahir_ibu" validate:"required"`
	TanggalLahirIbu string `json:"tanggal_lahir_ibu" form:"tanggal_lahir_ibu" validate:"required,datetime=2006-01-02"`
	SukuIbu         string `json:"suku_ibu" form:"suku_ibu" validate:"required"`
	PendidikanIbu   string `json:"pendidikan_ibu" form:"pendidikan_ibu" validate:"required"`
	PekerjaanIbu    string `json:"pekerjaan_ibu" form:"pekerjaan_ibu" validate:"required"`
	AlamatIbu       string `json:"alamat_ibu" form:"alamat_ibu" validate:"required"`
	HpIbu           string `json:"hp_ibu" form:"hp_ibu" validate:"required"`

	// Asal Sekolah
	StatusMasuk         string `json:"status_masuk" form:"status_masuk" validate:"required"`
	NamaTpqSebelum      string `json:"nama_tpq_sebelum" form:"nama_tpq_sebelum"`
	TanggalPindah       string `json:"tanggal_pindah" form:"tanggal_pindah" validate:"omitempty,datetime=2006-01-02"`
	KelompokBelajar     string `json:"kelompok_belajar" form:"kelompok_belajar" validate:"required"`
	TingkatPembelajaran string `json:"tingkat_pembelajaran" form:"tingkat_pembelajaran"`
	JuzAlquran          int    `json:"juz_alquran" form:"juz_alquran" validate:"omitempty,min=1,max=30"`
}

// Validate: aturan bisnis di luar jangkauan tag validator,
// field kondisional pindahan + eksklusivitas tingkat/juz + tiga tanggal.
func (r *CreatePendaftarRequest) Validate() error {
	if r.TanggalLahir == "" || r.TanggalLahirAyah == "" || r.TanggalLahirIbu == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Semua tanggal harus diisi")
	}
	if r.StatusMasuk != model.StatusMasukBaru && r.StatusMasuk != model.StatusMasukPindahan {
		return fiber.NewError(fiber.StatusBadRequest, "status_masuk tidak dikenal")
	}
	if r.StatusMasuk == model.StatusMasukPindahan {
		if strings.TrimSpace(r.NamaTpqSebelum) == "" || r.TanggalPindah == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nama TPQ sebelumnya dan tanggal pindah wajib diisi untuk santri pindahan")
		}
	}
	if r.KelompokBelajar == model.KelompokAlQuran {
		if r.JuzAlquran < 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Juz Al-Quran wajib dipilih untuk kelompok Al-Quran")
		}
	} else {
		if strings.TrimSpace(r.TingkatPembelajaran) == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Tingkat pembelajaran wajib dipilih")
		}
	}
	return nil
}

// DocumentURLs menampung URL publik hasil upload empat dokumen wajib.
type DocumentURLs struct {
	FotoAkte string
	FotoKK   string
	Foto3x4  string
	Foto2x4  string
}

// ToModel membentuk baris pendaftar_santri. Field kondisional di-nil-kan
// di sini walau request mengisinya, nilai sisa dari langkah wizard yang
// dibatalkan tidak boleh ikut tersimpan.
func (r *CreatePendaftarRequest) ToModel(urls DocumentURLs) *model.PendaftarSantri {
	m := &model.PendaftarSantri{
		NamaLengkap:   r.NamaLengkap,
		NamaPanggilan: r.NamaPanggilan,
		JenisKelamin:  r.JenisKelamin,
		TempatLahir:   r.TempatLahir,
		TanggalLahir:  r.TanggalLahir,
		AlamatRumah:   r.AlamatRumah,
		AnakKe:        r.AnakKe,
		JumlahSaudara: r.JumlahSaudara,

		NamaAyah:         r.NamaAyah,
		TempatLahirAyah:  r.TempatLahirAyah,
		TanggalLahirAyah: r.TanggalLahirAyah,
		SukuAyah:         r.SukuAyah,
		PendidikanAyah:   r.PendidikanAyah,
		PekerjaanAyah:    r.PekerjaanAyah,
		AlamatAyah:       r.AlamatAyah,
		HpAyah:           r.HpAyah,

		NamaIbu:         r.NamaIbu,
		TempatLahirIbu:  r.TempatLahirIbu,
		TanggalLahirIbu: r.TanggalLahirIbu,
		SukuIbu:         r.SukuIbu,
		PendidikanIbu:   r.PendidikanIbu,
		PekerjaanIbu:    r.PekerjaanIbu,
		AlamatIbu:       r.AlamatIbu,
		HpIbu:           r.HpIbu,

		StatusMasuk:     r.StatusMasuk,
		KelompokBelajar: r.KelompokBelajar,

		Status: model.StatusMenungguVerifikasi,
	}

	if v := strings.TrimSpace(r.GolonganDarah); v != "" {
		m.GolonganDarah = &v
	}
	if v := strings.TrimSpace(r.PenyakitPernah); v != "" {
		m.PenyakitPernah = &v
	}

	if r.StatusMasuk == model.StatusMasukPindahan {
		nama := r.NamaTpqSebelum
		tanggal := r.TanggalPindah
		m.NamaTpqSebelum = &nama
		m.TanggalPindah = &tanggal
	}

	if r.KelompokBelajar == model.KelompokAlQuran {
		juz := r.JuzAlquran
		m.JuzAlquran = &juz
	} else if v := strings.TrimSpace(r.TingkatPembelajaran); v != "" {
		m.TingkatPembelajaran = &v
	}

	if urls.FotoAkte != "" {
		m.FotoAkte = &urls.FotoAkte
	}
	if urls.FotoKK != "" {
		m.FotoKK = &urls.FotoKK
	}
	if urls.Foto3x4 != "" {
		m.Foto3x4 = &urls.Foto3x4
	}
	if urls.Foto2x4 != "" {
		m.Foto2x4 = &urls.Foto2x4
	}

	return m
}

// ValidateStepRequest dipakai wizard di client untuk menanyakan apakah
// langkah aktif sudah lengkap sebelum maju.
type ValidateStepRequest struct {
	Step int `json:"step" validate:"required,min=1,max=3"`
	CreatePendaftarRequest
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

// PendaftarListItem: baris ringkas untuk tabel dashboard admin.
type PendaftarListItem struct {
	ID             uuid.UUID  `json:"id"`
	NamaLengkap    string     `json:"nama_lengkap"`
	StatusMasuk    string     `json:"status_masuk"`
	NamaTpqSebelum *string    `json:"nama_tpq_sebelum,omitempty"`
	TanggalDaftar  time.Time  `json:"tanggal_daftar"`
	Status         string     `json:"status"`
	JenisKelamin   string     `json:"jenis_kelamin"`
	TempatLahir    string     `json:"tempat_lahir"`
	TanggalLahir   string     `json:"tanggal_lahir"`
	AlamatRumah    string     `json:"alamat_rumah"`
	IsVerified     bool       `json:"is_verified"`
}

func ToListItem(m *model.PendaftarSantri) PendaftarListItem {
	return PendaftarListItem{
		ID:             m.ID,
		NamaLengkap:    m.NamaLengkap,
		StatusMasuk:    m.StatusMasuk,
		NamaTpqSebelum: m.NamaTpqSebelum,
		TanggalDaftar:  m.TanggalDaftar,
		Status:         m.Status,
		JenisKelamin:   m.JenisKelamin,
		TempatLahir:    m.TempatLahir,
		TanggalLahir:   m.TanggalLahir,
		AlamatRumah:    m.AlamatRumah,
		IsVerified:     m.IsVerified,
	}
}
