package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan data `pendaftar_santri` di PostgreSQL (Supabase). */

const (
	StatusMenungguVerifikasi = "Menunggu Verifikasi"
	StatusDiterima           = "Diterima"
	StatusDitolak            = "Ditolak"
)

const (
	StatusMasukBaru     = "Santri Baru"
	StatusMasukPindahan = "Santri Pindahan"
)

// Kelompok belajar jalur lanjutan; jalur lainnya (Iqro) memakai
// tingkat_pembelajaran, bukan juz_alquran.
const KelompokAlQuran = "Al-Quran"

/* ===================== Model ===================== */

type PendaftarSantri struct {
	ID uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Biodata Santri
	NamaLengkap    string  `gorm:"column:nama_lengkap;not null" json:"nama_lengkap"`
	NamaPanggilan  string  `gorm:"column:nama_panggilan;not null" json:"nama_panggilan"`
	JenisKelamin   string  `gorm:"column:jenis_kelamin;not null" json:"jenis_kelamin"`
	TempatLahir    string  `gorm:"column:tempat_lahir;not null" json:"tempat_lahir"`
	TanggalLahir   string  `gorm:"column:tanggal_lahir;type:date;not null" json:"tanggal_lahir"`
	AlamatRumah    string  `gorm:"column:alamat_rumah;not null" json:"alamat_rumah"`
	AnakKe         int     `gorm:"column:anak_ke;not null" json:"anak_ke"`
	JumlahSaudara  int     `gorm:"column:jumlah_saudara;not null" json:"jumlah_saudara"`
	GolonganDarah  *string `gorm:"column:golongan_darah" json:"golongan_darah,omitempty"`
	PenyakitPernah *string `gorm:"column:penyakit_pernah" json:"penyakit_pernah,omitempty"`

	// Biodata Ayah
	NamaAyah         string `gorm:"column:nama_ayah;not null" json:"nama_ayah"`
	TempatLahirAyah  string `gorm:"column:tempat_lahir_ayah;not null" json:"tempat_lahir_ayah"`
	TanggalLahirAyah string `gorm:"column:tanggal_lahir_ayah;type:date;not null" json:"tanggal_lahir_ayah"`
	SukuAyah         string `gorm:"column:suku_ayah;not null" json:"suku_ayah"`
	PendidikanAyah   string `gorm:"column:pendidikan_ayah;not null" json:"pendidikan_ayah"`
	PekerjaanAyah    string `gorm:"column:pekerjaan_ayah;not null" json:"pekerjaan_ayah"`
	AlamatAyah       string `gorm:"column:alamat_ayah;not null" json:"alamat_ayah"`
	HpAyah           string `gorm:"column:hp_ayah;not null" json:"hp_ayah"`

	// Biodata Ibu
	NamaIbu         string `gorm:"column:nama_ibu;not null" json:"nama_ibu"`
	TempatLahirIbu  string `gorm:"column:tempat_lahir_ibu;not null" json:"tempat_lahir_ibu"`
	TanggalLahirIbu string `gorm:"column:tanggal_lahir_ibu;type:date;not null" json:"tanggal_lahir_ibu"`
	SukuIbu         string `gorm:"column:suku_ibu;not null" json:"suku_ibu"`
	PendidikanIbu   string `gorm:"column:pendidikan_ibu;not null" json:"pendidikan_ibu"`
	PekerjaanIbu    string `gorm:"column:pekerjaan_ibu;not null" json:"pekerjaan_ibu"`
	AlamatIbu       string `gorm:"column:alamat_ibu;not null" json:"alamat_ibu"`
	HpIbu           string `gorm:"column:hp_ibu;not null" json:"hp_ibu"`

	// Asal Sekolah.
	// Invariant: NamaTpqSebelum & TanggalPindah terisi ⇔ StatusMasuk = Santri Pindahan.
	// Invariant: JuzAlquran terisi hanya saat KelompokBelajar = Al-Quran;
	// TingkatPembelajaran hanya sebaliknya (saling eksklusif).
	StatusMasuk         string  `gorm:"column:status_masuk;not null" json:"status_masuk"`
	NamaTpqSebelum      *string `gorm:"column:nama_tpq_sebelum" json:"nama_tpq_sebelum,omitempty"`
	TanggalPindah       *string `gorm:"column:tanggal_pindah;type:date" json:"tanggal_pindah,omitempty"`
	KelompokBelajar     string  `gorm:"column:kelompok_belajar;not null" json:"kelompok_belajar"`
	TingkatPembelajaran *string `gorm:"column:tingkat_pembelajaran" json:"tingkat_pembelajaran,omitempty"`
	JuzAlquran          *int    `gorm:"column:juz_alquran" json:"juz_alquran,omitempty"`

	// URL dokumen hasil upload ke bucket `documents`
	FotoAkte *string `gorm:"column:foto_akte" json:"foto_akte,omitempty"`
	FotoKK   *string `gorm:"column:foto_kk" json:"foto_kk,omitempty"`
	Foto3x4  *string `gorm:"column:foto_3x4" json:"foto_3x4,omitempty"`
	Foto2x4  *string `gorm:"column:foto_2x4" json:"foto_2x4,omitempty"`

	// Lifecycle & verifikasi
	Status             string     `gorm:"column:status;not null;default:'Menunggu Verifikasi'" json:"status"`
	IsVerified         bool       `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	TanggalVerifikasi  *time.Time `gorm:"column:tanggal_verifikasi" json:"tanggal_verifikasi,omitempty"`
	VerifikasiOleh     *uuid.UUID `gorm:"column:verifikasi_oleh;type:uuid" json:"verifikasi_oleh,omitempty"`
	NotifikasiTerkirim bool       `gorm:"column:notifikasi_terkirim;not null;default:false" json:"notifikasi_terkirim"`

	TanggalDaftar time.Time `gorm:"column:tanggal_daftar;autoCreateTime" json:"tanggal_daftar"`
}

func (PendaftarSantri) TableName() string { return "pendaftar_santri" }

/* ===================== Helpers ===================== */

func (p *PendaftarSantri) IsPindahan() bool {
	return p.StatusMasuk == StatusMasukPindahan
}

func (p *PendaftarSantri) IsAlQuran() bool {
	return p.KelompokBelajar == KelompokAlQuran
}
