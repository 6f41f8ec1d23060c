package model

import "github.com/google/uuid"

/* ===================== Model ===================== */
/* `biaya_pendaftaran` adalah data referensi, aplikasi hanya membaca. */

// Nama item biaya yang eksklusif per jalur belajar. Dua item jalur Iqro
// dilewati untuk santri Al-Quran, item jalur Al-Quran dilewati untuk
// selainnya, buku tidak boleh tertagih dobel.
const (
	BiayaBukuPrestasiIqro    = "Buku Prestasi Iqro"
	BiayaBukuIqro            = "Buku Iqro"
	BiayaBukuPrestasiAlQuran = "Buku Prestasi Al-Quran"
)

type BiayaPendaftaran struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	NamaBiaya string    `gorm:"column:nama_biaya;not null" json:"nama_biaya"`
	Jumlah    int       `gorm:"column:jumlah;not null;check:jumlah >= 0" json:"jumlah"`
}

func (BiayaPendaftaran) TableName() string { return "biaya_pendaftaran" }
