package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */

const (
	StatusPembayaranMenunggu     = "Menunggu Konfirmasi"
	StatusPembayaranDikonfirmasi = "Dikonfirmasi"
	StatusPembayaranLunas        = "Lunas"
)

/* ===================== Model ===================== */

// DetailBiayaItem adalah satu baris rincian biaya yang dibekukan saat
// submit, perubahan tarif setelahnya tidak mengubah rincian ini.
type DetailBiayaItem struct {
	NamaBiaya string `json:"nama_biaya"`
	Jumlah    int    `json:"jumlah"`
}

type Pembayaran struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PendaftarID uuid.UUID `gorm:"column:pendaftar_id;type:uuid;not null;index" json:"pendaftar_id"`

	TotalBiaya  int            `gorm:"column:total_biaya;not null;check:total_biaya >= 0" json:"total_biaya"`
	DetailBiaya datatypes.JSON `gorm:"column:detail_biaya;type:jsonb" json:"detail_biaya"`

	StatusPembayaran  string     `gorm:"column:status_pembayaran;not null;default:'Menunggu Konfirmasi'" json:"status_pembayaran"`
	TanggalPembayaran *time.Time `gorm:"column:tanggal_pembayaran" json:"tanggal_pembayaran,omitempty"`
	BuktiPembayaran   *string    `gorm:"column:bukti_pembayaran" json:"bukti_pembayaran,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Pembayaran) TableName() string { return "pembayaran" }
