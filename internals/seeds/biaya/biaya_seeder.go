package biaya

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"tpqnurislam_backend/internals/features/finance/biaya/model"
)

// Struktur sesuai dengan kolom tabel biaya_pendaftaran
type BiayaSeed struct {
	NamaBiaya string `json:"nama_biaya"`
	Jumlah    int    `json:"jumlah"`
}

func SeedBiayaFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var items []BiayaSeed
	if err := json.Unmarshal(file, &items); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, item := range items {
		var existing model.BiayaPendaftaran
		if err := db.Where("nama_biaya = ?", item.NamaBiaya).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Biaya %s sudah ada, lewati...", item.NamaBiaya)
			continue
		}

		newBiaya := model.BiayaPendaftaran{
			NamaBiaya: item.NamaBiaya,
			Jumlah:    item.Jumlah,
		}
		if err := db.Create(&newBiaya).Error; err != nil {
			log.Printf("❌ Gagal insert biaya %s: %v", item.NamaBiaya, err)
			continue
		}
		log.Printf("✅ Biaya %s (Rp %d) berhasil ditambahkan", item.NamaBiaya, item.Jumlah)
	}
}
