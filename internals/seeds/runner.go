package seeds

import (
	biaya "tpqnurislam_backend/internals/seeds/biaya"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Biaya pendaftaran
	biaya.SeedBiayaFromJSON(db, "internals/seeds/biaya/data_biaya.json")
}
