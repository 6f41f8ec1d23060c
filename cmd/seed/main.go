// file: cmd/seed/main.go
// Seeder offline: isi tabel referensi (biaya_pendaftaran) dari JSON.
package main

import (
	"tpqnurislam_backend/internals/configs"
	"tpqnurislam_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	db := configs.InitSeederDB()
	seeds.RunAllSeeds(db)
}
