package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func validRequest() CreatePendaftarRequest {
	return CreatePendaftarRequest{
		NamaLengkap:   "Ahmad Fauzi",
		NamaPanggilan: "Fauzi",
		JenisKelamin:  "Laki-laki",
		TempatLahir:   "Balikpapan",
		TanggalLahir:  "2018-03-14",
		AlamatRumah:   "Jl. Soekarno Hatta No. 1",
		AnakKe:        1,
		JumlahSaudara: 2,

		NamaAyah:         "Budi Santoso",
		TempatLahirAyah:  "Samarinda",
		TanggalLahirAyah: "1985-01-20",
		SukuAyah:         "Jawa",
		PendidikanAyah:   "S1",
		PekerjaanAyah:    "Wiraswasta",
		AlamatAyah:       "Jl. Soekarno Hatta No. 1",
		HpAyah:           "081234567890",

		NamaIbu:         "Siti Aminah",
		TempatLahirIbu:  "Balikpapan",
		TanggalLahirIbu: "1988-07-02",
		SukuIbu:         "Banjar",
		PendidikanIbu:   "SMA",
		PekerjaanIbu:    "Ibu Rumah Tangga",
		AlamatIbu:       "Jl. Soekarno Hatta No. 1",
		HpIbu:           "089876543210",

		StatusMasuk:         model.StatusMasukBaru,
		KelompokBelajar:     "Iqro 1",
		TingkatPembelajaran: "Iqro 1",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *CreatePendaftarRequest)
		wantErr bool
	}{
		{"valid santri baru", func(r *CreatePendaftarRequest) {}, false},
		{"valid al-quran", func(r *CreatePendaftarRequest) {
			r.KelompokBelajar = model.KelompokAlQuran
			r.TingkatPembelajaran = ""
			r.JuzAlquran = 5
		}, false},
		{"valid pindahan", func(r *CreatePendaftarRequest) {
			r.StatusMasuk = model.StatusMasukPindahan
			r.NamaTpqSebelum = "TPQ Al-Hidayah"
			r.TanggalPindah = "2024-06-01"
		}, false},
		{"tanggal lahir kosong", func(r *CreatePendaftarRequest) {
			r.TanggalLahir = ""
		}, true},
		{"status masuk asing", func(r *CreatePendaftarRequest) {
			r.StatusMasuk = "Santri Lama"
		}, true},
		{"pindahan tanpa nama tpq", func(r *CreatePendaftarRequest) {
			r.StatusMasuk = model.StatusMasukPindahan
			r.TanggalPindah = "2024-06-01"
		}, true},
		{"pindahan tanpa tanggal pindah", func(r *CreatePendaftarRequest) {
			r.StatusMasuk = model.StatusMasukPindahan
			r.NamaTpqSebelum = "TPQ Al-Hidayah"
		}, true},
		{"al-quran tanpa juz", func(r *CreatePendaftarRequest) {
			r.KelompokBelajar = model.KelompokAlQuran
			r.JuzAlquran = 0
		}, true},
		{"iqro tanpa tingkat", func(r *CreatePendaftarRequest) {
			r.TingkatPembelajaran = ""
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if fe, ok := err.(*fiber.Error); !ok || fe.Code != fiber.StatusBadRequest {
					t.Errorf("error harus *fiber.Error 400, dapat %v", err)
				}
			}
		})
	}
}

// Sisa nilai dari langkah wizard yang dibatalkan tidak boleh tersimpan.
func TestToModelNilkanFieldKondisional(t *testing.T) {
	req := validRequest()
	// user sempat mengisi field pindahan lalu kembali memilih santri baru
	req.NamaTpqSebelum = "TPQ Lama"
	req.TanggalPindah = "2024-01-01"

	m := req.ToModel(DocumentURLs{})
	if m.NamaTpqSebelum != nil || m.TanggalPindah != nil {
		t.Errorf("santri baru harus tanpa data pindahan: %v %v", m.NamaTpqSebelum, m.TanggalPindah)
	}
	if m.Status != model.StatusMenungguVerifikasi {
		t.Errorf("status awal = %q, want %q", m.Status, model.StatusMenungguVerifikasi)
	}
}

func TestToModelAlQuranJuz(t *testing.T) {
	req := validRequest()
	req.KelompokBelajar = model.KelompokAlQuran
	req.JuzAlquran = 5
	req.TingkatPembelajaran = "Iqro 3" // sisa pilihan sebelumnya

	m := req.ToModel(DocumentURLs{})
	if m.JuzAlquran == nil || *m.JuzAlquran != 5 {
		t.Fatalf("JuzAlquran = %v, want 5", m.JuzAlquran)
	}
	if m.TingkatPembelajaran != nil {
		t.Errorf("kelompok Al-Quran tidak boleh menyimpan tingkat pembelajaran: %v", *m.TingkatPembelajaran)
	}
}

func TestToModelIqroTingkat(t *testing.T) {
	req := validRequest()
	req.JuzAlquran = 7 // sisa pilihan sebelumnya

	m := req.ToModel(DocumentURLs{})
	if m.TingkatPembelajaran == nil || *m.TingkatPembelajaran != "Iqro 1" {
		t.Fatalf("TingkatPembelajaran = %v, want Iqro 1", m.TingkatPembelajaran)
	}
	if m.JuzAlquran != nil {
		t.Errorf("kelompok Iqro tidak boleh menyimpan juz: %v", *m.JuzAlquran)
	}
}

func TestToModelURLDokumen(t *testing.T) {
	req := validRequest()
	m := req.ToModel(DocumentURLs{
		FotoAkte: "https://storage/akte/1-a.jpg",
		FotoKK:   "https://storage/kk/1-b.jpg",
		Foto3x4:  "https://storage/foto3x4/1-c.jpg",
		Foto2x4:  "https://storage/foto2x4/1-d.jpg",
	})
	for name, url := range map[string]*string{
		"FotoAkte": m.FotoAkte,
		"FotoKK":   m.FotoKK,
		"Foto3x4":  m.Foto3x4,
		"Foto2x4":  m.Foto2x4,
	} {
		if url == nil || *url == "" {
			t.Errorf("%s kosong setelah ToModel", name)
		}
	}
}
