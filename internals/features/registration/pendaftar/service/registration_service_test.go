package service

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tpqnurislam_backend/internals/helpers/storage"

	"tpqnurislam_backend/internals/features/registration/pendaftar/dto"
	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func step1Filled() dto.CreatePendaftarRequest {
	return dto.CreatePendaftarRequest{
		NamaLengkap:   "Ahmad Fauzi",
		NamaPanggilan: "Fauzi",
		JenisKelamin:  "Laki-laki",
		TempatLahir:   "Balikpapan",
		TanggalLahir:  "2018-03-14",
		AlamatRumah:   "Jl. Soekarno Hatta No. 1",
		AnakKe:        1,
	}
}

func step2Filled() dto.CreatePendaftarRequest {
	return dto.CreatePendaftarRequest{
		NamaAyah: "Budi", TempatLahirAyah: "Samarinda", TanggalLahirAyah: "1985-01-20",
		SukuAyah: "Jawa", PendidikanAyah: "S1", PekerjaanAyah: "Wiraswasta",
		AlamatAyah: "Jl. A", HpAyah: "0812",
		NamaIbu: "Siti", TempatLahirIbu: "Balikpapan", TanggalLahirIbu: "1988-07-02",
		SukuIbu: "Banjar", PendidikanIbu: "SMA", PekerjaanIbu: "IRT",
		AlamatIbu: "Jl. A", HpIbu: "0898",
	}
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		name string
		step int
		req  dto.CreatePendaftarRequest
		want bool
	}{
		{"step 1 lengkap", 1, step1Filled(), true},
		{"step 1 nama kosong", 1, func() dto.CreatePendaftarRequest {
			r := step1Filled()
			r.NamaLengkap = "  "
			return r
		}(), false},
		{"step 1 anak ke nol", 1, func() dto.CreatePendaftarRequest {
			r := step1Filled()
			r.AnakKe = 0
			return r
		}(), false},
		{"step 2 lengkap", 2, step2Filled(), true},
		{"step 2 hp ibu kosong", 2, func() dto.CreatePendaftarRequest {
			r := step2Filled()
			r.HpIbu = ""
			return r
		}(), false},
		{"step 3 baru iqro", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukBaru, KelompokBelajar: "Iqro 1", TingkatPembelajaran: "Iqro 1",
		}, true},
		{"step 3 baru al-quran juz 5", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukBaru, KelompokBelajar: model.KelompokAlQuran, JuzAlquran: 5,
		}, true},
		{"step 3 al-quran tanpa juz", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukBaru, KelompokBelajar: model.KelompokAlQuran,
		}, false},
		{"step 3 iqro tanpa tingkat", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukBaru, KelompokBelajar: "Iqro 2",
		}, false},
		{"step 3 pindahan lengkap", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukPindahan, NamaTpqSebelum: "TPQ Lama", TanggalPindah: "2024-06-01",
			KelompokBelajar: "Iqro 1", TingkatPembelajaran: "Iqro 1",
		}, true},
		{"step 3 pindahan tanpa nama tpq", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukPindahan, TanggalPindah: "2024-06-01",
			KelompokBelajar: "Iqro 1", TingkatPembelajaran: "Iqro 1",
		}, false},
		{"step 3 pindahan tanpa tanggal", 3, dto.CreatePendaftarRequest{
			StatusMasuk: model.StatusMasukPindahan, NamaTpqSebelum: "TPQ Lama",
			KelompokBelajar: "Iqro 1", TingkatPembelajaran: "Iqro 1",
		}, false},
		{"step tidak dikenal", 4, step1Filled(), false},
		{"step nol", 0, step1Filled(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateStep(tt.step, &tt.req); got != tt.want {
				t.Errorf("ValidateStep(%d) = %v, want %v", tt.step, got, tt.want)
			}
		})
	}
}

func TestRegisterTanpaStorage(t *testing.T) {
	svc := NewRegistrationService(nil, nil)
	_, _, err := svc.Register(context.Background(), &dto.CreatePendaftarRequest{}, DocumentFiles{})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusServiceUnavailable {
		t.Fatalf("tanpa storage harus 503, dapat %v", err)
	}
}

func TestRegisterFileTidakLengkap(t *testing.T) {
	req := step1Filled()
	step2 := step2Filled()
	req.NamaAyah = step2.NamaAyah
	req.TempatLahirAyah = step2.TempatLahirAyah
	req.TanggalLahirAyah = step2.TanggalLahirAyah
	req.SukuAyah = step2.SukuAyah
	req.PendidikanAyah = step2.PendidikanAyah
	req.PekerjaanAyah = step2.PekerjaanAyah
	req.AlamatAyah = step2.AlamatAyah
	req.HpAyah = step2.HpAyah
	req.NamaIbu = step2.NamaIbu
	req.TempatLahirIbu = step2.TempatLahirIbu
	req.TanggalLahirIbu = step2.TanggalLahirIbu
	req.SukuIbu = step2.SukuIbu
	req.PendidikanIbu = step2.PendidikanIbu
	req.PekerjaanIbu = step2.PekerjaanIbu
	req.AlamatIbu = step2.AlamatIbu
	req.HpIbu = step2.HpIbu
	req.StatusMasuk = model.StatusMasukBaru
	req.KelompokBelajar = "Iqro 1"
	req.TingkatPembelajaran = "Iqro 1"

	svc := NewRegistrationService(nil, &storage.MockStorage{})
	_, _, err := svc.Register(context.Background(), &req, DocumentFiles{})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("file tidak lengkap harus 400, dapat %v", err)
	}
	if fe.Message != "Semua file harus diupload" {
		t.Errorf("pesan = %q", fe.Message)
	}
}

func TestDocumentFilesComplete(t *testing.T) {
	if (DocumentFiles{}).Complete() {
		t.Error("DocumentFiles kosong tidak boleh dianggap lengkap")
	}
}
