package excel

import (
	"testing"
	"time"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func samplePendaftar() *model.PendaftarSantri {
	return &model.PendaftarSantri{
		NamaLengkap:      "Ahmad Fauzi",
		NamaPanggilan:    "Fauzi",
		JenisKelamin:     "Laki-laki",
		TempatLahir:      "Balikpapan",
		TanggalLahir:     "2018-03-14",
		AlamatRumah:      "Jl. Soekarno Hatta",
		AnakKe:           1,
		JumlahSaudara:    2,
		StatusMasuk:      model.StatusMasukBaru,
		KelompokBelajar:  "Iqro 1",
		NamaAyah:         "Budi",
		TempatLahirAyah:  "Samarinda",
		TanggalLahirAyah: "1985-01-20",
		NamaIbu:          "Siti",
		TempatLahirIbu:   "Balikpapan",
		TanggalLahirIbu:  "1988-07-02",
		Status:           model.StatusMenungguVerifikasi,
		TanggalDaftar:    time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildRowPanjangSamaDenganHeader(t *testing.T) {
	row := BuildRow(ExportRow{Pendaftar: samplePendaftar()})
	if len(row) != len(Headers) {
		t.Fatalf("len(row) = %d, want %d", len(row), len(Headers))
	}
}

func TestBuildRowSantriBaru(t *testing.T) {
	row := BuildRow(ExportRow{Pendaftar: samplePendaftar()})

	// kolom pindahan harus '-' untuk santri baru
	if row[11] != "-" || row[12] != "-" {
		t.Errorf("kolom pindahan santri baru = %v %v, want - -", row[11], row[12])
	}
	// tanggal gaya id-ID d/m/yyyy
	if row[4] != "14/3/2018" {
		t.Errorf("TANGGAL LAHIR = %v, want 14/3/2018", row[4])
	}
	if row[33] != "Belum Terverifikasi" {
		t.Errorf("STATUS VERIFIKASI = %v", row[33])
	}
	if row[35] != "Belum Ada Data" {
		t.Errorf("STATUS PEMBAYARAN tanpa pembayaran = %v, want Belum Ada Data", row[35])
	}
	if row[14] != "Belum Ditentukan" {
		t.Errorf("TINGKAT PEMBELAJARAN kosong = %v, want Belum Ditentukan", row[14])
	}
}

func TestBuildRowPindahanTerverifikasi(t *testing.T) {
	p := samplePendaftar()
	nama := "TPQ Al-Hidayah"
	tanggal := "2024-06-01"
	p.StatusMasuk = model.StatusMasukPindahan
	p.NamaTpqSebelum = &nama
	p.TanggalPindah = &tanggal
	p.IsVerified = true
	verifiedAt := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	p.TanggalVerifikasi = &verifiedAt

	row := BuildRow(ExportRow{Pendaftar: p, StatusPembayaran: "Dikonfirmasi"})

	if row[11] != "TPQ Al-Hidayah" {
		t.Errorf("NAMA TPQ SEBELUMNYA = %v", row[11])
	}
	if row[12] != "1/6/2024" {
		t.Errorf("TANGGAL PINDAH = %v, want 1/6/2024", row[12])
	}
	if row[33] != "Terverifikasi" {
		t.Errorf("STATUS VERIFIKASI = %v", row[33])
	}
	if row[34] != "15/8/2026" {
		t.Errorf("TANGGAL VERIFIKASI = %v, want 15/8/2026", row[34])
	}
	if row[35] != "Dikonfirmasi" {
		t.Errorf("STATUS PEMBAYARAN = %v", row[35])
	}
}

func TestBuildWorkbook(t *testing.T) {
	f, err := BuildWorkbook([]ExportRow{{Pendaftar: samplePendaftar()}})
	if err != nil {
		t.Fatalf("BuildWorkbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue(SheetName, "A1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "NAMA LENGKAP" {
		t.Errorf("A1 = %q, want NAMA LENGKAP", got)
	}
	got, err = f.GetCellValue(SheetName, "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if got != "Ahmad Fauzi" {
		t.Errorf("A2 = %q, want Ahmad Fauzi", got)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "Data_Pendaftar_TPQ_30-8-2026.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}
