package service

import (
	"testing"

	biayaModel "tpqnurislam_backend/internals/features/finance/biaya/model"
	pendaftarModel "tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func sampleBiaya() []biayaModel.BiayaPendaftaran {
	return []biayaModel.BiayaPendaftaran{
		{NamaBiaya: "Biaya Pendaftaran", Jumlah: 50000},
		{NamaBiaya: biayaModel.BiayaBukuIqro, Jumlah: 25000},
		{NamaBiaya: biayaModel.BiayaBukuPrestasiIqro, Jumlah: 15000},
		{NamaBiaya: biayaModel.BiayaBukuPrestasiAlQuran, Jumlah: 15000},
		{NamaBiaya: "Seragam", Jumlah: 150000},
	}
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		nama     string
		kelompok string
		want     bool
	}{
		{biayaModel.BiayaBukuPrestasiIqro, pendaftarModel.KelompokAlQuran, true},
		{biayaModel.BiayaBukuIqro, pendaftarModel.KelompokAlQuran, true},
		{biayaModel.BiayaBukuPrestasiAlQuran, pendaftarModel.KelompokAlQuran, false},
		{biayaModel.BiayaBukuPrestasiIqro, "Iqro 1", false},
		{biayaModel.BiayaBukuIqro, "Iqro 3", false},
		{biayaModel.BiayaBukuPrestasiAlQuran, "Iqro 1", true},
		{"Seragam", pendaftarModel.KelompokAlQuran, false},
		{"Seragam", "Iqro 2", false},
	}
	for _, tt := range tests {
		if got := Excluded(tt.nama, tt.kelompok); got != tt.want {
			t.Errorf("Excluded(%q, %q) = %v, want %v", tt.nama, tt.kelompok, got, tt.want)
		}
	}
}

func TestTotalBiayaPerKelompok(t *testing.T) {
	items := sampleBiaya()

	// Al-Quran: tanpa Buku Iqro dan Buku Prestasi Iqro
	if got, want := TotalBiaya(items, pendaftarModel.KelompokAlQuran), 50000+15000+150000; got != want {
		t.Errorf("TotalBiaya(Al-Quran) = %d, want %d", got, want)
	}
	// Iqro: tanpa Buku Prestasi Al-Quran
	if got, want := TotalBiaya(items, "Iqro 1"), 50000+25000+15000+150000; got != want {
		t.Errorf("TotalBiaya(Iqro) = %d, want %d", got, want)
	}
}

// Total yang ditampilkan harus sama persis dengan jumlah rincian yang
// disimpan di pembayaran.
func TestTotalSamaDenganRincian(t *testing.T) {
	items := sampleBiaya()
	for _, kelompok := range []string{pendaftarModel.KelompokAlQuran, "Iqro 1", "Iqro 6"} {
		detail := DetailBiaya(items, kelompok)
		sum := 0
		for _, d := range detail {
			sum += d.Jumlah
		}
		if total := TotalBiaya(items, kelompok); total != sum {
			t.Errorf("kelompok %q: total %d != jumlah rincian %d", kelompok, total, sum)
		}
	}
}

func TestTotalBiayaTidakTergantungUrutan(t *testing.T) {
	items := sampleBiaya()
	reversed := make([]biayaModel.BiayaPendaftaran, len(items))
	for i, item := range items {
		reversed[len(items)-1-i] = item
	}
	if a, b := TotalBiaya(items, pendaftarModel.KelompokAlQuran), TotalBiaya(reversed, pendaftarModel.KelompokAlQuran); a != b {
		t.Errorf("total berubah karena urutan: %d vs %d", a, b)
	}
}

func TestFilterBiayaPertahankanUrutan(t *testing.T) {
	items := sampleBiaya()
	filtered := FilterBiaya(items, "Iqro 1")
	want := []string{"Biaya Pendaftaran", biayaModel.BiayaBukuIqro, biayaModel.BiayaBukuPrestasiIqro, "Seragam"}
	if len(filtered) != len(want) {
		t.Fatalf("len = %d, want %d", len(filtered), len(want))
	}
	for i, name := range want {
		if filtered[i].NamaBiaya != name {
			t.Errorf("filtered[%d] = %q, want %q", i, filtered[i].NamaBiaya, name)
		}
	}
}
