package service

import (
	"strings"
	"testing"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1.000"},
		{150000, "150.000"},
		{1000000, "1.000.000"},
		{1234567, "1.234.567"},
	}
	for _, tt := range tests {
		if got := FormatRupiah(tt.in); got != tt.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildVerificationMessageAlQuran(t *testing.T) {
	juz := 5
	p := model.PendaftarSantri{
		NamaLengkap:     "Ahmad Fauzi",
		KelompokBelajar: model.KelompokAlQuran,
		JuzAlquran:      &juz,
	}
	msg := BuildVerificationMessage(&p, 215000)

	for _, want := range []string{
		"Assalamu'alaikum Wr. Wb.",
		"Nama Santri: Ahmad Fauzi",
		"Kelompok Belajar: Al-Quran",
		"Juz: 5",
		"Total Biaya: Rp 215.000",
		"Bank BRI",
		"No. Rek: 123456789",
		"Wassalamu'alaikum Wr. Wb.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("pesan tidak memuat %q", want)
		}
	}
}

func TestBuildVerificationMessageIqroTanpaJuz(t *testing.T) {
	p := model.PendaftarSantri{
		NamaLengkap:     "Siti",
		KelompokBelajar: "Iqro 2",
	}
	msg := BuildVerificationMessage(&p, 240000)
	if strings.Contains(msg, "Juz:") {
		t.Error("kelompok Iqro tidak boleh memuat baris Juz")
	}
	if !strings.Contains(msg, "Kelompok Belajar: Iqro 2") {
		t.Error("kelompok belajar tidak tercantum")
	}
}

func TestBuildWaLink(t *testing.T) {
	link := BuildWaLink("081234567890", "Halo Dunia")
	if link != "https://wa.me/6281234567890?text=Halo%20Dunia" {
		t.Errorf("link = %q", link)
	}
	if strings.Contains(link, "+") {
		t.Error("spasi harus %20, bukan +")
	}
}
