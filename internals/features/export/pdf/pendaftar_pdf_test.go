package pdf

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func TestFormatDateID(t *testing.T) {
	got := FormatDateID(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	if got != "30 Agustus 2026" {
		t.Errorf("FormatDateID = %q", got)
	}
}

func TestImageType(t *testing.T) {
	tests := []struct {
		url, contentType, want string
	}{
		{"https://s/akte/1-a.png", "", "PNG"},
		{"https://s/akte/1-a.jpg", "", "JPG"},
		{"https://s/akte/1-a.png?token=abc", "", "PNG"},
		{"https://s/akte/1-a", "image/png", "PNG"},
		{"https://s/akte/1-a", "image/jpeg", "JPG"},
		{"https://s/akte/1-a.bin", "", "JPG"},
	}
	for _, tt := range tests {
		if got := imageType(tt.url, tt.contentType); got != tt.want {
			t.Errorf("imageType(%q, %q) = %q, want %q", tt.url, tt.contentType, got, tt.want)
		}
	}
}

// Formulir tetap jadi walau semua dokumen gagal diambil.
func TestRenderTanpaDokumen(t *testing.T) {
	badURL := "https://storage/akte/hilang.jpg"
	p := &model.PendaftarSantri{
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
		TanggalLahirAyah: "1985-01-20",
		NamaIbu:          "Siti",
		TanggalLahirIbu:  "1988-07-02",
		Status:           model.StatusMenungguVerifikasi,
		TanggalDaftar:    time.Now(),
		FotoAkte:         &badURL,
	}

	r := &Renderer{Fetch: func(_ context.Context, _ string) ([]byte, string, error) {
		return nil, "", errors.New("storage down")
	}}
	out, err := r.Render(context.Background(), p)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output bukan PDF, prefix: %q", out[:min(8, len(out))])
	}
}
