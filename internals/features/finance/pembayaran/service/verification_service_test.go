package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	pendaftarModel "tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

func TestApplyVerifikasi(t *testing.T) {
	p := pendaftarModel.PendaftarSantri{
		Status: pendaftarModel.StatusMenungguVerifikasi,
	}
	adminID := uuid.New()
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	ApplyVerifikasi(&p, adminID, now)

	if p.Status != pendaftarModel.StatusDiterima {
		t.Errorf("Status = %q, want %q", p.Status, pendaftarModel.StatusDiterima)
	}
	if !p.IsVerified {
		t.Error("IsVerified harus true")
	}
	if p.TanggalVerifikasi == nil || !p.TanggalVerifikasi.Equal(now) {
		t.Errorf("TanggalVerifikasi = %v, want %v", p.TanggalVerifikasi, now)
	}
	if p.VerifikasiOleh == nil || *p.VerifikasiOleh != adminID {
		t.Errorf("VerifikasiOleh = %v, want %v", p.VerifikasiOleh, adminID)
	}
}

func TestApplyBatalVerifikasi(t *testing.T) {
	adminID := uuid.New()
	now := time.Now()
	p := pendaftarModel.PendaftarSantri{
		Status:            pendaftarModel.StatusDiterima,
		IsVerified:        true,
		TanggalVerifikasi: &now,
		VerifikasiOleh:    &adminID,
	}

	ApplyBatalVerifikasi(&p)

	if p.Status != pendaftarModel.StatusMenungguVerifikasi {
		t.Errorf("Status = %q, want %q", p.Status, pendaftarModel.StatusMenungguVerifikasi)
	}
	if p.IsVerified || p.TanggalVerifikasi != nil || p.VerifikasiOleh != nil {
		t.Errorf("jejak verifikasi harus bersih: %+v", p)
	}
}

// Verifikasi lalu batal harus kembali ke keadaan semula.
func TestVerifikasiBolakBalik(t *testing.T) {
	p := pendaftarModel.PendaftarSantri{
		Status: pendaftarModel.StatusMenungguVerifikasi,
	}
	ApplyVerifikasi(&p, uuid.New(), time.Now())
	ApplyBatalVerifikasi(&p)

	if p.Status != pendaftarModel.StatusMenungguVerifikasi || p.IsVerified {
		t.Errorf("state tidak kembali: %+v", p)
	}
}
