// file: internals/features/export/excel/excel_exporter.go
package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

const (
	SheetName   = "Data Pendaftar"
	maxColWidth = 50
)

// Headers: urutan kolom baku file export. Jangan ubah urutannya,
// admin sudah punya template olah data yang bergantung pada posisi kolom.
var Headers = []string{
	"NAMA LENGKAP",
	"NAMA PANGGILAN",
	"JENIS KELAMIN",
	"TEMPAT LAHIR",
	"TANGGAL LAHIR",
	"ALAMAT RUMAH",
	"ANAK KE",
	"JUMLAH SAUDARA",
	"GOLONGAN DARAH",
	"PENYAKIT YANG PERNAH DIDERITA",
	"STATUS MASUK",
	"NAMA TPQ SEBELUMNYA",
	"TANGGAL PINDAH",
	"KELOMPOK BELAJAR",
	"TINGKAT PEMBELAJARAN",
	"NAMA AYAH",
	"TEMPAT LAHIR AYAH",
	"TANGGAL LAHIR AYAH",
	"SUKU AYAH",
	"PENDIDIKAN AYAH",
	"PEKERJAAN AYAH",
	"ALAMAT AYAH",
	"NO. HP AYAH",
	"NAMA IBU",
	"TEMPAT LAHIR IBU",
	"TANGGAL LAHIR IBU",
	"SUKU IBU",
	"PENDIDIKAN IBU",
	"PEKERJAAN IBU",
	"ALAMAT IBU",
	"NO. HP IBU",
	"TANGGAL DAFTAR",
	"STATUS PENDAFTARAN",
	"STATUS VERIFIKASI",
	"TANGGAL VERIFIKASI",
	"STATUS PEMBAYARAN",
}

// ExportRow: satu pendaftar + status pembayarannya (bisa kosong).
type ExportRow struct {
	Pendaftar        *model.PendaftarSantri
	StatusPembayaran string
}

// BuildRow meratakan satu pendaftar menjadi sel-sel sesuai Headers.
// Field kondisional tampil '-' kecuali relevan, tanggal dd/mm/yyyy gaya id-ID.
func BuildRow(r ExportRow) []any {
	p := r.Pendaftar

	namaTpq := "-"
	tanggalPindah := "-"
	if p.StatusMasuk == model.StatusMasukPindahan {
		namaTpq = derefOr(p.NamaTpqSebelum, "-")
		if p.TanggalPindah != nil {
			tanggalPindah = formatTanggal(*p.TanggalPindah)
		}
	}

	statusVerifikasi := "Belum Terverifikasi"
	if p.IsVerified {
		statusVerifikasi = "Terverifikasi"
	}
	tanggalVerifikasi := "-"
	if p.TanggalVerifikasi != nil {
		tanggalVerifikasi = formatDateID(*p.TanggalVerifikasi)
	}
	statusPembayaran := r.StatusPembayaran
	if statusPembayaran == "" {
		statusPembayaran = "Belum Ada Data"
	}

	return []any{
		p.NamaLengkap,
		p.NamaPanggilan,
		p.JenisKelamin,
		p.TempatLahir,
		formatTanggal(p.TanggalLahir),
		p.AlamatRumah,
		p.AnakKe,
		p.JumlahSaudara,
		derefOr(p.GolonganDarah, "-"),
		derefOr(p.PenyakitPernah, "-"),
		p.StatusMasuk,
		namaTpq,
		tanggalPindah,
		emptyOr(p.KelompokBelajar, "Belum Ditentukan"),
		derefOr(p.TingkatPembelajaran, "Belum Ditentukan"),
		p.NamaAyah,
		p.TempatLahirAyah,
		formatTanggal(p.TanggalLahirAyah),
		p.SukuAyah,
		p.PendidikanAyah,
		p.PekerjaanAyah,
		p.AlamatAyah,
		p.HpAyah,
		p.NamaIbu,
		p.TempatLahirIbu,
		formatTanggal(p.TanggalLahirIbu),
		p.SukuIbu,
		p.PendidikanIbu,
		p.PekerjaanIbu,
		p.AlamatIbu,
		p.HpIbu,
		formatDateID(p.TanggalDaftar),
		p.Status,
		statusVerifikasi,
		tanggalVerifikasi,
		statusPembayaran,
	}
}

// BuildWorkbook membentuk workbook siap-stream: header tebal berlatar abu,
// tinggi baris header 30, lebar kolom menyesuaikan isi (maks 50 karakter).
func BuildWorkbook(rows []ExportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	headerAny := make([]any, len(Headers))
	widths := make([]int, len(Headers))
	for i, h := range Headers {
		headerAny[i] = h
		widths[i] = len(h) + 2
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerAny); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := BuildRow(row)
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, addr, &cells); err != nil {
			return nil, err
		}
		for col, v := range cells {
			if w := len(fmt.Sprint(v)) + 2; w > widths[col] {
				widths[col] = w
			}
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "000000"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"CCCCCC"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(Headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", styleID); err != nil {
		return nil, err
	}
	if err := f.SetRowHeight(SheetName, 1, 30); err != nil {
		return nil, err
	}

	for i, w := range widths {
		if w > maxColWidth {
			w = maxColWidth
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(SheetName, col, col, float64(w)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Filename: Data_Pendaftar_TPQ_{d-m-yyyy}.xlsx
func Filename(now time.Time) string {
	return fmt.Sprintf("Data_Pendaftar_TPQ_%d-%d-%d.xlsx", now.Day(), int(now.Month()), now.Year())
}

// formatTanggal: kolom tanggal string (YYYY-MM-DD) ke gaya id-ID d/m/yyyy.
// Nilai yang tidak terparse ditampilkan apa adanya.
func formatTanggal(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return formatDateID(t)
}

func formatDateID(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func emptyOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
