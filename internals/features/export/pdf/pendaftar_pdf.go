// file: internals/features/export/pdf/pendaftar_pdf.go
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

const fetchTimeout = 10 * time.Second

var bulanID = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// ImageFetcher mengambil isi dokumen dari URL publik storage.
// Dipisah supaya renderer bisa dites tanpa jaringan.
type ImageFetcher func(ctx context.Context, url string) ([]byte, string, error)

// FetchImage: fetcher default lewat HTTP.
func FetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, "", err
	}
	return body, imageType(url, resp.Header.Get("Content-Type")), nil
}

func imageType(url, contentType string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return "PNG"
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "JPG"
	}
	lower := strings.ToLower(url)
	if idx := strings.IndexByte(lower, '?'); idx >= 0 {
		lower = lower[:idx]
	}
	if strings.HasSuffix(lower, ".png") {
		return "PNG"
	}
	return "JPG"
}

// FormatDateID: "2006-01-02" atau time ke "2 Januari 2006".
func FormatDateID(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), bulanID[int(t.Month())-1], t.Year())
}

func formatTanggal(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return FormatDateID(t)
}

/* =======================================================================
   Renderer
======================================================================= */

type Renderer struct {
	Fetch ImageFetcher
}

func NewRenderer() *Renderer {
	return &Renderer{Fetch: FetchImage}
}

// Render membentuk PDF formulir: halaman data santri, halaman orang tua,
// lalu halaman dokumen. Dokumen yang gagal diambil dilewati dengan log,
// formulirnya tetap jadi.
func (r *Renderer) Render(ctx context.Context, p *model.PendaftarSantri) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(14, 14, 14)
	doc.SetAutoPageBreak(true, 14)

	r.pageDataSantri(doc, p)
	r.pageOrangTua(doc, p)
	r.pageDokumen(ctx, doc, p)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func title(doc *gofpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(0, 10, text, "", 1, "C", false, 0, "")
	doc.Ln(4)
}

func sectionTitle(doc *gofpdf.Fpdf, text string) {
	doc.SetFont("Helvetica", "", 14)
	doc.CellFormat(0, 8, text, "", 1, "C", false, 0, "")
	doc.Ln(2)
}

func row(doc *gofpdf.Fpdf, label, value string) {
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(54, 7, label, "", 0, "L", false, 0, "")
	doc.SetFont("Helvetica", "", 12)
	doc.MultiCell(0, 7, ": "+value, "", "L", false)
}

func (r *Renderer) pageDataSantri(doc *gofpdf.Fpdf, p *model.PendaftarSantri) {
	doc.AddPage()
	title(doc, "Data Pendaftaran Santri")

	sectionTitle(doc, "Data Pribadi")
	row(doc, "Nama Lengkap", p.NamaLengkap)
	row(doc, "Nama Panggilan", p.NamaPanggilan)
	row(doc, "Jenis Kelamin", p.JenisKelamin)
	row(doc, "Tempat Lahir", p.TempatLahir)
	row(doc, "Tanggal Lahir", formatTanggal(p.TanggalLahir))
	row(doc, "Alamat", p.AlamatRumah)
	row(doc, "Anak Ke", fmt.Sprintf("%d dari %d bersaudara", p.AnakKe, p.JumlahSaudara))
	row(doc, "Golongan Darah", derefOr(p.GolonganDarah, "-"))
	row(doc, "Riwayat Penyakit", derefOr(p.PenyakitPernah, "-"))
	doc.Ln(6)

	sectionTitle(doc, "Data Pendaftaran")
	row(doc, "Status Masuk", p.StatusMasuk)
	if p.IsPindahan() {
		row(doc, "TPQ Sebelumnya", derefOr(p.NamaTpqSebelum, "-"))
		tanggal := "-"
		if p.TanggalPindah != nil {
			tanggal = formatTanggal(*p.TanggalPindah)
		}
		row(doc, "Tanggal Pindah", tanggal)
	}
	row(doc, "Kelompok Belajar", emptyOr(p.KelompokBelajar, "-"))
	if p.IsAlQuran() && p.JuzAlquran != nil {
		row(doc, "Juz Al-Quran", fmt.Sprintf("Juz %d", *p.JuzAlquran))
	} else if p.TingkatPembelajaran != nil {
		row(doc, "Tingkat Pembelajaran", *p.TingkatPembelajaran)
	}
	row(doc, "Tanggal Daftar", FormatDateID(p.TanggalDaftar))
	row(doc, "Status", p.Status)
	if p.IsVerified {
		row(doc, "Status Verifikasi", "Terverifikasi")
		if p.TanggalVerifikasi != nil {
			row(doc, "Tanggal Verifikasi", FormatDateID(*p.TanggalVerifikasi))
		}
	} else {
		row(doc, "Status Verifikasi", "Belum Terverifikasi")
	}
}

func (r *Renderer) pageOrangTua(doc *gofpdf.Fpdf, p *model.PendaftarSantri) {
	doc.AddPage()
	title(doc, "Data Orang Tua Santri")
	doc.SetFont("Helvetica", "", 14)
	doc.CellFormat(0, 8, p.NamaLengkap, "", 1, "C", false, 0, "")
	doc.Ln(4)

	sectionTitle(doc, "Data Ayah")
	row(doc, "Nama Lengkap", p.NamaAyah)
	row(doc, "Tempat Lahir", p.TempatLahirAyah)
	row(doc, "Tanggal Lahir", formatTanggal(p.TanggalLahirAyah))
	row(doc, "Suku", p.SukuAyah)
	row(doc, "Pendidikan", p.PendidikanAyah)
	row(doc, "Pekerjaan", p.PekerjaanAyah)
	row(doc, "Alamat", p.AlamatAyah)
	row(doc, "No. HP", p.HpAyah)
	doc.Ln(6)

	sectionTitle(doc, "Data Ibu")
	row(doc, "Nama Lengkap", p.NamaIbu)
	row(doc, "Tempat Lahir", p.TempatLahirIbu)
	row(doc, "Tanggal Lahir", formatTanggal(p.TanggalLahirIbu))
	row(doc, "Suku", p.SukuIbu)
	row(doc, "Pendidikan", p.PendidikanIbu)
	row(doc, "Pekerjaan", p.PekerjaanIbu)
	row(doc, "Alamat", p.AlamatIbu)
	row(doc, "No. HP", p.HpIbu)
}

func (r *Renderer) pageDokumen(ctx context.Context, doc *gofpdf.Fpdf, p *model.PendaftarSantri) {
	type dokumen struct {
		judul      string
		keterangan string
		url        *string
	}
	items := []dokumen{
		{"Foto Akta Kelahiran", "Dokumen Akta Kelahiran " + p.NamaLengkap, p.FotoAkte},
		{"Foto Kartu Keluarga", "Dokumen Kartu Keluarga " + p.NamaLengkap, p.FotoKK},
		{"Foto 3x4", "Foto 3x4 Santri " + p.NamaLengkap, p.Foto3x4},
		{"Foto 2x4", "Foto 2x4 Santri " + p.NamaLengkap, p.Foto2x4},
	}

	added := false
	for i, d := range items {
		if d.url == nil || *d.url == "" {
			continue
		}
		data, typ, err := r.Fetch(ctx, *d.url)
		if err != nil {
			log.Printf("[WARNING] Gagal mengambil dokumen %q: %v", d.judul, err)
			continue
		}
		if !added {
			doc.AddPage()
			added = true
		}

		name := fmt.Sprintf("dokumen-%d", i)
		doc.RegisterImageOptionsReader(name,
			gofpdf.ImageOptions{ImageType: typ, ReadDpi: true},
			bytes.NewReader(data))
		if doc.Err() {
			log.Printf("[WARNING] Dokumen %q tidak bisa dirender: %v", d.judul, doc.Error())
			doc.ClearError()
			continue
		}

		doc.SetTextColor(37, 99, 235)
		doc.SetFont("Helvetica", "B", 14)
		doc.CellFormat(0, 8, d.judul, "", 1, "L", false, 0, "")
		doc.SetTextColor(0, 0, 0)
		doc.SetFont("Helvetica", "", 12)
		doc.CellFormat(0, 6, d.keterangan, "", 1, "L", false, 0, "")
		doc.ImageOptions(name, 14, doc.GetY()+2, 182, 70,
			false, gofpdf.ImageOptions{ImageType: typ}, 0, "")
		doc.SetY(doc.GetY() + 80)
	}
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
