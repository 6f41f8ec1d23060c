// file: internals/features/notification/whatsapp/service/whatsapp_service.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"tpqnurislam_backend/internals/configs"
	"tpqnurislam_backend/internals/features/registration/pendaftar/model"
	helper "tpqnurislam_backend/internals/helpers"
)

/* =======================================================================
   Pesan verifikasi
======================================================================= */

// FormatRupiah: pemisah ribuan titik gaya id-ID. 150000 -> "150.000".
func FormatRupiah(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// BuildVerificationMessage menyusun pesan konfirmasi pendaftaran yang
// dikirim admin setelah verifikasi. Baris Juz hanya muncul untuk
// kelompok Al-Quran.
func BuildVerificationMessage(p *model.PendaftarSantri, totalBiaya int) string {
	juzLine := ""
	if p.IsAlQuran() && p.JuzAlquran != nil {
		juzLine = fmt.Sprintf("Juz: %d", *p.JuzAlquran)
	}

	return fmt.Sprintf(`Assalamu'alaikum Wr. Wb.

Terima kasih telah mendaftarkan putra/putri Anda di TK/TP Al-Qur'an LPPTKA BKPRMI UNIT 004 Nur Islam.

Detail Pendaftaran:
Nama Santri: %s
Kelompok Belajar: %s
%s

Total Biaya: Rp %s

Silakan melakukan pembayaran ke rekening:
Bank BRI
No. Rek: 123456789
A.n: TPQ Nur Islam

Mohon segera melakukan pembayaran dan mengirimkan bukti pembayaran melalui WhatsApp ke nomor Admin: 081234567890

Wassalamu'alaikum Wr. Wb.`,
		p.NamaLengkap, p.KelompokBelajar, juzLine, FormatRupiah(totalBiaya))
}

// BuildWaLink: deep link wa.me ke nomor tujuan dengan pesan ter-encode.
func BuildWaLink(phone, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", helper.NormalizePhone(phone), encoded)
}

/* =======================================================================
   Pengirim via WhatsApp Business Cloud API
======================================================================= */

const graphAPIBase = "https://graph.facebook.com/v17.0"

type Sender struct {
	Client  *http.Client
	BaseURL string
}

func NewSender() *Sender {
	return &Sender{
		Client:  &http.Client{Timeout: 15 * time.Second},
		BaseURL: graphAPIBase,
	}
}

type textPayload struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

// Send mengirim pesan teks ke satu nomor lewat Cloud API resmi.
func (s *Sender) Send(ctx context.Context, phone, message string) (json.RawMessage, error) {
	if configs.WhatsAppAPIKey == "" {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "WHATSAPP_API_KEY belum dikonfigurasi")
	}
	if configs.WhatsAppPhoneNumberID == "" {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "WHATSAPP_PHONE_NUMBER_ID belum dikonfigurasi")
	}

	payload := textPayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               helper.NormalizePhone(phone),
		Type:             "text",
	}
	payload.Text.PreviewURL = false
	payload.Text.Body = message

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/messages", s.BaseURL, configs.WhatsAppPhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+configs.WhatsAppAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Gagal menghubungi WhatsApp API: "+err.Error())
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fiber.NewError(fiber.StatusBadGateway,
			fmt.Sprintf("WhatsApp API error (%d): %s", resp.StatusCode, string(respBody)))
	}
	return json.RawMessage(respBody), nil
}
