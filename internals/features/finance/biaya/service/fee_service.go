// file: internals/features/finance/biaya/service/fee_service.go
package service

import (
	biayaModel "tpqnurislam_backend/internals/features/finance/biaya/model"
	pembayaranModel "tpqnurislam_backend/internals/features/finance/pembayaran/model"
	pendaftarModel "tpqnurislam_backend/internals/features/registration/pendaftar/model"
)

/*
Kalkulasi biaya pendaftaran.

Predikat eksklusi TUNGGAL dipakai oleh tampilan pra-submit, insert
pembayaran saat pendaftaran, dan sintesis pembayaran saat verifikasi,
total yang dilihat pendaftar dan yang tersimpan tidak boleh bergeser.
*/

// Excluded: item dilewati untuk kelompok belajar tertentu.
// Buku jalur Iqro tidak ditagih ke santri Al-Quran dan sebaliknya.
func Excluded(namaBiaya, kelompokBelajar string) bool {
	isAlQuran := kelompokBelajar == pendaftarModel.KelompokAlQuran
	switch namaBiaya {
	case biayaModel.BiayaBukuPrestasiIqro, biayaModel.BiayaBukuIqro:
		return isAlQuran
	case biayaModel.BiayaBukuPrestasiAlQuran:
		return !isAlQuran
	default:
		return false
	}
}

// FilterBiaya mengembalikan item yang tertagih untuk kelompok tsb,
// urutan input dipertahankan.
func FilterBiaya(items []biayaModel.BiayaPendaftaran, kelompokBelajar string) []biayaModel.BiayaPendaftaran {
	out := make([]biayaModel.BiayaPendaftaran, 0, len(items))
	for _, item := range items {
		if Excluded(item.NamaBiaya, kelompokBelajar) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// TotalBiaya menjumlahkan item tertagih. Deterministik dan tidak
// tergantung urutan input.
func TotalBiaya(items []biayaModel.BiayaPendaftaran, kelompokBelajar string) int {
	total := 0
	for _, item := range items {
		if Excluded(item.NamaBiaya, kelompokBelajar) {
			continue
		}
		total += item.Jumlah
	}
	return total
}

// DetailBiaya membekukan rincian {nama_biaya, jumlah} yang akan
// disimpan bersama baris pembayaran.
func DetailBiaya(items []biayaModel.BiayaPendaftaran, kelompokBelajar string) []pembayaranModel.DetailBiayaItem {
	filtered := FilterBiaya(items, kelompokBelajar)
	out := make([]pembayaranModel.DetailBiayaItem, 0, len(filtered))
	for _, item := range filtered {
		out = append(out, pembayaranModel.DetailBiayaItem{
			NamaBiaya: item.NamaBiaya,
			Jumlah:    item.Jumlah,
		})
	}
	return out
}
