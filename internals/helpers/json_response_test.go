package helper

import "testing"

func TestClampPage(t *testing.T) {
	tests := []struct {
		page, totalPages, want int
	}{
		{0, 5, 1},
		{-3, 5, 1},
		{1, 5, 1},
		{5, 5, 5},
		{6, 5, 5},
		{99, 5, 5},
		{1, 0, 1},  // data kosong tetap satu halaman
		{7, -1, 1},
	}
	for _, tt := range tests {
		if got := ClampPage(tt.page, tt.totalPages); got != tt.want {
			t.Errorf("ClampPage(%d, %d) = %d, want %d", tt.page, tt.totalPages, got, tt.want)
		}
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	// 25 baris, 10 per halaman = 3 halaman
	p := BuildPaginationFromPage(25, 2, 10)
	if p.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("halaman tengah harus punya next dan prev: %+v", p)
	}

	// page di luar rentang di-clamp ke halaman terakhir
	p = BuildPaginationFromPage(25, 99, 10)
	if p.Page != 3 || p.HasNext {
		t.Errorf("page 99 harus jadi halaman terakhir tanpa next: %+v", p)
	}

	// data kosong
	p = BuildPaginationFromPage(0, 1, 10)
	if p.TotalPages != 1 || p.Page != 1 || p.HasNext || p.HasPrev {
		t.Errorf("data kosong harus satu halaman: %+v", p)
	}

	// pas di batas halaman
	p = BuildPaginationFromPage(30, 1, 10)
	if p.TotalPages != 3 {
		t.Errorf("30 baris / 10 = %d halaman, want 3", p.TotalPages)
	}
}
