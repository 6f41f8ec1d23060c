package constants

import (
	"path/filepath"
	"strings"
)

// Ekstensi dokumen pendaftaran yang diterima form upload.
var AllowedDocumentExts = []string{".jpg", ".jpeg", ".png", ".webp"}

func IsAllowedDocumentExt(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedDocumentExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
