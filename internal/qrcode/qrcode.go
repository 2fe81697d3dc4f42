// Package qrcode renders feedback-link QR images and bundles them into a
// downloadable zip archive.
package qrcode

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const imageSize = 512

// Entry is one QR image to render: the encoded URL plus the file name inside
// the archive (without extension).
type Entry struct {
	URL      string
	FileName string
}

// WriteZip renders one PNG per entry and streams them as a zip archive.
func WriteZip(w io.Writer, entries []Entry) error {
	zw := zip.NewWriter(w)

	for i, entry := range entries {
		png, err := qr.Encode(entry.URL, qr.Medium, imageSize)
		if err != nil {
			return fmt.Errorf("encode qr %q: %w", entry.URL, err)
		}

		name := sanitizeFileName(entry.FileName)
		if name == "" {
			name = fmt.Sprintf("qr-%d", i+1)
		}
		fw, err := zw.Create(name + ".png")
		if err != nil {
			return err
		}
		if _, err := fw.Write(png); err != nil {
			return err
		}
	}

	return zw.Close()
}

// sanitizeFileName strips path separators and characters zip viewers on
// Windows reject.
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-", "|", "-",
	)
	return replacer.Replace(name)
}
