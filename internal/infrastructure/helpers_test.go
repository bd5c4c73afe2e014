package infrastructure_test

import (
	"errors"
	"testing"

	"github.com/pixelmart-dev/go-backend/internal/infrastructure"
	"github.com/pixelmart-dev/go-backend/pkg/e"
)

func TestGetExtensionFromMIME(t *testing.T) {
	cases := []struct {
		mime string
		ext  string
		err  error
	}{
		{"image/jpeg", "jpg", nil},
		{"image/jpg", "jpg", nil},
		{"image/png", "png", nil},
		{"image/webp", "webp", nil},
		{"image/gif", "gif", nil},
		{"image/avif", "avif", nil},
		{"application/pdf", "bin", e.ErrUnsupportedMediaType},
	}

	for _, tc := range cases {
		ext, err := infrastructure.GetExtensionFromMIME(tc.mime)
		if ext != tc.ext {
			t.Errorf("%s: want %s, got %s", tc.mime, tc.ext, ext)
		}
		if !errors.Is(err, tc.err) {
			t.Errorf("%s: want err %v, got %v", tc.mime, tc.err, err)
		}
	}
}
