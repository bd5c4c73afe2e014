package http_test

import (
	"errors"
	"net/http"
	"testing"

	v1Http "github.com/pixelmart-dev/go-backend/internal/delivery/v1/http"
	"github.com/pixelmart-dev/go-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrExpectedMultipart, http.StatusBadRequest},
		{e.ErrNoImages, http.StatusBadRequest},
		{e.ErrTooManyImages, http.StatusBadRequest},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.Wrap("ctx", e.ErrPostNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := v1Http.ToHTTPResponse(tc.err)
		if code != tc.code {
			t.Errorf("%v: want %d, got %d", tc.err, tc.code, code)
		}
		if msg == "" {
			t.Errorf("%v: empty message", tc.err)
		}
	}
}
