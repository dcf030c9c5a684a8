package config_test

import (
	"bytes"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/habits-lambda/internal/config"
)

func TestRequestValues(t *testing.T) {
	t.Run("Form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x?date=2024-06-12", strings.NewReader("amount=2.5"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		values, err := config.RequestValues(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if values.Get("amount") != "2.5" || values.Get("date") != "2024-06-12" {
			t.Errorf("valores incorretos: %v", values)
		}
	})

	t.Run("Multipart", func(t *testing.T) {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		mw.WriteField("amount", "5")
		mw.WriteField("date", "2024-06-12")
		mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/x", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		values, err := config.RequestValues(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if values.Get("amount") != "5" || values.Get("date") != "2024-06-12" {
			t.Errorf("valores incorretos: %v", values)
		}
	})

	t.Run("MultipartInvalido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("sem fronteira"))
		req.Header.Set("Content-Type", "multipart/form-data")

		if _, err := config.RequestValues(req); err == nil {
			t.Error("esperava erro para multipart sem boundary")
		}
	})

	t.Run("JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"amount":3,"date":"2024-06-12","note":null,"flag":true}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		values, err := config.RequestValues(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if values.Get("amount") != "3" {
			t.Errorf("amount incorreto: %q", values.Get("amount"))
		}
		if values.Get("flag") != "true" {
			t.Errorf("flag incorreta: %q", values.Get("flag"))
		}
		if values.Has("note") {
			t.Error("null não deveria gerar valor")
		}
	})

	t.Run("JSONVazio", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.Header.Set("Content-Type", "application/json")

		values, err := config.RequestValues(req)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if len(values) != 0 {
			t.Errorf("esperava valores vazios, obteve %v", values)
		}
	})

	t.Run("JSONInvalido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"amount":`))
		req.Header.Set("Content-Type", "application/json")

		if _, err := config.RequestValues(req); err == nil {
			t.Error("esperava erro para JSON inválido")
		}
	})
}

func TestParseFloatOr(t *testing.T) {
	cases := map[string]float64{
		"":      1,
		"abc":   1,
		"NaN":   1,
		"+Inf":  1,
		" 2.5 ": 2.5,
		"-3":    -3,
		"0":     0,
	}
	for in, want := range cases {
		if got := config.ParseFloatOr(in, 1); got != want || math.IsNaN(got) {
			t.Errorf("ParseFloatOr(%q) = %v, esperado %v", in, got, want)
		}
	}
}
