package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const maxMultipartMemory = 10 << 20

// RequestValues collects query, form (urlencoded or multipart) and JSON body fields into one set of
// string values. JSON numbers and booleans are rendered back to text so that
// every caller parses input the same way.
func RequestValues(r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, err
		}
		return r.Form, nil
	}
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return r.Form, nil
	}

	values := r.URL.Query()
	if r.Body == nil || r.ContentLength == 0 {
		return values, nil
	}

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return values, nil
		}
		return nil, err
	}
	for key, raw := range body {
		switch v := raw.(type) {
		case nil:
		case string:
			values.Set(key, v)
		case float64:
			values.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values, nil
}

// ParseFloatOr parses s as a finite number, returning fallback otherwise.
func ParseFloatOr(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}
