package util_test

import (
	"encoding/json"
	"testing"
	"time"

	util "github.com/saulo-duarte/habits-lambda/internal/utils"
)

func TestParseDateOr(t *testing.T) {
	fallback := util.NewDate(2024, time.March, 10)

	t.Run("Valid", func(t *testing.T) {
		got := util.ParseDateOr("2024-02-29", fallback)
		if got.String() != "2024-02-29" {
			t.Errorf("esperado 2024-02-29, recebido %s", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if got := util.ParseDateOr("", fallback); !got.Equal(fallback) {
			t.Errorf("esperado fallback, recebido %s", got)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, s := range []string{"2024-13-01", "yesterday", "10/03/2024"} {
			if got := util.ParseDateOr(s, fallback); !got.Equal(fallback) {
				t.Errorf("%q: esperado fallback, recebido %s", s, got)
			}
		}
	})
}

func TestStartOfWeek(t *testing.T) {
	cases := map[string]string{
		"2024-06-10": "2024-06-10", // Monday
		"2024-06-12": "2024-06-10",
		"2024-06-16": "2024-06-10", // Sunday
		"2024-01-01": "2024-01-01",
		"2023-01-01": "2022-12-26",
	}
	for in, want := range cases {
		d, err := util.ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if got := d.StartOfWeek().String(); got != want {
			t.Errorf("StartOfWeek(%s) = %s, esperado %s", in, got, want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	if got := util.DaysIn(2024, time.February); got != 29 {
		t.Errorf("fevereiro bissexto: %d", got)
	}
	if got := util.DaysIn(2023, time.February); got != 28 {
		t.Errorf("fevereiro: %d", got)
	}
	if got := util.DaysIn(2023, time.December); got != 31 {
		t.Errorf("dezembro: %d", got)
	}
}

func TestAddDaysAcrossMonths(t *testing.T) {
	d := util.NewDate(2024, time.March, 1)
	if got := d.AddDays(-1).String(); got != "2024-02-29" {
		t.Errorf("esperado 2024-02-29, recebido %s", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := util.NewDate(2024, time.July, 4)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2024-07-04"` {
		t.Errorf("JSON incorreto: %s", b)
	}

	var back util.Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("esperado %s, recebido %s", d, back)
	}
}

func TestDateScan(t *testing.T) {
	var d util.Date

	if err := d.Scan("2024-05-06T00:00:00Z"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if d.String() != "2024-05-06" {
		t.Errorf("Scan string: %s", d)
	}

	if err := d.Scan(time.Date(2024, time.May, 7, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time: %v", err)
	}
	if d.String() != "2024-05-07" {
		t.Errorf("Scan time: %s", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("Scan deveria falhar para int")
	}
}
