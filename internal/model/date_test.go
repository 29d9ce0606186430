package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDaysSince(t *testing.T) {
	a := NewDate(2025, time.March, 10)
	b := NewDate(2025, time.March, 8)

	if got := a.DaysSince(b); got != 2 {
		t.Errorf("a.DaysSince(b) = %d, want 2", got)
	}
	if got := b.DaysSince(a); got != -2 {
		t.Errorf("b.DaysSince(a) = %d, want -2", got)
	}
	if got := a.DaysSince(a); got != 0 {
		t.Errorf("a.DaysSince(a) = %d, want 0", got)
	}
}

func TestDateUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain date", `"2025-03-10"`, "2025-03-10"},
		{"iso datetime", `"2025-03-10T14:22:01"`, "2025-03-10"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tc.input), &d); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if d.String() != tc.want {
				t.Errorf("got %q, want %q", d.String(), tc.want)
			}
		})
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestDateMarshalAbsentAsNull(t *testing.T) {
	data, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("got %s, want null", data)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2025, time.December, 31)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed the date: %s -> %s", d, back)
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	// The backend serializes datetimes without a timezone suffix, with
	// and without fractional seconds.
	cases := []string{
		`"2025-03-10T14:22:01.123456"`,
		`"2025-03-10T14:22:01"`,
		`"2025-03-10T14:22:01Z"`,
	}

	for _, input := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(input), &ts); err != nil {
			t.Errorf("unmarshal %s: %v", input, err)
			continue
		}
		if ts.Year() != 2025 || ts.Hour() != 14 {
			t.Errorf("unmarshal %s: got %v", input, ts.Time)
		}
	}
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`null`), &ts); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !ts.IsZero() {
		t.Error("null did not produce a zero timestamp")
	}
}
