package forms

import "testing"

func TestPreviewTotal(t *testing.T) {
	cases := []struct {
		qty, price string
		want       string
	}{
		{"150.5", "2.0", "301.00"},
		{"10", "3.5", "35.00"},
		{"", "2.0", "—"},
		{"abc", "2.0", "—"},
		{"10", "", "—"},
	}

	for _, tc := range cases {
		if got := previewTotal(tc.qty, tc.price); got != tc.want {
			t.Errorf("previewTotal(%q, %q) = %q, want %q", tc.qty, tc.price, got, tc.want)
		}
	}
}

func TestDateValidation(t *testing.T) {
	if err := validDate("2025-03-10"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if err := validDate("10/03/2025"); err == nil {
		t.Error("slash-formatted date accepted")
	}
	if err := validOptionalDate(""); err != nil {
		t.Errorf("empty optional date rejected: %v", err)
	}
}
