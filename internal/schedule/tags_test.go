package schedule

import "testing"

func TestTagFor(t *testing.T) {
	cases := []struct {
		eventType string
		want      Tag
		matched   bool
	}{
		{"vitaminas_dia3", TagVitaminas, true},
		{"cambio_engorde", TagAlimento, true},
		{"aplicacion_melaza", TagMelaza, true},
		{"salida_estimada", TagSalida, true},
		{"pesaje_semanal", "", false},
	}

	for _, tc := range cases {
		got, ok := TagFor(tc.eventType)
		if ok != tc.matched {
			t.Errorf("TagFor(%q) matched = %v, want %v", tc.eventType, ok, tc.matched)
			continue
		}
		if got != tc.want {
			t.Errorf("TagFor(%q) = %q, want %q", tc.eventType, got, tc.want)
		}
	}
}

func TestTagForFirstMatchWins(t *testing.T) {
	// An event type matching several patterns takes the earliest rule.
	got, ok := TagFor("vitaminas_con_melaza")
	if !ok {
		t.Fatal("expected a match")
	}
	if got != TagVitaminas {
		t.Errorf("got %q, want %q", got, TagVitaminas)
	}
}
