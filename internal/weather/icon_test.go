package weather

import "testing"

// TestClassifyPriority verifies the fixed precedence snow > storm > rain >
// cloud bands, including the band edges.
func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		name                   string
		cloud, pop, rain, snow float64
		daytime                bool
		want                   string
	}{
		{"snow wins over everything", 90, 0.9, 5, 0.6, true, "13d"},
		{"storm on high pop", 20, 0.6, 0, 0, true, "11d"},
		{"storm on heavy rain", 5, 0, 2.5, 0, false, "11n"},
		{"rain on moderate pop", 5, 0.4, 0, 0, true, "10d"},
		{"rain on light rain", 5, 0, 0.6, 0, true, "10d"},
		{"thresholds are exclusive", 5, 0.3, 0.5, 0.5, true, "01d"},
		{"clear sky band edge", 10, 0, 0, 0, true, "01d"},
		{"few clouds", 25, 0, 0, 0, true, "02d"},
		{"scattered clouds", 50, 0, 0, 0, false, "03n"},
		{"broken clouds", 75, 0, 0, 0, true, "04d"},
		{"overcast collapses to broken clouds", 100, 0, 0, 0, true, "04d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.cloud, tt.pop, tt.rain, tt.snow, tt.daytime)
			if got.Code() != tt.want {
				t.Errorf("Classify(%v, %v, %v, %v, %v) = %q, want %q",
					tt.cloud, tt.pop, tt.rain, tt.snow, tt.daytime, got.Code(), tt.want)
			}
		})
	}
}

// TestParseIconCode verifies the wire codes round-trip and that anything
// outside the closed set maps to the zero icon.
func TestParseIconCode(t *testing.T) {
	valid := []string{
		"01d", "01n", "02d", "02n", "03d", "03n", "04d", "04n",
		"09d", "09n", "10d", "10n", "11d", "11n", "13d", "13n", "50d", "50n",
	}
	for _, code := range valid {
		if got := ParseIconCode(code).Code(); got != code {
			t.Errorf("ParseIconCode(%q).Code() = %q", code, got)
		}
	}

	invalid := []string{"", "01", "01x", "99d", "1d", "01D", "010d"}
	for _, code := range invalid {
		if got := ParseIconCode(code); got != (Icon{}) {
			t.Errorf("ParseIconCode(%q) = %+v, want zero icon", code, got)
		}
	}
}

func TestDaytime(t *testing.T) {
	for hour, want := range map[int]bool{0: false, 5: false, 6: true, 12: true, 17: true, 18: false, 23: false} {
		if got := Daytime(hour); got != want {
			t.Errorf("Daytime(%d) = %v, want %v", hour, got, want)
		}
	}
}
