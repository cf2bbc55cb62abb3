package power

import (
	"os"
	"path/filepath"
	"testing"
)

// TestPercentEndpoints verifies the clamps at the full and empty thresholds.
func TestPercentEndpoints(t *testing.T) {
	tests := []struct {
		voltage float64
		want    int
	}{
		{4.5, 100},
		{4.2, 100},
		{3.2, 0},
		{3.0, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Percent(tt.voltage); got != tt.want {
			t.Errorf("Percent(%v) = %d, want %d", tt.voltage, got, tt.want)
		}
	}
}

// TestPercentCurve verifies the discharge curve rises with voltage over the
// fit's useful range. Below roughly 3.5 V the quartic swings wide and only
// the clamps keep it in bounds, so monotonicity is asserted from there up.
func TestPercentCurve(t *testing.T) {
	low, mid, high := Percent(3.4), Percent(3.7), Percent(4.0)
	if !(low < mid && mid < high) {
		t.Errorf("expected rising curve, got %d, %d, %d", low, mid, high)
	}
	if low <= 0 || high >= 100 {
		t.Errorf("expected interior values strictly between the clamps, got %d and %d", low, high)
	}

	prev := -1
	for mv := 3500; mv <= 4200; mv += 10 {
		pct := Percent(FromMillivolts(mv))
		if pct < prev {
			t.Fatalf("Percent(%v) = %d, below previous %d", FromMillivolts(mv), pct, prev)
		}
		prev = pct
	}
}

func TestCharging(t *testing.T) {
	if Charging(4.35) {
		t.Error("4.35 V should not read as charging")
	}
	if !Charging(4.4) {
		t.Error("4.4 V should read as charging")
	}
}

func TestLow(t *testing.T) {
	if !Low(3.2) {
		t.Error("3.2 V should read as low")
	}
	if Low(3.3) {
		t.Error("3.3 V should not read as low")
	}
	if Low(0) {
		t.Error("unknown voltage should not read as low")
	}
}

func TestFromMillivolts(t *testing.T) {
	if got := FromMillivolts(3870); got != 3.87 {
		t.Errorf("FromMillivolts(3870) = %v, want 3.87", got)
	}
}

// TestReadVoltage verifies the sysfs scan picks the first parseable
// microvolt reading and ignores everything else.
func TestReadVoltage(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"AC":   "not a number\n",
		"BAT0": "3870000\n",
	} {
		supply := filepath.Join(dir, name)
		if err := os.MkdirAll(supply, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(supply, "voltage_now"), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if got := readVoltage(filepath.Join(dir, "*", "voltage_now")); got != 3.87 {
		t.Errorf("readVoltage = %v, want 3.87", got)
	}
	if got := readVoltage(filepath.Join(dir, "missing", "voltage_now")); got != 0 {
		t.Errorf("readVoltage with no match = %v, want 0", got)
	}
}
