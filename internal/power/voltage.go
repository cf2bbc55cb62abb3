package power

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sysfsVoltagePattern = "/sys/class/power_supply/*/voltage_now"

// ReadVoltage reports the battery voltage from the kernel power-supply class,
// or 0 when no readable supply exposes one. Best effort: a host without a
// battery simply reads as unknown.
func ReadVoltage() float64 {
	return readVoltage(sysfsVoltagePattern)
}

func readVoltage(pattern string) float64 {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return 0
	}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// sysfs reports microvolts.
		uv, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		if err != nil || uv <= 0 {
			continue
		}
		return float64(uv) / 1e6
	}
	return 0
}
