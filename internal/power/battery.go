package power

// Li-ion discharge curve thresholds, volts.
const (
	fullVoltage     = 4.20
	emptyVoltage    = 3.20
	chargingVoltage = 4.35
)

// Percent estimates the remaining charge of a single-cell Li-ion battery from
// its voltage. The curve is a quartic fit to a typical discharge profile,
// clamped to [0, 100]; at or above 4.20 V the cell reads full, at or below
// 3.20 V empty.
func Percent(voltage float64) int {
	if voltage >= fullVoltage {
		return 100
	}
	if voltage <= emptyVoltage {
		return 0
	}

	v := voltage
	pct := 2836.9625*v*v*v*v - 43987.4889*v*v*v + 255233.8134*v*v - 656689.7123*v + 632041.7303
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return int(pct)
}

// Charging reports whether the voltage indicates an attached charger.
func Charging(voltage float64) bool {
	return voltage > chargingVoltage
}

// Low reports whether the cell is too depleted to keep refreshing the panel.
func Low(voltage float64) bool {
	return voltage > 0 && voltage <= emptyVoltage
}

// FromMillivolts converts an ADC-style millivolt reading to volts.
func FromMillivolts(mv int) float64 {
	return float64(mv) / 1000
}
