package weather

import "time"

// MaxGraphHours caps the number of samples in an hourly outlook window.
const MaxGraphHours = 24

// HourlyWindow selects the samples feeding the outlook graph: everything from
// one hour before now through 24 hours ahead, inclusive, capped at
// MaxGraphHours entries. If nothing falls inside the window the first sample
// is returned alone so the graph always has something to show.
func HourlyWindow(samples []Sample, now time.Time) []Sample {
	if len(samples) == 0 {
		return nil
	}

	from := now.Add(-time.Hour)
	to := now.Add(24 * time.Hour)

	window := make([]Sample, 0, MaxGraphHours)
	for _, s := range samples {
		if s.Time.Before(from) || s.Time.After(to) {
			continue
		}
		window = append(window, s)
		if len(window) == MaxGraphHours {
			break
		}
	}

	if len(window) == 0 {
		return samples[:1]
	}
	return window
}
