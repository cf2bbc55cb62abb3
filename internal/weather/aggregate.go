package weather

import "time"

// MaxForecastDays caps the number of daily buckets produced by AggregateDaily.
const MaxForecastDays = 5

// DailyAggregate summarizes all forecast samples falling on one local day.
type DailyAggregate struct {
	Time     time.Time // first sample of the day; anchors the weekday label and day/night choice
	High     float64
	Low      float64
	CloudAvg float64
	MaxPOP   float64
	Rain     float64 // mm, summed over the day
	Snow     float64 // mm, summed over the day
	Periods  int
}

// Icon classifies the day's aggregate conditions, using the first period's
// local hour to choose the day or night flavor.
func (d DailyAggregate) Icon(offsetSeconds int) Icon {
	hour := d.Time.In(time.FixedZone("", offsetSeconds)).Hour()
	return Classify(d.CloudAvg, d.MaxPOP, d.Rain, d.Snow, Daytime(hour))
}

// AggregateDaily buckets samples by local day of year and reduces each day to
// its temperature extremes, averaged cloud cover, peak precipitation
// probability and summed precipitation. Samples must be ordered by time.
// At most MaxForecastDays buckets are produced; later samples are discarded.
func AggregateDaily(samples []Sample, offsetSeconds int) []DailyAggregate {
	if len(samples) == 0 {
		return nil
	}

	zone := time.FixedZone("", offsetSeconds)
	days := make([]DailyAggregate, 0, MaxForecastDays)
	lastYearDay := -1

	for _, s := range samples {
		yearDay := s.Time.In(zone).YearDay()
		if yearDay != lastYearDay {
			if len(days) == MaxForecastDays {
				break
			}
			if len(days) > 0 {
				closeDay(&days[len(days)-1])
			}
			days = append(days, DailyAggregate{
				Time:     s.Time,
				High:     s.TempMax,
				Low:      s.TempMin,
				CloudAvg: s.CloudCover,
				MaxPOP:   s.POP,
				Rain:     s.Rain,
				Snow:     s.Snow,
				Periods:  1,
			})
			lastYearDay = yearDay
			continue
		}

		d := &days[len(days)-1]
		if s.TempMax > d.High {
			d.High = s.TempMax
		}
		if s.TempMin < d.Low {
			d.Low = s.TempMin
		}
		d.CloudAvg += s.CloudCover
		d.Periods++
		if s.POP > d.MaxPOP {
			d.MaxPOP = s.POP
		}
		d.Rain += s.Rain
		d.Snow += s.Snow
	}

	closeDay(&days[len(days)-1])
	return days
}

// closeDay turns the accumulated cloud cover sum into the day's average.
func closeDay(d *DailyAggregate) {
	if d.Periods > 0 {
		d.CloudAvg /= float64(d.Periods)
	}
}
