package weather

import "encoding/json"

// IconVariant identifies one of the closed set of display icons. Values are
// the numeric half of the OpenWeatherMap icon codes ("01".."50").
type IconVariant string

const (
	IconUnknown         IconVariant = ""
	IconClearSky        IconVariant = "01"
	IconFewClouds       IconVariant = "02"
	IconScatteredClouds IconVariant = "03"
	IconBrokenClouds    IconVariant = "04"
	IconShowerRain      IconVariant = "09"
	IconRain            IconVariant = "10"
	IconThunderstorm    IconVariant = "11"
	IconSnow            IconVariant = "13"
	IconMist            IconVariant = "50"
)

// Flavor distinguishes the day and night renditions of an icon.
type Flavor string

const (
	Day   Flavor = "d"
	Night Flavor = "n"
)

// Icon pairs a variant with its day/night flavor.
type Icon struct {
	Variant IconVariant
	Flavor  Flavor
}

// Code returns the OpenWeatherMap wire code, e.g. "10n".
// The zero Icon returns "".
func (ic Icon) Code() string {
	if ic.Variant == IconUnknown {
		return ""
	}
	return string(ic.Variant) + string(ic.Flavor)
}

// ParseIconCode parses an OpenWeatherMap icon code such as "01d" or "10n".
// Codes outside the known set yield the zero Icon.
func ParseIconCode(code string) Icon {
	if len(code) != 3 {
		return Icon{}
	}
	variant := IconVariant(code[:2])
	switch variant {
	case IconClearSky, IconFewClouds, IconScatteredClouds, IconBrokenClouds,
		IconShowerRain, IconRain, IconThunderstorm, IconSnow, IconMist:
	default:
		return Icon{}
	}
	switch flavor := Flavor(code[2:]); flavor {
	case Day, Night:
		return Icon{Variant: variant, Flavor: flavor}
	}
	return Icon{}
}

// MarshalJSON writes the icon as its wire code.
func (ic Icon) MarshalJSON() ([]byte, error) {
	return json.Marshal(ic.Code())
}

// UnmarshalJSON reads an icon wire code; unknown codes yield the zero Icon.
func (ic *Icon) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	*ic = ParseIconCode(code)
	return nil
}

// Daytime reports whether the given local hour gets day icons (06:00-17:59).
func Daytime(hour int) bool {
	return hour >= 6 && hour < 18
}

// Classify picks a display icon from aggregate daily conditions, in strict
// priority: snow, then storm-grade precipitation, then rain, then cloud cover
// bands. Precipitation amounts are in millimetres, cloud cover in percent.
func Classify(cloudCover, maxPOP, rain, snow float64, daytime bool) Icon {
	flavor := Night
	if daytime {
		flavor = Day
	}

	var variant IconVariant
	switch {
	case snow > 0.5:
		variant = IconSnow
	case maxPOP > 0.5 || rain > 2.0:
		variant = IconThunderstorm
	case maxPOP > 0.3 || rain > 0.5:
		variant = IconRain
	case cloudCover <= 10:
		variant = IconClearSky
	case cloudCover <= 25:
		variant = IconFewClouds
	case cloudCover <= 50:
		variant = IconScatteredClouds
	default:
		// Broken clouds doubles as the overcast icon.
		variant = IconBrokenClouds
	}
	return Icon{Variant: variant, Flavor: flavor}
}
