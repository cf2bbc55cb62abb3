package render

import (
	"math"

	"weather-station/internal/display"
	"weather-station/internal/fonts"
	"weather-station/internal/weather"
)

// Base scales of the two icon sizes. Every shape in an icon is a
// multiple of the scale, so the same artwork serves the large
// current-conditions panel and the small forecast cards.
const (
	iconLarge = 25
	iconSmall = 15
)

// DrawIcon draws the artwork for ic centered near (x, y). Unknown
// variants get a question mark so a bad code never blanks the panel.
func (c *Composer) DrawIcon(x, y int, ic weather.Icon, large bool) {
	night := ic.Flavor == weather.Night
	switch ic.Variant {
	case weather.IconClearSky:
		c.clearSky(x, y, large, night)
	case weather.IconFewClouds:
		c.fewClouds(x, y, large, night)
	case weather.IconScatteredClouds:
		c.scatteredClouds(x, y, large, night)
	case weather.IconBrokenClouds:
		c.brokenClouds(x, y, large, night)
	case weather.IconShowerRain:
		c.showerRain(x, y, large, night)
	case weather.IconRain:
		c.rainy(x, y, large, night)
	case weather.IconThunderstorm:
		c.thunderstorm(x, y, large, night)
	case weather.IconSnow:
		c.snowy(x, y, large, night)
	case weather.IconMist:
		c.mist(x, y, large, night)
	default:
		c.unknown(x, y, large)
	}
}

func (c *Composer) clearSky(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	scale, factor := iconSmall, 1.2
	if large {
		scale, factor = iconLarge, 1.7
	} else {
		y += 10
	}
	c.sun(x, y, int(float64(scale)*factor))
}

func (c *Composer) fewClouds(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	y += 15
	scale, factor := iconSmall, 0.8
	if large {
		scale, factor = iconLarge, 0.9
		x += 10
	}
	c.cloud(x, y, int(float64(scale)*factor), 5)
	c.sun(int(float64(x)-float64(scale)*1.8), int(float64(y)-float64(scale)*1.6), scale)
}

func (c *Composer) scatteredClouds(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	y += 15
	scale := iconSmall
	smallX, yFactor := x, 0.93
	if large {
		scale = iconLarge
		smallX, yFactor = x-35, 0.75
	}
	c.cloud(smallX, int(float64(y)*yFactor), scale/2, 5)
	c.cloud(x, y, int(float64(scale)*0.9), 5)
}

func (c *Composer) brokenClouds(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	y += 15
	scale, factor := iconSmall, 0.75
	if large {
		scale, factor = iconLarge, 1.0
	}
	c.sun(int(float64(x)-float64(scale)*1.8), int(float64(y)-float64(scale)*1.8), scale)
	c.cloud(x, y, int(float64(scale)*factor), 5)
}

func (c *Composer) showerRain(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	y += 15
	scale, factor := iconSmall, 0.65
	if large {
		scale, factor = iconLarge, 1.0
	}
	c.sun(int(float64(x)-float64(scale)*1.8), int(float64(y)-float64(scale)*1.8), scale)
	c.cloud(x, y, int(float64(scale)*factor), 5)
	c.rainStreaks(x, y, large)
}

func (c *Composer) rainy(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	y += 15
	scale, factor := iconSmall, 0.75
	if large {
		scale, factor = iconLarge, 1.0
	}
	c.cloud(x, y, int(float64(scale)*factor), 5)
	c.rainStreaks(x, y, large)
}

func (c *Composer) thunderstorm(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	y += 5
	scale, factor := iconSmall, 0.75
	if large {
		scale, factor = iconLarge, 1.0
	}
	c.cloud(x, y, int(float64(scale)*factor), 5)
	c.storm(x, y, scale)
}

func (c *Composer) snowy(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	scale, factor := iconSmall, 0.75
	if large {
		scale, factor = iconLarge, 1.0
	}
	c.cloud(x, y, int(float64(scale)*factor), 5)
	c.snowFlakes(x, y, large)
}

func (c *Composer) mist(x, y int, large, night bool) {
	if night {
		c.moon(x, y, large)
	}
	scale, factor := iconSmall, 0.75
	if large {
		scale, factor = iconLarge, 1.0
	}
	c.sun(x, y, int(float64(scale)*factor))
	c.fog(x, y, scale, 5, large)
}

func (c *Composer) unknown(x, y int, large bool) {
	if large {
		c.text.SetFace(fonts.Size24)
	} else {
		c.text.SetFace(fonts.Size12)
	}
	c.text.DrawString(x-3, y-10, "?", AlignCenter, display.Black)
}

// cloud draws a puffy cloud of four overlapping circles: black filled
// shapes first, then slightly smaller white ones to leave an outline.
func (c *Composer) cloud(x, y, scale, thickness int) {
	sx := float64(scale)
	fx, fy := float64(x), float64(y)
	c.surf.FillCircle(x-scale*3, y, scale, display.Black)
	c.surf.FillCircle(x+scale*3, y, scale, display.Black)
	c.surf.FillCircle(x-scale, y-scale, int(sx*1.4), display.Black)
	c.surf.FillCircle(int(fx+sx*1.5), int(fy-sx*1.3), int(sx*1.75), display.Black)
	c.surf.FillRect(x-scale*3-1, y-scale, scale*6, scale*2+1, display.Black)
	c.surf.FillCircle(x-scale*3, y, scale-thickness, display.White)
	c.surf.FillCircle(x+scale*3, y, scale-thickness, display.White)
	c.surf.FillCircle(x-scale, y-scale, int(sx*1.4)-thickness, display.White)
	c.surf.FillCircle(int(fx+sx*1.5), int(fy-sx*1.3), int(sx*1.75)-thickness, display.White)
	c.surf.FillRect(x-scale*3+2, y-scale+thickness-1, int(sx*5.9), scale*2-thickness*2+2, display.White)
}

// sun draws a circle with horizontal, vertical and diagonal rays.
func (c *Composer) sun(x, y, scale int) {
	const thickness = 5
	sx := float64(scale)
	fx, fy := float64(x), float64(y)
	c.surf.FillRect(x-scale*2, y, scale*4, thickness, display.Black)
	c.surf.FillRect(x, y-scale*2, thickness, scale*4, display.Black)
	c.angledLine(int(fx+sx*1.4), int(fy+sx*1.4), int(fx-sx*1.4), int(fy-sx*1.4), thickness*3/2, display.Black)
	c.angledLine(int(fx-sx*1.4), int(fy+sx*1.4), int(fx+sx*1.4), int(fy-sx*1.4), thickness*3/2, display.Black)
	c.surf.FillCircle(x, y, int(sx*1.3), display.White)
	c.surf.FillCircle(x, y, scale, display.Black)
	c.surf.FillCircle(x, y, scale-thickness, display.White)
}

// moon draws a crescent above and to the side of the icon proper.
func (c *Composer) moon(x, y int, large bool) {
	xOffset, yOffset := 65, 12
	if large {
		xOffset, yOffset = 130, -40
	}
	c.surf.FillCircle(x-28+xOffset, y-37+yOffset, iconSmall, display.Black)
	c.surf.FillCircle(x-16+xOffset, y-37+yOffset, int(float64(iconSmall)*1.6), display.White)
}

// rainStreaks slants a run of slashes under a cloud.
func (c *Composer) rainStreaks(x, y int, large bool) {
	if large {
		c.text.SetFace(fonts.Size18)
		c.text.DrawString(x-60, y+25, "///////", AlignLeft, display.Black)
	} else {
		c.text.SetFace(fonts.Size8)
		c.text.DrawString(x-25, y+12, "///////", AlignLeft, display.Black)
	}
}

// snowFlakes scatters asterisks under a cloud.
func (c *Composer) snowFlakes(x, y int, large bool) {
	if large {
		c.text.SetFace(fonts.Size18)
		c.text.DrawString(x-60, y+30, "* * * *", AlignLeft, display.Black)
	} else {
		c.text.SetFace(fonts.Size8)
		c.text.DrawString(x-25, y+15, "* * * *", AlignLeft, display.Black)
	}
}

// storm draws four lightning bolts, each three pixels thick.
func (c *Composer) storm(x, y, scale int) {
	y += scale / 2
	sx := float64(scale)
	fx, fy := float64(x), float64(y)
	yTop := y + scale
	yMid := int(fy + sx*1.5)
	yLow := int(fy + sx*2.5)
	for i := 1; i < 5; i++ {
		fi := float64(i)
		x0 := int(fx + sx*fi*1.5 - sx*4)
		x1 := int(fx + sx*fi*1.5 - sx*3.5)
		x2 := int(fx + sx*fi*1.5 - sx*3)
		x3 := int(fx + sx*fi*1.4 - sx*3.5)
		for k := 0; k < 3; k++ {
			c.surf.Line(x0+k, yMid, x1+k, yTop, display.Black)
		}
		for k := 0; k < 3; k++ {
			c.surf.Line(x0, yMid+k, x2, yMid+k, display.Black)
		}
		for k := 0; k < 3; k++ {
			c.surf.Line(x3+k, yLow, x2+k, yMid, display.Black)
		}
	}
}

// fog draws three horizontal bands below the icon center.
func (c *Composer) fog(x, y, scale, thickness int, large bool) {
	if !large {
		thickness = 3
	}
	sx := float64(scale)
	fy := float64(y)
	c.surf.FillRect(x-scale*3, int(fy+sx*1.5), scale*6, thickness, display.Black)
	c.surf.FillRect(x-scale*3, y+scale*2, scale*6, thickness, display.Black)
	c.surf.FillRect(x-scale*3, int(fy+sx*2.5), scale*6, thickness, display.Black)
}

// angledLine draws a thick line as two triangles spanning a
// perpendicular offset of size/2 at each endpoint.
func (c *Composer) angledLine(x0, y0, x1, y1, size int, shade uint8) {
	dist := math.Sqrt(float64((x0-x1)*(x0-x1) + (y0-y1)*(y0-y1)))
	if dist == 0 {
		return
	}
	dx := int(float64(size) / 2.0 * float64(x0-x1) / dist)
	dy := int(float64(size) / 2.0 * float64(y0-y1) / dist)
	c.surf.FillTriangle(x0+dx, y0-dy, x0-dx, y0+dy, x1+dx, y1-dy, shade)
	c.surf.FillTriangle(x0-dx, y0+dy, x1-dx, y1+dy, x1+dx, y1-dy, shade)
}
