package render

import (
	"weather-station/internal/display"
	"weather-station/internal/fonts"
)

// The full-screen states shown instead of the dashboard when the
// station cannot produce one.

// DrawLowBattery fills the panel with a low battery warning.
func (c *Composer) DrawLowBattery() {
	c.centeredNotice("Low Battery")
}

// DrawNetworkError fills the panel with a fetch failure notice. Shown
// when no provider is reachable and no cached forecast exists.
func (c *Composer) DrawNetworkError() {
	c.centeredNotice("Network Connection Failed")
}

// DrawInvalidLocation tells the user the configured location did not
// geocode.
func (c *Composer) DrawInvalidLocation() {
	c.fault("Invalid Location String", "Go into setup mode to correct.")
}

// DrawInvalidAPIKey tells the user the weather provider rejected the
// configured key.
func (c *Composer) DrawInvalidAPIKey() {
	c.fault("Weather API Key Invalid", "Enter setup mode to enter a correct API key.")
}

// DrawSetup shows where to point a browser while the station is
// unconfigured. url is the address of the setup server.
func (c *Composer) DrawSetup(url string) {
	c.surf.Clear(display.White)
	centerX, centerY := c.opts.Width/2, c.opts.Height/2

	title := "Setup Mode"
	lines := [3]string{
		"Open " + url + " in a browser",
		"to configure this weather station.",
		"Settings apply on the next refresh.",
	}

	c.text.SetFace(fonts.Size24)
	titleH := c.text.Height(title)
	c.text.SetFace(fonts.Size18)
	lineH := c.text.Height(lines[0])
	lineSpacing := lineH + 10

	totalH := titleH + 20 + lineH*3 + lineSpacing*2
	startY := centerY - totalH/2

	c.text.SetFace(fonts.Size24)
	c.text.DrawString(centerX, startY, title, AlignCenter, display.Black)

	c.text.SetFace(fonts.Size18)
	lineY := startY + titleH + 20
	c.text.DrawString(centerX, lineY, lines[0], AlignCenter, display.Black)
	c.text.DrawString(centerX, lineY+lineSpacing, lines[1], AlignCenter, display.Black)
	c.text.DrawString(centerX, lineY+lineSpacing*2+4, lines[2], AlignCenter, display.Black)
}

func (c *Composer) centeredNotice(message string) {
	c.surf.Clear(display.White)
	c.text.SetFace(fonts.Size24)
	c.text.DrawString(c.opts.Width/2, c.opts.Height/2, message, AlignCenter, display.Black)
}

// fault draws a title a quarter down the panel with one line of
// instructions under it.
func (c *Composer) fault(title, body string) {
	c.surf.Clear(display.White)
	startY := c.opts.Height / 4
	c.text.SetFace(fonts.Size24)
	c.text.DrawString(c.opts.Width/2, startY, title, AlignCenter, display.Black)
	titleH := c.text.Height(title)
	c.text.SetFace(fonts.Size18)
	c.text.DrawString(c.opts.Width/2, startY+titleH+30, body, AlignCenter, display.Black)
}
