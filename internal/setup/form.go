package setup

import (
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"
)

// formData feeds the configuration form template with the current
// settings.
type formData struct {
	APIKey     string
	SSID       string
	Password   string
	Location   string
	Imperial   bool
	Frequency  int
	StartHours []hourOption
	StopHours  []hourOption
}

// hourOption is one choice in an hour select.
type hourOption struct {
	Value    string
	Label    string
	Selected bool
}

// hourOptions builds the choices for an hour select. noneValue is the
// hour the "none" option stands for: 0 for the first update of the day,
// 24 for the last.
func hourOptions(noneValue, selected int) []hourOption {
	opts := []hourOption{{Value: "none", Label: "12 AM/None", Selected: selected == noneValue}}
	for hour := 1; hour <= 23; hour++ {
		opts = append(opts, hourOption{
			Value:    strconv.Itoa(hour),
			Label:    hourLabel(hour),
			Selected: selected == hour,
		})
	}
	return opts
}

func hourLabel(hour int) string {
	switch {
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// errorPage lists every problem that kept the settings from saving.
func errorPage(msgs []string) string {
	var b strings.Builder
	b.WriteString(errorPageHead)
	for _, m := range msgs {
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(m))
		b.WriteString("</li>\n")
	}
	b.WriteString(errorPageFoot)
	return b.String()
}

var formTmpl = template.Must(template.New("setup").Parse(formPage))

const formPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Weather Station Setup</title>
<style>
body { font-family: Helvetica, sans-serif; margin: 0 auto; max-width: 480px; padding: 24px; text-align: center; }
h1 { color: #0f3376; }
.field { margin: 18px 0; text-align: left; }
label { display: block; font-weight: bold; margin-bottom: 4px; }
input, select { width: 100%; padding: 8px; font-size: 16px; box-sizing: border-box; }
.help { font-style: italic; font-size: 12px; color: #666; margin-top: 4px; }
.save { background: #4caf50; border: none; color: white; font-size: 20px; padding: 14px 40px; cursor: pointer; }
a.leave { display: inline-block; margin-top: 16px; color: #666; }
</style>
</head>
<body>
<h1>Weather Station Setup</h1>
<form action="/save" method="get">
<div class="field">
<label for="apikey">OpenWeatherMap API key</label>
<input type="text" id="apikey" name="apikey" value="{{.APIKey}}">
</div>
<div class="field">
<label for="ssid">Wi-Fi network</label>
<input type="text" id="ssid" name="ssid" value="{{.SSID}}">
</div>
<div class="field">
<label for="password">Wi-Fi password</label>
<input type="text" id="password" name="password" value="{{.Password}}">
</div>
<div class="field">
<label for="location">Location</label>
<input type="text" id="location" name="location" value="{{.Location}}">
<div class="help">In the format Town/City, State/Province, Country; example 'Chicago, IL, US'.</div>
</div>
<div class="field">
<label for="units">Units</label>
<select id="units" name="units">
<option value="M"{{if not .Imperial}} selected{{end}}>Metric</option>
<option value="I"{{if .Imperial}} selected{{end}}>Imperial</option>
</select>
</div>
<div class="field">
<label for="frequency">Update frequency (minutes)</label>
<input type="text" id="frequency" name="frequency" value="{{.Frequency}}">
</div>
<div class="field">
<label for="startHour">First update of the day</label>
<select id="startHour" name="startHour">
{{range .StartHours}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
</div>
<div class="field">
<label for="stopHour">Last update of the day</label>
<select id="stopHour" name="stopHour">
{{range .StopHours}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
</div>
<button class="save" type="submit">Save</button>
</form>
<p><a class="leave" href="/reboot">Leave setup without saving</a></p>
</body>
</html>
`

const savedPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Weather Station Setup</title></head>
<body style="font-family: Helvetica, sans-serif; text-align: center; padding: 24px;">
<h1>Settings saved</h1>
<p>The display refreshes with the new configuration shortly.</p>
<p><a href="/">Back to setup</a></p>
</body>
</html>
`

const closedPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Weather Station Setup</title></head>
<body style="font-family: Helvetica, sans-serif; text-align: center; padding: 24px;">
<h1>Setup closed</h1>
<p>No changes were saved. The station resumes its schedule.</p>
</body>
</html>
`

const errorPageHead = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Weather Station Setup</title></head>
<body style="font-family: Helvetica, sans-serif; text-align: center; padding: 24px;">
<h1>Settings not saved</h1>
<ul style="display: inline-block; text-align: left;">
`

const errorPageFoot = `</ul>
<p><a href="/">Back to setup</a></p>
</body>
</html>
`
