package weather

import "strings"

// Report is the decoded current-weather response.
type Report struct {
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

type Location struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type Current struct {
	TempC      float64   `json:"temp_c"`
	Condition  Condition `json:"condition"`
	Humidity   int       `json:"humidity"`
	FeelslikeC float64   `json:"feelslike_c"`
	UV         float64   `json:"uv"`
}

type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// LargeIconURL returns a fetchable URL for the larger condition icon. The
// API hands out a protocol-relative 64x64 asset path; the CDN serves the
// same asset at 128x128.
func (c Condition) LargeIconURL() string {
	icon := strings.Replace(c.Icon, "64x64", "128x128", 1)
	if strings.HasPrefix(icon, "//") {
		icon = "https:" + icon
	}
	return icon
}
