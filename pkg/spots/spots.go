// Package spots defines the fixed set of coastal spots a report is
// generated for.
package spots

import "time"

// Spot is a named coastal location. Webcam is trusted iframe markup
// embedded verbatim in the spot's page. TZ is the timezone the spot's
// forecast is presented in.
type Spot struct {
	Name   string
	Lat    float64
	Long   float64
	Webcam string
	TZ     *time.Location
}

var canary = locationOrPanic("Atlantic/Canary")

// All lists every spot, in report order. The set is fixed at compile
// time and names are unique.
var All = []Spot{
	{
		Name:   "Las Palmas",
		Lat:    28.1272,
		Long:   -15.4314,
		Webcam: `<iframe src="https://in2thebeach.es/callbacks/camviewer_ext2.php?id=57" scrolling="no"></iframe>`,
		TZ:     canary,
	},
	{
		Name:   "Telde",
		Lat:    27.9924,
		Long:   -15.4192,
		Webcam: `<iframe src="https://in2thebeach.es/callbacks/camviewer_ext2.php?id=43" scrolling="no"></iframe>`,
		TZ:     canary,
	},
	{
		Name:   "Arguineguín",
		Lat:    27.7581,
		Long:   -15.6835,
		Webcam: `<iframe src="https://in2thebeach.es/callbacks/camviewer_ext2.php?id=71" scrolling="no"></iframe>`,
		TZ:     canary,
	},
}

// BySlug finds the spot whose slugged name matches.
func BySlug(slug string) (Spot, bool) {
	for _, s := range All {
		if Slug(s.Name) == slug {
			return s, true
		}
	}
	return Spot{}, false
}

func locationOrPanic(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
