package util

import "github.com/fatih/color"

// The CLI palette: successful charges in green, failed ones in red,
// bold/underline for the report heading.
var colorsOptions = map[string]color.Attribute{
	"green":     color.FgGreen,
	"red":       color.FgHiRed,
	"bold":      color.Bold,
	"underline": color.Underline,
}

// ColorOutput renders text with the named attributes. Unknown names are
// skipped, so callers degrade to plain text rather than erroring.
func ColorOutput(text string, colorOptions ...string) string {
	attributes := make([]color.Attribute, 0, len(colorOptions))
	for _, option := range colorOptions {
		if attribute, ok := colorsOptions[option]; ok {
			attributes = append(attributes, attribute)
		}
	}
	return color.New(attributes...).Sprint(text)
}
