package tablegraph

const (
	TimeFormatDefault TimeFormat = "MM/DD/YYYY HH:mm:ss.SS"
	TimeFormatCustom  TimeFormat = "Custom"

	// TimeFormatTooltipLink documents the tokens a custom format may use.
	TimeFormatTooltipLink = "http://momentjs.com/docs/#/parsing/string-format/"
)

const (
	FixFirstColumnDefault   = true
	VerticalTimeAxisDefault = true
)

// CellHorizontalPadding is added to every measured column, in pixels.
const CellHorizontalPadding = 18

// TimeFieldDefault is the field every table starts with.
var TimeFieldDefault = FieldName{
	InternalName: "time",
	DisplayName:  "",
	Visible:      true,
}

// FormatOptions are the time formats offered by the settings panel, in menu order.
var FormatOptions = []TimeFormat{
	TimeFormatDefault,
	"MM/DD/YYYY HH:mm",
	"MM/DD/YYYY",
	"h:mm:ss A",
	"h:mm A",
	"MMMM D, YYYY",
	"MMMM D, YYYY h:mm A",
	"dddd, MMMM D, YYYY h:mm A",
	TimeFormatCustom,
}

// NextFormatOption returns the option after current, wrapping around.
// Formats not in FormatOptions restart at the first entry.
func NextFormatOption(current TimeFormat) TimeFormat {
	for i, f := range FormatOptions {
		if f == current {
			return FormatOptions[(i+1)%len(FormatOptions)]
		}
	}
	return FormatOptions[0]
}
