package improvement

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatPercentageImprovement returns a signed percentage label,
// such as "+12%", "-3%" or "0%". Large values are digit grouped.
func FormatPercentageImprovement(percentage int) string {
	switch {
	case percentage > 0:
		return printer.Sprintf("+%d%%", percentage)
	case percentage < 0:
		return printer.Sprintf("-%d%%", -percentage)
	default:
		return "0%"
	}
}
