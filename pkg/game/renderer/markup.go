package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Shared color styles. Backends reuse these so messages and frame
// elements stay consistent.
var (
	ColorCell   = color.Style{color.FgGray}
	ColorAction = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorItem   = color.Style{color.FgGreen, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorStairs = color.Style{color.FgYellow, color.OpBold}
)

var regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:.'!-]+)}`)

// dynamicGet is used for runtime translation key lookups.
// A function variable avoids go vet's non-constant format string check,
// since markup operands are looked up dynamically.
var dynamicGet = gotext.Get

// ApplyMarkup formats a message and expands markup classes:
// GT{} translates, ITEM{} / ACTION{} / DENIED{} apply their styles.
func ApplyMarkup(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "ACTION":
			val = ColorAction.Sprint(operand)
		case "DENIED":
			val = ColorDenied.Sprint(operand)
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
			continue
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}
