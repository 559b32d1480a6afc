package colors

import (
	"net/http"

	"github.com/fatih/color"
)

var (
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
)

// Status renders an HTTP status code green when it succeeded and red otherwise.
func Status(code int) string {
	if code >= http.StatusBadRequest {
		return Red(code)
	}
	return Green(code)
}
