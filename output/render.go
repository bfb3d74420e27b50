package output

import (
	"strings"

	"github.com/nojima/apitester/exchange"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

var indentOptions = &pretty.Options{
	Indent:   "  ",
	SortKeys: false,
}

// RenderBody pretty prints data with two-space indentation when it is JSON
// and returns it verbatim otherwise.
func RenderBody(data string) string {
	if !gjson.Valid(data) {
		return data
	}
	out := pretty.PrettyOptions([]byte(data), indentOptions)
	return strings.TrimSuffix(string(out), "\n")
}

// Render returns the text shown for a result: the error message of a
// failure or the rendered body of a success.
func Render(result exchange.Result) string {
	switch r := result.(type) {
	case *exchange.Failure:
		return r.Error
	case *exchange.Success:
		return RenderBody(r.Data)
	default:
		return ""
	}
}

// StatusClass groups status codes the way they are coloured.
type StatusClass int

const (
	StatusSuccess StatusClass = iota
	StatusRedirect
	StatusClientError
	StatusServerError
)

func ClassifyStatus(code int) StatusClass {
	switch {
	case code >= 200 && code < 300:
		return StatusSuccess
	case code >= 300 && code < 400:
		return StatusRedirect
	case code >= 400 && code < 500:
		return StatusClientError
	default:
		return StatusServerError
	}
}
