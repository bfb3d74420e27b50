package output

import (
	"fmt"
	"io"
	"net/http"

	"github.com/logrusorgru/aurora"
	"github.com/nojima/apitester/exchange"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type PrettyPrinter struct {
	writer        io.Writer
	aurora        aurora.Aurora
	enableColor   bool
	enableFormat  bool
	headerPalette *HeaderPalette
	statusPalette *StatusPalette
}

type PrettyPrinterConfig struct {
	Writer       io.Writer
	EnableColor  bool
	EnableFormat bool
}

type HeaderPalette struct {
	Method         aurora.Color
	URL            aurora.Color
	Proto          aurora.Color
	Meta           aurora.Color
	FieldName      aurora.Color
	FieldValue     aurora.Color
	FieldSeparator aurora.Color
}

var defaultHeaderPalette = HeaderPalette{
	Method:         aurora.GreenFg | aurora.BoldFm,
	URL:            aurora.CyanFg,
	Proto:          aurora.BlueFg,
	Meta:           aurora.BlackFg | aurora.BrightFg,
	FieldName:      aurora.BlackFg | aurora.BrightFg,
	FieldValue:     aurora.CyanFg,
	FieldSeparator: aurora.BlackFg | aurora.BrightFg,
}

// StatusPalette colours the status line by status class.
type StatusPalette struct {
	Success     aurora.Color
	Redirect    aurora.Color
	ClientError aurora.Color
	ServerError aurora.Color
}

var defaultStatusPalette = StatusPalette{
	Success:     aurora.GreenFg | aurora.BoldFm,
	Redirect:    aurora.BlueFg | aurora.BoldFm,
	ClientError: aurora.BrownFg | aurora.BoldFm,
	ServerError: aurora.RedFg | aurora.BoldFm,
}

func (p *StatusPalette) colorFor(code int) aurora.Color {
	switch ClassifyStatus(code) {
	case StatusSuccess:
		return p.Success
	case StatusRedirect:
		return p.Redirect
	case StatusClientError:
		return p.ClientError
	default:
		return p.ServerError
	}
}

func NewPrettyPrinter(config PrettyPrinterConfig) Printer {
	return &PrettyPrinter{
		writer:        config.Writer,
		aurora:        aurora.NewAurora(config.EnableColor),
		enableColor:   config.EnableColor,
		enableFormat:  config.EnableFormat,
		headerPalette: &defaultHeaderPalette,
		statusPalette: &defaultStatusPalette,
	}
}

func (p *PrettyPrinter) PrintRequestLine(req *exchange.Request) error {
	_, err := fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize(req.Method, p.headerPalette.Method),
		p.aurora.Colorize(req.URL, p.headerPalette.URL))
	return errors.Wrap(err, "printing request line")
}

func (p *PrettyPrinter) PrintRequestHeader(header http.Header) error {
	for _, name := range sortedHeaderNames(header) {
		for _, value := range header[name] {
			p.printField(name, value)
		}
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PrettyPrinter) PrintRequestBody(req *exchange.Request) error {
	if err := p.PrintBody(req.Body); err != nil {
		return err
	}
	fmt.Fprint(p.writer, "\n\n")
	return nil
}

func (p *PrettyPrinter) PrintStatusLine(s *exchange.Success) error {
	_, err := fmt.Fprintf(p.writer, "%s %s\n",
		p.aurora.Colorize(s.Proto, p.headerPalette.Proto),
		p.aurora.Colorize(fmt.Sprintf("%d %s", s.Status, s.StatusText), p.statusPalette.colorFor(s.Status)))
	return errors.Wrap(err, "printing status line")
}

func (p *PrettyPrinter) PrintMeta(s *exchange.Success) error {
	_, err := fmt.Fprintf(p.writer, "%s\n",
		p.aurora.Colorize(fmt.Sprintf("Time: %d ms, Size: %s", s.Time, FormatSize(s.Size)), p.headerPalette.Meta))
	return errors.Wrap(err, "printing response meta")
}

func (p *PrettyPrinter) PrintHeader(headers map[string]string) error {
	for _, name := range sortedKeys(headers) {
		p.printField(name, headers[name])
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PrettyPrinter) printField(name, value string) {
	fmt.Fprintf(p.writer, "%s%s %s\n",
		p.aurora.Colorize(name, p.headerPalette.FieldName),
		p.aurora.Colorize(":", p.headerPalette.FieldSeparator),
		p.aurora.Colorize(value, p.headerPalette.FieldValue))
}

// PrintBody pretty prints JSON bodies and copies anything else verbatim.
func (p *PrettyPrinter) PrintBody(data string) error {
	if !gjson.Valid(data) {
		if _, err := io.WriteString(p.writer, data); err != nil {
			return errors.Wrap(err, "printing response body")
		}
		return nil
	}

	body := []byte(data)
	if p.enableFormat {
		body = []byte(RenderBody(data))
	}
	if p.enableColor {
		body = pretty.Color(body, nil)
	}
	if _, err := p.writer.Write(body); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	fmt.Fprintln(p.writer)
	return nil
}
