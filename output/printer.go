package output

import (
	"io"
	"net/http"

	"github.com/nojima/apitester/exchange"
)

type Printer interface {
	PrintRequestLine(req *exchange.Request) error
	PrintRequestHeader(header http.Header) error
	PrintRequestBody(req *exchange.Request) error
	PrintStatusLine(s *exchange.Success) error
	PrintMeta(s *exchange.Success) error
	PrintHeader(headers map[string]string) error
	PrintBody(data string) error
}

// PrintRequest writes the parts of the outgoing request selected by options.
func PrintRequest(p Printer, options *Options, req *exchange.Request) error {
	if options.PrintRequestHeader {
		if err := p.PrintRequestLine(req); err != nil {
			return err
		}
		if err := p.PrintRequestHeader(req.Header); err != nil {
			return err
		}
	}
	if options.PrintRequestBody && req.HasBody {
		if err := p.PrintRequestBody(req); err != nil {
			return err
		}
	}
	return nil
}

// PrintResponse writes the parts of a successful response selected by
// options.
func PrintResponse(p Printer, options *Options, s *exchange.Success) error {
	if options.PrintResponseHeader {
		if err := p.PrintStatusLine(s); err != nil {
			return err
		}
		if err := p.PrintMeta(s); err != nil {
			return err
		}
		if err := p.PrintHeader(s.Headers); err != nil {
			return err
		}
	}
	if options.PrintResponseBody {
		if err := p.PrintBody(s.Data); err != nil {
			return err
		}
	}
	return nil
}

func NewPrinter(w io.Writer, options *Options) Printer {
	if !options.EnableFormat && !options.EnableColor {
		return NewPlainPrinter(w)
	}
	return NewPrettyPrinter(PrettyPrinterConfig{
		Writer:       w,
		EnableColor:  options.EnableColor,
		EnableFormat: options.EnableFormat,
	})
}
