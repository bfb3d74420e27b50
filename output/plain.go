package output

import (
	"fmt"
	"io"
	"net/http"
	"sort"

	"code.cloudfoundry.org/bytefmt"
	"github.com/nojima/apitester/exchange"
	"github.com/pkg/errors"
)

type PlainPrinter struct {
	writer io.Writer
}

func NewPlainPrinter(writer io.Writer) Printer {
	return &PlainPrinter{
		writer: writer,
	}
}

func (p *PlainPrinter) PrintRequestLine(req *exchange.Request) error {
	_, err := fmt.Fprintf(p.writer, "%s %s\n", req.Method, req.URL)
	return errors.Wrap(err, "printing request line")
}

func (p *PlainPrinter) PrintRequestHeader(header http.Header) error {
	for _, name := range sortedHeaderNames(header) {
		for _, value := range header[name] {
			fmt.Fprintf(p.writer, "%s: %s\n", name, value)
		}
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PlainPrinter) PrintRequestBody(req *exchange.Request) error {
	if _, err := io.WriteString(p.writer, req.Body); err != nil {
		return errors.Wrap(err, "printing request body")
	}
	fmt.Fprint(p.writer, "\n\n")
	return nil
}

func (p *PlainPrinter) PrintStatusLine(s *exchange.Success) error {
	_, err := fmt.Fprintf(p.writer, "%s %d %s\n", s.Proto, s.Status, s.StatusText)
	return errors.Wrap(err, "printing status line")
}

func (p *PlainPrinter) PrintMeta(s *exchange.Success) error {
	_, err := fmt.Fprintf(p.writer, "Time: %d ms, Size: %s\n", s.Time, FormatSize(s.Size))
	return errors.Wrap(err, "printing response meta")
}

func (p *PlainPrinter) PrintHeader(headers map[string]string) error {
	for _, name := range sortedKeys(headers) {
		fmt.Fprintf(p.writer, "%s: %s\n", name, headers[name])
	}
	fmt.Fprintln(p.writer)
	return nil
}

func (p *PlainPrinter) PrintBody(data string) error {
	if _, err := io.WriteString(p.writer, data); err != nil {
		return errors.Wrap(err, "printing response body")
	}
	return nil
}

// FormatSize renders a byte count the way the response meta line shows it.
func FormatSize(size int) string {
	if size < 0 {
		size = 0
	}
	return bytefmt.ByteSize(uint64(size))
}

func sortedHeaderNames(header http.Header) []string {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
