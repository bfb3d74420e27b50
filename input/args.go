package input

import (
	"io"
	"io/ioutil"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var (
	reMethod          = regexp.MustCompile(`^[a-zA-Z]+$`)
	reHeaderFieldName = regexp.MustCompile("^[-!#$%&'*+.^_|~a-zA-Z0-9]+$")
	reScheme          = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+-.]*://`)
)

type itemType int

const (
	unknownItem itemType = iota
	httpHeaderItem
	urlParameterItem
)

type UsageError string

func (e *UsageError) Error() string {
	return string(*e)
}

func newUsageError(message string) error {
	u := UsageError(message)
	return errors.WithStack(&u)
}

// ParseArgs builds a draft from command line arguments of the form
// [METHOD] URL [ITEM ...], where ITEM is either "Header:value" or
// "name==value". Headers given on the command line replace the default
// Content-Type header when they name it.
func ParseArgs(args []string, stdin io.Reader, options *Options) (*Draft, error) {
	var argMethod string
	var argURL string
	var argItems []string
	switch len(args) {
	case 0:
		return nil, newUsageError("URL is required")
	case 1:
		argURL = args[0]
	default:
		if reMethod.MatchString(args[0]) {
			argMethod = args[0]
			argURL = args[1]
			argItems = args[2:]
		} else {
			argURL = args[0]
			argItems = args[1:]
		}
	}

	draft := NewDraft()
	draft.URL = ExpandURL(argURL)

	var headers []Entry
	for _, arg := range argItems {
		itemType, name, value := splitItem(arg)
		switch itemType {
		case httpHeaderItem:
			if !isValidHeaderFieldName(name) {
				return nil, errors.Errorf("invalid header field name: %s", name)
			}
			headers = append(headers, Entry{Key: name, Value: value, Enabled: true})
		case urlParameterItem:
			draft.Params.Add()
			i := draft.Params.Len() - 1
			draft.Params.SetKey(i, name)
			draft.Params.SetValue(i, value)
		default:
			return nil, errors.Errorf("unknown request item: %s", arg)
		}
	}
	if len(headers) > 0 {
		mergeHeaders(draft, headers)
	}

	body, err := readBody(options, stdin)
	if err != nil {
		return nil, err
	}
	draft.Body = body

	draft.AuthType = options.AuthType
	if draft.AuthType == "" {
		draft.AuthType = AuthNone
	}
	draft.AuthValue = options.Auth

	if argMethod != "" {
		method, err := ParseMethod(argMethod)
		if err != nil {
			return nil, newUsageError(err.Error())
		}
		draft.Method = method
	} else {
		draft.Method = guessMethod(draft)
	}

	return draft, nil
}

// mergeHeaders appends the command line headers after the defaults, dropping
// a default whose name is given explicitly.
func mergeHeaders(draft *Draft, headers []Entry) {
	explicit := map[string]bool{}
	for _, h := range headers {
		explicit[strings.ToLower(h.Key)] = true
	}
	merged := NewEntryList()
	for _, e := range draft.Headers.Entries() {
		if !explicit[strings.ToLower(e.Key)] {
			merged.entries = append(merged.entries, e)
		}
	}
	merged.entries = append(merged.entries, headers...)
	draft.Headers = merged
}

func readBody(options *Options, stdin io.Reader) (string, error) {
	switch {
	case options.Body == "@-":
		return readStdin(stdin)
	case strings.HasPrefix(options.Body, "@"):
		data, err := ioutil.ReadFile(options.Body[1:])
		if err != nil {
			return "", errors.Wrapf(err, "reading request body from '%s'", options.Body[1:])
		}
		return string(data), nil
	case options.Body != "":
		return options.Body, nil
	case options.ReadStdin:
		return readStdin(stdin)
	}
	return "", nil
}

func readStdin(stdin io.Reader) (string, error) {
	b, err := ioutil.ReadAll(stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read stdin")
	}
	return string(b), nil
}

func guessMethod(draft *Draft) Method {
	if draft.Body == "" {
		return MethodGet
	}
	return MethodPost
}

// ExpandURL fills in the scheme and host of the shorthand forms accepted on
// the command line: ":8080/hello", "/hello" and "example.com/hello".
func ExpandURL(s string) string {
	if s == "" {
		return s
	}
	defaultScheme := "http"
	defaultHost := "localhost"

	// ex) :/hello or :
	if strings.HasPrefix(s, ":") && (len(s) == 1 || s[1] < '0' || s[1] > '9') {
		s = s[1:]
	}

	// ex) :8080/hello or /hello
	if s == "" || strings.HasPrefix(s, ":") || strings.HasPrefix(s, "/") {
		s = defaultHost + s
	}

	// ex) example.com/hello
	if !reScheme.MatchString(s) {
		s = defaultScheme + "://" + s
	}

	return s
}

func splitItem(s string) (itemType, string, string) {
	for i, c := range s {
		switch c {
		case ':':
			return httpHeaderItem, s[:i], s[i+1:]
		case '=':
			if i+1 < len(s) && s[i+1] == '=' {
				return urlParameterItem, s[:i], s[i+2:]
			}
			return unknownItem, "", ""
		}
	}
	return unknownItem, "", ""
}

func isValidHeaderFieldName(s string) bool {
	return reHeaderFieldName.MatchString(s)
}
