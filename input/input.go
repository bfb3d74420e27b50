package input

import (
	"strings"

	"github.com/pkg/errors"
)

// Method is one of the HTTP methods the composer can send.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists the selectable methods in display order.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(s))
	for _, known := range Methods {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Errorf("unsupported method: %s", s)
}

// AllowsBody reports whether a request body is sent for the method.
func (m Method) AllowsBody() bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch:
		return true
	default:
		return false
	}
}

// Next returns the method following m in Methods, wrapping around.
func (m Method) Next() Method {
	for i, known := range Methods {
		if known == m {
			return Methods[(i+1)%len(Methods)]
		}
	}
	return MethodGet
}

// AuthType selects how the auth value is turned into a header.
type AuthType string

const (
	AuthNone   AuthType = "none"
	AuthBearer AuthType = "bearer"
	AuthBasic  AuthType = "basic"
	AuthAPIKey AuthType = "apikey"
)

var AuthTypes = []AuthType{AuthNone, AuthBearer, AuthBasic, AuthAPIKey}

func ParseAuthType(s string) (AuthType, error) {
	t := AuthType(strings.ToLower(s))
	switch t {
	case "":
		return AuthNone, nil
	case AuthNone, AuthBearer, AuthBasic, AuthAPIKey:
		return t, nil
	case "api-key", "api_key":
		return AuthAPIKey, nil
	}
	return AuthNone, errors.Errorf("unsupported auth type: %s (must be one of none, bearer, basic, apikey)", s)
}

// Label is the human readable name of the auth type.
func (t AuthType) Label() string {
	switch t {
	case AuthBearer:
		return "Bearer"
	case AuthBasic:
		return "Basic"
	case AuthAPIKey:
		return "API Key"
	default:
		return "None"
	}
}

// Draft is the editable, not yet sent representation of a request.
type Draft struct {
	Method    Method
	URL       string
	Params    *EntryList
	Headers   *EntryList
	Body      string
	AuthType  AuthType
	AuthValue string
}

// NewDraft returns a draft with the composer defaults: GET, no URL, a JSON
// content type header and no authentication.
func NewDraft() *Draft {
	return &Draft{
		Method: MethodGet,
		Params: NewEntryList(),
		Headers: NewEntryList(Entry{
			Key:     "Content-Type",
			Value:   "application/json",
			Enabled: true,
		}),
		AuthType: AuthNone,
	}
}

// Clone returns a deep copy of the draft.
func (d *Draft) Clone() *Draft {
	c := *d
	c.Params = d.params().Clone()
	c.Headers = d.headers().Clone()
	return &c
}

func (d *Draft) params() *EntryList {
	if d.Params == nil {
		return NewEntryList()
	}
	return d.Params
}

func (d *Draft) headers() *EntryList {
	if d.Headers == nil {
		return NewEntryList()
	}
	return d.Headers
}

// ActiveParams returns the parameters that take part in URL derivation.
func (d *Draft) ActiveParams() []Entry {
	return d.params().Active()
}

// ActiveHeaders returns the headers that take part in request derivation.
func (d *Draft) ActiveHeaders() []Entry {
	return d.headers().Active()
}
