package output

import (
	"strings"
	"testing"

	"github.com/nojima/apitester/exchange"
)

func TestRenderBody(t *testing.T) {
	testCases := []struct {
		title    string
		data     string
		expected string
	}{
		{
			title:    "JSON object",
			data:     `{"a":1}`,
			expected: "{\n  \"a\": 1\n}",
		},
		{
			title: "Key order is preserved",
			data:  `{"b":1,"a":{"c":"d"}}`,
			expected: strings.Join([]string{
				`{`,
				`  "b": 1,`,
				`  "a": {`,
				`    "c": "d"`,
				`  }`,
				`}`,
			}, "\n"),
		},
		{
			title:    "Duplicate keys are kept",
			data:     `{"a":1,"a":2}`,
			expected: "{\n  \"a\": 1,\n  \"a\": 2\n}",
		},
		{
			title:    "Number text is kept",
			data:     `{"a":1.0,"b":1e3}`,
			expected: "{\n  \"a\": 1.0,\n  \"b\": 1e3\n}",
		},
		{
			title:    "JSON string",
			data:     `"text"`,
			expected: `"text"`,
		},
		{
			title:    "Not JSON",
			data:     "not json",
			expected: "not json",
		},
		{
			title:    "Empty",
			data:     "",
			expected: "",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			actual := RenderBody(tt.data)
			if actual != tt.expected {
				t.Errorf("unexpected rendering: expected=%q, actual=%q", tt.expected, actual)
			}
		})
	}
}

func TestRenderBody_Idempotent(t *testing.T) {
	once := RenderBody(`{"a":{"b":2}}`)
	twice := RenderBody(once)
	if once != twice {
		t.Errorf("rendering is not idempotent: once=%q, twice=%q", once, twice)
	}
}

func TestRender(t *testing.T) {
	testCases := []struct {
		title    string
		result   exchange.Result
		expected string
	}{
		{
			title:    "Failure",
			result:   &exchange.Failure{Error: "network down"},
			expected: "network down",
		},
		{
			title:    "Success with JSON",
			result:   &exchange.Success{Status: 200, Data: `{"a":1}`},
			expected: "{\n  \"a\": 1\n}",
		},
		{
			title:    "Success with text",
			result:   &exchange.Success{Status: 200, Data: "not json"},
			expected: "not json",
		},
		{
			title:    "No result yet",
			result:   nil,
			expected: "",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			if actual := Render(tt.result); actual != tt.expected {
				t.Errorf("unexpected rendering: expected=%q, actual=%q", tt.expected, actual)
			}
		})
	}
}

func TestClassifyStatus(t *testing.T) {
	testCases := []struct {
		code     int
		expected StatusClass
	}{
		{code: 200, expected: StatusSuccess},
		{code: 299, expected: StatusSuccess},
		{code: 301, expected: StatusRedirect},
		{code: 404, expected: StatusClientError},
		{code: 500, expected: StatusServerError},
		{code: 101, expected: StatusServerError},
	}
	for _, tt := range testCases {
		if actual := ClassifyStatus(tt.code); actual != tt.expected {
			t.Errorf("unexpected class for %d: expected=%v, actual=%v", tt.code, tt.expected, actual)
		}
	}
}
