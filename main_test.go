package apitester

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// isolateConfig keeps a user's config file out of the test.
func isolateConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func newEchoServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintf(w, "%s %s x-foo=%s body=%s", r.Method, r.URL.RawQuery, r.Header.Get("X-Foo"), body)
	}))
}

func TestMain_PrintsResponseBody(t *testing.T) {
	testCases := []struct {
		title    string
		args     func(url string) []string
		expected string
	}{
		{
			title: "GET with a header and a parameter",
			args: func(url string) []string {
				return []string{url, "X-Foo:bar", "q==go"}
			},
			expected: "GET q=go x-foo=bar body=",
		},
		{
			title: "POST body",
			args: func(url string) []string {
				return []string{"--body", "hello", "POST", url}
			},
			expected: "POST  x-foo= body=hello",
		},
		{
			title: "Body is dropped for GET",
			args: func(url string) []string {
				return []string{"--body", "hello", "GET", url}
			},
			expected: "GET  x-foo= body=",
		},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			// Setup
			isolateConfig(t)
			server := newEchoServer()
			defer server.Close()
			var stdout, stderr strings.Builder
			args := append([]string{"at", "--ignore-stdin", "--pretty=none", "--print=b"}, tt.args(server.URL)...)

			// Exercise
			err := Main(&Options{Args: args, Stdout: &stdout, Stderr: &stderr})

			// Verify
			if err != nil {
				t.Fatalf("unexpected error: err=%+v", err)
			}
			if stdout.String() != tt.expected {
				t.Errorf("unexpected output: expected=%q, actual=%q", tt.expected, stdout.String())
			}
		})
	}
}

func TestMain_PrintsStatusAndHeaders(t *testing.T) {
	isolateConfig(t)
	server := newEchoServer()
	defer server.Close()
	var stdout, stderr strings.Builder

	err := Main(&Options{
		Args:   []string{"at", "--ignore-stdin", "--pretty=none", "--print=h", server.URL},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	if !strings.HasPrefix(stdout.String(), "HTTP/1.1 200 OK\nTime: ") {
		t.Errorf("unexpected status line: %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "content-type: text/plain\n") {
		t.Errorf("response headers are missing: %q", stdout.String())
	}
}

func TestMain_Failure(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr strings.Builder
	transport := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("network down")
	})

	err := Main(&Options{
		Args:      []string{"at", "--ignore-stdin", "http://example.com/"},
		Stdout:    &stdout,
		Stderr:    &stderr,
		Transport: transport,
	})

	if err == nil || err.Error() != "network down" {
		t.Errorf("unexpected error: expected=%s, actual=%v", "network down", err)
	}
	if stdout.String() != "" {
		t.Errorf("nothing should be printed on failure: %q", stdout.String())
	}
}

func TestMain_Download(t *testing.T) {
	isolateConfig(t)
	server := newEchoServer()
	defer server.Close()
	dir, err := ioutil.TempDir("", "apitester-test-")
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}
	defer os.RemoveAll(dir)
	target := filepath.Join(dir, "out.txt")
	var stdout, stderr strings.Builder

	err = Main(&Options{
		Args:   []string{"at", "--ignore-stdin", "--pretty=none", "--print=b", "--download", "--output", target, server.URL},
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}

	written, err := ioutil.ReadFile(target)
	if err != nil {
		t.Fatalf("download target is missing: %v", err)
	}
	if string(written) != "GET  x-foo= body=" {
		t.Errorf("unexpected file content: %q", written)
	}
	if stdout.String() != "" {
		t.Errorf("the body should not be printed when downloading: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Downloaded to "+target) {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
}

func TestMain_Version(t *testing.T) {
	isolateConfig(t)
	var stdout strings.Builder
	if err := Main(&Options{Args: []string{"at", "--version"}, Stdout: &stdout}); err != nil {
		t.Fatalf("unexpected error: err=%+v", err)
	}
	if !strings.HasPrefix(stdout.String(), "apitester 0.1.0") {
		t.Errorf("unexpected output: %q", stdout.String())
	}
}

func TestMain_UnknownFlag(t *testing.T) {
	isolateConfig(t)
	var stdout, stderr strings.Builder
	err := Main(&Options{Args: []string{"at", "--no-such-flag", "example.com"}, Stdout: &stdout, Stderr: &stderr})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Errorf("usage should be printed: %q", stderr.String())
	}
}
