package exchange

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nojima/apitester/input"
)

var errNetworkDown = errors.New("network down")

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(t *testing.T, options Options) *http.Client {
	client, err := BuildHTTPClient(&options)
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	return client
}

func TestSend_Success(t *testing.T) {
	// Setup
	var gotMethod, gotBody, gotQuery, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		b, _ := ioutil.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Add("X-Multi", "a")
		w.Header().Add("X-Multi", "b")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"héllo"}`))
	}))
	defer server.Close()

	draft := input.NewDraft()
	draft.Method = input.MethodPost
	draft.URL = server.URL + "/items?x=1"
	draft.Params.Add()
	draft.Params.SetKey(0, "y")
	draft.Params.SetValue(0, "2")
	draft.Body = `{"name":"test"}`
	draft.AuthType = input.AuthBasic
	draft.AuthValue = "u:p"

	// Exercise
	result := Send(context.Background(), newTestClient(t, Options{FollowRedirects: true}), Derive(draft))

	// Verify
	success, ok := result.(*Success)
	if !ok {
		t.Fatalf("unexpected result: %#v", result)
	}
	if gotMethod != "POST" || gotQuery != "x=1&y=2" || gotBody != `{"name":"test"}` {
		t.Errorf("unexpected request: method=%s, query=%s, body=%s", gotMethod, gotQuery, gotBody)
	}
	if gotAuth != "Basic dTpw" {
		t.Errorf("unexpected Authorization: %s", gotAuth)
	}
	if success.Status != 201 || success.StatusText != "Created" {
		t.Errorf("unexpected status: %d %s", success.Status, success.StatusText)
	}
	if success.Data != `{"id":"héllo"}` {
		t.Errorf("unexpected data: %s", success.Data)
	}
	if success.Size != len(`{"id":"héllo"}`) || success.Size != 15 {
		t.Errorf("unexpected size: %d", success.Size)
	}
	if success.Headers["content-type"] != "application/json" {
		t.Errorf("unexpected headers: %v", success.Headers)
	}
	if success.Headers["x-multi"] != "a, b" {
		t.Errorf("unexpected multi-valued header: %q", success.Headers["x-multi"])
	}
	if success.Time < 0 {
		t.Errorf("unexpected time: %d", success.Time)
	}
}

func TestSend_BodyIsNotSentForGet(t *testing.T) {
	// Setup
	var gotBody string
	var gotLength int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := ioutil.ReadAll(r.Body)
		gotBody = string(b)
		gotLength = r.ContentLength
	}))
	defer server.Close()

	draft := input.NewDraft()
	draft.URL = server.URL
	draft.Body = "should not be sent"

	// Exercise
	result := Send(context.Background(), newTestClient(t, Options{}), Derive(draft))

	// Verify
	if _, ok := result.(*Success); !ok {
		t.Fatalf("unexpected result: %#v", result)
	}
	if gotBody != "" || gotLength != 0 {
		t.Errorf("unexpected body: %q (length %d)", gotBody, gotLength)
	}
}

func TestSend_InvalidUTF8IsReplaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte{'a', 0xff, 'b'})
	}))
	defer server.Close()

	result := Send(context.Background(), newTestClient(t, Options{}), &Request{Method: input.MethodGet, URL: server.URL, Header: http.Header{}})

	success, ok := result.(*Success)
	if !ok {
		t.Fatalf("unexpected result: %#v", result)
	}
	if success.Data != "a\uFFFDb" {
		t.Errorf("unexpected data: %q", success.Data)
	}
	if success.Size != 5 {
		t.Errorf("unexpected size: expected=5, actual=%d", success.Size)
	}
}

func TestSend_TransportFailure(t *testing.T) {
	// Setup
	client := newTestClient(t, Options{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("network down")
		}),
	})

	// Exercise
	result := Send(context.Background(), client, &Request{Method: input.MethodGet, URL: "http://example.com/", Header: http.Header{}})

	// Verify
	expected := &Failure{Error: "network down", Time: 0}
	failure, ok := result.(*Failure)
	if !ok {
		t.Fatalf("unexpected result: %#v", result)
	}
	if *failure != *expected {
		t.Errorf("unexpected failure: expected=%+v, actual=%+v", expected, failure)
	}
}

func TestSend_MalformedRequest(t *testing.T) {
	result := Send(context.Background(), newTestClient(t, Options{}), &Request{Method: input.MethodGet, URL: "not a url", Header: http.Header{}})

	failure, ok := result.(*Failure)
	if !ok {
		t.Fatalf("unexpected result: %#v", result)
	}
	if failure.Error == "" || failure.Time != 0 {
		t.Errorf("unexpected failure: %+v", failure)
	}
}

func TestBuildHTTPClient_Redirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/final" {
			w.Write([]byte("final"))
			return
		}
		http.Redirect(w, r, "/final", http.StatusFound)
	}))
	defer server.Close()

	testCases := []struct {
		title          string
		follow         bool
		expectedStatus int
	}{
		{title: "Follow", follow: true, expectedStatus: 200},
		{title: "Do not follow", follow: false, expectedStatus: 302},
	}
	for _, tt := range testCases {
		t.Run(tt.title, func(t *testing.T) {
			client := newTestClient(t, Options{FollowRedirects: tt.follow})
			result := Send(context.Background(), client, &Request{Method: input.MethodGet, URL: server.URL + "/start", Header: http.Header{}})
			success, ok := result.(*Success)
			if !ok {
				t.Fatalf("unexpected result: %#v", result)
			}
			if success.Status != tt.expectedStatus {
				t.Errorf("unexpected status: expected=%d, actual=%d", tt.expectedStatus, success.Status)
			}
		})
	}
}
