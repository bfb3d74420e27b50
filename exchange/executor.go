package exchange

import (
	"context"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/nojima/apitester/input"
	"github.com/nojima/apitester/logging"
	"github.com/pkg/errors"
)

var (
	// ErrEmptyURL is returned when execution is triggered without a URL.
	ErrEmptyURL = errors.New("URL is empty")
	// ErrBusy is returned while a previous request is still in flight.
	ErrBusy = errors.New("a request is already in flight")
)

// Executor runs at most one request at a time and keeps the latest result.
// The loading flag is true only between Start and Finish.
type Executor struct {
	client *http.Client
	logger *logging.Logger

	mu      sync.Mutex
	loading bool
	result  Result
}

func NewExecutor(client *http.Client, logger *logging.Logger) *Executor {
	return &Executor{
		client: client,
		logger: logger.OrDiscard().WithComponent("exchange"),
	}
}

// Execute derives the request from draft, sends it and stores the result.
// An empty URL or a pending request leaves the stored result untouched.
func (e *Executor) Execute(ctx context.Context, draft *input.Draft) (Result, error) {
	req, err := e.Start(draft)
	if err != nil {
		return nil, err
	}
	result := e.Do(ctx, req)
	e.Finish(result)
	return result, nil
}

// Start checks the guards, marks the executor as loading and returns the
// request derived at this instant. The caller must pass the outcome to
// Finish.
func (e *Executor) Start(draft *input.Draft) (*Request, error) {
	if draft.URL == "" {
		return nil, ErrEmptyURL
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loading {
		return nil, ErrBusy
	}
	e.loading = true
	e.result = nil
	req := Derive(draft)
	if len(draft.ActiveParams()) > 0 && req.URL == draft.URL {
		e.logger.Debug("URL is not absolute, query parameters were not merged", "url", logging.Mask(draft.URL))
	}
	return req, nil
}

// Do sends req without touching the executor state.
func (e *Executor) Do(ctx context.Context, req *Request) Result {
	logger := e.logger.WithRequest(string(req.Method), req.URL).With("attempt", uuid.NewString())
	logger.Debug("sending request", "header", logging.MaskHeader(req.Header), "has_body", req.HasBody)

	result := Send(ctx, e.client, req)
	switch r := result.(type) {
	case *Success:
		logger.Info("request completed", "status", r.Status, "time_ms", r.Time, "size", r.Size)
	case *Failure:
		logger.Info("request failed", "error", logging.Mask(r.Error))
	}
	return result
}

// Finish stores result and clears the loading flag.
func (e *Executor) Finish(result Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.result = result
	e.loading = false
}

func (e *Executor) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// Result returns the latest result, or nil before the first completion.
func (e *Executor) Result() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}
