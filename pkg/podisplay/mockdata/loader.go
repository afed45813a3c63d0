// Package mockdata loads the read-only customer, product and order documents
// the PO display view shows. Loads are fire-and-forget: each document is
// fetched independently and a failure only affects that document.
package mockdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"github.com/BrandonKowalski/podisplay/pkg/podisplay/constants"
	"github.com/tidwall/jsonc"
	"golang.org/x/sync/errgroup"
)

// Sources locates the three documents. Each entry is a file path or an
// http(s) URL. Empty entries are skipped.
type Sources struct {
	Customers string
	Products  string
	Orders    string
}

// Result is the outcome of loading one document.
type Result struct {
	Kind      Kind
	Source    string
	Customers []Customer
	Products  []Product
	Orders    []Order
	Err       error
}

// Loader fetches documents from Sources.
type Loader struct {
	sources Sources
	client  *http.Client
	timeout time.Duration
}

// NewLoader creates a loader with the default per-document timeout.
func NewLoader(sources Sources) *Loader {
	return &Loader{
		sources: sources,
		client:  &http.Client{},
		timeout: constants.DefaultLoadTimeout,
	}
}

// WithHTTPClient replaces the client used for URL sources.
func (l *Loader) WithHTTPClient(client *http.Client) *Loader {
	l.client = client
	return l
}

// WithTimeout sets the per-document timeout.
func (l *Loader) WithTimeout(d time.Duration) *Loader {
	if d > 0 {
		l.timeout = d
	}
	return l
}

// Load fetches every configured document concurrently and hands each result
// to onResult as soon as it is available. onResult is called from loader
// goroutines; callers post the result to the UI thread themselves.
// One document failing never cancels the others.
func (l *Loader) Load(ctx context.Context, onResult func(Result)) {
	var g errgroup.Group
	g.SetLimit(3)

	for _, job := range []struct {
		kind   Kind
		source string
	}{
		{KindCustomers, l.sources.Customers},
		{KindProducts, l.sources.Products},
		{KindOrders, l.sources.Orders},
	} {
		if job.source == "" {
			continue
		}
		job := job
		g.Go(func() error {
			onResult(l.loadOne(ctx, job.kind, job.source))
			return nil
		})
	}

	_ = g.Wait()
}

// LoadAsync runs Load on its own goroutine and returns immediately.
// The returned channel is closed once every result was delivered.
func (l *Loader) LoadAsync(ctx context.Context, onResult func(Result)) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Load(ctx, onResult)
	}()
	return done
}

func (l *Loader) loadOne(ctx context.Context, kind Kind, source string) Result {
	result := Result{Kind: kind, Source: source}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	data, err := l.read(ctx, source)
	if err != nil {
		result.Err = &DataLoadError{Kind: kind, Source: source, Err: err}
		return result
	}

	if err := decode(kind, jsonc.ToJSON(data), &result); err != nil {
		result.Err = &DataLoadError{Kind: kind, Source: source, Err: err}
	}
	return result
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(source)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// decode accepts either a bare array or an object wrapping it under the
// document's name, e.g. {"customers": [...]}.
func decode(kind Kind, data []byte, result *Result) error {
	var target any
	switch kind {
	case KindCustomers:
		target = &result.Customers
	case KindProducts:
		target = &result.Products
	case KindOrders:
		target = &result.Orders
	default:
		return fmt.Errorf("unknown document kind %q", kind)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return err
		}
		raw, ok := wrapper[string(kind)]
		if !ok {
			return fmt.Errorf("object has no %q field", kind)
		}
		data = raw
	}

	return json.Unmarshal(data, target)
}
