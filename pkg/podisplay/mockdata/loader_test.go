package mockdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func collect(t *testing.T, l *Loader) map[Kind]Result {
	t.Helper()

	var mu sync.Mutex
	results := make(map[Kind]Result)
	l.Load(context.Background(), func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		results[r.Kind] = r
	})
	return results
}

func TestLoadFilesWithOneFailure(t *testing.T) {
	l := NewLoader(Sources{
		Customers: "testdata/customers.jsonc",
		Products:  "testdata/products.json",
		Orders:    "testdata/broken.json",
	})

	results := collect(t, l)
	require.Len(t, results, 3)

	customers := results[KindCustomers]
	require.NoError(t, customers.Err)
	require.Len(t, customers.Customers, 2)
	assert.Equal(t, "Becker Stahlwerke", customers.Customers[1].Name)

	products := results[KindProducts]
	require.NoError(t, products.Err)
	assert.Len(t, products.Products, 3)

	orders := results[KindOrders]
	require.Error(t, orders.Err)
	assert.True(t, IsDataLoadError(orders.Err))

	var loadErr *DataLoadError
	require.ErrorAs(t, orders.Err, &loadErr)
	assert.Equal(t, KindOrders, loadErr.Kind)
	assert.Equal(t, "testdata/broken.json", loadErr.Source)
}

func TestLoadMissingFileAndSkippedSource(t *testing.T) {
	l := NewLoader(Sources{Customers: "testdata/does-not-exist.json"})

	results := collect(t, l)
	require.Len(t, results, 1)
	assert.True(t, IsDataLoadError(results[KindCustomers].Err))
}

func TestLoadFromHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/orders.json":
			_, _ = w.Write([]byte(`[{"id":"4500017100","customerId":"1000","quantity":4,"status":"Open"}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	l := NewLoader(Sources{
		Orders:   server.URL + "/orders.json",
		Products: server.URL + "/missing.json",
	}).WithHTTPClient(server.Client())

	results := collect(t, l)

	orders := results[KindOrders]
	require.NoError(t, orders.Err)
	require.Len(t, orders.Orders, 1)
	assert.Equal(t, 4, orders.Orders[0].Quantity)

	assert.ErrorContains(t, results[KindProducts].Err, "404")
}

func TestLoadAsyncReturnsImmediately(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	l := NewLoader(Sources{Products: "testdata/products.json"})

	results := make(chan Result, 1)
	done := l.LoadAsync(context.Background(), func(r Result) { results <- r })
	<-done

	r := <-results
	require.NoError(t, r.Err)
	assert.Len(t, r.Products, 3)
}

func TestStoreApply(t *testing.T) {
	store := NewStore()

	store.Apply(Result{Kind: KindOrders, Err: &DataLoadError{Kind: KindOrders}})
	assert.False(t, store.Loaded(KindOrders))
	assert.Error(t, store.Failure(KindOrders))

	store.Apply(Result{Kind: KindOrders, Orders: []Order{{ID: "1"}}})
	assert.True(t, store.Loaded(KindOrders))
	assert.NoError(t, store.Failure(KindOrders))
	assert.Len(t, store.Orders, 1)
}
