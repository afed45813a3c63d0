package mockdata

// Customer is one entry of customers.json.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Product is one entry of products.json.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// Order is one entry of orders.json.
type Order struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customerId"`
	ProductID  string  `json:"productId"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

// Kind names one of the three documents.
type Kind string

const (
	KindCustomers Kind = "customers"
	KindProducts  Kind = "products"
	KindOrders    Kind = "orders"
)

// Store holds whatever documents have loaded so far. It is written only
// from the UI thread.
type Store struct {
	Customers []Customer
	Products  []Product
	Orders    []Order

	loaded map[Kind]bool
	failed map[Kind]error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		loaded: make(map[Kind]bool),
		failed: make(map[Kind]error),
	}
}

// Apply records a load result.
func (s *Store) Apply(r Result) {
	if r.Err != nil {
		s.failed[r.Kind] = r.Err
		return
	}

	switch r.Kind {
	case KindCustomers:
		s.Customers = r.Customers
	case KindProducts:
		s.Products = r.Products
	case KindOrders:
		s.Orders = r.Orders
	}
	delete(s.failed, r.Kind)
	s.loaded[r.Kind] = true
}

// Loaded reports whether kind loaded successfully.
func (s *Store) Loaded(kind Kind) bool {
	return s.loaded[kind]
}

// Failure returns the last load error for kind, if any.
func (s *Store) Failure(kind Kind) error {
	return s.failed[kind]
}
