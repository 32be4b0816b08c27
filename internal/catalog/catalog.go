package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
)

// ErrNotFound is returned when a product id is not present in the catalog.
var ErrNotFound = errors.New("product not found")

// Store holds the immutable product catalog.
// It is built once at startup and is safe for unsynchronized concurrent reads.
// Products keep their load order for stable listing; lookups go through an
// id index instead of scanning the slice.
type Store struct {
	products []domain.Product
	byID     map[int]int // product id -> index in products
}

// NewStore builds a Store from an ordered product slice.
// Parameters:
//   - products: products in their canonical catalog order.
// Returns:
//   - *Store: catalog store indexed by product id.
//   - error: non-nil if a duplicate product id is present.
func NewStore(products []domain.Product) (*Store, error) {
	byID := make(map[int]int, len(products))
	for i, p := range products {
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d in catalog", p.ID)
		}
		byID[p.ID] = i
	}
	return &Store{products: products, byID: byID}, nil
}

// Load reads the catalog from a local JSON file or an HTTP(S) URL.
// Parameters:
//   - path: filesystem path or http(s) URL of the products JSON array.
// Returns:
//   - *Store: loaded catalog store.
//   - error: non-nil if the source cannot be read or decoded.
func Load(path string) (*Store, error) {
	var raw []byte
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		client := resty.New().
			SetTimeout(30 * time.Second).
			SetRetryCount(3).
			SetRetryWaitTime(2 * time.Second)
		resp, err := client.R().Get(path)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog from %s: %w", path, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("failed to fetch catalog from %s: status %d", path, resp.StatusCode())
		}
		raw = resp.Body()
	} else {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog JSON: %w", err)
	}
	return NewStore(products)
}

// All returns every product in stable catalog order.
// The returned slice is the store's backing array and must not be mutated.
func (s *Store) All() []domain.Product {
	return s.products
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}

// ByID retrieves a product by id.
// Parameters:
//   - id: product id.
// Returns:
//   - domain.Product: the product if present.
//   - error: ErrNotFound if the id is unknown.
func (s *Store) ByID(id int) (domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return s.products[i], nil
}

// IndexOf returns the catalog position of a product id.
// Parameters:
//   - id: product id.
// Returns:
//   - int: zero-based index in catalog order.
//   - bool: false if the id is unknown.
func (s *Store) IndexOf(id int) (int, bool) {
	i, ok := s.byID[id]
	return i, ok
}

// ListQuery holds filter and pagination parameters for List.
type ListQuery struct {
	Category string // case-insensitive exact match; empty means all
	Search   string // case-insensitive substring match on name; empty means all
	Page     int    // 1-based page number
	PageSize int    // products per page
}

// List filters the catalog and returns one page of results.
// Filtering happens first; Total always reflects the full filtered count
// regardless of the requested page.
// Parameters:
//   - q: filter and pagination parameters; Page and PageSize below 1 are
//     treated as 1.
// Returns:
//   - domain.ProductList: the page plus pagination metadata.
func (s *Store) List(q ListQuery) domain.ProductList {
	filtered := s.products
	if q.Category != "" || q.Search != "" {
		filtered = make([]domain.Product, 0, len(s.products))
		search := strings.ToLower(q.Search)
		for _, p := range s.products {
			if q.Category != "" && !strings.EqualFold(p.Category, q.Category) {
				continue
			}
			if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
				continue
			}
			filtered = append(filtered, p)
		}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size < 1 {
		size = 1
	}

	total := len(filtered)
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]domain.Product, end-start)
	copy(items, filtered[start:end])

	return domain.ProductList{
		Total:    total,
		Page:     page,
		PageSize: size,
		Products: items,
	}
}
