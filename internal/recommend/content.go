package recommend

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
)

// ContentEngine ranks products by content similarity.
// The TF-IDF matrix is built once over the full catalog at startup and is
// read-only afterwards, so the engine is safe for concurrent use.
type ContentEngine struct {
	store      *catalog.Store
	vectorizer *Vectorizer
	matrix     [][]float64 // one row per product, in catalog order
}

// featureText concatenates the attributes that describe a product for
// vectorization: description, category, subcategory, and rating.
func featureText(p domain.Product) string {
	return strings.Join([]string{
		p.Description,
		p.Category,
		p.Subcategory,
		strconv.FormatFloat(p.Rating, 'f', -1, 64),
	}, " ")
}

// NewContentEngine fits a TF-IDF vectorizer over the catalog and builds the
// product feature matrix.
// Parameters:
//   - store: immutable catalog store.
// Returns:
//   - *ContentEngine: engine ready for queries.
func NewContentEngine(store *catalog.Store) *ContentEngine {
	products := store.All()
	docs := make([]string, len(products))
	for i, p := range products {
		docs[i] = featureText(p)
	}
	vectorizer, matrix := FitTransform(docs)
	return &ContentEngine{
		store:      store,
		vectorizer: vectorizer,
		matrix:     matrix,
	}
}

// Dimensions returns the feature vector dimensionality.
func (e *ContentEngine) Dimensions() int {
	return e.vectorizer.Dimensions()
}

// Similarity returns the cosine similarity between two products by id.
// Parameters:
//   - a, b: product ids.
// Returns:
//   - float64: cosine similarity in [0, 1].
//   - error: catalog.ErrNotFound if either id is unknown.
func (e *ContentEngine) Similarity(a, b int) (float64, error) {
	ia, ok := e.store.IndexOf(a)
	if !ok {
		return 0, catalog.ErrNotFound
	}
	ib, ok := e.store.IndexOf(b)
	if !ok {
		return 0, catalog.ErrNotFound
	}
	return cosine(e.matrix[ia], e.matrix[ib]), nil
}

// Recommend returns up to k products most similar to the target product,
// excluding the target itself. Ties break toward earlier catalog order.
// Parameters:
//   - productID: target product id.
//   - k: maximum number of results; non-positive yields an empty result.
// Returns:
//   - []domain.Product: recommendations in descending similarity order.
//   - error: catalog.ErrNotFound if the target id is unknown.
func (e *ContentEngine) Recommend(productID, k int) ([]domain.Product, error) {
	target, ok := e.store.IndexOf(productID)
	if !ok {
		return nil, catalog.ErrNotFound
	}
	if k <= 0 {
		return []domain.Product{}, nil
	}

	sims := make([]float64, len(e.matrix))
	for i, row := range e.matrix {
		sims[i] = cosine(e.matrix[target], row)
	}

	order := make([]int, len(sims))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})

	products := e.store.All()
	recs := make([]domain.Product, 0, k)
	for _, i := range order {
		if i == target {
			continue
		}
		recs = append(recs, products[i])
		if len(recs) >= k {
			break
		}
	}
	return recs, nil
}
