package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
)

// InteractionSource provides the like/purchase records the collaborative
// engine builds its user-item matrix from.
type InteractionSource interface {
	ListByTypes(ctx context.Context, types []domain.InteractionType) ([]domain.Interaction, error)
}

// CollabEngine recommends products from the behavior of similar users,
// falling back to content-based results when collaborative data is thin.
// The user-item matrix is rebuilt from the interaction log on every call;
// the engine itself holds no mutable state.
type CollabEngine struct {
	interactions InteractionSource
	store        *catalog.Store
	content      *ContentEngine
}

// NewCollabEngine creates a collaborative filtering engine.
// Parameters:
//   - interactions: source of like/purchase interactions.
//   - store: immutable catalog store.
//   - content: content engine used for the hybrid fallback.
// Returns:
//   - *CollabEngine: initialized engine.
func NewCollabEngine(interactions InteractionSource, store *catalog.Store, content *ContentEngine) *CollabEngine {
	return &CollabEngine{
		interactions: interactions,
		store:        store,
		content:      content,
	}
}

// userItemMatrix is a binary user-item interaction matrix. Rows are distinct
// user ids and columns distinct product ids, both in ascending order.
type userItemMatrix struct {
	userIDs    []int
	productIDs []int
	rowByUser  map[int]int
	colByProd  map[int]int
	cells      [][]float64
}

// buildMatrix pivots interaction records into a binary matrix.
func buildMatrix(interactions []domain.Interaction) *userItemMatrix {
	userSet := make(map[int]struct{})
	prodSet := make(map[int]struct{})
	for _, it := range interactions {
		userSet[it.UserID] = struct{}{}
		prodSet[it.ProductID] = struct{}{}
	}

	m := &userItemMatrix{
		userIDs:    sortedKeys(userSet),
		productIDs: sortedKeys(prodSet),
		rowByUser:  make(map[int]int, len(userSet)),
		colByProd:  make(map[int]int, len(prodSet)),
	}
	for i, id := range m.userIDs {
		m.rowByUser[id] = i
	}
	for j, id := range m.productIDs {
		m.colByProd[id] = j
	}

	m.cells = make([][]float64, len(m.userIDs))
	for i := range m.cells {
		m.cells[i] = make([]float64, len(m.productIDs))
	}
	for _, it := range interactions {
		m.cells[m.rowByUser[it.UserID]][m.colByProd[it.ProductID]] = 1
	}
	return m
}

// productsOf returns the set of product ids a row has interacted with.
func (m *userItemMatrix) productsOf(row int) map[int]struct{} {
	out := make(map[int]struct{})
	for j, v := range m.cells[row] {
		if v > 0 {
			out[m.productIDs[j]] = struct{}{}
		}
	}
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Recommend returns up to k products for a user based on similar users'
// likes and purchases, topped up with content-based results when fewer than
// k collaborative candidates exist. Missing data never produces an error;
// it degrades to an empty or partial result.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: target user id.
//   - k: maximum number of results; non-positive yields an empty result.
// Returns:
//   - []domain.Product: recommendations, possibly empty, never nil.
//   - error: non-nil only if the interaction log cannot be read.
func (e *CollabEngine) Recommend(ctx context.Context, userID, k int) ([]domain.Product, error) {
	if k <= 0 {
		return []domain.Product{}, nil
	}

	interactions, err := e.interactions.ListByTypes(ctx, domain.CollaborativeTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to load interactions: %w", err)
	}
	if len(interactions) == 0 {
		return []domain.Product{}, nil
	}

	matrix := buildMatrix(interactions)
	targetRow, ok := matrix.rowByUser[userID]
	if !ok {
		// A user with no like/purchase history gets no collaborative signal
		// and no fallback either.
		return []domain.Product{}, nil
	}

	// Rank all rows by similarity to the target, self included. The target
	// row scores 1.0 and sorts first, so it is dropped by position rather
	// than filtered by id.
	sims := make([]float64, len(matrix.cells))
	for i, row := range matrix.cells {
		sims[i] = cosine(matrix.cells[targetRow], row)
	}
	order := make([]int, len(sims))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sims[order[a]] > sims[order[b]]
	})
	similarRows := order[1:]

	// Fold in each similar user's products, skipping anything the target
	// already interacted with. The size check runs after each user's whole
	// batch, so the candidate set can overshoot k before trimming.
	targetProducts := matrix.productsOf(targetRow)
	candidates := make(map[int]struct{})
	for _, row := range similarRows {
		for id := range matrix.productsOf(row) {
			if _, own := targetProducts[id]; !own {
				candidates[id] = struct{}{}
			}
		}
		if len(candidates) >= k {
			break
		}
	}

	// Resolve candidate ids against the catalog in stable catalog order;
	// ids without a catalog entry drop out silently.
	recs := make([]domain.Product, 0, k)
	for _, p := range e.store.All() {
		if _, ok := candidates[p.ID]; ok {
			recs = append(recs, p)
		}
	}

	if len(recs) < k {
		recs = e.blendContent(recs, targetProducts, k)
	}
	if len(recs) > k {
		recs = recs[:k]
	}
	return recs, nil
}

// blendContent tops up collaborative results with content-based
// recommendations seeded from the user's own interactions.
func (e *CollabEngine) blendContent(recs []domain.Product, targetProducts map[int]struct{}, k int) []domain.Product {
	seed, ok := lowestID(targetProducts)
	if !ok {
		all := e.store.All()
		if len(all) == 0 {
			return recs
		}
		seed = all[0].ID
	}

	contentRecs, err := e.content.Recommend(seed, k)
	if err != nil {
		// Seed ids come from the interaction log and may reference products
		// that no longer exist in the catalog.
		return recs
	}

	have := make(map[int]struct{}, len(recs))
	for _, p := range recs {
		have[p.ID] = struct{}{}
	}
	for _, p := range contentRecs {
		if _, dup := have[p.ID]; !dup {
			recs = append(recs, p)
			have[p.ID] = struct{}{}
		}
		if len(recs) >= k {
			break
		}
	}
	return recs
}

func lowestID(set map[int]struct{}) (int, bool) {
	found := false
	lowest := 0
	for id := range set {
		if !found || id < lowest {
			lowest = id
			found = true
		}
	}
	return lowest, found
}
