package recommend

import (
	"errors"
	"testing"

	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
)

func testStore(t *testing.T, products []domain.Product) *catalog.Store {
	t.Helper()
	store, err := catalog.NewStore(products)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return store
}

func contentTestProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Trail Shoes", Category: "Sports", Subcategory: "Footwear", Rating: 4.5,
			Description: "cushioned trail running shoes with grip outsole"},
		{ID: 2, Name: "Road Shoes", Category: "Sports", Subcategory: "Footwear", Rating: 4.5,
			Description: "lightweight road running shoes with breathable mesh"},
		{ID: 3, Name: "Coffee Maker", Category: "Home", Subcategory: "Kitchen", Rating: 4.1,
			Description: "programmable drip coffee maker with reusable filter"},
		{ID: 4, Name: "Espresso Machine", Category: "Home", Subcategory: "Kitchen", Rating: 4.1,
			Description: "compact espresso machine with milk frother for coffee drinks"},
	}
}

func TestContentEngine_Recommend(t *testing.T) {
	engine := NewContentEngine(testStore(t, contentTestProducts()))

	recs, err := engine.Recommend(1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	// The other running shoe shares the most vocabulary with the target.
	if recs[0].ID != 2 {
		t.Errorf("expected product 2 first, got %d", recs[0].ID)
	}
	for _, p := range recs {
		if p.ID == 1 {
			t.Error("target product must not appear in its own recommendations")
		}
	}
}

func TestContentEngine_RecommendUnknownProduct(t *testing.T) {
	engine := NewContentEngine(testStore(t, contentTestProducts()))

	_, err := engine.Recommend(99, 5)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContentEngine_RecommendTruncatesToK(t *testing.T) {
	engine := NewContentEngine(testStore(t, contentTestProducts()))

	recs, err := engine.Recommend(3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Errorf("expected 2 recommendations, got %d", len(recs))
	}
}

func TestContentEngine_RecommendNonPositiveK(t *testing.T) {
	engine := NewContentEngine(testStore(t, contentTestProducts()))

	for _, k := range []int{0, -1, -100} {
		recs, err := engine.Recommend(1, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if recs == nil {
			t.Fatalf("k=%d: expected non-nil result", k)
		}
		if len(recs) != 0 {
			t.Errorf("k=%d: expected empty result, got %d products", k, len(recs))
		}
	}

	// The product lookup still runs before the size check.
	if _, err := engine.Recommend(99, -1); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContentEngine_RecommendLargeK(t *testing.T) {
	engine := NewContentEngine(testStore(t, contentTestProducts()))

	recs, err := engine.Recommend(3, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Everything except the target.
	if len(recs) != 3 {
		t.Errorf("expected 3 recommendations, got %d", len(recs))
	}
}

func TestContentEngine_Similarity(t *testing.T) {
	engine := NewContentEngine(testStore(t, contentTestProducts()))

	self, err := engine.Similarity(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if self < 0.999 {
		t.Errorf("expected self similarity ~1, got %v", self)
	}

	shoes, err := engine.Similarity(1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reverse, err := engine.Similarity(2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shoes != reverse {
		t.Errorf("expected symmetric similarity, got %v and %v", shoes, reverse)
	}

	cross, err := engine.Similarity(1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shoes <= cross {
		t.Errorf("expected same-category similarity (%v) to beat cross-category (%v)", shoes, cross)
	}

	if _, err := engine.Similarity(1, 99); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestContentEngine_TieBreakCatalogOrder(t *testing.T) {
	// Products 2 and 3 are word-for-word identical, so they tie; stable sort
	// keeps catalog order between them.
	products := []domain.Product{
		{ID: 10, Description: "ceramic mug for hot tea", Category: "Home", Subcategory: "Kitchen", Rating: 4},
		{ID: 20, Description: "steel water bottle insulated", Category: "Sports", Subcategory: "Outdoor", Rating: 4},
		{ID: 30, Description: "steel water bottle insulated", Category: "Sports", Subcategory: "Outdoor", Rating: 4},
	}
	engine := NewContentEngine(testStore(t, products))

	recs, err := engine.Recommend(10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].ID != 20 || recs[1].ID != 30 {
		t.Errorf("expected catalog order [20 30] on tie, got [%d %d]", recs[0].ID, recs[1].ID)
	}
}
