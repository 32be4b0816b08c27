package domain

// Product represents a catalog product.
// Loaded once at startup from the catalog data source; never mutated afterwards.
// Identity is ID, a unique stable integer.
type Product struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	Price           float64 `json:"price"`
	QuantityInStock int     `json:"quantity_in_stock"`
	Manufacturer    string  `json:"manufacturer"`
	Description     string  `json:"description"`
	Weight          float64 `json:"weight"`
	Dimensions      string  `json:"dimensions"`
	ReleaseDate     string  `json:"release_date"`
	Rating          float64 `json:"rating"`
	IsFeatured      bool    `json:"is_featured"`
	IsOnSale        bool    `json:"is_on_sale"`
	SalePrice       float64 `json:"sale_price"`
	ImageURL        string  `json:"image_url"`
}

// ProductList is the paginated response shape for product listing.
type ProductList struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Products []Product `json:"products"`
}
