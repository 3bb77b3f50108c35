// internal/domain/catalog/entity.go
package catalog

// Product represents a product document from the products collection
type Product struct {
	ID          string `firestore:"-" json:"id"`
	Title       string `firestore:"title" json:"title"`
	Description string `firestore:"description" json:"description"`
	Price       int64  `firestore:"price" json:"price"` // Whole-unit PKR
	Category    string `firestore:"category" json:"category"`
	Size        string `firestore:"size,omitempty" json:"size,omitempty"`
	Color       string `firestore:"color,omitempty" json:"color,omitempty"`
	Available   bool   `firestore:"available" json:"available"`
	CoverImage  string `firestore:"coverImage,omitempty" json:"cover_image,omitempty"`
	ImageURL    string `firestore:"imageUrl,omitempty" json:"image_url,omitempty"`
}

// Image returns the display image, preferring the cover image
func (p *Product) Image() string {
	if p.CoverImage != "" {
		return p.CoverImage
	}
	return p.ImageURL
}

// PricedProduct is a product annotated with its effective discount
type PricedProduct struct {
	Product
	DiscountPercentage int   `json:"discount_percentage,omitempty"`
	DiscountedPrice    int64 `json:"discounted_price"`
	Savings            int64 `json:"savings"`
}

// Category represents a featured category tile on the home page
type Category struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Link     string `json:"link"`
}

// FeaturedCategories returns the curated home-page category tiles
func FeaturedCategories() []Category {
	return []Category{
		{ID: 1, Title: "Kaantay", ImageURL: "https://i.pinimg.com/736x/a5/81/8f/a5818ffe6a4a40971d2cafded0bb4025.jpg", Link: "Kaantay"},
		{ID: 2, Title: "Ear studs", ImageURL: "https://i.pinimg.com/736x/75/ce/eb/75ceeb6b88edfca18983030e9f6bb046.jpg", Link: "Ear studs"},
		{ID: 3, Title: "Hair accessories", ImageURL: "https://i.pinimg.com/736x/22/0f/88/220f8872a89702858835f393d3e57ae7.jpg", Link: "Hair accessories"},
		{ID: 4, Title: "Kids accessories", ImageURL: "https://i.pinimg.com/736x/1c/bb/75/1cbb7519e7a0e6bb3aaa6ff90d1f64a5.jpg", Link: "Kids accessories"},
		{ID: 5, Title: "Rings", ImageURL: "https://i.pinimg.com/736x/31/b4/e6/31b4e60278a74ff153355d03c2adb079.jpg", Link: "Rings"},
		{ID: 6, Title: "Bangles", ImageURL: "https://i.pinimg.com/736x/c1/3a/0f/c13a0f160a589240038f9419e3167f3e.jpg", Link: "Bangles"},
		{ID: 7, Title: "Bracelets", ImageURL: "https://i.pinimg.com/736x/13/fe/02/13fe026574d9fc451645eb06013c1a53.jpg", Link: "Bracelets"},
		{ID: 8, Title: "Pendants", ImageURL: "https://i.pinimg.com/736x/9f/d5/61/9fd5614d7c7a18266c7a80f57657716f.jpg", Link: "Pendants"},
		{ID: 9, Title: "Anklets", ImageURL: "https://i.pinimg.com/736x/67/a7/ee/67a7ee49cdfdccb1612a114b30b8f051.jpg", Link: "Anklets"},
		{ID: 10, Title: "Nose pins", ImageURL: "https://i.pinimg.com/736x/37/9a/e8/379ae8e9431c54fb34e9638a02e207ba.jpg", Link: "Nose pins"},
		{ID: 11, Title: "Jewelry sets", ImageURL: "https://i.pinimg.com/736x/7d/a4/8c/7da48ca611a797be38fd07d66c2f34e5.jpg", Link: "Jewelry sets"},
		{ID: 12, Title: "Cosmetics", ImageURL: "https://i.pinimg.com/736x/63/f4/f7/63f4f7da9178eb2d6dfe48e00f0bc06f.jpg", Link: "Cosmetics"},
		{ID: 13, Title: "Hijab accessories", ImageURL: "https://i.pinimg.com/1200x/34/eb/68/34eb68d145d790197208134eb8243c1f.jpg", Link: "Hijab accessories"},
		{ID: 14, Title: "Mehndi", ImageURL: "https://i.pinimg.com/1200x/02/52/29/0252292301c34aadae53a642eb8f5c93.jpg", Link: "Mehndi"},
		{ID: 15, Title: "Mystery boxes", ImageURL: "https://i.pinimg.com/1200x/2b/23/ff/2b23ff8b786a868218638f833ccc20b7.jpg", Link: "Mystery boxes"},
	}
}
