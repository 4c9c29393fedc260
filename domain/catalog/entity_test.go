package catalog

import "testing"

func validProduct() *Product {
	return &Product{
		ID:          "1",
		Name:        "Dome Camera",
		Description: "Indoor dome camera",
		Price:       99.99,
		Stock:       10,
		Category:    "Indoor",
		ImageURLs:   []string{"https://example.com/dome.jpg"},
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *Product)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid product",
			mutate: func(p *Product) {},
		},
		{
			name:      "missing name",
			mutate:    func(p *Product) { p.Name = "  " },
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "missing description",
			mutate:    func(p *Product) { p.Description = "" },
			wantField: "description",
			wantMsg:   "Description is required",
		},
		{
			name:      "zero price",
			mutate:    func(p *Product) { p.Price = 0 },
			wantField: "price",
			wantMsg:   "Price must be a positive number",
		},
		{
			name:      "negative price",
			mutate:    func(p *Product) { p.Price = -5 },
			wantField: "price",
			wantMsg:   "Price must be a positive number",
		},
		{
			name:      "negative stock",
			mutate:    func(p *Product) { p.Stock = -1 },
			wantField: "stock",
			wantMsg:   "Stock must be a non-negative integer",
		},
		{
			name:      "missing category",
			mutate:    func(p *Product) { p.Category = "" },
			wantField: "category",
			wantMsg:   "Category is required",
		},
		{
			name:      "no image URLs",
			mutate:    func(p *Product) { p.ImageURLs = nil },
			wantField: "image_urls",
			wantMsg:   "At least one image URL is required",
		},
		{
			name:      "only blank image URLs",
			mutate:    func(p *Product) { p.ImageURLs = []string{"  ", ""} },
			wantField: "image_urls",
			wantMsg:   "At least one image URL is required",
		},
		{
			name:      "malformed image URL",
			mutate:    func(p *Product) { p.ImageURLs = []string{"http://%zz"} },
			wantField: "image_urls",
			wantMsg:   "All URLs must be valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("Validate() error = %T, want ValidationErrors", err)
			}
			if got := verrs[tt.wantField]; got != tt.wantMsg {
				t.Errorf("Validate() %s = %q, want %q", tt.wantField, got, tt.wantMsg)
			}
		})
	}
}

func TestProduct_Validate_TrimsImageURLs(t *testing.T) {
	p := validProduct()
	p.ImageURLs = []string{" https://example.com/a.jpg ", "", "https://example.com/b.jpg"}

	if err := p.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	want := []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}
	if len(p.ImageURLs) != len(want) {
		t.Fatalf("expected %d URLs, got %d", len(want), len(p.ImageURLs))
	}
	for i, u := range want {
		if p.ImageURLs[i] != u {
			t.Errorf("ImageURLs[%d] = %q, want %q", i, p.ImageURLs[i], u)
		}
	}
}

func TestNextID(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty catalog", nil, "1"},
		{"sequential ids", []string{"1", "2", "3"}, "4"},
		{"gap after delete", []string{"1", "3"}, "4"},
		{"ignores non-numeric", []string{"1", "abc", "7"}, "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.existing); got != tt.want {
				t.Errorf("NextID(%v) = %q, want %q", tt.existing, got, tt.want)
			}
		})
	}
}
