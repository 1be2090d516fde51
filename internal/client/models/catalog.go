package models

// Category groups products.
type Category struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Image string `json:"image,omitempty"`
}

func (c Category) EntityID() string { return c.ID }

// ServiceCategory groups services.
type ServiceCategory struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Image string `json:"image,omitempty"`
}

func (c ServiceCategory) EntityID() string { return c.ID }

type Product struct {
	ID          string   `json:"_id"`
	SellerID    string   `json:"sellerId,omitempty"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Category    string   `json:"category,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Discount    int      `json:"discount"`
	Description string   `json:"description,omitempty"`
	ShopName    string   `json:"shopName,omitempty"`
	Images      []string `json:"images,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
}

func (p Product) EntityID() string { return p.ID }

// Service is a bookable offering listed by a seller.
type Service struct {
	ID          string   `json:"_id"`
	SellerID    string   `json:"sellerId,omitempty"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug,omitempty"`
	Category    string   `json:"category,omitempty"`
	Price       float64  `json:"price"`
	Duration    string   `json:"duration,omitempty"`
	Description string   `json:"description,omitempty"`
	ShopName    string   `json:"shopName,omitempty"`
	Images      []string `json:"images,omitempty"`
	Status      string   `json:"status,omitempty"`
}

func (s Service) EntityID() string { return s.ID }
