package api

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// CategoryInput is shared by product and service categories.
type CategoryInput struct {
	Name  string
	Image *File
}

func (in CategoryInput) form() *Form {
	f := NewForm().Field("name", in.Name)
	if in.Image != nil {
		f.File("image", *in.Image)
	}
	return f
}

type CategoryList struct {
	Categories    []models.Category `json:"categories"`
	TotalCategory int               `json:"totalCategory"`
}

type CategoryMutation struct {
	Category models.Category `json:"category"`
	Message  string          `json:"message"`
}

type ServiceCategoryList struct {
	ServiceCategories    []models.ServiceCategory `json:"serviceCategories"`
	TotalServiceCategory int                      `json:"totalServiceCategory"`
}

type ServiceCategoryMutation struct {
	ServiceCategory models.ServiceCategory `json:"serviceCategory"`
	Message         string                 `json:"message"`
}

func (c *Client) ListCategories(ctx context.Context, q ListQuery) (*CategoryList, error) {
	var out CategoryList
	return &out, c.get(ctx, "/category-get", q.Values(), &out)
}

func (c *Client) AddCategory(ctx context.Context, in CategoryInput) (*CategoryMutation, error) {
	var out CategoryMutation
	return &out, c.post(ctx, "/category-add", in.form(), &out)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*CategoryMutation, error) {
	var out CategoryMutation
	return &out, c.put(ctx, idPath("/category-update/", id), in.form(), &out)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.delete(ctx, idPath("/category-delete/", id), &out)
}

func (c *Client) ListServiceCategories(ctx context.Context, q ListQuery) (*ServiceCategoryList, error) {
	var out ServiceCategoryList
	return &out, c.get(ctx, "/service-category-get", q.Values(), &out)
}

func (c *Client) AddServiceCategory(ctx context.Context, in CategoryInput) (*ServiceCategoryMutation, error) {
	var out ServiceCategoryMutation
	return &out, c.post(ctx, "/service-category-add", in.form(), &out)
}

func (c *Client) UpdateServiceCategory(ctx context.Context, id string, in CategoryInput) (*ServiceCategoryMutation, error) {
	var out ServiceCategoryMutation
	return &out, c.put(ctx, idPath("/service-category-update/", id), in.form(), &out)
}

func (c *Client) DeleteServiceCategory(ctx context.Context, id string) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.delete(ctx, idPath("/service-category-delete/", id), &out)
}

// ProductInput creates a product; images travel as multipart parts.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Brand       string
	ShopName    string
	Price       float64
	Stock       int
	Discount    int
	Images      []File
}

func (in ProductInput) form() *Form {
	f := NewForm().
		Field("name", in.Name).
		Field("description", in.Description).
		Field("category", in.Category).
		Field("brand", in.Brand).
		Field("shopName", in.ShopName).
		Field("price", strconv.FormatFloat(in.Price, 'f', -1, 64)).
		Field("stock", strconv.Itoa(in.Stock)).
		Field("discount", strconv.Itoa(in.Discount))
	for _, img := range in.Images {
		f.File("images", img)
	}
	return f
}

type ProductUpdate struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Discount    int     `json:"discount"`
}

// ProductImageUpdate swaps one stored image for a new upload.
type ProductImageUpdate struct {
	ProductID string
	OldImage  string
	NewImage  File
}

type ProductList struct {
	Products     []models.Product `json:"products"`
	TotalProduct int              `json:"totalProduct"`
}

type ProductResponse struct {
	Product models.Product `json:"product"`
}

type ProductMutation struct {
	Product models.Product `json:"product"`
	Message string         `json:"message"`
}

func (c *Client) ListProducts(ctx context.Context, q ListQuery) (*ProductList, error) {
	var out ProductList
	return &out, c.get(ctx, "/products-get", q.Values(), &out)
}

func (c *Client) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	var out ProductResponse
	return &out, c.get(ctx, idPath("/product-get/", id), nil, &out)
}

func (c *Client) AddProduct(ctx context.Context, in ProductInput) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.post(ctx, "/product-add", in.form(), &out)
}

func (c *Client) UpdateProduct(ctx context.Context, in ProductUpdate) (*ProductMutation, error) {
	var out ProductMutation
	return &out, c.post(ctx, "/product-update", in, &out)
}

func (c *Client) UpdateProductImage(ctx context.Context, in ProductImageUpdate) (*ProductMutation, error) {
	form := NewForm().
		Field("productId", in.ProductID).
		Field("oldImage", in.OldImage).
		File("newImage", in.NewImage)

	var out ProductMutation
	return &out, c.post(ctx, "/product-image-update", form, &out)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.delete(ctx, idPath("/product-delete/", id), &out)
}

type ServiceInput struct {
	Name        string
	Description string
	Category    string
	ShopName    string
	Duration    string
	Price       float64
	Images      []File
}

func (in ServiceInput) form() *Form {
	f := NewForm().
		Field("name", in.Name).
		Field("description", in.Description).
		Field("category", in.Category).
		Field("shopName", in.ShopName).
		Field("duration", in.Duration).
		Field("price", strconv.FormatFloat(in.Price, 'f', -1, 64))
	for _, img := range in.Images {
		f.File("images", img)
	}
	return f
}

type ServiceUpdate struct {
	ServiceID   string  `json:"serviceId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Duration    string  `json:"duration"`
	Price       float64 `json:"price"`
	Status      string  `json:"status,omitempty"`
}

type ServiceList struct {
	Services     []models.Service `json:"services"`
	TotalService int              `json:"totalService"`
}

type ServiceResponse struct {
	Service models.Service `json:"service"`
}

type ServiceMutation struct {
	Service models.Service `json:"service"`
	Message string         `json:"message"`
}

func (c *Client) ListServices(ctx context.Context, q ListQuery) (*ServiceList, error) {
	var out ServiceList
	return &out, c.get(ctx, "/services-get", q.Values(), &out)
}

func (c *Client) GetService(ctx context.Context, id string) (*ServiceResponse, error) {
	var out ServiceResponse
	return &out, c.get(ctx, idPath("/service-get/", id), nil, &out)
}

func (c *Client) AddService(ctx context.Context, in ServiceInput) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.post(ctx, "/service-add", in.form(), &out)
}

func (c *Client) UpdateService(ctx context.Context, in ServiceUpdate) (*ServiceMutation, error) {
	var out ServiceMutation
	return &out, c.post(ctx, "/service-update", in, &out)
}

func (c *Client) DeleteService(ctx context.Context, id string) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.delete(ctx, idPath("/service-delete/", id), &out)
}
