package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/category"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/servicecategory"
)

var (
	productHeaders  = []string{"ID", "Name", "Category", "Brand", "Price", "Stock", "Discount"}
	serviceHeaders  = []string{"ID", "Name", "Category", "Duration", "Price", "Status"}
	categoryHeaders = []string{"ID", "Name", "Slug"}
)

func productRow(p models.Product) []string {
	return []string{p.ID, p.Name, p.Category, p.Brand, money(p.Price), strconv.Itoa(p.Stock), strconv.Itoa(p.Discount) + "%"}
}

func serviceRow(s models.Service) []string {
	return []string{s.ID, s.Name, s.Category, orDash(s.Duration), money(s.Price), orDash(s.Status)}
}

func (a *App) products(ctx context.Context, args []string) error {
	q, err := a.listQuery(args)
	if err != nil {
		return err
	}
	if err := a.store.Product.List(ctx, q); err != nil {
		return err
	}
	a.print(renderPage("Products", a.store.Product.State().List, q.PerPage, productHeaders, productRow))
	return nil
}

func (a *App) product(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Product.Get(ctx, args[0]); err != nil {
		return err
	}
	p := a.store.Product.State().Detail.Entity
	a.print(renderFields(p.Name, []field{
		{"ID", p.ID},
		{"Category", orDash(p.Category)},
		{"Brand", orDash(p.Brand)},
		{"Shop", orDash(p.ShopName)},
		{"Price", money(p.Price)},
		{"Stock", strconv.Itoa(p.Stock)},
		{"Discount", strconv.Itoa(p.Discount) + "%"},
		{"Images", orDash(strings.Join(p.Images, "\n"))},
		{"Description", orDash(p.Description)},
	}))
	return nil
}

func (a *App) addProduct(ctx context.Context, _ []string) error {
	var in api.ProductInput
	var err error
	if in.Name, err = a.ask("Name"); err != nil {
		return err
	}
	if in.Category, err = a.ask("Category"); err != nil {
		return err
	}
	if in.Brand, err = a.ask("Brand"); err != nil {
		return err
	}
	if in.ShopName, err = a.ask("Shop name"); err != nil {
		return err
	}
	price, err := a.ask("Price")
	if err != nil {
		return err
	}
	if in.Price, err = parseFloat("price", price); err != nil {
		return err
	}
	stock, err := a.ask("Stock")
	if err != nil {
		return err
	}
	if in.Stock, err = parseInt("stock", stock); err != nil {
		return err
	}
	discount, err := a.ask("Discount (%)")
	if err != nil {
		return err
	}
	if in.Discount, err = parseInt("discount", keep(discount, "0")); err != nil {
		return err
	}
	if in.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	paths, err := a.ask("Image paths (space separated, optional)")
	if err != nil {
		return err
	}
	for _, p := range strings.Fields(paths) {
		img, closeFn, err := openFile(p)
		if err != nil {
			return err
		}
		defer closeFn()
		in.Images = append(in.Images, img)
	}
	return a.store.Product.Create(ctx, in)
}

// editProduct loads the product and asks for each field, keeping the current
// value on a blank answer.
func (a *App) editProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Product.Get(ctx, args[0]); err != nil {
		return err
	}
	p := *a.store.Product.State().Detail.Entity

	ask := func(label, current string) (string, error) {
		v, err := a.ask(label + " [" + current + "]")
		return keep(v, current), err
	}
	in := api.ProductUpdate{ProductID: p.ID}
	var err error
	if in.Name, err = ask("Name", p.Name); err != nil {
		return err
	}
	if in.Category, err = ask("Category", p.Category); err != nil {
		return err
	}
	if in.Brand, err = ask("Brand", p.Brand); err != nil {
		return err
	}
	if in.Description, err = ask("Description", p.Description); err != nil {
		return err
	}
	price, err := ask("Price", money(p.Price))
	if err != nil {
		return err
	}
	if in.Price, err = parseFloat("price", price); err != nil {
		return err
	}
	stock, err := ask("Stock", strconv.Itoa(p.Stock))
	if err != nil {
		return err
	}
	if in.Stock, err = parseInt("stock", stock); err != nil {
		return err
	}
	discount, err := ask("Discount (%)", strconv.Itoa(p.Discount))
	if err != nil {
		return err
	}
	if in.Discount, err = parseInt("discount", discount); err != nil {
		return err
	}
	return a.store.Product.Update(ctx, in)
}

func (a *App) productImage(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errUsage
	}
	img, closeFn, err := openFile(args[2])
	if err != nil {
		return err
	}
	defer closeFn()
	return a.store.Product.UpdateImage(ctx, api.ProductImageUpdate{ProductID: args[0], OldImage: args[1], NewImage: img})
}

func (a *App) deleteProduct(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Product.Delete(ctx, args[0]); err != nil {
		return err
	}
	if a.store.Product.State().List.Contains(args[0]) {
		a.print(mutedStyle.Render("Still shown on the current page until you list products again."))
	}
	return nil
}

func (a *App) categories(ctx context.Context, args []string) error {
	q, err := a.listQuery(args)
	if err != nil {
		return err
	}
	if err := a.store.Category.List(ctx, q); err != nil {
		return err
	}
	a.print(renderPage("Categories", a.store.Category.State().List, q.PerPage, categoryHeaders,
		func(c models.Category) []string { return []string{c.ID, c.Name, orDash(c.Slug)} }))
	return nil
}

func (a *App) addCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	return a.store.Category.Create(ctx, api.CategoryInput{Name: strings.Join(args, " ")})
}

func (a *App) renameCategory(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	return a.store.Category.Update(ctx, category.Edit{ID: args[0], Input: api.CategoryInput{Name: strings.Join(args[1:], " ")}})
}

func (a *App) deleteCategory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return a.store.Category.Delete(ctx, args[0])
}

func (a *App) services(ctx context.Context, args []string) error {
	q, err := a.listQuery(args)
	if err != nil {
		return err
	}
	if err := a.store.Service.List(ctx, q); err != nil {
		return err
	}
	a.print(renderPage("Services", a.store.Service.State().List, q.PerPage, serviceHeaders, serviceRow))
	return nil
}

func (a *App) service(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Service.Get(ctx, args[0]); err != nil {
		return err
	}
	s := a.store.Service.State().Detail.Entity
	a.print(renderFields(s.Name, []field{
		{"ID", s.ID},
		{"Category", orDash(s.Category)},
		{"Shop", orDash(s.ShopName)},
		{"Duration", orDash(s.Duration)},
		{"Price", money(s.Price)},
		{"Status", orDash(s.Status)},
		{"Description", orDash(s.Description)},
	}))
	return nil
}

func (a *App) addService(ctx context.Context, _ []string) error {
	var in api.ServiceInput
	var err error
	if in.Name, err = a.ask("Name"); err != nil {
		return err
	}
	if in.Category, err = a.ask("Category"); err != nil {
		return err
	}
	if in.ShopName, err = a.ask("Shop name"); err != nil {
		return err
	}
	if in.Duration, err = a.ask("Duration"); err != nil {
		return err
	}
	price, err := a.ask("Price")
	if err != nil {
		return err
	}
	if in.Price, err = parseFloat("price", price); err != nil {
		return err
	}
	if in.Description, err = GetMultiline(a.reader, "Description", a.out); err != nil {
		return err
	}
	return a.store.Service.Create(ctx, in)
}

func (a *App) editService(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Service.Get(ctx, args[0]); err != nil {
		return err
	}
	s := *a.store.Service.State().Detail.Entity

	ask := func(label, current string) (string, error) {
		v, err := a.ask(label + " [" + current + "]")
		return keep(v, current), err
	}
	in := api.ServiceUpdate{ServiceID: s.ID, Status: s.Status}
	var err error
	if in.Name, err = ask("Name", s.Name); err != nil {
		return err
	}
	if in.Category, err = ask("Category", s.Category); err != nil {
		return err
	}
	if in.Duration, err = ask("Duration", s.Duration); err != nil {
		return err
	}
	if in.Description, err = ask("Description", s.Description); err != nil {
		return err
	}
	price, err := ask("Price", money(s.Price))
	if err != nil {
		return err
	}
	if in.Price, err = parseFloat("price", price); err != nil {
		return err
	}
	return a.store.Service.Update(ctx, in)
}

func (a *App) deleteService(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := a.store.Service.Delete(ctx, args[0]); err != nil {
		return err
	}
	if a.store.Service.State().List.Contains(args[0]) {
		a.print(mutedStyle.Render("Still shown on the current page until you list services again."))
	}
	return nil
}

func (a *App) serviceCategories(ctx context.Context, args []string) error {
	q, err := a.listQuery(args)
	if err != nil {
		return err
	}
	if err := a.store.ServiceCategory.List(ctx, q); err != nil {
		return err
	}
	a.print(renderPage("Service categories", a.store.ServiceCategory.State().List, q.PerPage, categoryHeaders,
		func(c models.ServiceCategory) []string { return []string{c.ID, c.Name, orDash(c.Slug)} }))
	return nil
}

func (a *App) addServiceCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	return a.store.ServiceCategory.Create(ctx, api.CategoryInput{Name: strings.Join(args, " ")})
}

func (a *App) renameServiceCategory(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	return a.store.ServiceCategory.Update(ctx, servicecategory.Edit{ID: args[0], Input: api.CategoryInput{Name: strings.Join(args[1:], " ")}})
}

func (a *App) deleteServiceCategory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return a.store.ServiceCategory.Delete(ctx, args[0])
}
