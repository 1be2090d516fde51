package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/config"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
	"github.com/dmitrijs2005/marketadmin/internal/client/store"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

type App struct {
	config   *config.Config
	store    *store.Store
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
	password func(prompt string) (string, error)
}

func NewApp(c *config.Config, s *store.Store, log logging.Logger) *App {
	a := &App{config: c, store: s, log: log, reader: bufio.NewReader(os.Stdin), out: os.Stdout}
	a.password = func(prompt string) (string, error) { return GetPassword(a.out, prompt) }
	return a
}

// Run blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	printlnFn("Welcome to the marketadmin console (type 'help' for commands)")
	a.log.Info(ctx, "console started", "api", a.config.APIBaseURL, "authenticated", a.isLoggedIn())
	runREPL(ctx, a.commands(), a.isLoggedIn, a.status, a.reader, a.toast)
}

func (a *App) commands() []command {
	cmds := []command{
		{name: "login", usage: "login [admin|seller]", scope: scopeGuest, run: a.login},
		{name: "register", usage: "register", scope: scopeGuest, run: a.register},
		{name: "verify", usage: "verify [code]", scope: scopeGuest, run: a.verify},
		{name: "cancel", usage: "cancel", scope: scopeGuest, run: a.cancel},
		{name: "whoami", usage: "whoami", scope: scopeSession, run: a.whoami},
		{name: "passwd", usage: "passwd", scope: scopeSession, run: a.changePassword},
		{name: "shop", usage: "shop", scope: scopeSession, run: a.shop},
		{name: "avatar", usage: "avatar <image path>", scope: scopeSession, run: a.avatar},
		{name: "logout", usage: "logout", scope: scopeSession, run: a.logout},

		{name: "products", aliases: []string{"p"}, usage: "products [page] [search]", scope: scopeSession, run: a.products},
		{name: "product", usage: "product <id>", scope: scopeSession, run: a.product},
		{name: "addproduct", usage: "addproduct", scope: scopeSession, run: a.addProduct},
		{name: "editproduct", usage: "editproduct <id>", scope: scopeSession, run: a.editProduct},
		{name: "productimage", usage: "productimage <id> <old image url> <new image path>", scope: scopeSession, run: a.productImage},
		{name: "delproduct", usage: "delproduct <id>", scope: scopeSession, run: a.deleteProduct},
		{name: "categories", usage: "categories [page] [search]", scope: scopeSession, run: a.categories},
		{name: "addcategory", usage: "addcategory <name>", scope: scopeSession, run: a.addCategory},
		{name: "renamecategory", usage: "renamecategory <id> <name>", scope: scopeSession, run: a.renameCategory},
		{name: "delcategory", usage: "delcategory <id>", scope: scopeSession, run: a.deleteCategory},
		{name: "services", usage: "services [page] [search]", scope: scopeSession, run: a.services},
		{name: "service", usage: "service <id>", scope: scopeSession, run: a.service},
		{name: "addservice", usage: "addservice", scope: scopeSession, run: a.addService},
		{name: "editservice", usage: "editservice <id>", scope: scopeSession, run: a.editService},
		{name: "delservice", usage: "delservice <id>", scope: scopeSession, run: a.deleteService},
		{name: "servicecategories", usage: "servicecategories [page] [search]", scope: scopeSession, run: a.serviceCategories},
		{name: "addservicecategory", usage: "addservicecategory <name>", scope: scopeSession, run: a.addServiceCategory},
		{name: "renameservicecategory", usage: "renameservicecategory <id> <name>", scope: scopeSession, run: a.renameServiceCategory},
		{name: "delservicecategory", usage: "delservicecategory <id>", scope: scopeSession, run: a.deleteServiceCategory},

		{name: "sellers", usage: "sellers [active|deactivated|requests] [page] [search]", scope: scopeSession, run: a.sellers},
		{name: "seller", usage: "seller <id>", scope: scopeSession, run: a.seller},
		{name: "sellerstatus", usage: "sellerstatus <id> <active|deactive|pending>", scope: scopeSession, run: a.sellerStatus},

		{name: "orders", aliases: []string{"o"}, usage: "orders [page] [search]", scope: scopeSession, run: a.orders},
		{name: "order", usage: "order <id>", scope: scopeSession, run: a.order},
		{name: "orderstatus", usage: "orderstatus <id> <status>", scope: scopeSession, run: a.orderStatus},

		{name: "dashboard", aliases: []string{"d"}, usage: "dashboard [period]", scope: scopeSession, run: a.dashboard},
		{name: "analytics", usage: "analytics [period]", scope: scopeSession, run: a.analytics},
	}
	for i := range cmds {
		if cmds[i].scope == scopeSession {
			cmds[i].run = a.dropRevoked(cmds[i].run)
		}
	}
	return cmds
}

// dropRevoked ends the session when the server answers 401 to a command,
// the same way an expired token is dropped at start-up.
func (a *App) dropRevoked(run func(context.Context, []string) error) func(context.Context, []string) error {
	return func(ctx context.Context, args []string) error {
		err := run(ctx, args)
		if err == nil || !a.isLoggedIn() || !errors.Is(err, api.ErrUnauthorized) {
			return err
		}
		a.log.Info(ctx, "session rejected by server, logging out", "error", err)
		a.print(mutedStyle.Render("Your session is no longer valid."))
		if lerr := a.logout(ctx, nil); lerr != nil {
			return lerr
		}
		return err
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Auth.State().Authenticated()
}

func (a *App) isAdmin() bool {
	return a.store.Auth.State().Role == models.RoleAdmin
}

func (a *App) status() string {
	st := a.store.Auth.State()
	s := st.Role
	if st.UserInfo != nil && st.UserInfo.Name != "" {
		s = st.UserInfo.Name + " " + s
	}
	if st.OTPVerificationRequired {
		s = strings.TrimSpace(s + " awaiting code for " + st.OTPRequestEmail)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// toast prints whatever messages the last command left in the store, then
// dismisses them.
func (a *App) toast() {
	st := a.store.Snapshot()
	for _, s := range []entity.Status{
		st.Auth.Status, st.Category.Status, st.Product.Status, st.Service.Status,
		st.ServiceCategory.Status, st.Seller.Status, st.Order.Status,
		st.Dashboard.Status, st.Analytics.Status,
	} {
		if s.ErrorMessage != "" {
			fmt.Fprintln(a.out, errorStyle.Render(s.ErrorMessage))
		}
		if s.SuccessMessage != "" {
			fmt.Fprintln(a.out, successStyle.Render(s.SuccessMessage))
		}
	}
	a.store.ClearMessages()
}

func (a *App) print(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) ask(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// listQuery reads "[page] [search...]" arguments.
func (a *App) listQuery(args []string) (api.ListQuery, error) {
	q := api.ListQuery{Page: 1, PerPage: a.config.PageSize}
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			if n < 1 {
				return q, errUsage
			}
			q.Page = n
			args = args[1:]
		}
	}
	q.SearchText = strings.Join(args, " ")
	return q, nil
}

// userInfo returns the profile, fetching it once per session.
func (a *App) userInfo(ctx context.Context) (*models.UserInfo, error) {
	if u := a.store.Auth.State().UserInfo; u != nil {
		return u, nil
	}
	if err := a.store.Auth.FetchUserInfo(ctx); err != nil {
		return nil, err
	}
	return a.store.Auth.State().UserInfo, nil
}

func openFile(path string) (api.File, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return api.File{}, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return api.File{Name: filepath.Base(path), Content: f}, func() { _ = f.Close() }, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

// keep returns current when the user left the answer blank.
func keep(answer, current string) string {
	if strings.TrimSpace(answer) == "" {
		return current
	}
	return answer
}
