package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

func (a *App) login(ctx context.Context, args []string) error {
	role := models.RoleAdmin
	if len(args) > 0 {
		role = args[0]
	}
	if role != models.RoleAdmin && role != models.RoleSeller {
		return errUsage
	}

	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := a.password("Password")
	if err != nil {
		return err
	}

	in := api.Credentials{Email: email, Password: password}
	if role == models.RoleAdmin {
		return a.store.Auth.AdminLogin(ctx, in)
	}
	return a.store.Auth.SellerLogin(ctx, in)
}

func (a *App) register(ctx context.Context, _ []string) error {
	name, err := a.ask("Name")
	if err != nil {
		return err
	}
	email, err := a.ask("Email")
	if err != nil {
		return err
	}
	password, err := a.password("Password")
	if err != nil {
		return err
	}

	if err := a.store.Auth.RequestOTP(ctx, api.Registration{Name: name, Email: email, Password: password}); err != nil {
		return err
	}
	a.print(mutedStyle.Render("Check your inbox, then run: verify <code>"))
	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	var code string
	if len(args) > 0 {
		code = args[0]
	} else {
		var err error
		if code, err = a.ask("Verification code"); err != nil {
			return err
		}
	}
	if code == "" {
		return errUsage
	}
	return a.store.Auth.VerifyOTP(ctx, api.OTPVerification{OTP: code})
}

func (a *App) cancel(context.Context, []string) error {
	a.store.Auth.ResetOTPState()
	a.print(mutedStyle.Render("Registration cancelled"))
	return nil
}

func (a *App) whoami(ctx context.Context, _ []string) error {
	if err := a.store.Auth.FetchUserInfo(ctx); err != nil {
		return err
	}
	st := a.store.Auth.State()
	u := st.UserInfo
	fields := []field{
		{"Name", u.Name},
		{"Email", u.Email},
		{"Role", st.Role},
		{"Status", orDash(u.Status)},
	}
	if u.ShopInfo != nil {
		fields = append(fields,
			field{"Shop", orDash(u.ShopInfo.ShopName)},
			field{"Division", orDash(u.ShopInfo.Division)},
			field{"District", orDash(u.ShopInfo.District)},
			field{"Sub-district", orDash(u.ShopInfo.SubDistrict)},
		)
	}
	a.print(renderFields("Profile", fields))
	return nil
}

func (a *App) changePassword(ctx context.Context, _ []string) error {
	u, err := a.userInfo(ctx)
	if err != nil {
		return err
	}
	oldPassword, err := a.password("Current password")
	if err != nil {
		return err
	}
	newPassword, err := a.password("New password")
	if err != nil {
		return err
	}
	confirm, err := a.password("Repeat new password")
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return errors.New("passwords do not match")
	}
	return a.store.Auth.ChangePassword(ctx, api.PasswordChange{
		Email:       u.Email,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
}

func (a *App) shop(ctx context.Context, _ []string) error {
	var info models.ShopInfo
	for _, q := range []struct {
		prompt string
		dst    *string
	}{
		{"Shop name", &info.ShopName},
		{"Division", &info.Division},
		{"District", &info.District},
		{"Sub-district", &info.SubDistrict},
	} {
		v, err := a.ask(q.prompt)
		if err != nil {
			return err
		}
		*q.dst = v
	}
	return a.store.Auth.AddProfileInfo(ctx, info)
}

func (a *App) avatar(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	img, closeFn, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer closeFn()
	return a.store.Auth.UploadProfileImage(ctx, img)
}

func (a *App) logout(ctx context.Context, _ []string) error {
	return a.store.Logout(ctx, func(route string) {
		a.print(mutedStyle.Render("Signed out, continue at " + route))
	})
}
