package api

import (
	"context"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration starts the seller OTP sub-flow.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type OTPVerification struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type PasswordChange struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type OTPResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type UserInfoResponse struct {
	UserInfo models.UserInfo `json:"userInfo"`
}

type ProfileResponse struct {
	UserInfo models.UserInfo `json:"userInfo"`
	Message  string          `json:"message"`
}

func (c *Client) AdminLogin(ctx context.Context, in Credentials) (*TokenResponse, error) {
	var out TokenResponse
	return &out, c.post(ctx, "/admin-login", in, &out)
}

func (c *Client) SellerLogin(ctx context.Context, in Credentials) (*TokenResponse, error) {
	var out TokenResponse
	return &out, c.post(ctx, "/seller-login", in, &out)
}

func (c *Client) RequestSellerOTP(ctx context.Context, in Registration) (*OTPResponse, error) {
	var out OTPResponse
	return &out, c.post(ctx, "/request-seller-otp", in, &out)
}

func (c *Client) VerifySellerOTP(ctx context.Context, in OTPVerification) (*TokenResponse, error) {
	var out TokenResponse
	return &out, c.post(ctx, "/verify-seller-otp", in, &out)
}

func (c *Client) GetUser(ctx context.Context) (*UserInfoResponse, error) {
	var out UserInfoResponse
	return &out, c.get(ctx, "/get-user", nil, &out)
}

func (c *Client) ChangePassword(ctx context.Context, in PasswordChange) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.post(ctx, "/change-password", in, &out)
}

func (c *Client) UploadProfileImage(ctx context.Context, image File) (*ProfileResponse, error) {
	var out ProfileResponse
	return &out, c.post(ctx, "/profile-image-upload", NewForm().File("image", image), &out)
}

func (c *Client) AddProfileInfo(ctx context.Context, in models.ShopInfo) (*ProfileResponse, error) {
	var out ProfileResponse
	return &out, c.post(ctx, "/profile-info-add", in, &out)
}

func (c *Client) Logout(ctx context.Context) (*MessageResponse, error) {
	var out MessageResponse
	return &out, c.post(ctx, "/logout", nil, &out)
}
