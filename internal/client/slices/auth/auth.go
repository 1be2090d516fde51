// Package auth is the session slice: login, seller registration through an
// emailed one-time code, profile mutations, and the derived role.
//
// The token is the only durable state. Executors write or remove it before
// their result reaches the reducers, so anyone reading the slice after a
// resolved operation sees storage already in agreement. The role is always
// decoded from the token, never taken from the user profile.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/api"
	"github.com/dmitrijs2005/marketadmin/internal/client/lifecycle"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/dmitrijs2005/marketadmin/internal/client/session"
	"github.com/dmitrijs2005/marketadmin/internal/client/slices/entity"
	"github.com/dmitrijs2005/marketadmin/internal/client/storage"
	"github.com/dmitrijs2005/marketadmin/internal/logging"
)

const (
	KeyAdminLogin         = "auth/adminLogin"
	KeySellerLogin        = "auth/sellerLogin"
	KeyRequestOTP         = "auth/requestOtp"
	KeyVerifyOTP          = "auth/verifyOtp"
	KeyFetchUserInfo      = "auth/fetchUserInfo"
	KeyChangePassword     = "auth/changePassword"
	KeyUploadProfileImage = "auth/uploadProfileImage"
	KeyAddProfileInfo     = "auth/addProfileInfo"
)

const (
	msgNotAuthenticated = "Not authenticated"
	msgNoPendingOTP     = "Request a verification code first"
)

type API interface {
	AdminLogin(ctx context.Context, in api.Credentials) (*api.TokenResponse, error)
	SellerLogin(ctx context.Context, in api.Credentials) (*api.TokenResponse, error)
	RequestSellerOTP(ctx context.Context, in api.Registration) (*api.OTPResponse, error)
	VerifySellerOTP(ctx context.Context, in api.OTPVerification) (*api.TokenResponse, error)
	GetUser(ctx context.Context) (*api.UserInfoResponse, error)
	ChangePassword(ctx context.Context, in api.PasswordChange) (*api.MessageResponse, error)
	UploadProfileImage(ctx context.Context, image api.File) (*api.ProfileResponse, error)
	AddProfileInfo(ctx context.Context, in models.ShopInfo) (*api.ProfileResponse, error)
}

type State struct {
	entity.Status
	Token    string
	Role     string
	UserInfo *models.UserInfo

	OTPVerificationRequired bool
	OTPRequestEmail         string
}

// Authenticated reports whether a usable token is held.
func (s State) Authenticated() bool { return s.Token != "" }

// Session is what a successful login or verification resolves to. Token and
// Role are empty when the server handed out a token that is already invalid.
type Session struct {
	Token   string
	Role    string
	Message string
}

type Slice struct {
	api    API
	tokens storage.TokenStorage
	log    logging.Logger
	now    func() time.Time
	cell   *lifecycle.Cell[State]
}

func New(a API, tokens storage.TokenStorage, log logging.Logger, opts ...lifecycle.CellOption) *Slice {
	return &Slice{
		api:    a,
		tokens: tokens,
		log:    log,
		now:    time.Now,
		cell:   lifecycle.NewCell(State{}, opts...),
	}
}

func (s *Slice) State() State { return s.cell.State() }

func (s *Slice) Subscribe(fn func(State)) func() { return s.cell.Subscribe(fn) }

func (s *Slice) Observe(fn func(lifecycle.Event)) func() { return s.cell.Observe(fn) }

// Init seeds the slice from the stored token. An expired or unreadable
// token is discarded silently.
func (s *Slice) Init(ctx context.Context) error {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}

	var sess Session
	if token != "" {
		sess, err = s.validate(ctx, token)
		if err != nil {
			return err
		}
	}

	s.cell.Apply(func(st State) State {
		st.Token = sess.Token
		st.Role = sess.Role
		return st
	})
	return nil
}

// validate decodes a stored token and removes it from storage when it can
// no longer be used.
func (s *Slice) validate(ctx context.Context, token string) (Session, error) {
	role, err := session.Role(token, s.now())
	if err == nil {
		return Session{Token: token, Role: role}, nil
	}

	s.log.Info(ctx, "discarding stored token", "reason", err)
	if err := s.tokens.Remove(ctx); err != nil {
		return Session{}, fmt.Errorf("remove stored token: %w", err)
	}
	return Session{}, nil
}

func (s *Slice) persist(ctx context.Context, res *api.TokenResponse) (Session, error) {
	if err := s.tokens.Set(ctx, res.Token); err != nil {
		return Session{}, fmt.Errorf("store token: %w", err)
	}
	sess, err := s.validate(ctx, res.Token)
	if err != nil {
		return Session{}, err
	}
	sess.Message = res.Message
	return sess, nil
}

func (s *Slice) AdminLogin(ctx context.Context, in api.Credentials) error {
	return s.login(ctx, KeyAdminLogin, s.api.AdminLogin, in)
}

func (s *Slice) SellerLogin(ctx context.Context, in api.Credentials) error {
	return s.login(ctx, KeySellerLogin, s.api.SellerLogin, in)
}

func (s *Slice) login(ctx context.Context, key string, call func(context.Context, api.Credentials) (*api.TokenResponse, error), in api.Credentials) error {
	op := lifecycle.Operation[api.Credentials, Session]{
		Key:      key,
		Fallback: "Login failed",
		Execute: func(ctx context.Context, in api.Credentials) (Session, error) {
			res, err := call(ctx, in)
			if err != nil {
				return Session{}, err
			}
			return s.persist(ctx, res)
		},
	}
	r := lifecycle.Reducers[State, api.Credentials, Session]{
		Pending:   func(st State, _ api.Credentials) State { st.Status = st.Status.Begin(); return st },
		Fulfilled: func(st State, _ api.Credentials, sess Session) State { return st.signIn(sess, "Login success") },
		Rejected:  func(st State, _ api.Credentials, e lifecycle.ErrorPayload) State { st.Status = st.Status.Fail(e); return st },
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, in)
	return err
}

// RequestOTP starts seller registration. Only a successful request moves
// the slice into the verification step.
func (s *Slice) RequestOTP(ctx context.Context, in api.Registration) error {
	op := lifecycle.Operation[api.Registration, string]{
		Key:      KeyRequestOTP,
		Fallback: "Failed to send verification code",
		Execute: func(ctx context.Context, in api.Registration) (string, error) {
			res, err := s.api.RequestSellerOTP(ctx, in)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		},
	}
	r := lifecycle.Reducers[State, api.Registration, string]{
		Pending: func(st State, _ api.Registration) State { st.Status = st.Status.Begin(); return st },
		Fulfilled: func(st State, in api.Registration, msg string) State {
			st.Status = st.Status.Succeed(entity.Message(msg, "Verification code sent"))
			st.OTPVerificationRequired = true
			st.OTPRequestEmail = in.Email
			return st
		},
		Rejected: func(st State, _ api.Registration, e lifecycle.ErrorPayload) State { st.Status = st.Status.Fail(e); return st },
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, in)
	return err
}

// VerifyOTP completes registration with the emailed code. The email of the
// pending request is used when in.Email is blank. A failed attempt keeps
// the verification step open for another try.
func (s *Slice) VerifyOTP(ctx context.Context, in api.OTPVerification) error {
	op := lifecycle.Operation[api.OTPVerification, Session]{
		Key:      KeyVerifyOTP,
		Fallback: "Verification failed",
		Execute: func(ctx context.Context, in api.OTPVerification) (Session, error) {
			st := s.cell.State()
			if !st.OTPVerificationRequired {
				return Session{}, lifecycle.Precondition(msgNoPendingOTP)
			}
			if in.Email == "" {
				in.Email = st.OTPRequestEmail
			}
			res, err := s.api.VerifySellerOTP(ctx, in)
			if err != nil {
				return Session{}, err
			}
			return s.persist(ctx, res)
		},
	}
	r := lifecycle.Reducers[State, api.OTPVerification, Session]{
		Pending: func(st State, _ api.OTPVerification) State { st.Status = st.Status.Begin(); return st },
		Fulfilled: func(st State, _ api.OTPVerification, sess Session) State {
			st = st.signIn(sess, "Registration complete")
			st.OTPVerificationRequired = false
			st.OTPRequestEmail = ""
			return st
		},
		Rejected: func(st State, _ api.OTPVerification, e lifecycle.ErrorPayload) State { st.Status = st.Status.Fail(e); return st },
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, in)
	return err
}

// ResetOTPState abandons a pending registration.
func (s *Slice) ResetOTPState() {
	s.cell.Apply(func(st State) State {
		st.OTPVerificationRequired = false
		st.OTPRequestEmail = ""
		return st
	})
}

// FetchUserInfo loads the profile. Without a token it fails locally with
// the same error shape a server rejection has.
func (s *Slice) FetchUserInfo(ctx context.Context) error {
	op := lifecycle.Operation[struct{}, models.UserInfo]{
		Key:      KeyFetchUserInfo,
		Fallback: "Failed to fetch user info",
		Execute: func(ctx context.Context, _ struct{}) (models.UserInfo, error) {
			if !s.cell.State().Authenticated() {
				return models.UserInfo{}, lifecycle.Precondition(msgNotAuthenticated)
			}
			res, err := s.api.GetUser(ctx)
			if err != nil {
				return models.UserInfo{}, err
			}
			return res.UserInfo, nil
		},
	}
	r := lifecycle.Reducers[State, struct{}, models.UserInfo]{
		Pending: func(st State, _ struct{}) State { st.Status = st.Status.Quiet(); return st },
		Fulfilled: func(st State, _ struct{}, u models.UserInfo) State {
			st.UserInfo = &u
			return st
		},
		Rejected: func(st State, _ struct{}, e lifecycle.ErrorPayload) State {
			st.UserInfo = nil
			st.Status = st.Status.Report(e)
			return st
		},
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, struct{}{})
	return err
}

func (s *Slice) ChangePassword(ctx context.Context, in api.PasswordChange) error {
	op := lifecycle.Operation[api.PasswordChange, string]{
		Key:      KeyChangePassword,
		Fallback: "Failed to change password",
		Execute: func(ctx context.Context, in api.PasswordChange) (string, error) {
			res, err := s.api.ChangePassword(ctx, in)
			if err != nil {
				return "", err
			}
			return res.Message, nil
		},
	}
	r := lifecycle.Reducers[State, api.PasswordChange, string]{
		Pending:   func(st State, _ api.PasswordChange) State { st.Status = st.Status.Begin(); return st },
		Fulfilled: func(st State, _ api.PasswordChange, msg string) State { st.Status = st.Status.Succeed(entity.Message(msg, "Password changed")); return st },
		Rejected:  func(st State, _ api.PasswordChange, e lifecycle.ErrorPayload) State { st.Status = st.Status.Fail(e); return st },
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, in)
	return err
}

func (s *Slice) UploadProfileImage(ctx context.Context, image api.File) error {
	return s.profile(ctx, KeyUploadProfileImage, "Failed to upload image", "Image uploaded", func(ctx context.Context) (*api.ProfileResponse, error) {
		return s.api.UploadProfileImage(ctx, image)
	})
}

func (s *Slice) AddProfileInfo(ctx context.Context, info models.ShopInfo) error {
	return s.profile(ctx, KeyAddProfileInfo, "Failed to save profile", "Profile updated", func(ctx context.Context) (*api.ProfileResponse, error) {
		return s.api.AddProfileInfo(ctx, info)
	})
}

func (s *Slice) profile(ctx context.Context, key, fallback, def string, call func(context.Context) (*api.ProfileResponse, error)) error {
	op := lifecycle.Operation[struct{}, *api.ProfileResponse]{
		Key:      key,
		Fallback: fallback,
		Execute: func(ctx context.Context, _ struct{}) (*api.ProfileResponse, error) {
			return call(ctx)
		},
	}
	r := lifecycle.Reducers[State, struct{}, *api.ProfileResponse]{
		Pending: func(st State, _ struct{}) State { st.Status = st.Status.Begin(); return st },
		Fulfilled: func(st State, _ struct{}, res *api.ProfileResponse) State {
			u := res.UserInfo
			st.UserInfo = &u
			st.Status = st.Status.Succeed(entity.Message(res.Message, def))
			return st
		},
		Rejected: func(st State, _ struct{}, e lifecycle.ErrorPayload) State { st.Status = st.Status.Fail(e); return st },
	}
	_, err := lifecycle.Run(ctx, s.cell, op, r, struct{}{})
	return err
}

// ClearSession drops every session field. Storage is the caller's concern.
func (s *Slice) ClearSession() {
	s.cell.Apply(func(State) State { return State{} })
}

func (s *Slice) ClearMessages() {
	s.cell.Apply(func(st State) State {
		st.Status = st.Status.Cleared()
		return st
	})
}

func (st State) signIn(sess Session, def string) State {
	st.Token = sess.Token
	st.Role = sess.Role
	st.Status = st.Status.Succeed(entity.Message(sess.Message, def))
	return st
}
