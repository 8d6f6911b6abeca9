package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"insurance-portal/internal/models"
	"insurance-portal/internal/session"
	"insurance-portal/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Directory looks up accounts by email or id. Unknown users are reported
// as nil without an error.
type Directory interface {
	GetByEmail(ctx context.Context, email string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// LoginInput is the sign-in form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ValidationError carries one message per offending form field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

var fieldMessages = map[string]map[string]string{
	"email": {
		"required": "Email is required",
		"email":    "Invalid email address",
	},
	"password": {
		"required": "Password is required",
		"min":      "Password must be at least 6 characters",
	},
}

type AuthService struct {
	users         Directory
	revoked       session.Revocations
	sessionSecret string
	ttl           time.Duration
	delay         time.Duration
	validate      *validator.Validate
	log           zerolog.Logger
}

type AuthOptions struct {
	SessionSecret string
	TTL           time.Duration
	// Delay is slept before every login attempt.
	Delay time.Duration
}

func NewAuthService(users Directory, revoked session.Revocations, opts AuthOptions, log zerolog.Logger) *AuthService {
	if opts.TTL <= 0 {
		opts.TTL = 24 * time.Hour
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return &AuthService{
		users:         users,
		revoked:       revoked,
		sessionSecret: opts.SessionSecret,
		ttl:           opts.TTL,
		delay:         opts.Delay,
		validate:      v,
		log:           log,
	}
}

// Validate checks the form before any lookup happens.
func (a *AuthService) Validate(in LoginInput) error {
	err := a.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := map[string]string{}
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		fields[fe.Field()] = msg
	}
	return &ValidationError{Fields: fields}
}

// Login validates the form, waits out the configured delay and checks the
// password against the account directory. s is marked loading for the
// duration of the attempt and signed in on success; a nil s gets a fresh
// session.
func (a *AuthService) Login(ctx context.Context, s *session.Session, in LoginInput) (session.State, error) {
	if s == nil {
		s = session.New()
	}
	in.Email = strings.TrimSpace(in.Email)
	if err := a.Validate(in); err != nil {
		return s.State(), err
	}

	s.SetLoading(true)
	u, tok, err := a.attempt(ctx, in)
	if err != nil {
		s.SetLoading(false)
		return s.State(), err
	}
	s.Login(u, tok)
	a.log.Info().Str("user", u.ID).Str("role", string(u.Role)).Msg("login")
	return s.State(), nil
}

func (a *AuthService) attempt(ctx context.Context, in LoginInput) (*models.User, string, error) {
	if a.delay > 0 {
		t := time.NewTimer(a.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return nil, "", ctx.Err()
		case <-t.C:
		}
	}

	u, hash, err := a.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !utils.CheckPassword(hash, in.Password) {
		a.log.Info().Str("email", in.Email).Msg("login rejected")
		return nil, "", ErrInvalidCredentials
	}
	tok, _, err := utils.SignJWT(a.sessionSecret, u, a.ttl)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Authenticate resolves a bearer token to its user. Revoked, expired or
// unparsable tokens yield ErrInvalidCredentials.
func (a *AuthService) Authenticate(ctx context.Context, token string) (*models.User, *utils.Claims, error) {
	c, err := utils.ParseJWT(a.sessionSecret, token)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}
	if c.ID != "" {
		revoked, err := a.revoked.Revoked(ctx, c.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, nil, ErrInvalidCredentials
		}
	}
	u, err := a.users.GetByID(ctx, c.UserID)
	if err != nil {
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, ErrInvalidCredentials
	}
	return u, c, nil
}

// Logout revokes the token until it would have expired. Tokens that no
// longer parse are already unusable and are ignored.
func (a *AuthService) Logout(ctx context.Context, token string) error {
	c, err := utils.ParseJWT(a.sessionSecret, token)
	if err != nil || c.ID == "" || c.ExpiresAt == nil {
		return nil
	}
	if err := a.revoked.Revoke(ctx, c.ID, c.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	a.log.Info().Str("user", c.UserID).Msg("logout")
	return nil
}

// Me returns the session state for an already authenticated user.
func (a *AuthService) Me(u *models.User, token string) session.State {
	s := session.New()
	if u != nil {
		s.Login(u, token)
	}
	st := s.State()
	st.Token = ""
	return st
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
