package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shoplyhq/shoply/internal/account/entity"
	"github.com/shoplyhq/shoply/internal/pkg/goerror"
	"golang.org/x/oauth2"
)

type ProviderAuthInput struct {
	Provider string `validate:"required,alpha"`
	Code     string `validate:"required"`
	State    string `validate:"omitempty"`
}

type ProviderAuthOutput struct {
	AccessToken  string
	RefreshToken string
	Cookies      []*http.Cookie
}

type providerUserInfo struct {
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Name       string `json:"name"`
}

// ProviderAuth exchanges an OAuth authorization code for a local session.
// Accounts reached through a provider are created active; the provider has
// already verified the email.
func (s *Usecase) ProviderAuth(ctx context.Context, in ProviderAuthInput) (*ProviderAuthOutput, error) {
	ctx, span := s.startSpan(ctx, "ProviderAuth")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	prefix := "oauth.providers." + in.Provider + "."
	conf := &oauth2.Config{
		ClientID:     s.cfg.GetString(prefix + "client_id"),
		ClientSecret: s.cfg.GetString(prefix + "client_secret"),
		RedirectURL:  s.cfg.GetString(prefix + "redirect_uri"),
		Scopes:       s.cfg.GetArray(prefix + "scopes"),
		Endpoint: oauth2.Endpoint{
			AuthURL:  s.cfg.GetString(prefix + "auth_url"),
			TokenURL: s.cfg.GetString(prefix + "token_url"),
		},
	}
	userinfoURL := s.cfg.GetString(prefix + "userinfo_url")

	if conf.ClientID == "" || conf.Endpoint.TokenURL == "" || userinfoURL == "" {
		return nil, goerror.NewBusiness("Unknown authentication provider.", goerror.CodeNotFound)
	}

	tok, err := conf.Exchange(ctx, in.Code)
	if err != nil {
		slog.WarnContext(ctx, "oauth code exchange failed", "provider", in.Provider, "error", err)
		return nil, goerror.NewBusiness("Failed to authenticate with the provider.", goerror.CodeUnauthorized)
	}

	info, err := fetchProviderUserInfo(ctx, conf.Client(ctx, tok), userinfoURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch provider user info", "provider", in.Provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	email := strings.TrimSpace(strings.ToLower(info.Email))
	if email == "" {
		return nil, goerror.NewBusiness("The provider did not share an email address.", goerror.CodeInvalidInput)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		user, err = s.createProviderUser(ctx, email, info)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve provider user", "provider", in.Provider, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !user.IsActive {
		if err := s.repoDB.ActivateUser(ctx, user.ID); err != nil {
			slog.ErrorContext(ctx, "failed to repo activate user", "user_id", user.ID, "error", err)
			return nil, goerror.NewServer(err)
		}
	}

	access, refresh, err := s.issuePair(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session tokens", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ProviderAuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		Cookies:      s.sessionCookies(access, refresh),
	}, nil
}

func (s *Usecase) createProviderUser(ctx context.Context, email string, info *providerUserInfo) (*entity.User, error) {
	first := strings.TrimSpace(info.GivenName)
	last := strings.TrimSpace(info.FamilyName)
	if first == "" && info.Name != "" {
		parts := strings.Fields(info.Name)
		first = parts[0]
		if len(parts) > 1 {
			last = strings.Join(parts[1:], " ")
		}
	}

	newUser := entity.NewUser{
		ID:        s.uid.Generate(),
		Email:     email,
		UserName:  email[:strings.Index(email, "@")],
		FirstName: first,
		LastName:  last,
		Role:      s.cfg.GetString("modules.account.default_role"),
	}

	// No usable password; the random hash input can never be presented.
	hashed, err := s.bcrypt.Hash(s.uuid.Generate())
	if err != nil {
		return nil, err
	}

	if err := s.repoDB.CreateUser(ctx, newUser, string(hashed)); err != nil && !errors.Is(err, goerror.ErrConflict) {
		return nil, err
	}

	return s.repoDB.GetUserByEmail(ctx, email)
}

func fetchProviderUserInfo(ctx context.Context, client *http.Client, url string) (*providerUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("provider userinfo returned " + resp.Status)
	}

	var info providerUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}

	return &info, nil
}
