// Package google exchanges Google OAuth authorization codes for user identities.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/bud-backend/internal/auth"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

const (
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	retryBackoff       = 500 * time.Millisecond
)

// Verifier exchanges Google OAuth authorization codes for user identity.
type Verifier struct {
	clientID     string
	clientSecret string
	redirectURI  string
	tokenURL     string
	userinfoURL  string
	httpClient   *http.Client
	log          *slog.Logger
}

// NewVerifier creates a verifier against Google's production endpoints.
func NewVerifier(clientID, clientSecret, redirectURI string, logger *slog.Logger) *Verifier {
	return NewVerifierWithURLs(clientID, clientSecret, redirectURI, defaultTokenURL, defaultUserinfoURL, logger)
}

// NewVerifierWithURLs creates a verifier with custom endpoints (for testing).
func NewVerifierWithURLs(clientID, clientSecret, redirectURI, tokenURL, userinfoURL string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		tokenURL:     tokenURL,
		userinfoURL:  userinfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		log:          logger.With("adapter", "google_oauth"),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type userinfoResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// VerifyCode exchanges an authorization code for the Google account behind it.
// A rejected code yields domain.ErrUnauthorized; transport failures and 5xx
// answers yield domain.ErrProviderUnavailable.
func (v *Verifier) VerifyCode(ctx context.Context, code string) (*auth.OAuthIdentity, error) {
	accessToken, err := v.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	info, err := v.fetchUserinfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	if !info.VerifiedEmail {
		return nil, fmt.Errorf("google: email not verified: %w", domain.ErrUnauthorized)
	}

	identity := &auth.OAuthIdentity{
		Email:         info.Email,
		EmailVerified: info.VerifiedEmail,
		ProviderID:    info.ID,
	}
	if info.Name != "" {
		identity.Name = &info.Name
	}
	if info.Picture != "" {
		identity.AvatarURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("provider_id", info.ID))

	return identity, nil
}

func (v *Verifier) exchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", v.clientID)
	form.Set("client_secret", v.clientSecret)
	form.Set("redirect_uri", v.redirectURI)
	encoded := form.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.tokenURL, strings.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("google: create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("google: token exchange: %w", domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("google: read token response: %w", domain.ErrProviderUnavailable)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		v.log.WarnContext(ctx, "google token exchange rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("error", errResp.Error))

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return "", fmt.Errorf("google: invalid or expired code: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("google: token status %d: %w", resp.StatusCode, domain.ErrProviderUnavailable)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil || tok.AccessToken == "" {
		return "", fmt.Errorf("google: invalid token response: %w", domain.ErrProviderUnavailable)
	}

	return tok.AccessToken, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("google: create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: userinfo: %w", domain.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("google: userinfo status %d: %w", resp.StatusCode, domain.ErrProviderUnavailable)
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("google: decode userinfo: %w", domain.ErrProviderUnavailable)
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("google: userinfo missing id or email: %w", domain.ErrProviderUnavailable)
	}

	return &info, nil
}

// doWithRetry retries once after a short backoff on network errors and 5xx.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err == nil && resp.StatusCode < 500 {
		return resp, nil
	}
	if resp != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(retryBackoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	retry := req.Clone(ctx)
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}

	return v.httpClient.Do(retry)
}
