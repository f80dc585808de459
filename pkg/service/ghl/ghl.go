package ghl

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
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	defaultBaseURL = "https://services.leadconnectorhq.com"

	// apiVersion is required on every request by the LeadConnector API
	apiVersion = "2021-07-28"
)

// Service is the GoHighLevel CRM adapter. All operations are scoped to
// a single location (sub-account).
type Service struct {
	token      string
	locationID string
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

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(s *Service) {
		s.httpClient = c
	}
}

// New creates a GoHighLevel adapter
func New(token, locationID string, opts ...Option) *Service {
	s := &Service{
		token:      token,
		locationID: locationID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsConfigured reports whether credentials are present
func (s *Service) IsConfigured() bool {
	return s.token != "" && s.locationID != ""
}

type userPayload struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (p userPayload) toModel() model.CRMUser {
	return model.CRMUser{
		ID:        types.CRMUserID(p.ID),
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

// ListUsers fetches all CRM users for the location
func (s *Service) ListUsers(ctx context.Context) ([]model.CRMUser, error) {
	params := url.Values{"locationId": {s.locationID}}

	var payload struct {
		Users []userPayload `json:"users"`
	}
	if err := s.do(ctx, http.MethodGet, "/users/", params, nil, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to list CRM users")
	}

	users := make([]model.CRMUser, 0, len(payload.Users))
	for _, u := range payload.Users {
		users = append(users, u.toModel())
	}
	return users, nil
}

// RegisterUser creates a CRM user with the standard sales role
func (s *Service) RegisterUser(ctx context.Context, firstName, lastName, email string) (*model.CRMRegistration, error) {
	body := map[string]any{
		"firstName":   firstName,
		"lastName":    lastName,
		"email":       email,
		"type":        "account",
		"role":        "user",
		"locationIds": []string{s.locationID},
	}

	var created userPayload
	if err := s.do(ctx, http.MethodPost, "/users/", nil, body, &created); err != nil {
		return nil, goerr.Wrap(err, "failed to register CRM user", goerr.V("email", email))
	}

	ctxlog.From(ctx).Info("CRM user registered", "userID", created.ID, "email", email)
	return &model.CRMRegistration{
		UserID: types.CRMUserID(created.ID),
		Email:  email,
		Status: "created",
	}, nil
}

// DeleteUser removes the CRM user
func (s *Service) DeleteUser(ctx context.Context, id types.CRMUserID) error {
	if err := s.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(string(id)), nil, nil, nil); err != nil {
		return goerr.Wrap(err, "failed to delete CRM user", goerr.V("userID", id))
	}
	return nil
}

// ListNumberLinks fetches the phone numbers registered in the CRM and
// which user each one is assigned to
func (s *Service) ListNumberLinks(ctx context.Context) ([]model.NumberLink, error) {
	params := url.Values{"locationId": {s.locationID}}

	var payload struct {
		NumberPools []struct {
			PhoneNumber string `json:"phoneNumber"`
			LinkedUser  string `json:"linkedUser"`
		} `json:"numberPools"`
	}
	if err := s.do(ctx, http.MethodGet, "/phone-system/numbers", params, nil, &payload); err != nil {
		return nil, goerr.Wrap(err, "failed to list CRM number links")
	}

	links := make([]model.NumberLink, 0, len(payload.NumberPools))
	for _, n := range payload.NumberPools {
		if n.PhoneNumber == "" {
			continue
		}
		links = append(links, model.NumberLink{
			Number:       n.PhoneNumber,
			LinkedUserID: types.CRMUserID(n.LinkedUser),
		})
	}
	return links, nil
}

func (s *Service) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if !s.IsConfigured() {
		return goerr.Wrap(model.ErrNotConfigured, "CRM credentials missing")
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
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Version", apiVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "CRM request failed", goerr.V("path", path))
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
		return goerr.New("CRM API error",
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
