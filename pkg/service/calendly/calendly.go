package calendly

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const defaultBaseURL = "https://api.calendly.com"

// defaultSeatCount is assumed when the organization does not expose
// its seat limit through the API
const defaultSeatCount = 25

// Service is the Calendly scheduling adapter. The API token and the
// cached organization URI are owned by the adapter.
type Service struct {
	token      string
	baseURL    string
	httpClient *http.Client

	mu     sync.Mutex
	orgURI string
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

// New creates a Calendly adapter
func New(token string, opts ...Option) *Service {
	s := &Service{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsConfigured reports whether an API token is present
func (s *Service) IsConfigured() bool {
	return s.token != ""
}

type resourceEnvelope struct {
	Resource json.RawMessage `json:"resource"`
}

type collectionEnvelope struct {
	Collection json.RawMessage `json:"collection"`
}

type currentUser struct {
	URI                 string `json:"uri"`
	Email               string `json:"email"`
	CurrentOrganization string `json:"current_organization"`
}

type membership struct {
	URI  string `json:"uri"`
	Role string `json:"role"`
	User struct {
		URI   string `json:"uri"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// organizationURI resolves and caches the caller's organization URI
func (s *Service) organizationURI(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orgURI != "" {
		return s.orgURI, nil
	}

	var env resourceEnvelope
	if err := s.get(ctx, "/users/me", nil, &env); err != nil {
		return "", err
	}
	var me currentUser
	if err := json.Unmarshal(env.Resource, &me); err != nil {
		return "", goerr.Wrap(err, "failed to decode current user")
	}
	if me.CurrentOrganization == "" {
		return "", goerr.New("current user has no organization")
	}

	s.orgURI = me.CurrentOrganization
	return s.orgURI, nil
}

// InviteUser invites an email address into the organization
func (s *Service) InviteUser(ctx context.Context, email, firstName, lastName string) (*model.SchedulingInvitation, error) {
	org, err := s.organizationURI(ctx)
	if err != nil {
		return nil, err
	}

	body := map[string]string{
		"email":        email,
		"organization": org,
	}
	var env resourceEnvelope
	if err := s.post(ctx, "/organization_invitations", body, &env); err != nil {
		return nil, goerr.Wrap(err, "failed to invite scheduling user", goerr.V("email", email))
	}

	var invitation struct {
		URI string `json:"uri"`
	}
	if err := json.Unmarshal(env.Resource, &invitation); err != nil {
		return nil, goerr.Wrap(err, "failed to decode invitation")
	}

	ctxlog.From(ctx).Info("Scheduling invitation sent", "email", email)
	return &model.SchedulingInvitation{
		Email:         email,
		InvitationURI: invitation.URI,
	}, nil
}

// RemoveUser removes the member with the given email from the
// organization. An unknown email is treated as already removed.
func (s *Service) RemoveUser(ctx context.Context, email string) error {
	members, err := s.listMemberships(ctx)
	if err != nil {
		return err
	}

	var target *membership
	for i := range members {
		if strings.EqualFold(members[i].User.Email, email) {
			target = &members[i]
			break
		}
	}
	if target == nil {
		ctxlog.From(ctx).Info("Scheduling member already absent", "email", email)
		return nil
	}

	if err := s.delete(ctx, pathOf(target.URI)); err != nil {
		return goerr.Wrap(err, "failed to remove scheduling member", goerr.V("email", email))
	}
	return nil
}

// ListMembers returns all organization members
func (s *Service) ListMembers(ctx context.Context) ([]model.SchedulingMember, error) {
	members, err := s.listMemberships(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.SchedulingMember, 0, len(members))
	for _, m := range members {
		out = append(out, model.SchedulingMember{
			URI:   m.User.URI,
			Email: m.User.Email,
			Name:  m.User.Name,
			Role:  m.Role,
		})
	}
	return out, nil
}

// ListScheduledCalls returns active booked calls in the given range
func (s *Service) ListScheduledCalls(ctx context.Context, from, to time.Time) ([]model.ScheduledCall, error) {
	org, err := s.organizationURI(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"organization": {org},
		"count":        {"100"},
		"status":       {"active"},
	}
	if !from.IsZero() {
		params.Set("min_start_time", from.UTC().Format(time.RFC3339))
	}
	if !to.IsZero() {
		params.Set("max_start_time", to.UTC().Format(time.RFC3339))
	}

	var env collectionEnvelope
	if err := s.get(ctx, "/scheduled_events", params, &env); err != nil {
		return nil, goerr.Wrap(err, "failed to list scheduled events")
	}

	var events []struct {
		URI       string    `json:"uri"`
		Name      string    `json:"name"`
		Status    string    `json:"status"`
		StartTime time.Time `json:"start_time"`
		EndTime   time.Time `json:"end_time"`
	}
	if err := json.Unmarshal(env.Collection, &events); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scheduled events")
	}

	calls := make([]model.ScheduledCall, 0, len(events))
	for _, e := range events {
		calls = append(calls, model.ScheduledCall{
			URI:       e.URI,
			Name:      e.Name,
			Status:    e.Status,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}
	return calls, nil
}

// LicenseInfo estimates seat usage. Calendly does not expose the seat
// limit directly, so the plan's total falls back to a fixed assumption
// rather than blocking onboarding with a false "no seats" signal.
func (s *Service) LicenseInfo(ctx context.Context) (*model.LicenseInfo, error) {
	org, err := s.organizationInfo(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.listMemberships(ctx)
	if err != nil {
		return nil, err
	}

	used := 0
	for _, m := range members {
		if m.Role != "owner" {
			used++
		}
	}

	total := org.TotalSeats
	if total == 0 {
		total = defaultSeatCount
	}

	info := model.NewLicenseInfo("calendly", total, used)
	info.PlanName = org.Plan
	return &info, nil
}

type organization struct {
	Plan       string `json:"plan"`
	TotalSeats int    `json:"total_seats"`
}

func (s *Service) organizationInfo(ctx context.Context) (*organization, error) {
	orgURI, err := s.organizationURI(ctx)
	if err != nil {
		return nil, err
	}

	var env resourceEnvelope
	if err := s.get(ctx, pathOf(orgURI), nil, &env); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch organization")
	}
	var org organization
	if err := json.Unmarshal(env.Resource, &org); err != nil {
		return nil, goerr.Wrap(err, "failed to decode organization")
	}
	return &org, nil
}

func (s *Service) listMemberships(ctx context.Context) ([]membership, error) {
	org, err := s.organizationURI(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"organization": {org},
		"count":        {"100"},
	}
	var env collectionEnvelope
	if err := s.get(ctx, "/organization_memberships", params, &env); err != nil {
		return nil, goerr.Wrap(err, "failed to list organization memberships")
	}

	var members []membership
	if err := json.Unmarshal(env.Collection, &members); err != nil {
		return nil, goerr.Wrap(err, "failed to decode memberships")
	}
	return members, nil
}

// pathOf strips the API host from a resource URI so it can be reused
// as a request path
func pathOf(resourceURI string) string {
	if u, err := url.Parse(resourceURI); err == nil && u.Path != "" {
		return u.Path
	}
	return resourceURI
}

func (s *Service) get(ctx context.Context, path string, params url.Values, out any) error {
	return s.do(ctx, http.MethodGet, path, params, nil, out)
}

func (s *Service) post(ctx context.Context, path string, body any, out any) error {
	return s.do(ctx, http.MethodPost, path, nil, body, out)
}

func (s *Service) delete(ctx context.Context, path string) error {
	return s.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (s *Service) do(ctx context.Context, method, path string, params url.Values, body, out any) error {
	if !s.IsConfigured() {
		return goerr.Wrap(model.ErrNotConfigured, "calendly token missing")
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
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "calendly request failed", goerr.V("path", path))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg := apiErrorMessage(resp.Body)
		return goerr.New("calendly API error",
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

func apiErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Title != "" {
			return payload.Title
		}
	}
	return strings.TrimSpace(string(raw))
}
