package zoom

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"
)

const tokenURL = "https://zoom.us/oauth/token"

// accountCredentialsSource implements oauth2.TokenSource for the Zoom
// Server-to-Server OAuth "account_credentials" grant. Wrapped in
// oauth2.ReuseTokenSource, it gives each adapter its own refreshing
// token cache instead of a process-global one.
type accountCredentialsSource struct {
	accountID    string
	clientID     string
	clientSecret string
	tokenURL     string
	httpClient   *http.Client
}

func (s *accountCredentialsSource) Token() (*oauth2.Token, error) {
	params := url.Values{
		"grant_type": {"account_credentials"},
		"account_id": {s.accountID},
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.tokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build token request")
	}
	req.SetBasicAuth(s.clientID, s.clientSecret)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "zoom token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, goerr.New("failed to authenticate with zoom",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", strings.TrimSpace(string(raw))),
		)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode zoom token response")
	}

	return &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
		// Refresh one minute before the provider-side expiry
		Expiry: time.Now().Add(time.Duration(payload.ExpiresIn)*time.Second - time.Minute),
	}, nil
}
