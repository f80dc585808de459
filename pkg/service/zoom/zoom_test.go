package zoom_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coldemails/sales-hub/pkg/service/zoom"
	"github.com/m-mizutani/gt"
)

func TestZoomCreateUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, http.MethodPost, r.Method)
		gt.Equal(t, "/users", r.URL.Path)

		var body struct {
			Action   string `json:"action"`
			UserInfo struct {
				Email     string `json:"email"`
				Type      int    `json:"type"`
				FirstName string `json:"first_name"`
				LastName  string `json:"last_name"`
			} `json:"user_info"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.Equal(t, "create", body.Action)
		gt.Equal(t, 2, body.UserInfo.Type) // licensed seat
		gt.Equal(t, "jane.doe@gmail.com", body.UserInfo.Email)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"id":    "zoom-user-1",
			"email": body.UserInfo.Email,
		})
	}))
	t.Cleanup(server.Close)

	svc := zoom.New("acc", "id", "secret",
		zoom.WithBaseURL(server.URL),
		zoom.WithHTTPClient(server.Client()),
	)

	account, err := svc.CreateUser(context.Background(), "Jane", "Doe", "jane.doe@gmail.com")
	gt.NoError(t, err).Required()
	gt.Equal(t, "zoom-user-1", account.UserID)
	gt.Equal(t, "jane.doe@gmail.com", account.Email)
}

func TestZoomDeleteUser(t *testing.T) {
	var gotAction string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, http.MethodDelete, r.Method)
		gt.Equal(t, "/users/jane-d@tjr-trades.com", r.URL.Path)
		gotAction = r.URL.Query().Get("action")
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(server.Close)

	svc := zoom.New("acc", "id", "secret",
		zoom.WithBaseURL(server.URL),
		zoom.WithHTTPClient(server.Client()),
	)

	t.Run("mode is passed through", func(t *testing.T) {
		gt.NoError(t, svc.DeleteUser(context.Background(), "jane-d@tjr-trades.com", "delete"))
		gt.Equal(t, "delete", gotAction)
	})

	t.Run("empty mode disassociates", func(t *testing.T) {
		gt.NoError(t, svc.DeleteUser(context.Background(), "jane-d@tjr-trades.com", ""))
		gt.Equal(t, "disassociate", gotAction)
	})
}

func TestZoomLicenseInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/users", r.URL.Path)
		gt.Equal(t, "active", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{"type": 2},
				{"type": 2},
				{"type": 1}, // basic seat does not consume a license
			},
		})
	}))
	t.Cleanup(server.Close)

	svc := zoom.New("acc", "id", "secret",
		zoom.WithBaseURL(server.URL),
		zoom.WithHTTPClient(server.Client()),
	)

	info, err := svc.LicenseInfo(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, "zoom", info.Platform)
	gt.Equal(t, 2, info.Used)
	gt.True(t, info.Total >= info.Used)
	gt.True(t, info.HasAvailable)
}

func TestZoomAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "User already in the account"})
	}))
	t.Cleanup(server.Close)

	svc := zoom.New("acc", "id", "secret",
		zoom.WithBaseURL(server.URL),
		zoom.WithHTTPClient(server.Client()),
	)

	_, err := svc.CreateUser(context.Background(), "Jane", "Doe", "jane.doe@gmail.com")
	gt.Error(t, err)
}

func TestZoomUnconfigured(t *testing.T) {
	svc := zoom.New("", "", "")
	gt.False(t, svc.IsConfigured())

	_, err := svc.CreateUser(context.Background(), "Jane", "Doe", "jane.doe@gmail.com")
	gt.Error(t, err)
}
