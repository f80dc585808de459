package ghl_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/service/ghl"
	"github.com/m-mizutani/gt"
)

func TestGHLListUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, http.MethodGet, r.Method)
		gt.Equal(t, "/users/", r.URL.Path)
		gt.Equal(t, "LOC1", r.URL.Query().Get("locationId"))
		gt.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		gt.Equal(t, "2021-07-28", r.Header.Get("Version"))

		json.NewEncoder(w).Encode(map[string]any{
			"users": []map[string]any{
				{
					"id":        "ghl-user-0001",
					"firstName": "Jane",
					"lastName":  "Doe",
					"name":      "Jane Doe",
					"email":     "jane-d@tjr-trades.com",
					"phone":     "+16505550100",
				},
				{
					"id":    "ghl-user-0002",
					"name":  "Bill Lee",
					"email": "bill-l@tjr-trades.com",
				},
			},
		})
	}))
	t.Cleanup(server.Close)

	svc := ghl.New("test-token", "LOC1", ghl.WithBaseURL(server.URL))

	users, err := svc.ListUsers(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, users).Length(2)
	gt.Equal(t, types.CRMUserID("ghl-user-0001"), users[0].ID)
	gt.Equal(t, "Jane Doe", users[0].Name)
	gt.Equal(t, "+16505550100", users[0].Phone)
	gt.Equal(t, "bill-l@tjr-trades.com", users[1].Email)
}

func TestGHLRegisterUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, http.MethodPost, r.Method)
		gt.Equal(t, "/users/", r.URL.Path)

		var body struct {
			FirstName   string   `json:"firstName"`
			LastName    string   `json:"lastName"`
			Email       string   `json:"email"`
			Type        string   `json:"type"`
			Role        string   `json:"role"`
			LocationIDs []string `json:"locationIds"`
		}
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gt.Equal(t, "Jane", body.FirstName)
		gt.Equal(t, "account", body.Type)
		gt.Equal(t, "user", body.Role)
		gt.A(t, body.LocationIDs).Length(1)
		gt.Equal(t, []string{"LOC1"}, body.LocationIDs)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"id": "ghl-user-0042"})
	}))
	t.Cleanup(server.Close)

	svc := ghl.New("test-token", "LOC1", ghl.WithBaseURL(server.URL))

	reg, err := svc.RegisterUser(context.Background(), "Jane", "Doe", "jane.doe@gmail.com")
	gt.NoError(t, err).Required()
	gt.Equal(t, types.CRMUserID("ghl-user-0042"), reg.UserID)
	gt.Equal(t, "jane.doe@gmail.com", reg.Email)
	gt.Equal(t, "created", reg.Status)
}

func TestGHLDeleteUser(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, http.MethodDelete, r.Method)
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]bool{"succeeded": true})
	}))
	t.Cleanup(server.Close)

	svc := ghl.New("test-token", "LOC1", ghl.WithBaseURL(server.URL))

	gt.NoError(t, svc.DeleteUser(context.Background(), "ghl-user-0001"))
	gt.Equal(t, "/users/ghl-user-0001", gotPath)
}

func TestGHLListNumberLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/phone-system/numbers", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"numberPools": []map[string]any{
				{"phoneNumber": "+16505550100", "linkedUser": "ghl-user-0001"},
				{"phoneNumber": "+16505550101"},
				{"phoneNumber": "", "linkedUser": "ghl-user-0009"},
			},
		})
	}))
	t.Cleanup(server.Close)

	svc := ghl.New("test-token", "LOC1", ghl.WithBaseURL(server.URL))

	links, err := svc.ListNumberLinks(context.Background())
	gt.NoError(t, err).Required()
	gt.A(t, links).Length(2)
	gt.Equal(t, "+16505550100", links[0].Number)
	gt.Equal(t, types.CRMUserID("ghl-user-0001"), links[0].LinkedUserID)
	gt.Equal(t, types.CRMUserID(""), links[1].LinkedUserID)
}

func TestGHLAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid JWT"})
	}))
	t.Cleanup(server.Close)

	svc := ghl.New("test-token", "LOC1", ghl.WithBaseURL(server.URL))

	_, err := svc.ListUsers(context.Background())
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("CRM API error")
}

func TestGHLUnconfigured(t *testing.T) {
	svc := ghl.New("", "")
	gt.False(t, svc.IsConfigured())

	_, err := svc.ListUsers(context.Background())
	gt.Error(t, err)
}
