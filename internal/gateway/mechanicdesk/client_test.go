package mechanicdesk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobTypes(t *testing.T) {
	t.Run("returns parsed body and sends token as query param", func(t *testing.T) {
		var gotToken string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.URL.Query().Get("token")
			assert.Equal(t, "/booking_requests/available_job_types", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"job_type_names":["Oil Change","Tyre Fitting"]}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")
		resp, errDoc := client.JobTypes(context.Background())
		require.Nil(t, errDoc)
		assert.Equal(t, "secret-token", gotToken)

		parsed, ok := resp.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []any{"Oil Change", "Tyre Fitting"}, parsed["job_type_names"])
	})

	t.Run("missing token fails without any request", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "")
		resp, errDoc := client.JobTypes(context.Background())
		assert.Nil(t, resp)
		require.NotNil(t, errDoc)
		assert.Equal(t, "MechanicDesk API token is not configured.", errDoc.Message)
		assert.False(t, called)
	})

	t.Run("non-2xx becomes an error document with the body as details", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("maintenance window"))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")
		resp, errDoc := client.JobTypes(context.Background())
		assert.Nil(t, resp)
		require.NotNil(t, errDoc)
		assert.Equal(t, "External service returned HTTP 503 Service Unavailable", errDoc.Message)
		assert.Equal(t, "maintenance window", errDoc.Details)
	})

	t.Run("non-JSON body becomes an error document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>login page</html>"))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")
		resp, errDoc := client.JobTypes(context.Background())
		assert.Nil(t, resp)
		require.NotNil(t, errDoc)
		assert.Equal(t, "Received non-JSON response from external service", errDoc.Message)
		assert.Equal(t, "<html>login page</html>", errDoc.Details)
	})

	t.Run("connection failure becomes an error document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewClient(srv.URL, "secret-token")
		resp, errDoc := client.JobTypes(context.Background())
		assert.Nil(t, resp)
		require.NotNil(t, errDoc)
		assert.Contains(t, errDoc.Message, "An error occurred: ")
	})
}

func TestUnavailableDays(t *testing.T) {
	cases := []struct {
		name   string
		inDays int
		want   string
	}{
		{"zero uses the default", 0, "30"},
		{"negative uses the default", -5, "30"},
		{"in range passes through", 14, "14"},
		{"above the cap is clamped", 365, "90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotInDays string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotInDays = r.URL.Query().Get("in_days")
				assert.Equal(t, "/booking_requests/unavailable_days", r.URL.Path)
				_, _ = w.Write([]byte(`["2026-09-05","2026-09-12"]`))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "secret-token")
			resp, errDoc := client.UnavailableDays(context.Background(), tc.inDays)
			require.Nil(t, errDoc)
			assert.Equal(t, tc.want, gotInDays)
			assert.Equal(t, []any{"2026-09-05", "2026-09-12"}, resp)
		})
	}
}

func TestCreateBooking(t *testing.T) {
	payload := map[string]any{
		"name":          "Jamie Rider",
		"email":         "jamie@example.com",
		"drop_off_time": "10/09/2026 09:30",
	}

	t.Run("2xx with HTML body still succeeds", func(t *testing.T) {
		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/booking_requests/create_booking", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>thanks</html>"))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")
		resp, errDoc := client.CreateBooking(context.Background(), payload)
		require.Nil(t, errDoc)
		assert.Equal(t, SuccessDocument(), resp)

		// Token travels in the body, not the URL, and the caller's
		// payload is forwarded untouched.
		assert.Equal(t, "secret-token", gotBody["token"])
		assert.Equal(t, "Jamie Rider", gotBody["name"])
	})

	t.Run("does not mutate the caller's payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")
		_, errDoc := client.CreateBooking(context.Background(), payload)
		require.Nil(t, errDoc)
		_, hasToken := payload["token"]
		assert.False(t, hasToken)
	})

	t.Run("non-2xx becomes an error document", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"drop_off_time unavailable"}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")
		resp, errDoc := client.CreateBooking(context.Background(), payload)
		assert.Nil(t, resp)
		require.NotNil(t, errDoc)
		assert.Equal(t, "External service returned HTTP 422 Unprocessable Entity", errDoc.Message)
		assert.Equal(t, `{"error":"drop_off_time unavailable"}`, errDoc.Details)
	})

	t.Run("missing token fails without any request", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:0", "")
		resp, errDoc := client.CreateBooking(context.Background(), payload)
		assert.Nil(t, resp)
		require.NotNil(t, errDoc)
		assert.Equal(t, "MechanicDesk API token is not configured.", errDoc.Message)
	})
}
