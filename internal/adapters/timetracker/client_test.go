package timetracker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL+"/api", Options{Timeout: 2 * time.Second})
	require.NoError(t, err)
	return client
}

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"empty", "", true},
		{"no scheme", "localhost:8080", true},
		{"ftp scheme", "ftp://example.com", true},
		{"http", "http://localhost:8080", false},
		{"https with path", "https://example.com/api/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.baseURL, Options{})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClockIn_ReturnsServerTimestamp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/TimeEntry/clockin", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("userId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"entry":{"id":"e1","userId":"1","clockIn":"2024-01-01T09:00:00Z"}}`))
	})

	clockIn, err := client.ClockIn(context.Background(), "1")

	require.NoError(t, err)
	assert.True(t, clockIn.Equal(time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)))
}

func TestClockIn_AcceptsTopLevelTimestamp(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"clockInTimestamp":"2024-01-01T10:30:00+01:00"}`))
	})

	clockIn, err := client.ClockIn(context.Background(), "1")

	require.NoError(t, err)
	assert.True(t, clockIn.Equal(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)))
}

func TestClockIn_ZonelessTimestampIsLocal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"entry":{"clockIn":"2024-01-01T09:00:00.123"}}`))
	})

	clockIn, err := client.ClockIn(context.Background(), "1")

	require.NoError(t, err)
	expected := time.Date(2024, 1, 1, 9, 0, 0, 123000000, time.Local)
	assert.True(t, clockIn.Equal(expected))
}

func TestClockIn_Failures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"server error", http.StatusInternalServerError, `{"error":"database unavailable"}`, 500, "database unavailable"},
		{"plain text error", http.StatusBadGateway, `bad gateway`, 502, "502 Bad Gateway"},
		{"malformed json", http.StatusOK, `{"entry":`, 200, "malformed response"},
		{"missing timestamp", http.StatusOK, `{"entry":{"id":"e1"}}`, 0, "missing the clock-in timestamp"},
		{"invalid timestamp", http.StatusOK, `{"entry":{"clockIn":"yesterday"}}`, 0, "invalid timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ClockIn(context.Background(), "1")

			require.Error(t, err)
			var svcErr *domain.ServiceError
			require.True(t, errors.As(err, &svcErr))
			assert.Equal(t, opClockIn, svcErr.Op)
			assert.Equal(t, tt.wantStatus, svcErr.StatusCode)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClockIn_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := NewClient(srv.URL, Options{})
	require.NoError(t, err)
	srv.Close()

	_, err = client.ClockIn(context.Background(), "1")

	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Zero(t, svcErr.StatusCode)
}

func TestClockIn_RequiresUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.ClockIn(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrUserRequired)
}

func TestClockOut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/TimeEntry/clockout", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("userId"))
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.ClockOut(context.Background(), "7"))
}

func TestClockOut_Conflict(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"user is not clocked in"}`))
	})

	err := client.ClockOut(context.Background(), "7")

	var svcErr *domain.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusConflict, svcErr.StatusCode)
	assert.Equal(t, opClockOut, svcErr.Op)
}

func TestClockIn_ContextCanceled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ClockIn(ctx, "1")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCurrent(t *testing.T) {
	t.Run("open entry", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/TimeEntry/current", r.URL.Path)
			_, _ = w.Write([]byte(`{"entry":{"id":"e1","userId":"1","clockIn":"2024-01-01T09:00:00Z"}}`))
		})

		entry, err := client.Current(context.Background(), "1")

		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.Equal(t, "e1", entry.ID)
		assert.True(t, entry.IsOpen())
	})

	t.Run("no entry", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"entry":null}`))
		})

		entry, err := client.Current(context.Background(), "1")

		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}

func TestList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/TimeEntry/entries", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"entries":[
			{"id":"e2","userId":"1","clockIn":"2024-01-02T09:00:00Z"},
			{"id":"e1","userId":"1","clockIn":"2024-01-01T09:00:00Z","clockOut":"2024-01-01T17:00:00Z"}
		]}`))
	})

	entries, err := client.List(context.Background(), "1", 5)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].IsOpen())
	require.NotNil(t, entries[1].ClockOut)
	assert.Equal(t, 8*time.Hour, entries[1].Duration(time.Now()))
}
