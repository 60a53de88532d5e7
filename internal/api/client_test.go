package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danialhaz/gigmate/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Options{
		BaseURL:           srv.URL,
		Token:             "",
		RequestsPerSecond: 1000, // keep tests fast
	})
	require.NoError(t, err)
	return client
}

// unsignedToken builds a syntactically valid JWT with the given exp claim.
// The signature is irrelevant since the client never verifies it.
func unsignedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(map[string]any{"exp": exp.Unix(), "sub": "user-1"})
	require.NoError(t, err)
	return fmt.Sprintf("%s.%s.sig", header, base64.RawURLEncoding.EncodeToString(payload))
}

func TestNewClient_RejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "not a url"})
	assert.Error(t, err)

	_, err = NewClient(Options{BaseURL: ""})
	assert.Error(t, err)
}

func TestSearchCandidates_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/candidates/search", r.URL.Path)

		var filters types.SearchFilters
		require.NoError(t, json.NewDecoder(r.Body).Decode(&filters))
		assert.Equal(t, []string{"React", "Node"}, filters.SkillNames)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"total": 45, "page": 1, "page_size": 20, "results": []}`)
	})

	page, err := client.SearchCandidates(context.Background(), types.SearchFilters{
		SkillNames: []string{"React", "Node"},
		Page:       1,
		PageSize:   20,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, page.Total)
	// Total pages derived as ceil(45/20) when the server omits it.
	assert.Equal(t, 3, page.TotalPages)
}

func TestSearchCandidates_ServerProvidedTotalPagesKept(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total": 45, "page": 1, "page_size": 20, "total_pages": 5, "results": []}`)
	})

	page, err := client.SearchCandidates(context.Background(), types.SearchFilters{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalPages)
}

func TestDo_Unauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuth))
}

func TestDo_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.WalletBalance(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindServer))
	assert.True(t, IsRetryable(err))
}

func TestDo_ValidationErrorWithFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		fmt.Fprint(w, `{"page_size": "must not exceed 100"}`)
	})

	_, err := client.SearchCandidates(context.Background(), types.SearchFilters{Page: 1, PageSize: 20})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "must not exceed 100", apiErr.Fields["page_size"])
}

func TestDo_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client, err := NewClient(Options{BaseURL: srv.URL, RequestsPerSecond: 1000})
	require.NoError(t, err)

	_, err = client.Penalties(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
}

func TestDo_TimeoutIsNetworkKind(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.httpClient.Timeout = 20 * time.Millisecond

	_, err := client.Conversations(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindNetwork))
}

func TestDo_ExpiredTokenShortCircuits(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	client.token = unsignedToken(t, time.Now().Add(-time.Hour))

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAuth))
	assert.Zero(t, requests, "expired token must not reach the network")
}

func TestDo_FreshTokenIsSent(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"points": 120, "cash_amount": 35.5, "currency": "MYR"}`)
	})
	token := unsignedToken(t, time.Now().Add(time.Hour))
	client.token = token

	balance, err := client.WalletBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+token, gotAuth)
	assert.Equal(t, 120, balance.Points)
}

func TestDo_DecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{not json`)
	})

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
}

func TestApply_LocalValidationBeforeNetwork(t *testing.T) {
	requests := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := client.Apply(context.Background(), types.ApplicationRequest{}) // missing job id
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
	assert.Zero(t, requests)
}

func TestStrictSchemas_RejectsMalformedPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// page_size missing, match_score out of range
		fmt.Fprint(w, `{"total": 1, "page": 1, "results": []}`)
	})
	client.strict = true

	_, err := client.SearchCandidates(context.Background(), types.SearchFilters{Page: 1, PageSize: 20})
	require.Error(t, err)
	assert.True(t, IsKind(err, KindDecode))
}
