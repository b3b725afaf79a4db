package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratehub/ratehub-ui/internal/domain/model"
	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler, exposeDetail bool) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		BaseURL:           srv.URL,
		ExposeErrorDetail: exposeDetail,
	})
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestLogin_SendsCredentials(t *testing.T) {
	var gotBody model.LoginRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(model.LoginResponse{Token: "tok-1"})
	}), false)

	out, err := client.Login(context.Background(), model.LoginRequest{
		Email:    "user@example.com",
		Password: "Secret#123",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", out.Token)
	assert.Equal(t, "user@example.com", gotBody.Email)
}

func TestLogin_RejectionUsesFixedMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"account locked"}`))
	}), false)

	_, err := client.Login(context.Background(), model.LoginRequest{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password", mustAppMessage(t, err))
}

func mustAppMessage(t *testing.T, err error) string {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Message
}

func TestRegister_FixedMessageOnFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"email already in use"}`))
	}), false)

	_, err := client.Register(context.Background(), model.RegisterRequest{})
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, "Registration failed. Please try again.", mustAppMessage(t, err))
}

func TestRegister_ExposeDetailForwardsUpstreamMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"email already in use"}`))
	}), true)

	_, err := client.Register(context.Background(), model.RegisterRequest{})
	require.Error(t, err)
	assert.Equal(t, "email already in use", mustAppMessage(t, err))
}

func TestAddUser_SendsBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)
		assert.Equal(t, "Bearer admin-tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"created"}`))
	}), false)

	out, err := client.AddUser(context.Background(), "admin-tok", model.AddUserRequest{Role: "ADMIN"})
	require.NoError(t, err)
	assert.Equal(t, "created", out.Message)
}

func TestListStores_OptionalToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "no-store", r.Header.Get("Cache-Control"))
		_, _ = w.Write([]byte(`[{"id":1,"name":"First Example Store Name Here"}]`))
	}), false)

	stores, err := client.ListStores(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, int64(1), stores[0].ID)
}

func TestGetStore_AddsCacheBustParam(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/42", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("t"))
		_, _ = w.Write([]byte(`{"id":42,"overallRating":4.5}`))
	}), false)

	store, err := client.GetStore(context.Background(), "tok", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), store.ID)
	require.NotNil(t, store.OverallRating)
	assert.InDelta(t, 4.5, *store.OverallRating, 0.001)
}

func TestAddStore_ReturnsCreatedStore(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores", r.URL.Path)
		assert.Equal(t, "Bearer admin-tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Store created","store":{"id":42,"name":"A Store With A Long Enough Name"}}`))
	}), false)

	out, err := client.AddStore(context.Background(), "admin-tok", model.AddStoreRequest{
		Name: "A Store With A Long Enough Name",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Store)
	assert.Equal(t, int64(42), out.Store.ID)
}

func TestMyRating_NotFoundMeansNoRating(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ratings/store/7/me", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"rating not found"}`))
	}), false)

	rating, err := client.MyRating(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Nil(t, rating)
}

func TestMyRating_OtherErrorsSurface(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}), false)

	_, err := client.MyRating(context.Background(), "tok", 7)
	require.Error(t, err)
	assert.True(t, apperrors.IsUpstream(err))
	assert.Equal(t, "Failed to fetch user rating", mustAppMessage(t, err))
}

func TestSubmitRating_RoundTrip(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ratings", r.URL.Path)
		var req model.RatingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 4, req.Value)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Rating submitted","rating":{"id":1,"storeId":7,"value":4}}`))
	}), false)

	out, err := client.SubmitRating(context.Background(), "tok", model.RatingRequest{StoreID: 7, Value: 4})
	require.NoError(t, err)
	require.NotNil(t, out.Rating)
	assert.Equal(t, 4, out.Rating.Value)
}

func TestListStoreOwners_FiltersEligibleRoles(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Alice","role":"ADMIN"},
			{"id":2,"name":"Bob","role":"CUSTOMER"},
			{"id":3,"name":"Cara","role":"STORE_OWNER"},
			{"id":4,"name":"Dan","role":"OWNER"},
			{"id":5,"name":"Eve","role":"somethingelse"}
		]`))
	}), false)

	owners, err := client.ListStoreOwners(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, owners, 3)
	assert.Equal(t, int64(1), owners[0].ID)
	assert.Equal(t, int64(3), owners[1].ID)
	assert.Equal(t, int64(4), owners[2].ID)
}

func TestChangePassword_FixedMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/users/me/password", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
	}), false)

	_, err := client.ChangePassword(context.Background(), "tok", model.ChangePasswordRequest{})
	require.Error(t, err)
	assert.Equal(t, "Failed to change password. Please check your current password.", mustAppMessage(t, err))
}
