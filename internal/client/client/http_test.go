package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/idkeeper/internal/common"
)

type recorded struct {
	path string
	body map[string]string
}

func newServer(t *testing.T, status int, reply string) (*HTTPClient, *recorded) {
	t.Helper()
	rec := &recorded{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.path = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get(common.RequestIDHeaderName))
		_ = json.NewDecoder(r.Body).Decode(&rec.body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return NewHTTPClient(srv.URL+"/", time.Second), rec
}

func TestRegister(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"status":"success","message":"ok","id":3}`)

	id, err := c.Register(context.Background(), "alice", "Passw0rd!", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.Equal(t, "/api/register", rec.path)
	assert.Equal(t, map[string]string{"username": "alice", "password": "Passw0rd!", "email": "alice@example.com"}, rec.body)
}

func TestRegister_Conflict(t *testing.T) {
	c, _ := newServer(t, http.StatusConflict, `{"status":"error","message":"username already exists"}`)

	_, err := c.Register(context.Background(), "alice", "Other1!", "other@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorConflict)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "username already exists", apiErr.Message)
}

func TestLogin_SendsEmailOrUsername(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"status":"success","token":"abc"}`)

	tok, err := c.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)
	assert.Equal(t, map[string]string{"email": "alice@example.com", "password": "pw"}, rec.body)

	_, err = c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"username": "alice", "password": "pw"}, rec.body)
}

func TestLogin_Rejected(t *testing.T) {
	c, _ := newServer(t, http.StatusUnauthorized, `{"status":"error","message":"invalid login or password"}`)

	_, err := c.Login(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestListUsers(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `[{"id":1,"username":"alice","email":"alice@example.com"}]`)

	users, err := c.ListUsers(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, []User{{ID: 1, Username: "alice", Email: "alice@example.com"}}, users)
	assert.Equal(t, "/api/get_users", rec.path)
	assert.Equal(t, "tok", rec.body["token"])
}

func TestUpdateAndDelete(t *testing.T) {
	c, rec := newServer(t, http.StatusOK, `{"status":"success"}`)

	require.NoError(t, c.UpdateUser(context.Background(), "tok", "email", "new@example.com"))
	assert.Equal(t, "/api/user/update", rec.path)
	assert.Equal(t, map[string]string{"token": "tok", "key": "email", "value": "new@example.com"}, rec.body)

	require.NoError(t, c.DeleteUser(context.Background(), "tok"))
	assert.Equal(t, "/api/user/delete", rec.path)
}

func TestInvalidToken(t *testing.T) {
	c, _ := newServer(t, http.StatusForbidden, `{"status":"error","message":"token invalid"}`)

	err := c.DeleteUser(context.Background(), "stale")
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestServerError_WithoutBody(t *testing.T) {
	c, _ := newServer(t, http.StatusBadGateway, ``)

	err := c.DeleteUser(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, time.Second)
	_, err := c.Register(context.Background(), "a", "b", "c")
	assert.ErrorIs(t, err, ErrUnavailable)
}
