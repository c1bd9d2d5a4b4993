package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/isdelr/staffdesk-be/internal/auth"
	"github.com/isdelr/staffdesk-be/internal/database"
	"github.com/isdelr/staffdesk-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	userService := services.NewUserService(db)
	employeeService := services.NewEmployeeService(db)
	codec := auth.NewCodec("router-test-secret", time.Hour)
	gate := auth.NewGate(codec, auth.NewResolver(userService))

	srv := httptest.NewServer(NewRouter(gate, codec, userService, employeeService, "http://localhost:3000"))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func signupAndLogin(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/user/signup", "",
		`{"username":"jane_doe","email":"jane@example.com","password":"letters99"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/api/v1/user/login", "",
		`{"email":"jane@example.com","password":"letters99"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := payload["jwt_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestSignupValidationRejection(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/api/v1/user/signup", "",
		`{"username":"jane_doe","email":"jane@example.com","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["status"])
	assert.Equal(t, "Validation failed", payload["message"])

	errs, ok := payload["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	first := errs[0].(map[string]any)
	assert.Equal(t, "password", first["field"])
	assert.Equal(t, "Password must be at least 8 characters long", first["message"])
}

func TestDuplicateSignupRejected(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	signupAndLogin(t, srv)

	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/api/v1/user/signup", "",
		`{"username":"jane_doe","email":"other@example.com","password":"letters99"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already exists with this email or username", payload["message"])
}

func TestLoginGenericRejection(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	signupAndLogin(t, srv)

	_, unknown := doJSON(t, http.MethodPost, srv.URL+"/api/v1/user/login", "",
		`{"email":"nobody@example.com","password":"letters99"}`)
	_, wrong := doJSON(t, http.MethodPost, srv.URL+"/api/v1/user/login", "",
		`{"email":"jane@example.com","password":"wrong-pass-1"}`)
	assert.Equal(t, unknown["message"], wrong["message"])
	assert.Equal(t, "Invalid email or password", wrong["message"])
}

func TestEmployeeRoutesRequireAuth(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	resp, payload := doJSON(t, http.MethodGet, srv.URL+"/api/v1/emp/employees", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Access denied. No token provided.", payload["message"])
}

func TestEmployeeLifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := signupAndLogin(t, srv)

	// Create
	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/api/v1/emp/employees", token,
		`{"first_name":"John","last_name":"Smith","email":"john@example.com","position":"Engineer","salary":90000,"date_of_joining":"2024-06-01","department":"Platform"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := payload["employee_id"].(string)
	require.Len(t, id, 24)

	// List
	resp, payload = doJSON(t, http.MethodGet, srv.URL+"/api/v1/emp/employees", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["count"])

	// Get
	resp, payload = doJSON(t, http.MethodGet, srv.URL+"/api/v1/emp/employees/"+id, token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "John", payload["first_name"])
	assert.Equal(t, float64(90000), payload["salary"])

	// Update
	resp, payload = doJSON(t, http.MethodPut, srv.URL+"/api/v1/emp/employees/"+id, token,
		`{"position":"Staff Engineer"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Employee details updated successfully.", payload["message"])

	// Search
	resp, payload = doJSON(t, http.MethodGet, srv.URL+"/api/v1/emp/employees/search?position=staff", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), payload["count"])

	// Delete (eid travels as a query parameter)
	resp, payload = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/emp/employees?eid="+id, token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Employee deleted successfully.", payload["message"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/emp/employees/"+id, token, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEmployeeCreateAggregatedValidation(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := signupAndLogin(t, srv)

	// Missing salary and malformed email: exactly two field errors, in
	// declared field order.
	resp, payload := doJSON(t, http.MethodPost, srv.URL+"/api/v1/emp/employees", token,
		`{"first_name":"John","last_name":"Smith","email":"bad-email","position":"Engineer","date_of_joining":"2024-06-01","department":"Platform"}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs, ok := payload["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 2)
	first := errs[0].(map[string]any)
	second := errs[1].(map[string]any)
	assert.Equal(t, "email", first["field"])
	assert.Equal(t, "salary", second["field"])
}

func TestInvalidEmployeeIDRejected(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := signupAndLogin(t, srv)

	resp, payload := doJSON(t, http.MethodGet, srv.URL+"/api/v1/emp/employees/not-hex", token, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation failed", payload["message"])
}

func TestIndexPersonalizesForSignedInCaller(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	// Anonymous callers reach the index with no identity echoed.
	resp, payload := doJSON(t, http.MethodGet, srv.URL+"/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, payload, "signed_in_as")

	token := signupAndLogin(t, srv)
	_, payload = doJSON(t, http.MethodGet, srv.URL+"/", token, "")
	assert.Equal(t, "jane_doe", payload["signed_in_as"])

	// A garbage token is swallowed, not rejected.
	resp, payload = doJSON(t, http.MethodGet, srv.URL+"/", "garbage", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, payload, "signed_in_as")
}
