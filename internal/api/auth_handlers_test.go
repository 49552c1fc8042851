package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sklep-api/internal/auth"

	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestAPI_Signup_Success(t *testing.T) {
	rr := postJSON(t, testServer.SignupHandler, "/api/signup", SignupRequest{
		FullName: "A B",
		Username: "User1",
		Password: "pw",
	})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp["success"])
}

func TestAPI_Signup_UsernameTakenDifferentCase(t *testing.T) {
	rr := postJSON(t, testServer.SignupHandler, "/api/signup", SignupRequest{
		FullName: "First",
		Username: "CasedUser",
		Password: "pw",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = postJSON(t, testServer.SignupHandler, "/api/signup", SignupRequest{
		FullName: "Second",
		Username: "caseduser",
		Password: "pw",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "Username already taken")
}

func TestAPI_Signup_MissingFields(t *testing.T) {
	rr := postJSON(t, testServer.SignupHandler, "/api/signup", SignupRequest{Username: "  "})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAPI_Login_Success(t *testing.T) {
	rr := postJSON(t, testServer.LoginHandler, "/api/login", LoginRequest{
		Username: "api_test_user",
		Password: "password",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	claims, err := auth.VerifyJWT(resp.Token, testServer.config.JWT.Secret)
	require.NoError(t, err)
	require.Equal(t, testAccount.ID.String(), claims.Subject)
}

func TestAPI_Login_CaseInsensitiveUsername(t *testing.T) {
	rr := postJSON(t, testServer.LoginHandler, "/api/login", LoginRequest{
		Username: "API_TEST_USER",
		Password: "password",
	})
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestAPI_Login_WrongPassword(t *testing.T) {
	rr := postJSON(t, testServer.LoginHandler, "/api/login", LoginRequest{
		Username: "api_test_user",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "Invalid email or password")
}

func TestAPI_Login_UnknownUsername(t *testing.T) {
	rr := postJSON(t, testServer.LoginHandler, "/api/login", LoginRequest{
		Username: "nobody_here",
		Password: "password",
	})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	// Same message as a wrong password.
	require.Contains(t, rr.Body.String(), "Invalid email or password")
}
