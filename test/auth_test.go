//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/fittrack/internal/users"
)

const testPassword = "s3cret-Passw0rd"

type testUser struct {
	users.Summary
	token string
}

// doRequest sends body as JSON (when not nil) with the bearer token (when not empty).
func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) *http.Response {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeResponse checks the status code, then decodes the JSON body into v.
func (s *IntegrationTestSuite) decodeResponse(resp *http.Response, expectedStatus int, v any) {
	t := s.T()
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, string(respBytes))
	if v != nil {
		require.NoError(t, json.Unmarshal(respBytes, v), string(respBytes))
	}
}

func (s *IntegrationTestSuite) registerUser(ctx context.Context) testUser {
	registration := users.Registration{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: testPassword,
		Age:      gofakeit.Number(18, 70),
		Gender:   "female",
		Height:   170,
		Weight:   65,
	}

	var tokenResp users.TokenResponse
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/auth/register", "", registration), http.StatusOK, &tokenResp)
	require.NotEmpty(s.T(), tokenResp.AccessToken)

	return testUser{
		Summary: tokenResp.User,
		token:   tokenResp.AccessToken,
	}
}

func (s *IntegrationTestSuite) TestAuth_RegisterLoginMe() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, strings.ToLower(user.Email), user.Email)

	// same email again
	dup := users.Registration{Name: "Dup", Email: strings.ToUpper(user.Email), Password: testPassword}
	resp := s.doRequest(ctx, http.MethodPost, "/auth/register", "", dup)
	s.decodeResponse(resp, http.StatusBadRequest, nil)

	// form login, the way OAuth2 password clients do it
	form := url.Values{}
	form.Set("username", user.Email)
	form.Set("password", testPassword)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/auth/login", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	loginResp, err := s.httpClient.Do(req)
	require.NoError(t, err)

	var tokenResp users.TokenResponse
	s.decodeResponse(loginResp, http.StatusOK, &tokenResp)
	assert.Equal(t, "bearer", tokenResp.TokenType)
	assert.Equal(t, user.ID, tokenResp.User.ID)

	var me users.User
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/auth/me", tokenResp.AccessToken, nil), http.StatusOK, &me)
	assert.Equal(t, user.Email, me.Email)
	assert.Equal(t, "moderate", me.ActivityLevel)
	assert.Equal(t, "maintain", me.Goal)

	var updated users.User
	s.decodeResponse(
		s.doRequest(ctx, http.MethodPut, "/auth/me", tokenResp.AccessToken, map[string]any{"goal": "lose", "weight": 62.5}),
		http.StatusOK, &updated,
	)
	assert.Equal(t, "lose", updated.Goal)
	assert.Equal(t, 62.5, updated.Weight)
	assert.Equal(t, me.Name, updated.Name)

	s.decodeResponse(s.doRequest(ctx, http.MethodPut, "/auth/me", tokenResp.AccessToken, map[string]any{}), http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestAuth_WrongPassword() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)
	resp := s.doRequest(ctx, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    user.Email,
		"password": "not-the-password",
	})
	assert.Equal(s.T(), "Bearer", resp.Header.Get("WWW-Authenticate"))
	s.decodeResponse(resp, http.StatusUnauthorized, nil)
}

func (s *IntegrationTestSuite) TestAuth_Logout() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user := s.registerUser(ctx)
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/auth/me", user.token, nil), http.StatusOK, nil)
	s.decodeResponse(s.doRequest(ctx, http.MethodPost, "/auth/logout", user.token, nil), http.StatusOK, nil)

	// the signature is still valid, but the session is gone
	s.decodeResponse(s.doRequest(ctx, http.MethodGet, "/auth/me", user.token, nil), http.StatusUnauthorized, nil)
}

func (s *IntegrationTestSuite) TestAuth_Required() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, path := range []string{"/auth/me", "/workouts", "/meals", "/water", "/social/feed", "/users/stats/detailed"} {
		s.decodeResponse(s.doRequest(ctx, http.MethodGet, path, "", nil), http.StatusUnauthorized, nil)
		s.decodeResponse(s.doRequest(ctx, http.MethodGet, path, "garbage-token", nil), http.StatusUnauthorized, nil)
	}
}
