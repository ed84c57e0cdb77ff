package server

import (
	"net/http"
)

// TestLogin tests the happy path and the response envelope.
func (s *ServerTestSuite) TestLogin() {
	rec := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": testPassword,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var response struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Username     string `json:"username"`
			PasswordHash string `json:"passwordHash"`
		} `json:"user"`
	}
	s.decode(rec, &response)
	s.True(response.Success)
	s.NotEmpty(response.Token)
	s.Equal(testUsername, response.User.Username)
	// The hash must never be serialized
	s.Empty(response.User.PasswordHash)
	s.NotContains(rec.Body.String(), "$2a$")
}

// TestLoginWrongPassword tests the 401 path.
func (s *ServerTestSuite) TestLoginWrongPassword() {
	rec := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
		"password": "wrong password",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	var response map[string]string
	s.decode(rec, &response)
	s.Equal("invalid credentials", response["error"])
}

// TestLoginMissingFields tests the 400 path.
func (s *ServerTestSuite) TestLoginMissingFields() {
	rec := s.request(http.MethodPost, "/api/auth/login", map[string]string{
		"username": testUsername,
	}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestVerifyToken tests verification with the token in the body.
func (s *ServerTestSuite) TestVerifyToken() {
	rec := s.request(http.MethodPost, "/api/auth/verify", map[string]string{
		"token": s.token,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var response struct {
		Success bool `json:"success"`
		User    struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	s.decode(rec, &response)
	s.True(response.Success)
	s.Equal(testUsername, response.User.Username)
}

// TestVerifyTokenFromHeader tests the Authorization header fallback.
func (s *ServerTestSuite) TestVerifyTokenFromHeader() {
	rec := s.request(http.MethodPost, "/api/auth/verify", map[string]string{}, s.token)
	s.Equal(http.StatusOK, rec.Code)
}

// TestVerifyInvalidToken tests the 401 path.
func (s *ServerTestSuite) TestVerifyInvalidToken() {
	rec := s.request(http.MethodPost, "/api/auth/verify", map[string]string{
		"token": "not-a-jwt",
	}, "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

// TestVerifyMissingToken tests the 400 path.
func (s *ServerTestSuite) TestVerifyMissingToken() {
	rec := s.request(http.MethodPost, "/api/auth/verify", map[string]string{}, "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestLogoutRevokesToken tests that a logged-out token no longer opens the
// gate for mutations.
func (s *ServerTestSuite) TestLogoutRevokesToken() {
	rec := s.request(http.MethodPost, "/api/auth/logout", map[string]string{
		"token": s.token,
	}, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPost, "/api/systems", map[string]string{
		"name": "DHIS2",
		"link": "https://dhis2.example.org",
	}, s.token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

// TestLogoutIdempotent tests that repeated or tokenless logouts succeed.
func (s *ServerTestSuite) TestLogoutIdempotent() {
	for i := 0; i < 2; i++ {
		rec := s.request(http.MethodPost, "/api/auth/logout", map[string]string{
			"token": s.token,
		}, "")
		s.Equal(http.StatusOK, rec.Code)
	}

	rec := s.request(http.MethodPost, "/api/auth/logout", map[string]string{}, "")
	s.Equal(http.StatusOK, rec.Code)
}
