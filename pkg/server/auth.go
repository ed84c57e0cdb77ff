package server

import (
	"errors"
	"net/http"

	"adminpanel/pkg/auth"
	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

func (s *Server) login(ctx echo.Context) error {
	req := &loginRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "username and password are required",
		})
	}

	token, userRecord, err := s.gate.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return ctx.JSON(http.StatusUnauthorized, map[string]string{
				"error": "invalid credentials",
			})
		}
		log.Error().Err(err).Msg("Login failed")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
		"user":    userRecord,
	})
}

func (s *Server) verifyToken(ctx echo.Context) error {
	req := &verifyRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	token := req.Token
	if token == "" {
		token = bearerToken(ctx)
	}
	if token == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "token is required",
		})
	}

	userRecord, err := s.gate.Verify(token)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, map[string]string{
			"error": "invalid token",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    userRecord,
	})
}

func (s *Server) logout(ctx echo.Context) error {
	req := &verifyRequest{}
	if err := ctx.Bind(req); err == nil && req.Token != "" {
		s.gate.Logout(req.Token)
	} else if token := bearerToken(ctx); token != "" {
		s.gate.Logout(token)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}
