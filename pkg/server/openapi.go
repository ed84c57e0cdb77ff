package server

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.yml
var openAPISpec []byte

//go:embed docs.html
var docsPage []byte

func (s *Server) serveDocsUI(ctx echo.Context) error {
	return ctx.HTMLBlob(http.StatusOK, docsPage)
}

func (s *Server) serveOpenAPISpec(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openAPISpec)
}
