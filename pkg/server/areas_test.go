package server

import (
	"fmt"
	"net/http"

	"adminpanel/pkg/models"
)

// TestAreaLifecycle tests create, list, update and delete over HTTP.
func (s *ServerTestSuite) TestAreaLifecycle() {
	rec := s.request(http.MethodPost, "/api/areas", map[string]string{
		"name":    "Health",
		"content": "Health sector tools and documentation.",
	}, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var created models.Area
	s.decode(rec, &created)
	s.NotZero(created.ID)
	s.Equal("Health", created.Name)

	rec = s.request(http.MethodGet, "/api/areas", nil, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var listed []models.Area
	s.decode(rec, &listed)
	s.Require().Len(listed, 1)
	s.Equal("Health sector tools and documentation.", listed[0].Content)

	rec = s.request(http.MethodPut, fmt.Sprintf("/api/areas/%d", created.ID), map[string]string{
		"name":    "Health",
		"content": "Updated copy.",
	}, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	var updated models.Area
	s.decode(rec, &updated)
	s.Equal("Updated copy.", updated.Content)

	rec = s.request(http.MethodDelete, fmt.Sprintf("/api/areas/%d", created.ID), nil, s.token)
	s.Require().Equal(http.StatusOK, rec.Code)

	s.decode(s.request(http.MethodGet, "/api/areas", nil, ""), &listed)
	s.Empty(listed)
}

// TestCreateAreaEmptyContent tests that content may be empty but name may not.
func (s *ServerTestSuite) TestCreateAreaEmptyContent() {
	rec := s.request(http.MethodPost, "/api/areas", map[string]string{
		"name": "Education",
	}, s.token)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.request(http.MethodPost, "/api/areas", map[string]string{
		"content": "orphaned copy",
	}, s.token)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// TestUpdateAreaNotFound tests the 404 path.
func (s *ServerTestSuite) TestUpdateAreaNotFound() {
	rec := s.request(http.MethodPut, "/api/areas/9999", map[string]string{
		"name": "Health",
	}, s.token)
	s.Equal(http.StatusNotFound, rec.Code)
}
