package server

import (
	"errors"
	"net/http"

	"adminpanel/pkg/database"
	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
)

type categoryRequest struct {
	Name     string `json:"name"`
	SystemID int64  `json:"systemId"`
}

func (s *Server) listCategories(ctx echo.Context) error {
	categories, err := s.db.ListCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch categories",
		})
	}

	return ctx.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(ctx echo.Context) error {
	req := &categoryRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	categoryRecord, err := s.db.CreateCategory(req.Name, req.SystemID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrValidation):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name and system ID are required",
			})
		case errors.Is(err, database.ErrSystemNotFound):
			// Missing parent is a validation failure, not a 404
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "system not found",
			})
		default:
			log.Error().Err(err).Msg("Failed to create category")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to create category",
			})
		}
	}

	return ctx.JSON(http.StatusOK, categoryRecord)
}

func (s *Server) updateCategory(ctx echo.Context) error {
	categoryID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid category ID",
		})
	}

	req := &categoryRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	categoryRecord, err := s.db.UpdateCategory(categoryID, req.Name, req.SystemID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrValidation):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name and system ID are required",
			})
		case errors.Is(err, database.ErrSystemNotFound):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "system not found",
			})
		case errors.Is(err, database.ErrCategoryNotFound):
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "category not found",
			})
		default:
			log.Error().Err(err).Int64("id", categoryID).Msg("Failed to update category")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to update category",
			})
		}
	}

	return ctx.JSON(http.StatusOK, categoryRecord)
}

func (s *Server) deleteCategory(ctx echo.Context) error {
	categoryID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid category ID",
		})
	}

	keys, err := s.db.DeleteCategory(categoryID)
	if err != nil {
		if errors.Is(err, database.ErrCategoryNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "category not found",
			})
		}
		log.Error().Err(err).Int64("id", categoryID).Msg("Failed to delete category")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete category",
		})
	}

	// Blobs of cascade-deleted downloads
	s.orch.SweepBlobs(keys)

	log.Info().Int64("id", categoryID).Int("swept_blobs", len(keys)).Msg("Category deleted")
	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}
