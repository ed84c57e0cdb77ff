package server

import (
	"errors"
	"net/http"

	"adminpanel/pkg/database"
	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
)

type areaRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (s *Server) listAreas(ctx echo.Context) error {
	areas, err := s.db.ListAreas()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list areas")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch areas",
		})
	}

	return ctx.JSON(http.StatusOK, areas)
}

func (s *Server) createArea(ctx echo.Context) error {
	req := &areaRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	areaRecord, err := s.db.CreateArea(req.Name, req.Content)
	if err != nil {
		if errors.Is(err, database.ErrValidation) {
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name is required",
			})
		}
		log.Error().Err(err).Msg("Failed to create area")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create area",
		})
	}

	return ctx.JSON(http.StatusOK, areaRecord)
}

func (s *Server) updateArea(ctx echo.Context) error {
	areaID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid area ID",
		})
	}

	req := &areaRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	areaRecord, err := s.db.UpdateArea(areaID, req.Name, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrValidation):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name is required",
			})
		case errors.Is(err, database.ErrAreaNotFound):
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "area not found",
			})
		default:
			log.Error().Err(err).Int64("id", areaID).Msg("Failed to update area")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to update area",
			})
		}
	}

	return ctx.JSON(http.StatusOK, areaRecord)
}

func (s *Server) deleteArea(ctx echo.Context) error {
	areaID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid area ID",
		})
	}

	if err := s.db.DeleteArea(areaID); err != nil {
		if errors.Is(err, database.ErrAreaNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "area not found",
			})
		}
		log.Error().Err(err).Int64("id", areaID).Msg("Failed to delete area")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete area",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}
