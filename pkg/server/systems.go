package server

import (
	"errors"
	"net/http"

	"adminpanel/pkg/database"
	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
)

type systemRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

func (s *Server) listSystems(ctx echo.Context) error {
	systems, err := s.db.ListSystems()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list systems")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch systems",
		})
	}

	return ctx.JSON(http.StatusOK, systems)
}

func (s *Server) createSystem(ctx echo.Context) error {
	req := &systemRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	systemRecord, err := s.db.CreateSystem(req.Name, req.Link)
	if err != nil {
		if errors.Is(err, database.ErrValidation) {
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name and link are required",
			})
		}
		log.Error().Err(err).Msg("Failed to create system")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to create system",
		})
	}

	return ctx.JSON(http.StatusOK, systemRecord)
}

func (s *Server) updateSystem(ctx echo.Context) error {
	systemID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid system ID",
		})
	}

	req := &systemRequest{}
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	systemRecord, err := s.db.UpdateSystem(systemID, req.Name, req.Link)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrValidation):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name and link are required",
			})
		case errors.Is(err, database.ErrSystemNotFound):
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "system not found",
			})
		default:
			log.Error().Err(err).Int64("id", systemID).Msg("Failed to update system")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to update system",
			})
		}
	}

	return ctx.JSON(http.StatusOK, systemRecord)
}

func (s *Server) deleteSystem(ctx echo.Context) error {
	systemID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid system ID",
		})
	}

	keys, err := s.db.DeleteSystem(systemID)
	if err != nil {
		if errors.Is(err, database.ErrSystemNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "system not found",
			})
		}
		log.Error().Err(err).Int64("id", systemID).Msg("Failed to delete system")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete system",
		})
	}

	// Blobs of cascade-deleted downloads
	s.orch.SweepBlobs(keys)

	log.Info().Int64("id", systemID).Int("swept_blobs", len(keys)).Msg("System deleted")
	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}
