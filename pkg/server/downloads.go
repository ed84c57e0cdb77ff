package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"adminpanel/pkg/database"
	"adminpanel/pkg/downloads"
	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
)

func (s *Server) listDownloads(ctx echo.Context) error {
	var categoryID *int64
	if raw := ctx.QueryParam("categoryId"); raw != "" {
		parsed, err := parseID(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid category ID",
			})
		}
		categoryID = &parsed
	}

	records, err := s.orch.List(categoryID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list downloads")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to fetch downloads",
		})
	}

	return ctx.JSON(http.StatusOK, records)
}

func (s *Server) createDownload(ctx echo.Context) error {
	name := ctx.FormValue("name")

	file, err := ctx.FormFile("file")
	if err != nil || name == "" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "name and file are required",
		})
	}

	var categoryID *int64
	if raw := ctx.FormValue("categoryId"); raw != "" {
		parsed, parseErr := parseID(raw)
		if parseErr != nil {
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid category ID",
			})
		}
		categoryID = &parsed
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open uploaded file",
		})
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close source file")
		}
	}()

	downloadRecord, err := s.orch.Create(name, src, file.Filename, file.Header.Get(echo.HeaderContentType), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, downloads.ErrValidation):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "name and file are required",
			})
		case errors.Is(err, database.ErrCategoryNotFound):
			return ctx.JSON(http.StatusBadRequest, map[string]string{
				"error": "category not found",
			})
		case errors.Is(err, downloads.ErrStorage):
			log.Error().Err(err).Msg("Failed to store uploaded file")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to store uploaded file",
			})
		default:
			log.Error().Err(err).Msg("Failed to create download")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to create download",
			})
		}
	}

	return ctx.JSON(http.StatusOK, downloadRecord)
}

func (s *Server) downloadFile(ctx echo.Context) error {
	downloadID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid download ID",
		})
	}

	downloadRecord, reader, err := s.orch.Retrieve(downloadID)
	if err != nil {
		switch {
		case errors.Is(err, downloads.ErrNotFound):
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "download not found",
			})
		case errors.Is(err, downloads.ErrBlobMissing):
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "file not found on disk",
			})
		default:
			log.Error().Err(err).Int64("id", downloadID).Msg("Failed to serve file")
			return ctx.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to serve file",
			})
		}
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close blob reader")
		}
	}()

	// Headers come from stored metadata; the storage key never leaves the server
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, downloadRecord.FileName))
	ctx.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(downloadRecord.FileSize, 10))

	return ctx.Stream(http.StatusOK, downloadRecord.MimeType, reader)
}

func (s *Server) deleteDownload(ctx echo.Context) error {
	downloadID, err := pathID(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid download ID",
		})
	}

	if err := s.orch.Delete(downloadID); err != nil {
		if errors.Is(err, downloads.ErrNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{
				"error": "download not found",
			})
		}
		log.Error().Err(err).Int64("id", downloadID).Msg("Failed to delete download")
		return ctx.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to delete download",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"success": true})
}
