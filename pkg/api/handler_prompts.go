package api

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/registry"
)

// listPromptsHandler handles GET /api/v1/prompts.
func (s *Server) listPromptsHandler(c *echo.Context) error {
	filter := registry.PromptListFilter{
		Name:       c.QueryParam("name"),
		PromptType: c.QueryParam("prompt_type"),
		ModelName:  c.QueryParam("model_name"),
	}
	if v := c.QueryParam("is_active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR",
				"is_active must be true or false")
		}
		filter.IsActive = &active
	}

	rows, err := s.prompts.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	items := make([]PromptResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, newPromptResponse(row, false))
	}
	return c.JSON(http.StatusOK, items)
}

// getPromptHandler handles GET /api/v1/prompts/:id.
func (s *Server) getPromptHandler(c *echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "id must be a UUID")
	}

	row, err := s.prompts.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPromptResponse(row, true))
}

// createPromptHandler handles PUT /api/v1/prompts.
// Stores a new version; a duplicate (name, version) pair is a conflict.
func (s *Server) createPromptHandler(c *echo.Context) error {
	var req CreatePromptRequest
	if err := c.Bind(&req); err != nil {
		return newHTTPError(http.StatusBadRequest, "INVALID_JSON", err.Error())
	}

	row, err := s.prompts.CreateVersion(c.Request().Context(), registry.CreateVersionParams{
		Name:        req.Name,
		Version:     req.Version,
		PromptType:  req.PromptType,
		ModelName:   req.ModelName,
		Content:     req.Content,
		Description: req.Description,
		CreatedBy:   identityFrom(c).Subject,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, newPromptResponse(row, true))
}

// activatePromptHandler handles POST /api/v1/prompts/:id/activate.
func (s *Server) activatePromptHandler(c *echo.Context) error {
	return s.setPromptActive(c, true)
}

// deactivatePromptHandler handles POST /api/v1/prompts/:id/deactivate.
func (s *Server) deactivatePromptHandler(c *echo.Context) error {
	return s.setPromptActive(c, false)
}

func (s *Server) setPromptActive(c *echo.Context, active bool) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return newHTTPError(http.StatusBadRequest, "VALIDATION_ERROR", "id must be a UUID")
	}

	row, err := s.prompts.SetActive(c.Request().Context(), id, active)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newPromptResponse(row, false))
}
