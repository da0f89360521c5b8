package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/sigmapilot/lens/pkg/registry"
)

// listLLMConfigsHandler handles GET /api/v1/llm-configs.
// API keys are always masked on read surfaces.
func (s *Server) listLLMConfigsHandler(c *echo.Context) error {
	rows, err := s.llm.List(c.Request().Context())
	if err != nil {
		return err
	}
	items := make([]LLMConfigResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, newLLMConfigResponse(row))
	}
	return c.JSON(http.StatusOK, items)
}

// getLLMConfigHandler handles GET /api/v1/llm-configs/:model.
func (s *Server) getLLMConfigHandler(c *echo.Context) error {
	row, err := s.llm.Get(c.Request().Context(), c.Param("model"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newLLMConfigResponse(row))
}

// upsertLLMConfigHandler handles PUT /api/v1/llm-configs/:model.
func (s *Server) upsertLLMConfigHandler(c *echo.Context) error {
	var req LLMConfigRequest
	if err := c.Bind(&req); err != nil {
		return newHTTPError(http.StatusBadRequest, "INVALID_JSON", err.Error())
	}

	row, err := s.llm.Upsert(c.Request().Context(), c.Param("model"), registry.UpsertParams{
		APIKey:    req.APIKey,
		ModelID:   req.ModelID,
		TimeoutMS: req.TimeoutMS,
		MaxTokens: req.MaxTokens,
		Enabled:   req.Enabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newLLMConfigResponse(row))
}

// patchLLMConfigHandler handles PATCH /api/v1/llm-configs/:model.
func (s *Server) patchLLMConfigHandler(c *echo.Context) error {
	var req LLMConfigRequest
	if err := c.Bind(&req); err != nil {
		return newHTTPError(http.StatusBadRequest, "INVALID_JSON", err.Error())
	}

	row, err := s.llm.Patch(c.Request().Context(), c.Param("model"), registry.UpsertParams{
		APIKey:    req.APIKey,
		ModelID:   req.ModelID,
		TimeoutMS: req.TimeoutMS,
		MaxTokens: req.MaxTokens,
		Enabled:   req.Enabled,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newLLMConfigResponse(row))
}

// deleteLLMConfigHandler handles DELETE /api/v1/llm-configs/:model.
func (s *Server) deleteLLMConfigHandler(c *echo.Context) error {
	if err := s.llm.Delete(c.Request().Context(), c.Param("model")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// testLLMConfigHandler handles POST /api/v1/llm-configs/:model/test.
// Runs a minimal live evaluation against the stored key.
func (s *Server) testLLMConfigHandler(c *echo.Context) error {
	if s.keyProbe == nil {
		return newHTTPError(http.StatusServiceUnavailable, "PROBE_UNAVAILABLE",
			"Key validation is not available")
	}
	result, err := s.llm.TestAPIKey(c.Request().Context(), c.Param("model"), s.keyProbe)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// enableLLMConfigHandler handles POST /api/v1/llm-configs/:model/enable.
func (s *Server) enableLLMConfigHandler(c *echo.Context) error {
	return s.setLLMConfigEnabled(c, true)
}

// disableLLMConfigHandler handles POST /api/v1/llm-configs/:model/disable.
func (s *Server) disableLLMConfigHandler(c *echo.Context) error {
	return s.setLLMConfigEnabled(c, false)
}

func (s *Server) setLLMConfigEnabled(c *echo.Context, enabled bool) error {
	row, err := s.llm.SetEnabled(c.Request().Context(), c.Param("model"), enabled)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, newLLMConfigResponse(row))
}
