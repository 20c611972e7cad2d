package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ladob/catalog-api/internal/api/metrics"
	"github.com/ladob/catalog-api/internal/core/ports"
)

// GenreHandler handles HTTP requests for the genre taxonomy.
type GenreHandler struct {
	service ports.GenreService
	log     zerolog.Logger
}

func NewGenreHandler(service ports.GenreService, log zerolog.Logger) *GenreHandler {
	return &GenreHandler{service: service, log: log}
}

// List handles GET /genres/.
//
// @Summary      Get all genres
// @Tags         genres
// @Produce      json
// @Success      200  {array}   genreResponse
// @Failure      500  {object}  api.ErrorEnvelope
// @Router       /genres/ [get]
func (h *GenreHandler) List(c echo.Context) error {
	genres, err := h.service.GetGenres(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]genreResponse, 0, len(genres))
	for _, g := range genres {
		resp = append(resp, genreResponse{ID: g.ID, Name: g.Name})
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /genres/:id.
//
// @Summary      Get genre by id
// @Tags         genres
// @Produce      json
// @Param        id   path      string  true  "Genre id"
// @Success      200  {object}  genreResponse
// @Failure      404  {object}  api.ErrorEnvelope
// @Router       /genres/{id} [get]
func (h *GenreHandler) Get(c echo.Context) error {
	genre, err := h.service.GetGenreByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, genreResponse{ID: genre.ID, Name: genre.Name})
}

// Create handles POST /genres/. Admin only.
//
// @Summary      Create a new genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      genreRequest  true  "Genre details"
// @Success      201   {object}  genreResponse
// @Failure      400   {object}  api.ErrorEnvelope
// @Failure      401   {object}  api.ErrorEnvelope
// @Failure      403   {object}  api.ErrorEnvelope
// @Router       /genres/ [post]
func (h *GenreHandler) Create(c echo.Context) error {
	var req genreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	genre, err := h.service.CreateGenre(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	metrics.GenreMutationsTotal.WithLabelValues("create").Inc()
	h.log.Info().
		Str("genre_id", genre.ID).
		Str("name", genre.Name).
		Str("by", principalEmail(c)).
		Msg("genre created")

	return c.JSON(http.StatusCreated, genreResponse{ID: genre.ID, Name: genre.Name})
}

// Update handles PUT /genres/:id. Admin only.
//
// @Summary      Update a genre
// @Tags         genres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Genre id"
// @Param        body  body      genreRequest  true  "Genre details"
// @Success      200   {object}  genreResponse
// @Failure      400   {object}  api.ErrorEnvelope
// @Failure      401   {object}  api.ErrorEnvelope
// @Failure      403   {object}  api.ErrorEnvelope
// @Failure      404   {object}  api.ErrorEnvelope
// @Router       /genres/{id} [put]
func (h *GenreHandler) Update(c echo.Context) error {
	var req genreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	genre, err := h.service.UpdateGenre(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}

	metrics.GenreMutationsTotal.WithLabelValues("update").Inc()
	h.log.Info().
		Str("genre_id", genre.ID).
		Str("name", genre.Name).
		Str("by", principalEmail(c)).
		Msg("genre updated")

	return c.JSON(http.StatusOK, genreResponse{ID: genre.ID, Name: genre.Name})
}

// Delete handles DELETE /genres/:id. Admin only.
//
// @Summary      Delete genre by id
// @Tags         genres
// @Security     BearerAuth
// @Param        id  path  string  true  "Genre id"
// @Success      204
// @Failure      401  {object}  api.ErrorEnvelope
// @Failure      403  {object}  api.ErrorEnvelope
// @Failure      404  {object}  api.ErrorEnvelope
// @Router       /genres/{id} [delete]
func (h *GenreHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.DeleteGenre(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.GenreMutationsTotal.WithLabelValues("delete").Inc()
	h.log.Info().
		Str("genre_id", id).
		Str("by", principalEmail(c)).
		Msg("genre deleted")

	return c.NoContent(http.StatusNoContent)
}
