// Package race is handling fellowship Race object
package race

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/x/validate"
)

var tracer = otel.Tracer("race")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	GetCharacters(c echo.Context) error
	Create(c echo.Context) error
	AddCharacter(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.RaceService
}

// NewHandler creates a new handler
func NewHandler(service core.RaceService) Handler {
	return &handler{service: service}
}

var errRaceNotFound = core.NewErrorNotFound(core.ResourceRace)

// List returns all races
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.List")
	defer span.End()

	races, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch races"})
	}
	return c.JSON(http.StatusOK, races)
}

// Get returns a race by id
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.Get")
	defer span.End()

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": errRaceNotFound.Error()})
	}

	race, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch race"})
	}
	return c.JSON(http.StatusOK, race)
}

// GetCharacters returns the characters of a race
func (h handler) GetCharacters(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.GetCharacters")
	defer span.End()

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": errRaceNotFound.Error()})
	}

	characters, err := h.service.GetCharacters(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch characters"})
	}
	return c.JSON(http.StatusOK, characters)
}

// Create validates and stores a new race
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.Create")
	defer span.End()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	if failures := validate.RaceCreate.Validate(body); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, core.ValidationErrorResponse{Errors: failures})
	}

	created, err := h.service.Create(ctx, raceFromBody(body))
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add new race"})
	}
	return c.JSON(http.StatusCreated, created)
}

// AddCharacter associates a character with the race
func (h handler) AddCharacter(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.AddCharacter")
	defer span.End()

	raceID, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": errRaceNotFound.Error()})
	}
	characterID, ok := validate.ParseID(c.Param("charId"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": core.NewErrorNotFound(core.ResourceCharacter).Error()})
	}

	character, err := h.service.AddCharacter(ctx, raceID, characterID)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add character"})
	}
	return c.JSON(http.StatusCreated, core.ResponseBase[core.Character]{Status: "ok", Content: character})
}

// Update applies a partial update to a race
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.Update")
	defer span.End()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	if failures := validate.RacePatch.Validate(body); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, core.ValidationErrorResponse{Errors: failures})
	}

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": errRaceNotFound.Error()})
	}

	updated, err := h.service.Update(ctx, id, patchFromBody(body))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update race"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a race
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Race.Handler.Delete")
	defer span.End()

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": errRaceNotFound.Error()})
	}

	deleted, err := h.service.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete race"})
	}
	return c.JSON(http.StatusOK, core.ResponseBase[core.Race]{Status: "ok", Content: deleted})
}
