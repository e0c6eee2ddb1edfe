// Package character is handling fellowship Character object
package character

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/x/validate"
)

var tracer = otel.Tracer("character")

// Handler is the interface for handling HTTP requests
type Handler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	GetRace(c echo.Context) error
	Create(c echo.Context) error
	SetRace(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.CharacterService
}

// NewHandler creates a new handler
func NewHandler(service core.CharacterService) Handler {
	return &handler{service: service}
}

func notFound(c echo.Context, err error) error {
	return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
}

// List returns all characters
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.List")
	defer span.End()

	characters, err := h.service.List(ctx)
	if err != nil {
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch characters"})
	}
	return c.JSON(http.StatusOK, characters)
}

// Get returns a character by id
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Get")
	defer span.End()

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return notFound(c, core.NewErrorNotFound(core.ResourceCharacter))
	}

	character, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return notFound(c, err)
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch character"})
	}
	return c.JSON(http.StatusOK, character)
}

// GetRace returns the race associated with a character
func (h handler) GetRace(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.GetRace")
	defer span.End()

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return notFound(c, core.NewErrorNotFound(core.ResourceCharacter))
	}

	race, err := h.service.GetRace(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return notFound(c, err)
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch race"})
	}
	return c.JSON(http.StatusOK, race)
}

// Create validates and stores a new character
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Create")
	defer span.End()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	if failures := validate.CharacterCreate.Validate(body); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, core.ValidationErrorResponse{Errors: failures})
	}

	created, err := h.service.Create(ctx, characterFromBody(body))
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add new character"})
	}
	return c.JSON(http.StatusCreated, created)
}

// SetRace associates the character with a race
func (h handler) SetRace(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.SetRace")
	defer span.End()

	characterID, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return notFound(c, core.NewErrorNotFound(core.ResourceCharacter))
	}
	raceID, ok := validate.ParseID(c.Param("raceId"))
	if !ok {
		return notFound(c, core.NewErrorNotFound(core.ResourceRace))
	}

	character, err := h.service.SetRace(ctx, characterID, raceID)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return notFound(c, err)
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to associate race"})
	}
	return c.JSON(http.StatusCreated, core.ResponseBase[core.Character]{Status: "ok", Content: character})
}

// Update applies a partial update to a character
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Update")
	defer span.End()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request"})
	}

	if failures := validate.CharacterPatch.Validate(body); len(failures) > 0 {
		return c.JSON(http.StatusBadRequest, core.ValidationErrorResponse{Errors: failures})
	}

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return notFound(c, core.NewErrorNotFound(core.ResourceCharacter))
	}

	updated, err := h.service.Update(ctx, id, patchFromBody(body))
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return notFound(c, err)
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update character"})
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a character
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Delete")
	defer span.End()

	id, ok := validate.ParseID(c.Param("id"))
	if !ok {
		return notFound(c, core.NewErrorNotFound(core.ResourceCharacter))
	}

	deleted, err := h.service.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrorNotFound{}) {
			return notFound(c, err)
		}
		span.RecordError(err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete character"})
	}
	return c.JSON(http.StatusOK, core.ResponseBase[core.Character]{Status: "ok", Content: deleted})
}
