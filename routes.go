// Package fellowship wires the character and race modules into an HTTP API
package fellowship

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/totegamma/fellowship/x/character"
	"github.com/totegamma/fellowship/x/race"
)

// BodyLimit caps request bodies on the resource routes
const BodyLimit = "64K"

// RegisterRoutes binds the resource routes to e
func RegisterRoutes(e *echo.Echo, characterHandler character.Handler, raceHandler race.Handler) {
	limit := middleware.BodyLimit(BodyLimit)

	// character
	characters := e.Group("/characters", limit)
	characters.GET("", characterHandler.List)
	characters.POST("", characterHandler.Create)
	characters.GET("/:id", characterHandler.Get)
	characters.PATCH("/:id", characterHandler.Update)
	characters.DELETE("/:id", characterHandler.Delete)
	characters.GET("/:id/race", characterHandler.GetRace)
	characters.POST("/:id/races/:raceId", characterHandler.SetRace)

	// race
	races := e.Group("/races", limit)
	races.GET("", raceHandler.List)
	races.POST("", raceHandler.Create)
	races.GET("/:id", raceHandler.Get)
	races.PATCH("/:id", raceHandler.Update)
	races.DELETE("/:id", raceHandler.Delete)
	races.GET("/:id/characters", raceHandler.GetCharacters)
	races.POST("/:id/characters/:charId", raceHandler.AddCharacter)
}
