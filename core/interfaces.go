//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=mock/services.go
package core

import (
	"context"
)

type CharacterService interface {
	Create(ctx context.Context, character Character) (Character, error)
	List(ctx context.Context) ([]Character, error)
	Get(ctx context.Context, id uint) (Character, error)
	Update(ctx context.Context, id uint, patch CharacterPatch) (Character, error)
	Delete(ctx context.Context, id uint) (Character, error)
	GetRace(ctx context.Context, id uint) (Race, error)
	SetRace(ctx context.Context, characterID, raceID uint) (Character, error)
	Count(ctx context.Context) (int64, error)
}

type RaceService interface {
	Create(ctx context.Context, race Race) (Race, error)
	List(ctx context.Context) ([]Race, error)
	Get(ctx context.Context, id uint) (Race, error)
	Update(ctx context.Context, id uint, patch RacePatch) (Race, error)
	Delete(ctx context.Context, id uint) (Race, error)
	GetCharacters(ctx context.Context, id uint) ([]Character, error)
	AddCharacter(ctx context.Context, raceID, characterID uint) (Character, error)
	Count(ctx context.Context) (int64, error)
}
