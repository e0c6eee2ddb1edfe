package character

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/totegamma/fellowship/core"
)

type service struct {
	repo Repository
}

// NewService creates a new character service
func NewService(repo Repository) core.CharacterService {
	return &service{repo: repo}
}

// Count returns the count number of characters
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

func (s *service) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Create")
	defer span.End()

	created, err := s.repo.Create(ctx, character)
	if err != nil {
		logUnexpected(ctx, "failed to create character", err)
		return core.Character{}, err
	}
	return created, nil
}

func (s *service) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.List")
	defer span.End()

	characters, err := s.repo.List(ctx)
	if err != nil {
		logUnexpected(ctx, "failed to list characters", err)
		return []core.Character{}, err
	}
	return characters, nil
}

func (s *service) Get(ctx context.Context, id uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

// Update applies a partial update. The character must exist even when the patch is empty.
func (s *service) Update(ctx context.Context, id uint, patch core.CharacterPatch) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Update")
	defer span.End()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return core.Character{}, err
	}

	updated, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		logUnexpected(ctx, "failed to update character", err)
		return core.Character{}, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logUnexpected(ctx, "failed to delete character", err)
		return core.Character{}, err
	}
	return deleted, nil
}

// GetRace returns the race of a character.
// A character without a race yields a Race not found error.
func (s *service) GetRace(ctx context.Context, id uint) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.GetRace")
	defer span.End()

	return s.repo.GetRace(ctx, id)
}

// SetRace associates a character with a race, replacing any previous race
func (s *service) SetRace(ctx context.Context, characterID, raceID uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Service.SetRace")
	defer span.End()

	character, err := s.repo.SetRace(ctx, characterID, raceID)
	if err != nil {
		logUnexpected(ctx, "failed to set race of character", err)
		return core.Character{}, err
	}
	return character, nil
}

func logUnexpected(ctx context.Context, msg string, err error) {
	if errors.Is(err, core.ErrorNotFound{}) || errors.Is(err, core.ErrorAlreadyExists{}) {
		return
	}
	slog.ErrorContext(
		ctx,
		msg,
		slog.String("error", err.Error()),
		slog.String("module", "character"),
	)
}
