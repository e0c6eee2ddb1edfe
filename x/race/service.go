package race

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/totegamma/fellowship/core"
)

type service struct {
	repo Repository
}

// NewService creates a new race service
func NewService(repo Repository) core.RaceService {
	return &service{repo: repo}
}

// Count returns the count number of races
func (s *service) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.Count")
	defer span.End()

	return s.repo.Count(ctx)
}

func (s *service) Create(ctx context.Context, race core.Race) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.Create")
	defer span.End()

	created, err := s.repo.Create(ctx, race)
	if err != nil {
		logUnexpected(ctx, "failed to create race", err)
		return core.Race{}, err
	}
	return created, nil
}

func (s *service) List(ctx context.Context) ([]core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.List")
	defer span.End()

	races, err := s.repo.List(ctx)
	if err != nil {
		logUnexpected(ctx, "failed to list races", err)
		return []core.Race{}, err
	}
	return races, nil
}

func (s *service) Get(ctx context.Context, id uint) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.Get")
	defer span.End()

	return s.repo.Get(ctx, id)
}

func (s *service) Update(ctx context.Context, id uint, patch core.RacePatch) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.Update")
	defer span.End()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return core.Race{}, err
	}

	updated, err := s.repo.Update(ctx, id, patch.Columns())
	if err != nil {
		logUnexpected(ctx, "failed to update race", err)
		return core.Race{}, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uint) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.Delete")
	defer span.End()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		logUnexpected(ctx, "failed to delete race", err)
		return core.Race{}, err
	}
	return deleted, nil
}

// GetCharacters returns the characters of an existing race
func (s *service) GetCharacters(ctx context.Context, id uint) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.GetCharacters")
	defer span.End()

	if _, err := s.repo.Get(ctx, id); err != nil {
		return []core.Character{}, err
	}

	characters, err := s.repo.GetCharacters(ctx, id)
	if err != nil {
		logUnexpected(ctx, "failed to list characters of race", err)
		return []core.Character{}, err
	}
	return characters, nil
}

// AddCharacter checks the race first, then the character
func (s *service) AddCharacter(ctx context.Context, raceID, characterID uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Race.Service.AddCharacter")
	defer span.End()

	if _, err := s.repo.Get(ctx, raceID); err != nil {
		return core.Character{}, err
	}

	character, err := s.repo.AddCharacter(ctx, raceID, characterID)
	if err != nil {
		logUnexpected(ctx, "failed to add character to race", err)
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
		slog.String("module", "race"),
	)
}
