package character

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/fellowship/core"
)

// Repository is the interface for character repository
type Repository interface {
	Create(ctx context.Context, character core.Character) (core.Character, error)
	List(ctx context.Context) ([]core.Character, error)
	Get(ctx context.Context, id uint) (core.Character, error)
	Update(ctx context.Context, id uint, columns map[string]any) (core.Character, error)
	Delete(ctx context.Context, id uint) (core.Character, error)
	GetRace(ctx context.Context, id uint) (core.Race, error)
	SetRace(ctx context.Context, characterID, raceID uint) (core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.setCurrentCount()
	return r
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
			slog.String("module", "character"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: core.CharacterCountCacheKey, Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of characters
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(core.CharacterCountCacheKey)
	if err != nil {
		span.RecordError(err)

		if errors.Is(err, memcache.ErrCacheMiss) {
			r.setCurrentCount()
			return 0, errors.Wrap(err, "trying to fix...")
		}

		return 0, err
	}

	count, err := strconv.ParseInt(string(item.Value), 10, 64)
	if err != nil {
		span.RecordError(err)
		return 0, err
	}
	return count, nil
}

// Create inserts a new character. A zero ID is assigned by the database.
func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Create")
	defer span.End()

	character.RaceID = nil
	character.Race = nil

	explicitID := character.ID != 0

	err := r.db.WithContext(ctx).Create(&character).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Character{}, core.NewErrorAlreadyExists(core.ResourceCharacter)
		}
		return core.Character{}, errors.Wrap(err, "failed to create character")
	}

	r.mc.Increment(core.CharacterCountCacheKey, 1)

	// the row is already committed and counted when the sync fails; it is
	// reported as a failure and left in place
	if explicitID {
		if err := r.syncSequence(ctx); err != nil {
			span.RecordError(err)
			slog.ErrorContext(
				ctx,
				"character inserted but id sequence not synced",
				slog.Uint64("id", uint64(character.ID)),
				slog.String("error", err.Error()),
				slog.String("module", "character"),
			)
			return core.Character{}, err
		}
	}

	return character, nil
}

// List returns every character ordered by id
func (r *repository) List(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.List")
	defer span.End()

	var characters []core.Character
	if err := r.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		span.RecordError(err)
		return []core.Character{}, errors.Wrap(err, "failed to list characters")
	}
	if characters == nil {
		return []core.Character{}, nil
	}
	return characters, nil
}

// Get returns a character by id
func (r *repository) Get(ctx context.Context, id uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Get")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound(core.ResourceCharacter)
		}
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to get character")
	}
	return character, nil
}

// Update writes the given columns and returns the stored row
func (r *repository) Update(ctx context.Context, id uint, columns map[string]any) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Update")
	defer span.End()

	if len(columns) > 0 {
		result := r.db.WithContext(ctx).Model(&core.Character{}).Where("id = ?", id).Updates(columns)
		if result.Error != nil {
			span.RecordError(result.Error)
			return core.Character{}, errors.Wrap(result.Error, "failed to update character")
		}
		if result.RowsAffected == 0 {
			return core.Character{}, core.NewErrorNotFound(core.ResourceCharacter)
		}
	}

	return r.Get(ctx, id)
}

// Delete removes a character and returns the removed row
func (r *repository) Delete(ctx context.Context, id uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Delete")
	defer span.End()

	character, err := r.Get(ctx, id)
	if err != nil {
		return core.Character{}, err
	}

	result := r.db.WithContext(ctx).Delete(&core.Character{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Character{}, errors.Wrap(result.Error, "failed to delete character")
	}
	if result.RowsAffected == 0 {
		return core.Character{}, core.NewErrorNotFound(core.ResourceCharacter)
	}

	r.mc.Decrement(core.CharacterCountCacheKey, 1)

	return character, nil
}

// GetRace returns the race a character belongs to
func (r *repository) GetRace(ctx context.Context, id uint) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetRace")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).Preload("Race").First(&character, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Race{}, core.NewErrorNotFound(core.ResourceCharacter)
		}
		span.RecordError(err)
		return core.Race{}, errors.Wrap(err, "failed to get race of character")
	}

	if character.Race == nil {
		return core.Race{}, core.NewErrorNotFound(core.ResourceRace)
	}
	return *character.Race, nil
}

// SetRace points a character at an existing race
func (r *repository) SetRace(ctx context.Context, characterID, raceID uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.SetRace")
	defer span.End()

	character, err := r.Get(ctx, characterID)
	if err != nil {
		return core.Character{}, err
	}

	var race core.Race
	err = r.db.WithContext(ctx).First(&race, "id = ?", raceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound(core.ResourceRace)
		}
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to get race")
	}

	err = r.db.WithContext(ctx).Model(&core.Character{}).Where("id = ?", characterID).Update("race_id", race.ID).Error
	if err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to set race")
	}

	character.RaceID = &race.ID
	return character, nil
}

// syncSequence moves the id sequence past rows inserted with an explicit id
func (r *repository) syncSequence(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(
		"SELECT setval(pg_get_serial_sequence('characters', 'id'), (SELECT COALESCE(MAX(id), 1) FROM characters))",
	).Error
	if err != nil {
		return errors.Wrap(err, "failed to sync character id sequence")
	}
	return nil
}
