package race

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/totegamma/fellowship/core"
)

// Repository is the interface for race repository
type Repository interface {
	Create(ctx context.Context, race core.Race) (core.Race, error)
	List(ctx context.Context) ([]core.Race, error)
	Get(ctx context.Context, id uint) (core.Race, error)
	Update(ctx context.Context, id uint, columns map[string]any) (core.Race, error)
	Delete(ctx context.Context, id uint) (core.Race, error)
	GetCharacters(ctx context.Context, id uint) ([]core.Character, error)
	AddCharacter(ctx context.Context, raceID, characterID uint) (core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new race repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {
	r := &repository{db, mc}
	r.setCurrentCount()
	return r
}

func (r *repository) setCurrentCount() {
	var count int64
	err := r.db.Model(&core.Race{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count races",
			slog.String("error", err.Error()),
			slog.String("module", "race"),
		)
		return
	}

	r.mc.Set(&memcache.Item{Key: core.RaceCountCacheKey, Value: []byte(strconv.FormatInt(count, 10))})
}

// Count returns the total number of races
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(core.RaceCountCacheKey)
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

func (r *repository) Create(ctx context.Context, race core.Race) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.Create")
	defer span.End()

	explicitID := race.ID != 0

	err := r.db.WithContext(ctx).Create(&race).Error
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Race{}, core.NewErrorAlreadyExists(core.ResourceRace)
		}
		return core.Race{}, errors.Wrap(err, "failed to create race")
	}

	r.mc.Increment(core.RaceCountCacheKey, 1)

	// the row is already committed and counted when the sync fails; it is
	// reported as a failure and left in place
	if explicitID {
		if err := r.syncSequence(ctx); err != nil {
			span.RecordError(err)
			slog.ErrorContext(
				ctx,
				"race inserted but id sequence not synced",
				slog.Uint64("id", uint64(race.ID)),
				slog.String("error", err.Error()),
				slog.String("module", "race"),
			)
			return core.Race{}, err
		}
	}

	return race, nil
}

func (r *repository) List(ctx context.Context) ([]core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.List")
	defer span.End()

	var races []core.Race
	if err := r.db.WithContext(ctx).Order("id").Find(&races).Error; err != nil {
		span.RecordError(err)
		return []core.Race{}, errors.Wrap(err, "failed to list races")
	}
	if races == nil {
		return []core.Race{}, nil
	}
	return races, nil
}

func (r *repository) Get(ctx context.Context, id uint) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.Get")
	defer span.End()

	var race core.Race
	err := r.db.WithContext(ctx).First(&race, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Race{}, core.NewErrorNotFound(core.ResourceRace)
		}
		span.RecordError(err)
		return core.Race{}, errors.Wrap(err, "failed to get race")
	}
	return race, nil
}

func (r *repository) Update(ctx context.Context, id uint, columns map[string]any) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.Update")
	defer span.End()

	if len(columns) > 0 {
		result := r.db.WithContext(ctx).Model(&core.Race{}).Where("id = ?", id).Updates(columns)
		if result.Error != nil {
			span.RecordError(result.Error)
			return core.Race{}, errors.Wrap(result.Error, "failed to update race")
		}
		if result.RowsAffected == 0 {
			return core.Race{}, core.NewErrorNotFound(core.ResourceRace)
		}
	}

	return r.Get(ctx, id)
}

// Delete removes a race. Characters of the race are left without one (ON DELETE SET NULL).
func (r *repository) Delete(ctx context.Context, id uint) (core.Race, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.Delete")
	defer span.End()

	race, err := r.Get(ctx, id)
	if err != nil {
		return core.Race{}, err
	}

	result := r.db.WithContext(ctx).Delete(&core.Race{}, "id = ?", id)
	if result.Error != nil {
		span.RecordError(result.Error)
		return core.Race{}, errors.Wrap(result.Error, "failed to delete race")
	}
	if result.RowsAffected == 0 {
		return core.Race{}, core.NewErrorNotFound(core.ResourceRace)
	}

	r.mc.Decrement(core.RaceCountCacheKey, 1)

	return race, nil
}

// GetCharacters returns the characters belonging to a race ordered by id
func (r *repository) GetCharacters(ctx context.Context, id uint) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.GetCharacters")
	defer span.End()

	var characters []core.Character
	if err := r.db.WithContext(ctx).Where("race_id = ?", id).Order("id").Find(&characters).Error; err != nil {
		span.RecordError(err)
		return []core.Character{}, errors.Wrap(err, "failed to list characters of race")
	}
	if characters == nil {
		return []core.Character{}, nil
	}
	return characters, nil
}

// AddCharacter points an existing character at the race
func (r *repository) AddCharacter(ctx context.Context, raceID, characterID uint) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Race.Repository.AddCharacter")
	defer span.End()

	var character core.Character
	err := r.db.WithContext(ctx).First(&character, "id = ?", characterID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound(core.ResourceCharacter)
		}
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to get character")
	}

	err = r.db.WithContext(ctx).Model(&core.Character{}).Where("id = ?", characterID).Update("race_id", raceID).Error
	if err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to add character")
	}

	character.RaceID = &raceID
	return character, nil
}

// syncSequence moves the id sequence past rows inserted with an explicit id
func (r *repository) syncSequence(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(
		"SELECT setval(pg_get_serial_sequence('races', 'id'), (SELECT COALESCE(MAX(id), 1) FROM races))",
	).Error
	if err != nil {
		return errors.Wrap(err, "failed to sync race id sequence")
	}
	return nil
}
