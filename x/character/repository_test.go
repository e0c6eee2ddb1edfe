package character

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/internal/testutil"
)

var ctx = context.Background()
var repo Repository
var db *gorm.DB
var mc *memcache.Client

func TestMain(m *testing.M) {
	log.Println("Test Start")

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	var cleanup_mc func()
	mc, cleanup_mc = testutil.CreateMC()
	defer cleanup_mc()

	repo = NewRepository(db, mc)

	m.Run()

	log.Println("Test End")
}

func TestRepository(t *testing.T) {

	// create dummy race
	hobbits := core.Race{
		ID:        1,
		Name:      "Hobbits",
		Dominions: "The Shire, Buckland, Bree",
		Languages: "Hobbit-speech, Westron",
		Lifespan:  "Generally past one-hundred years",
		Height:    "60-120 cm",
	}
	err := db.WithContext(ctx).Create(&hobbits).Error
	assert.NoError(t, err)

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// explicit id is honored
	frodo, err := repo.Create(ctx, core.Character{
		ID:               1,
		Name:             "Frodo Baggins",
		Origin:           "The Shire",
		FellowshipMember: true,
		Weapon:           "Sting",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, uint(1), frodo.ID)
		assert.Nil(t, frodo.RaceID)
	}

	// and the next generated id follows it
	gollum, err := repo.Create(ctx, core.Character{
		Name:   "Gollum",
		Origin: "Gladden Fields",
		Weapon: "Bare hands",
	})
	if assert.NoError(t, err) {
		assert.Equal(t, uint(2), gollum.ID)
		assert.False(t, gollum.FellowshipMember)
	}

	_, err = repo.Create(ctx, core.Character{ID: 1, Name: "Frodo", Origin: "Bag End", Weapon: "Sting"})
	assert.ErrorIs(t, err, core.ErrorAlreadyExists{})

	count, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	characters, err := repo.List(ctx)
	if assert.NoError(t, err) && assert.Len(t, characters, 2) {
		assert.Equal(t, "Frodo Baggins", characters[0].Name)
		assert.Equal(t, "Gollum", characters[1].Name)
	}

	_, err = repo.Get(ctx, 25)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	// no race yet
	_, err = repo.GetRace(ctx, frodo.ID)
	if assert.Error(t, err) {
		assert.Equal(t, "Race not found", err.Error())
	}

	_, err = repo.SetRace(ctx, 25, hobbits.ID)
	if assert.Error(t, err) {
		assert.Equal(t, "Character not found", err.Error())
	}

	_, err = repo.SetRace(ctx, frodo.ID, 13)
	if assert.Error(t, err) {
		assert.Equal(t, "Race not found", err.Error())
	}

	associated, err := repo.SetRace(ctx, frodo.ID, hobbits.ID)
	if assert.NoError(t, err) && assert.NotNil(t, associated.RaceID) {
		assert.Equal(t, hobbits.ID, *associated.RaceID)
	}

	race, err := repo.GetRace(ctx, frodo.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, hobbits, race)
	}

	updated, err := repo.Update(ctx, gollum.ID, core.CharacterPatch{Name: strPtr("Sméagol")}.Columns())
	if assert.NoError(t, err) {
		assert.Equal(t, "Sméagol", updated.Name)
		assert.Equal(t, "Gladden Fields", updated.Origin)
	}

	_, err = repo.Update(ctx, 25, map[string]any{"name": "Nobody"})
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	deleted, err := repo.Delete(ctx, gollum.ID)
	if assert.NoError(t, err) {
		assert.Equal(t, "Sméagol", deleted.Name)
	}

	_, err = repo.Delete(ctx, gollum.ID)
	assert.ErrorIs(t, err, core.ErrorNotFound{})

	count, err = repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func strPtr(s string) *string {
	return &s
}

func TestCreateSequenceSyncFailure(t *testing.T) {
	var logs bytes.Buffer
	defaultLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&logs, nil)))
	defer slog.SetDefault(defaultLogger)

	err := db.Callback().Raw().Before("gorm:raw").Register("test:fail_setval", func(tx *gorm.DB) {
		if strings.Contains(tx.Statement.SQL.String(), "setval") {
			tx.AddError(errors.New("setval rejected"))
		}
	})
	assert.NoError(t, err)

	before, err := repo.Count(ctx)
	assert.NoError(t, err)

	_, err = repo.Create(ctx, core.Character{ID: 100, Name: "Glorfindel", Origin: "Rivendell", Weapon: "Sword"})
	assert.Error(t, err)

	assert.NoError(t, db.Callback().Raw().Remove("test:fail_setval"))

	// the insert stays
	stored, err := repo.Get(ctx, 100)
	if assert.NoError(t, err) {
		assert.Equal(t, "Glorfindel", stored.Name)
	}
	after, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, before+1, after)

	assert.Contains(t, logs.String(), "character inserted but id sequence not synced")
	assert.Contains(t, logs.String(), `"id":100`)

	_, err = repo.Delete(ctx, 100)
	assert.NoError(t, err)
}
