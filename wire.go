//go:build wireinject

package fellowship

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/x/character"
	"github.com/totegamma/fellowship/x/race"
)

var characterServiceProvider = wire.NewSet(character.NewService, character.NewRepository)
var raceServiceProvider = wire.NewSet(race.NewService, race.NewRepository)

func SetupCharacterService(db *gorm.DB, mc *memcache.Client) core.CharacterService {
	wire.Build(characterServiceProvider)
	return nil
}

func SetupRaceService(db *gorm.DB, mc *memcache.Client) core.RaceService {
	wire.Build(raceServiceProvider)
	return nil
}

