package core

const (
	ResourceCharacter = "Character"
	ResourceRace      = "Race"
)

const (
	CharacterCountCacheKey = "character_count"
	RaceCountCacheKey      = "race_count"
)
