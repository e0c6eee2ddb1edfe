package core

// Race is one of a fellowship base object
// mutable
type Race struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"type:text;not null"`
	Dominions string `json:"dominions" gorm:"type:text;not null"`
	Languages string `json:"languages" gorm:"type:text;not null"`
	Lifespan  string `json:"lifespan" gorm:"type:text;not null"`
	Height    string `json:"height" gorm:"type:text;not null"`
}

// Character is one of a fellowship base object
// mutable, optionally belongs to a Race
type Character struct {
	ID               uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string `json:"name" gorm:"type:text;not null"`
	Origin           string `json:"origin" gorm:"type:text;not null"`
	FellowshipMember bool   `json:"fellowshipMember" gorm:"type:boolean;not null;default:false"`
	Weapon           string `json:"weapon" gorm:"type:text;not null"`
	RaceID           *uint  `json:"raceId" gorm:"index"`
	Race             *Race  `json:"-" gorm:"foreignKey:RaceID;constraint:OnDelete:SET NULL;"`
}
