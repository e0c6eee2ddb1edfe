package core

// CharacterPatch holds the fields of a partial character update.
// nil fields are left untouched.
type CharacterPatch struct {
	Name             *string `json:"name"`
	Origin           *string `json:"origin"`
	FellowshipMember *bool   `json:"fellowshipMember"`
	Weapon           *string `json:"weapon"`
}

// Columns returns the column/value pairs to be written
func (p CharacterPatch) Columns() map[string]any {
	columns := map[string]any{}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Origin != nil {
		columns["origin"] = *p.Origin
	}
	if p.FellowshipMember != nil {
		columns["fellowship_member"] = *p.FellowshipMember
	}
	if p.Weapon != nil {
		columns["weapon"] = *p.Weapon
	}
	return columns
}

// RacePatch holds the fields of a partial race update.
type RacePatch struct {
	Name      *string `json:"name"`
	Dominions *string `json:"dominions"`
	Languages *string `json:"languages"`
	Lifespan  *string `json:"lifespan"`
	Height    *string `json:"height"`
}

// Columns returns the column/value pairs to be written
func (p RacePatch) Columns() map[string]any {
	columns := map[string]any{}
	if p.Name != nil {
		columns["name"] = *p.Name
	}
	if p.Dominions != nil {
		columns["dominions"] = *p.Dominions
	}
	if p.Languages != nil {
		columns["languages"] = *p.Languages
	}
	if p.Lifespan != nil {
		columns["lifespan"] = *p.Lifespan
	}
	if p.Height != nil {
		columns["height"] = *p.Height
	}
	return columns
}
