package character

import (
	"github.com/tidwall/gjson"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/x/validate"
)

// characterFromBody builds a new character from a body accepted by validate.CharacterCreate
func characterFromBody(body []byte) core.Character {
	root := gjson.ParseBytes(body)
	return core.Character{
		ID:               validate.ID(root.Get("id")),
		Name:             root.Get("name").Str,
		Origin:           root.Get("origin").Str,
		FellowshipMember: root.Get("fellowshipMember").Bool(),
		Weapon:           root.Get("weapon").Str,
	}
}

// patchFromBody builds a patch from a body accepted by validate.CharacterPatch
func patchFromBody(body []byte) core.CharacterPatch {
	root := gjson.ParseBytes(body)
	return core.CharacterPatch{
		Name:             validate.String(root.Get("name")),
		Origin:           validate.String(root.Get("origin")),
		FellowshipMember: validate.Bool(root.Get("fellowshipMember")),
		Weapon:           validate.String(root.Get("weapon")),
	}
}
