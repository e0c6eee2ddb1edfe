package race

import (
	"github.com/tidwall/gjson"

	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/x/validate"
)

func raceFromBody(body []byte) core.Race {
	root := gjson.ParseBytes(body)
	return core.Race{
		ID:        validate.ID(root.Get("id")),
		Name:      root.Get("name").Str,
		Dominions: root.Get("dominions").Str,
		Languages: root.Get("languages").Str,
		Lifespan:  root.Get("lifespan").Str,
		Height:    root.Get("height").Str,
	}
}

func patchFromBody(body []byte) core.RacePatch {
	root := gjson.ParseBytes(body)
	return core.RacePatch{
		Name:      validate.String(root.Get("name")),
		Dominions: validate.String(root.Get("dominions")),
		Languages: validate.String(root.Get("languages")),
		Lifespan:  validate.String(root.Get("lifespan")),
		Height:    validate.String(root.Get("height")),
	}
}
