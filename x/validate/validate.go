// Package validate checks write request bodies before they reach a service
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/totegamma/fellowship/core"
)

var intPattern = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)

// Rule is a single check against one field of a JSON object.
// Optional rules are skipped when the key is absent.
type Rule struct {
	Field    string
	Optional bool
	Check    func(value gjson.Result) bool
	Message  string
}

// Rules is an ordered rule set
type Rules []Rule

// Validate runs every rule against body and reports all violations in rule order.
// An empty result means the body is valid.
// Callers decode a valid body with gjson too, so a repeated key resolves to
// the same occurrence that was checked.
func (rules Rules) Validate(body []byte) []core.FieldError {
	if !gjson.ValidBytes(body) {
		return []core.FieldError{{Field: "body", Message: "The request body should be a JSON object"}}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return []core.FieldError{{Field: "body", Message: "The request body should be a JSON object"}}
	}

	failures := []core.FieldError{}
	for _, rule := range rules {
		value := root.Get(rule.Field)
		if rule.Optional && !value.Exists() {
			continue
		}
		if !rule.Check(value) {
			failures = append(failures, core.FieldError{Field: rule.Field, Message: rule.Message})
		}
	}
	return failures
}

// NotEmpty fails for a missing field, null or ""
func NotEmpty(value gjson.Result) bool {
	if !value.Exists() || value.Type == gjson.Null {
		return false
	}
	if value.Type == gjson.String && value.Str == "" {
		return false
	}
	return true
}

func IsString(value gjson.Result) bool {
	return value.Type == gjson.String
}

func IsBoolean(value gjson.Result) bool {
	return value.IsBool()
}

// IsInt accepts a JSON integer or a string holding a base-10 integer,
// in the range a stored id can hold
func IsInt(value gjson.Result) bool {
	_, ok := parseInt(value)
	return ok
}

func parseInt(value gjson.Result) (uint, bool) {
	var raw string
	switch value.Type {
	case gjson.Number:
		raw = value.Raw
	case gjson.String:
		raw = value.Str
	default:
		return 0, false
	}
	if !intPattern.MatchString(raw) {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimPrefix(raw, "+"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func required(field string) Rules {
	return Rules{
		{Field: field, Check: NotEmpty, Message: "The " + field + " value should not be empty"},
		{Field: field, Check: IsString, Message: "The " + field + " value should be a string"},
	}
}

func optionalString(field string) Rule {
	return Rule{Field: field, Optional: true, Check: IsString, Message: "The " + field + " value should be a string"}
}

var optionalID = Rule{Field: "id", Optional: true, Check: IsInt, Message: "The id must be an integer"}

func concat(sets ...Rules) Rules {
	var all Rules
	for _, set := range sets {
		all = append(all, set...)
	}
	return all
}

var CharacterCreate = concat(
	Rules{optionalID},
	required("name"),
	required("origin"),
	Rules{{Field: "fellowshipMember", Optional: true, Check: IsBoolean, Message: "This value should be a boolean"}},
	required("weapon"),
)

var CharacterPatch = Rules{
	optionalString("name"),
	optionalString("origin"),
	{Field: "fellowshipMember", Optional: true, Check: IsBoolean, Message: "The fellowshipMember value should be a boolean"},
	optionalString("weapon"),
}

var RaceCreate = concat(
	required("name"),
	Rules{optionalID},
	required("dominions"),
	required("languages"),
	required("lifespan"),
	required("height"),
)

var RacePatch = Rules{
	optionalString("name"),
	optionalString("dominions"),
	optionalString("languages"),
	optionalString("lifespan"),
	optionalString("height"),
}

// ParseID parses a path id. ok is false when raw is not a positive integer.
func ParseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ID returns the id held by value, or 0 when it is absent or not an integer
func ID(value gjson.Result) uint {
	id, _ := parseInt(value)
	return id
}

// String returns a pointer to a string value, nil when the field is absent
func String(value gjson.Result) *string {
	if !value.Exists() {
		return nil
	}
	str := value.Str
	return &str
}

// Bool returns a pointer to a boolean value, nil when the field is absent
func Bool(value gjson.Result) *bool {
	if !value.Exists() {
		return nil
	}
	b := value.Bool()
	return &b
}
