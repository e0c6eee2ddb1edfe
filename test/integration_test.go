package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/totegamma/fellowship"
	"github.com/totegamma/fellowship/core"
	"github.com/totegamma/fellowship/internal/testutil"
	"github.com/totegamma/fellowship/x/character"
	"github.com/totegamma/fellowship/x/race"
	"github.com/totegamma/fellowship/x/seed"
)

var (
	db *gorm.DB
	mc *memcache.Client
	e  *echo.Echo
)

func TestMain(m *testing.M) {

	var cleanup_db func()
	db, cleanup_db = testutil.CreateDB()
	defer cleanup_db()

	var cleanup_mc func()
	mc, cleanup_mc = testutil.CreateMC()
	defer cleanup_mc()

	characterService := fellowship.SetupCharacterService(db, mc)
	raceService := fellowship.SetupRaceService(db, mc)

	e = echo.New()
	fellowship.RegisterRoutes(e, character.NewHandler(characterService), race.NewHandler(raceService))

	m.Run()
}

func reset(t *testing.T) {
	t.Helper()
	if err := seed.Run(context.Background(), db); err != nil {
		t.Fatal(err)
	}
}

func request(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestSeededFrodo(t *testing.T) {
	reset(t)

	rec := request(t, http.MethodGet, "/characters/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Frodo Baggins","origin":"The Shire","fellowshipMember":true,"weapon":"Sting","raceId":1}`, rec.Body.String())

	rec = request(t, http.MethodGet, "/characters/1/race", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Hobbits","dominions":"The Shire, Buckland, Bree","languages":"Hobbit-speech, Westron","lifespan":"Generally past one-hundred years","height":"60-120 cm"}`, rec.Body.String())
}

func TestAddCharacterToRace(t *testing.T) {
	reset(t)

	rec := request(t, http.MethodPost, "/races/9/characters/18", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ok", decode[core.ResponseBase[core.Character]](t, rec).Status)

	rec = request(t, http.MethodGet, "/characters/18/race", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(9), decode[core.Race](t, rec).ID)

	rec = request(t, http.MethodGet, "/races/9/characters", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, ids(decode[[]core.Character](t, rec)), uint(18))

	rec = request(t, http.MethodPost, "/races/3/characters/25", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Character not found"}`, rec.Body.String())

	rec = request(t, http.MethodPost, "/races/13/characters/11", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Race not found"}`, rec.Body.String())
}

func TestSetRaceOfCharacter(t *testing.T) {
	reset(t)

	rec := request(t, http.MethodPost, "/characters/12/races/1", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = request(t, http.MethodGet, "/characters/12/race", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hobbits", decode[core.Race](t, rec).Name)

	rec = request(t, http.MethodGet, "/races/1/characters", "")
	assert.Contains(t, ids(decode[[]core.Character](t, rec)), uint(12))

	// character is checked before race
	rec = request(t, http.MethodPost, "/characters/25/races/13", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Character not found"}`, rec.Body.String())

	rec = request(t, http.MethodPost, "/characters/1/races/13", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Race not found"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	reset(t)

	testCases := []struct {
		target  string
		message string
	}{
		{"/characters/25", "Character not found"},
		{"/characters/abc", "Character not found"},
		{"/characters/25/race", "Character not found"},
		{"/races/10", "Race not found"},
		{"/races/10/characters", "Race not found"},
	}

	for _, tc := range testCases {
		rec := request(t, http.MethodGet, tc.target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.target)
		assert.JSONEq(t, `{"error":"`+tc.message+`"}`, rec.Body.String(), tc.target)
	}
}

func TestCreateAndDelete(t *testing.T) {
	reset(t)

	before := len(decode[[]core.Character](t, request(t, http.MethodGet, "/characters", "")))

	rec := request(t, http.MethodPost, "/characters", `{"name":"Glorfindel","origin":"Rivendell","weapon":"Sword"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	created := decode[core.Character](t, rec)
	assert.Equal(t, "Glorfindel", created.Name)
	assert.Equal(t, "Rivendell", created.Origin)
	assert.Equal(t, "Sword", created.Weapon)
	assert.False(t, created.FellowshipMember)
	assert.Nil(t, created.RaceID)

	after := decode[[]core.Character](t, request(t, http.MethodGet, "/characters", ""))
	assert.Len(t, after, before+1)

	rec = request(t, http.MethodPost, "/characters", `{"id":1,"name":"Frodo","origin":"Bag End","weapon":"Sting"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// rejected payloads leave the store untouched
	rec = request(t, http.MethodPost, "/characters", `{"name":"","origin":7}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decode[core.ValidationErrorResponse](t, rec).Errors)
	assert.Len(t, decode[[]core.Character](t, request(t, http.MethodGet, "/characters", "")), before+1)

	rec = request(t, http.MethodDelete, "/characters/"+jsonID(created.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	remaining := decode[[]core.Character](t, request(t, http.MethodGet, "/characters", ""))
	assert.Len(t, remaining, before)
	assert.NotContains(t, ids(remaining), created.ID)

	rec = request(t, http.MethodDelete, "/characters/"+jsonID(created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteRaceKeepsCharacters(t *testing.T) {
	reset(t)

	rec := request(t, http.MethodDelete, "/races/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hobbits", decode[core.ResponseBase[core.Race]](t, rec).Content.Name)

	rec = request(t, http.MethodGet, "/characters/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[core.Character](t, rec).RaceID)

	rec = request(t, http.MethodGet, "/characters/1/race", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Race not found"}`, rec.Body.String())
}

func TestPatch(t *testing.T) {
	reset(t)

	rec := request(t, http.MethodPatch, "/races/6", `{"height":"Around 14 ft"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	ents := decode[core.Race](t, rec)
	assert.Equal(t, "Ents", ents.Name)
	assert.Equal(t, "Around 14 ft", ents.Height)

	rec = request(t, http.MethodPatch, "/characters/2", `{"name":"Gandalf the White","fellowshipMember":false}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	gandalf := decode[core.Character](t, rec)
	assert.Equal(t, "Gandalf the White", gandalf.Name)
	assert.False(t, gandalf.FellowshipMember)
	assert.Equal(t, "Glamdring", gandalf.Weapon)

	rec = request(t, http.MethodPatch, "/characters/2", `{"fellowshipMember":"yes"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		[]core.FieldError{{Field: "fellowshipMember", Message: "The fellowshipMember value should be a boolean"}},
		decode[core.ValidationErrorResponse](t, rec).Errors,
	)

	rec = request(t, http.MethodPatch, "/characters/25", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func ids(characters []core.Character) []uint {
	result := make([]uint, 0, len(characters))
	for _, c := range characters {
		result = append(result, c.ID)
	}
	return result
}

func jsonID(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func TestBodyLimit(t *testing.T) {
	reset(t)

	padding := strings.Repeat("a", 128*1024)
	for _, target := range []string{"/characters", "/races"} {
		rec := request(t, http.MethodPost, target, `{"name":"`+padding+`"}`)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, target)
	}

	rec := request(t, http.MethodPatch, "/characters/1", `{"weapon":"`+padding+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = request(t, http.MethodGet, "/characters/1", "")
	assert.Equal(t, "Sting", decode[core.Character](t, rec).Weapon)
}

func TestRepeatedKeys(t *testing.T) {
	reset(t)

	rec := request(t, http.MethodPost, "/characters", `{"name":"Frodo","name":"","origin":"X","origin":"","weapon":"S","weapon":""}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	created := decode[core.Character](t, rec)
	assert.Equal(t, "Frodo", created.Name)
	assert.Equal(t, "X", created.Origin)
	assert.Equal(t, "S", created.Weapon)

	rec = request(t, http.MethodPost, "/races", `{"id":-1,"name":"Ents","dominions":"Fangorn","languages":"Entish","lifespan":"Immortal","height":"4 m"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		[]core.FieldError{{Field: "id", Message: "The id must be an integer"}},
		decode[core.ValidationErrorResponse](t, rec).Errors,
	)
}
