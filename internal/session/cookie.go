package session

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"xivpath/internal/selection"
)

// Cookie name suffixes, one per remembered field.
const (
	fieldGender  = "gender"
	fieldRace    = "race"
	fieldPart    = "part"
	fieldBody    = "body"
	fieldTexture = "texture"
	fieldFace    = "face"
)

var fields = []string{fieldGender, fieldRace, fieldPart, fieldBody, fieldTexture, fieldFace}

// CookieStore keeps the six selection fields in browser cookies named
// Prefix+field.
type CookieStore struct {
	Prefix string
	MaxAge time.Duration
	Secure bool
}

func NewCookieStore(prefix string, maxAge time.Duration, secure bool) *CookieStore {
	return &CookieStore{Prefix: prefix, MaxAge: maxAge, Secure: secure}
}

func (s *CookieStore) Load(r *http.Request) (selection.Selection, bool) {
	values := make(map[string]string, len(fields))
	found := false
	for _, f := range fields {
		c, err := r.Cookie(s.Prefix + f)
		if err != nil {
			continue
		}
		found = true
		v, err := url.QueryUnescape(c.Value)
		if err != nil {
			continue
		}
		values[f] = v
	}
	if !found {
		return selection.Selection{}, false
	}
	face, _ := strconv.Atoi(values[fieldFace])
	return selection.Selection{
		Gender:     selection.Gender(values[fieldGender]),
		Race:       selection.Race(values[fieldRace]),
		Part:       selection.Part(values[fieldPart]),
		BodyType:   selection.BodyType(values[fieldBody]),
		Texture:    selection.Texture(values[fieldTexture]),
		FaceNumber: face,
	}, true
}

func (s *CookieStore) Save(w http.ResponseWriter, sel selection.Selection) {
	face := ""
	if sel.FaceNumber > 0 {
		face = strconv.Itoa(sel.FaceNumber)
	}
	values := map[string]string{
		fieldGender:  string(sel.Gender),
		fieldRace:    string(sel.Race),
		fieldPart:    string(sel.Part),
		fieldBody:    string(sel.BodyType),
		fieldTexture: string(sel.Texture),
		fieldFace:    face,
	}
	for _, f := range fields {
		http.SetCookie(w, &http.Cookie{
			Name:     s.Prefix + f,
			Value:    url.QueryEscape(values[f]),
			Path:     "/",
			MaxAge:   int(s.MaxAge / time.Second),
			HttpOnly: true,
			Secure:   s.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
