package selection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

// ErrUnknownOption is returned when a label matches none of the options.
var ErrUnknownOption = errors.New("unknown option")

// ParseGender matches label against Genders, ignoring case.
func ParseGender(label string) (Gender, error) {
	return parseOption("gender", label, Genders)
}

// ParseRace matches label against Races, ignoring case.
func ParseRace(label string) (Race, error) {
	return parseOption("race", label, Races)
}

// ParsePart matches label against Parts, ignoring case.
func ParsePart(label string) (Part, error) {
	return parseOption("part", label, Parts)
}

// ParseBodyType matches label against the body types of both genders.
// Whether it fits the selected gender is left to Clamp.
func ParseBodyType(label string) (BodyType, error) {
	all := append(append([]BodyType{}, femaleBodyTypes...), maleBodyTypes[1:]...)
	return parseOption("body type", label, all)
}

// ParseTexture accepts a channel name or any of its display aliases.
func ParseTexture(label string) (Texture, error) {
	want := fold(label)
	for p, aliases := range textureAliases {
		for t := range aliases {
			if fold(TextureLabel(p, t)) == want {
				return t, nil
			}
		}
	}
	return parseOption("texture", label, Textures)
}

// ParseTextureFor is ParseTexture with the labels shown for part p tried
// first, so "Skin/Diffuse" and "normal" both work for Body.
func ParseTextureFor(p Part, label string) (Texture, error) {
	if t, ok := textureFromLabel(p, label); ok {
		return t, nil
	}
	return ParseTexture(label)
}

// ParseFaceNumber parses a face variant number. Range checks are left to
// Clamp since they depend on the catalog.
func ParseFaceNumber(label string) (int, error) {
	s := strings.TrimSpace(label)
	s = strings.TrimPrefix(strings.ToLower(s), "face ")
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: face number %q", ErrUnknownOption, label)
	}
	return n, nil
}

func parseOption[T ~string](kind, label string, opts []T) (T, error) {
	want := fold(label)
	names := make([]string, len(opts))
	for i, o := range opts {
		if fold(string(o)) == want {
			return o, nil
		}
		names[i] = string(o)
	}
	if s := suggest(want, names); s != "" {
		return "", fmt.Errorf("%w: %s %q, did you mean %q?", ErrUnknownOption, kind, label, s)
	}
	return "", fmt.Errorf("%w: %s %q", ErrUnknownOption, kind, label)
}

// suggest returns the closest option within an edit distance that scales
// with the option length, or "".
func suggest(in string, opts []string) string {
	if len(in) < 3 {
		return ""
	}
	best, bestDist := "", -1
	for _, o := range opts {
		dist := levenshtein.ComputeDistance(in, fold(o))
		if dist > suggestLimit(len(o)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = o, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// fold normalises a label for case-insensitive comparison. Casers keep
// state, so one is built per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
