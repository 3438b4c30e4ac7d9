package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch marks a body type, texture or face number that does not
	// fit the gender or part it was given with.
	ErrMismatch = errors.New("option does not fit the selection")
	// ErrNoVariant marks a face number beyond the variants a race has.
	ErrNoVariant = errors.New("no such face variant")
)

// FaceCounter reports how many face variants exist for a gender and race.
type FaceCounter func(Gender, Race) int

// Options holds the valid choices for every field of a Selection.
// BodyTypes is empty unless the part is Body; FaceNumbers is empty unless
// the part has face variants.
type Options struct {
	Genders     []Gender
	Races       []Race
	Parts       []Part
	BodyTypes   []BodyType
	Textures    []Texture
	FaceNumbers []int
}

// OptionsFor derives the option sets that are valid alongside sel.
func OptionsFor(sel Selection, faces FaceCounter) Options {
	opts := Options{
		Genders:  Genders,
		Races:    Races,
		Parts:    Parts,
		Textures: TexturesFor(sel.Part),
	}
	if sel.Part == PartBody {
		opts.BodyTypes = BodyTypes(sel.Gender)
	}
	if sel.Part.UsesFaceNumber() && faces != nil {
		opts.FaceNumbers = FaceNumbers(faces(sel.Gender, sel.Race))
	}
	return opts
}

// TexturesFor returns the texture channels a part supports. Brow/Lash has
// no diffuse map.
func TexturesFor(p Part) []Texture {
	if p == PartBrowLash {
		return []Texture{TextureNormal, TextureMask}
	}
	return Textures
}

// FaceNumbers returns 1..n.
func FaceNumbers(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Clamp replaces every field that is not in its current option set with the
// first option. Fields with an empty option set are zeroed. Gender, race and
// part are fixed first since the remaining option sets depend on them.
func Clamp(sel Selection, faces FaceCounter) Selection {
	sel.Gender = first(sel.Gender, Genders)
	sel.Race = first(sel.Race, Races)
	sel.Part = first(sel.Part, Parts)

	opts := OptionsFor(sel, faces)
	sel.Texture = first(sel.Texture, opts.Textures)

	sel.BodyType = first(sel.BodyType, opts.BodyTypes)
	sel.FaceNumber = first(sel.FaceNumber, opts.FaceNumbers)
	return sel
}

// Valid reports whether every field of sel is in its option set.
func Valid(sel Selection, faces FaceCounter) bool {
	return Check(sel, faces) == nil
}

// Check is Valid with a reason. It names the first field, in the order
// Clamp fixes them, that is outside its option set.
func Check(sel Selection, faces FaceCounter) error {
	switch {
	case first(sel.Gender, Genders) != sel.Gender:
		return fmt.Errorf("%w: gender %q", ErrUnknownOption, sel.Gender)
	case first(sel.Race, Races) != sel.Race:
		return fmt.Errorf("%w: race %q", ErrUnknownOption, sel.Race)
	case first(sel.Part, Parts) != sel.Part:
		return fmt.Errorf("%w: part %q", ErrUnknownOption, sel.Part)
	}

	opts := OptionsFor(sel, faces)
	switch {
	case first(sel.Texture, opts.Textures) != sel.Texture:
		return fmt.Errorf("%w: texture %q is not offered for %s", ErrMismatch, sel.Texture, sel.Part)
	case first(sel.BodyType, opts.BodyTypes) != sel.BodyType:
		if sel.Part != PartBody {
			return fmt.Errorf("%w: body type %q only applies to %s", ErrMismatch, sel.BodyType, PartBody)
		}
		return fmt.Errorf("%w: body type %q is not offered for %s", ErrMismatch, sel.BodyType, sel.Gender)
	case first(sel.FaceNumber, opts.FaceNumbers) != sel.FaceNumber:
		if !sel.Part.UsesFaceNumber() {
			return fmt.Errorf("%w: face %d does not apply to %s", ErrMismatch, sel.FaceNumber, sel.Part)
		}
		return fmt.Errorf("%w: face %d for %s %s", ErrNoVariant, sel.FaceNumber, sel.Gender, sel.Race)
	}
	return nil
}

func first[T comparable](v T, opts []T) T {
	var zero T
	if len(opts) == 0 {
		return zero
	}
	for _, o := range opts {
		if o == v {
			return v
		}
	}
	return opts[0]
}
