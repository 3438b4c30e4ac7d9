package selection

import (
	"errors"
	"strings"
	"testing"
)

func fixedFaces(n int) FaceCounter {
	return func(Gender, Race) int { return n }
}

func TestDefault_IsValid(t *testing.T) {
	if !Valid(Default(), fixedFaces(4)) {
		t.Errorf("Expected default selection to be valid, got %+v", Default())
	}
}

func TestOptionsFor(t *testing.T) {
	tests := []struct {
		name      string
		sel       Selection
		wantBody  []BodyType
		wantTex   []Texture
		wantFaces int
	}{
		{"female body", Selection{Gender: Female, Part: PartBody}, femaleBodyTypes, Textures, 0},
		{"male body", Selection{Gender: Male, Part: PartBody}, maleBodyTypes, Textures, 0},
		{"face", Selection{Gender: Female, Part: PartFace}, nil, Textures, 4},
		{"eyes", Selection{Gender: Male, Part: PartEyes}, nil, Textures, 4},
		{"brow lash", Selection{Gender: Female, Part: PartBrowLash}, nil, []Texture{TextureNormal, TextureMask}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := OptionsFor(tt.sel, fixedFaces(4))
			if len(opts.BodyTypes) != len(tt.wantBody) {
				t.Errorf("Expected %d body types, got %v", len(tt.wantBody), opts.BodyTypes)
			}
			for i := range tt.wantBody {
				if opts.BodyTypes[i] != tt.wantBody[i] {
					t.Errorf("Body type %d: expected %q, got %q", i, tt.wantBody[i], opts.BodyTypes[i])
				}
			}
			if len(opts.Textures) != len(tt.wantTex) {
				t.Fatalf("Expected textures %v, got %v", tt.wantTex, opts.Textures)
			}
			for i := range tt.wantTex {
				if opts.Textures[i] != tt.wantTex[i] {
					t.Errorf("Texture %d: expected %q, got %q", i, tt.wantTex[i], opts.Textures[i])
				}
			}
			if len(opts.FaceNumbers) != tt.wantFaces {
				t.Errorf("Expected %d face numbers, got %v", tt.wantFaces, opts.FaceNumbers)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    Selection
		faces int
		want  Selection
	}{
		{
			name:  "empty falls back to first options",
			in:    Selection{},
			faces: 3,
			want:  Selection{Gender: Female, Race: "Midlander", Part: PartFace, Texture: TextureDiffuse, FaceNumber: 1},
		},
		{
			name:  "female body type invalid for male",
			in:    Selection{Gender: Male, Race: "Xaela", Part: PartBody, BodyType: BodyBibo, Texture: TextureNormal},
			faces: 3,
			want:  Selection{Gender: Male, Race: "Xaela", Part: PartBody, BodyType: BodyVanilla, Texture: TextureNormal},
		},
		{
			name:  "body clears face number",
			in:    Selection{Gender: Female, Race: "Raen", Part: PartBody, BodyType: BodyGen3, Texture: TextureMask, FaceNumber: 2},
			faces: 3,
			want:  Selection{Gender: Female, Race: "Raen", Part: PartBody, BodyType: BodyGen3, Texture: TextureMask},
		},
		{
			name:  "brow lash has no diffuse",
			in:    Selection{Gender: Female, Race: "Lost", Part: PartBrowLash, Texture: TextureDiffuse, FaceNumber: 2},
			faces: 3,
			want:  Selection{Gender: Female, Race: "Lost", Part: PartBrowLash, Texture: TextureNormal, FaceNumber: 2},
		},
		{
			name:  "face number beyond variants",
			in:    Selection{Gender: Male, Race: "Veena", Part: PartFace, BodyType: BodyTBSE, Texture: TextureMask, FaceNumber: 7},
			faces: 4,
			want:  Selection{Gender: Male, Race: "Veena", Part: PartFace, Texture: TextureMask, FaceNumber: 1},
		},
		{
			name:  "no face variants",
			in:    Selection{Gender: Female, Race: "Rava", Part: PartEyes, Texture: TextureNormal, FaceNumber: 1},
			faces: 0,
			want:  Selection{Gender: Female, Race: "Rava", Part: PartEyes, Texture: TextureNormal},
		},
		{
			name:  "unknown race",
			in:    Selection{Gender: Female, Race: "Elezen", Part: PartEyes, Texture: TextureNormal, FaceNumber: 2},
			faces: 2,
			want:  Selection{Gender: Female, Race: "Midlander", Part: PartEyes, Texture: TextureNormal, FaceNumber: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.in, fixedFaces(tt.faces))
			if got != tt.want {
				t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
			if !Valid(got, fixedFaces(tt.faces)) {
				t.Errorf("Expected clamped selection to be valid: %+v", got)
			}
		})
	}
}

func TestClamp_UsesClampedGenderForFaces(t *testing.T) {
	var gotGender Gender
	faces := func(g Gender, _ Race) int {
		gotGender = g
		return 2
	}
	Clamp(Selection{Gender: "Other", Part: PartFace}, faces)
	if gotGender != Female {
		t.Errorf("Expected face count for %q, got %q", Female, gotGender)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		in    Selection
		faces int
		err   error
		field string
	}{
		{
			name:  "default",
			in:    Default(),
			faces: 2,
		},
		{
			name:  "female body type on male",
			in:    Selection{Gender: Male, Race: "Xaela", Part: PartBody, BodyType: BodyBibo, Texture: TextureDiffuse},
			faces: 2,
			err:   ErrMismatch,
			field: "body type",
		},
		{
			name:  "body type outside body",
			in:    Selection{Gender: Female, Race: "Raen", Part: PartFace, BodyType: BodyGen3, Texture: TextureDiffuse, FaceNumber: 1},
			faces: 2,
			err:   ErrMismatch,
			field: "body type",
		},
		{
			name:  "brow lash diffuse",
			in:    Selection{Gender: Female, Race: "Raen", Part: PartBrowLash, Texture: TextureDiffuse, FaceNumber: 1},
			faces: 2,
			err:   ErrMismatch,
			field: "texture",
		},
		{
			name:  "face number on body",
			in:    Selection{Gender: Female, Race: "Raen", Part: PartBody, BodyType: BodyVanilla, Texture: TextureDiffuse, FaceNumber: 2},
			faces: 2,
			err:   ErrMismatch,
			field: "face",
		},
		{
			name:  "face number beyond variants",
			in:    Selection{Gender: Female, Race: "Raen", Part: PartFace, Texture: TextureNormal, FaceNumber: 9},
			faces: 3,
			err:   ErrNoVariant,
			field: "face",
		},
		{
			name:  "unknown race",
			in:    Selection{Gender: Female, Race: "Elezen", Part: PartFace, Texture: TextureNormal, FaceNumber: 1},
			faces: 3,
			err:   ErrUnknownOption,
			field: "race",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.in, fixedFaces(tt.faces))
			if tt.err == nil {
				if err != nil {
					t.Fatalf("Check(%+v) = %v, want nil", tt.in, err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("Check(%+v) = %v, want %v", tt.in, err, tt.err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Expected %q to name the %s field", err.Error(), tt.field)
			}
			if Valid(tt.in, fixedFaces(tt.faces)) {
				t.Errorf("Expected Valid to agree with Check for %+v", tt.in)
			}
		})
	}
}

func TestTextureLabel(t *testing.T) {
	tests := []struct {
		part Part
		tex  Texture
		want string
	}{
		{PartFace, TextureDiffuse, "Makeup/Diffuse"},
		{PartBody, TextureDiffuse, "Skin/Diffuse"},
		{PartEyes, TextureDiffuse, "Eye Texture/Diffuse"},
		{PartBrowLash, TextureMask, "Dye Change/Mask"},
		{PartFace, TextureMask, "Mask"},
		{PartBody, TextureNormal, "Normal"},
	}
	for _, tt := range tests {
		if got := TextureLabel(tt.part, tt.tex); got != tt.want {
			t.Errorf("TextureLabel(%q, %q) = %q, want %q", tt.part, tt.tex, got, tt.want)
		}
		if back := TextureFromLabel(tt.part, tt.want); back != tt.tex {
			t.Errorf("TextureFromLabel(%q, %q) = %q, want %q", tt.part, tt.want, back, tt.tex)
		}
	}
	if got := TextureFromLabel(PartFace, "nonsense"); got != TextureDiffuse {
		t.Errorf("Expected unknown label to fall back to %q, got %q", TextureDiffuse, got)
	}
}

func TestParse(t *testing.T) {
	if g, err := ParseGender("male"); err != nil || g != Male {
		t.Errorf("ParseGender(male) = %q, %v", g, err)
	}
	if r, err := ParseRace(" seeker "); err != nil || r != "Seeker" {
		t.Errorf("ParseRace(seeker) = %q, %v", r, err)
	}
	if p, err := ParsePart("brow/lash"); err != nil || p != PartBrowLash {
		t.Errorf("ParsePart(brow/lash) = %q, %v", p, err)
	}
	if b, err := ParseBodyType("vanilla (with tbse installed)"); err != nil || b != BodyVanillaTBSE {
		t.Errorf("ParseBodyType = %q, %v", b, err)
	}
	if tex, err := ParseTexture("Dye Change/Mask"); err != nil || tex != TextureMask {
		t.Errorf("ParseTexture(alias) = %q, %v", tex, err)
	}
	if tex, err := ParseTexture("normal"); err != nil || tex != TextureNormal {
		t.Errorf("ParseTexture(normal) = %q, %v", tex, err)
	}
	if tex, err := ParseTextureFor(PartBody, "skin/diffuse"); err != nil || tex != TextureDiffuse {
		t.Errorf("ParseTextureFor(Body, skin/diffuse) = %q, %v", tex, err)
	}
	if tex, err := ParseTextureFor(PartBrowLash, "DYE CHANGE/MASK"); err != nil || tex != TextureMask {
		t.Errorf("ParseTextureFor(Brow/Lash, alias) = %q, %v", tex, err)
	}
	if tex, err := ParseTextureFor(PartFace, "Mask"); err != nil || tex != TextureMask {
		t.Errorf("ParseTextureFor(Face, Mask) = %q, %v", tex, err)
	}
	if _, err := ParseTextureFor(PartFace, "Specular"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Expected ErrUnknownOption for an unknown texture, got %v", err)
	}
	if n, err := ParseFaceNumber("Face 3"); err != nil || n != 3 {
		t.Errorf("ParseFaceNumber(Face 3) = %d, %v", n, err)
	}
	if _, err := ParseFaceNumber("0"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Expected ErrUnknownOption for face 0, got %v", err)
	}
}

func TestParse_Suggestion(t *testing.T) {
	_, err := ParseRace("Midlandr")
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("Expected ErrUnknownOption, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "Midlander"`) {
		t.Errorf("Expected suggestion in %q", err.Error())
	}

	_, err = ParseRace("Elezen")
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("Expected ErrUnknownOption, got %v", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("Expected no suggestion for a distant label, got %q", err.Error())
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{Selection{Part: PartFace, Texture: TextureDiffuse, FaceNumber: 2}, "Face 2 · Makeup/Diffuse"},
		{Selection{Part: PartBody, BodyType: BodyBibo, Texture: TextureNormal}, "Bibo+ · Normal"},
		{Selection{Part: PartEyes, Texture: TextureMask, FaceNumber: 1}, "Mask"},
		{Selection{Part: PartBrowLash, Texture: TextureMask, FaceNumber: 1}, "Face 1 · Dye Change/Mask"},
	}
	for _, tt := range tests {
		if got := tt.sel.Summary(); got != tt.want {
			t.Errorf("Summary(%+v) = %q, want %q", tt.sel, got, tt.want)
		}
	}
}
