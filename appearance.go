package lignum

import (
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// WoodSpecies selects the base color of the facade cladding.
type WoodSpecies int

const (
	SpruceFir WoodSpecies = iota
	Larch
	Douglas
)

// SurfaceFinish selects the micro-surface response of the cladding.
type SurfaceFinish int

const (
	FinishSmooth SurfaceFinish = iota
	FinishRough
	FinishGrooved
	FinishPlaned
)

// Treatment selects the protective coating applied on top of the finish.
type Treatment int

const (
	Untreated Treatment = iota
	PreAged
	Glazed
	Opaque
	Hydrophobic
	ThermallyTreated
)

const (
	MinAgeYears = 1
	MaxAgeYears = 10
)

// ShadingState is the full shading-parameter tuple derived from a
// selection. It is always recomputed from scratch, never patched.
type ShadingState struct {
	Color               mgl32.Vec3
	Roughness           float32
	Metalness           float32
	ReflectionIntensity float32
}

// Base colors are linear RGB.
var speciesBaseColor = map[WoodSpecies]mgl32.Vec3{
	SpruceFir: {0.80, 0.68, 0.50},
	Larch:     {0.72, 0.52, 0.33},
	Douglas:   {0.62, 0.44, 0.32},
}

type finishParams struct {
	roughness           float32
	metalness           float32
	reflectionIntensity float32
}

var finishTable = map[SurfaceFinish]finishParams{
	FinishSmooth:  {0.50, 0.05, 1.00},
	FinishRough:   {0.90, 0.02, 0.50},
	FinishGrooved: {0.75, 0.03, 0.70},
	FinishPlaned:  {0.40, 0.10, 1.20},
}

var (
	preAgedGrey = mgl32.Vec3{0.75, 0.75, 0.77}
	agingGrey   = mgl32.Vec3{0.70, 0.70, 0.72}
	thermoBrown = mgl32.Vec3{0.30, 0.20, 0.15}
)

// ComputeShading maps a selection to shading parameters. The stages run
// strictly base -> surface -> treatment -> aging; each stage mutates the
// state left by the previous one, so the stages do not commute.
// finishColor is consulted only for Glazed and Opaque; passing nil there
// skips the color blend but keeps the scalar adjustments.
func ComputeShading(species WoodSpecies, finish SurfaceFinish, treatment Treatment, ageYears int, finishColor *mgl32.Vec3) ShadingState {
	base, ok := speciesBaseColor[species]
	if !ok {
		base = speciesBaseColor[SpruceFir]
	}

	s := ShadingState{
		Color:               base,
		Roughness:           0.65,
		Metalness:           0.0,
		ReflectionIntensity: 1.0,
	}

	if fp, ok := finishTable[finish]; ok {
		s.Roughness = fp.roughness
		s.Metalness = fp.metalness
		s.ReflectionIntensity = fp.reflectionIntensity
	}

	switch treatment {
	case PreAged:
		s.Color = mixVec3(s.Color, preAgedGrey, 0.7)
		s.Roughness = mgl32.Clamp(s.Roughness+0.15, 0, 1)
		s.Metalness = mgl32.Clamp(s.Metalness-0.02, 0, 1)
		s.ReflectionIntensity *= 0.7
	case Glazed:
		if finishColor != nil {
			s.Color = mixVec3(s.Color, *finishColor, 0.4)
		}
		s.Roughness = mgl32.Clamp(s.Roughness-0.1, 0, 1)
		s.Metalness = mgl32.Clamp(s.Metalness+0.05, 0, 1)
		s.ReflectionIntensity *= 1.2
	case Opaque:
		if finishColor != nil {
			s.Color = mixVec3(s.Color, *finishColor, 0.85)
		}
		s.Roughness = mgl32.Clamp(s.Roughness-0.2, 0, 1)
		s.Metalness = mgl32.Clamp(s.Metalness+0.08, 0, 1)
		s.ReflectionIntensity *= 1.3
	case Hydrophobic:
		s.Color = s.Color.Mul(0.95)
		s.Roughness = mgl32.Clamp(s.Roughness-0.15, 0, 1)
		s.Metalness = mgl32.Clamp(s.Metalness+0.1, 0, 1)
		s.ReflectionIntensity *= 1.4
	case ThermallyTreated:
		s.Color = mixVec3(s.Color, thermoBrown, 0.6)
		s.Roughness = mgl32.Clamp(s.Roughness+0.1, 0, 1)
		s.Metalness = mgl32.Clamp(s.Metalness+0.06, 0, 1)
		s.ReflectionIntensity *= 0.9
	case Untreated:
	}

	if ageYears > MinAgeYears {
		normalized := float32(ageYears-1) / 9.0
		intensity := normalized * agingRate(treatment)
		// The scalar adjustments take the full treatment-scaled
		// intensity, but a lerp weight above 1 would overshoot the
		// grey target and start moving the color away from it.
		s.Color = mixVec3(s.Color, agingGrey, mgl32.Clamp(intensity, 0, 1))
		s.Roughness = mgl32.Clamp(s.Roughness+intensity*0.3, 0, 1)
		s.Metalness = mgl32.Clamp(s.Metalness-intensity*0.05, 0, 1)
		s.ReflectionIntensity *= 1 - intensity*0.3
	}

	return s
}

// agingRate is the per-treatment multiplier on the normalized age.
// Pre-aged wood greys faster; coatings slow it down.
func agingRate(treatment Treatment) float32 {
	switch treatment {
	case PreAged:
		return 1.2
	case Glazed, Hydrophobic:
		return 0.6
	case Opaque:
		return 0.4
	default:
		return 1.0
	}
}

// mixVec3 is a linear blend in RGB space, t=0 keeps a.
func mixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// FinishColorPalette returns the fixed stain/paint palette for a
// treatment, or nil for treatments that take no finish color. Palettes
// are linearized from named sRGB colors.
func FinishColorPalette(treatment Treatment) []mgl32.Vec3 {
	switch treatment {
	case Glazed:
		return glazePalette
	case Opaque:
		return opaquePalette
	default:
		return nil
	}
}

// Palette entries are named sRGB colors so the UI layer can offer them
// by name. Order is the display order.
var (
	glazePaletteNames  = []string{"sienna", "saddlebrown", "peru", "slategray", "darkolivegreen"}
	opaquePaletteNames = []string{"white", "lightgray", "darkslategray", "indianred", "steelblue", "black"}

	glazePalette  = paletteFromNames(glazePaletteNames)
	opaquePalette = paletteFromNames(opaquePaletteNames)
)

func paletteFromNames(names []string) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(names))
	for i, n := range names {
		out[i] = linearRGB(colornames.Map[n])
	}
	return out
}

// linearRGB converts an 8-bit sRGB color to linear 0-1 channels.
func linearRGB(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{srgbToLinear(c.R), srgbToLinear(c.G), srgbToLinear(c.B)}
}

func srgbToLinear(c uint8) float32 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return float32(v / 12.92)
	}
	return float32(math.Pow((v+0.055)/1.055, 2.4))
}

// ResolveWoodSpecies maps a UI-supplied name to a species. Unknown names
// fall back to SpruceFir so the configurator always renders something.
func ResolveWoodSpecies(name string) WoodSpecies {
	switch normalizeName(name) {
	case "spruce", "fir", "sprucefir", "spruce/fir":
		return SpruceFir
	case "larch":
		return Larch
	case "douglas", "douglasfir":
		return Douglas
	default:
		return SpruceFir
	}
}

// ResolveSurfaceFinish defaults unknown names to FinishSmooth.
func ResolveSurfaceFinish(name string) SurfaceFinish {
	switch normalizeName(name) {
	case "smooth":
		return FinishSmooth
	case "rough", "sawn", "roughsawn":
		return FinishRough
	case "grooved", "ribbed":
		return FinishGrooved
	case "planed", "brushed":
		return FinishPlaned
	default:
		return FinishSmooth
	}
}

// ResolveTreatment defaults unknown names to Untreated.
func ResolveTreatment(name string) Treatment {
	switch normalizeName(name) {
	case "untreated", "none":
		return Untreated
	case "preaged", "pre-aged":
		return PreAged
	case "glazed", "glaze", "stained":
		return Glazed
	case "opaque", "painted":
		return Opaque
	case "hydrophobic", "waterrepellent":
		return Hydrophobic
	case "thermallytreated", "thermo", "thermowood":
		return ThermallyTreated
	default:
		return Untreated
	}
}

// ResolveFinishColor picks a palette entry by name for the given
// treatment. Names outside the treatment's palette and colorless
// treatments return nil, which ComputeShading treats as "skip blend".
func ResolveFinishColor(treatment Treatment, name string) *mgl32.Vec3 {
	var names []string
	switch treatment {
	case Glazed:
		names = glazePaletteNames
	case Opaque:
		names = opaquePaletteNames
	default:
		return nil
	}
	want := normalizeName(name)
	for i, n := range names {
		if n == want {
			v := FinishColorPalette(treatment)[i]
			return &v
		}
	}
	return nil
}

// ClampAgeYears confines an age to [1,10].
func ClampAgeYears(age int) int {
	if age < MinAgeYears {
		return MinAgeYears
	}
	if age > MaxAgeYears {
		return MaxAgeYears
	}
	return age
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
