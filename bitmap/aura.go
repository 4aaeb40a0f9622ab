package bitmap

// Radial falloff parameters for the two brightness tables. The outer table
// is the wide lamp glow, the inner table the tight over-bright core that
// raises the mute floor near the light.
const (
	outerFalloff = 1.2
	outerGain    = 384
	innerFalloff = 5.0
	innerGain    = 150
)

// Aura holds two flattened square radial-brightness lookup tables,
// precomputed once and sampled every composited pixel. Conceptually the
// tables are centered on a moving light source; callers translate sample
// coordinates by the light position per frame.
type Aura struct {
	Size int

	inner []uint32
	outer []uint32
}

// NewAura builds the lookup tables at the given side length. Brightness at
// table cell p (remapped to [-1,1)²) is clamp01(1 - falloff*|p|²) * gain.
func NewAura(size int) *Aura {
	a := &Aura{
		Size:  size,
		inner: make([]uint32, size*size),
		outer: make([]uint32, size*size),
	}

	for y := 0; y < size; y++ {
		pv := float64(y)/float64(size)*2 - 1
		for x := 0; x < size; x++ {
			pu := float64(x)/float64(size)*2 - 1
			d := pu*pu + pv*pv

			a.outer[x+y*size] = uint32(clamp01(1-d*outerFalloff) * outerGain)
			a.inner[x+y*size] = uint32(clamp01(1-d*innerFalloff) * innerGain)
		}
	}
	return a
}

// Sample returns the inner and outer brightness at table coordinates
// (x, y). Outside the table both are zero (unlit).
func (a *Aura) Sample(x, y int) (inner, outer uint32) {
	if x < 0 || x >= a.Size || y < 0 || y >= a.Size {
		return 0, 0
	}
	i := x + y*a.Size
	return a.inner[i], a.outer[i]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
