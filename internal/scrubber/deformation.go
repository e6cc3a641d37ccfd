package scrubber

import (
	"math"

	"github.com/niagarahome/launcher/internal/model"
)

// Transform is the render instruction for one letter of the strip. It is
// computed fresh on every draw and carries no state between frames.
type Transform struct {
	Letter   model.Letter
	CenterY  float32 // undeformed slot center in strip-local coordinates
	OffsetX  float32 // horizontal displacement, negative is left
	Scale    float32
	Selected bool
}

// Deform computes the per-letter transforms for the current session. Outside
// a gesture every letter sits at its slot with scale 1.
//
// The bulge follows a gaussian of the distance to the touch point measured in
// slot units, so its width does not depend on how many letters are shown.
func Deform(s Session, letters []model.Letter, g Geometry) []Transform {
	n := len(letters)
	out := make([]Transform, n)
	t := s.tunables
	slot := g.SlotHeight(n)

	for i, letter := range letters {
		center := BucketCenter(i, g.TopInset, g.BottomInset, g.Height, n)
		out[i] = Transform{Letter: letter, CenterY: center, Scale: 1}
		if !s.Active {
			continue
		}

		var falloff float32
		if slot > 0 {
			distance := float32(math.Abs(float64(center-s.Touch.Y))) / slot
			falloff = Falloff(distance, t.BulgeRadius)
		}

		out[i].OffsetX = -(s.PullDistance + t.BulgeMargin) * falloff
		out[i].Scale = 1 + (t.HighlightScale-1)*s.PullFraction*falloff
		if i == s.Selected {
			out[i].Selected = true
			out[i].Scale = max(out[i].Scale, t.HighlightScale)
		}
	}
	return out
}
