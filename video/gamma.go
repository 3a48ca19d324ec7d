package video

import (
	"math"

	"github.com/Exagone313/open-agb-firm/gfx"
)

// BuildGammaTable computes the 256 entry gamma/contrast/brightness
// correction table and uploads it to the display controller, one entry per
// register write. Correction is luma only, the single magnitude is
// replicated into all three channels. Gamma algorithm by Extrems.
//
// gbaGamma, lcdGamma and contrast must be positive.
func BuildGammaTable(d gfx.Display, gbaGamma, lcdGamma, contrast, brightness float64) {
	targetGamma := gbaGamma
	invLcdGamma := 1 / lcdGamma
	brightness = brightness / contrast
	contrastInTargetGamma := math.Pow(contrast, targetGamma)

	d.SetColorLUTIndex(0)
	for i := 0; i < 256; i++ {
		// Adjust i with brightness and convert to target gamma.
		adjusted := math.Pow(float64(i)/255+brightness, targetGamma)

		// Apply contrast, convert to LCD gamma, round to nearest
		// and clamp.
		res := math.Round(math.Pow(contrastInTargetGamma*adjusted, invLcdGamma) * 255)
		v := uint32(min(max(res, 0), 255))

		// Same adjustment for red/green/blue.
		d.WriteColorLUT(v<<16 | v<<8 | v)
	}
}
