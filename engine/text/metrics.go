package text

import (
	"fmt"

	"github.com/npillmayer/inlay/core/dimen"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontMetrics are the vertical metrics of a font at a given size.
type FontMetrics struct {
	EmSize  dimen.Dimen // font size
	Ascent  dimen.Dimen // distance from the baseline to the top of the em-box
	Descent dimen.Dimen // distance from the baseline to the bottom of the em-box, positive
	LineGap dimen.Dimen // extra leading recommended by the font
	XHeight dimen.Dimen // height of lower-case letters
}

// Height returns the font's natural line height, i.e. the value used for
// `line-height: normal`.
func (fm FontMetrics) Height() dimen.Dimen {
	return fm.Ascent + fm.Descent + fm.LineGap
}

func (fm FontMetrics) String() string {
	return fmt.Sprintf("font{size=%v,a=%v,d=%v,gap=%v}", fm.EmSize, fm.Ascent, fm.Descent, fm.LineGap)
}

// FontMetricsFromFace converts metrics as reported by an x/image font face.
// Face metrics are in 26.6 fixed point pixels, where one pixel is one big point.
func FontMetricsFromFace(m xfont.Metrics) FontMetrics {
	fm := FontMetrics{
		Ascent:  fromFixed(m.Ascent),
		Descent: fromFixed(m.Descent),
		XHeight: fromFixed(m.XHeight),
	}
	if gap := fromFixed(m.Height) - fm.Ascent - fm.Descent; gap > 0 {
		fm.LineGap = gap
	}
	// faces do not report their size; the em-box is assumed to span ascent and descent
	fm.EmSize = fm.Ascent + fm.Descent
	return fm
}

func fromFixed(x fixed.Int26_6) dimen.Dimen {
	return dimen.Dimen(int64(x) * int64(dimen.BP) / 64)
}

// EmMetrics creates synthetic font metrics for a font of size em, where
// ascent and descent split the em-box 4:1, as is common for Latin fonts.
func EmMetrics(em dimen.Dimen) FontMetrics {
	ascent := em * 4 / 5
	return FontMetrics{
		EmSize:  em,
		Ascent:  ascent,
		Descent: em - ascent,
		XHeight: em / 2,
	}
}
