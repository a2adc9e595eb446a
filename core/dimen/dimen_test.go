package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	_, _, err = ParseDimen("12 apples")
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.core")
	defer teardown()
	//
	assert.Equal(t, 5*BP, (10 * BP).Scale(0.5))
	assert.Equal(t, Dimen(2), Dimen(3).Scale(0.5)) // rounds half away from zero
	assert.Equal(t, "inf", Infinity.String())
}

func TestLogicalRect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.core")
	defer teardown()
	//
	r := LRect(10, 20, 100, 50)
	assert.Equal(t, Dimen(110), r.InlineEnd())
	assert.Equal(t, Dimen(70), r.BlockEnd())
	r = r.Translate(LogicalSize{Inline: 0, Block: -20})
	assert.Equal(t, Dimen(0), r.Start.B)
	p := r.Physical()
	assert.Equal(t, Dimen(100), p.Width())
	assert.Equal(t, Dimen(50), p.Height())
}

func TestLogicalSides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inlay.core")
	defer teardown()
	//
	s := LogicalSides{BlockStart: 1, InlineEnd: 2, BlockEnd: 3, InlineStart: 4}
	assert.Equal(t, Dimen(6), s.InlineStartEnd())
	assert.Equal(t, Dimen(4), s.BlockStartEnd())
	s = s.Add(s)
	assert.Equal(t, Dimen(12), s.InlineStartEnd())
}
