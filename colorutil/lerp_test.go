package colorutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nightclipse/dancoren"
	"github.com/nightclipse/dancoren/colorutil"
)

func TestLerpHSV_EndpointsReturnOriginalColors(t *testing.T) {
	red := dancoren.PackColor(255, 0, 0)
	blue := dancoren.PackColor(0, 0, 255)

	r, g, b := colorutil.LerpHSV(red, blue, 0).RGB()
	assert.InDelta(t, 255, int(r), 2)
	assert.InDelta(t, 0, int(g), 2)
	assert.InDelta(t, 0, int(b), 2)

	r, g, b = colorutil.LerpHSV(red, blue, 1).RGB()
	assert.InDelta(t, 0, int(r), 2)
	assert.InDelta(t, 0, int(g), 2)
	assert.InDelta(t, 255, int(b), 2)
}

func TestLerpHSV_MidpointIsBetweenEndpoints(t *testing.T) {
	black := dancoren.PackColor(0, 0, 0)
	white := dancoren.PackColor(255, 255, 255)

	r, g, b := colorutil.LerpHSV(black, white, 0.5).RGB()
	assert.InDelta(t, 127, int(r), 5)
	assert.InDelta(t, 127, int(g), 5)
	assert.InDelta(t, 127, int(b), 5)
}
