package platform

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/desktools/appdrawer/internal/geometry"
	"github.com/desktools/appdrawer/internal/launcher"
)

type foreignTexture struct{}

func (foreignTexture) Release() {}

func TestStripImages_KeepsSlots(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	images := testImages(3)
	released := &texture{img: images[1]}
	released.Release()

	out := stripImages([]launcher.Texture{
		&texture{img: images[0]},
		released,
		foreignTexture{},
		&texture{img: images[2]},
	}, zap.New(core))

	require.Len(t, out, 4)
	assert.Same(t, images[0], out[0])
	assert.Same(t, images[2], out[3])
	assert.Nil(t, out[1].Image)
	assert.Nil(t, out[2].Image)

	empty := logs.FilterMessage("Icon slot left empty").All()
	require.Len(t, empty, 2)
	assert.Equal(t, int64(1), empty[0].ContextMap()["index"])
	assert.Equal(t, int64(2), empty[1].ContextMap()["index"])
}

func TestStripImages_SlotsLineUpWithPicks(t *testing.T) {
	test.NewApp()

	images := testImages(2)
	strip := NewIconStrip(50, stripImages([]launcher.Texture{foreignTexture{}, &texture{img: images[1]}}, zap.NewNop()))

	assert.Len(t, strip.images, 2)
	assert.Same(t, images[1], strip.images[1])
}

func TestScaledPlacement(t *testing.T) {
	area := geometry.Rect{MaxX: 1000, MaxY: 800}
	opts := launcher.WindowOptions{
		Placement:   geometry.Place(64, 2, geometry.Point{X: 990, Y: 400}, true, area),
		IconSize:    64,
		Count:       2,
		Cursor:      geometry.Point{X: 990, Y: 400},
		CursorKnown: true,
		WorkArea:    area,
	}

	assert.Equal(t, opts.Placement, scaledPlacement(opts, 1))

	hi := scaledPlacement(opts, 1.5)
	assert.Equal(t, 192, hi.Width)
	assert.Equal(t, 808, hi.X)
	assert.Equal(t, 304, hi.Y)
}

func TestScaledPlacement_NoInputs(t *testing.T) {
	opts := launcher.WindowOptions{Placement: geometry.Placement{Width: 100, Height: 50, X: 7, Y: 9, Positioned: true}}

	assert.Equal(t, opts.Placement, scaledPlacement(opts, 2))
}
