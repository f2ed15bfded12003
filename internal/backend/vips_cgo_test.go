//go:build cgo

package backend

import (
	"image"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// libvips can only be started once per process, so a single test covers
// the whole lifecycle, including a second Backend after shutdown. Set
// IMAGE_GEOMETRY_TEST_VIPS=1 to run it.
func TestVipsEngine(t *testing.T) {
	if os.Getenv("IMAGE_GEOMETRY_TEST_VIPS") != "1" {
		t.Skip("IMAGE_GEOMETRY_TEST_VIPS not set")
	}

	be := New(Config{Default: "vips", Vips: VipsConfig{Concurrency: 1}})
	require.NoError(t, be.Startup())
	require.NoError(t, be.Startup())

	eng, err := be.Engine("")
	require.NoError(t, err)
	require.Equal(t, "vips", eng.Name())

	img := createPatternImage(100, 50)

	out, err := eng.Resize(img, 50, 25, FilterLanczos)
	require.NoError(t, err)
	require.Equal(t, 50, out.Bounds().Dx())
	require.Equal(t, 25, out.Bounds().Dy())

	out, err = eng.Crop(img, image.Rect(10, 10, 30, 20))
	require.NoError(t, err)
	require.Equal(t, 20, out.Bounds().Dx())
	require.Equal(t, 10, out.Bounds().Dy())

	be.Shutdown()

	// A backend created after shutdown must not reuse the first start.
	late := New(Config{Vips: VipsConfig{Enabled: true}})
	err = late.Startup()
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = late.Engine("vips")
	require.Error(t, err)
}
