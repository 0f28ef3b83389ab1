package placeholders

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetSizes(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 64, 64), GeneratePlayerSheet().Bounds())
	assert.Equal(t, image.Rect(0, 0, 64, 16), GenerateTerrain().Bounds())
	assert.Equal(t, image.Rect(0, 0, 80, 16), GenerateDecorations().Bounds())
}

func TestTerrainIsOpaque(t *testing.T) {
	img := GenerateTerrain()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			require.Equal(t, uint8(255), img.RGBAAt(x, y).A, "pixel %d,%d", x, y)
		}
	}
}

func TestDecorationsKeepTransparency(t *testing.T) {
	img := GenerateDecorations()
	// tree corner and flower corner are see-through, wall is solid
	assert.Zero(t, img.RGBAAt(0, 15).A)
	assert.Zero(t, img.RGBAAt(4*TileSize, 0).A)
	assert.Equal(t, uint8(255), img.RGBAAt(TileSize, 0).A)
}

func TestPlayerFramesDiffer(t *testing.T) {
	sheet := GeneratePlayerSheet()
	// a lifted leg leaves the bottom row empty
	assert.NotZero(t, sheet.RGBAAt(5, 15).A)
	assert.Zero(t, sheet.RGBAAt(5, TileSize+15).A)
	assert.NotZero(t, sheet.RGBAAt(9, TileSize+15).A)
	assert.Zero(t, sheet.RGBAAt(9, 3*TileSize+15).A)
}

func TestGenerateAndSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets")
	written, err := GenerateAndSave(dir)
	require.NoError(t, err)
	require.Len(t, written, 3)
	assert.Equal(t, filepath.Join(dir, "decorations.png"), written[0])

	f, err := os.Open(filepath.Join(dir, "player.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}
