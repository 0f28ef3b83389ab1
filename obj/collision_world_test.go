package obj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollisionWorld(t *testing.T) {
	grid := [][]int{
		{1, 0, 2},
		{0, 1, 1},
	}
	cw := NewCollisionWorld(grid, 16)

	require.Equal(t, 3, cw.Len())
	assert.Equal(t, []Obstacle{
		{X: 0, Y: 0, Width: 16, Height: 16},
		{X: 16, Y: 16, Width: 16, Height: 16},
		{X: 32, Y: 16, Width: 16, Height: 16},
	}, cw.Obstacles())
}

func TestCollisionWorldFirst(t *testing.T) {
	cw := NewCollisionWorld([][]int{{0, 1, 1}}, 16)

	cases := []struct {
		name       string
		x, y, w, h float64
		want       int
	}{
		{"clear", 0, 0, 10, 10, -1},
		{"touching_left_edge", 1, 0, 15, 15, 0},
		{"inside_second_only", 34, 2, 5, 5, 1},
		{"spanning_both_returns_first", 20, 0, 20, 10, 0},
		{"touching_bottom_edge", 20, 16, 5, 5, 0},
		{"below", 20, 16.5, 5, 5, -1},
		{"right_of_bounds", 48.01, 0, 5, 5, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, cw.First(c.x, c.y, c.w, c.h))
		})
	}
}

func TestCollisionWorldEmpty(t *testing.T) {
	var nilWorld *CollisionWorld
	assert.Equal(t, -1, nilWorld.First(0, 0, 1, 1))
	assert.Equal(t, 0, nilWorld.Len())

	cw := NewCollisionWorld([][]int{{0, 0}, {2, 3}}, 16)
	assert.Equal(t, 0, cw.Len())
	assert.Equal(t, -1, cw.First(0, 0, 32, 32))
}
