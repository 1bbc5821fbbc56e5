// Package sample builds small procedural maps for the example tools and
// their test fixtures.
package sample

import "github.com/logicossoftware/go-mimemap"

// Room returns a sector shaped like an axis-aligned box with its floor at
// y=0. The floor and ceiling are single quads; the wall mesh holds the four
// sides as separate quads so each side can be lit independently.
func Room(x, z, width, depth, height float32, color [4]float32) mimemap.Sector {
	x1, z1 := x+width, z+depth
	floor := quad(color,
		[3]float32{x, 0, z}, [3]float32{x1, 0, z}, [3]float32{x1, 0, z1}, [3]float32{x, 0, z1})
	ceiling := quad(color,
		[3]float32{x, height, z1}, [3]float32{x1, height, z1}, [3]float32{x1, height, z}, [3]float32{x, height, z})

	var wall mimemap.Mesh
	corners := [4][2]float32{{x, z}, {x1, z}, {x1, z1}, {x, z1}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		side := quad(color,
			[3]float32{a[0], 0, a[1]}, [3]float32{b[0], 0, b[1]},
			[3]float32{b[0], height, b[1]}, [3]float32{a[0], height, a[1]})
		base := uint32(len(wall.Vertices))
		wall.Vertices = append(wall.Vertices, side.Vertices...)
		for _, idx := range side.Indices {
			wall.Indices = append(wall.Indices, base+idx)
		}
	}
	return mimemap.NewSector(floor, ceiling, wall)
}

func quad(color [4]float32, p0, p1, p2, p3 [3]float32) mimemap.Mesh {
	vs := make([]mimemap.Vertex, 0, 4)
	for _, p := range [4][3]float32{p0, p1, p2, p3} {
		vs = append(vs, mimemap.NewVertex(p[0], p[1], p[2], color))
	}
	return mimemap.NewMesh(vs, []uint32{0, 1, 2, 2, 3, 0})
}

// Corridor returns a map of n rooms laid out along the x axis.
func Corridor(n int) *mimemap.Map {
	m := mimemap.NewMap()
	for i := 0; i < n; i++ {
		shade := float32(i%4) / 4
		m.Sectors = append(m.Sectors, Room(float32(i)*4, 0, 4, 4, 3, [4]float32{1 - shade, 1, shade, 1}))
	}
	return m
}
