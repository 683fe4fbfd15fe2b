package scene

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTessellateArc_FullCircle(t *testing.T) {
	points := TessellateArc(math32.Vec3(0, 0, 0), 10, 0, 360, 32)
	require.Len(t, points, 33)

	// 整圆首尾重合，且每个点都在半径上
	assert.InDelta(t, float64(points[0].X), float64(points[32].X), 1e-3)
	assert.InDelta(t, float64(points[0].Y), float64(points[32].Y), 1e-3)
	for _, p := range points {
		assert.InDelta(t, 10, float64(p.Length()), 1e-3)
	}
}

func TestTessellateArc_Sweep(t *testing.T) {
	// 跨零圆弧 270° → 450°，终点回到 90° 方向
	points := TessellateArc(math32.Vec3(0, 0, 0), 2, 270, 450, 16)
	require.Len(t, points, 17)

	assert.InDelta(t, 0, float64(points[0].X), 1e-4)
	assert.InDelta(t, -2, float64(points[0].Y), 1e-4)
	assert.InDelta(t, 0, float64(points[16].X), 1e-4)
	assert.InDelta(t, 2, float64(points[16].Y), 1e-4)
}

func TestTessellateArc_Invalid(t *testing.T) {
	assert.Nil(t, TessellateArc(math32.Vec3(0, 0, 0), 0, 0, 360, 32), "零半径不产点")
	assert.Nil(t, TessellateArc(math32.Vec3(0, 0, 0), 1, 0, 360, 0), "零段数不产点")
}

func TestCatmullRom_Endpoints(t *testing.T) {
	control := []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(5, 10, 0),
		math32.Vec3(10, 0, 1),
		math32.Vec3(15, 10, 2),
	}

	points := CatmullRom(control, 30)
	require.Len(t, points, 31)

	// 曲线过首尾控制点
	assert.InDelta(t, 0, float64(points[0].X), 1e-4)
	assert.InDelta(t, 15, float64(points[30].X), 1e-4)
	assert.InDelta(t, 10, float64(points[30].Y), 1e-4)
	assert.InDelta(t, 2, float64(points[30].Z), 1e-4)

	// 段数整除时采样点恰好落在中间控制点上
	points = CatmullRom(control, 3)
	assert.InDelta(t, 5, float64(points[1].X), 1e-4)
	assert.InDelta(t, 10, float64(points[1].Y), 1e-4)
	assert.InDelta(t, 10, float64(points[2].X), 1e-4)
}

func TestCatmullRom_TwoPoints(t *testing.T) {
	points := CatmullRom([]math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(10, 0, 0),
	}, 10)
	require.Len(t, points, 11)

	// 两个控制点退化为均匀直线
	assert.InDelta(t, 5, float64(points[5].X), 1e-4)
	assert.InDelta(t, 0, float64(points[5].Y), 1e-4)
}

func TestCatmullRom_Degenerate(t *testing.T) {
	assert.Nil(t, CatmullRom(nil, 10))

	single := CatmullRom([]math32.Vector3{math32.Vec3(3, 4, 5)}, 10)
	require.Len(t, single, 1)
	assert.Equal(t, math32.Vec3(3, 4, 5), single[0])
}
