package tui

import (
	"math"
	"strings"

	"github.com/golang/geo/r3"

	"primview/internal/interp"
	"primview/internal/scene"
)

// Largest sphere drawn, in micro pixels.
const maxSphereMic = 64

func (m Model) renderScene(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.canvas == nil {
		return strings.Join(br.toLines(), "\n")
	}
	cam := m.canvas.cam

	if m.showFrame {
		if f, ok := m.canvas.Frame(); ok {
			corners := boxCorners(
				r3.Vector{X: f.MinX, Y: f.MinY, Z: f.MinZ},
				r3.Vector{X: f.MaxX, Y: f.MaxY, Z: f.MaxZ})
			drawBox(br, cam, corners, w, h, frameFg)
		}
	}

	s := cam.scale(w, h)
	for _, hd := range m.canvas.order {
		a := m.canvas.items[hd]
		for _, p := range a.prims {
			switch p.kind {
			case scene.Point:
				for i, pt := range p.points {
					mx, my := cam.project(pt, w, h)
					r := int(math.Round(p.radiusAt(i) * s))
					br.drawCircleMicro(mx, my, min(r, maxSphereMic), entityHex(p.colorAt(i)))
				}
			case scene.Vector, scene.Polyline:
				for i := 0; i+1 < len(p.points); i++ {
					x0, y0 := cam.project(p.points[i], w, h)
					x1, y1 := cam.project(p.points[i+1], w, h)
					br.drawLineMicro(x0, y0, x1, y1, entityHex(p.colorAt(i)))
				}
			case scene.Box:
				if len(p.points) == 2 {
					drawBox(br, cam, boxCorners(p.points[0], p.points[1]), w, h, entityHex(p.colorAt(0)))
				}
			}
		}
	}

	if m.hovering && m.hoverHandle != interp.NoHandle {
		br.drawCircleMicro(m.hoverMicX, m.hoverMicY, 2, string(hoverFg))
	}
	return strings.Join(br.toLines(), "\n")
}

func drawBox(br *brailleBuf, cam camera, corners [8]r3.Vector, w, h int, col string) {
	var pts [8][2]int
	for i, c := range corners {
		pts[i][0], pts[i][1] = cam.project(c, w, h)
	}
	for _, e := range boxEdges {
		a, b := pts[e[0]], pts[e[1]]
		br.drawLineMicro(a[0], a[1], b[0], b[1], col)
	}
}

// vertices calls fn for every vertex an artifact draws, box corners included.
func (a *artifact) vertices(fn func(p r3.Vector)) {
	for _, p := range a.prims {
		if p.kind == scene.Box && len(p.points) == 2 {
			for _, c := range boxCorners(p.points[0], p.points[1]) {
				fn(c)
			}
			continue
		}
		for _, pt := range p.points {
			fn(pt)
		}
	}
}

// nearestVertex finds the artifact vertex closest to the micro-pixel
// position (mx, my) in a w x h viewport.
func (m Model) nearestVertex(mx, my, w, h int) (hd interp.Handle, bx, by int, ok bool) {
	if m.canvas == nil {
		return interp.NoHandle, 0, 0, false
	}
	best := math.MaxInt
	for _, id := range m.canvas.order {
		m.canvas.items[id].vertices(func(p r3.Vector) {
			sx, sy := m.canvas.cam.project(p, w, h)
			if abs(sx) > 1<<20 || abs(sy) > 1<<20 {
				return
			}
			dx, dy := sx-mx, sy-my
			if d := dx*dx + dy*dy; d < best {
				best, hd, bx, by = d, id, sx, sy
			}
		})
	}
	return hd, bx, by, best != math.MaxInt
}

// inspectNearest returns the artifact closest to the viewport centre.
func (m Model) inspectNearest() (interp.Handle, bool) {
	lay := m.layout()
	hd, _, _, ok := m.nearestVertex(lay.mapW, lay.mapH*2, lay.mapW, lay.mapH)
	return hd, ok
}
