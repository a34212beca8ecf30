package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/golang/geo/r3"

	"primview/internal/scene"
)

// boxFaces indexes boxCorners, one quad per face, 1-based offsets added on write.
var boxFaces = [6][4]int{
	{0, 3, 2, 1}, {4, 5, 6, 7},
	{0, 1, 5, 4}, {2, 3, 7, 6},
	{1, 2, 6, 5}, {0, 4, 7, 3},
}

// WriteOBJ writes every visible artifact as Wavefront OBJ. Points become
// vertices, lines become polyline elements and boxes become six quads.
func (c *Canvas) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# primview scene export")
	n := 0
	vertex := func(p r3.Vector) int {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		n++
		return n
	}
	for _, h := range c.order {
		a := c.items[h]
		fmt.Fprintf(bw, "o artifact_%d\n", h)
		for _, p := range a.prims {
			switch p.kind {
			case scene.Point:
				for _, pt := range p.points {
					fmt.Fprintf(bw, "p %d\n", vertex(pt))
				}
			case scene.Vector, scene.Polyline:
				idx := make([]int, 0, len(p.points))
				for _, pt := range p.points {
					idx = append(idx, vertex(pt))
				}
				fmt.Fprint(bw, "l")
				for _, i := range idx {
					fmt.Fprintf(bw, " %d", i)
				}
				fmt.Fprintln(bw)
			case scene.Box:
				if len(p.points) != 2 {
					continue
				}
				base := n
				for _, corner := range boxCorners(p.points[0], p.points[1]) {
					vertex(corner)
				}
				for _, f := range boxFaces {
					fmt.Fprintf(bw, "f %d %d %d %d\n", base+f[0]+1, base+f[1]+1, base+f[2]+1, base+f[3]+1)
				}
			}
		}
	}
	return bw.Flush()
}

// ExportOBJ writes the canvas to prefix + ".obj" and returns the file name.
func (c *Canvas) ExportOBJ(prefix string) (string, error) {
	name := prefix + ".obj"
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	if err := c.WriteOBJ(f); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}
