package scene

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Footprint side length of a building block, in degrees.
const buildingSide = 0.0002

var (
	SaddleBrown = Color{139.0 / 255, 69.0 / 255, 19.0 / 255}
	Silver      = Color{192.0 / 255, 192.0 / 255, 192.0 / 255}
	DarkGreen   = Color{0, 100.0 / 255, 0}
)

// FeetToDegrees converts a height in feet to a rough lat/long equivalent,
// scaled up ten times so heights stay visible next to footprints.
func FeetToDegrees(ft float64) float64 {
	return (ft * .0003048 * 90 / 10000) * 10
}

// buildingColumns maps lower-cased header names to a column role.
var buildingColumns = map[string]string{
	"lat": "lat", "latitude": "lat",
	"long": "long", "lon": "long", "lng": "long", "longitude": "long",
	"number": "number", "street": "street", "city": "city", "state": "state", "zip": "zip",
	"ground_ft": "ground", "ground": "ground", "ground_elevation": "ground",
	"height_ft": "height", "height": "height", "building_height": "height",
}

// buildingOrder is the positional layout used when the header is not recognised.
var buildingOrder = []string{"lat", "long", "number", "street", "city", "state", "zip", "ground", "height"}

// LoadBuildings reads a buildings CSV and, when outline is not empty, an
// outline CSV of x,y rows. Each building row yields a ground block and a
// building block stacked below it; only the building block carries the
// address description.
func LoadBuildings(path, outline string, d Defaults) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := DecodeBuildings(f, d)
	if err != nil {
		return nil, err
	}
	if outline == "" {
		return doc, nil
	}
	of, err := os.Open(outline)
	if err != nil {
		return nil, err
	}
	defer of.Close()
	e, err := DecodeOutline(of, d)
	if err != nil {
		return nil, err
	}
	doc.Steps[0].Entities = append(doc.Steps[0].Entities, e)
	return doc, nil
}

// DecodeBuildings parses the buildings CSV into a single non-glyph step.
func DecodeBuildings(r io.Reader, d Defaults) (*Document, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idx := map[string]int{}
	for i, h := range recs[0] {
		if role, ok := buildingColumns[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, seen := idx[role]; !seen {
				idx[role] = i
			}
		}
	}
	if _, ok := idx["lat"]; !ok {
		for i, role := range buildingOrder {
			idx[role] = i
		}
	}
	if _, ok := idx["long"]; !ok {
		return nil, errors.New("csv: latitude/longitude columns not found")
	}
	col := func(row []string, role string) string {
		i, ok := idx[role]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var st Step
	for n, row := range recs[1:] {
		lat, err1 := strconv.ParseFloat(col(row, "lat"), 64)
		long, err2 := strconv.ParseFloat(col(row, "long"), 64)
		groundFt, err3 := strconv.ParseFloat(col(row, "ground"), 64)
		heightFt, err4 := strconv.ParseFloat(col(row, "height"), 64)
		if err := errors.Join(err1, err2, err3, err4); err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedDocument, n+2, err)
		}
		ground := FeetToDegrees(groundFt)
		height := FeetToDegrees(heightFt)
		h := buildingSide / 2
		desc := fmt.Sprintf("%s %s\n%s, %s %s\nLat: %s, Long: %s\nGround Elevation: %s ft\nBuilding Height: %s ft\n",
			col(row, "number"), col(row, "street"), col(row, "city"), col(row, "state"), col(row, "zip"),
			col(row, "lat"), col(row, "long"), col(row, "ground"), col(row, "height"))
		st.Entities = append(st.Entities,
			Entity{
				Kind:        Box,
				Position:    []float64{lat - h, long - h, -ground, lat + h, long + h, 0},
				Color:       SaddleBrown,
				Opacity:     1,
				Radius:      d.TubeRadius,
				Description: DefaultDescription,
			},
			Entity{
				Kind:        Box,
				Position:    []float64{lat - h, long - h, -ground - height, lat + h, long + h, -ground},
				Color:       Silver,
				Opacity:     1,
				Radius:      d.TubeRadius,
				Description: desc,
			})
	}
	if len(st.Entities) == 0 {
		return nil, errors.New("csv: no buildings parsed")
	}
	return &Document{Steps: []Step{st}, Reset: true}, nil
}

// DecodeOutline parses x,y rows into one polyline at z=0.
func DecodeOutline(r io.Reader, d Defaults) (Entity, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return Entity{}, err
	}
	var pos []float64
	for n, row := range recs {
		if len(row) < 2 {
			return Entity{}, fmt.Errorf("%w: outline row %d: expected x,y", ErrMalformedDocument, n+1)
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err := errors.Join(err1, err2); err != nil {
			return Entity{}, fmt.Errorf("%w: outline row %d: %v", ErrMalformedDocument, n+1, err)
		}
		pos = append(pos, x, y, 0)
	}
	if len(pos) < 6 {
		return Entity{}, fmt.Errorf("%w: outline needs at least two points", ErrMalformedDocument)
	}
	return Entity{
		Kind:        Polyline,
		Position:    pos,
		Color:       DarkGreen,
		Opacity:     1,
		Radius:      d.TubeRadius,
		Description: "Outline",
	}, nil
}
