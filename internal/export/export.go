// SPDX-License-Identifier: MIT
// Package: lebedev/internal/export
//
// export.go — Format parsing and the Write entry point.

package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lebedev/grid"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Formats lists the accepted formats.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatTable}

var (
	// ErrUnknownFormat indicates a format name outside Formats.
	ErrUnknownFormat = errors.New("export: unknown format")
	// ErrNilGrid indicates Write was given a nil grid.
	ErrNilGrid = errors.New("export: nil grid")
)

// ParseFormat maps a case-insensitive name ("yml" is accepted) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatYAML, FormatTable:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("ParseFormat: %q: %w", s, ErrUnknownFormat)
}

// Options tunes Write.
type Options struct {
	// Spherical adds azimuth and polar angles (radians) to every point.
	Spherical bool
}

// Point is one serialized grid point.
type Point struct {
	X       float64  `json:"x" yaml:"x"`
	Y       float64  `json:"y" yaml:"y"`
	Z       float64  `json:"z" yaml:"z"`
	W       float64  `json:"w" yaml:"w"`
	Azimuth *float64 `json:"azimuth,omitempty" yaml:"azimuth,omitempty"`
	Polar   *float64 `json:"polar,omitempty" yaml:"polar,omitempty"`
}

// Document is the JSON / YAML shape of a grid.
type Document struct {
	Order  int        `json:"order" yaml:"order"`
	Degree int        `json:"degree" yaml:"degree"`
	Radius float64    `json:"radius" yaml:"radius"`
	Center [3]float64 `json:"center" yaml:"center,flow"`
	Scale  float64    `json:"scale" yaml:"scale"`
	Points []Point    `json:"points" yaml:"points"`
}

// NewDocument converts g into its serializable form.
func NewDocument(g *grid.Grid, opts Options) Document {
	doc := Document{
		Order:  g.Order,
		Degree: g.Degree,
		Radius: g.Radius,
		Center: [3]float64{g.Center.X, g.Center.Y, g.Center.Z},
		Scale:  g.Scale,
		Points: make([]Point, g.Len()),
	}
	var az, pol []float64
	if opts.Spherical {
		az, pol = g.Spherical()
	}
	for i := range doc.Points {
		p := Point{X: g.X[i], Y: g.Y[i], Z: g.Z[i], W: g.W[i]}
		if opts.Spherical {
			p.Azimuth, p.Polar = &az[i], &pol[i]
		}
		doc.Points[i] = p
	}

	return doc
}

// Write encodes g to w in format f.
func Write(w io.Writer, g *grid.Grid, f Format, opts Options) error {
	if g == nil {
		return fmt.Errorf("Write: %w", ErrNilGrid)
	}
	doc := NewDocument(g, opts)
	switch f {
	case FormatCSV:
		return writeCSV(w, doc, opts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("Write: yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, doc, opts)
	}

	return fmt.Errorf("Write: %q: %w", f, ErrUnknownFormat)
}

// ftoa renders v with the fewest digits that round-trip.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func header(opts Options) []string {
	h := []string{"x", "y", "z", "w"}
	if opts.Spherical {
		h = append(h, "azimuth", "polar")
	}
	return h
}

func row(p Point, opts Options) []string {
	r := []string{ftoa(p.X), ftoa(p.Y), ftoa(p.Z), ftoa(p.W)}
	if opts.Spherical {
		r = append(r, ftoa(*p.Azimuth), ftoa(*p.Polar))
	}
	return r
}

func writeCSV(w io.Writer, doc Document, opts Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(opts)); err != nil {
		return fmt.Errorf("Write: csv: %w", err)
	}
	for _, p := range doc.Points {
		if err := cw.Write(row(p, opts)); err != nil {
			return fmt.Errorf("Write: csv: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeTable(w io.Writer, doc Document, opts Options) error {
	if _, err := fmt.Fprintf(w, "# order %d, degree %d\n", doc.Order, doc.Degree); err != nil {
		return fmt.Errorf("Write: table: %w", err)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "i\t"+strings.Join(header(opts), "\t")+"\t")
	for i, p := range doc.Points {
		fmt.Fprintln(tw, strconv.Itoa(i)+"\t"+strings.Join(row(p, opts), "\t")+"\t")
	}

	return tw.Flush()
}
