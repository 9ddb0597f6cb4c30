package chart

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// Export dimensions.
const (
	exportWidth  = 16 * vg.Centimeter
	exportHeight = 10 * vg.Centimeter
	barWidth     = 28
)

// supportedFormats lists the file extensions Export accepts.
var supportedFormats = map[string]bool{".png": true, ".svg": true, ".pdf": true, ".jpg": true}

// IsSupportedFormat reports whether Export can write a file with path's
// extension.
func IsSupportedFormat(path string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(path))]
}

// Export writes c to path. The image format follows the file extension
// (png, svg, pdf or jpg).
func Export(c BarChart, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedFormats[ext] {
		return apperrors.NewRenderError("chart export", "unsupported format %q", ext)
	}

	p, err := newPlot(c)
	if err != nil {
		return err
	}
	if err := p.Save(exportWidth, exportHeight, path); err != nil {
		return apperrors.RenderError{Component: "chart export", Cause: err}
	}
	return nil
}

// ExportAll writes c to every path concurrently and returns the first error.
func ExportAll(ctx context.Context, c BarChart, paths ...string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Export(c, path)
		})
	}
	return g.Wait()
}

func newPlot(c BarChart) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Min = 0

	if len(c.Bars) == 0 {
		return p, nil
	}

	labels := make([]string, len(c.Bars))
	points := make(plotter.XYs, len(c.Bars))
	texts := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		bars, err := plotter.NewBarChart(plotter.Values{b.Value}, vg.Points(barWidth))
		if err != nil {
			return nil, apperrors.RenderError{Component: "chart export", Cause: err}
		}
		bars.XMin = float64(i)
		bars.Color = parseHexColor(b.Color)
		bars.LineStyle.Width = 0
		p.Add(bars)

		labels[i] = b.Label
		points[i] = plotter.XY{X: float64(i), Y: b.Value}
		texts[i] = strconv.FormatFloat(b.Value, 'g', -1, 64)
	}
	p.NominalX(labels...)

	if c.ShowValues {
		valueLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: texts})
		if err != nil {
			return nil, apperrors.RenderError{Component: "chart export", Cause: err}
		}
		p.Add(valueLabels)
	}
	return p, nil
}

// parseHexColor converts "#RRGGBB" to a colour, falling back to grey.
func parseHexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
