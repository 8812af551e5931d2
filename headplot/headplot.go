// Package headplot draws validation figures for torospherical head
// cross-sections: the eight profile segments colour-coded by zone,
// tangency markers and the knuckle ring centre, with a derived-geometry
// summary in the title.
package headplot

import (
	"fmt"

	"github.com/jaufderheide/torosphere"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Options configures a cross-section figure. The zero value is usable.
type Options struct {
	NArc   int       // samples per arc segment, default 64
	Width  vg.Length // figure width, default 15cm
	Height vg.Length // figure height, default 15cm
}

func (o *Options) defaults() {
	if o.NArc < 1 {
		o.NArc = 64
	}
	if o.Width == 0 {
		o.Width = 15 * vg.Centimeter
	}
	if o.Height == 0 {
		o.Height = 15 * vg.Centimeter
	}
}

// CrossSection renders the closed cross-section of a head to an image
// file (format chosen by the path extension, e.g. .png or .svg). Each
// of the eight segments is drawn as its own colour-coded line so the
// zone structure is visible; the tangency points must sit exactly on
// the junctions between crown and knuckle lines.
func CrossSection(p torosphere.Parameters, path string, opts Options) error {
	opts.defaults()
	segs, g, err := torosphere.CrossSectionSegments(p, opts.NArc)
	if err != nil {
		return err
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf(
		"Torospherical head  D=%g Rc=%g rk=%g t=%g h=%g\nalpha=%.2f deg  phi_t=%.2f deg  dome height=%.2f",
		p.D, p.Rc, p.Rk, p.T, p.H,
		torosphere.RtoD(g.Alpha), torosphere.RtoD(g.PhiT), g.DomeHeight(),
	)
	plt.X.Label.Text = "r"
	plt.Y.Label.Text = "z"

	for i, s := range segs {
		xys := make(plotter.XYs, len(s.V))
		for k, v := range s.V {
			xys[k].X = v.X
			xys[k].Y = v.Y
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		plt.Add(line)
		plt.Legend.Add(s.ID.String(), line)
	}

	marks, err := plotter.NewScatter(plotter.XYs{
		{X: g.Rt, Y: g.Zt},
		{X: g.RtOut, Y: g.ZtOut},
		{X: g.Rkc, Y: g.Zkc},
	})
	if err != nil {
		return err
	}
	plt.Add(marks)
	plt.Legend.Add("tangency / knuckle centre", marks)
	plt.Legend.Top = true

	return plt.Save(opts.Width, opts.Height, path)
}
