package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"honnef.co/go/vecpath"
	"honnef.co/go/vecpath/shape"
)

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format [path data]",
		Short: "Normalize path data to absolute commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			return opts.writePath(cmd, p)
		},
	}
}

func newTransformCmd(opts *options) *cobra.Command {
	var (
		matrix    []float64
		scale     []float64
		rotate    float64
		translate []float64
	)
	cmd := &cobra.Command{
		Use:   "transform [path data]",
		Short: "Apply an affine transformation",
		Long: `Apply an affine transformation to path data.

The matrix is applied first, followed by scaling, rotation about the origin and
translation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			aff, err := buildAffine(matrix, scale, rotate, translate)
			if err != nil {
				return err
			}
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			return opts.writePath(cmd, p.Transform(aff))
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&matrix, "matrix", nil, "apply the matrix `a,b,c,d,e,f`, as in SVG")
	f.Float64SliceVar(&scale, "scale", nil, "scale by `sx[,sy]`")
	f.Float64Var(&rotate, "rotate", 0, "rotate by `degrees`")
	f.Float64SliceVar(&translate, "translate", nil, "translate by `tx,ty`")
	return cmd
}

func buildAffine(matrix, scale []float64, rotate float64, translate []float64) (vecpath.Affine, error) {
	aff := vecpath.Identity
	switch len(matrix) {
	case 0:
	case 6:
		aff = vecpath.NewAffine([6]float64(matrix))
	default:
		return aff, fmt.Errorf("--matrix needs 6 values, got %d", len(matrix))
	}
	switch len(scale) {
	case 0:
	case 1:
		aff = aff.ThenScale(scale[0], scale[0])
	case 2:
		aff = aff.ThenScale(scale[0], scale[1])
	default:
		return aff, fmt.Errorf("--scale needs 1 or 2 values, got %d", len(scale))
	}
	if rotate != 0 {
		aff = aff.ThenRotate(rotate * math.Pi / 180)
	}
	switch len(translate) {
	case 0:
	case 2:
		aff = aff.ThenTranslate(vecpath.Vec(translate[0], translate[1]))
	default:
		return aff, fmt.Errorf("--translate needs 2 values, got %d", len(translate))
	}
	if aff.IsNaN() || aff.IsInf() {
		return aff, errors.New("transformation isn't finite")
	}
	return aff, nil
}

func newHandlesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "handles [path data]",
		Short: "List the editable handles of a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i := range p.HandleCount() {
				ref, _ := p.HandleRef(i)
				pt, _ := p.Handle(i)
				fmt.Fprintf(w, "%d\tfigure %d\tsegment %d\t%v\n", i, ref.Figure, ref.Segment, pt)
			}
			return nil
		},
	}
}

func newJoinCmd(opts *options) *cobra.Command {
	var threshold float64
	cmd := &cobra.Command{
		Use:   "join [path data]",
		Short: "Stitch figures with touching endpoints together",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = opts.cfg.Join.Threshold
			}
			if threshold < 0 {
				return fmt.Errorf("--threshold must not be negative, got %g", threshold)
			}
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			joined := vecpath.Path{Figures: vecpath.JoinFigures(p.Figures, threshold)}
			return opts.writePath(cmd, joined)
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "maximum `distance` between touching endpoints")
	return cmd
}

func newSplitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "split [path data]",
		Short: "Split a path into one path per line, curve or arc",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			for _, f := range p.Split() {
				if err := opts.writePath(cmd, vecpath.Path{Figures: []vecpath.Figure{f}}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newFitCmd(opts *options) *cobra.Command {
	var tolerance float64
	cmd := &cobra.Command{
		Use:   "fit [path data]",
		Short: "Fit a smooth chain of cubic Béziers through the points of a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("tolerance") {
				tolerance = opts.cfg.Fit.Tolerance
			}
			if tolerance <= 0 {
				return fmt.Errorf("--tolerance must be positive, got %g", tolerance)
			}
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			pts := p.Points()
			if len(pts) == 0 {
				return errors.New("no points to fit")
			}
			fh := shape.NewFreehand(shape.Style{})
			fh.Tolerance = tolerance
			fh.Place(pts[0])
			for _, pt := range pts[1:] {
				fh.Draw(pt)
			}
			fh.CompleteDrawing()
			return opts.writePath(cmd, fh.PathGeometry())
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "maximum `distance` between points and curves")
	return cmd
}

func newBoundsCmd(opts *options) *cobra.Command {
	var control bool
	cmd := &cobra.Command{
		Use:   "bounds [path data]",
		Short: "Print the bounding box of a path as x0 y0 x1 y1",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.readPath(cmd, args)
			if err != nil {
				return err
			}
			if p.IsEmpty() {
				return errors.New("path is empty")
			}
			r := p.BoundingBox()
			if control {
				r = p.ControlBox()
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g %g\n", r.X0, r.Y0, r.X1, r.Y1)
			return nil
		},
	}
	cmd.Flags().BoolVar(&control, "control", false, "include control points")
	return cmd
}
