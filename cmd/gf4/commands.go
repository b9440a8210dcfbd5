package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ppopth/threshold-algebra/field"
	"github.com/ppopth/threshold-algebra/poly"
	"github.com/ppopth/threshold-algebra/sharing"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print a few worked examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

func runDemo(w io.Writer) error {
	q, err := field.One.Div(field.Alpha)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, q)

	y := poly.Constant[field.GF4, poly.Deg2](field.One)
	fmt.Fprintf(w, "y: %s\n", y)

	x2, err := poly.X[field.GF4, poly.Deg2]()
	if err != nil {
		return err
	}
	xx, err := x2.Mul(x2)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, poly.Constant[field.GF4, poly.Deg2](field.Alpha).Add(x2).Add(xx))

	x1, err := poly.X[field.GF4, poly.Deg1]()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, x1.Evaluate(field.Alpha))

	p, err := poly.New[field.GF4, poly.Deg2](field.One, field.AlphaPlusOne, field.Alpha)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, p.Evaluate(field.AlphaPlusOne))

	xs := []field.GF4{field.One, field.Alpha}
	line, err := poly.Interpolate[field.GF4, poly.Deg1](xs, []field.GF4{field.One, field.Alpha})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, line)

	swapped, err := poly.Interpolate[field.GF4, poly.Deg1](xs, []field.GF4{field.Alpha, field.One})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, swapped.Evaluate(field.One))
	return nil
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the addition, multiplication and division tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			ops := []struct {
				name string
				op   func(a, b field.GF4) (field.GF4, error)
			}{
				{"+", func(a, b field.GF4) (field.GF4, error) { return a.Add(b), nil }},
				{"*", func(a, b field.GF4) (field.GF4, error) { return a.Mul(b), nil }},
				{"/", func(a, b field.GF4) (field.GF4, error) { return a.Div(b) }},
			}
			for i, op := range ops {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := printTable(w, op.name, op.op); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func printTable(w io.Writer, name string, op func(a, b field.GF4) (field.GF4, error)) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, name)
	for _, b := range field.GF4Elements() {
		fmt.Fprintf(tw, "\t%s", b)
	}
	fmt.Fprintln(tw)
	for _, a := range field.GF4Elements() {
		fmt.Fprint(tw, a)
		for _, b := range field.GF4Elements() {
			r, err := op(a, b)
			if err != nil {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%s", r)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func newEvalCmd() *cobra.Command {
	var coeffs, at string

	cmd := &cobra.Command{
		Use:     "eval",
		Short:   "Evaluate a polynomial at a point",
		Example: `  gf4 eval --coeffs 1,alpha+1,alpha --at alpha+1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := parseElements(coeffs)
			if err != nil {
				return err
			}
			x, err := field.ParseGF4(at)
			if err != nil {
				return err
			}
			p, err := newPolynomial(cs)
			if err != nil {
				return err
			}
			log.Debugf("evaluating %s (bound %d) at %s", p, p.Bound(), x)
			fmt.Fprintf(cmd.OutOrStdout(), "p(x) = %s\np(%s) = %s\n", p, x, p.Evaluate(x))
			return nil
		},
	}
	cmd.Flags().StringVar(&coeffs, "coeffs", "", "comma-separated coefficients, constant term first")
	cmd.Flags().StringVar(&at, "at", "0", "point to evaluate at")
	_ = cmd.MarkFlagRequired("coeffs")
	return cmd
}

func newInterpolateCmd() *cobra.Command {
	var xsFlag, ysFlag string

	cmd := &cobra.Command{
		Use:     "interpolate",
		Short:   "Find the polynomial through the given points",
		Example: `  gf4 interpolate --xs 1,alpha --ys alpha,1`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseElements(xsFlag)
			if err != nil {
				return err
			}
			ys, err := parseElements(ysFlag)
			if err != nil {
				return err
			}
			if len(xs) != len(ys) {
				return fmt.Errorf("got %d x-coordinates and %d y-coordinates", len(xs), len(ys))
			}
			p, err := interpolate(xs, ys)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "p(x) = %s\n", p)
			for i, x := range xs {
				log.Debugf("p(%s) = %s, expected %s", x, p.Evaluate(x), ys[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&xsFlag, "xs", "", "comma-separated distinct x-coordinates")
	cmd.Flags().StringVar(&ysFlag, "ys", "", "comma-separated y-coordinates")
	_ = cmd.MarkFlagRequired("xs")
	_ = cmd.MarkFlagRequired("ys")
	return cmd
}

func newShareCmd() *cobra.Command {
	var threshold, shares int

	cmd := &cobra.Command{
		Use:   "share SECRET",
		Short: "Split a secret into shares and recombine it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := sharing.DefaultConfig()
			config.Shares = shares
			switch threshold {
			case 1:
				return runShare[poly.Deg0](cmd.OutOrStdout(), config, args[0])
			case 2:
				return runShare[poly.Deg1](cmd.OutOrStdout(), config, args[0])
			case 3:
				return runShare[poly.Deg2](cmd.OutOrStdout(), config, args[0])
			}
			return fmt.Errorf("threshold %d outside [1, %d]", threshold, sharing.MaxShares)
		},
	}
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 2, "shares needed to reconstruct")
	cmd.Flags().IntVarP(&shares, "shares", "n", sharing.MaxShares, "shares to produce")
	return cmd
}

func runShare[D poly.Bound](w io.Writer, config *sharing.Config, secret string) error {
	splitter, err := sharing.NewSplitter[D](config)
	if err != nil {
		return err
	}
	shares, err := splitter.Split([]byte(secret))
	if err != nil {
		return err
	}
	for _, share := range shares {
		fmt.Fprintln(w, share)
	}

	// Recombine from the last shares to show any subset works
	recovered, err := splitter.Combine(shares[len(shares)-splitter.Threshold():])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "recovered: %q\n", recovered)
	return nil
}
