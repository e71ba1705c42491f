// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/katalvlaran/dimking/polytope"
	"github.com/katalvlaran/dimking/schlafli"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errInvalidLimits = errors.New("dimking: precision must be in [0,12] and max-vertices ≥ 2")

var elementNames = []string{"vertices", "edges", "faces", "cells"}

// summary is the JSON form of a generated polytope.
type summary struct {
	Symbol    string              `json:"symbol"`
	Dimension int                 `json:"dimension"`
	Counts    []int               `json:"counts"`
	Diameter  int                 `json:"diameter"`
	Verified  bool                `json:"verified,omitempty"`
	CubeCheck bool                `json:"cube_check,omitempty"`
	Structure *schlafli.Structure `json:"structure,omitempty"`
	Faces     []polytope.Face     `json:"faces,omitempty"`
}

func countName(k int) string {
	if k < len(elementNames) {
		return elementNames[k]
	}

	return fmt.Sprintf("%d-faces", k)
}

func formatCounts(counts []int) string {
	parts := make([]string, len(counts))
	for k, n := range counts {
		parts[k] = fmt.Sprintf("%d %s", n, countName(k))
	}

	return strings.Join(parts, ", ")
}

func writeJSON(w io.Writer, v any) error {
	out, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))

	return err
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		verify    bool
		dump      bool
		maxVerts  int
		precision int
	)
	cmd := &cobra.Command{
		Use:   "generate <symbol>",
		Short: "Generate a polytope from its Schläfli symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if precision < 0 || precision > 12 || maxVerts < 2 {
				return fmt.Errorf("precision %d, max-vertices %d: %w", precision, maxVerts, errInvalidLimits)
			}
			opts := []schlafli.Option{
				schlafli.WithMaxVertices(maxVerts),
				schlafli.WithKeyPrecision(precision),
				schlafli.WithLogger(log.Logger),
			}
			st, err := schlafli.GenerateString(args[0], opts...)
			if err != nil {
				return err
			}
			var cubeChecked bool
			if verify {
				if err := schlafli.VerifyClosure(st, opts...); err != nil {
					return err
				}
				if cubeChecked, err = schlafli.VerifyCubeCounts(st); err != nil {
					return err
				}
			}
			p, err := polytope.New(st, polytope.WithScale(a.cfg.Scale), polytope.WithLogger(log.Logger))
			if err != nil {
				return err
			}
			s := summary{
				Symbol:    st.Symbol.String(),
				Dimension: st.Dimension,
				Counts:    st.Counts(),
				Diameter:  p.Diameter(),
				Verified:  verify,
				CubeCheck: cubeChecked,
			}
			if dump {
				s.Structure = st
				s.Faces = p.Faces()
			}

			out := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				return writeJSON(out, s)
			}
			fmt.Fprintf(out, "%s: %s, diameter %d\n", s.Symbol, formatCounts(s.Counts), s.Diameter)
			if verify {
				fmt.Fprintln(out, "closure verified")
			}
			if cubeChecked {
				fmt.Fprintln(out, "counts match the n-cube")
			}
			if dump {
				for i, v := range st.Vertices {
					fmt.Fprintf(out, "v%d %v\n", i, v)
				}
				for _, f := range s.Faces {
					fmt.Fprintf(out, "f %v convex=%t\n", f.Cycle, f.Convex)
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&verify, "verify", false, "check generator closure, and n-cube counts for {4,3,…,3}")
	f.BoolVar(&dump, "dump", false, "print vertices and faces")
	f.IntVar(&maxVerts, "max-vertices", schlafli.DefaultMaxVertices, "abort when the orbit grows past this size")
	f.IntVar(&precision, "precision", schlafli.DefaultKeyPrecision, "decimals used to identify vertices")

	return cmd
}

func newShapesCmd(a *app) *cobra.Command {
	var stars bool
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List the shapes the puzzle draws from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			shapes := schlafli.DefaultShapes
			if stars {
				shapes = schlafli.StarShapes
			}
			list := make([]summary, 0, len(shapes))
			for _, text := range shapes {
				st, err := schlafli.GenerateString(text)
				if err != nil {
					log.Warn().Err(err).Str("shape", text).Msg("skipping shape")
					continue
				}
				list = append(list, summary{Symbol: st.Symbol.String(), Dimension: st.Dimension, Counts: st.Counts()})
			}

			out := cmd.OutOrStdout()
			if a.cfg.Format == formatJSON {
				return writeJSON(out, list)
			}
			for _, s := range list {
				fmt.Fprintf(out, "%-12s %dD  %s\n", s.Symbol, s.Dimension, formatCounts(s.Counts))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&stars, "stars", false, "list the star polytopes instead")

	return cmd
}
