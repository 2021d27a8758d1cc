// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/katalvlaran/kirbytri/internal/config"
	"github.com/katalvlaran/kirbytri/internal/logging"
	"github.com/katalvlaran/kirbytri/kirby"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errBatchFailed is returned by batch when at least one diagram failed.
var errBatchFailed = errors.New("some diagrams failed")

type flags struct {
	pd          string
	annotations string
	file        string
	dim3        bool
	graph       bool
	fingerprint bool
	strict      bool
	verbose     int
	noColour    bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:   "1h-testing",
		Short: "Triangulate a Kirby diagram and print its isomorphism signature",
		Long: `1h-testing builds a triangulation of the 4-manifold described by a Kirby
diagram (a PD code plus one annotation per component: "x" for a 1-handle,
an integer framing for a 2-handle) and prints its isomorphism signature.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSingle(cmd, f)
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&f.dim3, "dim3", false, "Triangulate the boundary 3-manifold instead")
	pf.BoolVar(&f.fingerprint, "fingerprint", false, "Also print the BLAKE3 digest of the signature")
	pf.BoolVar(&f.strict, "strict-one-handles", false, "Reject 1-handles with nonzero writhe")
	pf.CountVarP(&f.verbose, "verbose", "v", "Log pipeline stages to stderr (repeat for more)")
	pf.BoolVar(&f.noColour, "no-colour", false, "Disable coloured log output")

	fl := root.Flags()
	fl.StringVar(&f.pd, "pd", "", "PD code, e.g. \"(4 1 3 2) (2 3 1 4)\"")
	fl.StringVar(&f.annotations, "annotations", "", "One annotation per component, e.g. \"x 0\"")
	fl.StringVarP(&f.file, "file", "f", "", "Read the diagram from a YAML file")
	fl.BoolVarP(&f.graph, "graph", "g", false, "Print the coloured graph's gluing list instead")
	root.MarkFlagsMutuallyExclusive("file", "pd")
	root.MarkFlagsMutuallyExclusive("file", "annotations")

	root.AddCommand(newBatchCmd(f))

	return root
}

func newBatchCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <glob>...",
		Short: "Compile every diagram file matching the globs",
		Long: `batch expands each glob (with ** support), loads every matching diagram
file or manifest, and prints one line per diagram:

  name<TAB>signature<TAB>fingerprint`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, f, args)
		},
	}
}

func (f *flags) logger(w io.Writer) zerolog.Logger {
	if f.verbose == 0 {
		return zerolog.Nop()
	}

	return logging.Setup(w, f.noColour, f.verbose)
}

func (f *flags) options(log zerolog.Logger) []kirby.Option {
	opts := []kirby.Option{
		kirby.WithLogger(log),
		kirby.WithStrictOneHandles(f.strict),
	}
	if f.dim3 {
		opts = append(opts, kirby.WithDimension(3))
	}

	return opts
}

func runSingle(cmd *cobra.Command, f *flags) error {
	var (
		d    kirby.Diagram
		opts = f.options(f.logger(cmd.ErrOrStderr()))
		err  error
	)
	switch {
	case f.file != "":
		df, lerr := config.LoadDiagram(f.file)
		if lerr != nil {
			return lerr
		}
		d, err = df.Diagram()
		if !f.dim3 {
			opts = append(opts, df.Options()...)
		}
	case f.pd != "":
		d, err = kirby.ParseDiagram(f.pd, f.annotations)
	default:
		return errors.New("one of --pd or --file is required")
	}
	if err != nil {
		return err
	}

	opts = append(opts, kirby.WithGraphOutput(f.graph))
	res, err := kirby.Compile(cmd.Context(), d, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if f.graph {
		for _, g := range res.Gluings {
			fmt.Fprintf(out, "%d %d %d\n", g.From, g.To, g.Color)
		}
		return nil
	}
	if f.fingerprint {
		fmt.Fprintf(out, "%s\t%s\n", res.Signature, res.Fingerprint())
		return nil
	}
	fmt.Fprintln(out, res.Signature)

	return nil
}

// runBatch compiles every diagram behind the globs, reporting failures on
// stderr and carrying on with the rest.
func runBatch(cmd *cobra.Command, f *flags, patterns []string) error {
	log := f.logger(cmd.ErrOrStderr())
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	var paths []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return fmt.Errorf("glob %q: %w", p, err)
		}
		if len(matches) == 0 {
			fmt.Fprintf(errOut, "%s: no matches\n", p)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}

	failed := 0
	for _, path := range paths {
		entries, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(errOut, "%s: %v\n", path, err)
			failed++
			continue
		}
		for _, e := range entries {
			d, err := e.Diagram()
			if err != nil {
				fmt.Fprintf(errOut, "%s: %v\n", path, err)
				failed++
				continue
			}
			opts := f.options(log.With().Str("diagram", e.Name).Logger())
			if !f.dim3 {
				opts = append(opts, e.Options()...)
			}
			res, err := kirby.Compile(cmd.Context(), d, opts...)
			if err != nil {
				fmt.Fprintf(errOut, "%s: %s: %v\n", path, e.Name, err)
				failed++
				continue
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", e.Name, res.Signature, res.Fingerprint())
		}
	}
	switch {
	case len(paths) == 0:
		return fmt.Errorf("no diagram files: %w", errBatchFailed)
	case failed > 0:
		return fmt.Errorf("%d failures: %w", failed, errBatchFailed)
	}

	return nil
}
