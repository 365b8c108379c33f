package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/report"
	"github.com/katalvlaran/cellprof/codec"
	"github.com/katalvlaran/cellprof/dtw"
)

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file|->",
		Short: "Print the partition of a profile as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			p := sp.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "%d samples, min %.6g, max %.6g\n", p.Size(), p.Min(), p.Max())
			report.Segments(cmd.OutOrStdout(), sp)

			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|->...",
		Short: "Check documents against the schema and the partition rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				data, f, err := a.readDocument(cmd, path)
				if err == nil {
					_, err = codec.Unmarshal(data, f)
				}
				if err != nil {
					failed++
					report.Failure(cmd.OutOrStdout(), "%s: %v", path, err)
					continue
				}
				report.Success(cmd.OutOrStdout(), "%s is valid", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}

			return nil
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	var (
		window  int
		penalty float64
	)
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Align b onto a and report the rotation and DTW distance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sa, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			sb, err := a.load(cmd, args[1])
			if err != nil {
				return err
			}

			pa, pb := sa.Profile(), sb.Profile()
			if n := a.cfg.Compare.Length; n > 0 {
				if pa, err = pa.Interpolate(n); err != nil {
					return err
				}
				if pb, err = pb.Interpolate(n); err != nil {
					return err
				}
			}

			opts := a.cfg.DTWOptions()
			if cmd.Flags().Changed("window") {
				opts = append(opts, dtw.WithWindow(window))
			}
			if cmd.Flags().Changed("slope-penalty") {
				opts = append(opts, dtw.WithSlopePenalty(penalty))
			}

			cmp, err := dtw.CompareProfiles(pa, pb, opts...)
			if err != nil {
				return err
			}
			a.log.Debug("compared profiles", "a", args[0], "b", args[1], "offset", cmp.Offset, "distance", cmp.Distance)
			report.Comparison(cmd.OutOrStdout(), cmp)

			return nil
		},
	}
	cmd.Flags().IntVar(&window, "window", 0, "Sakoe-Chiba band width (overrides dtw.window)")
	cmd.Flags().Float64Var(&penalty, "slope-penalty", 0, "cost of a non-diagonal step (overrides dtw.slope_penalty)")

	return cmd
}
