package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cellprof/segment"
	"github.com/katalvlaran/cellprof/segmented"
)

// editCmd finishes cmd as a one-document edit: load args[0], apply fn and
// emit the result.
func (a *app) editCmd(cmd *cobra.Command, fn func(sp *segmented.Profile) (*segmented.Profile, error)) *cobra.Command {
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(c *cobra.Command, args []string) error {
		sp, err := a.load(c, args[0])
		if err != nil {
			return err
		}
		res, err := fn(sp)
		if err != nil {
			return err
		}

		return a.emit(c, res)
	}

	return cmd
}

// newID mints a segment id when the caller did not supply one.
func newID(id string) segment.ID {
	if id == "" {
		return segment.ID(uuid.NewString())
	}

	return segment.ID(id)
}

func (a *app) startFromCmd() *cobra.Command {
	var index int
	cmd := a.editCmd(&cobra.Command{
		Use:   "startfrom <file|->",
		Short: "Rotate the profile so that --index becomes index 0",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		a.log.Debug("rotating profile", "index", index)
		return sp.StartFrom(index), nil
	})
	cmd.Flags().IntVar(&index, "index", 0, "index that becomes the new start")
	_ = cmd.MarkFlagRequired("index")

	return cmd
}

func (a *app) offsetCmd() *cobra.Command {
	var by int
	cmd := a.editCmd(&cobra.Command{
		Use:   "offset <file|->",
		Short: "Move every segment by --by positions, leaving the samples in place",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		return sp.OffsetSegments(by), nil
	})
	cmd.Flags().IntVar(&by, "by", 0, "positions to move the segments")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func (a *app) reverseCmd() *cobra.Command {
	return a.editCmd(&cobra.Command{
		Use:   "reverse <file|->",
		Short: "Reverse the sample order, mirroring every segment",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		return sp.Reverse(), nil
	})
}

func (a *app) interpolateCmd() *cobra.Command {
	var length int
	cmd := a.editCmd(&cobra.Command{
		Use:   "interpolate <file|->",
		Short: "Resample the profile to --length samples, scaling the segments",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		a.log.Debug("interpolating", "from", sp.Size(), "to", length)
		return sp.Interpolate(length)
	})
	cmd.Flags().IntVar(&length, "length", 0, "target number of samples")
	_ = cmd.MarkFlagRequired("length")

	return cmd
}

func (a *app) mergeCmd() *cobra.Command {
	var first, second, id string
	cmd := a.editCmd(&cobra.Command{
		Use:   "merge <file|->",
		Short: "Merge two neighbouring segments into one",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		merged := newID(id)
		if err := sp.MergeSegments(segment.ID(first), segment.ID(second), merged); err != nil {
			return nil, err
		}
		a.log.Info("merged segments", "first", first, "second", second, "id", merged)

		return sp, nil
	})
	cmd.Flags().StringVar(&first, "first", "", "id of the first segment")
	cmd.Flags().StringVar(&second, "second", "", "id of the second segment")
	cmd.Flags().StringVar(&id, "id", "", "id of the merged segment (default: a new UUID)")
	_ = cmd.MarkFlagRequired("first")
	_ = cmd.MarkFlagRequired("second")

	return cmd
}

func (a *app) unmergeCmd() *cobra.Command {
	var id string
	cmd := a.editCmd(&cobra.Command{
		Use:   "unmerge <file|->",
		Short: "Replace a merged segment with the segments it was merged from",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		if err := sp.UnmergeSegment(segment.ID(id)); err != nil {
			return nil, err
		}
		a.log.Info("unmerged segment", "id", id, "segments", sp.SegmentCount())

		return sp, nil
	})
	cmd.Flags().StringVar(&id, "id", "", "id of the merged segment")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (a *app) splitCmd() *cobra.Command {
	var (
		id  string
		at  int
		ids []string
	)
	cmd := a.editCmd(&cobra.Command{
		Use:   "split <file|->",
		Short: "Split a segment in two at index --at",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		halves := ids
		switch len(halves) {
		case 0:
			halves = []string{"", ""}
		case 2:
		default:
			return nil, fmt.Errorf("--ids needs two ids, got %d", len(halves))
		}
		first, second := newID(halves[0]), newID(halves[1])
		if err := sp.SplitSegment(segment.ID(id), at, first, second); err != nil {
			return nil, err
		}
		a.log.Info("split segment", "id", id, "at", at, "first", first, "second", second)

		return sp, nil
	})
	cmd.Flags().StringVar(&id, "id", "", "id of the segment to split")
	cmd.Flags().IntVar(&at, "at", 0, "index to split at")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "ids of the two halves (default: two new UUIDs)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}

func (a *app) updateCmd() *cobra.Command {
	var (
		id         string
		start, end int
	)
	cmd := a.editCmd(&cobra.Command{
		Use:   "update <file|->",
		Short: "Move the boundaries of a segment, dragging its neighbours along",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		if err := sp.Update(segment.ID(id), start, end); err != nil {
			return nil, err
		}
		a.log.Info("updated segment", "id", id, "start", start, "end", end)

		return sp, nil
	})
	cmd.Flags().StringVar(&id, "id", "", "id of the segment to move")
	cmd.Flags().IntVar(&start, "start", 0, "new start index")
	cmd.Flags().IntVar(&end, "end", 0, "new end index")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *app) lockCmd() *cobra.Command {
	var (
		id          string
		all, unlock bool
	)
	cmd := a.editCmd(&cobra.Command{
		Use:   "lock <file|->",
		Short: "Lock (or with --unlock, unlock) a segment or, with --all, every segment",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		switch {
		case all:
			sp.SetAllLocked(!unlock)
		case id == "":
			return nil, errors.New("lock: one of --id or --all is required")
		default:
			if err := sp.SetLocked(segment.ID(id), !unlock); err != nil {
				return nil, err
			}
		}

		return sp, nil
	})
	cmd.Flags().StringVar(&id, "id", "", "id of the segment")
	cmd.Flags().BoolVar(&all, "all", false, "apply to every segment")
	cmd.Flags().BoolVar(&unlock, "unlock", false, "unlock instead of lock")
	cmd.MarkFlagsMutuallyExclusive("id", "all")

	return cmd
}

func (a *app) clearCmd() *cobra.Command {
	return a.editCmd(&cobra.Command{
		Use:   "clear <file|->",
		Short: "Drop the partition, leaving one whole-ring segment",
	}, func(sp *segmented.Profile) (*segmented.Profile, error) {
		if err := sp.ClearSegments(); err != nil {
			return nil, err
		}

		return sp, nil
	})
}

func (a *app) frankenCmd() *cobra.Command {
	var template string
	cmd := &cobra.Command{
		Use:   "franken <file|->",
		Short: "Resample each segment to the matching segment of --template",
	}
	a.editCmd(cmd, func(sp *segmented.Profile) (*segmented.Profile, error) {
		tmpl, err := a.load(cmd, template)
		if err != nil {
			return nil, err
		}
		a.log.Debug("franken-normalising", "size", sp.Size(), "template", tmpl.Size())

		return sp.FrankenNormalise(tmpl)
	})
	cmd.Flags().StringVar(&template, "template", "", "document whose partition sets the segment lengths")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}
