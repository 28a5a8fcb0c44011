package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"omr-workbench/internal/app"
	"omr-workbench/internal/lag"
	"omr-workbench/internal/staffedit"
	"omr-workbench/ui/prefs"

	"github.com/spf13/cobra"
)

// handleMove is one --move argument: drag handle Index by (DX, DY).
type handleMove struct {
	Index  int
	DX, DY float64
}

// parseMove parses "i:dx,dy".
func parseMove(s string) (handleMove, error) {
	idx, delta, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return handleMove{}, fmt.Errorf("invalid move %q: want i:dx,dy", s)
	}
	sx, sy, ok := strings.Cut(delta, ",")
	if !ok {
		return handleMove{}, fmt.Errorf("invalid move %q: want i:dx,dy", s)
	}

	var m handleMove
	var err error
	if m.Index, err = strconv.Atoi(idx); err != nil || m.Index < 0 {
		return handleMove{}, fmt.Errorf("invalid handle index in %q", s)
	}
	if m.DX, err = strconv.ParseFloat(sx, 64); err != nil {
		return handleMove{}, fmt.Errorf("invalid dx in %q: %w", s, err)
	}
	if m.DY, err = strconv.ParseFloat(sy, 64); err != nil {
		return handleMove{}, fmt.Errorf("invalid dy in %q: %w", s, err)
	}
	return m, nil
}

func parseMode(s string) (staffedit.Mode, error) {
	switch strings.ToLower(s) {
	case "global", "":
		return staffedit.ModeGlobal, nil
	case "lines":
		return staffedit.ModeLines, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (global|lines)", s)
	}
}

func newEditCmd(a *App) *cobra.Command {
	var (
		staffID     int
		modeName    string
		moves       []string
		ratio       float64
		undo        bool
		overlayPath string
	)

	cmd := &cobra.Command{
		Use:   "edit [sheet.json]",
		Short: "Move staff handles, commit, and report the sections absorbed",
		Long: strings.TrimSpace(`
Runs one staff edit: the handles given with --move are dragged, the edit is
finished, and the sections taken out of the sheet are listed.

In global mode the handles are the mid line points (ends move freely, inner
points vertically) and the other lines follow rigidly. In lines mode every
point of every line has a vertical handle, top line first.

Without a sheet argument the last edited sheet is used.`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := parseMode(modeName)
			if err != nil {
				return usageError(err, "Mode must be global or lines")
			}
			parsed := make([]handleMove, 0, len(moves))
			for _, s := range moves {
				m, err := parseMove(s)
				if err != nil {
					return usageError(err, "Moves are written handle:dx,dy, for example 3:0,-2")
				}
				parsed = append(parsed, m)
			}

			path := a.prefs.String(prefs.KeyLastSheet)
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return usageError(errors.New("no sheet given and no previous sheet recorded"),
					"Pass the sheet description file to edit")
			}

			sh, err := loadSheet(a, path)
			if err != nil {
				return err
			}

			params := a.prefs.EditorParams()
			if cmd.Flags().Changed("ratio") {
				params = params.WithMinWidthHeightRatio(ratio)
			}

			session := app.NewState(params)
			session.SetSheet(path, sh)

			ed, err := session.BeginStaffEdit(staffID, mode)
			if errors.Is(err, app.ErrUnknownStaff) {
				return notFoundError(err, fmt.Sprintf("Staff %d is not on sheet %s", staffID, path))
			}
			if err != nil {
				return err
			}
			for _, m := range parsed {
				if _, err := session.DragHandle(m.Index, m.DX, m.DY); err != nil {
					_ = session.CancelEdit()
					return usageError(err, fmt.Sprintf("Staff %d has %d handles in %s mode", staffID, len(ed.Handles()), mode))
				}
			}
			if err := session.CommitEdit(); err != nil {
				return err
			}
			if overlayPath != "" {
				if err := writeOverlay(overlayPath, sh, session); err != nil {
					_ = session.CancelEdit()
					return err
				}
			}
			if err := session.FinishEdit(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !ed.HasMoved() {
				fmt.Fprintf(out, "staff %d: nothing moved, edit discarded\n", staffID)
				return nil
			}
			printRemoved(out, staffID, mode, ed.RemovedSections())
			fmt.Fprintf(out, "sheet now has %d sections\n", sh.Index.Len())

			if undo {
				if _, err := session.Undo(); err != nil {
					return err
				}
				fmt.Fprintf(out, "undone: %d sections restored, sheet has %d sections\n",
					len(ed.RemovedSections()), sh.Index.Len())
			}

			a.prefs.SetString(prefs.KeyLastSheet, path)
			if err := a.prefs.Save(); err != nil {
				cmd.PrintErrf("warning: %v\n", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&staffID, "staff", 1, "Staff ID")
	cmd.Flags().StringVar(&modeName, "mode", "global", "Edit mode (global|lines)")
	cmd.Flags().StringArrayVar(&moves, "move", nil, "Handle drag i:dx,dy (repeatable, applied in order)")
	cmd.Flags().Float64Var(&ratio, "ratio", staffedit.DefaultParams().MinWidthHeightRatio, "Minimum width/height ratio of absorbed sections")
	cmd.Flags().BoolVar(&undo, "undo", false, "Undo the edit after reporting it")
	cmd.Flags().StringVar(&overlayPath, "overlay", "", "Write a PNG of the committed edit")
	return cmd
}

func printRemoved(out io.Writer, staffID int, mode staffedit.Mode, removed []*lag.Section) {
	fmt.Fprintf(out, "staff %d: %s edit committed, %d sections removed\n", staffID, mode, len(removed))
	for _, s := range removed {
		fmt.Fprintf(out, "  %s\n", s)
	}
}
