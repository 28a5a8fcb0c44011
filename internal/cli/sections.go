package cli

import (
	"fmt"

	"omr-workbench/internal/sheet"
	"omr-workbench/internal/staffedit"

	"github.com/spf13/cobra"
)

func newSectionsCmd(app *App) *cobra.Command {
	var staffID int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sections <sheet.json>",
		Short: "List the sections around each staff",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := loadSheet(app, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "sheet %q: %dx%d, %d sections, interline %d, max line thickness %d\n",
				sh.Name, sh.Width(), sh.Height(), sh.Index.Len(), sh.Scale.Interline, sh.Scale.MaxLineThickness)

			staffs := sh.Staffs
			if staffID != 0 {
				st, err := sh.Staff(staffID)
				if err != nil {
					return notFoundError(err, fmt.Sprintf("Staff %d is not on sheet %s", staffID, args[0]))
				}
				staffs = []*sheet.Staff{st}
			}

			for _, st := range staffs {
				candidates := staffedit.CandidateSections(sh, st)
				b := st.Bounds()
				fmt.Fprintf(out, "staff %d: %d lines, x %d..%d, box %dx%d at (%d,%d), %d sections\n",
					st.ID, st.LineCount(), st.Left(), st.Right(), b.Width, b.Height, b.X, b.Y, len(candidates))
				if !verbose {
					continue
				}
				for _, s := range candidates {
					fmt.Fprintf(out, "  %s weight %d\n", s, s.Weight())
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&staffID, "staff", 0, "Only this staff (default: all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "List every section")
	return cmd
}
