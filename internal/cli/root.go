// Package cli implements the omr-workbench command line.
package cli

import (
	"image"
	"strings"

	"omr-workbench/ui/prefs"

	"github.com/spf13/cobra"
)

// MaskLoader loads a page scan as a binary mask (ink = non-zero).
type MaskLoader func(path string) (*image.Gray, error)

// App carries the settings shared by all commands.
type App struct {
	PrefsPath string
	LoadMask  MaskLoader

	prefs *prefs.Prefs
}

// NewRootCmd builds the command tree. loadMask is used for sheets that
// reference a page image; it may be nil when only embedded sections are used.
func NewRootCmd(loadMask MaskLoader) *cobra.Command {
	app := &App{LoadMask: loadMask}

	cmd := &cobra.Command{
		Use:           "omr-workbench",
		Short:         "Inspect and correct staff line geometry of scanned sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # List the sections around every staff
  omr-workbench sections page1.json

  # Lower the mid line of staff 2 by 3 pixels and keep it
  omr-workbench edit page1.json --staff 2 --move 0:0,3 --move 1:0,3 --move 2:0,3

  # Same edit on individual lines, rendered to a PNG
  omr-workbench edit page1.json --staff 2 --mode lines --move 12:0,3 --overlay out.png
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path := app.PrefsPath
		if path == "" {
			path = prefs.DefaultPath()
		}
		p, err := prefs.LoadFrom(path)
		if err != nil {
			cmd.PrintErrf("warning: %v\n", err)
		}
		app.prefs = p
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.PrefsPath, "prefs", "", "Preferences file (default: user config dir)")

	cmd.AddCommand(newSectionsCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
