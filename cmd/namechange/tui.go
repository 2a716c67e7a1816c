package main

import (
	"github.com/handiism/namechange/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [DIR] [FORMAT...]",
	Short: "Review and apply renames in an interactive terminal UI",
	Long: `Compute the new names for DIR and review them one at a time.
Without DIR the UI asks for a directory. Rename flags are the same as for
the rename command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		var dir string
		var format []string
		if len(args) > 0 {
			dir, format = args[0], args[1:]
		}
		if err := applyRenameFlags(cmd, settings, format); err != nil {
			return err
		}

		return tui.Run(settings, dir)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addRenameFlags(tuiCmd)
}
