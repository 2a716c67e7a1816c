package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/handiism/namechange/internal/batch"
	"github.com/handiism/namechange/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename DIR [FORMAT...]",
	Short: "Rename the MP3 files in a directory",
	Long: `Rename every MP3 file in DIR from the fields listed in FORMAT.

FORMAT lists the fields of the current names in order. Without FORMAT the
format from the config file is used (artist number title by default).
Each rename is confirmed on the terminal unless --yes is given.

Examples:
  namechange rename ./album artist number title
  namechange rename ./album n "#" t --lower --underscore
  namechange rename ./album "#" t --artist "Bob Dylan"
  namechange rename ./album artist number title --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		if err := applyRenameFlags(cmd, settings, args[1:]); err != nil {
			return err
		}
		dir := args[0]
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}

		manager, err := batch.NewManager(settings, logProgress)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		plans, err := manager.Plan(ctx, dir)
		if err != nil {
			return err
		}

		if settings.DryRun {
			printPlans(cmd.OutOrStdout(), plans)
			return nil
		}

		var confirm batch.ConfirmFunc
		if !settings.AssumeYes {
			confirm = newPrompt(cmd.InOrStdin(), cmd.OutOrStdout()).Confirm
		}

		stats, err := manager.Apply(ctx, dir, plans, confirm)
		if err != nil {
			return err
		}
		logrus.Infof("Renamed %d, declined %d, skipped %d, failed %d",
			stats.Renamed, stats.Declined, stats.Skipped, stats.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	addRenameFlags(renameCmd)
}

// addRenameFlags registers the flags read by applyRenameFlags.
func addRenameFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("artist", "n", "", "artist name written when FORMAT has no artist field")
	cmd.Flags().BoolP("underscore", "u", false, "turn underscores into spaces")
	cmd.Flags().BoolP("lower", "l", false, "lowercase words before capitalizing them")
	cmd.Flags().StringP("sep", "s", "", "delimiter characters between fields (default \"-\")")
	cmd.Flags().StringSlice("new-format", nil, "output format (default artist,separator,number,separator,title)")
	cmd.Flags().BoolP("yes", "y", false, "rename without asking")
	cmd.Flags().Bool("dry-run", false, "show the new names without renaming")
	cmd.Flags().Bool("playlist", false, "write a playlist of the renamed files")
	cmd.Flags().String("playlist-format", "", "playlist format: m3u, pls, wpl or zpl")
}

// applyRenameFlags copies explicitly set flags and FORMAT tokens over the
// loaded settings.
func applyRenameFlags(cmd *cobra.Command, settings *config.Settings, format []string) error {
	flags := cmd.Flags()

	if len(format) > 0 {
		settings.Format = format
	}
	if flags.Changed("artist") {
		settings.Artist, _ = flags.GetString("artist")
	}
	if flags.Changed("underscore") {
		settings.RemoveUnderscore, _ = flags.GetBool("underscore")
	}
	if flags.Changed("lower") {
		settings.MakeLower, _ = flags.GetBool("lower")
	}
	if flags.Changed("sep") {
		settings.Separators, _ = flags.GetString("sep")
	}
	if flags.Changed("new-format") {
		settings.NewFormat, _ = flags.GetStringSlice("new-format")
	}
	if flags.Changed("yes") {
		settings.AssumeYes, _ = flags.GetBool("yes")
	}
	if flags.Changed("dry-run") {
		settings.DryRun, _ = flags.GetBool("dry-run")
	}
	if flags.Changed("playlist") {
		settings.CreatePlaylist, _ = flags.GetBool("playlist")
	}
	if flags.Changed("playlist-format") {
		settings.PlaylistFormat, _ = flags.GetString("playlist-format")
	}

	return settings.Validate()
}

func printPlans(w io.Writer, plans []batch.Plan) {
	for _, plan := range plans {
		switch plan.Status {
		case batch.StatusRename:
			fmt.Fprintf(w, "%s -> %s\n", plan.OldName, plan.NewName)
		case batch.StatusFailed:
			fmt.Fprintf(w, "%s: %v\n", plan.OldName, plan.Err)
		}
	}
}

// prompt asks on a line based terminal whether each rename goes ahead.
type prompt struct {
	in  *bufio.Scanner
	out io.Writer
	all bool
}

func newPrompt(in io.Reader, out io.Writer) *prompt {
	return &prompt{in: bufio.NewScanner(in), out: out}
}

// Confirm accepts "y" and "a" (yes to all remaining). Anything else, and
// end of input, keeps the old name.
func (p *prompt) Confirm(plan batch.Plan) bool {
	if p.all {
		return true
	}
	fmt.Fprintln(p.out, plan.NewName)
	fmt.Fprint(p.out, "Change file name? (y/n/a) ")
	if !p.in.Scan() {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
	case "y", "yes":
		return true
	case "a", "all":
		p.all = true
		return true
	}
	return false
}
