package main

import (
	"fmt"
	"os"

	"github.com/handiism/namechange/internal/batch"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag DIR",
	Short: "Write ID3 tags derived from file and directory names",
	Long: `Write artist, album, track number and title tags to every MP3 file
in DIR. The album is the directory name. Names are split on the --sep
characters into artist, number and title; with --itunes the artist is the
parent directory name and names look like "01 Title.mp3".

Examples:
  namechange tag ./album
  namechange tag ./album --genre Rock --comment "ripped 2004"
  namechange tag "./Bob Dylan/Blonde On Blonde" --itunes --cover`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("itunes") {
			settings.ITunes, _ = flags.GetBool("itunes")
		}
		if flags.Changed("sep") {
			settings.TagSeparators, _ = flags.GetString("sep")
		}
		if flags.Changed("genre") {
			settings.Genre, _ = flags.GetString("genre")
		}
		if flags.Changed("comment") {
			settings.Comment, _ = flags.GetString("comment")
		}
		if flags.Changed("cover") {
			settings.EmbedCover, _ = flags.GetBool("cover")
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

		stats, err := manager.Tag(ctx, dir)
		if err != nil {
			return err
		}
		logrus.Infof("Tagged %d, skipped %d, failed %d", stats.Tagged, stats.Skipped, stats.Failed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().Bool("itunes", false, "iTunes layout: artist from the parent directory, \"NN Title.mp3\" names")
	tagCmd.Flags().StringP("sep", "s", "", "delimiter characters between fields (default \"-\")")
	tagCmd.Flags().StringP("genre", "g", "", "genre written to every file")
	tagCmd.Flags().StringP("comment", "c", "", "comment written to every file")
	tagCmd.Flags().Bool("cover", false, "embed the album cover image found in DIR")
}
