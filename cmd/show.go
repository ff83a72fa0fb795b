package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"velorabook/pkg/config"
	"velorabook/pkg/viewer"
)

var (
	showOwner   string
	showChapter int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the owner's current book",
	Long: `Print the cover and contents of the owner's current book, or one chapter
with --chapter. Without a stored book the demo book is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		setLogLevel(cfg.Log.Level)

		st, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		v := viewer.Open(cmd.Context(), st, showOwner)
		out := cmd.OutOrStdout()
		if showChapter > 0 {
			printChapter(out, v.GoTo(showChapter-1))
			return nil
		}
		printCover(out, v.ShowCover())
		printContents(out, v.ShowContents())
		return nil
	},
}

func init() {
	showCmd.Flags().StringVar(&showOwner, "owner", "local", "owner whose book is shown")
	showCmd.Flags().IntVarP(&showChapter, "chapter", "c", 0, "print chapter n (1-based)")
}

func printCover(w io.Writer, s viewer.State) {
	fmt.Fprintf(w, "%s\n%d глав • ~%d мин чтения\n", s.Book.Title, s.Book.TotalChapters, s.Book.EstimatedReadTime)
	if s.Placeholder {
		fmt.Fprintln(w, "(демо-книга)")
	}
	fmt.Fprintln(w)
}

func printContents(w io.Writer, s viewer.State) {
	fmt.Fprintln(w, "Содержание")
	for _, ch := range s.Book.Chapters {
		fmt.Fprintf(w, "  %d. %s\n", ch.Number, ch.Title)
	}
}

func printChapter(w io.Writer, s viewer.State) {
	ch := s.Current
	fmt.Fprintf(w, "Глава %d • %d из %d\n%s\n\n%s\n", ch.Number, s.Chapter+1, s.Book.TotalChapters, ch.Title, ch.Content)
}
