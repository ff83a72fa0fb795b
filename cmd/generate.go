package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"velorabook/pkg/booktype"
	"velorabook/pkg/config"
	"velorabook/pkg/utils"
)

var (
	genType    string
	genAnswers string
	genOwner   string
	genJSON    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a book from an answers file",
	Long: `Generate a book once and store it as the owner's current book.

The answers file is a JSON object of question id to answer, for example
{"friend_name": "Петя", "friendship_beginning": "..."}.

Examples:
  velorabook generate --type friendship --answers answers.json
  velorabook generate --type romantic --answers answers.json --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if _, ok := booktype.Lookup(booktype.Parse(genType)); !ok {
			log.Warn("unknown book type, using the generic prompt", "type", genType)
		}
		answers := map[string]string{}
		if genAnswers != "" {
			if !utils.Exists(genAnswers) {
				return fmt.Errorf("answers file %s not found", genAnswers)
			}
			var err error
			if answers, err = utils.Load[map[string]string](genAnswers); err != nil {
				return fmt.Errorf("read answers: %w", err)
			}
		}

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		setLogLevel(cfg.Log.Level)

		pipeline, err := newPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		st, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := pipeline.Generate(ctx, genType, answers)
		if err != nil {
			return err
		}
		if err := st.Save(ctx, genOwner, res.Book); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if genJSON {
			fmt.Fprintln(out, utils.PrettyJSON(res))
			return nil
		}
		fmt.Fprintf(out, "%s\n%d глав, ~%d мин, %d слов\n", res.Book.Title, res.Book.TotalChapters, res.Book.EstimatedReadTime, res.Metadata.WordCount)
		fmt.Fprintf(out, "Сохранено для %q. Откройте: velorabook show --owner %s\n", genOwner, genOwner)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genType, "type", "t", "romantic", "book type: romantic, family or friendship")
	generateCmd.Flags().StringVarP(&genAnswers, "answers", "a", "", "JSON file with answers")
	generateCmd.Flags().StringVar(&genOwner, "owner", "local", "owner the book is stored under")
	generateCmd.Flags().BoolVar(&genJSON, "json", false, "print the full result as JSON")
}
