package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"harvest/internal/classify"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <filename>...",
		Short: "Show how filenames would be interpreted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			classifier := cfg.Classifier()
			caser := cases.Title(language.English)

			rows := make([][]string, 0, len(args))
			for _, name := range args {
				rec, err := classifier.Classify(name)
				if err != nil {
					rows = append(rows, []string{name, "unrecognized", "", ""})
					continue
				}
				rows = append(rows, classifyRow(name, rec, caser))
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"File", "Kind", "Title", "Detail"}, rows))
			return nil
		},
	}
}

func classifyRow(name string, rec *classify.Record, caser cases.Caser) []string {
	switch rec.Kind {
	case classify.KindEpisode:
		detail := fmt.Sprintf("Season %d, Episode %d", rec.Season, rec.Episode)
		return []string{name, rec.Kind.String(), caser.String(rec.Series), detail}
	case classify.KindMovie:
		detail := ""
		if rec.Year != 0 {
			detail = fmt.Sprintf("%d", rec.Year)
		}
		return []string{name, rec.Kind.String(), caser.String(rec.Title), detail}
	default:
		return []string{name, rec.Kind.String(), "", ""}
	}
}
