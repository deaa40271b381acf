package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/classify"
	"github.com/nowhereuri/smartMoneyPlanner/internal/textparse"
)

func newPasteCommand(opts *globalOptions) *cobra.Command {
	var format string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "paste [text]",
		Short: "Parse pasted receipt or chat text into a transaction",
		Long: `Parse pasted text into a draft transaction, auto-classify it and add
it to the ledger. Text is read from the argument, or from stdin when
no argument is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args)
			if err != nil {
				return err
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("no text to parse")
			}

			parser := textparse.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (want receipt or kakao)", format)
			}

			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			draft := parser.Parse(text, time.Now())

			if dryRun {
				tables, err := a.ledger.Tables()
				if err != nil {
					return err
				}
				res := classify.Match(draft.Description, tables.All(), tables.Subcategories())
				if res.Category != nil {
					draft.Category = res.Category.ID
					if res.Subcategory != nil {
						draft.Subcategory = res.Subcategory.ID
					}
				}
				fmt.Println("Draft (not saved):")
				printTransaction(draft)
				return nil
			}

			added, err := a.ledger.Add(draft)
			if err != nil {
				return err
			}
			printTransaction(added)
			return a.backup("paste: " + added.ID)
		},
	}

	cmd.Flags().StringVar(&format, "format", "receipt", "text format: receipt or kakao")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse and classify without saving")

	return cmd
}

func readText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
