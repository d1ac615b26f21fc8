package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marchenko/lexrec/internal/store"
	"github.com/marchenko/lexrec/internal/wordlist"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a word list from an .xlsx or .csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sheet, _ := cmd.Flags().GetString("sheet")
		noHeader, _ := cmd.Flags().GetBool("no-header")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg := wordlist.DefaultImportConfig(args[0])
		if sheet != "" {
			cfg.SheetName = sheet
		}
		cfg.SkipHeader = !noHeader

		res, err := wordlist.ImportWords(cmd.Context(), cfg, st)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d of %d rows\n", res.Imported, res.Processed)
		for _, e := range res.Errors {
			fmt.Printf("  skipped: %s\n", e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "", "Sheet name for .xlsx files (default Sheet1)")
	importCmd.Flags().Bool("no-header", false, "Treat the first row as data")
}
