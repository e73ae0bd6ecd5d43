// ABOUTME: Dataset command group: validate, stats, and SQLite import
// ABOUTME: Operates on the scraped CSV catalog or its SQLite form
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eagles/winechat/internal/catalog"
)

// NewDatasetCmd creates the dataset command group
func NewDatasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect and convert the wine dataset",
		Long: `Inspect and convert the wine dataset.

The assistant reads the scraped catalog either as CSV or as a SQLite
database created with 'dataset import'.`,
	}

	cmd.AddCommand(newDatasetValidateCmd())
	cmd.AddCommand(newDatasetStatsCmd())
	cmd.AddCommand(newDatasetImportCmd())

	return cmd
}

func newDatasetValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset schema and row quality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			st := cat.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Dataset OK: %d rows\n", st.Rows)
			fmt.Fprintf(out, "Rows with usable alcohol level: %d\n", st.MatchableABV)
			fmt.Fprintf(out, "Rows with usable price: %d\n", st.PricedRows)
			if st.MatchableABV < st.Rows && !quiet {
				fmt.Fprintf(out, "Note: %d rows have missing or implausible ABV and will never match an alcohol filter\n", st.Rows-st.MatchableABV)
			}
			return nil
		},
	}
}

func newDatasetStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog breakdowns by color and country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			st := cat.Stats()

			if outputFormat == "json" {
				jsonData, err := json.MarshalIndent(st, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling JSON: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Rows\t%d\n", st.Rows)
			fmt.Fprintf(w, "Usable ABV\t%d\n", st.MatchableABV)
			fmt.Fprintf(w, "Usable price\t%d\n", st.PricedRows)
			fmt.Fprintln(w, "\nColor\tRows")
			for _, color := range sortedKeys(st.ByColor) {
				fmt.Fprintf(w, "%s\t%d\n", color, st.ByColor[color])
			}
			fmt.Fprintln(w, "\nCountry\tRows")
			for _, country := range sortedKeys(st.ByCountry) {
				fmt.Fprintf(w, "%s\t%d\n", country, st.ByCountry[country])
			}
			return w.Flush()
		},
	}
}

func newDatasetImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv-path> <db-path>",
		Short: "Convert a CSV dataset into a SQLite catalog",
		Long: `Convert a CSV dataset into a SQLite catalog.

The resulting database can be passed anywhere a dataset path is
accepted; the loader picks the source by file extension.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := catalog.ImportCSV(args[0], args[1])
			if err != nil {
				return fmt.Errorf("importing dataset: %w", err)
			}
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records into %s\n", n, args[1])
			}
			return nil
		},
	}
}
