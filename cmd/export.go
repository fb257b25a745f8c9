package cmd

import (
	"fmt"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/internal/parquet"
	"github.com/spf13/cobra"
)

// exportCmd exports the dataset to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export [location...]",
	Short: "Export daily series to a Parquet file.",
	Long: `Export the derived daily series to a Parquet file, one row per
(location, date) pair. With no locations, the full dataset is exported.

The output path is taken from --output-file.

Examples:
  # Export everything
  covidstore export --output-file covid.parquet

  # Export a subset
  covidstore export Italy "Canada (Ontario)" --output-file subset.parquet`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, args []string) error {
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet export")
		}

		store, err := loadStore(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load data store", err)
		}
		series, err := store.GetDataByLocations(args)
		if err != nil {
			contract.LogFatal("Cannot look up series", err)
		}

		rows := parquet.BuildSeriesRows(series)
		if err := parquet.WriteSeriesParquet(rows, cfg.OutputFile); err != nil {
			contract.LogFatal("Cannot write parquet file", err)
		}
		fmt.Printf("Exported %d rows to %s\n", len(rows), cfg.OutputFile)
		return nil
	},
}
