package cmd

import (
	"time"

	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/internal/outwriter"
	"github.com/spf13/cobra"
)

// locationsCmd lists every known location in the dataset.
var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List every known location in the dataset.",
	Long: `List every location in the dataset, sorted by name.

A location is a country, a country's province or state, or a US county,
named the way the upstream dataset nests them:
  Italy
  Canada (Ontario)
  US (King, Washington)

Examples:
  # Show the first 50 locations
  covidstore locations

  # Export the full index as CSV
  covidstore locations --output csv --output-file locations.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		start := time.Now()
		store, err := loadStore(rootCtx)
		if err != nil {
			contract.LogFatal("Cannot load data store", err)
		}
		locations, err := store.Locations()
		if err != nil {
			contract.LogFatal("Cannot list locations", err)
		}
		if err := outwriter.NewOutWriter().WriteLocations(locations, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Cannot write locations", err)
		}
	},
}
