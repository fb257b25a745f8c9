// main is the entry point for the covidstore CLI.
package main

import (
	"os"

	"github.com/covidboard/covidstore/cmd"
	"github.com/covidboard/covidstore/internal/contract"
	"github.com/covidboard/covidstore/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	if err := cmd.Execute(); err != nil {
		contract.LogWarning(err.Error())
		os.Exit(1)
	}
}
