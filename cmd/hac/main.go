// Command hac clusters regions by the decay of their cumulative counts.
//
//	hac features time_series_deaths.csv
//	hac cluster time_series_deaths.csv --format json --clusters 5
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
