// Command impactctl runs impact simulations from the command line and
// manages the object catalog.
//
// Usage:
//
//	impactctl analyze --diameter-min 0.325 --diameter-max 0.375 --velocity 7.42 --miss-distance 31000
//	impactctl analyze --file scenarios/apophis.yaml --seed 2029
//	impactctl catalog seed
//	impactctl catalog list
//	impactctl catalog show 99942
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
