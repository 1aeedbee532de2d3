// Package sample bundles the dataset shown at startup, before the user
// imports a file of their own.
package sample

import _ "embed"

//go:embed teams.csv
var teamsCSV []byte

// TeamsCSV returns the bundled 32-team season dataset.
func TeamsCSV() []byte {
	return teamsCSV
}
