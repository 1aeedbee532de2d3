package core

import "errors"

var (
	// ErrBadFormat indicates the file could not be parsed as delimited tabular text.
	ErrBadFormat = errors.New("file is not valid delimited text")
	// ErrNoTeamColumn indicates the header row has no column matching "Team".
	ErrNoTeamColumn = errors.New("no team name column in header")
	// ErrEmptyDataset indicates the file parsed but produced zero usable rows.
	ErrEmptyDataset = errors.New("no usable team rows")
	// ErrTeamNotFound indicates a lookup for a name the dataset does not hold.
	// The selection list is built from the same dataset, so hitting this is a bug.
	ErrTeamNotFound = errors.New("team not found in dataset")
)
