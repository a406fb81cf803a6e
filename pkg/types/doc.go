// Package types defines the data structures shared across pokedex: the
// Pokemon record decoded from the API and its derived display values.
package types
