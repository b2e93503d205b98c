// Package output renders decoded Wordnik responses for the terminal.
//
// Results are printed as a table, JSON or YAML. Query projects a result with
// a jq expression before it is rendered.
package output
