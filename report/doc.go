// Package report writes a finished engine's matrix, residue, and
// damage total as CSV, stamping each report with a fresh run
// identifier from github.com/google/uuid so batch runs (the cmd/
// rainflow test-runner collaborator) can correlate a report file back
// to the scenario run that produced it.
package report
