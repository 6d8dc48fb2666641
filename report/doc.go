// Package report handles the input/output documents around a bench run:
// JSON instance files describing a labeled distance matrix with its
// endpoint constraint and trial budget, a JSON run document carrying the
// three result tables together with host metadata, and CSV emission of the
// tables for spreadsheet/statistics tooling.
package report
