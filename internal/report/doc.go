// Package report assembles gap-analysis reports from the library store.
//
// Stamps are grouped into series by catalog system and prefix; each series
// feeds its owned and wanted numeric values to the gap analyzer. The package
// also owns the display-only truncation of long range lists, keeping that
// policy out of the analyzer itself.
package report
