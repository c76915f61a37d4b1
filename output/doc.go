// Package output provides styled terminal output for the wren CLI.
//
// Commands print through these helpers instead of fmt so results, errors,
// and progress share one look. Converted identifiers themselves go straight
// to stdout unstyled, keeping `wren convert` pipe-friendly.
package output
