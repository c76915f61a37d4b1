// Package input provides interactive terminal input for the wren CLI:
// yes/no confirmation and a full-screen convention picker.
//
// Callers should gate anything interactive behind Interactive(), so piped
// and scripted invocations fail fast instead of hanging on a prompt.
package input
