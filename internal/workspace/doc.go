// Package workspace manages the scratch directory used during a run: a file
// lock against concurrent runs and cleanup of stale temporary files.
package workspace
