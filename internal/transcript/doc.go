// Package transcript defines the transcription result model shared by the
// rendering and export layers.
//
// A Result is produced once per audio source by the engine client and is
// treated as an immutable snapshot afterwards: renderers read segments and
// words but never mutate them, so independent exports can run against the
// same Result without coordination.
package transcript
