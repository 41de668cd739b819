// Package language normalizes the language identifiers users hand to the
// transcription engine. The engine expects ISO 639-1 codes; users type
// 3-letter codes and full names. Display names back the history listing.
package language
