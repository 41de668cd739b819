// Package services defines shared utilities consumed by the pipeline and the
// external tool integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper so failures from external
//     tools surface with consistent classification and context.
package services
