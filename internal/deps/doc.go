// Package deps checks the external tools scribe shells out to.
package deps
