// Package textutil provides small text sanitization helpers shared by the
// download and export layers.
package textutil
