// Package pipeline implements the document transformations of a bundling pass.
//
// This package handles two stages:
//   - Asset inlining: every reference matching an asset's pattern is replaced
//     by a data URI holding the asset bytes
//   - Reference audit: the bundled document is parsed to list local files it
//     still depends on
//
// Reading the input, loading asset bytes, and writing the output are handled
// by the root htmlbundle package; stages here work on strings only.
package pipeline
