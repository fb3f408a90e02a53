// Package assets describes the files that get inlined into a bundled
// document and loads their bytes from disk.
//
// # Specs
//
// A Spec names one asset by its bare filename, the MIME type written into the
// data URI, and a Kind that selects how the document refers to it:
//
//	KindFont   url(MokotoRegular.ttf)   -> url('data:font/ttf;base64,...')
//	KindImage  src="logo_v2.png"        -> src="data:image/png;base64,..."
//
// Patterns are derived from the filename, never supplied by the caller, so a
// spec only ever matches references to its own file.
//
// # Loading
//
//	Loader (interface)
//	    │
//	    └── FilesystemLoader  - reads {basePath}/{filename}
//
// FilesystemLoader accepts bare filenames only and follows symlinks, so a
// linked shared fonts directory works. A missing file (including a dangling
// link) is reported as ErrAssetNotFound so callers can skip that asset; any
// other failure is ErrAssetRead.
package assets
