// Package config loads bundling configuration from YAML files.
//
// A config names the input document, optionally the output file, and the
// ordered list of assets to inline:
//
//	input: index.html
//	output: standalone.html
//	assets:
//	  - filename: MokotoRegular.ttf
//	    mime: font/ttf
//	  - filename: logo_v2.png
//	    mime: image/png
//	    kind: image
//
// Every field is optional. An omitted assets key keeps the built-in list; an
// explicitly empty list is rejected.
package config
