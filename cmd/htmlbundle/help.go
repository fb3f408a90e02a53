package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmlbundle [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inline fonts and images into an HTML file as data URIs.")
	fmt.Fprintln(w, "With no flags, bundles index.html next to the executable into index_bundled.html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -d, --dir <path>          Base directory (default: executable's directory)")
	fmt.Fprintln(w, "  -i, --input <name>        Input HTML file (default: index.html)")
	fmt.Fprintln(w, "  -o, --output <name>       Output file name (default: <stem>_bundled<ext>)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "      --audit               Report local references left unresolved")
	fmt.Fprintln(w, "  -w, --watch               Re-bundle when the input or an asset changes")
	fmt.Fprintln(w, "      --print-config        Print the effective config as YAML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-asset summary and hints")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config file (YAML):")
	fmt.Fprintln(w, "  input: index.html")
	fmt.Fprintln(w, "  output: index_bundled.html")
	fmt.Fprintln(w, "  assets:")
	fmt.Fprintln(w, "    - filename: MokotoRegular.ttf")
	fmt.Fprintln(w, "      mime: font/ttf")
	fmt.Fprintln(w, "      kind: font            # optional, inferred from mime")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0  success (also when the input is missing)")
	fmt.Fprintln(w, "  1  general error")
	fmt.Fprintln(w, "  2  invalid flags or config")
	fmt.Fprintln(w, "  3  I/O error")
}
