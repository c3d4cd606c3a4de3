// ABOUTME: Help display for the gifbox CLI with grouped flags, key bindings, and environment variables.
package main

import (
	"fmt"
	"io"

	"github.com/2389-research/gifbox/config"
)

const gifboxASCII = `
   .-------------.
   |  G  I  F    |
   |   .-----.   |
   |   | >_< |   |
   |   '-----'   |
   '-------------'
`

// printHelp writes a formatted help message to w.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, gifboxASCII)
	fmt.Fprintf(w, "gifbox %s - search GIFs and keep the good ones\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  gifbox [flags]                Open the terminal client")
	fmt.Fprintln(w, "  gifbox -demo                  Try it against a throwaway in-process backend")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -api <url>            API root URL (default: "+config.DefaultAPIURL+")")
	fmt.Fprintln(w, "  -config <file>        Config file (default: $XDG_CONFIG_HOME/gifbox/config.yaml)")
	fmt.Fprintln(w, "  -data-dir <dir>       Session database directory (default: $XDG_DATA_HOME/gifbox)")
	fmt.Fprintln(w, "  -session <backend>    sqlite, bolt, memory (default: sqlite)")
	fmt.Fprintln(w, "  -start <path>         Location to open, e.g. /ui/favorites (default: /ui)")
	fmt.Fprintln(w, "  -timeout <duration>   Per-request timeout (default: 10s)")
	fmt.Fprintln(w, "  -log-file <file>      Log file (default: <data-dir>/gifbox.log)")
	fmt.Fprintln(w, "  -demo                 Start the demo backend on a loopback port")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  ctrl+n   menu        ctrl+g   go to path     ctrl+c   quit")
	fmt.Fprintln(w, "  login:     tab switch field, enter log in, ctrl+r register")
	fmt.Fprintln(w, "  search:    enter search, tab results, s save")
	fmt.Fprintln(w, "  favorites: / filter, e edit category, enter save category, r refresh")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  GIFBOX_API_URL, GIFBOX_DATA_DIR, GIFBOX_SESSION, GIFBOX_TIMEOUT,")
	fmt.Fprintln(w, "  GIFBOX_LOG_FILE, GIFBOX_START_PATH (also read from ./.env)")
}
