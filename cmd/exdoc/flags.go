package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command line flags.
type cliFlags struct {
	config       string
	docsRoot     string
	examplesRoot string
	filenames    []string
	keepGoing    bool
	noCapture    bool
	timeout      string
	settleDelay  string
	quiet        bool
	verbose      bool
	version      bool
}

// parseFlags parses the command line. Positional arguments are treated the
// same as --filenames entries, so `exdoc buttons.enaml` targets one example.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("exdoc", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.docsRoot, "docs-root", "d", "", "directory generated documents are written to")
	fs.StringVarP(&f.examplesRoot, "examples-root", "e", "", "directory searched for example files")
	fs.StringSliceVarP(&f.filenames, "filenames", "f", nil, "only process examples whose path ends with one of these suffixes")
	fs.BoolVar(&f.keepGoing, "keep-going", false, "continue past examples with malformed docstrings")
	fs.BoolVar(&f.noCapture, "no-capture", false, "skip snapshot capture, generate documents only")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "capture page load timeout (e.g. 30s, 2m)")
	fs.StringVar(&f.settleDelay, "settle-delay", "", "fixed wait before each snapshot (e.g. 500ms)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show environment diagnostics")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.filenames = append(f.filenames, fs.Args()...)
	return f, nil
}

// printUsage writes the usage banner and flag help.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "exdoc - generate documentation for marked enaml examples")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: exdoc [flags] [filename suffix ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no suffixes, every example containing the line")
	fmt.Fprintf(w, "%q is processed.\n", "<< autodoc-me >>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
