package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/toyz/autointerface/internal/cli"
	"github.com/toyz/autointerface/internal/codewriter"
	"github.com/toyz/autointerface/internal/errors"
	"github.com/toyz/autointerface/internal/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and executes the generator, returning the process exit code.
// Generated code is written to stdout; everything else goes to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("autointerface", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		verboseFlag = flags.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flags.Bool("quiet", false, "Only show errors")
		indentFlag  = flags.Int("indent", codewriter.DefaultIndentWidth, "Spaces per indentation level")
		crlfFlag    = flags.Bool("crlf", false, "Terminate generated lines with CRLF")
		compareFlag = flags.String("compare", "", "Diff the rendering of a single manifest against this file instead of printing it")
		watchFlag   = flags.Bool("watch", false, "Re-render manifests whenever they change")
		helpFlag    = flags.Bool("help", false, "Show help information")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: autointerface [options] <manifest-paths...>\n\n")
		fmt.Fprintf(stderr, "AutomaticInterface Code Generator\n")
		fmt.Fprintf(stderr, "Renders C# interface declarations from YAML, JSON or TOML manifests.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  autointerface person.yaml > IPerson.g.cs          # Render one interface\n")
		fmt.Fprintf(stderr, "  autointerface --indent 2 --crlf a.yaml b.toml     # Custom layout\n")
		fmt.Fprintf(stderr, "  autointerface --compare IPerson.g.cs person.yaml  # Check for drift\n")
		fmt.Fprintf(stderr, "  autointerface --watch person.yaml                 # Re-render on change\n")
	}

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *helpFlag {
		flags.Usage()
		return 0
	}

	manifests := flags.Args()
	if len(manifests) == 0 {
		fmt.Fprintf(stderr, "Error: At least one manifest path is required\n\n")
		flags.Usage()
		return 1
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
	if stderr != io.Writer(os.Stderr) {
		diagnostics.SetOutput(stderr)
	}

	config := cli.Config{
		Manifests:   manifests,
		IndentWidth: *indentFlag,
		CRLF:        *crlfFlag,
		ComparePath: *compareFlag,
		Watch:       *watchFlag,
		Verbose:     *verboseFlag,
	}

	if *verboseFlag {
		diagnostics.Section("AutomaticInterface Code Generator")
		diagnostics.Subsection("Configuration")
		diagnostics.List("Manifests:")
		diagnostics.Indent()
		for _, m := range manifests {
			diagnostics.List("%s", m)
		}
		diagnostics.Unindent()
		diagnostics.List("Indent width: %d", config.IndentWidth)
		diagnostics.List("CRLF: %t", config.CRLF)
		if config.ComparePath != "" {
			diagnostics.List("Compare against: %s", config.ComparePath)
		}
	}

	generator := cli.NewGenerator(config, diagnostics, stdout)

	var err error
	if config.Watch {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err = generator.Watch(ctx)
	} else {
		err = generator.Run()
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Generation Complete!", summary.Stats())

	if err != nil {
		if _, ok := err.(*errors.MultipleErrors); ok {
			// already reported one by one while rendering
			diagnostics.Error("Generation failed: %d of %d manifest(s) failed", len(summary.Failed), summary.ManifestsProcessed)
		} else {
			diagnostics.Error("Generation failed")
			generator.Reporter().ReportError(err)
		}
		return 1
	}
	if config.ComparePath == "" && !config.Watch {
		diagnostics.Success("%s", summary.String())
	}
	return 0
}
