package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/toyz/autointerface/internal/errors"
	"github.com/toyz/autointerface/internal/generator"
	"github.com/toyz/autointerface/internal/manifest"
	"github.com/toyz/autointerface/internal/models"
	"github.com/toyz/autointerface/internal/utils"
)

// GenerationSummary counts what a run produced
type GenerationSummary struct {
	ManifestsProcessed int
	InterfacesRendered int
	Properties         int
	Methods            int
	Events             int
	Failed             []string
}

// RenderedManifest is the rendering of one manifest file
type RenderedManifest struct {
	Text  string
	Model models.InterfaceModel
}

// Generator coordinates the CLI generation process
type Generator struct {
	config        Config
	codeGenerator generator.CodeGenerator
	diagnostics   *utils.DiagnosticSystem
	reporter      *DiagnosticReporter
	out           io.Writer
	cache         *utils.FileCache[RenderedManifest]
	summary       GenerationSummary
	written       int
}

// NewGenerator creates a CLI generator writing generated code to out
func NewGenerator(config Config, diagnostics *utils.DiagnosticSystem, out io.Writer) *Generator {
	return &Generator{
		config:        config,
		codeGenerator: generator.NewGeneratorWithOptions(config.RenderOptions()),
		diagnostics:   diagnostics,
		reporter:      NewDiagnosticReporter(diagnostics, config.Verbose),
		out:           out,
		cache:         utils.NewFileCache[RenderedManifest](),
	}
}

// Reporter returns the reporter used for failures
func (g *Generator) Reporter() *DiagnosticReporter {
	return g.reporter
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the configured one-shot operation: compare or render
func (g *Generator) Run() error {
	if err := g.config.Validate(); err != nil {
		return err
	}

	g.summary = GenerationSummary{}
	if g.config.ComparePath != "" {
		return g.Compare(g.config.Manifests[0], g.config.ComparePath)
	}
	return g.RenderAll(g.config.Manifests)
}

// RenderAll renders every manifest to the output, separating declarations with one empty
// line. A failing manifest does not stop the others; all failures are returned together.
func (g *Generator) RenderAll(paths []string) error {
	errs := errors.NewMultipleErrors()

	for _, path := range paths {
		g.diagnostics.Verbose("Rendering %s", path)

		result, err := g.RenderManifest(path)
		g.summary.ManifestsProcessed++
		if err != nil {
			g.summary.Failed = append(g.summary.Failed, path)
			g.reporter.ReportError(err)
			errs.Add(err)
			continue
		}

		if err := g.emit(result.Text); err != nil {
			return errors.WrapFileSystemError("write", "output", err)
		}
		g.count(result.Model)
	}

	return errs.ErrorOrNil()
}

// RenderManifest loads, validates and renders one manifest. Results are cached until the
// file changes on disk.
func (g *Generator) RenderManifest(path string) (RenderedManifest, error) {
	if cached, ok := g.cache.Get(path); ok {
		g.diagnostics.Debug("Using cached rendering of %s", path)
		return cached, nil
	}

	m, err := manifest.Load(path)
	if err != nil {
		return RenderedManifest{}, err
	}

	model, err := m.Model()
	if err != nil {
		return RenderedManifest{}, err
	}

	text, err := g.codeGenerator.Generate(model)
	if err != nil {
		return RenderedManifest{}, err
	}

	result := RenderedManifest{Text: text, Model: model}
	if err := g.cache.Set(path, result); err != nil {
		g.diagnostics.Debug("Not caching %s: %v", path, err)
	}
	return result, nil
}

// Compare renders the manifest and diffs it against target. Drift is reported as a
// DriftError after the diff has been printed. A manifest that fails to render is reported
// here and returned as MultipleErrors, like in RenderAll.
func (g *Generator) Compare(manifestPath, target string) error {
	result, err := g.RenderManifest(manifestPath)
	g.summary.ManifestsProcessed++
	if err != nil {
		g.summary.Failed = append(g.summary.Failed, manifestPath)
		g.reporter.ReportError(err)
		errs := errors.NewMultipleErrors()
		errs.Add(err)
		return errs.ErrorOrNil()
	}
	g.count(result.Model)

	existing, err := os.ReadFile(target)
	if err != nil {
		return errors.WrapFileSystemError("read", target, err)
	}

	diff, err := utils.UnifiedDiff(target, string(existing), "generated from "+filepath.Base(manifestPath), result.Text)
	if err != nil {
		return errors.WrapGenerateError("diff", err)
	}
	if diff != "" {
		g.diagnostics.Diff(diff)
		return errors.DriftError(target, diff)
	}

	g.diagnostics.Success("%s is up to date", target)
	return nil
}

func (g *Generator) emit(text string) error {
	if g.written > 0 {
		if _, err := io.WriteString(g.out, g.lineEnding()); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(g.out, text); err != nil {
		return err
	}
	g.written++
	return nil
}

func (g *Generator) lineEnding() string {
	if g.config.CRLF {
		return "\r\n"
	}
	return "\n"
}

func (g *Generator) count(m models.InterfaceModel) {
	g.summary.InterfacesRendered++
	g.summary.Properties += len(m.Properties)
	g.summary.Methods += len(m.Methods)
	g.summary.Events += len(m.Events)
}

// Stats returns the summary as display statistics
func (s GenerationSummary) Stats() map[string]interface{} {
	return map[string]interface{}{
		"Manifests processed": s.ManifestsProcessed,
		"Interfaces rendered": s.InterfacesRendered,
		"Properties":          s.Properties,
		"Methods":             s.Methods,
		"Events":              s.Events,
		"Failures":            len(s.Failed),
	}
}

// String returns a one-line description of the summary
func (s GenerationSummary) String() string {
	return fmt.Sprintf("%d/%d interfaces rendered", s.InterfacesRendered, s.ManifestsProcessed)
}
