package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/models"
	"github.com/wakabaloola/visualise-code-structure/core/shared"
)

type Printer struct {
	Out        io.Writer
	Color      bool
	Docstrings bool
}

func New(out io.Writer, color, docstrings bool) *Printer {
	return &Printer{
		Out:        out,
		Color:      color,
		Docstrings: docstrings,
	}
}

// Print writes the plain-text listing: per file a header, its functions
// sorted lexicographically, then its classes sorted with methods sorted
// within each, followed by an aggregated error section.
func (p *Printer) Print(report *models.Report) {
	for _, file := range report.Files {
		p.printFile(file)
	}
	p.printErrors(report.Errors)
}

// PrintJSON writes the whole report as indented JSON.
func (p *Printer) PrintJSON(report *models.Report) error {
	enc := json.NewEncoder(p.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func (p *Printer) printFile(file *models.FileStructure) {
	fmt.Fprintf(p.Out, "%s\n", p.colorize(logger.ColorCyan, file.Path))
	if p.Docstrings && file.Docstring != "" {
		fmt.Fprintf(p.Out, "    %s\n", p.colorize(logger.ColorGray, shared.FirstLine(file.Docstring)))
	}

	if len(file.Functions) > 0 {
		fmt.Fprintf(p.Out, "  %s\n", p.colorize(logger.ColorGreen, "Functions"))

		sigs := make([]models.FunctionRecord, len(file.Functions))
		copy(sigs, file.Functions)
		sort.Slice(sigs, func(i, j int) bool { return sigs[i].Signature < sigs[j].Signature })

		for _, fn := range sigs {
			p.printRecord("    ", fn)
		}
	}

	if len(file.Classes) > 0 {
		fmt.Fprintf(p.Out, "  %s\n", p.colorize(logger.ColorGreen, "Classes"))

		for _, name := range sortedKeys(file.Classes) {
			cls := file.Classes[name]
			fmt.Fprintf(p.Out, "    %s\n", p.colorize(logger.ColorYellow, name))
			if p.Docstrings && cls.Docstring != "" {
				fmt.Fprintf(p.Out, "        %s\n", p.colorize(logger.ColorGray, shared.FirstLine(cls.Docstring)))
			}
			for _, method := range sortedKeys(cls.Methods) {
				p.printRecord("      ", cls.Methods[method])
			}
		}
	}

	fmt.Fprintln(p.Out)
}

func (p *Printer) printRecord(indent string, fn models.FunctionRecord) {
	fmt.Fprintf(p.Out, "%s%s\n", indent, fn.Signature)
	if p.Docstrings && fn.Docstring != "" {
		fmt.Fprintf(p.Out, "%s    %s\n", indent, p.colorize(logger.ColorGray, shared.FirstLine(fn.Docstring)))
	}
}

func (p *Printer) printErrors(errs []string) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(p.Out, "%s\n", p.colorize(logger.ColorRed, "Errors"))
	for _, msg := range errs {
		fmt.Fprintf(p.Out, "  %s\n", msg)
	}
}

func (p *Printer) colorize(color, s string) string {
	if !p.Color {
		return s
	}
	return color + s + logger.ColorReset
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
