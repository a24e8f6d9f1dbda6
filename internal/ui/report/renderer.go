// Package report renders comparison reports as linear, line-oriented output
// suitable for terminals and CI logs.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/lockdiff/internal/core/domain"
	"go.trai.ch/lockdiff/internal/ui/style"
)

// Renderer implements ports.ReportRenderer. Rows go to stdout; the report is
// the product of the tool, not a log.
type Renderer struct {
	stdout  io.Writer
	output  *termenv.Output
	verbose bool
}

// NewRenderer creates a Renderer. A nil writer defaults to os.Stdout.
func NewRenderer(stdout io.Writer, verbose bool) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Renderer{
		stdout:  stdout,
		output:  termenv.NewOutput(stdout, termenv.WithProfile(colorProfile())),
		verbose: verbose,
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Render writes the report. Same rows only appear in verbose mode; rows for
// packages outside the intersection are always shown for visibility, and the
// summary states whether the comparison passed.
func (r *Renderer) Render(report domain.Report) error {
	for _, e := range report.Entries {
		switch e.Verdict {
		case domain.VerdictSame:
			if !r.verbose {
				continue
			}
			symbol := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
			if err := r.printf("%s SAME %s %s\n", symbol, e.Name, joinVersions(e.VersionsA)); err != nil {
				return err
			}

		case domain.VerdictDifferent:
			symbol := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
			if err := r.printf("%s DIFFERENT %s %s vs. %s\n",
				symbol, e.Name, joinVersions(e.VersionsA), joinVersions(e.VersionsB)); err != nil {
				return err
			}
			if e.PathA != "" {
				if err := r.printf("  path A: %s\n", e.PathA); err != nil {
					return err
				}
			}
			if e.PathB != "" {
				if err := r.printf("  path B: %s\n", e.PathB); err != nil {
					return err
				}
			}

		case domain.VerdictOnlyA:
			symbol := r.output.String(style.Tilde).Foreground(termenv.RGBColor(string(style.Yellow))).String()
			if err := r.printf("%s only in A: %s %s\n", symbol, e.Name, joinVersions(e.VersionsA)); err != nil {
				return err
			}

		case domain.VerdictOnlyB:
			symbol := r.output.String(style.Tilde).Foreground(termenv.RGBColor(string(style.Yellow))).String()
			if err := r.printf("%s only in B: %s %s\n", symbol, e.Name, joinVersions(e.VersionsB)); err != nil {
				return err
			}
		}
	}

	if err := r.printf("%d packages in A, %d in B, %d in common\n",
		report.CountA, report.CountB, report.Common); err != nil {
		return err
	}
	if r.verbose {
		if err := r.printf("digest A: %016x\ndigest B: %016x\n", report.DigestA, report.DigestB); err != nil {
			return err
		}
	}

	if report.Matches() {
		symbol := r.output.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
		return r.printf("%s All common packages have the same versions\n", symbol)
	}

	differing := 0
	for _, e := range report.Entries {
		if e.Verdict == domain.VerdictDifferent {
			differing++
		}
	}
	symbol := r.output.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
	return r.printf("%s %d package(s) have different versions\n", symbol, differing)
}

func (r *Renderer) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.stdout, format, args...)
	return err
}

func joinVersions(versions []string) string {
	return strings.Join(versions, ", ")
}
