// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hr-screener/internal/pipeline"
	"github.com/jonathan/hr-screener/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of an extracted candidate.
func (p *Printer) PrintProfile(profile *types.CandidateProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(profile.Name)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(profile.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(profile.Phone)))
	sb.WriteString(fmt.Sprintf("Role:   %s", profile.DetectedRole))

	p.printBox("EXTRACTED CANDIDATE", sb.String())
}

// PrintBatchResult outputs a summary of an import run, listing failures.
func (p *Printer) PrintBatchResult(result *pipeline.BatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Processed:  %d\n", len(result.Items)))
	sb.WriteString(fmt.Sprintf("Imported:   %d\n", result.Imported))
	sb.WriteString(fmt.Sprintf("Duplicates: %d\n", result.Duplicates))
	sb.WriteString(fmt.Sprintf("Failed:     %d", result.Failed))

	shown := 0
	for _, item := range result.Items {
		if item.Err == nil {
			continue
		}
		if shown == 0 {
			sb.WriteString("\n")
		}
		if shown == maxItemsToShow {
			sb.WriteString("\n... and more failures")
			break
		}
		msg := item.Err.Error()
		if len(msg) > 40 {
			msg = msg[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n⚠ %s: %s", item.Filename, msg))
		shown++
	}

	p.printBox("RESUME IMPORT", sb.String())
}

// PrintEvaluation outputs a screening decision with its reasons.
func (p *Printer) PrintEvaluation(eval *types.TranscriptEvaluation) {
	if eval == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Decision: %s\n", eval.Decision))
	if eval.ExtractedBudget != nil {
		sb.WriteString(fmt.Sprintf("Budget:   %.0f\n", *eval.ExtractedBudget))
	}
	if eval.ExtractedExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("Years:    %.1f\n", *eval.ExtractedExperienceYears))
	}

	if len(eval.Reasons) == 0 {
		sb.WriteString("\n✅ All checks passed")
	} else {
		sb.WriteString("\nReasons:\n")
		for i, reason := range eval.Reasons {
			if i == maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(eval.Reasons)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", reason))
		}
	}

	p.printBox("SCREENING DECISION", strings.TrimSuffix(sb.String(), "\n"))
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
