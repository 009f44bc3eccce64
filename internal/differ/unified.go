package differ

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// noNewlineMarker follows a line that ends its text without a trailing newline.
const noNewlineMarker = "\\ No newline at end of file\n"

// UnifiedDiffFormatter renders line diffs in unified diff format.
type UnifiedDiffFormatter struct {
	processor    *DiffProcessor
	contextLines int
}

// NewUnifiedDiffFormatter creates a formatter using cfg.ContextLines lines of context.
func NewUnifiedDiffFormatter(cfg DiffConfig) *UnifiedDiffFormatter {
	if cfg.ContextLines < 0 {
		cfg.ContextLines = 0
	}
	return &UnifiedDiffFormatter{
		processor:    NewDiffProcessor(),
		contextLines: cfg.ContextLines,
	}
}

// Format returns the unified diff between before and after, or "" if they are equal.
func (f *UnifiedDiffFormatter) Format(before, after, fromFile, toFile string) string {
	return f.FormatOps(f.processor.ProcessLineDiff(before, after), fromFile, toFile)
}

// FormatOps renders already computed line operations.
func (f *UnifiedDiffFormatter) FormatOps(ops []LineOp, fromFile, toFile string) string {
	var changes []int
	for i, op := range ops {
		if op.Type != diffmatchpatch.DiffEqual {
			changes = append(changes, i)
		}
	}
	if len(changes) == 0 {
		return ""
	}

	// oldPos[i] and newPos[i] count the lines of each side consumed before ops[i].
	oldPos := make([]int, len(ops)+1)
	newPos := make([]int, len(ops)+1)
	for i, op := range ops {
		oldPos[i+1], newPos[i+1] = oldPos[i], newPos[i]
		if op.Type != diffmatchpatch.DiffInsert {
			oldPos[i+1]++
		}
		if op.Type != diffmatchpatch.DiffDelete {
			newPos[i+1]++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", fromFile, toFile)

	for i := 0; i < len(changes); {
		first, last := changes[i], changes[i]
		j := i
		// Merge changes separated by no more than twice the context.
		for j+1 < len(changes) && changes[j+1]-last-1 <= 2*f.contextLines {
			j++
			last = changes[j]
		}

		lo := max(0, first-f.contextLines)
		hi := min(len(ops), last+f.contextLines+1)

		fmt.Fprintf(&sb, "@@ -%s +%s @@\n", formatRange(oldPos[lo], oldPos[hi]), formatRange(newPos[lo], newPos[hi]))
		for _, op := range ops[lo:hi] {
			sb.WriteString(marker(op.Type))
			sb.WriteString(op.Text)
			if !strings.HasSuffix(op.Text, "\n") {
				sb.WriteString("\n")
				sb.WriteString(noNewlineMarker)
			}
		}
		i = j + 1
	}

	return sb.String()
}

// formatRange renders a hunk range for 0-based [start, stop).
// Single lines omit the length; empty ranges point at the preceding line.
func formatRange(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

func marker(op diffmatchpatch.Operation) string {
	switch op {
	case diffmatchpatch.DiffInsert:
		return "+"
	case diffmatchpatch.DiffDelete:
		return "-"
	default:
		return " "
	}
}
