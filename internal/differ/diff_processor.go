package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineOp is a single line of a line-oriented diff.
type LineOp struct {
	Type diffmatchpatch.Operation
	Text string // includes the trailing "\n" when the source line had one
}

// DiffProcessor handles the core diffing logic
type DiffProcessor struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffProcessor creates a new diff processor
func NewDiffProcessor() *DiffProcessor {
	return &DiffProcessor{
		dmp: diffmatchpatch.New(),
	}
}

// ProcessLineDiff diffs two texts line by line. Within a changed block
// deletions come before insertions.
func (dp *DiffProcessor) ProcessLineDiff(text1, text2 string) []LineOp {
	chars1, chars2, lineArray := dp.dmp.DiffLinesToChars(text1, text2)
	diffs := dp.dmp.DiffMain(chars1, chars2, false)
	diffs = dp.dmp.DiffCharsToLines(diffs, lineArray)

	var ops []LineOp
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			ops = append(ops, LineOp{Type: d.Type, Text: line})
		}
	}
	return ops
}

// DiffStatistics holds diff calculation results
type DiffStatistics struct {
	LinesAdded   int
	LinesDeleted int
}

// CalculateStats counts added and deleted lines
func CalculateStats(ops []LineOp) DiffStatistics {
	stats := DiffStatistics{}
	for _, op := range ops {
		switch op.Type {
		case diffmatchpatch.DiffInsert:
			stats.LinesAdded++
		case diffmatchpatch.DiffDelete:
			stats.LinesDeleted++
		}
	}
	return stats
}

// splitLines splits s after every "\n", keeping the separators.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
