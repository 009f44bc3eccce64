package differ

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffProcessor_ProcessLineDiff(t *testing.T) {
	dp := NewDiffProcessor()

	ops := dp.ProcessLineDiff("a\nb\nc", "a\nB\nc")
	require.Len(t, ops, 4)
	assert.Equal(t, LineOp{Type: diffmatchpatch.DiffEqual, Text: "a\n"}, ops[0])
	assert.Equal(t, LineOp{Type: diffmatchpatch.DiffDelete, Text: "b\n"}, ops[1])
	assert.Equal(t, LineOp{Type: diffmatchpatch.DiffInsert, Text: "B\n"}, ops[2])
	assert.Equal(t, LineOp{Type: diffmatchpatch.DiffEqual, Text: "c"}, ops[3])

	stats := CalculateStats(ops)
	assert.Equal(t, 1, stats.LinesAdded)
	assert.Equal(t, 1, stats.LinesDeleted)
}

func TestDiffProcessor_IdenticalTexts(t *testing.T) {
	dp := NewDiffProcessor()

	ops := dp.ProcessLineDiff("same\ntext\n", "same\ntext\n")
	for _, op := range ops {
		assert.Equal(t, diffmatchpatch.DiffEqual, op.Type)
	}
	assert.Equal(t, DiffStatistics{}, CalculateStats(ops))
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a\n", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a\n", "b\n"}, splitLines("a\nb\n"))
	assert.Equal(t, []string{"\n"}, splitLines("\n"))
}
