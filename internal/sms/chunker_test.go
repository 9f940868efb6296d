package sms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ShortTextIsSingleChunk(t *testing.T) {
	chunks := Split("short message", 160)

	require.Len(t, chunks, 1)
	assert.Equal(t, "short message", chunks[0])
}

func TestSplit_PrefersNewlineBoundary(t *testing.T) {
	text := "line one\nline two\nline three"

	chunks := Split(text, 20)

	require.Len(t, chunks, 2)
	assert.Equal(t, "line one\nline two", chunks[0])
	assert.Equal(t, "line three", chunks[1])
}

func TestSplit_HardBreakWithoutNewline(t *testing.T) {
	text := strings.Repeat("a", 25)

	chunks := Split(text, 10)

	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("a", 10), chunks[0])
	assert.Equal(t, strings.Repeat("a", 10), chunks[1])
	assert.Equal(t, strings.Repeat("a", 5), chunks[2])
}

func TestSplit_EveryChunkWithinLimit(t *testing.T) {
	texts := []string{
		strings.Repeat("turn left\n", 100),
		strings.Repeat("x", 1000),
		"1. Head north on Market St (0.2 mi)\n2. Turn right onto Main (0.4 mi)\n",
		"\n\n\n" + strings.Repeat("word ", 200),
	}
	limits := []int{7, 16, 160, 1600}

	for _, text := range texts {
		for _, maxLen := range limits {
			for _, chunk := range Split(text, maxLen) {
				assert.LessOrEqual(t, len(chunk), maxLen,
					"chunk %q exceeds limit %d", chunk, maxLen)
			}
		}
	}
}

func TestSplit_ContentPreservedModuloWhitespace(t *testing.T) {
	text := "alpha beta\ngamma delta\nepsilon zeta\neta theta"

	chunks := Split(text, 15)

	joined := strings.Join(chunks, " ")
	assert.Equal(t, strings.Fields(text), strings.Fields(joined))
}

func TestSplit_ChunkOrderIsPresentationOrder(t *testing.T) {
	text := "first\nsecond\nthird\nfourth"

	chunks := Split(text, 13)

	joined := strings.Join(chunks, "\n")
	assert.Less(t, strings.Index(joined, "first"), strings.Index(joined, "second"))
	assert.Less(t, strings.Index(joined, "second"), strings.Index(joined, "third"))
	assert.Less(t, strings.Index(joined, "third"), strings.Index(joined, "fourth"))
}

func TestSplit_EmptyText(t *testing.T) {
	chunks := Split("", 160)

	require.Len(t, chunks, 1)
	assert.Equal(t, "", chunks[0])
}

func TestSplit_NonPositiveLimit(t *testing.T) {
	chunks := Split("  some text  ", 0)

	require.Len(t, chunks, 1)
	assert.Equal(t, "some text", chunks[0])
}
