package textbuilder

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestInvalidOffset(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input []byte
		want  int
	}{
		"valid":       {input: []byte("abc"), want: 3},
		"leading":     {input: []byte{0xff, 'a'}, want: 0},
		"after ascii": {input: []byte{'a', 'b', 0x80}, want: 2},
		"after emoji": {input: append([]byte("💙"), 0xC3), want: 4},
		"replacement": {input: []byte("\uFFFD\xff"), want: 3},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, invalidOffset(tt.input))
		})
	}
}

func TestSinkTagsWriteErrors(t *testing.T) {
	t.Parallel()
	s := &sink{w: &errWriterInternal{}}
	_, err := s.WriteString("a")
	require.ErrorIs(t, err, ErrWrite)
	require.ErrorIs(t, err, errInternalWrite)
	_, err = s.Write([]byte("a"))
	require.ErrorIs(t, err, ErrWrite)
	assert.Zero(t, s.n)
}

func TestSinkCountsBytes(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	s := &sink{w: &buf}
	_, err := s.WriteString("héllo")
	require.NoError(t, err)
	_, err = s.Write([]byte("!"))
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.n)
}

func TestGenerationAdvances(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	b := New(&buf)
	assert.Equal(t, uint64(0), b.gen)
	b = b.Str("a").Newline()
	assert.Equal(t, uint64(2), b.gen)
	assert.Equal(t, b.st.gen, b.gen)
}

func TestIndentedPopsExactlyOne(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	b := New(&buf)
	b = b.Indented(Str("a"), func(b Builder) Builder {
		return b.Indented(Str("b"), func(b Builder) Builder {
			assert.Equal(t, []Appendable{Str("a"), Str("b")}, b.st.indents)
			return b
		})
	})
	assert.Empty(t, b.st.indents)
	require.NoError(t, b.Err())
}

func TestFailKeepsFirstError(t *testing.T) {
	t.Parallel()
	st := &state{}
	st.fail(ErrInvalidUTF8)
	st.fail(ErrWrite)
	assert.ErrorIs(t, st.err, ErrInvalidUTF8)
}

func TestTruncateCellWideRunes(t *testing.T) {
	t.Parallel()
	// "你" is two columns wide and cannot be cut in half.
	assert.Equal(t, "你", truncateCell("你好", 3, ""))
	assert.Equal(t, "", truncateCell("你好", 1, ""))
}

func TestExtendAligns(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []Alignment{AlignRight, AlignLeft, AlignLeft}, extendAligns([]Alignment{AlignRight}, 3))
	assert.Len(t, extendAligns([]Alignment{AlignRight, AlignRight, AlignRight}, 2), 2)
}

func TestTableInnerWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 7, tableInnerWidth([]int{5}))
	assert.Equal(t, 13, tableInnerWidth([]int{5, 3}))
}

func TestTableLinesEmpty(t *testing.T) {
	t.Parallel()
	lines, err := Table{Rows: [][]string{{}}}.lines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}
