package interpreter_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KrokodileGlue/bfi/interpreter"
)

func run(t *testing.T, src, stdin string) string {
	t.Helper()
	var out bytes.Buffer
	err := interpreter.Run([]byte(src), strings.NewReader(stdin), &out)
	require.NoError(t, err)
	return out.String()
}

func TestHelloWorld(t *testing.T) {
	const src = `++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.
<-.<.+++.------.--------.>>+.>++.`
	require.Equal(t, "Hello World!\n", run(t, src, ""))
}

func TestEchoUntilEOF(t *testing.T) {
	// ,[.,] reads and echoes bytes until a read stores 0 (EOF).
	out := run(t, ",[.,]", "abc")
	require.Equal(t, "abc", out)
}

func TestCellWrapAround(t *testing.T) {
	// 256 increments wrap a cell back to zero; print it as a NUL byte.
	src := strings.Repeat("+", 256) + "."
	require.Equal(t, "\x00", run(t, src, ""))
}

func TestMultiplicationLoopCopiesScaledValue(t *testing.T) {
	// Cell 0 = 5, copy*3 into cell 1 via a multiplication loop, print it.
	src := "+++++[>+++<-]>."
	require.Equal(t, string([]byte{15}), run(t, src, ""))
}

func TestDeadCodeAfterLoopIsUnreachable(t *testing.T) {
	// The loop body leaves cell 0 at zero; [.] right after it never runs.
	src := "+++[-][.]++."
	require.Equal(t, string([]byte{2}), run(t, src, ""))
}

func TestGetchAtEOFStoresZero(t *testing.T) {
	src := ",."
	require.Equal(t, "\x00", run(t, src, ""))
}

func TestPointerWrapsAround(t *testing.T) {
	src := strings.Repeat(">", 65536) + "+."
	require.Equal(t, "\x01", run(t, src, ""))
}
