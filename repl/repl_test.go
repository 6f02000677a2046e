/*
File    : gomix-bc/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A strings.Reader (or bytes.Buffer) is never a *os.File, so Start
// always takes the batch path here — exactly what a piped invocation
// of the real binary does.
func runProgram(t *testing.T, src string) (stdout, stderr string, status int) {
	t.Helper()
	r := New("banner", "v0", "author", "---", "MIT", "gomix> ")
	var out, errOut bytes.Buffer
	status = r.Start(strings.NewReader(src), &out, &errOut)
	return out.String(), errOut.String(), status
}

func TestRepl_EvaluatesProgramAndExitsZero(t *testing.T) {
	out, _, status := runProgram(t, "1+2*3\n")
	assert.Contains(t, out, "7")
	assert.Equal(t, 0, status)
}

func TestRepl_RuntimeErrorGoesToStderrAndSessionContinues(t *testing.T) {
	out, errOut, status := runProgram(t, "1/0\n2\n")
	assert.Contains(t, errOut, "division by zero")
	assert.Contains(t, out, "2")
	assert.Equal(t, 0, status)
}

func TestRepl_SyntaxErrorGoesToStderrAndSessionContinues(t *testing.T) {
	out, errOut, status := runProgram(t, "1 +\n2\n")
	assert.NotEmpty(t, errOut)
	assert.Contains(t, out, "2")
	assert.Equal(t, 0, status)
}

func TestRepl_HaltStopsSessionImmediately(t *testing.T) {
	out, _, status := runProgram(t, "1\nhalt\n2\n")
	assert.Contains(t, out, "1")
	assert.NotContains(t, out, "2")
	assert.Equal(t, 0, status)
}

func TestRepl_EndOfSessionSummaryCountsDiagnostics(t *testing.T) {
	_, errOut, _ := runProgram(t, "1/0\n5%0\n")
	assert.Contains(t, errOut, "2 diagnostic(s) this session")
}
