/*
Package golden reads break-test files for segmenters.

The file format follows the spirit of the Unicode break-test files
(e.g., WordBreakTest.txt), but uses literal text instead of hex code-points,
as Nepali test cases are written and reviewed by people reading Devanagari.

	# comment lines start with '#'
	घरमा नेपालबाट गएँ।÷ अनि school गएँ!
	मिति ÷ २०२६/०१/३१ ÷ हो ÷ 🙂	WORD_DEV NUM WORD_DEV EMOJI

Every line holds one test case. Fields are separated by TAB. The first field
is the test input, with '÷' marking expected break positions. The input
handed to a segmenter is the first field with all '÷' removed. Expected
segments are the parts between the break marks, trimmed of white space.
Further fields are available to tests by their field number.
*/
package golden

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"testing"
)

// BreakMark marks a break position in a test input.
const BreakMark = "÷"

// File is a golden test file, opened for scanning.
type File struct {
	in      *os.File
	scanner *bufio.Scanner
	lineno  int
	fields  []string
	comment string
}

// Open opens a golden test file. If the file cannot be opened, the test
// will be stopped with a fatal error.
func Open(filename string, t *testing.T) *File {
	t.Helper()
	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("cannot load golden file %s: %v", filename, err)
	}
	return &File{
		in:      f,
		scanner: bufio.NewScanner(f),
	}
}

// Scan advances to the next test case, skipping comments and empty lines.
// The last comment line before a test case is remembered and available by
// Comment().
func (tf *File) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineno++
		text := strings.TrimRight(tf.scanner.Text(), " \r")
		if len(text) == 0 {
			continue
		}
		if text[0] == '#' {
			tf.comment = strings.TrimSpace(text[1:])
			continue
		}
		tf.fields = strings.Split(text, "\t")
		return true
	}
	return false
}

// Text returns the first field of the current test case, break marks
// included.
func (tf *File) Text() string {
	return tf.Field(0)
}

// Field gets field #i (0…n) from the current test case.
func (tf *File) Field(i int) string {
	if i >= 0 && i < len(tf.fields) {
		return tf.fields[i]
	}
	return ""
}

// Comment returns the most recent comment line.
func (tf *File) Comment() string {
	return tf.comment
}

// Name returns a name for the current test case, suitable for t.Run.
func (tf *File) Name() string {
	return fmt.Sprintf("line-%03d", tf.lineno)
}

// Err returns the first non-EOF error of the underlying scanner.
func (tf *File) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *File) Close() {
	tf.in.Close()
}

// BreakTestInput splits a test input into the text to segment and the
// expected segments.
func BreakTestInput(ti string) (string, []string) {
	parts := strings.Split(ti, BreakMark)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if seg := strings.TrimSpace(p); seg != "" {
			out = append(out, seg)
		}
	}
	return strings.Join(parts, ""), out
}
