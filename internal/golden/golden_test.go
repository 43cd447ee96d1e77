package golden

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBreakTestInput(t *testing.T) {
	in, out := BreakTestInput("घरमा नेपालबाट गएँ।÷ अनि school गएँ!")
	if in != "घरमा नेपालबाट गएँ। अनि school गएँ!" {
		t.Errorf("unexpected input %q", in)
	}
	want := []string{"घरमा नेपालबाट गएँ।", "अनि school गएँ!"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("expected segments %q, have %q", want, out)
	}
}

func TestScan(t *testing.T) {
	name := filepath.Join(t.TempDir(), "Test.txt")
	content := "# first\n\na ÷ b\tX Y\n# second\nc\n"
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	tf := Open(name, t)
	defer tf.Close()
	n := 0
	for tf.Scan() {
		n++
		switch n {
		case 1:
			if tf.Text() != "a ÷ b" || tf.Field(1) != "X Y" || tf.Comment() != "first" {
				t.Errorf("unexpected case #1: %q / %q / %q", tf.Text(), tf.Field(1), tf.Comment())
			}
			if tf.Name() != "line-003" {
				t.Errorf("expected name line-003, have %s", tf.Name())
			}
		case 2:
			if tf.Text() != "c" || tf.Field(1) != "" || tf.Comment() != "second" {
				t.Errorf("unexpected case #2: %q / %q / %q", tf.Text(), tf.Field(1), tf.Comment())
			}
		}
	}
	if err := tf.Err(); err != nil {
		t.Error(err)
	}
	if n != 2 {
		t.Errorf("expected 2 test cases, have %d", n)
	}
}
