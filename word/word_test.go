package word

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/npltk"
	"github.com/npillmayer/npltk/internal/golden"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ExampleTokenize() {
	for _, t := range Tokenize("मिति २०२६/०१/३१ हो 🙂", true) {
		fmt.Println(t)
	}
	// Output:
	// WORD_DEV("मिति")[0:4]
	// NUM("२०२६/०१/३१")[5:15]
	// WORD_DEV("हो")[16:18]
	// EMOJI("🙂")[19:20]
}

func TestDateAndEmoji(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tokens := Tokenize("मिति २०२६/०१/३१ हो 🙂", true)
	counts := map[npltk.TokenType]int{}
	for _, tok := range tokens {
		counts[tok.Type]++
	}
	if counts[npltk.Num] != 1 || counts[npltk.Emoji] != 1 || counts[npltk.WordDev] != 2 {
		t.Errorf("unexpected token types: %v", tokens)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, have %d", len(tokens))
	}
	if tokens[1].Text != "२०२६/०१/३१" {
		t.Errorf("expected date token, have %v", tokens[1])
	}
	if tokens[3].Text != "🙂" {
		t.Errorf("expected emoji token, have %v", tokens[3])
	}
}

func TestKeepPunct(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tokens := Tokenize("नेपाल।", false)
	if len(tokens) != 1 || tokens[0].Type != npltk.WordDev || tokens[0].Text != "नेपाल" {
		t.Errorf("expected a single WORD_DEV token, have %v", tokens)
	}
	tokens = Tokenize("नेपाल।", true)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, have %v", tokens)
	}
	if tokens[1].Type != npltk.Punct || tokens[1].Text != "।" {
		t.Errorf("expected danda to be PUNCT, is %v", tokens[1])
	}
}

func TestWhitespaceOnly(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, input := range []string{"", " ", "\t\n  \r\n", "\u00a0\u2009"} {
		if tokens := Tokenize(input, true); len(tokens) != 0 {
			t.Errorf("expected no tokens for %q, have %v", input, tokens)
		}
	}
}

func TestSpans(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	input := "  घरमा   नेपालबाट, गएँ! visit www.example.org 😀✨ ३.५%\n"
	tokens := Tokenize(input, true)
	if len(tokens) == 0 {
		t.Fatalf("expected tokens for %q", input)
	}
	verifySpans(t, input, tokens)
}

func TestWordBreakTestFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tf := golden.Open("testdata/WordBreakTest.txt", t)
	defer tf.Close()
	failcnt, i := 0, 0
	for tf.Scan() {
		i++
		in, out := golden.BreakTestInput(tf.Text())
		types := strings.Fields(tf.Field(1))
		if !executeSingleTest(t, i, in, out, types) {
			t.Logf("failed test case: %s", tf.Comment())
			failcnt++
		}
	}
	if err := tf.Err(); err != nil {
		t.Errorf("reading input: %s", err)
	}
	if i == 0 {
		t.Errorf("no test cases found")
	}
	t.Logf("%d TEST CASES OUT of %d FAILED", failcnt, i)
}

func executeSingleTest(t *testing.T, tno int, in string, out []string, types []string) bool {
	tokens := Tokenize(in, true)
	verifySpans(t, in, tokens)
	if len(tokens) != len(out) {
		t.Errorf("test #%d: expected %d tokens for %q, have %v", tno, len(out), in, tokens)
		return false
	}
	ok := true
	for i, tok := range tokens {
		if tok.Text != out[i] {
			t.Errorf("test #%d: '%+q' should be '%+q'", tno, tok.Text, out[i])
			ok = false
		}
		if i < len(types) && tok.Type.String() != types[i] {
			t.Errorf("test #%d: %q should be of type %s, is %s", tno, tok.Text, types[i], tok.Type)
			ok = false
		}
	}
	return ok
}

func verifySpans(t *testing.T, input string, tokens []npltk.Token) {
	t.Helper()
	runes := []rune(input)
	prev := 0
	for i, tok := range tokens {
		if tok.Start < prev || tok.End <= tok.Start || tok.End > len(runes) {
			t.Fatalf("token %d: invalid span [%d:%d] for input of length %d", i, tok.Start, tok.End, len(runes))
		}
		if got := string(runes[tok.Start:tok.End]); got != tok.Text {
			t.Fatalf("token %d: span [%d:%d] is %q, text is %q", i, tok.Start, tok.End, got, tok.Text)
		}
		if strings.TrimSpace(tok.Text) != tok.Text {
			t.Errorf("token %d: %q contains white space", i, tok.Text)
		}
		prev = tok.End
	}
}
