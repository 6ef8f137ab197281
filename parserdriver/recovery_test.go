package parserdriver_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/token"
)

// diffDiagnosticNames renders a unified diff between the diagnostic names
// actually reported and the expected sequence - useful here because
// directive-recovery mismatches are usually an extra or missing entry in
// the middle of a long run, which a plain slice-equality failure message
// doesn't show well. Mirrors internal/golden's mismatch rendering.
func diffDiagnosticNames(t *testing.T, want []string, got []reporter.Diagnostic) {
	t.Helper()
	var gotNames []string
	for _, d := range got {
		gotNames = append(gotNames, d.Name)
	}
	if len(gotNames) == len(want) {
		match := true
		for i := range want {
			if want[i] != gotNames[i] {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(fmt.Sprintf("%v", want)),
		B:        difflib.SplitLines(fmt.Sprintf("%v", gotNames)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	require.NoError(t, err)
	t.Fatalf("diagnostic sequence mismatch:\n%s", diff)
}

func TestRecoveryRunReportsExactDiagnosticSequence(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte(
		"[[tab-stop=4 garbage]]\n[[nonsense]]\n[[warning=pop]]\nok\n")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/b.lang")

	require.Error(t, d.Run())
	diffDiagnosticNames(t, []string{
		"token-expected",
		"unknown-directive",
		"unmatched-push",
	}, *diags)
}

// TestGrammarTokensMatchExpectedStream uses go-cmp for a structural
// comparison on just the fields that matter to the grammar stage (Kind,
// Text) - asserting on the full *token.Token, pointer identity and all,
// would be both noisy and wrong.
func TestGrammarTokensMatchExpectedStream(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("foo 42 \"bar\"\n")
	d, _ := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")
	require.NoError(t, d.Run())

	type shape struct {
		Kind token.Kind
		Text string
	}
	var gotShapes []shape
	for _, tok := range seen {
		gotShapes = append(gotShapes, shape{Kind: tok.Kind, Text: tok.Text})
	}
	want := []shape{
		{Kind: token.Literal, Text: "foo"},
		{Kind: token.Number, Text: "42"},
		{Kind: token.Quote, Text: "bar"},
	}
	if diff := cmp.Diff(want, gotShapes); diff != "" {
		t.Fatalf("token stream mismatch (-want +got):\n%s", diff)
	}
}
