package parserdriver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/operator"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/parserdriver"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/source"
	"github.com/zaxc/corec/token"
)

// fakeHost is the same in-memory Host used by source's own tests,
// reproduced here since _examples/ and internal test doubles aren't
// shared across packages.
type fakeHost struct {
	files map[string][]byte
}

func newFakeHost() *fakeHost { return &fakeHost{files: map[string][]byte{}} }

func (h *fakeHost) ReadBinaryFile(path string) ([]byte, bool) {
	b, ok := h.files[path]
	return b, ok
}
func (h *fakeHost) WriteBinaryFile(path string, data []byte) error {
	h.files[path] = data
	return nil
}
func (h *fakeHost) IsRegularFile(path string) bool {
	_, ok := h.files[path]
	return ok
}
func (h *fakeHost) CreateDirectories(path string) error { return nil }
func (h *fakeHost) CopyFile(src, dst string, updateExisting bool) error {
	h.files[dst] = h.files[src]
	return nil
}
func (h *fakeHost) LocateFile(currentFile, relativePath string) (string, string, bool) {
	return "", "", false
}
func (h *fakeHost) LocateWildcardFiles(currentFile, pattern string) ([]source.WildcardMatch, error) {
	return nil, nil
}

func newDriver(host *fakeHost) (*parserdriver.Driver, *[]reporter.Diagnostic) {
	var got []reporter.Diagnostic
	d := parserdriver.New(host, operator.New(), func(diag reporter.Diagnostic) {
		got = append(got, diag)
	})
	return d, &got
}

// recordingGrammar captures every non-directive token handed to the
// (out-of-scope) grammar stage, along with the State active at that
// point - enough to assert directive effects without a real grammar.
func recordingGrammar(out *[]*token.Token) parserdriver.GrammarFunc {
	return func(ctx *parserctx.Context, tok *token.Token) {
		*out = append(*out, tok)
	}
}

func TestRunTokenizesPlainSourceWithoutDirectives(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("alpha beta gamma\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)

	var texts []string
	for _, tok := range seen {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, texts)
}

func TestTabStopDirectiveMutatesStateForSubsequentTokens(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[tab-stop=4]]\nnext\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 1)
	assert.Equal(t, 4, seen[0].State.TabStopWidth)
}

func TestWarningDirectivePushDisableAndPopRestoreAcrossTokens(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte(
		"before\n[[warning=push]]\n[[warning=no,forever]]\nmiddle\n[[warning=pop]]\nafter\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 3)

	forever, ok := diag.LookupWarningCode("forever")
	require.True(t, ok)

	assert.True(t, seen[0].State.Warnings.At(forever).Enabled, "before the push, forever is still enabled")
	assert.False(t, seen[1].State.Warnings.At(forever).Enabled, "disabled inside the pushed frame")
	assert.True(t, seen[2].State.Warnings.At(forever).Enabled, "pop restores the pre-push state")
}

func TestPanicDirectiveLockRejectsSubsequentDisable(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte(
		"[[panic=lock,out-of-memory]]\n[[panic=no,out-of-memory]]\nx\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 1)

	oom, ok := diag.LookupPanicCode("out-of-memory")
	require.True(t, ok)
	assert.True(t, seen[0].State.Panics.At(oom).Enabled, "the lock must have prevented the later disable")
}

func TestUnmatchedPopWarns(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[warning=pop]]\nx\n")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	require.Len(t, *diags, 1)
	assert.Equal(t, "unmatched-push", (*diags)[0].Name)
}

func TestUnknownDirectiveWarns(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[nonsense]]\nx\n")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	require.Len(t, *diags, 1)
	assert.Equal(t, "unknown-directive", (*diags)[0].Name)
}

func TestXPrefixedDirectiveIsSilentlyIgnored(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[x-vendor-hint=anything]]\nx\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 1)
}

func TestErrorDirectiveRaisesUnconditionalError(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[error=\"boom\"]]\nx\n")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/b.lang")

	require.Error(t, d.Run())
	require.Len(t, *diags, 1)
	assert.Equal(t, reporter.SeverityError, (*diags)[0].Severity)
	assert.Contains(t, (*diags)[0].Message, "boom")
}

func TestLineDirectiveBeforeFileReportsError(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[line=10]]\nx\n")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/b.lang")

	require.Error(t, d.Run())
	require.Len(t, *diags, 1)
	assert.Equal(t, "line-directive-without-file", (*diags)[0].Name)
}

func TestExportPushEnableAndPopRoundTrips(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte(
		"before\n[[export=push]]\n[[export=yes]]\nmiddle\n[[export=pop]]\nafter\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 3)
	assert.False(t, seen[0].State.Export)
	assert.True(t, seen[1].State.Export)
	assert.False(t, seen[2].State.Export)
}

func TestDeprecateDirectiveInstallsAndClearsWindow(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte(
		"[[deprecate=yes,min=\"1.2.0\"]]\nmiddle\n[[deprecate=no]]\nafter\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 2)
	require.NotNil(t, seen[0].State.Deprecate)
	require.NotNil(t, seen[0].State.Deprecate.Min)
	assert.Equal(t, 1, seen[0].State.Deprecate.Min.Major)
	assert.Nil(t, seen[1].State.Deprecate)
}

func TestHyphenatedCategoryNameResolves(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("[[warning=no,always-false]]\nx\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 1)

	alwaysFalse, ok := diag.LookupWarningCode("always-false")
	require.True(t, ok)
	assert.False(t, seen[0].State.Warnings.At(alwaysFalse).Enabled)
}

func TestMalformedDirectiveRecoversAtCommaBoundary(t *testing.T) {
	host := newFakeHost()
	// a stray token where "=" or "," was expected; the driver should
	// recover at the next comma-or-close and keep tokenizing.
	host.files["/a/b.lang"] = []byte("[[tab-stop=4 garbage]]\nx\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/b.lang")

	require.Error(t, d.Run())
	require.Len(t, seen, 1)
	assert.NotEmpty(t, *diags)
}

func TestSourceDirectiveEnqueuesAndPrimesIncludedFile(t *testing.T) {
	host := newFakeHost()
	host.files["/a/main.lang"] = []byte("[[source=\"inc.lang\"]]\nafter\n")
	host.files["/a/inc.lang"] = []byte("included\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/main.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)

	var texts []string
	for _, tok := range seen {
		texts = append(texts, tok.Text)
	}
	// the included file is fully drained before the includer's remainder
	// continues (spec §4.7/§4.8).
	assert.Equal(t, []string{"included", "after"}, texts)
}

func TestSourceDirectiveRequiredMissingReportsError(t *testing.T) {
	host := newFakeHost()
	host.files["/a/main.lang"] = []byte("[[source=\"missing.lang\"]]\nafter\n")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/main.lang")

	require.Error(t, d.Run())
	require.Len(t, *diags, 1)
	assert.Equal(t, "source-not-found", (*diags)[0].Name)
}

func TestSourceDirectiveOptionalMissingIsSilent(t *testing.T) {
	host := newFakeHost()
	host.files["/a/main.lang"] = []byte("[[source=\"missing.lang\",required=no]]\nafter\n")
	d, diags := newDriver(host)

	var seen []*token.Token
	d.Grammar = recordingGrammar(&seen)
	d.AddCommandLineSource("/a/main.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	require.Len(t, seen, 1)
	assert.Equal(t, "after", seen[0].Text)
}

func TestAssetDirectiveCopiesFileThroughHost(t *testing.T) {
	host := newFakeHost()
	host.files["/a/main.lang"] = []byte("[[asset=\"logo.png\"]]\nafter\n")
	host.files["/a/logo.png"] = []byte("binary-bytes")
	d, diags := newDriver(host)
	d.AddCommandLineSource("/a/main.lang")

	require.NoError(t, d.Run())
	assert.Empty(t, *diags)
	assert.Equal(t, []byte("binary-bytes"), host.files["logo.png"])
}
