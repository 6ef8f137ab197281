package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/operator"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/source"
)

type fakeHost struct {
	files     map[string][]byte
	written   map[string][]byte
	dirsMade  map[string]bool
	copyErr   error
}

func newFakeHost() *fakeHost {
	return &fakeHost{files: map[string][]byte{}, written: map[string][]byte{}, dirsMade: map[string]bool{}}
}

func (h *fakeHost) ReadBinaryFile(path string) ([]byte, bool) {
	b, ok := h.files[path]
	return b, ok
}
func (h *fakeHost) WriteBinaryFile(path string, data []byte) error {
	h.written[path] = data
	return nil
}
func (h *fakeHost) IsRegularFile(path string) bool {
	_, ok := h.files[path]
	return ok
}
func (h *fakeHost) CreateDirectories(path string) error {
	h.dirsMade[path] = true
	return nil
}
func (h *fakeHost) CopyFile(src, dst string, updateExisting bool) error {
	if h.copyErr != nil {
		return h.copyErr
	}
	h.written[dst] = h.files[src]
	return nil
}
func (h *fakeHost) LocateFile(currentFile, relativePath string) (string, string, bool) {
	return "", "", false
}
func (h *fakeHost) LocateWildcardFiles(currentFile, pattern string) ([]source.WildcardMatch, error) {
	return nil, nil
}

func TestDedupIsIdempotentAcrossRepeatedResolution(t *testing.T) {
	host := newFakeHost()
	mgr := source.NewManager(host, operator.New(), reporter.NewHandler(nil))

	assert.True(t, mgr.Dedup("/a/b.lang"))
	assert.False(t, mgr.Dedup("/a/b.lang"), "the same canonical path must not be re-included")
	assert.True(t, mgr.Dedup("/a/c.lang"))

	assert.ElementsMatch(t, []string{"/a/b.lang", "/a/c.lang"}, mgr.Processed())
}

func TestPrimeSourcesOpensTokenizerPerPendingEntry(t *testing.T) {
	host := newFakeHost()
	host.files["/a/b.lang"] = []byte("x y z\n")
	mgr := source.NewManager(host, operator.New(), reporter.NewHandler(nil))

	mgr.EnqueueSource(source.PendingSource{FilePath: "b.lang", FullPath: "/a/b.lang", Required: source.RequiredYes})
	opened := mgr.PrimeSources()
	require.Len(t, opened, 1)
	assert.Equal(t, "b.lang", opened[0].FilePath)
	assert.False(t, opened[0].Tok.Empty())
}

func TestMissingRequiredSourceEmitsError(t *testing.T) {
	host := newFakeHost()
	var got []reporter.Diagnostic
	mgr := source.NewManager(host, operator.New(), reporter.NewHandler(func(d reporter.Diagnostic) {
		got = append(got, d)
	}))

	mgr.EnqueueSource(source.PendingSource{FilePath: "missing.lang", FullPath: "/a/missing.lang", Required: source.RequiredYes})
	opened := mgr.PrimeSources()
	assert.Empty(t, opened)
	require.Len(t, got, 1)
	assert.Equal(t, reporter.SeverityError, got[0].Severity)
	assert.Equal(t, "source-not-found", got[0].Name)
}

func TestMissingOptionalSourceIsSilent(t *testing.T) {
	host := newFakeHost()
	var got []reporter.Diagnostic
	mgr := source.NewManager(host, operator.New(), reporter.NewHandler(func(d reporter.Diagnostic) {
		got = append(got, d)
	}))

	mgr.EnqueueSource(source.PendingSource{FilePath: "maybe.lang", FullPath: "/a/maybe.lang", Required: source.RequiredNo})
	opened := mgr.PrimeSources()
	assert.Empty(t, opened)
	assert.Empty(t, got)
}

func TestAssetRenamePathRejectsParentTraversal(t *testing.T) {
	host := newFakeHost()
	host.files["/a/bee.txt"] = []byte("honey")
	var got []reporter.Diagnostic
	mgr := source.NewManager(host, operator.New(), reporter.NewHandler(func(d reporter.Diagnostic) {
		got = append(got, d)
	}))

	mgr.EnqueueAsset(source.PendingAsset{
		FilePath: "bee.txt", FullPath: "/a/bee.txt",
		RenamePath: "../out/bee.txt", Required: source.RequiredYes,
	})
	mgr.ProcessPendingAssets()
	require.Len(t, got, 1)
	assert.Equal(t, "output-failure", got[0].Name)
	assert.Empty(t, host.written)
}

func TestAssetCopiesToRenamedDestination(t *testing.T) {
	host := newFakeHost()
	host.files["/a/bee.txt"] = []byte("honey")
	mgr := source.NewManager(host, operator.New(), reporter.NewHandler(nil))

	mgr.EnqueueAsset(source.PendingAsset{
		FilePath: "bee.txt", FullPath: "/a/bee.txt",
		RenamePath: "out/bee_food.txt", Required: source.RequiredYes,
	})
	mgr.ProcessPendingAssets()
	assert.Equal(t, []byte("honey"), host.written["out/bee_food.txt"])
	assert.True(t, host.dirsMade["out"])
}

func TestExpandRenameTemplateSubstitutesCapturesInOrder(t *testing.T) {
	got := source.ExpandRenameTemplate("out/?op/*_food.txt", []string{"b", "apple"})
	assert.Equal(t, "out/bop/apple_food.txt", got)
}
