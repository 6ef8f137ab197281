package source

import (
	"path/filepath"
	"strings"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/operator"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/tokenizer"
)

// Manager is component H: it owns the pending-source/pending-asset
// queues a directive enqueues into, the include-dedup set keyed by
// canonical full path, and the host filesystem seam those queues are
// drained through once per pass of the parser driver's main loop (spec
// §4.7, §4.8).
type Manager struct {
	host    Host
	lut     *operator.Lut
	handler *reporter.Handler

	dedup PendingSet

	pendingSources []PendingSource
	pendingAssets  []PendingAsset
}

// NewManager builds a Manager backed by host, minting tokenizers off lut
// and reporting through handler.
func NewManager(host Host, lut *operator.Lut, handler *reporter.Handler) *Manager {
	return &Manager{host: host, lut: lut, handler: handler}
}

// Dedup reports whether fullPath is newly seen (true) or was already
// included (false), per spec §8 testable property 7 ("wild-card
// inclusion is idempotent").
func (m *Manager) Dedup(fullPath string) bool {
	return m.dedup.Add(canonicalize(fullPath))
}

// ResolveWildcard expands pattern relative to currentFile's directory.
func (m *Manager) ResolveWildcard(currentFile, pattern string) ([]WildcardMatch, error) {
	return m.host.LocateWildcardFiles(currentFile, pattern)
}

// EnqueueSource queues a resolved source file for priming. Callers are
// expected to have already deduped fullPath via Dedup.
func (m *Manager) EnqueueSource(p PendingSource) {
	m.pendingSources = append(m.pendingSources, p)
}

// EnqueueAsset queues a resolved asset file for copying.
func (m *Manager) EnqueueAsset(p PendingAsset) {
	m.pendingAssets = append(m.pendingAssets, p)
}

// Processed returns every canonical full path seen so far, in ascending
// order (PendingSet is ordered specifically so this is deterministic).
func (m *Manager) Processed() []string {
	return m.dedup.Keys()
}

// HasPending reports whether either queue holds work the parser driver
// hasn't drained yet - the condition that makes process() yield back to
// the main loop early (spec §4.7).
func (m *Manager) HasPending() bool {
	return len(m.pendingSources) > 0 || len(m.pendingAssets) > 0
}

func startingState(inherited *compilestate.State, inheritedTabStop int) *compilestate.State {
	var st *compilestate.State
	if inherited != nil {
		st = compilestate.Fork(inherited)
	} else {
		st = compilestate.New()
	}
	if inheritedTabStop > 0 {
		st.TabStopWidth = inheritedTabStop
	}
	return st
}

// PrimeSources drains the pending-source queue, reading each file's
// bytes and wrapping it in an open *Source (tokenizer + persistent
// state), per spec §4.8. Sources whose bytes can't be read raise
// SourceNotFound (Required==Yes; fatal for a source named on the command
// line) or SourceNotFoundWarning
// (Required==Warn); Required==No is silent. The returned Sources are in
// the order PendingSource entries were enqueued - the caller (parser
// driver) is responsible for front-inserting them into the active
// source list so includes are parsed before the remainder of the
// including file (spec §4.7).
func (m *Manager) PrimeSources() []*Source {
	pending := m.pendingSources
	m.pendingSources = nil

	out := make([]*Source, 0, len(pending))
	for _, p := range pending {
		buf, ok := m.host.ReadBinaryFile(p.FullPath)
		if !ok {
			if p.FromCommandLine {
				m.handler.Report(reporter.Diagnostic{
					Severity: reporter.SeverityFatal,
					Name:     diag.SourceNotFound.String(),
					Message:  diag.Format(diag.SourceNotFound.Template(), map[string]string{"path": p.FullPath}),
				})
				continue
			}
			m.reportMissing(p.Required, diag.SourceNotFound, diag.SourceNotFoundWarning, p.FullPath, p.Triggering, p.InheritedState)
			continue
		}
		st := startingState(p.InheritedState, p.InheritedTabStop)
		src := &Source{FilePath: p.FilePath, FullPath: p.FullPath, FromCommandLine: p.FromCommandLine, state: st}
		src.Tok = tokenizer.New(p.FilePath, buf, m.lut, src.State, m.handler)
		out = append(out, src)
	}
	return out
}

// ProcessPendingAssets drains the pending-asset queue, copying each
// asset to its (possibly renamed) destination, per spec §4.7: rename
// paths that are absolute or contain ".." are rejected, the destination
// directory is created if missing, and the copy uses update-existing
// semantics.
func (m *Manager) ProcessPendingAssets() {
	pending := m.pendingAssets
	m.pendingAssets = nil

	for _, p := range pending {
		if !m.host.IsRegularFile(p.FullPath) {
			m.reportMissing(p.Required, diag.AssetNotFound, diag.AssetNotFoundWarning, p.FullPath, p.Triggering, p.InheritedState)
			continue
		}

		dst := p.RenamePath
		if dst == "" {
			dst = p.FilePath
		}
		if filepath.IsAbs(dst) || containsDotDot(dst) {
			m.reportOutputFailure(dst, "rename path must be relative and may not contain \"..\"", p.Triggering, p.InheritedState)
			continue
		}
		if err := m.host.CreateDirectories(filepath.Dir(dst)); err != nil {
			m.reportOutputFailure(dst, err.Error(), p.Triggering, p.InheritedState)
			continue
		}
		if err := m.host.CopyFile(p.FullPath, dst, true); err != nil {
			m.reportOutputFailure(dst, err.Error(), p.Triggering, p.InheritedState)
		}
	}
}

func containsDotDot(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return true
		}
	}
	return false
}
