package reporter

import (
	"fmt"
	"sync"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/token"
)

// Severity classifies how a Diagnostic affects compilation (spec §7):
// informationals are advisory only, warnings may be silenced/forced-to-error
// by a directive, errors are recorded but compilation continues, and fatal
// terminates compilation outright (SourceNotFound on a command-line source).
type Severity int

const (
	SeverityInformational Severity = iota
	SeverityWarning
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInformational:
		return "informational"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one reported fault: its severity, the IANA-style category
// name, the rendered human-readable message, the location of the
// triggering token (after any [[file=]]/[[line=]] remap), and the
// CompileState that was in force there - the very snapshot the triggering
// token carries, per spec §1(c). A warning Diagnostic's Severity already
// reflects that State's force-as-error bit; the code that builds the
// Diagnostic does that translation before calling Handler.Report.
type Diagnostic struct {
	Severity Severity
	Name     string
	Message  string
	Location token.Location
	State    *compilestate.State
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Name, d.Message)
}

// AsErrorWithPos adapts d to the ErrorWithPos shape, for callers that
// want a plain Go error instead of a Diagnostic value.
func (d Diagnostic) AsErrorWithPos() ErrorWithPos {
	return errorWithLocation{pos: d.Location, underlying: fmt.Errorf("%s: %s", d.Name, d.Message)}
}

// Callback receives every Diagnostic as it is reported. It must not
// block: the tokenizer and parser driver invoke it synchronously, inline
// with scanning.
type Callback func(Diagnostic)

// Handler is the callback bundle threaded through the tokenizer and
// parser driver. It never unwinds the stack for an Error or Warning
// severity diagnostic; Throw is reserved for conditions that prevent
// token creation outright (internal assertion failures), matching the
// "one throwing variant" carve-out in spec §7/§9.
type Handler struct {
	callback Callback
	abort    func() bool

	mu           sync.Mutex
	errsReported bool
	fatal        bool
}

// NewHandler builds a Handler that delivers every Diagnostic to cb. A nil
// cb is valid; diagnostics are still tallied for Result/ShouldAbort, just
// never observed by the caller.
func NewHandler(cb Callback) *Handler {
	return &Handler{callback: cb}
}

// SetExternalAbort installs a cooperative cancellation predicate (spec
// §5's "should-abort callback") that ShouldAbort also consults, in
// addition to any fatal Diagnostic already reported.
func (h *Handler) SetExternalAbort(f func() bool) {
	h.abort = f
}

// Report delivers d to the configured callback and updates the handler's
// bookkeeping.
func (h *Handler) Report(d Diagnostic) {
	h.mu.Lock()
	if d.Severity >= SeverityError {
		h.errsReported = true
	}
	if d.Severity == SeverityFatal {
		h.fatal = true
	}
	h.mu.Unlock()
	if h.callback != nil {
		h.callback(d)
	}
}

// ShouldAbort reports whether a fatal Diagnostic has been reported, or
// the externally-installed cancellation predicate (if any) says to stop.
// The parser driver's main loop and its process loop poll this between
// tokens and between directives; the tokenizer does not consult it.
func (h *Handler) ShouldAbort() bool {
	h.mu.Lock()
	fatal := h.fatal
	h.mu.Unlock()
	return fatal || (h.abort != nil && h.abort())
}

// ErrsReported reports whether any error-or-worse severity Diagnostic has
// been reported so far.
func (h *Handler) ErrsReported() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.errsReported
}

// Result returns ErrInvalidSource once any error-or-worse severity
// Diagnostic has been reported, else nil.
func (h *Handler) Result() error {
	if h.ErrsReported() {
		return ErrInvalidSource
	}
	return nil
}

// throwSignal is the payload of the panic Handler.Throw raises. It is
// recovered by RecoverThrow, never by a caller reaching into recover()
// directly - that keeps the "one throwing variant" an explicit, narrow
// protocol instead of an ordinary panic any code might catch by accident.
type throwSignal struct {
	Diagnostic Diagnostic
}

// Throw reports d and then panics, for the narrow set of conditions where
// continuing would mean fabricating a Token that cannot exist (spec §9:
// "reserved for abort paths where token-emission cannot continue").
func (h *Handler) Throw(d Diagnostic) {
	h.Report(d)
	panic(throwSignal{Diagnostic: d})
}

// RecoverThrow recovers a panic raised by Handler.Throw, returning the
// Diagnostic that was thrown and true. Any other panic value is
// re-panicked unchanged.
func RecoverThrow() (Diagnostic, bool) {
	r := recover()
	if r == nil {
		return Diagnostic{}, false
	}
	ts, ok := r.(throwSignal)
	if !ok {
		panic(r)
	}
	return ts.Diagnostic, true
}
