package source

import (
	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/token"
)

func triggeringLocation(t *token.Token) token.Location {
	if t == nil {
		return token.Location{}
	}
	return t.Origin
}

func (m *Manager) reportMissing(required Required, errCode diag.ErrorCode, warnCode diag.WarningCode, path string, triggering *token.Token, state *compilestate.State) {
	loc := triggeringLocation(triggering)
	args := map[string]string{"path": path}
	switch required {
	case RequiredYes:
		if state != nil && !state.Errors.At(errCode).Enabled {
			return
		}
		m.handler.Report(reporter.Diagnostic{
			Severity: reporter.SeverityError,
			Name:     errCode.String(),
			Message:  diag.Format(errCode.Template(), args),
			Location: loc,
			State:    state,
		})
	case RequiredWarn:
		sev := reporter.SeverityWarning
		if state != nil {
			w := state.Warnings.At(warnCode)
			if !w.Enabled {
				return
			}
			if w.ForceAsError {
				sev = reporter.SeverityError
			}
		}
		m.handler.Report(reporter.Diagnostic{
			Severity: sev,
			Name:     warnCode.String(),
			Message:  diag.Format(warnCode.Template(), args),
			Location: loc,
			State:    state,
		})
	case RequiredNo:
		// silent, per spec §4.7.
	}
}

func (m *Manager) reportOutputFailure(path, reason string, triggering *token.Token, state *compilestate.State) {
	loc := triggeringLocation(triggering)
	if state != nil && !state.Errors.At(diag.OutputFailure).Enabled {
		return
	}
	m.handler.Report(reporter.Diagnostic{
		Severity: reporter.SeverityError,
		Name:     diag.OutputFailure.String(),
		Message:  diag.Format(diag.OutputFailure.Template(), map[string]string{"path": path, "reason": reason}),
		Location: loc,
		State:    state,
	})
}
