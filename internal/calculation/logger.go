package calculation

// Logger is the logging interface used by the calculation engine.
// *zap.SugaredLogger satisfies it; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// planLogger prefixes every message with the plan name so interleaved
// output from parallel plan runs stays attributable.
type planLogger struct {
	plan string
	next Logger
}

func withPlan(l Logger, plan string) Logger {
	return planLogger{plan: plan, next: l}
}

func (p planLogger) Debugf(format string, args ...any) {
	p.next.Debugf("[%s] "+format, append([]any{p.plan}, args...)...)
}

func (p planLogger) Infof(format string, args ...any) {
	p.next.Infof("[%s] "+format, append([]any{p.plan}, args...)...)
}

func (p planLogger) Warnf(format string, args ...any) {
	p.next.Warnf("[%s] "+format, append([]any{p.plan}, args...)...)
}

func (p planLogger) Errorf(format string, args ...any) {
	p.next.Errorf("[%s] "+format, append([]any{p.plan}, args...)...)
}
