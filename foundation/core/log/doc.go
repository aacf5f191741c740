// Package log provides the structured logger used across acdc.
//
// Loggers are values configured through With* methods that return copies,
// so a component can derive a named child without affecting its parent:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatConsole})
//	lexLog := logger.WithName("lexer").WithRequestID(id)
//	lexLog.Trace("token", log.Fields{"kind": "INT_LIT", "line": 1})
//
// Errors carrying an acdc error code can be passed to LogError, which picks
// the level from the error severity.
package log
