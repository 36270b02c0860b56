// Package logx configures coursesched's structured logging.
//
// It is a small wrapper (logx.Logger) on top of zerolog so that library code
// receives an injected logger value instead of touching global state:
//   - Console output readable (short timestamp + short caller)
//   - JSON output when writing to a non-terminal sink
//   - Zero value is a safe no-op logger
package logx
