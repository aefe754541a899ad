// Package log provides the structured logger used by the command-line tools.
//
// It wraps go.uber.org/zap with a small configuration surface: level, output
// format, stdout or stderr, and an optional rotating log file backed by lumberjack.
// The library packages of this module never log through the global logger;
// they accept a *zap.Logger from their caller instead.
package log
