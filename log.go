package shell

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
)

// shellLogLevel controls the log level for shell diagnostics.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var shellLogLevel = new(slog.LevelVar)

// logger is the logger for window pump and control-plane diagnostics.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: shellLogLevel}))

// SetVerbose enables or disables verbose/debug logging for the shell.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		shellLogLevel.Set(slog.LevelDebug)
	} else {
		shellLogLevel.Set(slog.LevelInfo)
	}
}

// Logger returns the logger used by the shell, so backends share it.
func Logger() *slog.Logger {
	return logger
}

// callerLocation reports the file:line of the caller's caller, for
// diagnostics on dropped handler calls. skip counts stack frames above
// this function.
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
