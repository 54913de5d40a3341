// Package logging provides colored, leveled logging for rnversion.
//
// INFO and SUCCESS messages go to stdout, WARN, ERROR and DEBUG messages go to
// stderr. Both loggers share the same level and the same lipgloss styles.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	stdoutLogger = newLogger(os.Stdout)
	stderrLogger = newLogger(os.Stderr)

	currentStdout io.Writer = os.Stdout
)

func newLogger(w io.Writer) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	l.SetStyles(levelStyles())
	return l
}

// levelStyles returns the level labels used by both loggers.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(lipgloss.Color("#7F6DFF"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Foreground(lipgloss.Color("#42E7FF"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Foreground(lipgloss.Color("#FFE763"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(lipgloss.Color("#FF4473"))

	return styles
}

// Info logs an informational message to stdout.
func Info(format string, v ...any) {
	stdoutLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs a warning to stderr.
func Warn(format string, v ...any) {
	stderrLogger.Warn(fmt.Sprintf(format, v...))
}

// Error logs an error to stderr.
func Error(format string, v ...any) {
	stderrLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message to stderr.
func Debug(format string, v ...any) {
	stderrLogger.Debug(fmt.Sprintf(format, v...))
}

// Success logs at INFO level with a green SUCCESS label. It is suppressed
// whenever INFO is.
func Success(format string, v ...any) {
	if stdoutLogger.GetLevel() > log.InfoLevel {
		return
	}

	styles := levelStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("SUCCESS").
		Foreground(lipgloss.Color("#60F281"))

	l := log.NewWithOptions(currentStdout, log.Options{ReportTimestamp: false})
	l.SetStyles(styles)
	l.Info(fmt.Sprintf(format, v...))
}

// SetLevel sets the minimum level for both loggers. Accepted values are
// debug, info, warn and error, case insensitive.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	stdoutLogger.SetLevel(lvl)
	stderrLogger.SetLevel(lvl)
	return nil
}

// SetOutput redirects the stdout and stderr loggers. The current level is kept.
func SetOutput(stdout, stderr io.Writer) {
	lvl := stdoutLogger.GetLevel()

	stdoutLogger = newLogger(stdout)
	stderrLogger = newLogger(stderr)
	stdoutLogger.SetLevel(lvl)
	stderrLogger.SetLevel(lvl)
	currentStdout = stdout
}
