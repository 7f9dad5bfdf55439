// Package debug provides smart-diff's ambient logging: silent by default,
// redirectable to a file or writer, and suppressible in "quiet mode" for
// embedders that drive the core over a transport where stray stdout text
// would corrupt a wire protocol. Modeled on the teacher's internal/debug
// package (package-level mutex-guarded writer, EnableDebug/MCPMode flags).
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnableDebug can be overridden at build time:
//
//	go build -ldflags "-X github.com/standardbeagle/smart-diff/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// QuietMode suppresses all debug output regardless of EnableDebug, the
// analogue of the teacher's MCPMode for an embedder that must keep stdio
// clean (e.g. a JSON-RPC transport shell wrapping this core).
var QuietMode = false

var (
	mu     sync.Mutex
	output io.Writer
	file   *os.File
)

// SetQuietMode toggles suppression of all debug output.
func SetQuietMode(enabled bool) { QuietMode = enabled }

// SetOutput sets a custom writer for debug output. Pass nil to disable.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// InitLogFile opens a timestamped log file under the OS temp directory and
// routes debug output to it. Returns the path, or an error if creation
// failed.
func InitLogFile() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Join(os.TempDir(), "smart-diff-debug-logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create debug log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("debug-%s.log", time.Now().Format("2006-01-02T150405")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create debug log file: %w", err)
	}
	file = f
	output = f
	return path, nil
}

// Close releases the log file handle if one is open.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
		output = nil
	}
}

// enabled reports whether debug output should be emitted right now.
func enabled() bool {
	return !QuietMode && (EnableDebug == "true" || output != nil)
}

// Logf writes a formatted debug line with stage context, a no-op unless
// debug output is enabled.
func Logf(stage, format string, args ...any) {
	if !enabled() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	w := output
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "[%s] %s\n", stage, fmt.Sprintf(format, args...))
}
