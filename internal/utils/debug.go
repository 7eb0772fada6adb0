package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/convertlength/convertlength/internal/config"
)

// DefaultLogRetention is how many debug logs CleanupLogs keeps by default
const DefaultLogRetention = 5

var (
	debugMu   sync.Mutex
	debugDir  string
	debugFile *os.File
	debugLog  = zerolog.Nop()
	debugOpen bool
)

// ConfigureDebug points the debug log at dir. The file is created on the next Debug call.
func ConfigureDebug(dir string) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugFile != nil {
		debugFile.Close()
		debugFile = nil
	}
	debugDir = dir
	debugLog = zerolog.Nop()
	debugOpen = false
}

func logsDir() string {
	if debugDir != "" {
		return debugDir
	}
	return config.GetLogsDir()
}

// openDebugLog must be called with debugMu held
func openDebugLog() {
	debugOpen = true

	dir := logsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}
	name := fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	debugFile = f
	debugLog = zerolog.New(f).With().Timestamp().Logger()
}

// Debug writes a formatted line to the debug log
func Debug(format string, args ...any) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if !debugOpen {
		openDebugLog()
	}
	debugLog.Debug().Msgf(format, args...)
}

// CleanupLogs deletes all but the newest keep debug logs
func CleanupLogs(keep int) {
	debugMu.Lock()
	dir := logsDir()
	debugMu.Unlock()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "debug-") && strings.HasSuffix(name, ".log") {
			logs = append(logs, name)
		}
	}
	if len(logs) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		_ = os.Remove(filepath.Join(dir, name))
	}
}
