package cmd

import (
	"encoding/json"
	"io"
	"runtime"
	"strings"
	"time"
)

type ndjsonEvent struct {
	Timestamp  string         `json:"timestamp"`
	Level      string         `json:"level"`
	Event      string         `json:"event"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}

func emitNDJSON(w io.Writer, level, event, message string, details map[string]any, suggestion string) {
	if w == nil {
		return
	}
	e := ndjsonEvent{
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Level:      level,
		Event:      event,
		Message:    message,
		Details:    details,
		Suggestion: suggestion,
	}
	buf, err := json.Marshal(e)
	if err != nil {
		fallback, _ := json.Marshal(ndjsonEvent{
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			Level:     "error",
			Event:     "logger_error",
			Message:   "NDJSON serialization failed",
			Details:   map[string]any{"reason": err.Error()},
		})
		_, _ = w.Write(append(fallback, '\n'))
		return
	}
	_, _ = w.Write(append(buf, '\n'))
}

func suggestionForTopError(errText string) string {
	lower := strings.ToLower(errText)
	switch {
	case strings.Contains(errText, "an input directory is required"):
		return "pass the directory to scan, for example: flac-directory -r /path/to/music"
	case strings.Contains(errText, "ffmpeg not found"):
		switch runtime.GOOS {
		case "darwin":
			return "run brew install ffmpeg first; if it is installed but not on PATH, use --ffmpeg-path"
		case "windows":
			return "run scoop install ffmpeg (or choco install ffmpeg); if PATH is stale, use --ffmpeg-path"
		default:
			return "run sudo apt-get install ffmpeg (or your system package manager); --ffmpeg-path also works"
		}
	case strings.Contains(errText, "not a valid directory"):
		return "check that the input path exists and is a directory; prefer an absolute path"
	case strings.Contains(lower, "permission denied"):
		return "check file permissions: sources must be readable and the directory writable"
	default:
		return "check the error details, input path, permissions and the ffmpeg installation, then retry"
	}
}

func EmitUnhandledError(w io.Writer, err error) {
	if err == nil {
		return
	}
	emitNDJSON(w, "error", "fatal_error", "run failed", map[string]any{
		"error": err.Error(),
	}, suggestionForTopError(err.Error()))
}
