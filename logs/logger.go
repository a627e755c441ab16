package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// New returns a logger writing text to w and, when file is set, JSON lines
// appended to file. The returned closer releases the file. Both handlers
// share level, so a *slog.LevelVar changes them together.
func New(w io.Writer, level slog.Leveler, file string) (*slog.Logger, io.Closer, error) {
	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
	}

	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
		closer = f
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error {
	return nil
}
