package property

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// DebugID is a stable short identifier for a property name, so log lines of
// the same property can be correlated across runs.
func DebugID(name string) string {
	return strconv.FormatUint(xxhash.Sum64String(name)&0xffffffff, 16)
}

func (s *System) debug(msg, name string, attrs ...slog.Attr) {
	if name == "" || !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs = append(attrs, slog.String("property", name), slog.String("id", DebugID(name)))
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
