// Package log is a leveled key=value logger writing one line per event.
package log

import (
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sort"
	"strings"
)

// Level is a severity threshold. Higher is more severe.
type Level int

const (
	LevelDebug Level = 10
	LevelInfo  Level = 20
	LevelWarn  Level = 30
	LevelError Level = 40
	LevelNone  Level = 100
)

// ErrUnknownLevel is returned for level names outside of the accepted set.
var ErrUnknownLevel = errors.New("log: unknown level")

var levelNames = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
	"none":  LevelNone,
}

var levelAliases = map[string]string{
	"trace":   "debug",
	"warning": "warn",
	"silent":  "none",
}

// ParseLevel resolves a level name or alias. Names are matched exactly.
func ParseLevel(name string) (Level, error) {
	key := name
	if alias, ok := levelAliases[key]; ok {
		key = alias
	}
	if l, ok := levelNames[key]; ok {
		return l, nil
	}
	return 0, fmt.Errorf("%w %q, use one of: %s", ErrUnknownLevel, name, strings.Join(LevelNames(), ", "))
}

// LevelNames lists the canonical level names, least severe first.
func LevelNames() []string {
	names := make([]string, 0, len(levelNames))
	for name := range levelNames {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return levelNames[names[i]] < levelNames[names[j]] })
	return names
}

func (l Level) String() string {
	for name, v := range levelNames {
		if v == l {
			return name
		}
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Logger emits events at or above its threshold.
type Logger struct {
	out    *stdlog.Logger
	prefix string
	level  Level
}

// New returns a logger writing to w (stderr when nil). The prefix is rendered in brackets.
func New(w io.Writer, prefix string, level Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		out:    stdlog.New(w, "", 0),
		prefix: prefix,
		level:  level,
	}
}

// SetLevel changes the threshold by name. The threshold is unchanged on error.
func (l *Logger) SetLevel(name string) error {
	level, err := ParseLevel(name)
	if err != nil {
		return err
	}
	l.level = level
	return nil
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether an event of the given level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level && level < LevelNone
}

// Log writes an event at a level name or alias, see ParseLevel. Unknown level names drop the
// event.
func (l *Logger) Log(level, msg string, kv ...any) {
	v, err := ParseLevel(level)
	if err != nil {
		return
	}
	l.log(v, msg, kv...)
}

func (l *Logger) Debug(msg string, kv ...any) { l.log(LevelDebug, msg, kv...) }
func (l *Logger) Info(msg string, kv ...any)  { l.log(LevelInfo, msg, kv...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.log(LevelWarn, msg, kv...) }

// Error logs at error level, err goes first in the key/value list when not nil.
func (l *Logger) Error(msg string, err error, kv ...any) {
	if err != nil {
		kv = append([]any{"err", err}, kv...)
	}
	l.log(LevelError, msg, kv...)
}

func (l *Logger) log(level Level, msg string, kv ...any) {
	if l == nil || !l.Enabled(level) {
		return
	}

	var b strings.Builder
	if l.prefix != "" {
		b.WriteString("[" + l.prefix + "]")
	}
	b.WriteString("[" + strings.ToUpper(level.String()) + "] ")
	b.WriteString(msg)
	b.WriteString(formatKVs(kv...))
	l.out.Println(b.String())
}

func formatKVs(kv ...any) string {
	var out strings.Builder
	// Pairs of key, value; a trailing key without value is ignored.
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		out.WriteString(" " + key + "=")
		switch v := kv[i+1].(type) {
		case string:
			if v == "" || strings.ContainsAny(v, " =\"") {
				out.WriteString(fmt.Sprintf("%q", v))
			} else {
				out.WriteString(v)
			}
		default:
			out.WriteString(fmt.Sprint(v))
		}
	}
	return out.String()
}
