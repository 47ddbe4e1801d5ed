package message

import (
	"fmt"
	"strings"
)

// Level is a message severity. Lower values are more severe; filtering keeps
// every message whose level is at or below the chosen one.
type Level int

const (
	Error Level = iota
	Warning
	Status
	Verbose
	Debug
)

var levelNames = [...]string{"Error", "Warning", "Status", "Verbose", "Debug"}

// InvalidLevelError reports a level name that is not one of the five known levels.
type InvalidLevelError struct {
	Name string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid level %q (want one of %s)", e.Name, strings.Join(levelNames[:], ", "))
}

// ParseLevel converts a level name to a Level, ignoring case and surrounding whitespace.
func ParseLevel(name string) (Level, error) {
	trimmed := strings.TrimSpace(name)
	for i, known := range levelNames {
		if strings.EqualFold(trimmed, known) {
			return Level(i), nil
		}
	}
	return 0, &InvalidLevelError{Name: name}
}

// Levels returns every level from most to least severe.
func Levels() []Level {
	return []Level{Error, Warning, Status, Verbose, Debug}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l >= Error && l <= Debug
}

// String returns the canonical level name.
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Ordinal returns the numeric position of l, 0 for Error through 4 for Debug.
func (l Level) Ordinal() int {
	return int(l)
}

// Next cycles to the next more verbose level, wrapping from Debug to Error.
func (l Level) Next() Level {
	if l >= Debug || l < Error {
		return Error
	}
	return l + 1
}

// Includes reports whether a message at level other passes a filter set to l.
func (l Level) Includes(other Level) bool {
	return other <= l
}

// LevelFormat selects how the level tag is printed.
type LevelFormat int

const (
	FormatNone LevelFormat = iota
	FormatShort
	FormatLong
)

// ParseLevelFormat accepts "short", "long", or one of "", "none", "off", "false".
func ParseLevelFormat(value string) (LevelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "short":
		return FormatShort, nil
	case "long":
		return FormatLong, nil
	case "", "none", "off", "false":
		return FormatNone, nil
	default:
		return FormatNone, fmt.Errorf("invalid level format %q", value)
	}
}

func (f LevelFormat) String() string {
	switch f {
	case FormatShort:
		return "short"
	case FormatLong:
		return "long"
	default:
		return "none"
	}
}

// Next cycles long -> short -> none -> long.
func (f LevelFormat) Next() LevelFormat {
	switch f {
	case FormatLong:
		return FormatShort
	case FormatShort:
		return FormatNone
	default:
		return FormatLong
	}
}
