package logtail

import (
	"strings"

	"github.com/five82/msgcue/internal/message"
)

// Entry is a raw log line split into a level and the text to display.
type Entry struct {
	Level   message.Level
	Content string
}

var levelTokens = map[string]message.Level{
	"ERROR":   message.Error,
	"ERR":     message.Error,
	"FATAL":   message.Error,
	"PANIC":   message.Error,
	"CRIT":    message.Error,
	"WARN":    message.Warning,
	"WARNING": message.Warning,
	"INFO":    message.Status,
	"STATUS":  message.Status,
	"NOTICE":  message.Status,
	"VERBOSE": message.Verbose,
	"TRACE":   message.Verbose,
	"DEBUG":   message.Debug,
	"DBG":     message.Debug,
}

// scanFields bounds how far into a line the level token may appear, which
// covers "date time LEVEL ..." layouts without matching words in the message.
const scanFields = 4

// Classify finds the first level token near the start of line, in forms such
// as "ERROR", "[warn]", "level=debug" or "INFO:", and removes it from the
// content. Lines without a token are Status.
func Classify(line string) Entry {
	fields := strings.Fields(line)
	for i := 0; i < len(fields) && i < scanFields; i++ {
		level, ok := levelTokens[normalizeToken(fields[i])]
		if !ok {
			continue
		}
		rest := make([]string, 0, len(fields)-1)
		rest = append(rest, fields[:i]...)
		rest = append(rest, fields[i+1:]...)
		return Entry{Level: level, Content: strings.Join(rest, " ")}
	}
	return Entry{Level: message.Status, Content: strings.TrimRight(line, " \t")}
}

func normalizeToken(field string) string {
	token := strings.ToUpper(field)
	for _, prefix := range []string{"LEVEL=", "LVL=", "SEVERITY="} {
		token = strings.TrimPrefix(token, prefix)
	}
	return strings.Trim(token, `[]():"'`)
}
