package repair

import (
	"regexp"
	"strings"
)

// shortWords is the closed list of connective words the glued-word rule
// recognizes, in match-preference order.
var shortWords = []string{"of", "and", "the", "in", "on", "at", "by", "for", "with", "to"}

type rule struct {
	re   *regexp.Regexp
	repl string
}

// The rule chain is shared by all engines; each Engine keeps only its own
// fix counter.
var rules = []rule{
	{regexp.MustCompile(`([a-z])([A-Z])`), "$1 $2"},
	{regexp.MustCompile(`([.!?])([A-Z])`), "$1 $2"},
	{regexp.MustCompile(`([a-z])(` + strings.Join(shortWords, "|") + `)([A-Z])`), "$1 $2 $3"},
	{regexp.MustCompile(`([a-z])([0-9])`), "$1 $2"},
	{regexp.MustCompile(`\s+`), " "},
}

// Engine applies the spacing heuristics and counts how many inputs it
// changed. The counter is scoped to the engine, so each conversion run
// creates its own. An Engine is not safe for concurrent use.
type Engine struct {
	fixes int
}

// NewEngine returns an Engine with a zeroed fix counter.
func NewEngine() *Engine {
	return &Engine{}
}

// Repair returns s with the spacing rules applied in order. An empty input
// returns empty. If a rule fails, the input is returned unchanged rather
// than propagating the failure. The fix counter advances once per call
// whose output differs from its input.
func (e *Engine) Repair(s string) (out string) {
	if s == "" {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			out = s
		}
	}()

	out = s
	for _, ru := range rules {
		out = ru.re.ReplaceAllString(out, ru.repl)
	}
	if out != s {
		e.fixes++
	}
	return out
}

// Fixes returns how many Repair calls changed their input since the last
// Reset.
func (e *Engine) Fixes() int {
	return e.fixes
}

// Reset zeroes the fix counter.
func (e *Engine) Reset() {
	e.fixes = 0
}
