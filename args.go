package slogtune

import (
	"unicode"

	"github.com/pkg/errors"
)

// LevelRequest pairs a level with the namespaces it applies to. An empty
// namespace list addresses the root logger.
type LevelRequest struct {
	Level      Level
	Namespaces []string
}

// ParseLevelArgs processes the token list of a --set_logging_level invocation
// left to right. The first token must be an upper-case level name; subsequent
// upper-case tokens switch the current level, all other tokens are namespaces
// for the current level. A level with no trailing namespaces produces a
// root-level request. Repeated mentions of the same level merge into one
// request; first-seen order is preserved.
func ParseLevelArgs(tokens []string) ([]LevelRequest, error) {
	if len(tokens) == 0 {
		return nil, errors.New("at least one <LEVEL> token is required")
	}
	if !isUpperToken(tokens[0]) {
		return nil, &UnknownLevelError{Name: tokens[0]}
	}

	cur, err := ParseLevel(tokens[0])
	if err != nil {
		return nil, err
	}
	reqs := []LevelRequest{{Level: cur}}
	index := map[Level]int{cur: 0}

	for _, tok := range tokens[1:] {
		if isUpperToken(tok) {
			cur, err = ParseLevel(tok)
			if err != nil {
				return nil, err
			}
			if _, ok := index[cur]; !ok {
				index[cur] = len(reqs)
				reqs = append(reqs, LevelRequest{Level: cur})
			}
			continue
		}
		i := index[cur]
		reqs[i].Namespaces = append(reqs[i].Namespaces, tok)
	}
	return reqs, nil
}

// isUpperToken reports whether s contains at least one cased rune and none of
// them is lower case. Namespace tokens always carry lower-case package
// segments, level names never do.
func isUpperToken(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}
