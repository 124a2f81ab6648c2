package slogtune

import "strings"

// ExpandNamespace resolves bracketed namespace declarations like
// "a.[b,c.[d,e]]" into the flat list ["a.b", "a.c.d", "a.c.e"].
// A namespace without brackets is returned unchanged as a single-element list.
func ExpandNamespace(spec string) ([]string, error) {
	if !strings.Contains(spec, "[") {
		return []string{spec}, nil
	}

	prefix, suffix, _ := strings.Cut(spec, "[")
	if !strings.HasSuffix(prefix, ".") {
		return nil, &SyntaxError{
			Spec:   spec,
			Detail: "the namespace separator \".\" between " + quote(prefix) + " and " + quote("["+suffix) + " is missing",
		}
	}
	if !strings.HasSuffix(suffix, "]") {
		return nil, &SyntaxError{
			Spec:   spec,
			Detail: "the trailing \"]\" after " + quote(prefix+"["+suffix) + " is missing",
		}
	}
	suffix = suffix[:len(suffix)-1]

	var result []string
	for suffix != "" {
		idx := strings.IndexByte(suffix, ',')
		if idx == -1 {
			idx = len(suffix)
		}
		item := suffix[:idx]
		rest := ""
		if idx < len(suffix) {
			rest = suffix[idx+1:]
		}

		if !strings.Contains(item, "[") {
			result = append(result, prefix+item)
			suffix = rest
			continue
		}

		// The item opens a nested group; scan to the matching "]" and
		// expand the whole group recursively.
		end := closingBracket(suffix)
		group := suffix
		tail := ""
		if end != -1 {
			group = suffix[:end+1]
			tail = suffix[end+1:]
		}
		inner, err := ExpandNamespace(group)
		if err != nil {
			return nil, err
		}
		for _, n := range inner {
			result = append(result, prefix+n)
		}
		if tail != "" && tail[0] != ',' && tail[0] != ']' {
			return nil, &SyntaxError{
				Spec:   spec,
				Detail: "there is a syntax problem between " + quote(spec[:strings.Index(spec, tail)]) + " and " + quote(tail),
			}
		}
		if tail == "" {
			suffix = ""
		} else {
			suffix = tail[1:]
		}
	}
	return result, nil
}

// closingBracket returns the index of the "]" matching the first "[" in s,
// or -1 if the group never closes.
func closingBracket(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func quote(s string) string {
	return "\"" + s + "\""
}
