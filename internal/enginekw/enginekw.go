// Package enginekw implements the engine-keywords file parser (C5): a
// line-oriented text format producing keyword declarations plus a
// name->value assignment map (spec §4.2).
package enginekw

import (
	"bufio"
	"strings"

	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/vserr"
)

// File is the parsed result of one `.vkw` engine-keywords file.
type File struct {
	Keywords []keyword.Decl
	Set      map[string]string
}

// Parse scans an engine-keywords file. Blank lines and lines beginning
// with '#' are ignored. Two directives are recognised: `keyword ...`
// (identical grammar to the metadata parser's keyword directive) and
// `set <NAME>=<VALUE>` (VALUE is stored as a raw string, not parsed here).
// Duplicate `set` entries overwrite in order.
func Parse(source string) (*File, error) {
	f := &File{Set: map[string]string{}}
	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "keyword":
			decl, err := keyword.ParseDirective(fields[1:], lineNo)
			if err != nil {
				return nil, err
			}
			f.Keywords = append(f.Keywords, decl)
		case "set":
			if len(fields) < 2 {
				return nil, vserr.AtLine(lineNo, "set: missing NAME=VALUE")
			}
			rest := strings.Join(fields[1:], " ")
			name, value, ok := strings.Cut(rest, "=")
			if !ok || name == "" {
				return nil, vserr.AtLine(lineNo, "set: expected NAME=VALUE, got %q", rest)
			}
			f.Set[name] = value
		default:
			return nil, vserr.AtLine(lineNo, "unknown directive %q", fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, vserr.Wrap(vserr.ParseError, err, "scanning engine-keywords file")
	}
	return f, nil
}
