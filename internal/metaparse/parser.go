package metaparse

import (
	"bufio"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/vultra-engine/shaderc/internal/keyword"
	"github.com/vultra-engine/shaderc/internal/vserr"
	"github.com/vultra-engine/shaderc/internal/vstypes"
)

// Parse scans source line-by-line for `#pragma vultra ...` directives
// (spec §4.1), tolerating both "\n" and "\r\n" line endings (bufio.Scanner
// strips both with its default split function). Ordinary shader code
// passes through untouched.
func Parse(source string) (*ParsedMetadata, error) {
	meta := New()
	scanner := bufio.NewScanner(strings.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		fields := strings.Fields(trimmed)
		if len(fields) < 2 || fields[0] != "#pragma" || fields[1] != "vultra" {
			continue
		}
		if len(fields) < 3 {
			return nil, vserr.AtLine(lineNo, "#pragma vultra: missing directive keyword")
		}
		directive := fields[2]
		rest := fields[3:]

		if err := applyDirective(meta, directive, rest, lineNo); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, vserr.Wrap(vserr.ParseError, err, "scanning shader source")
	}
	return meta, nil
}

func applyDirective(meta *ParsedMetadata, directive string, rest []string, line int) error {
	switch directive {
	case "material":
		if len(rest) != 0 {
			return vserr.AtLine(line, "material: unexpected attribute %q", rest[0])
		}
		meta.HasMaterialDecl = true
		return nil
	case "param":
		return applyParam(meta, rest, line)
	case "texture":
		return applyTexture(meta, rest, line)
	case "state":
		return applyState(meta, rest, line)
	case "keyword":
		decl, err := keyword.ParseDirective(rest, line)
		if err != nil {
			return err
		}
		meta.Keywords = append(meta.Keywords, decl)
		return nil
	default:
		return vserr.AtLine(line, "unknown directive %q", directive)
	}
}

// attribute splits a `name(payload)` token. ok is false if tok isn't in
// that shape (malformed attribute token, spec §4.1).
func attribute(tok string) (name, payload string, ok bool) {
	open := strings.IndexByte(tok, '(')
	if open < 0 || !strings.HasSuffix(tok, ")") {
		return "", "", false
	}
	return tok[:open], tok[open+1 : len(tok)-1], true
}

func applyParam(meta *ParsedMetadata, rest []string, line int) error {
	if len(rest) == 0 {
		return vserr.AtLine(line, "param: missing name")
	}
	name := rest[0]
	pm := meta.Params[name]

	for _, tok := range rest[1:] {
		attrName, payload, ok := attribute(tok)
		if !ok {
			return vserr.AtLine(line, "param %s: malformed attribute token %q", name, tok)
		}
		switch attrName {
		case "semantic":
			sem, ok := vstypes.SemanticFromName(payload)
			if !ok {
				return vserr.AtLine(line, "param %s: unknown semantic %q", name, payload)
			}
			pm.Semantic = sem
		case "default":
			buf, err := packDefault(payload, line, name)
			if err != nil {
				return err
			}
			pm.HasDefault = true
			pm.Default = buf
		case "range":
			r, err := parseRange(payload, line, name)
			if err != nil {
				return err
			}
			pm.HasRange = true
			pm.Range = r
		default:
			return vserr.AtLine(line, "param %s: unknown attribute %q", name, attrName)
		}
	}
	meta.Params[name] = pm
	return nil
}

func applyTexture(meta *ParsedMetadata, rest []string, line int) error {
	if len(rest) == 0 {
		return vserr.AtLine(line, "texture: missing name")
	}
	name := rest[0]
	tm := meta.Textures[name]

	for _, tok := range rest[1:] {
		attrName, payload, ok := attribute(tok)
		if !ok {
			return vserr.AtLine(line, "texture %s: malformed attribute token %q", name, tok)
		}
		switch attrName {
		case "semantic":
			sem, ok := vstypes.SemanticFromName(payload)
			if !ok {
				return vserr.AtLine(line, "texture %s: unknown semantic %q", name, payload)
			}
			tm.Semantic = sem
		default:
			return vserr.AtLine(line, "texture %s: unknown attribute %q", name, attrName)
		}
	}
	meta.Textures[name] = tm
	return nil
}

// packDefault parses a comma-separated list of up to 16 f32 values and
// packs them little-endian into a 64-byte buffer, zero-padded (spec §4.1).
func packDefault(payload string, line int, param string) ([vstypes.DefaultValueSize]byte, error) {
	var buf [vstypes.DefaultValueSize]byte
	if payload == "" {
		return buf, vserr.AtLine(line, "param %s: default() requires at least one value", param)
	}
	parts := strings.Split(payload, ",")
	if len(parts) > 16 {
		return buf, vserr.AtLine(line, "param %s: default() accepts at most 16 values, got %d", param, len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return buf, vserr.AtLine(line, "param %s: default() value %q is not numeric", param, p)
		}
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(float32(f)))
	}
	return buf, nil
}

func parseRange(payload string, line int, param string) (vstypes.ParamRange, error) {
	parts := strings.Split(payload, ",")
	if len(parts) != 2 {
		return vstypes.ParamRange{}, vserr.AtLine(line, "param %s: range() requires exactly two numbers", param)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return vstypes.ParamRange{}, vserr.AtLine(line, "param %s: range() min %q is not numeric", param, parts[0])
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return vstypes.ParamRange{}, vserr.AtLine(line, "param %s: range() max %q is not numeric", param, parts[1])
	}
	return vstypes.ParamRange{Min: min, Max: max}, nil
}
