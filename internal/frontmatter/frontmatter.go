package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Command holds the recognized frontmatter fields of a slash command file.
// Unknown keys are tolerated; the host tool ignores them too.
type Command struct {
	Description            string `yaml:"description" json:"description,omitempty"`
	ArgumentHint           string `yaml:"argument-hint" json:"argument-hint,omitempty"`
	AllowedTools           string `yaml:"allowed-tools" json:"allowed-tools,omitempty"`
	Model                  string `yaml:"model" json:"model,omitempty"`
	DisableModelInvocation bool   `yaml:"disable-model-invocation" json:"disable-model-invocation,omitempty"`
}

var delimiter = []byte("---")

// ErrUnterminated reports an opening "---" line without a closing one.
var ErrUnterminated = errors.New("unterminated frontmatter: missing closing --- line")

// Split separates the frontmatter block from the Markdown body. A file
// without a leading "---" line has no frontmatter: Split returns a nil
// header and the input unchanged.
func Split(data []byte) (header, body []byte, err error) {
	rest, ok := cutLine(data, delimiter)
	if !ok {
		return nil, data, nil
	}
	for pos := 0; pos < len(rest); {
		lineEnd := bytes.IndexByte(rest[pos:], '\n')
		var line []byte
		next := len(rest)
		if lineEnd >= 0 {
			line = rest[pos : pos+lineEnd]
			next = pos + lineEnd + 1
		} else {
			line = rest[pos:]
		}
		if bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), delimiter) {
			if lineEnd < 0 {
				return rest[:pos], nil, nil
			}
			return rest[:pos], rest[next:], nil
		}
		pos = next
	}
	return nil, nil, ErrUnterminated
}

// cutLine strips one leading line if it consists exactly of want.
func cutLine(data, want []byte) ([]byte, bool) {
	line, rest, found := bytes.Cut(data, []byte("\n"))
	if !found {
		return nil, false
	}
	line = bytes.TrimSuffix(line, []byte("\r"))
	if !bytes.Equal(line, want) {
		return nil, false
	}
	return rest, true
}

// Parse splits a command file and unmarshals its frontmatter. Files without
// frontmatter parse to a zero Command.
func Parse(data []byte) (*Command, []byte, error) {
	header, body, err := Split(data)
	if err != nil {
		return nil, nil, err
	}
	var c Command
	if header != nil {
		if err := yaml.Unmarshal(header, &c); err != nil {
			return nil, nil, fmt.Errorf("parsing frontmatter: %w", err)
		}
	}
	return &c, body, nil
}

// ParseFile reads a command file and parses its frontmatter.
func ParseFile(path string) (*Command, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data)
}
