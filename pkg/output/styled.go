package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/muesli/termenv"
)

// jsonStyle is the chroma style used by StyledJSON
const jsonStyle = "monokai"

var inspectConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// StyledHeader prints a section header: a dim "=== " followed by the
// bold header text.
func (o *Output) StyledHeader(header string) {
	o.Log(o.Color.Gray("=== ") + o.Color.Bold(header))
}

// StyledObject prints obj as aligned "key: value" lines. keys selects and
// orders the keys to print; nil prints every key sorted. Slices print
// one element per line, nil values are skipped.
func (o *Output) StyledObject(obj map[string]interface{}, keys []string) {
	maxKeyLength := 0
	for key := range obj {
		if len(key) > maxKeyLength {
			maxKeyLength = len(key)
		}
	}
	maxKeyLength += 2

	if keys == nil {
		keys = make([]string, 0, len(obj))
		for key := range obj {
			keys = append(keys, key)
		}
		sort.Strings(keys)
	}

	logKeyValue := func(key string, value interface{}) {
		pad := maxKeyLength - len(key) - 1
		if pad < 1 {
			pad = 1
		}
		o.Log(key + ":" + strings.Repeat(" ", pad) + prettyValue(value))
	}

	for _, key := range keys {
		value, ok := obj[key]
		if !ok || value == nil {
			continue
		}
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			if rv.Len() == 0 {
				continue
			}
			logKeyValue(key, rv.Index(0).Interface())
			for i := 1; i < rv.Len(); i++ {
				o.Log(strings.Repeat(" ", maxKeyLength) + prettyValue(rv.Index(i).Interface()))
			}
			continue
		}
		logKeyValue(key, value)
	}
}

// StyledJSON prints v as indented JSON, syntax highlighted when color is
// supported.
func (o *Output) StyledJSON(v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode JSON")
	}
	text := strings.TrimRight(buf.String(), "\n")

	if !o.Color.Supported() {
		o.Log(text)
		return nil
	}

	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, text, "json", chromaFormatter(o.Color.Profile()), jsonStyle); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to highlight JSON")
	}
	o.Log(strings.TrimRight(highlighted.String(), "\n"))
	return nil
}

// Inspect dumps any value on stdout, for debugging
func (o *Output) Inspect(v interface{}) {
	o.Log(strings.TrimRight(inspectConfig.Sdump(v), "\n"))
}

// Debug prints msg on stderr when debug output is enabled
func (o *Output) Debug(msg string) {
	if o.Config.Debug > 0 {
		_ = o.Stderr.Log(msg)
	}
}

// Debugf is Debug with fmt.Sprintf formatting
func (o *Output) Debugf(format string, args ...interface{}) {
	o.Debug(fmt.Sprintf(format, args...))
}

func chromaFormatter(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	}
	return "terminal"
}

// prettyValue renders scalars as is and maps as "k: v, ..." with quoted
// strings.
func prettyValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+quoteValue(val[k]))
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}

func quoteValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprint(v)
}
