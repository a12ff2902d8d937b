// Package topics loads free-form help topics from files so a CLI can
// answer "help <topic>" for things that are not commands: concepts,
// environment variables, flags shared by many commands.
package topics

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/arthur-debert/clout/pkg/logging"
)

// OptionPrefix marks topics documenting a flag. "help --app" finds the
// topic file option-app.md.
const OptionPrefix = "option-"

// Manager holds the loaded topics
type Manager struct {
	fsys       fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// Topic is one help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions lists the file extensions loaded as topics.
	// Defaults to .txt and .md.
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a Manager reading topics from fsys. Call Load before use.
func New(fsys fs.FS, opts Options) *Manager {
	m := &Manager{
		fsys:       fsys,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}
	return m
}

// Load walks the file system and reads every topic file. A missing root
// is not an error, the CLI simply has no topics.
func (m *Manager) Load() error {
	log := logging.GetLogger("cobrax.topics")
	if m.fsys == nil {
		return nil
	}
	if _, err := fs.Stat(m.fsys, "."); err != nil {
		log.Debug().Err(err).Msg("No topics directory")
		return nil
	}

	err := fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		if !m.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrTopicLoad, "failed to load help topics")
	}

	log.Debug().Int("count", len(m.topics)).Msg("Loaded help topics")
	return nil
}

func (m *Manager) supported(ext string) bool {
	for _, e := range m.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Get finds a topic by name. Flag-style names (--app, -a) also match
// the option- topic of the flag.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics[OptionPrefix+name]
	return t, ok
}

// List returns the topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for the terminal
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, path.Ext(t.Path))
}

// Summary describes the available topics, general ones first, then the
// option topics written as flags.
func (m *Manager) Summary(bin string) string {
	names := m.List()
	if len(names) == 0 {
		return "No help topics available."
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, OptionPrefix) {
			options = append(options, strings.TrimPrefix(name, OptionPrefix))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	b.WriteString("Available help topics:\n")
	if len(general) > 0 {
		b.WriteString("\nGeneral topics:\n")
		for _, name := range general {
			b.WriteString("  " + name + "\n")
		}
	}
	if len(options) > 0 {
		b.WriteString("\nOption topics:\n")
		for _, name := range options {
			b.WriteString("  --" + name + "\n")
		}
	}
	b.WriteString("\nUse '" + bin + " help <topic>' to read about a specific topic.")
	return b.String()
}
