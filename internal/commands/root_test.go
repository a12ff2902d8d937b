package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/clout/pkg/config"
	"github.com/arthur-debert/clout/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	rawStderr *bytes.Buffer
	cacheDir  string
	exitCode int
	exited   bool
}

func newTestApp(t *testing.T, opts config.Options) *testApp {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv(paths.EnvCacheDir, filepath.Join(tmpDir, "cache"))
	t.Setenv(paths.EnvConfigDir, filepath.Join(tmpDir, "config"))
	t.Setenv(paths.EnvStateDir, filepath.Join(tmpDir, "state"))
	for _, name := range []string{"DEBUG", "COLOR", "COLUMNS", "NO_COLOR"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	opts.Mock = true
	if opts.Color == "" {
		opts.Color = "false"
	}
	opts.Columns = 80

	ta := &testApp{rawStderr: &bytes.Buffer{}, cacheDir: filepath.Join(tmpDir, "cache"), exitCode: -1}
	ta.App = New(Options{
		Config: opts,
		Stdout: &bytes.Buffer{},
		Stderr: ta.rawStderr,
		Exit: func(code int) {
			ta.exited = true
			ta.exitCode = code
		},
	})
	return ta
}

func (ta *testApp) stdout() string { return ta.Out.Stdout.Output() }
func (ta *testApp) stderr() string { return ta.Out.Stderr.Output() }

func TestVersionCmd(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"version"}))

	assert.Contains(t, app.stdout(), "clout version dev\n")
	assert.Contains(t, app.stdout(), "Commit: unknown\n")
}

func TestConfigCmd(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"config"}))

	assert.Contains(t, app.stdout(), "bin = 'clout'")
	assert.Contains(t, app.stdout(), "[dirs]")
}

func TestNoCommand(t *testing.T) {
	app := newTestApp(t, config.Options{})
	assert.Equal(t, 1, app.Run(nil))

	assert.Contains(t, app.stdout(), "Usage: clout COMMAND [flags]\n")
	assert.Contains(t, app.stdout(), "Commands:\n")
	assert.Contains(t, app.stderr(), "no command specified")
}

func TestDemoAction(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"demo:action", "--steps", "2", "--delay", "0s"}))

	assert.Equal(t, "finished step 1\nfinished step 2\n", app.stdout())
	assert.Equal(t, "Working... step 1 of 2\n"+
		"Working... step 2 of 2\n"+
		"Working... done\n", app.stderr())
}

func TestDemoAction_SpaceSeparated(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"demo", "action", "Deploying", "--steps", "0"}))

	assert.Equal(t, "Deploying... done\n", app.stderr())
}

func TestDemoError(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		stderr string
		log    string
		code   int
	}{
		{
			name:   "plain",
			args:   []string{"demo:error", "could not reach the server"},
			stderr: " ▸    could not reach the server\n",
			log:    "could not reach the server\n",
			code:   1,
		},
		{
			name:   "api",
			args:   []string{"demo:error", "--api", "--status", "404", "--exit-code", "2", "app not found"},
			stderr: " ▸    'app not found'\n",
			log:    "HTTP 404: app not found\n",
			code:   2,
		},
		{
			name:   "coded",
			args:   []string{"demo:error", "--code", "not_found", "no such topic"},
			stderr: " ▸    'NOT_FOUND': no such topic\n",
			log:    "[NOT_FOUND] no such topic\n",
			code:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, config.Options{})
			app.Run(tt.args)

			assert.Equal(t, tt.stderr, app.stderr())
			assert.True(t, app.exited)
			assert.Equal(t, tt.code, app.exitCode)

			data, err := os.ReadFile(filepath.Join(app.cacheDir, "error.log"))
			require.NoError(t, err)
			assert.Equal(t, tt.log, string(data))
		})
	}
}

func TestDemoError_Debug(t *testing.T) {
	app := newTestApp(t, config.Options{Debug: 1})
	app.Run([]string{"demo:error", "boom"})

	assert.Contains(t, app.stderr(), "boom\n")
	assert.Contains(t, app.stderr(), "debug = 1")
	assert.Contains(t, app.stderr(), "Exiting with code: 1\n")
}

func TestDemoWarn(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"demo:warn"}))

	assert.Equal(t, " ▸    this is only a drill\n", app.stderr())
	assert.False(t, app.exited)
}

func TestDemoWarnPrefix(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"demo:warn", "--prefix", "clout:", "disk almost full"}))

	assert.Equal(t, " ▸    clout: disk almost full\n", app.stderr())
}

func TestQuietStartup(t *testing.T) {
	for _, args := range [][]string{{"demo:warn", "hi"}, {"help", "demo:error"}} {
		t.Run(args[0], func(t *testing.T) {
			app := newTestApp(t, config.Options{})
			require.Equal(t, 0, app.Run(args))

			for _, out := range []string{app.rawStderr.String(), app.stderr()} {
				assert.NotContains(t, out, `"level":"debug"`)
				assert.NotContains(t, out, "Output created")
				assert.NotContains(t, out, "Loaded help topics")
			}
		})
	}
}

func TestDemoStyled(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"demo:styled"}))

		want := "=== ⬢ myapp info\n" +
			"Domains: myapp.example.com\n" +
			"         www.myapp.example.com\n" +
			"Dynos:   2\n" +
			"Name:    myapp\n" +
			"Owner:   jeff@example.com\n" +
			"Region:  us\n" +
			"Stack:   cedar-14\n"
		assert.Equal(t, want, app.stdout())
	})

	t.Run("json", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"demo:styled", "--json", "-a", "other"}))

		assert.Contains(t, app.stdout(), "\"name\": \"other\"")
		assert.Contains(t, app.stdout(), "\"dynos\": 2")
	})

	t.Run("inspect", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"demo:styled", "--inspect"}))

		assert.Contains(t, app.stdout(), "Stack: (string) (len=8) \"cedar-14\"")
	})
}

func TestDemoMarkup(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"demo:markup", "[bold]hi[/bold] there"}))
		assert.Equal(t, "hi there\n", app.stdout())
	})

	t.Run("no_color_flag", func(t *testing.T) {
		app := newTestApp(t, config.Options{Color: "true"})
		require.Equal(t, 0, app.Run([]string{"--no-color", "demo:markup", "[bold]hi[/bold]"}))
		assert.Equal(t, "hi\n", app.stdout())
	})

	t.Run("colored", func(t *testing.T) {
		app := newTestApp(t, config.Options{Color: "true"})
		require.Equal(t, 0, app.Run([]string{"demo:markup", "[bold]hi[/bold]"}))
		assert.Equal(t, "\x1b[1mhi\x1b[0m\n", app.stdout())
	})
}

func TestDemoPalette(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"demo:palette"}))

	assert.Contains(t, app.stdout(), "bold         The quick brown fox\n")
	assert.Contains(t, app.stdout(), "brand        The quick brown fox\n")
}

func TestHelp(t *testing.T) {
	t.Run("command", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"help", "demo:action"}))

		out := app.stdout()
		assert.Contains(t, out, "Usage: clout demo:action [NAME] [flags]\n")
		assert.Contains(t, out, "NAME  task name shown next to the indicator\n")
		assert.Contains(t, out, " -s, --steps STEPS")
		assert.Contains(t, out, " --delay DELAY")
		assert.Contains(t, out, "$ clout demo:action --steps 5 --delay 1s")
	})

	t.Run("help_flag", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"demo:error", "--help"}))

		assert.Contains(t, app.stdout(), "Usage: clout demo:error [MESSAGE] [flags]\n")
		assert.Contains(t, app.stdout(), "MESSAGE  text to display\n")
		assert.False(t, app.exited)
	})

	t.Run("topic_listing", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"help", "demo"}))

		out := app.stdout()
		assert.Contains(t, out, "demo commands: (clout help demo:COMMAND for details)")
		assert.Contains(t, out, "demo:action  # run a task with a progress indicator")
		assert.Contains(t, out, "demo:palette # show every named color")
	})

	t.Run("help_topic", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"help", "colors"}))
		assert.Contains(t, app.stdout(), "Colors")
	})

	t.Run("option_topic", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"help", "verbose"}))
		assert.Contains(t, app.stdout(), "Raises the log level")
	})

	t.Run("topics_list", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		require.Equal(t, 0, app.Run([]string{"help", "topics"}))

		out := app.stdout()
		assert.Contains(t, out, "  colors\n")
		assert.Contains(t, out, "  errors\n")
		assert.Contains(t, out, "  --verbose\n")
	})

	t.Run("unknown", func(t *testing.T) {
		app := newTestApp(t, config.Options{})
		assert.Equal(t, 1, app.Run([]string{"help", "nope"}))
		assert.Contains(t, app.stderr(), "'NOT_FOUND': nope is not a command or help topic")
	})
}

func TestCompletionCmd(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"completion", "bash"}))
	assert.Contains(t, app.stdout(), "bash completion")
}

func TestManCmd(t *testing.T) {
	app := newTestApp(t, config.Options{})
	require.Equal(t, 0, app.Run([]string{"man"}))
	assert.Contains(t, app.stdout(), "CLOUT")
	assert.Contains(t, app.stdout(), "demo")
}

func TestConfigFileWarning(t *testing.T) {
	app := newTestApp(t, config.Options{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")})
	assert.Contains(t, app.stderr(), "'CONFIG_LOAD'")
	assert.Equal(t, "clout", app.Config.Bin)
}
