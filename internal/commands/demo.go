package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/clout/pkg/errors"
	"github.com/arthur-debert/clout/pkg/logging"
	"github.com/spf13/cobra"
)

// demoApp is the sample object printed by demo:styled
type demoApp struct {
	Name    string   `json:"name"`
	Owner   string   `json:"owner"`
	Region  string   `json:"region"`
	Stack   string   `json:"stack"`
	Dynos   int      `json:"dynos"`
	Domains []string `json:"domains"`
}

func (d demoApp) fields() map[string]interface{} {
	return map[string]interface{}{
		"Name":    d.Name,
		"Owner":   d.Owner,
		"Region":  d.Region,
		"Stack":   d.Stack,
		"Dynos":   d.Dynos,
		"Domains": d.Domains,
	}
}

func (a *App) newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: MsgDemoShort,
		Long:  MsgDemoLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(a.newDemoActionCmd())
	cmd.AddCommand(a.newDemoErrorCmd())
	cmd.AddCommand(a.newDemoWarnCmd())
	cmd.AddCommand(a.newDemoStyledCmd())
	cmd.AddCommand(a.newDemoPaletteCmd())
	cmd.AddCommand(a.newDemoMarkupCmd())
	return cmd
}

func (a *App) newDemoActionCmd() *cobra.Command {
	var (
		steps int
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:     "action [NAME]",
		Short:   MsgDemoActionShort,
		Example: MsgActionExample,
		Args:    cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"arg:name": "task name shown next to the indicator",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.demo.action")
			name := "Working"
			if len(args) > 0 {
				name = args[0]
			}

			done := logging.LogOperationStart(logger, "demo.action")
			defer done()

			a.Out.Action.Start(name, "")
			for i := 1; i <= steps; i++ {
				a.Out.Action.SetStatus(fmt.Sprintf(MsgActionStep, i, steps))
				time.Sleep(delay)
				a.Out.Logf(MsgActionLogLine, i)
			}
			a.Out.Action.Stop("")
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "s", 3, MsgFlagSteps)
	cmd.Flags().DurationVar(&delay, "delay", 300*time.Millisecond, MsgFlagDelay)
	return cmd
}

func (a *App) newDemoErrorCmd() *cobra.Command {
	var (
		exitCode int
		api      bool
		status   int
		code     string
	)
	cmd := &cobra.Command{
		Use:     "error [MESSAGE]",
		Short:   MsgDemoErrorShort,
		Long:    MsgErrorLong,
		Example: MsgErrorExample,
		Args:    cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"arg:message": MsgArgMessage,
		},
		Run: func(cmd *cobra.Command, args []string) {
			msg := MsgDefaultError
			if len(args) > 0 {
				msg = args[0]
			}

			var err error
			switch {
			case api:
				err = &errors.APIError{StatusCode: status, Body: map[string]interface{}{"message": msg}}
			case code != "":
				err = errors.New(errors.ErrorCode(strings.ToUpper(code)), msg)
			default:
				err = fmt.Errorf("%s", msg)
			}
			a.Out.Error(err, exitCode)
		},
	}
	cmd.Flags().IntVar(&exitCode, "exit-code", 1, MsgFlagExitCode)
	cmd.Flags().BoolVar(&api, "api", false, MsgFlagAPI)
	cmd.Flags().IntVar(&status, "status", 500, MsgFlagStatus)
	cmd.Flags().StringVar(&code, "code", "", MsgFlagCode)
	return cmd
}

func (a *App) newDemoWarnCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "warn [MESSAGE]",
		Short: MsgDemoWarnShort,
		Args:  cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			"arg:message": MsgArgMessage,
		},
		Run: func(cmd *cobra.Command, args []string) {
			msg := MsgDefaultWarning
			if len(args) > 0 {
				msg = args[0]
			}
			a.Out.Warn(fmt.Errorf("%s", msg), prefix)
		},
	}
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", MsgFlagPrefix)
	return cmd
}

func (a *App) newDemoStyledCmd() *cobra.Command {
	var (
		app     string
		asJSON  bool
		inspect bool
	)
	cmd := &cobra.Command{
		Use:   "styled",
		Short: MsgDemoStyledShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := demoApp{
				Name:    app,
				Owner:   "jeff@example.com",
				Region:  "us",
				Stack:   "cedar-14",
				Dynos:   2,
				Domains: []string{app + ".example.com", "www." + app + ".example.com"},
			}
			if asJSON {
				return a.Out.StyledJSON(d)
			}
			if inspect {
				a.Out.Inspect(d)
				return nil
			}
			a.Out.StyledHeader(fmt.Sprintf(MsgStyledHeader, a.Out.Color.App(d.Name)))
			a.Out.StyledObject(d.fields(), nil)
			a.Out.Debugf("rendered %d fields", len(d.fields()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&app, "app", "a", "myapp", MsgFlagApp)
	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	cmd.Flags().BoolVar(&inspect, "inspect", false, "dump the app structure")
	_ = cmd.Flags().MarkHidden("inspect")
	return cmd
}

// paletteStyles are the named styles shown by demo:palette
var paletteStyles = []string{
	"bold", "gray", "blue", "red", "boldRed", "yellow", "green", "cyan",
	"magenta", "attachment", "addon", "configVar", "release", "cmd",
}

func (a *App) newDemoPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: MsgDemoPaletteShort,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range paletteStyles {
				a.Out.Logf(MsgPaletteLine, name, a.Out.Color.Style(name, MsgPaletteSample))
			}
			a.Out.Logf(MsgPaletteLine, "brand", a.Out.Color.Brand(MsgPaletteSample))
		},
	}
}

func (a *App) newDemoMarkupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markup TEXT",
		Short: MsgDemoMarkupShort,
		Args:  cobra.ExactArgs(1),
		Annotations: map[string]string{
			"arg:text": MsgArgText,
		},
		Run: func(cmd *cobra.Command, args []string) {
			a.Out.Log(a.Out.Color.Markup(args[0]))
		},
	}
}
