package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	jsonOutput bool
	plain      bool
)

// exitFunc is swapped out by tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "myoctl",
	Short: "Myo Fitness toolbox for template scoring and scheduling",
	Long: `myoctl runs the Myo Fitness recommendation engine and scheduler locally.

Use "score" to rank the program templates for a profile and "schedule" to
preview the session dates produced for a set of training days.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "Disable colors and styling")

	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("plain", rootCmd.PersistentFlags().Lookup("plain"))
}

func initConfig() {
	viper.SetEnvPrefix("MYOCTL")
	viper.AutomaticEnv()
}

// fail prints err and exits with status 1.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitFunc(1)
}

// printer renders command output, styled unless plain output was requested.
type printer struct {
	w      io.Writer
	styled bool

	header lipgloss.Style
	good   lipgloss.Style
	weak   lipgloss.Style
	muted  lipgloss.Style
}

func newPrinter(w io.Writer, styled bool) *printer {
	p := &printer{w: w, styled: styled}
	if styled {
		p.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
		p.good = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
		p.weak = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
		p.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
	return p
}

func (p *printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

func (p *printer) Header(title string) {
	fmt.Fprintln(p.w, p.render(p.header, title))
	fmt.Fprintln(p.w, p.render(p.muted, strings.Repeat("─", len(title))))
}

func (p *printer) Linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}
