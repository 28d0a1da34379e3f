// Package cmd wires the textscope selection engine into a CLI: a one-shot
// selection command and an interactive inspector.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/textscope/internal/config"
	"github.com/zjrosen/textscope/internal/log"
	"github.com/zjrosen/textscope/internal/textobject"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config

	offset   int
	object   string
	listOps  bool
	debugLog bool
)

var rootCmd = &cobra.Command{
	Use:   "textscope [file]",
	Short: "Cursor-relative text-object selection",
	Long: `Computes the text object around a cursor offset in a file: words,
lines, sentences, paragraphs, indentation blocks, delimiter pairs, quoted
strings, and call arguments. Prints the selected range and its text.`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runSelect,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/textscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false,
		"write debug logs to textscope.log")
	rootCmd.Flags().IntVarP(&offset, "offset", "o", 0,
		"cursor offset in runes")
	rootCmd.Flags().StringVarP(&object, "object", "t", "word",
		"text object to select (see --list)")
	rootCmd.Flags().BoolVar(&listOps, "list", false,
		"list available text objects")
	rootCmd.PersistentFlags().String("word-chars", "",
		"extra runes treated as word constituents")

	_ = viper.BindPFlag("word_chars", rootCmd.PersistentFlags().Lookup("word-chars"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("tab_width", defaults.TabWidth)
	viper.SetDefault("word_chars", defaults.WordChars)
	viper.SetDefault("sentence_terminators", defaults.SentenceTerminators)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("theme.selection", defaults.Theme.Selection)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .textscope/config.yaml (current directory)
		// 2. ~/.config/textscope/config.yaml (user config)
		if _, err := os.Stat(".textscope/config.yaml"); err == nil {
			viper.SetConfigFile(".textscope/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "textscope"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
		}
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parsing config: %v\n", err)
		cfg = config.Defaults()
	}

	if debugLog || os.Getenv("TEXTSCOPE_DEBUG") != "" {
		if _, err := log.Init("textscope.log"); err != nil {
			fmt.Fprintf(os.Stderr, "initializing log: %v\n", err)
		}
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	if listOps {
		for _, name := range textobject.Operations() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("file argument required (or --list)")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	sel, err := runSelection(cfg, string(data), offset, object)
	if err != nil {
		return err
	}

	buf := textobject.NewStringBuffer(string(data))
	fmt.Fprintf(cmd.OutOrStdout(), "%s [%d,%d)\n", object, sel.Start, sel.End)
	fmt.Fprintln(cmd.OutOrStdout(), highlightSelection(buf, sel))
	return nil
}

// runSelection applies the named text object to text at the given offset.
func runSelection(cfg config.Config, text string, offset int, object string) (textobject.Range, error) {
	op, ok := textobject.Lookup(object)
	if !ok {
		return textobject.Range{}, fmt.Errorf("unknown text object %q (see --list)", object)
	}

	buf := textobject.NewStringBuffer(text)
	engine := textobject.New(buf, textobject.WithClassifier(textobject.DefaultClassifier{
		WordRunes:           cfg.WordChars,
		SentenceTerminators: cfg.SentenceTerminators,
	}))
	cur := textobject.NewState(offset)

	if err := op(engine, cur); err != nil {
		return textobject.Range{}, fmt.Errorf("selecting %s at %d: %w", object, offset, err)
	}
	log.Debug(log.CatEngine, "selection", "op", object, "offset", offset,
		"start", cur.Point(), "end", cur.Mark())

	sel, _ := textobject.Selection(cur)
	return sel, nil
}

// highlightSelection renders the selected text with the theme's selection
// background, in context of the surrounding lines.
func highlightSelection(buf textobject.Buffer, sel textobject.Range) string {
	style := lipgloss.NewStyle().Background(lipgloss.Color(cfg.Theme.Selection))
	start := buf.LineStart(sel.Start)
	end := buf.LineEnd(sel.End)

	var b strings.Builder
	b.WriteString(buf.Slice(start, sel.Start))
	b.WriteString(style.Render(buf.Slice(sel.Start, sel.End)))
	b.WriteString(buf.Slice(sel.End, end))
	return b.String()
}

// SetVersion sets the version string shown by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
