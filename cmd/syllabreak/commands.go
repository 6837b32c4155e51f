package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/syllabreak"
	"github.com/npillmayer/syllabreak/ruleconf"
	"github.com/npillmayer/syllabreak/rules"
)

// Output of all commands goes to stdout; tests re-direct it.
var stdout io.Writer = os.Stdout

// Input for syllabify, if no text is given as arguments.
var stdin io.Reader = os.Stdin

// commonFlags adds the flags every command understands.
func commonFlags(fs *flag.FlagSet) {
	fs.String("rules", "", "YAML rule file to use instead of the built-in rules")
	fs.String("trace", "error", "trace level: error, info or debug")
}

func stringFlag(cmd *commander.Command, name string) string {
	f := cmd.Flag.Lookup(name)
	if f == nil {
		return ""
	}
	return f.Value.String()
}

func setup(cmd *commander.Command, opts ...syllabreak.Option) (*syllabreak.Syllabreak, error) {
	switch level := strings.ToLower(stringFlag(cmd, "trace")); level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	case "error", "":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		return nil, fmt.Errorf("unknown trace level %q", level)
	}
	var rs *rules.RuleSet
	var err error
	if path := stringFlag(cmd, "rules"); path != "" {
		rs, err = ruleconf.LoadFile(path)
	} else {
		rs, err = ruleconf.Default()
	}
	if err != nil {
		return nil, err
	}
	return syllabreak.New(rs, opts...), nil
}

// --- syllabify -------------------------------------------------------------

func syllabifyCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSyllabify,
		UsageLine: "syllabify [options] [text ...]",
		Short:     "insert syllable separators into text",
		Long: `
insert syllable separators into text

	$ syllabreak syllabify [-lang <code>|-env] [-sep <separator>] [text ...]

Without text arguments, text is read from stdin and processed word by word.
Without -lang the language is detected from the text.
`,
		Flag: *flag.NewFlagSet("syllabify", flag.ExitOnError),
	}
	cmd.Flag.String("lang", "", "language code, e.g. eng or srp-latn (default: detect)")
	cmd.Flag.String("sep", syllabreak.DefaultSeparator, "separator to insert at syllable boundaries")
	cmd.Flag.Bool("env", false, "use the language of the user's locale, if supported")
	cmd.Flag.Bool("list", false, "print the syllables of every argument, one word per line")
	commonFlags(&cmd.Flag)
	return cmd
}

func runSyllabify(cmd *commander.Command, args []string) error {
	sb, err := setup(cmd, syllabreak.WithSeparator(stringFlag(cmd, "sep")))
	if err != nil {
		return err
	}
	lang := syllabreak.Auto
	if code := stringFlag(cmd, "lang"); code != "" {
		lang = syllabreak.Explicit(code)
	} else if stringFlag(cmd, "env") == "true" {
		lang = sb.EnvironmentLang()
	}
	if len(args) == 0 {
		return sb.SyllabifyStream(stdout, stdin, lang)
	}
	if stringFlag(cmd, "list") == "true" {
		for _, word := range args {
			syllables, err := sb.Syllables(word, lang)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, strings.Join(syllables, " "))
		}
		return nil
	}
	out, err := sb.Syllabify(strings.Join(args, " "), lang)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

// --- detect ----------------------------------------------------------------

func detectCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runDetect,
		UsageLine: "detect [options] text ...",
		Short:     "list the languages matching a text, best match first",
		Flag:      *flag.NewFlagSet("detect", flag.ExitOnError),
	}
	commonFlags(&cmd.Flag)
	return cmd
}

func runDetect(cmd *commander.Command, args []string) error {
	sb, err := setup(cmd)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("no text to detect a language for")
	}
	langs := sb.DetectLanguage(strings.Join(args, " "))
	_, err = fmt.Fprintln(stdout, strings.Join(langs, " "))
	return err
}

// --- langs -----------------------------------------------------------------

func langsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runLangs,
		UsageLine: "langs [options]",
		Short:     "list the supported languages in order of detection priority",
		Flag:      *flag.NewFlagSet("langs", flag.ExitOnError),
	}
	commonFlags(&cmd.Flag)
	return cmd
}

func runLangs(cmd *commander.Command, args []string) error {
	sb, err := setup(cmd)
	if err != nil {
		return err
	}
	for _, rule := range sb.RuleSet().Rules() {
		fmt.Fprintf(stdout, "%-10s %s\n", rule.Lang(), rule.UniqueChars())
	}
	return nil
}
