/*
Command syllabreak inserts syllable boundaries into text and detects the
language of text.

	$ syllabreak syllabify -sep - hello world
	hel-lo world
	$ echo "молоко" | syllabreak syllabify -lang rus -sep -
	мо-ло-ко
	$ syllabreak detect привет
	rus ukr srp-cyrl
	$ syllabreak langs

Every command accepts -rules <file> to use a YAML rule file instead of the
built-in rules, and -trace <level> to set the trace level (error, info
or debug).
*/
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := appCommand().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}

func appCommand() *commander.Command {
	return &commander.Command{
		UsageLine: os.Args[0] + " <command> [options] [arguments]",
		Short:     "dictionary-free syllabification and language detection",
		Subcommands: []*commander.Command{
			syllabifyCmd(),
			detectCmd(),
			langsCmd(),
		},
	}
}
