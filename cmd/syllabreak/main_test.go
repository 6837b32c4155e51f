package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gonuts/commander"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, cmd *commander.Command, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	stdout, stdin = &out, strings.NewReader(input)
	require.NoError(t, cmd.Flag.Parse(args))
	err := cmd.Run(cmd, cmd.Flag.Args())
	return out.String(), err
}

func TestSyllabifyCommand(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, err := run(t, syllabifyCmd(), "", "-sep", "-", "hello", "problem")
	require.NoError(t, err)
	assert.Equal(t, "hel-lo pro-blem\n", out)
	//
	out, err = run(t, syllabifyCmd(), "молоко\n", "-lang", "rus", "-sep", "-")
	require.NoError(t, err)
	assert.Equal(t, "мо-ло-ко\n", out)
	//
	out, err = run(t, syllabifyCmd(), "hello\xff problem\n", "-sep", "-")
	require.NoError(t, err)
	assert.Equal(t, "hel-lo\xff pro-blem\n", out)
	//
	out, err = run(t, syllabifyCmd(), "", "-list", "hello", "молоко")
	require.NoError(t, err)
	assert.Equal(t, "hel lo\nмо ло ко\n", out)
	//
	_, err = run(t, syllabifyCmd(), "", "-lang", "xyz", "hello")
	assert.Error(t, err)
}

func TestSyllabifyWithRuleFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, err := run(t, syllabifyCmd(), "", "-rules", "../../ruleconf/testdata/minimal.yaml",
		"-sep", "=", "problem")
	require.NoError(t, err)
	assert.Equal(t, "pro=blem\n", out)
	_, err = run(t, syllabifyCmd(), "", "-rules", "does-not-exist.yaml", "problem")
	assert.Error(t, err)
	_, err = run(t, syllabifyCmd(), "", "-trace", "verbose", "problem")
	assert.Error(t, err)
}

func TestDetectCommand(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, err := run(t, detectCmd(), "", "їжак")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ukr "), "expected ukr first, is %q", out)
	_, err = run(t, detectCmd(), "")
	assert.Error(t, err)
}

func TestLangsCommand(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	out, err := run(t, langsCmd(), "")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "eng"))
}
