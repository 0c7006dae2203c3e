package commands

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"torus -row 8", []string{"torus", "-row", "8"}, true},
		{"cmd torus  -row 8 ", []string{"torus", "-row", "8"}, true},
		{"  cmd", nil, false},
		{"", nil, false},
		{"# comment", nil, false},
		{"cmdline", []string{"cmdline"}, true},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.args, args, tt.line)
	}
}

func TestExecute(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("", flag.ExitOnError)
	row := fs.Int("row", 32, "rows")
	var got []int
	reg.Register("torus", "generate a torus", fs, func() error {
		got = append(got, *row)
		return nil
	})

	require.NoError(t, reg.Execute([]string{"torus", "-row", "8"}))
	require.NoError(t, reg.Execute([]string{"torus"}))
	assert.Equal(t, []int{8, 32}, got)

	assert.ErrorIs(t, reg.Execute(nil), ErrMissing)
	assert.ErrorIs(t, reg.Execute([]string{"cone"}), ErrUnknown)

	err := reg.Execute([]string{"torus", "-row", "many"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "torus")
}

func TestNamesAndHelp(t *testing.T) {
	reg := NewRegistry()
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Float64("radius", 1, "radius")
	reg.Register("sphere", "generate a sphere", fs, func() error { return nil })
	reg.Register("help", "", flag.NewFlagSet("", flag.ContinueOnError), func() error { return nil })

	assert.Equal(t, []string{"help", "sphere"}, reg.Names())
	assert.Equal(t, []string{"help", "sphere: generate a sphere [-radius=1]"}, reg.Help())
}

func TestRunCanCallHelp(t *testing.T) {
	reg := NewRegistry()
	var lines []string
	reg.Register("help", "list commands", flag.NewFlagSet("", flag.ContinueOnError), func() error {
		lines = reg.Help()
		return nil
	})
	require.NoError(t, reg.Execute([]string{"help"}))
	assert.Equal(t, []string{"help: list commands"}, lines)
}
