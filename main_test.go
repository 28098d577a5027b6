package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCmdHasSubcommands(t *testing.T) {
	root := newRootCmd()

	want := map[string]bool{"tui": false, "lookup": false, "ask": false, "stub": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("version flag failed: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("version output missing %q: %s", version, out.String())
	}
}

func TestLookupRequiresArgument(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"lookup"})

	if err := root.Execute(); err == nil {
		t.Fatal("expected an argument error")
	}
}
