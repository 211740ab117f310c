package main

import (
	"io"
	"testing"
)

func TestRootCmdArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	if err := cmd.Args(cmd, []string{"a", "b"}); err == nil {
		t.Fatalf("two directories should be rejected")
	}
	if err := cmd.Args(cmd, []string{"fixtures"}); err != nil {
		t.Fatalf("one directory should be accepted: %v", err)
	}

	flag := cmd.Flags().Lookup("migrate")
	if flag == nil || flag.DefValue != "true" {
		t.Fatalf("migrate flag = %+v", flag)
	}
}
