package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/diogo/gompei/internal/api"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.Flags().Set("version", "false")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_Version(t *testing.T) {
	setupTest(t, &api.MockAnswerer{})

	out, err := executeRoot(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "gompei "+Version) {
		t.Errorf("output = %q", out)
	}
}

func TestRootCmd_Question(t *testing.T) {
	mock := api.NewMockAnswerer("A university in Worcester, MA.")
	setupTest(t, mock)

	out, err := executeRoot(t, "--raw", "What is WPI?")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "A university in Worcester, MA.\n" {
		t.Errorf("output = %q", out)
	}
	if mock.LastQuestion() != "What is WPI?" {
		t.Errorf("question = %q", mock.LastQuestion())
	}
}

func TestRootCmd_File(t *testing.T) {
	mock := api.NewMockAnswerer("ok")
	setupTest(t, mock)

	path := filepath.Join(t.TempDir(), "question.txt")
	if err := os.WriteFile(path, []byte("Where is WPI?\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := executeRoot(t, "--raw", "-f", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if mock.LastQuestion() != "Where is WPI?" {
		t.Errorf("question = %q", mock.LastQuestion())
	}
}

func TestRootCmd_MissingFile(t *testing.T) {
	setupTest(t, &api.MockAnswerer{})

	if _, err := executeRoot(t, "-f", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	want := map[string]bool{"chat": false, "ping": false, "config": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestExecuteWrapperSuccess(t *testing.T) {
	old := rootCmd
	rootCmd = &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	rootCmd.SetArgs([]string{})
	defer func() { rootCmd = old }()

	// Should not call os.Exit for successful execution
	Execute()
}
