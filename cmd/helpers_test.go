package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"classloc.dev/pkg/classloc/internal/controller"
	"classloc.dev/pkg/classloc/internal/domain"
	domainmocks "classloc.dev/pkg/classloc/internal/domain/mocks"
)

// newTestRoot returns a fresh root command with the given subcommands and
// captured output.
func newTestRoot(sub ...*cobra.Command) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	cmd := newRootCmd()
	cmd.AddCommand(sub...)

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

// withTestLog keeps the log file out of the working tree.
func withTestLog(t *testing.T, args ...string) []string {
	t.Helper()

	return append([]string{"--" + logFlagName, filepath.Join(t.TempDir(), "classloc.log")}, args...)
}

// useMockWorkflow makes setup hand out a mock instead of the real workflow.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	original := newWorkflow
	newWorkflow = func(controller.UI) domain.Workflow { return mockWorkflow }

	t.Cleanup(func() { newWorkflow = original })

	return mockWorkflow
}
