//go:build !windows

package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeCLI = `#!/bin/sh
case "$1 $2" in
"server create")
cat <<'EOT'
+--------+----------+
| Field  | Value    |
+--------+----------+
| id     | 9f3c2b1a |
| name   | web-1    |
| status | ACTIVE   |
+--------+----------+
EOT
;;
"server list")
cat <<'EOT'
+----------+-------+--------+
| ID       | Name  | Status |
+----------+-------+--------+
| 9f3c2b1a | web-1 | ACTIVE |
| 77aa01ff | db-1  | BUILD  |
+----------+-------+--------+
EOT
;;
"server delete")
echo "deleted $3" >> "$FAKE_LOG"
;;
"server show")
echo "No server with a name or ID of '$3' exists." >&2
exit 1
;;
*)
echo "unknown command: $*" >&2
exit 2
;;
esac
`

// newFakeRunner writes a stand-in cloud CLI and returns a Runner using it
// together with the path of the log its delete command appends to.
func newFakeRunner(t *testing.T, cfg Config) (*Runner, string) {
	t.Helper()
	dir := t.TempDir()

	bin := filepath.Join(dir, "fakecli")
	require.NoError(t, os.WriteFile(bin, []byte(fakeCLI), 0o755))

	logPath := filepath.Join(dir, "calls.log")
	cfg.Binary = bin
	cfg.Env = append(cfg.Env, "FAKE_LOG="+logPath)
	return NewRunner(cfg), logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}


func lifecycleScenario() Scenario {
	return Scenario{
		Name: "server-lifecycle",
		Steps: []Step{
			{
				Name:    "create",
				Command: "server create web-1",
				Parse:   "show",
				Capture: map[string]string{"server_id": "id"},
				Expect:  &Expect{Fields: map[string]string{"status": "ACTIVE", "name": "web-1"}},
			},
			{
				Name:    "list",
				Command: "server list",
				Parse:   "list",
				Expect: &Expect{
					Count:       intPtr(2),
					Contains:    map[string]string{"ID": "{{ .server_id }}"},
					NotContains: map[string]string{"Status": "ERROR"},
					Keys:        []string{"ID", "Name", "Status"},
				},
			},
			{
				Name:    "show missing",
				Command: "server show {{ .server_id }}",
				Expect: &Expect{
					Fail:           true,
					OutputContains: []string{"No server with a name or ID of '{{ .server_id }}' exists."},
				},
			},
		},
		Cleanup: []Step{
			{Name: "delete", Command: "server delete {{ .server_id }}"},
		},
	}
}

func TestRun_Lifecycle(t *testing.T) {
	r, logPath := newFakeRunner(t, Config{})

	res := r.Run(context.Background(), lifecycleScenario())

	require.True(t, res.Passed, "scenario error: %s", res.Error)
	require.Len(t, res.Steps, 3)
	for _, step := range res.Steps {
		assert.True(t, step.Passed, "step %s: %s", step.Name, step.Error)
		assert.Equal(t, PhaseStep, step.Phase)
	}
	assert.Equal(t, 1, res.Steps[2].ExitCode)
	assert.True(t, strings.HasSuffix(res.Steps[2].Command, "server show 9f3c2b1a"))

	require.Len(t, res.Cleanup, 1)
	assert.True(t, res.Cleanup[0].Passed)
	assert.Equal(t, "deleted 9f3c2b1a\n", readLog(t, logPath))
}

func TestRun_FailingStepStopsScenarioButRunsCleanup(t *testing.T) {
	r, logPath := newFakeRunner(t, Config{})

	sc := lifecycleScenario()
	sc.Steps[1].Expect = &Expect{Count: intPtr(5)}

	res := r.Run(context.Background(), sc)

	assert.False(t, res.Passed)
	require.Len(t, res.Steps, 2)
	assert.False(t, res.Steps[1].Passed)
	assert.Contains(t, res.Steps[1].Error, "expected 5 records, got 2")
	assert.Contains(t, res.Error, `step "list"`)
	assert.Equal(t, "deleted 9f3c2b1a\n", readLog(t, logPath))
}

func TestRun_UnexpectedCommandFailure(t *testing.T) {
	r, _ := newFakeRunner(t, Config{})

	res := r.Run(context.Background(), Scenario{
		Name:  "bad",
		Steps: []Step{{Name: "typo", Command: "server lsit"}},
	})

	assert.False(t, res.Passed)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, 2, res.Steps[0].ExitCode)
	assert.Contains(t, res.Steps[0].Error, "unknown command")
}

func TestRun_FailOKTreatsExitAsOutput(t *testing.T) {
	r, _ := newFakeRunner(t, Config{})

	res := r.Run(context.Background(), Scenario{
		Name: "tolerant",
		Steps: []Step{{
			Name:        "show",
			Command:     "server show nope",
			FailOK:      true,
			MergeStderr: true,
			Expect:      &Expect{Fail: true, OutputContains: []string{"'nope' exists"}},
		}},
	})

	assert.True(t, res.Passed, res.Error)
}

func TestRun_MissingVariable(t *testing.T) {
	r, _ := newFakeRunner(t, Config{})

	res := r.Run(context.Background(), Scenario{
		Name:  "missing",
		Steps: []Step{{Name: "show", Command: "server show {{ .server_id }}"}},
	})

	assert.False(t, res.Passed)
	assert.Contains(t, res.Steps[0].Error, "server_id")
}

func TestRun_CaptureMissingField(t *testing.T) {
	r, _ := newFakeRunner(t, Config{})

	res := r.Run(context.Background(), Scenario{
		Name: "capture",
		Steps: []Step{{
			Name:    "create",
			Command: "server create web-1",
			Parse:   "show",
			Capture: map[string]string{"addr": "addresses"},
		}},
	})

	assert.False(t, res.Passed)
	assert.Contains(t, res.Steps[0].Error, `field "addresses" not in output`)
}

func TestRunAll_ReportsInInputOrder(t *testing.T) {
	r, _ := newFakeRunner(t, Config{Parallelism: 2})

	good := lifecycleScenario()
	good.Name = "good"
	bad := Scenario{Name: "bad", Steps: []Step{{Name: "typo", Command: "server lsit"}}}
	other := Scenario{Name: "other", Steps: []Step{{Name: "list", Command: "server list", Parse: "list"}}}

	report, err := r.RunAll(context.Background(), []Scenario{good, bad, other})
	require.NoError(t, err)

	require.Len(t, report.Scenarios, 3)
	assert.Equal(t, []string{"good", "bad", "other"},
		[]string{report.Scenarios[0].Name, report.Scenarios[1].Name, report.Scenarios[2].Name})
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.OK())
	assert.NotEmpty(t, report.RunID)
}

func TestRunAll_FailFastSkipsPending(t *testing.T) {
	r, _ := newFakeRunner(t, Config{Parallelism: 1, FailFast: true})

	bad := Scenario{Name: "bad", Steps: []Step{{Name: "typo", Command: "server lsit"}}}
	later := Scenario{Name: "later", Steps: []Step{{Name: "list", Command: "server list"}}}

	report, err := r.RunAll(context.Background(), []Scenario{bad, later})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Skipped)
	assert.True(t, report.Scenarios[1].Skipped)
}

func TestRunAll_CancelledContext(t *testing.T) {
	r, _ := newFakeRunner(t, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.RunAll(ctx, []Scenario{lifecycleScenario()})
	require.Error(t, err)
	assert.Equal(t, 1, report.Skipped)
}

func TestRun_RunIDVariable(t *testing.T) {
	r, _ := newFakeRunner(t, Config{})

	res := r.Run(context.Background(), Scenario{
		Name: "vars",
		Vars: map[string]string{"flavor": "m1.tiny"},
		Steps: []Step{{
			Name:    "unknown",
			Command: "echo {{ .flavor }} tabula-{{ .run_id }} {{ .scenario }}",
			FailOK:  true,
		}},
	})

	require.Len(t, res.Steps, 1)
	assert.Regexp(t, `echo m1\.tiny tabula-[0-9a-f-]{12} vars$`, res.Steps[0].Command)
}

func TestRunAll_DistinctResourceNames(t *testing.T) {
	r, _ := newFakeRunner(t, Config{Parallelism: 3})

	var scenarios []Scenario
	for _, n := range []string{"a", "b", "c"} {
		scenarios = append(scenarios, Scenario{
			Name:  n,
			Steps: []Step{{Name: "echo", Command: "echo {{ .name }}", FailOK: true}},
		})
	}

	report, err := r.RunAll(context.Background(), scenarios)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, sc := range report.Scenarios {
		require.Len(t, sc.Steps, 1)
		cmd := sc.Steps[0].Command
		assert.Regexp(t, `echo tabula-[a-z]+-[a-z]+$`, cmd)
		assert.False(t, seen[cmd], "resource names must differ across scenarios")
		seen[cmd] = true
	}
}
