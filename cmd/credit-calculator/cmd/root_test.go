package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	t.Setenv("OTEL_ENDPOINT", "")
	t.Setenv("LOG_LEVEL", "error")

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	require.NoError(t, root.Execute())
	return out.String()
}

func TestRootFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "annuity payment",
			args: []string{"--type", "annuity", "--principal", "1000000", "--periods", "60", "--interest", "10"},
			want: "Your annuity payment = 21248!\nOverpayment = 274880\n",
		},
		{
			name: "annuity principal",
			args: []string{"--type=annuity", "--payment=8722", "--periods=120", "--interest=5.6"},
			want: "Your credit principal = 800019!\nOverpayment = 246621\n",
		},
		{
			name: "annuity timeframe",
			args: []string{"--type=annuity", "--principal=500000", "--payment=23000", "--interest=7.8"},
			want: "You need 2 years to repay this credit!\nOverpayment = 52000\n",
		},
		{
			name: "negative principal",
			args: []string{"--type", "diff", "--principal", "-1000000", "--periods", "10", "--interest", "10"},
			want: "Incorrect parameters\n",
		},
		{
			name: "missing interest",
			args: []string{"--type=annuity", "--principal=100000", "--payment=10400", "--periods=8"},
			want: "Incorrect parameters\n",
		},
		{
			name: "diff with payment",
			args: []string{"--type=diff", "--principal=1000000", "--interest=104", "--payment=8722"},
			want: "Incorrect parameters\n",
		},
		{
			name: "unknown scheme",
			args: []string{"--type=balloon", "--principal=1000", "--periods=10", "--interest=10"},
			want: "Incorrect parameters\n",
		},
		{
			name: "period count near int64",
			args: []string{"--type=diff", "--principal=1", "--periods=4611686018427387904", "--interest=1"},
			want: "Incorrect parameters\n",
		},
		{
			name: "total paid overflows",
			args: []string{"--type=annuity", "--principal=9223372036854775807", "--periods=12", "--interest=10"},
			want: "Incorrect parameters\n",
		},
		{
			name: "payment never covers interest",
			args: []string{"--type=annuity", "--principal=100000", "--payment=100", "--interest=12"},
			want: "Incorrect parameters\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, execute(t, "", tt.args...))
		})
	}
}

func TestRootDifferentiatedSchedule(t *testing.T) {
	got := execute(t, "", "--type", "diff", "--principal", "500000", "--periods", "8", "--interest", "7.8")

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "Month 1: paid out 65750", lines[0])
	assert.Equal(t, "Month 8: paid out 62907", lines[7])
	assert.Equal(t, "", lines[8])
	assert.Equal(t, "Overpayment = 14628", lines[9])
}

func TestRootInteractive(t *testing.T) {
	got := execute(t, "a\nn\n500000\n22000\n7.8\n")
	assert.True(t, strings.HasSuffix(got, "You need 2 years and 1 month to repay this credit!\nOverpayment = 50000\n"), got)

	got = execute(t, "z\n")
	assert.True(t, strings.HasSuffix(got, "Incorrect parameters\n"), got)
}

func TestCompareCommand(t *testing.T) {
	got := execute(t, "", "compare", "--principal", "1000000", "--periods", "12", "--interest", "12")
	assert.Contains(t, got, "Annuity: 88849 per month, total 1066188")
	assert.Contains(t, got, "Cheaper: differentiated, saves 1184")

	got = execute(t, "", "compare", "--principal", "1000000", "--interest", "12")
	assert.Equal(t, "Incorrect parameters\n", got)
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "", "version"), "credit-calculator version")
}

func TestRootLogsToConfiguredOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.log")
	t.Setenv("LOG_OUTPUT", path)
	t.Setenv("LOG_FORMAT", "json")

	got := execute(t, "", "--verbose", "--type=annuity", "--principal=1000000", "--periods=60", "--interest=10")
	assert.Equal(t, "Your annuity payment = 21248!\nOverpayment = 274880\n", got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"calculation finished"`)
	assert.Contains(t, string(data), `"operation":"annuity_payment"`)
}
