// Package cmd содержит команды CLI credit-calculator.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/credit-calculator-go/internal/config"
	"github.com/cloud-ru/credit-calculator-go/internal/logging"
	"github.com/cloud-ru/credit-calculator-go/internal/output"
	"github.com/cloud-ru/credit-calculator-go/internal/prompt"
	"github.com/cloud-ru/credit-calculator-go/internal/tools"
	"github.com/cloud-ru/credit-calculator-go/internal/tracing"
	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

// app общее состояние команд после PersistentPreRunE
type app struct {
	cfg      *config.Config
	service  *tools.Service
	shutdown tracing.ShutdownFunc
	verbose  bool
}

// loanFlags пять необязательных параметров расчета
type loanFlags struct {
	scheme    string
	principal int64
	periods   int64
	interest  float64
	payment   int64
}

func (f *loanFlags) register(cmd *cobra.Command, withScheme bool) {
	if withScheme {
		cmd.Flags().StringVar(&f.scheme, "type", "", `payment scheme: "annuity" or "diff"`)
	}
	cmd.Flags().Int64Var(&f.principal, "principal", 0, "credit principal")
	cmd.Flags().Int64Var(&f.periods, "periods", 0, "number of monthly pay periods")
	cmd.Flags().Float64Var(&f.interest, "interest", 0, "annual interest rate in percent, e.g. 7.8")
	cmd.Flags().Int64Var(&f.payment, "payment", 0, "monthly payment")
}

// inputs собирает LoanInputs только из явно заданных флагов
func (f *loanFlags) inputs(cmd *cobra.Command) (validators.LoanInputs, error) {
	var in validators.LoanInputs
	flags := cmd.Flags()

	if flags.Changed("type") {
		scheme, err := validators.ParseScheme(f.scheme)
		if err != nil {
			return in, err
		}
		in.Scheme = scheme
	}
	if flags.Changed("principal") {
		in.Principal = validators.Int64(f.principal)
	}
	if flags.Changed("interest") {
		in.Interest = validators.Float64(f.interest)
	}
	if flags.Changed("periods") {
		in.Periods = validators.Int64(f.periods)
	}
	if flags.Changed("payment") {
		in.Payment = validators.Int64(f.payment)
	}
	return in, nil
}

func (f *loanFlags) anySet(cmd *cobra.Command) bool {
	for _, name := range []string{"type", "principal", "periods", "interest", "payment"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// NewRootCmd строит дерево команд
func NewRootCmd() *cobra.Command {
	a := &app{}
	flags := &loanFlags{}

	root := &cobra.Command{
		Use:   "credit-calculator",
		Short: "Calculate loan payment, principal or repayment timeframe",
		Long: `credit-calculator solves for the one unknown loan parameter.

Annuity (--type annuity) takes any two of --principal, --periods and
--payment plus --interest. Differentiated (--type diff) takes --principal,
--periods and --interest and prints the monthly schedule. Without flags the
calculator asks for the parameters interactively.

Examples:
  credit-calculator --type annuity --principal 1000000 --periods 60 --interest 10
  credit-calculator --type annuity --payment 8722 --periods 120 --interest 5.6
  credit-calculator --type diff --principal 500000 --periods 8 --interest 7.8
  credit-calculator`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCalculate(cmd, flags)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.register(root, true)

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute запускает CLI
func Execute() error {
	return NewRootCmd().ExecuteContext(context.Background())
}

func (a *app) init() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logCfg.Output = cfg.LogOutput
	if a.verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	tracer, shutdown, err := tracing.InitTracing(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.shutdown = shutdown
	a.service = tools.NewService(cfg, tracer, nil)

	return nil
}

func (a *app) close(ctx context.Context) error {
	defer logging.Close()
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return a.shutdown(ctx)
}

func (a *app) runCalculate(cmd *cobra.Command, flags *loanFlags) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var (
		in  validators.LoanInputs
		err error
	)
	if flags.anySet(cmd) {
		in, err = flags.inputs(cmd)
		if err != nil {
			logging.Debug("rejected flags", zap.Error(err))
			fmt.Fprintln(out, output.IncorrectParameters)
			return nil
		}
	} else {
		in, err = prompt.Collect(prompt.NewSession(cmd.InOrStdin(), out))
		if err != nil && !errors.Is(err, prompt.ErrUnknownChoice) {
			return fmt.Errorf("interactive input: %w", err)
		}
		if err != nil {
			logging.Debug("interactive session aborted", zap.Error(err))
			fmt.Fprintln(out, output.IncorrectParameters)
			return nil
		}
	}

	result, err := a.service.Calculate(ctx, in)
	fmt.Fprintln(out, output.Message(result, err))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "credit-calculator version %s\n", tracing.Version)
		},
	}
}
