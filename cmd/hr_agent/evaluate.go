package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-screener/internal/evaluation"
	"github.com/jonathan/hr-screener/internal/observability"
	"github.com/jonathan/hr-screener/internal/rules"
)

var (
	evalRole      string
	evalRulesFile string
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <transcript-file>",
	Short: "Evaluate a call transcript against the hiring rules",
	Long:  "Evaluate a screening call transcript against the effective hiring rule for a role and print the qualification decision with its reasons.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evalRole, "role", "", "Role key to resolve the rule for (required)")
	evaluateCmd.Flags().StringVar(&evalRulesFile, "rules", "", "Path to hiring config file (required)")
	_ = evaluateCmd.MarkFlagRequired("role")
	_ = evaluateCmd.MarkFlagRequired("rules")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(_ *cobra.Command, args []string) error {
	transcript, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read transcript: %w", err)
	}

	cfg, err := rules.LoadConfig(evalRulesFile)
	if err != nil {
		return err
	}

	rule, err := rules.Resolve(evalRole, cfg.Rules, cfg.Defaults)
	if err != nil {
		return err
	}

	eval := evaluation.Evaluate(string(transcript), rule)
	observability.NewPrinter(os.Stdout).PrintEvaluation(&eval)
	return nil
}
