package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/evaluation"
	"github.com/jonathan/hr-screener/internal/logger"
	"github.com/jonathan/hr-screener/internal/rules"
	"github.com/jonathan/hr-screener/internal/types"
	"github.com/jonathan/hr-screener/internal/voice"
)

var callsRulesFile string

var callsCmd = &cobra.Command{
	Use:   "calls",
	Short: "Dispatch and sync automated screening calls",
}

var callsQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Dispatch screening calls to all pending candidates",
	RunE:  runCallsQueue,
}

var callsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch finished calls, evaluate transcripts and update candidates",
	RunE:  runCallsSync,
}

func init() {
	callsSyncCmd.Flags().StringVar(&callsRulesFile, "rules", "", "Path to hiring config file")
	callsCmd.AddCommand(callsQueueCmd)
	callsCmd.AddCommand(callsSyncCmd)
	rootCmd.AddCommand(callsCmd)
}

// connectDB opens the candidate database from DATABASE_URL.
func connectDB(ctx context.Context) (*db.DB, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// voiceClientFromEnv builds the provider client from environment variables.
func voiceClientFromEnv() (*voice.Client, error) {
	baseURL := os.Getenv("VOICE_API_URL")
	apiKey := os.Getenv("VOICE_API_KEY")
	if baseURL == "" || apiKey == "" {
		return nil, fmt.Errorf("VOICE_API_URL and VOICE_API_KEY environment variables are required")
	}
	agentID, _ := strconv.Atoi(os.Getenv("VOICE_AGENT_ID"))

	log, err := logger.New(flagLogJSON, flagDebug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return voice.NewClient(baseURL, apiKey, agentID, log), nil
}

func runCallsQueue(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	client, err := voiceClientFromEnv()
	if err != nil {
		return err
	}

	candidates, err := database.ListCandidates(ctx, types.StatusPending)
	if err != nil {
		return err
	}

	queued, skipped := 0, 0
	for _, c := range candidates {
		if c.Phone == "" {
			skipped++
			continue
		}
		callID, err := client.DispatchCall(ctx, c.Phone, c.Name, c.JobTitle)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to call %s: %v\n", c.Name, err)
			continue
		}
		if _, err := database.LogCallInitiated(ctx, c.ID, callID); err != nil {
			return err
		}
		queued++
	}

	fmt.Printf("Queued %d calls (%d candidates without phone skipped)\n", queued, skipped)
	return nil
}

func runCallsSync(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	client, err := voiceClientFromEnv()
	if err != nil {
		return err
	}

	rulesCfg := &rules.Config{}
	if callsRulesFile != "" {
		rulesCfg, err = rules.LoadConfig(callsRulesFile)
		if err != nil {
			return err
		}
	}

	initiated, err := database.ListInitiatedCalls(ctx)
	if err != nil {
		return err
	}

	synced, pending := 0, 0
	for _, call := range initiated {
		log, err := client.GetCallLog(ctx, call.ExternalCallID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to fetch call %s: %v\n", call.ExternalCallID, err)
			continue
		}

		outcome, final := voice.OutcomeForStatus(log.Status)
		if !final {
			pending++
			continue
		}

		result := db.CallResult{
			Outcome:         outcome,
			DurationSeconds: int(log.DurationSeconds),
			Transcript:      log.Transcript,
			RecordingURL:    log.RecordingURL,
		}
		status := types.StatusNotInterested

		if outcome == types.StatusContacted && log.Transcript != "" {
			candidate, err := database.GetCandidate(ctx, call.CandidateID)
			if err != nil {
				return err
			}
			if candidate == nil {
				continue
			}

			stored, err := database.RoleRules(ctx)
			if err != nil {
				return err
			}
			ruleSet := append(append([]types.RoleRule{}, rulesCfg.Rules...), stored...)
			rule, err := rules.Resolve(candidate.JobTitle, ruleSet, rulesCfg.Defaults)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s not evaluated: %v\n", candidate.Name, err)
				status = types.StatusOnHold
			} else {
				eval := evaluation.Evaluate(log.Transcript, rule)
				result.Decision = string(eval.Decision)
				result.Reasons = eval.Reasons
				status = types.StatusQualified
				if eval.Decision == types.DecisionReject {
					status = types.StatusRejected
				}
			}
		}

		if err := database.CompleteCall(ctx, call.ExternalCallID, result); err != nil {
			return err
		}
		if err := database.UpdateCandidateStatus(ctx, call.CandidateID, status); err != nil {
			return err
		}
		synced++
	}

	fmt.Printf("Synced %d calls (%d still in flight)\n", synced, pending)
	return nil
}
