package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/hr-screener/internal/db"
	"github.com/jonathan/hr-screener/internal/evaluation"
	"github.com/jonathan/hr-screener/internal/rules"
	"github.com/jonathan/hr-screener/internal/types"
	"github.com/jonathan/hr-screener/internal/voice"
)

// handleQueueCalls dispatches screening calls to every pending candidate with
// a phone number. Each dispatch succeeds or fails on its own.
func (s *Server) handleQueueCalls(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.db.ListCandidates(r.Context(), types.StatusPending)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	queued, skipped, failed := 0, 0, 0
	for _, c := range candidates {
		if c.Phone == "" {
			skipped++
			continue
		}

		callID, err := s.voiceClient.DispatchCall(r.Context(), c.Phone, c.Name, c.JobTitle)
		if err != nil {
			s.logger.Warn("failed to dispatch call",
				zap.String("candidate", c.ID.String()), zap.Error(err))
			failed++
			continue
		}

		if _, err := s.db.LogCallInitiated(r.Context(), c.ID, callID); err != nil {
			s.logger.Error("failed to log dispatched call",
				zap.String("call_id", callID), zap.Error(err))
			failed++
			continue
		}
		queued++
	}

	s.jsonResponse(w, http.StatusOK, map[string]int{
		"queued":  queued,
		"skipped": skipped,
		"failed":  failed,
	})
}

// handleSyncCalls polls the provider for every initiated call, evaluates
// finished transcripts against the effective hiring rule and updates the
// candidate's status. Calls still in flight are left alone.
func (s *Server) handleSyncCalls(w http.ResponseWriter, r *http.Request) {
	rulesCfg, err := s.rulesConfig()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	initiated, err := s.db.ListInitiatedCalls(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	synced, pending, failed := 0, 0, 0
	for _, call := range initiated {
		done, err := s.syncCall(r.Context(), call, rulesCfg)
		switch {
		case err != nil:
			s.logger.Warn("failed to sync call",
				zap.String("external_call_id", call.ExternalCallID), zap.Error(err))
			failed++
		case done:
			synced++
		default:
			pending++
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]int{
		"synced":  synced,
		"pending": pending,
		"failed":  failed,
	})
}

// syncCall pulls one call's state from the provider. Returns false when the
// call has not finished yet.
func (s *Server) syncCall(ctx context.Context, call db.CallRecord, rulesCfg *rules.Config) (bool, error) {
	log, err := s.voiceClient.GetCallLog(ctx, call.ExternalCallID)
	if err != nil {
		return false, err
	}

	outcome, final := voice.OutcomeForStatus(log.Status)
	if !final {
		return false, nil
	}

	result := db.CallResult{
		Outcome:         outcome,
		DurationSeconds: int(log.DurationSeconds),
		Transcript:      log.Transcript,
		RecordingURL:    log.RecordingURL,
	}
	status := types.StatusNotInterested

	if outcome == types.StatusContacted && log.Transcript != "" {
		candidate, err := s.db.GetCandidate(ctx, call.CandidateID)
		if err != nil {
			return false, err
		}
		if candidate == nil {
			return false, nil
		}

		eval, err := s.evaluateTranscript(ctx, log.Transcript, candidate.JobTitle, rulesCfg)
		if err != nil {
			// Rule resolution failed; record the call but leave the
			// candidate for manual review.
			s.logger.Warn("transcript not evaluated",
				zap.String("candidate", candidate.ID.String()), zap.Error(err))
			status = types.StatusOnHold
		} else {
			result.Decision = string(eval.Decision)
			result.Reasons = eval.Reasons
			status = types.StatusQualified
			if eval.Decision == types.DecisionReject {
				status = types.StatusRejected
			}
		}
	}

	if err := s.db.CompleteCall(ctx, call.ExternalCallID, result); err != nil {
		return false, err
	}
	if err := s.db.UpdateCandidateStatus(ctx, call.CandidateID, status); err != nil {
		return false, err
	}
	return true, nil
}

// evaluateTranscript resolves the effective rule for the role and qualifies
// the transcript. Database rules are appended after file rules, so a rule
// added through the API overrides the file for the same role.
func (s *Server) evaluateTranscript(ctx context.Context, transcript, role string, rulesCfg *rules.Config) (types.TranscriptEvaluation, error) {
	stored, err := s.db.RoleRules(ctx)
	if err != nil {
		return types.TranscriptEvaluation{}, err
	}

	ruleSet := append(append([]types.RoleRule{}, rulesCfg.Rules...), stored...)
	rule, err := rules.Resolve(role, ruleSet, rulesCfg.Defaults)
	if err != nil {
		return types.TranscriptEvaluation{}, err
	}

	return evaluation.Evaluate(transcript, rule), nil
}
