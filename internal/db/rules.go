package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/hr-screener/internal/types"
)

// CreateHiringRule inserts a new role-scoped hiring policy and returns its
// ID. Definition order is preserved via the position column.
func (db *DB) CreateHiringRule(ctx context.Context, rule HiringRule) (uuid.UUID, error) {
	topics, err := json.Marshal(nonNil(rule.RequiredTopics))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal topics: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO hiring_rules (role_keyword, max_budget, min_experience_years, required_topics)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		rule.RoleKeyword, rule.MaxBudget, rule.MinExperienceYears, topics,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create hiring rule: %w", err)
	}
	return id, nil
}

// ListHiringRules returns all stored rules in definition order. The order is
// load-bearing: resolution takes the last matching rule.
func (db *DB) ListHiringRules(ctx context.Context) ([]HiringRule, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, role_keyword, max_budget, min_experience_years, required_topics, position, created_at
		 FROM hiring_rules ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hiring rules: %w", err)
	}
	defer rows.Close()

	var ruleSet []HiringRule
	for rows.Next() {
		var r HiringRule
		var topics []byte
		if err := rows.Scan(&r.ID, &r.RoleKeyword, &r.MaxBudget, &r.MinExperienceYears,
			&topics, &r.Position, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hiring rule: %w", err)
		}
		if len(topics) > 0 {
			if err := json.Unmarshal(topics, &r.RequiredTopics); err != nil {
				return nil, fmt.Errorf("failed to decode topics: %w", err)
			}
		}
		ruleSet = append(ruleSet, r)
	}
	return ruleSet, nil
}

// RoleRules returns the stored rules converted for resolution, preserving
// definition order.
func (db *DB) RoleRules(ctx context.Context) ([]types.RoleRule, error) {
	stored, err := db.ListHiringRules(ctx)
	if err != nil {
		return nil, err
	}
	ruleSet := make([]types.RoleRule, 0, len(stored))
	for _, r := range stored {
		ruleSet = append(ruleSet, r.ToRoleRule())
	}
	return ruleSet, nil
}

// DeleteHiringRule removes a rule by ID.
func (db *DB) DeleteHiringRule(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM hiring_rules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hiring rule: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("hiring rule not found: %s", id)
	}
	return nil
}
