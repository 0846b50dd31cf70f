package db

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// HashCacheInput produces a stable key for an assistant request so unchanged
// inputs never pay for a second model call.
func HashCacheInput(input any) string {
	data, err := json.Marshal(input)
	if err != nil {
		// Inputs are plain structs; a marshal failure is a programming error,
		// but an uncacheable request is harmless.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// GetCachedAnalysis returns a previously stored assistant result for the
// given input hash, or ("", false) on a miss.
func (d *DB) GetCachedAnalysis(ctx context.Context, orgID uuid.UUID, analysisType, inputHash string) (string, bool) {
	if inputHash == "" {
		return "", false
	}

	var result string
	err := d.Pool.QueryRow(ctx, `
		SELECT result
		FROM ai_analysis_cache
		WHERE organization_id = $1 AND analysis_type = $2 AND input_hash = $3
		ORDER BY created_at DESC
		LIMIT 1
	`, orgID, analysisType, inputHash).Scan(&result)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return result, true
}

// SetCachedAnalysis stores an assistant result keyed by input hash.
func (d *DB) SetCachedAnalysis(ctx context.Context, orgID uuid.UUID, analysisType, inputHash, model, result string) error {
	if inputHash == "" {
		return nil
	}
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO ai_analysis_cache (organization_id, analysis_type, input_hash, model_version, result)
		VALUES ($1, $2, $3, $4, $5)
	`, orgID, analysisType, inputHash, model, result)
	return err
}

// InvalidateAnalysisCache drops cached results for an organization,
// optionally scoped to one analysis type.
func (d *DB) InvalidateAnalysisCache(ctx context.Context, orgID uuid.UUID, analysisType string) error {
	_, err := d.Pool.Exec(ctx, `
		DELETE FROM ai_analysis_cache
		WHERE organization_id = $1 AND ($2 = '' OR analysis_type = $2)
	`, orgID, analysisType)
	return err
}
