package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
	qb "github.com/dreamsquad/fantasy-cricket/internal/platform/querybuilder"
)

const userTeamUpsertSuffix = `ON CONFLICT (user_email, match_id) DO UPDATE SET
player_1 = EXCLUDED.player_1, player_2 = EXCLUDED.player_2,
player_3 = EXCLUDED.player_3, player_4 = EXCLUDED.player_4,
player_5 = EXCLUDED.player_5, player_6 = EXCLUDED.player_6,
player_7 = EXCLUDED.player_7, player_8 = EXCLUDED.player_8,
player_9 = EXCLUDED.player_9, player_10 = EXCLUDED.player_10,
player_11 = EXCLUDED.player_11, updated_at = EXCLUDED.updated_at`

type SelectionRepository struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepository {
	return &SelectionRepository{db: db}
}

func (r *SelectionRepository) GetByUserAndMatch(ctx context.Context, userEmail string, matchID int64) (selection.Selection, bool, error) {
	query, args, err := qb.Select(userTeamColumns...).From("user_teams").
		Where(
			qb.Eq("user_email", userEmail),
			qb.Eq("match_id", matchID),
		).
		ToSQL()
	if err != nil {
		return selection.Selection{}, false, fmt.Errorf("build get user team query: %w", err)
	}

	var row userTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return selection.Selection{}, false, nil
		}
		return selection.Selection{}, false, fmt.Errorf("get user team: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *SelectionRepository) ListByMatch(ctx context.Context, matchID int64) ([]selection.Selection, error) {
	query, args, err := qb.Select(userTeamColumns...).From("user_teams").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("created_at ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list user teams query: %w", err)
	}

	var rows []userTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list user teams by match: %w", err)
	}

	out := make([]selection.Selection, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *SelectionRepository) CountByMatch(ctx context.Context, matchID int64) (int, error) {
	query, args, err := qb.Select("COUNT(*)").From("user_teams").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count user teams query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("count user teams by match: %w", err)
	}

	return count, nil
}

func (r *SelectionRepository) Upsert(ctx context.Context, sel selection.Selection) error {
	values, err := foldSelection(sel)
	if err != nil {
		return err
	}

	query, args, err := qb.InsertInto("user_teams").
		Columns(userTeamColumns...).
		Values(values...).
		Suffix(userTeamUpsertSuffix).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build upsert user team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert user team: %w", err)
	}

	return nil
}
