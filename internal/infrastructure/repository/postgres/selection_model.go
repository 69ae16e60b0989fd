package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
)

// user_teams stores a selection as eleven fixed slots. The fold/unfold
// between the ordered id slice and the slot columns lives here and nowhere
// else.
const userTeamSlots = 11

type userTeamTableModel struct {
	UserEmail string        `db:"user_email"`
	MatchID   int64         `db:"match_id"`
	Player1   sql.NullInt64 `db:"player_1"`
	Player2   sql.NullInt64 `db:"player_2"`
	Player3   sql.NullInt64 `db:"player_3"`
	Player4   sql.NullInt64 `db:"player_4"`
	Player5   sql.NullInt64 `db:"player_5"`
	Player6   sql.NullInt64 `db:"player_6"`
	Player7   sql.NullInt64 `db:"player_7"`
	Player8   sql.NullInt64 `db:"player_8"`
	Player9   sql.NullInt64 `db:"player_9"`
	Player10  sql.NullInt64 `db:"player_10"`
	Player11  sql.NullInt64 `db:"player_11"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

var userTeamColumns = []string{
	"user_email", "match_id",
	"player_1", "player_2", "player_3", "player_4", "player_5", "player_6",
	"player_7", "player_8", "player_9", "player_10", "player_11",
	"created_at", "updated_at",
}

func (m userTeamTableModel) slots() [userTeamSlots]sql.NullInt64 {
	return [userTeamSlots]sql.NullInt64{
		m.Player1, m.Player2, m.Player3, m.Player4, m.Player5, m.Player6,
		m.Player7, m.Player8, m.Player9, m.Player10, m.Player11,
	}
}

// toDomain unfolds the slot columns back into the ordered id slice. Empty
// slots are skipped so a partially filled historical row still loads.
func (m userTeamTableModel) toDomain() selection.Selection {
	ids := make([]int64, 0, userTeamSlots)
	for _, slot := range m.slots() {
		if slot.Valid && slot.Int64 > 0 {
			ids = append(ids, slot.Int64)
		}
	}

	return selection.Selection{
		UserEmail: m.UserEmail,
		MatchID:   m.MatchID,
		PlayerIDs: ids,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// foldSelection spreads the ordered ids across the slot columns in insert
// order. More ids than slots is a programming error upstream.
func foldSelection(sel selection.Selection) ([]any, error) {
	if len(sel.PlayerIDs) > userTeamSlots {
		return nil, fmt.Errorf("selection has %d players, table holds %d", len(sel.PlayerIDs), userTeamSlots)
	}

	values := make([]any, 0, len(userTeamColumns))
	values = append(values, sel.UserEmail, sel.MatchID)
	for i := 0; i < userTeamSlots; i++ {
		if i < len(sel.PlayerIDs) {
			values = append(values, sel.PlayerIDs[i])
			continue
		}
		values = append(values, nil)
	}
	values = append(values, sel.CreatedAt, sel.UpdatedAt)

	return values, nil
}
