package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/selection"
)

func TestFoldSelectionSpreadsSlots(t *testing.T) {
	now := time.Date(2026, time.April, 1, 12, 0, 0, 0, time.UTC)
	sel := selection.Selection{
		UserEmail: "fan@example.com",
		MatchID:   7,
		PlayerIDs: []int64{101, 102, 103},
		CreatedAt: now,
		UpdatedAt: now,
	}

	values, err := foldSelection(sel)
	if err != nil {
		t.Fatalf("foldSelection: %v", err)
	}
	if len(values) != len(userTeamColumns) {
		t.Fatalf("value count = %d, want %d", len(values), len(userTeamColumns))
	}
	if values[0] != "fan@example.com" || values[1] != int64(7) {
		t.Fatalf("key values = %v %v", values[0], values[1])
	}
	if values[2] != int64(101) || values[4] != int64(103) {
		t.Fatalf("slot values = %v", values[2:13])
	}
	if values[5] != nil || values[12] != nil {
		t.Fatalf("empty slots should fold to nil: %v", values[2:13])
	}
}

func TestFoldSelectionRejectsOversize(t *testing.T) {
	ids := make([]int64, 12)
	for i := range ids {
		ids[i] = int64(i + 1)
	}
	if _, err := foldSelection(selection.Selection{PlayerIDs: ids}); err == nil {
		t.Fatal("twelve ids folded into eleven slots")
	}
}

func TestUserTeamUnfoldSkipsEmptySlots(t *testing.T) {
	row := userTeamTableModel{
		UserEmail: "fan@example.com",
		MatchID:   7,
		Player1:   sql.NullInt64{Int64: 101, Valid: true},
		Player2:   sql.NullInt64{},
		Player3:   sql.NullInt64{Int64: 103, Valid: true},
	}

	sel := row.toDomain()
	if len(sel.PlayerIDs) != 2 || sel.PlayerIDs[0] != 101 || sel.PlayerIDs[1] != 103 {
		t.Fatalf("PlayerIDs = %v, want [101 103]", sel.PlayerIDs)
	}
}

func TestFoldUnfoldRoundTrip(t *testing.T) {
	ids := []int64{11, 22, 33, 44, 55, 66, 77, 88, 99, 110, 121}
	sel := selection.Selection{UserEmail: "fan@example.com", MatchID: 1, PlayerIDs: ids}

	values, err := foldSelection(sel)
	if err != nil {
		t.Fatalf("foldSelection: %v", err)
	}

	var row userTeamTableModel
	row.UserEmail = values[0].(string)
	row.MatchID = values[1].(int64)
	slots := []*sql.NullInt64{
		&row.Player1, &row.Player2, &row.Player3, &row.Player4, &row.Player5,
		&row.Player6, &row.Player7, &row.Player8, &row.Player9, &row.Player10,
		&row.Player11,
	}
	for i, slot := range slots {
		if values[2+i] != nil {
			*slot = sql.NullInt64{Int64: values[2+i].(int64), Valid: true}
		}
	}

	got := row.toDomain()
	if len(got.PlayerIDs) != len(ids) {
		t.Fatalf("round trip lost ids: %v", got.PlayerIDs)
	}
	for i, id := range ids {
		if got.PlayerIDs[i] != id {
			t.Fatalf("PlayerIDs[%d] = %d, want %d", i, got.PlayerIDs[i], id)
		}
	}
}
