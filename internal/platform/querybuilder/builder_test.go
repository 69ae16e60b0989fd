package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "full_name").
		From("players").
		Where(
			Expr("LOWER(team_name) = LOWER(?)", "Chennai Super Kings"),
			In("id", []any{int64(1), int64(2)}),
		).
		OrderBy("id ASC").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "SELECT id, full_name FROM players WHERE LOWER(team_name) = LOWER($1) AND id IN ($2, $3) ORDER BY id ASC"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("args = %v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	query, args, err := Select("id").From("players").Where(In("id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}
	if query != "SELECT id FROM players WHERE 1=0" {
		t.Fatalf("query = %q", query)
	}
	if len(args) != 0 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertBuilderWithSuffix(t *testing.T) {
	query, args, err := InsertInto("user_teams").
		Columns("user_email", "match_id", "player_1").
		Values("fan@example.com", int64(1), int64(101)).
		Suffix("ON CONFLICT (user_email, match_id) DO UPDATE SET player_1 = EXCLUDED.player_1").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL: %v", err)
	}

	want := "INSERT INTO user_teams (user_email, match_id, player_1) VALUES ($1, $2, $3) ON CONFLICT (user_email, match_id) DO UPDATE SET player_1 = EXCLUDED.player_1"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("args = %v", args)
	}
}

func TestInsertBuilderRejectsRaggedRow(t *testing.T) {
	_, _, err := InsertInto("user_teams").
		Columns("user_email", "match_id").
		Values("fan@example.com").
		ToSQL()
	if err == nil {
		t.Fatal("ragged row accepted")
	}
}
