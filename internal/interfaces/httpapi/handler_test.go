package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/user"
	"github.com/dreamsquad/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/dreamsquad/fantasy-cricket/internal/platform/logging"
	"github.com/dreamsquad/fantasy-cricket/internal/usecase"
)

type stubVerifier struct{}

func (stubVerifier) Introspect(_ context.Context, token string) (user.Principal, error) {
	if token != "valid-token" {
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	}
	return user.Principal{UserID: "u-1", Email: "fan@example.com"}, nil
}

type staticIDGenerator struct {
	id string
}

func (g staticIDGenerator) NewID() (string, error) {
	return g.id, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	matches := memory.NewMatchRepository(memory.SeedMatches(time.Now()))
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	selections := memory.NewSelectionRepository()

	matchSvc := usecase.NewMatchService(matches, usecase.MatchListRetry{}, logger)
	rosterSvc := usecase.NewRosterService(players)
	teamSvc := usecase.NewTeamService(selections, players, matches, logger)
	sessionSvc := usecase.NewSessionService(teamSvc, matches, players, staticIDGenerator{id: "session-1"}, time.Hour, logger)

	handler := NewHandler(matchSvc, rosterSvc, teamSvc, sessionSvc, matches, logger)
	return NewRouter(handler, stubVerifier{}, logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	data, _ := envelope["data"].(map[string]any)
	return data
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := decodeData(t, rec)
	if data["status"] != "ok" || data["store"] != "ok" {
		t.Fatalf("health payload = %v", data)
	}
}

func TestListMatchesSplitsSchedule(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/matches", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	upcoming, _ := data["upcoming"].([]any)
	past, _ := data["past"].([]any)
	if len(upcoming) != 2 || len(past) != 1 {
		t.Fatalf("schedule split = (%d, %d), want (2, 1)", len(upcoming), len(past))
	}
}

func TestGetMatchNotFound(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/matches/999", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListTeamPlayersClassifies(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/teams/Chennai%20Super%20Kings/players", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(envelope.Data) == 0 {
		t.Fatal("empty roster")
	}
	for _, p := range envelope.Data {
		if p["role"] == "" {
			t.Fatalf("player without role: %v", p)
		}
	}
}

func TestTeamRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/matches/1/team", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token status = %d, want 401", rec.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/matches/1/team", "wrong-token", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad token status = %d, want 401", rec.Code)
	}
}

func TestSaveAndGetMyTeam(t *testing.T) {
	router := newTestRouter(t)
	body := `{"player_ids":[101,102,103,104,106,107,201,202,204,205,206]}`

	rec := doRequest(t, router, http.MethodPut, "/v1/matches/1/team", "valid-token", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/v1/matches/1/team", "valid-token", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	players, _ := data["players"].([]any)
	if len(players) != 11 {
		t.Fatalf("player count = %d, want 11", len(players))
	}
	validation, _ := data["validation"].(map[string]any)
	if valid, _ := validation["valid"].(bool); !valid {
		t.Fatalf("saved team invalid: %v", validation)
	}
}

func TestSaveMyTeamRejectsShortPayload(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), http.MethodPut, "/v1/matches/1/team", "valid-token", `{"player_ids":[101]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/matches/1/sessions", "valid-token", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("start status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data := decodeData(t, rec)
	sessionID, _ := data["id"].(string)
	if sessionID == "" {
		t.Fatal("missing session id")
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/sessions/"+sessionID+"/players", "valid-token", `{"player_id":103}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data = decodeData(t, rec)
	selected, _ := data["selected"].([]any)
	if len(selected) != 1 {
		t.Fatalf("selected = %v", selected)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/sessions/"+sessionID+"/players/103/return", "valid-token", `{"target_team":"Mumbai Indians"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("wrong-team return status = %d, want 400", rec.Code)
	}

	rec = doRequest(t, router, http.MethodPost, "/v1/sessions/"+sessionID+"/finalize", "valid-token", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("short finalize status = %d, want 400", rec.Code)
	}
}
