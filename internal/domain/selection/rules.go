package selection

import (
	"fmt"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

// Rules stores the fantasy roster validation parameters.
type Rules struct {
	MaxPlayers        int
	MaxPlayersPerTeam int
	RoleLimits        map[player.Role]int
}

func DefaultRules() Rules {
	return Rules{
		MaxPlayers:        11,
		MaxPlayersPerTeam: 6,
		RoleLimits: map[player.Role]int{
			player.RoleBatsman:      4,
			player.RoleBowler:       4,
			player.RoleAllRounder:   2,
			player.RoleWicketKeeper: 1,
		},
	}
}

// Result is the outcome of validating a selection. RoleCounts is always
// populated for every known role so callers can render progress indicators
// even while the selection is invalid.
type Result struct {
	Valid      bool
	Errors     []string
	RoleCounts map[player.Role]int
	TeamCounts map[string]int
}

// Validate checks an ordered pick list against the rules. Every rule is
// evaluated and every violation collected; nothing short-circuits. Order of
// the input does not affect the counts. No minimum size is enforced here:
// the finalize path requires exactly MaxPlayers.
func Validate(players []player.Player, rules Rules) Result {
	roleCounts := make(map[player.Role]int, len(rules.RoleLimits))
	for role := range player.AllRoles {
		roleCounts[role] = 0
	}
	teamCounts := make(map[string]int)

	for _, p := range players {
		if _, ok := player.AllRoles[p.Role]; ok {
			roleCounts[p.Role]++
		}
		teamCounts[p.TeamName]++
	}

	var errs []string
	if len(players) > rules.MaxPlayers {
		errs = append(errs, fmt.Sprintf("team can have maximum %d players", rules.MaxPlayers))
	}

	for role, limit := range rules.RoleLimits {
		if count := roleCounts[role]; count > limit {
			errs = append(errs, fmt.Sprintf("maximum %d %s(s) allowed, currently have %d", limit, role, count))
		}
	}

	for teamName, count := range teamCounts {
		if count > rules.MaxPlayersPerTeam {
			errs = append(errs, fmt.Sprintf("maximum %d players allowed from %s, currently have %d", rules.MaxPlayersPerTeam, teamName, count))
		}
	}

	return Result{
		Valid:      len(errs) == 0,
		Errors:     errs,
		RoleCounts: roleCounts,
		TeamCounts: teamCounts,
	}
}
