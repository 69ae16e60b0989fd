package memory

import (
	"time"

	"github.com/dreamsquad/fantasy-cricket/internal/domain/match"
	"github.com/dreamsquad/fantasy-cricket/internal/domain/player"
)

const (
	TeamChennai   = "Chennai Super Kings"
	TeamMumbai    = "Mumbai Indians"
	TeamBangalore = "Royal Challengers Bengaluru"
	TeamKolkata   = "Kolkata Knight Riders"
)

func SeedMatches(now time.Time) []match.Match {
	return []match.Match{
		{
			ID:       1,
			Team1:    TeamChennai,
			Team2:    TeamMumbai,
			StartsAt: now.Add(48 * time.Hour),
			Venue:    "MA Chidambaram Stadium",
			City:     "Chennai",
		},
		{
			ID:       2,
			Team1:    TeamBangalore,
			Team2:    TeamKolkata,
			StartsAt: now.Add(30 * time.Minute),
			Venue:    "M Chinnaswamy Stadium",
			City:     "Bengaluru",
		},
		{
			ID:        3,
			Team1:     TeamMumbai,
			Team2:     TeamKolkata,
			StartsAt:  now.Add(-72 * time.Hour),
			Venue:     "Wankhede Stadium",
			City:      "Mumbai",
			RawStatus: "Match Finished",
			Result:    "Mumbai Indians won by 5 wickets",
			Winner:    TeamMumbai,
		},
	}
}

func SeedPlayers() []player.Player {
	players := []player.Player{
		{ID: 101, Name: "Ruturaj Gaikwad", Age: 28, Nationality: "India", Speciality: "Batsman", Handedness: "Right", TeamName: TeamChennai, IsCapped: true, IsCaptain: true},
		{ID: 102, Name: "Devon Conway", Age: 34, Nationality: "New Zealand", Speciality: "Batsman", Handedness: "Left", TeamName: TeamChennai, IsCapped: true},
		{ID: 103, Name: "MS Dhoni", Age: 44, Nationality: "India", Speciality: "Wicket-Keeper", Handedness: "Right", TeamName: TeamChennai, IsCapped: true},
		{ID: 104, Name: "Ravindra Jadeja", Age: 36, Nationality: "India", Speciality: "All-Rounder", Handedness: "Left", TeamName: TeamChennai, IsCapped: true},
		{ID: 105, Name: "Shivam Dube", Age: 32, Nationality: "India", Speciality: "All-Rounder", Handedness: "Left", TeamName: TeamChennai, IsCapped: true},
		{ID: 106, Name: "Deepak Chahar", Age: 33, Nationality: "India", Speciality: "Bowler", Handedness: "Right", TeamName: TeamChennai, IsCapped: true},
		{ID: 107, Name: "Matheesha Pathirana", Age: 22, Nationality: "Sri Lanka", Speciality: "Bowler", Handedness: "Right", TeamName: TeamChennai, IsCapped: true},

		{ID: 201, Name: "Rohit Sharma", Age: 38, Nationality: "India", Speciality: "Batsman", Handedness: "Right", TeamName: TeamMumbai, IsCapped: true},
		{ID: 202, Name: "Suryakumar Yadav", Age: 35, Nationality: "India", Speciality: "Batsman", Handedness: "Right", TeamName: TeamMumbai, IsCapped: true},
		{ID: 203, Name: "Ishan Kishan", Age: 27, Nationality: "India", Speciality: "Wicket-Keeper", Handedness: "Left", TeamName: TeamMumbai, IsCapped: true},
		{ID: 204, Name: "Hardik Pandya", Age: 31, Nationality: "India", Speciality: "All-Rounder", Handedness: "Right", TeamName: TeamMumbai, IsCapped: true, IsCaptain: true},
		{ID: 205, Name: "Jasprit Bumrah", Age: 31, Nationality: "India", Speciality: "Bowler", Handedness: "Right", TeamName: TeamMumbai, IsCapped: true},
		{ID: 206, Name: "Trent Boult", Age: 36, Nationality: "New Zealand", Speciality: "Bowler", Handedness: "Left", TeamName: TeamMumbai, IsCapped: true},

		{ID: 301, Name: "Virat Kohli", Age: 36, Nationality: "India", Speciality: "Batsman", Handedness: "Right", TeamName: TeamBangalore, IsCapped: true},
		{ID: 302, Name: "Rajat Patidar", Age: 32, Nationality: "India", Speciality: "Batsman", Handedness: "Right", TeamName: TeamBangalore, IsCapped: true, IsCaptain: true},
		{ID: 303, Name: "Jitesh Sharma", Age: 31, Nationality: "India", Speciality: "Wicket-Keeper", Handedness: "Right", TeamName: TeamBangalore, IsCapped: true},
		{ID: 304, Name: "Krunal Pandya", Age: 34, Nationality: "India", Speciality: "All-Rounder", Handedness: "Left", TeamName: TeamBangalore, IsCapped: true},
		{ID: 305, Name: "Josh Hazlewood", Age: 34, Nationality: "Australia", Speciality: "Bowler", Handedness: "Right", TeamName: TeamBangalore, IsCapped: true},

		{ID: 401, Name: "Shreyas Iyer", Age: 30, Nationality: "India", Speciality: "Batsman", Handedness: "Right", TeamName: TeamKolkata, IsCapped: true, IsCaptain: true},
		{ID: 402, Name: "Rahmanullah Gurbaz", Age: 23, Nationality: "Afghanistan", Speciality: "Wicket-Keeper", Handedness: "Right", TeamName: TeamKolkata, IsCapped: true},
		{ID: 403, Name: "Andre Russell", Age: 37, Nationality: "West Indies", Speciality: "All-Rounder", Handedness: "Right", TeamName: TeamKolkata, IsCapped: true},
		{ID: 404, Name: "Sunil Narine", Age: 37, Nationality: "West Indies", Speciality: "All-Rounder", Handedness: "Left", TeamName: TeamKolkata, IsCapped: true},
		{ID: 405, Name: "Varun Chakravarthy", Age: 34, Nationality: "India", Speciality: "Bowler", Handedness: "Right", TeamName: TeamKolkata, IsCapped: true},
	}

	for i := range players {
		players[i] = players[i].Normalize()
	}

	return players
}
