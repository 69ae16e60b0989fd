package team

import "strings"

// Team is a real cricket franchise a player belongs to, distinct from the
// user's fantasy selection.
type Team struct {
	Name           string
	Short          string
	PrimaryColor   string
	SecondaryColor string
}

var teams = []Team{
	{Name: "Chennai Super Kings", Short: "CSK", PrimaryColor: "#FFFF3C", SecondaryColor: "#0081E9"},
	{Name: "Delhi Capitals", Short: "DC", PrimaryColor: "#0078BC", SecondaryColor: "#EF1B23"},
	{Name: "Gujarat Titans", Short: "GT", PrimaryColor: "#1B2133", SecondaryColor: "#B6862C"},
	{Name: "Kolkata Knight Riders", Short: "KKR", PrimaryColor: "#3A225D", SecondaryColor: "#B3A123"},
	{Name: "Lucknow Super Giants", Short: "LSG", PrimaryColor: "#A72056", SecondaryColor: "#FFCC00"},
	{Name: "Mumbai Indians", Short: "MI", PrimaryColor: "#004BA0", SecondaryColor: "#D1AB3E"},
	{Name: "Punjab Kings", Short: "PBKS", PrimaryColor: "#D11D1B", SecondaryColor: "#FDB913"},
	{Name: "Rajasthan Royals", Short: "RR", PrimaryColor: "#EA1A85", SecondaryColor: "#254AA5"},
	{Name: "Royal Challengers Bengaluru", Short: "RCB", PrimaryColor: "#EC1C24", SecondaryColor: "#000000"},
	{Name: "Sunrisers Hyderabad", Short: "SRH", PrimaryColor: "#F7A721", SecondaryColor: "#E91C23"},
}

var byNormalizedName = func() map[string]Team {
	out := make(map[string]Team, len(teams))
	for _, t := range teams {
		out[NormalizeName(t.Name)] = t
	}
	return out
}()

// NormalizeName collapses whitespace and case so roster team names from
// different upstream sources compare equal.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Lookup resolves a team by name, tolerating case and spacing differences.
func Lookup(name string) (Team, bool) {
	t, ok := byNormalizedName[NormalizeName(name)]
	return t, ok
}

// All returns the known franchise list in display order.
func All() []Team {
	return append([]Team(nil), teams...)
}
