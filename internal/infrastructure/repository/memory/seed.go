package memory

import (
	"time"

	"github.com/riskibarqy/league-dashboard/internal/domain/division"
	"github.com/riskibarqy/league-dashboard/internal/domain/headline"
	"github.com/riskibarqy/league-dashboard/internal/domain/match"
	"github.com/riskibarqy/league-dashboard/internal/domain/player"
	"github.com/riskibarqy/league-dashboard/internal/domain/team"
)

const (
	LeagueIDMetroYouth = "metro-youth-2025"

	DivisionIDUnder10 = "u10"
	DivisionIDUnder12 = "u12"
)

func SeedDivisions() []division.Division {
	return []division.Division{
		{ID: DivisionIDUnder10, LeagueID: LeagueIDMetroYouth, Name: "Under 10", ShortName: "U10", AgeGroup: "U10"},
		{ID: DivisionIDUnder12, LeagueID: LeagueIDMetroYouth, Name: "Under 12", ShortName: "U12", AgeGroup: "U12"},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "u10-comets", DivisionID: DivisionIDUnder10, Name: "Comets", ShortName: "COM"},
		{ID: "u10-rockets", DivisionID: DivisionIDUnder10, Name: "Rockets", ShortName: "ROC"},
		{ID: "u10-meteors", DivisionID: DivisionIDUnder10, Name: "Meteors"},
		{ID: "u12-lions", DivisionID: DivisionIDUnder12, Name: "Riverside Lions", ShortName: "LIO"},
		{ID: "u12-tigers", DivisionID: DivisionIDUnder12, Name: "Northgate Tigers", ShortName: "TIG"},
		{ID: "u12-bears", DivisionID: DivisionIDUnder12, Name: "Hillcrest Bears", ShortName: "BEA"},
		{ID: "u12-wolves", DivisionID: DivisionIDUnder12, Name: "Eastwood Wolves", ShortName: "WOL"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "p-u10-01", TeamID: "u10-comets", Name: "Leo Park", Number: seedInt(9), Position: "FW"},
		{ID: "p-u10-02", TeamID: "u10-rockets", Name: "Ivy Chen", Number: seedInt(10), Position: "MF"},
		{ID: "p-u10-03", TeamID: "u10-meteors", Name: "Sam Ortiz", Position: "DF"},
		{ID: "p-u12-01", TeamID: "u12-lions", Name: "Maria Gonzalez", Number: seedInt(9), Position: "FW"},
		{ID: "p-u12-02", TeamID: "u12-lions", Name: "Tom Reed", Number: seedInt(4), Position: "DF"},
		{ID: "p-u12-03", TeamID: "u12-tigers", Name: "Ana", Number: seedInt(11), Position: "FW"},
		{ID: "p-u12-04", TeamID: "u12-bears", Name: "Ben Carter Smith", Number: seedInt(7), Position: "MF"},
		{ID: "p-u12-05", TeamID: "u12-wolves", Name: "Noor Haddad", Number: seedInt(1), Position: "GK"},
	}
}

func SeedMatches() []match.Match {
	return []match.Match{
		{ID: "m-u10-001", DivisionID: DivisionIDUnder10, MatchDate: seedDay(1), HomeTeamID: "u10-comets", AwayTeamID: "u10-rockets", HomeScore: 2, AwayScore: 2},
		{ID: "m-u10-002", DivisionID: DivisionIDUnder10, MatchDate: seedDay(8), HomeTeamID: "u10-meteors", AwayTeamID: "u10-comets", HomeScore: 0, AwayScore: 1},
		{ID: "m-u12-001", DivisionID: DivisionIDUnder12, MatchDate: seedDay(1), HomeTeamID: "u12-lions", AwayTeamID: "u12-tigers", HomeScore: 3, AwayScore: 1, Notes: "Played through a rain delay."},
		{ID: "m-u12-002", DivisionID: DivisionIDUnder12, MatchDate: seedDay(8), HomeTeamID: "u12-bears", AwayTeamID: "u12-wolves", HomeScore: 1, AwayScore: 0},
		{ID: "m-u12-003", DivisionID: DivisionIDUnder12, MatchDate: seedDay(15), HomeTeamID: "u12-tigers", AwayTeamID: "u12-bears", HomeScore: 2, AwayScore: 2},
		{ID: "m-u12-004", DivisionID: DivisionIDUnder12, MatchDate: seedDay(22), HomeTeamID: "u12-wolves", AwayTeamID: "u12-lions", HomeScore: 0, AwayScore: 2},
	}
}

func SeedGoals() []match.Goal {
	return []match.Goal{
		{ID: "g-001", MatchID: "m-u10-001", TeamID: "u10-comets", PlayerID: "p-u10-01", Minute: seedInt(5)},
		{ID: "g-002", MatchID: "m-u10-001", TeamID: "u10-comets", PlayerID: "p-u10-01", Minute: seedInt(31)},
		{ID: "g-003", MatchID: "m-u10-001", TeamID: "u10-rockets", PlayerID: "p-u10-02", Minute: seedInt(12)},
		{ID: "g-004", MatchID: "m-u10-001", TeamID: "u10-rockets"},
		{ID: "g-005", MatchID: "m-u10-002", TeamID: "u10-comets", PlayerID: "p-u10-01", Minute: seedInt(40)},
		{ID: "g-006", MatchID: "m-u12-001", TeamID: "u12-lions", PlayerID: "p-u12-01", Minute: seedInt(3)},
		{ID: "g-007", MatchID: "m-u12-001", TeamID: "u12-lions", PlayerID: "p-u12-01", Minute: seedInt(27)},
		{ID: "g-008", MatchID: "m-u12-001", TeamID: "u12-lions", PlayerID: "p-u12-02", Minute: seedInt(50), IsOwnGoal: true},
		{ID: "g-009", MatchID: "m-u12-001", TeamID: "u12-tigers", PlayerID: "p-u12-03", Minute: seedInt(44)},
		{ID: "g-010", MatchID: "m-u12-002", TeamID: "u12-bears", PlayerID: "p-u12-04", Minute: seedInt(18)},
		{ID: "g-011", MatchID: "m-u12-003", TeamID: "u12-tigers", PlayerID: "p-u12-03", Minute: seedInt(9)},
		{ID: "g-012", MatchID: "m-u12-003", TeamID: "u12-tigers", PlayerID: "p-u12-03", Minute: seedInt(21)},
		{ID: "g-013", MatchID: "m-u12-003", TeamID: "u12-bears", PlayerID: "p-u12-04", Minute: seedInt(33)},
		{ID: "g-014", MatchID: "m-u12-003", TeamID: "u12-bears"},
		{ID: "g-015", MatchID: "m-u12-004", TeamID: "u12-lions", PlayerID: "p-u12-01", Minute: seedInt(14)},
		{ID: "g-016", MatchID: "m-u12-004", TeamID: "u12-lions", PlayerID: "p-u12-01", Minute: seedInt(48)},
	}
}

func SeedHeadlines() []headline.Headline {
	return []headline.Headline{
		{ID: "h-001", DivisionID: DivisionIDUnder12, MatchID: "m-u12-004", Title: "Lions stay perfect", Body: "Maria Gonzalez scored twice in the win at Eastwood.", CreatedAt: seedDay(22).Add(3 * time.Hour)},
		{ID: "h-002", DivisionID: DivisionIDUnder12, Title: "Spring registration is open", CreatedAt: seedDay(2)},
		{ID: "h-003", DivisionID: DivisionIDUnder10, MatchID: "m-u10-002", Title: "Comets edge Meteors", CreatedAt: seedDay(8).Add(2 * time.Hour)},
	}
}

func seedDay(day int) time.Time {
	return time.Date(2025, time.March, day, 9, 0, 0, 0, time.UTC)
}

func seedInt(v int) *int {
	return &v
}
