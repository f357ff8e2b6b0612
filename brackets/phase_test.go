package brackets

import (
	"errors"
	"testing"

	"github.com/Dosada05/league-console/models"
)

func emptyChampionship() models.Championship {
	return models.Championship{
		ID:       1,
		Name:     "City Cup",
		Criteria: []models.Criterion{},
		Phases:   []models.Phase{},
	}
}

func mustAddPhase(t *testing.T, c models.Championship, name string, pt models.PhaseType) models.Championship {
	t.Helper()
	out, err := AddPhase(c, name, pt)
	if err != nil {
		t.Fatalf("AddPhase(%q, %q): %v", name, pt, err)
	}
	return out
}

func TestAddPhaseRejectsUnknownType(t *testing.T) {
	_, err := AddPhase(emptyChampionship(), "Phase 1", models.PhaseType("swiss"))
	if !errors.Is(err, ErrUnknownPhaseType) {
		t.Fatalf("expected ErrUnknownPhaseType, got %v", err)
	}
}

func TestAddCriterionValidation(t *testing.T) {
	c := emptyChampionship()

	if _, err := AddCriterion(c, models.Criterion{Key: ""}); !errors.Is(err, ErrCriterionKeyEmpty) {
		t.Fatalf("empty key: expected ErrCriterionKeyEmpty, got %v", err)
	}
	for _, reserved := range []string{models.RowKeyPosition, models.RowKeyTeamName, models.RowKeyTeamLogo} {
		if _, err := AddCriterion(c, models.Criterion{Key: reserved}); !errors.Is(err, ErrReservedKey) {
			t.Fatalf("reserved key %q: expected ErrReservedKey, got %v", reserved, err)
		}
	}

	c, err := AddCriterion(c, models.Criterion{Key: "wins", Label: "Wins", Type: models.CriterionNumber})
	if err != nil {
		t.Fatalf("AddCriterion(wins): %v", err)
	}
	if _, err := AddCriterion(c, models.Criterion{Key: "wins"}); !errors.Is(err, ErrCriterionExists) {
		t.Fatalf("duplicate key: expected ErrCriterionExists, got %v", err)
	}
}

func TestAddCriterionDefaultsToText(t *testing.T) {
	c, err := AddCriterion(emptyChampionship(), models.Criterion{Key: "notes", Label: "Notes", Type: "weird"})
	if err != nil {
		t.Fatalf("AddCriterion: %v", err)
	}
	if got := c.Criteria[0].Type; got != models.CriterionText {
		t.Fatalf("expected type %q, got %q", models.CriterionText, got)
	}
}

func TestSetCellMaterializesRowsWithDefaults(t *testing.T) {
	c := emptyChampionship()
	c, _ = AddCriterion(c, models.Criterion{Key: "wins", Type: models.CriterionNumber})
	c, _ = AddCriterion(c, models.Criterion{Key: "losses", Type: models.CriterionNumber})
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)

	// Writing row 2 on an empty table materializes rows 0..2.
	c, err := SetCell(c, 0, 2, "wins", "3")
	if err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	table := c.Phases[0].Table
	if len(table) != 3 {
		t.Fatalf("expected 3 materialized rows, got %d", len(table))
	}
	for i, row := range table {
		for _, key := range []string{models.RowKeyPosition, models.RowKeyTeamName, models.RowKeyTeamLogo, "wins", "losses"} {
			if _, ok := row[key]; !ok {
				t.Fatalf("row %d missing key %q after materialization", i, key)
			}
		}
	}
	if table[2]["wins"] != "3" {
		t.Fatalf("expected wins=3 in row 2, got %v", table[2]["wins"])
	}
	if table[0]["wins"] != "" {
		t.Fatalf("expected empty default in row 0, got %v", table[0]["wins"])
	}
}

func TestCriterionAddedLaterDefaultsOnlyIntoNewRows(t *testing.T) {
	c := emptyChampionship()
	c, _ = AddCriterion(c, models.Criterion{Key: "wins", Type: models.CriterionNumber})
	c, _ = AddCriterion(c, models.Criterion{Key: "losses", Type: models.CriterionNumber})
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)
	c, _ = AddRow(c, 0)

	// Declared after the first row exists: no retroactive fill.
	c, err := AddCriterion(c, models.Criterion{Key: "draws", Type: models.CriterionNumber})
	if err != nil {
		t.Fatalf("AddCriterion(draws): %v", err)
	}
	c, _ = AddRow(c, 0)

	first := c.Phases[0].Table[0]
	second := c.Phases[0].Table[1]
	if _, ok := first["draws"]; ok {
		t.Fatal("row created before criterion should not carry its key")
	}
	if _, ok := second["draws"]; !ok {
		t.Fatal("row created after criterion should carry its key")
	}
	for _, key := range []string{"wins", "losses"} {
		if _, ok := second[key]; !ok {
			t.Fatalf("new row missing earlier criterion %q", key)
		}
	}
}

func TestRemoveCriterionStripsRoundRobinTablesOnly(t *testing.T) {
	c := emptyChampionship()
	c, _ = AddCriterion(c, models.Criterion{Key: "points", Type: models.CriterionNumber})
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)
	c = mustAddPhase(t, c, "Groups", models.PhaseGrouped)
	c, _ = SetCell(c, 0, 0, "points", "9")
	c, _ = AddGroup(c, 1, "Group A")
	c, _ = SetGroupCell(c, 1, 0, 0, "points", "6")

	c = RemoveCriterion(c, "points")

	if len(c.Criteria) != 0 {
		t.Fatalf("expected criterion declaration removed, got %v", c.Criteria)
	}
	if _, ok := c.Phases[0].Table[0]["points"]; ok {
		t.Fatal("round-robin row should have the key stripped")
	}
	// Group rows keep the stale key.
	if got, ok := c.Phases[1].Groups[0].Table[0]["points"]; !ok || got != "6" {
		t.Fatalf("group row should keep stale value, got %v (present=%v)", got, ok)
	}
}

func TestRemoveCriterionDoesNotTouchOtherChampionships(t *testing.T) {
	a := emptyChampionship()
	a, _ = AddCriterion(a, models.Criterion{Key: "points"})
	a = mustAddPhase(t, a, "League", models.PhaseRoundRobin)
	a, _ = SetCell(a, 0, 0, "points", "9")

	b := Clone(a)
	b.ID = 2

	a = RemoveCriterion(a, "points")

	if _, ok := a.Phases[0].Table[0]["points"]; ok {
		t.Fatal("key should be stripped from the edited championship")
	}
	if got, ok := b.Phases[0].Table[0]["points"]; !ok || got != "9" {
		t.Fatalf("other championship should be unaffected, got %v (present=%v)", got, ok)
	}
	if len(b.Criteria) != 1 {
		t.Fatalf("other championship should keep its declaration, got %v", b.Criteria)
	}
}

func TestSetPhaseTypePreservesOtherShapes(t *testing.T) {
	c := emptyChampionship()
	c = mustAddPhase(t, c, "Main", models.PhaseRoundRobin)
	c, _ = SetCell(c, 0, 0, models.RowKeyTeamName, "Lions")

	c, err := SetPhaseType(c, 0, models.PhaseKnockout)
	if err != nil {
		t.Fatalf("SetPhaseType: %v", err)
	}
	c, _ = AddStage(c, 0, "Final")
	c, _ = AddMatchup(c, 0, 0)

	// Flip back: the table edits are still there.
	c, err = SetPhaseType(c, 0, models.PhaseRoundRobin)
	if err != nil {
		t.Fatalf("SetPhaseType back: %v", err)
	}
	if got := c.Phases[0].Table[0][models.RowKeyTeamName]; got != "Lions" {
		t.Fatalf("table data lost on type switch, got %v", got)
	}
	if len(c.Phases[0].Stages) != 1 || len(c.Phases[0].Stages[0].Matchups) != 1 {
		t.Fatal("knockout data lost on type switch")
	}
}

func TestPhaseTypeMismatch(t *testing.T) {
	c := emptyChampionship()
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)

	if _, err := AddGroup(c, 0, "Group A"); !errors.Is(err, ErrPhaseTypeMismatch) {
		t.Fatalf("AddGroup on round-robin: expected ErrPhaseTypeMismatch, got %v", err)
	}
	if _, err := AddStage(c, 0, "Final"); !errors.Is(err, ErrPhaseTypeMismatch) {
		t.Fatalf("AddStage on round-robin: expected ErrPhaseTypeMismatch, got %v", err)
	}
	if _, err := AddRow(c, 5); !errors.Is(err, ErrPhaseIndex) {
		t.Fatalf("AddRow out of range: expected ErrPhaseIndex, got %v", err)
	}
}

func TestSelectRowTeamWritesNameAndLogoTogether(t *testing.T) {
	c := emptyChampionship()
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)

	slot := models.TeamSlot{TeamID: 7, Name: "Lions", Logo: "https://cdn.example/teams/7/logo.png"}
	c, err := SelectRowTeam(c, 0, 0, slot)
	if err != nil {
		t.Fatalf("SelectRowTeam: %v", err)
	}
	row := c.Phases[0].Table[0]
	if row[models.RowKeyTeamName] != "Lions" {
		t.Fatalf("team name not written, got %v", row[models.RowKeyTeamName])
	}
	if row[models.RowKeyTeamLogo] != slot.Logo {
		t.Fatalf("team logo not written, got %v", row[models.RowKeyTeamLogo])
	}
}

func TestSelectMatchupTeam(t *testing.T) {
	c := emptyChampionship()
	c = mustAddPhase(t, c, "Playoffs", models.PhaseKnockout)
	c, _ = AddStage(c, 0, "Semifinals")
	c, _ = AddMatchup(c, 0, 0)

	home := models.TeamSlot{TeamID: 1, Name: "Lions"}
	away := models.TeamSlot{TeamID: 2, Name: "Tigers"}

	c, err := SelectMatchupTeam(c, 0, 0, 0, SideHome, home)
	if err != nil {
		t.Fatalf("SelectMatchupTeam(home): %v", err)
	}
	c, err = SelectMatchupTeam(c, 0, 0, 0, SideAway, away)
	if err != nil {
		t.Fatalf("SelectMatchupTeam(away): %v", err)
	}

	m := c.Phases[0].Stages[0].Matchups[0]
	if m.Home.Name != "Lions" || m.Away.Name != "Tigers" {
		t.Fatalf("unexpected matchup %+v", m)
	}

	if _, err := SelectMatchupTeam(c, 0, 0, 0, Side("middle"), home); !errors.Is(err, ErrUnknownSide) {
		t.Fatalf("expected ErrUnknownSide, got %v", err)
	}
	if _, err := SelectMatchupTeam(c, 0, 0, 3, SideHome, home); !errors.Is(err, ErrMatchupIndex) {
		t.Fatalf("expected ErrMatchupIndex, got %v", err)
	}
}

func TestReducersDoNotMutateInput(t *testing.T) {
	c := emptyChampionship()
	c, _ = AddCriterion(c, models.Criterion{Key: "wins"})
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)
	c, _ = SetCell(c, 0, 0, "wins", "1")

	if _, err := SetCell(c, 0, 0, "wins", "99"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	if got := c.Phases[0].Table[0]["wins"]; got != "1" {
		t.Fatalf("input championship mutated, got %v", got)
	}

	RemoveCriterion(c, "wins")
	if len(c.Criteria) != 1 {
		t.Fatal("RemoveCriterion mutated its input")
	}
}

func TestRemoveRow(t *testing.T) {
	c := emptyChampionship()
	c = mustAddPhase(t, c, "League", models.PhaseRoundRobin)
	c, _ = SetCell(c, 0, 0, models.RowKeyTeamName, "Lions")
	c, _ = SetCell(c, 0, 1, models.RowKeyTeamName, "Tigers")

	c, err := RemoveRow(c, 0, 0)
	if err != nil {
		t.Fatalf("RemoveRow: %v", err)
	}
	if len(c.Phases[0].Table) != 1 {
		t.Fatalf("expected 1 row after removal, got %d", len(c.Phases[0].Table))
	}
	if got := c.Phases[0].Table[0][models.RowKeyTeamName]; got != "Tigers" {
		t.Fatalf("wrong row removed, remaining %v", got)
	}

	if _, err := RemoveRow(c, 0, 5); !errors.Is(err, ErrRowIndex) {
		t.Fatalf("expected ErrRowIndex, got %v", err)
	}
}

// Full editing walkthrough: a grouped phase plus a knockout phase built the
// way an admin would, step by step.
func TestGroupedAndKnockoutEditingScenario(t *testing.T) {
	c := emptyChampionship()
	c, _ = AddCriterion(c, models.Criterion{Key: "points", Type: models.CriterionNumber})
	c = mustAddPhase(t, c, "Group Stage", models.PhaseGrouped)
	c = mustAddPhase(t, c, "Playoffs", models.PhaseKnockout)

	var err error
	c, err = AddGroup(c, 0, "Group A")
	if err != nil {
		t.Fatalf("AddGroup: %v", err)
	}
	c, _ = AddGroup(c, 0, "Group B")

	c, err = SelectGroupRowTeam(c, 0, 0, 0, models.TeamSlot{TeamID: 1, Name: "Lions"})
	if err != nil {
		t.Fatalf("SelectGroupRowTeam: %v", err)
	}
	c, _ = SetGroupCell(c, 0, 0, 0, "points", "9")
	c, _ = SetGroupCell(c, 0, 1, 0, "points", "7")

	c, _ = AddStage(c, 1, "Final")
	c, _ = AddMatchup(c, 1, 0)
	c, err = SelectMatchupTeam(c, 1, 0, 0, SideHome, models.TeamSlot{TeamID: 1, Name: "Lions"})
	if err != nil {
		t.Fatalf("SelectMatchupTeam: %v", err)
	}

	groupA := c.Phases[0].Groups[0]
	if groupA.Table[0][models.RowKeyTeamName] != "Lions" || groupA.Table[0]["points"] != "9" {
		t.Fatalf("unexpected group A row %v", groupA.Table[0])
	}
	if c.Phases[0].Groups[1].Table[0]["points"] != "7" {
		t.Fatalf("unexpected group B row %v", c.Phases[0].Groups[1].Table[0])
	}
	if c.Phases[1].Stages[0].Matchups[0].Home.Name != "Lions" {
		t.Fatal("final matchup home side not set")
	}
}
