package brackets

import (
	"errors"
	"fmt"

	"github.com/Dosada05/league-console/models"
)

// The phase editor is a set of pure reducers over a Championship value.
// Every function deep-copies its input and returns the edited copy, so the
// caller (usually the championship service, fetch-then-overwrite) never sees
// a half-applied edit and the UI can diff old vs new state freely.
//
// Shape rules follow the admin console's editing model:
//   - criteria are championship-scoped and fan out into every round-robin
//     and group table row on materialization;
//   - removing a criterion strips its key from round-robin tables only;
//     group rows keep stale keys, a long-standing asymmetry kept on
//     purpose;
//   - switching a phase's type never clears the other shapes' data, so an
//     admin who flips back finds their edits intact.

var (
	ErrPhaseIndex        = errors.New("phase index out of range")
	ErrRowIndex          = errors.New("row index out of range")
	ErrGroupIndex        = errors.New("group index out of range")
	ErrStageIndex        = errors.New("stage index out of range")
	ErrMatchupIndex      = errors.New("matchup index out of range")
	ErrCriterionExists   = errors.New("criterion key already declared")
	ErrCriterionKeyEmpty = errors.New("criterion key is required")
	ErrReservedKey       = errors.New("criterion key collides with a reserved row key")
	ErrPhaseTypeMismatch = errors.New("operation does not match phase type")
	ErrUnknownPhaseType  = errors.New("unknown phase type")
	ErrUnknownSide       = errors.New("matchup side must be home or away")
)

// Side selects one half of a knockout matchup.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

func validPhaseType(t models.PhaseType) bool {
	switch t {
	case models.PhaseRoundRobin, models.PhaseGrouped, models.PhaseKnockout:
		return true
	}
	return false
}

// AddPhase appends a new empty phase of the given type.
func AddPhase(c models.Championship, name string, t models.PhaseType) (models.Championship, error) {
	if !validPhaseType(t) {
		return c, fmt.Errorf("%w: %q", ErrUnknownPhaseType, t)
	}
	out := Clone(c)
	out.Phases = append(out.Phases, models.Phase{Name: name, Type: t})
	return out, nil
}

// SetPhaseType flips the phase's type tag. The other shapes' stored data is
// deliberately left in place (no migration, no clearing).
func SetPhaseType(c models.Championship, phase int, t models.PhaseType) (models.Championship, error) {
	if !validPhaseType(t) {
		return c, fmt.Errorf("%w: %q", ErrUnknownPhaseType, t)
	}
	out := Clone(c)
	if phase < 0 || phase >= len(out.Phases) {
		return c, fmt.Errorf("%w: %d", ErrPhaseIndex, phase)
	}
	out.Phases[phase].Type = t
	return out, nil
}

// AddCriterion declares a new scoring column. Existing rows are not
// retroactively populated; they read as empty until materialized or written.
func AddCriterion(c models.Championship, crit models.Criterion) (models.Championship, error) {
	if crit.Key == "" {
		return c, ErrCriterionKeyEmpty
	}
	switch crit.Key {
	case models.RowKeyPosition, models.RowKeyTeamName, models.RowKeyTeamLogo:
		return c, fmt.Errorf("%w: %q", ErrReservedKey, crit.Key)
	}
	for _, existing := range c.Criteria {
		if existing.Key == crit.Key {
			return c, fmt.Errorf("%w: %q", ErrCriterionExists, crit.Key)
		}
	}
	if crit.Type != models.CriterionNumber {
		crit.Type = models.CriterionText
	}
	out := Clone(c)
	out.Criteria = append(out.Criteria, crit)
	return out, nil
}

// RemoveCriterion drops the declaration and deletes the key from every row
// of every round-robin phase table. Group and knockout data is untouched.
func RemoveCriterion(c models.Championship, key string) models.Championship {
	out := Clone(c)
	kept := out.Criteria[:0]
	for _, crit := range out.Criteria {
		if crit.Key != key {
			kept = append(kept, crit)
		}
	}
	out.Criteria = kept
	for pi := range out.Phases {
		if out.Phases[pi].Type != models.PhaseRoundRobin {
			continue
		}
		for ri := range out.Phases[pi].Table {
			delete(out.Phases[pi].Table[ri], key)
		}
	}
	return out
}

// AddRow appends a materialized empty row to a round-robin phase table.
func AddRow(c models.Championship, phase int) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseRoundRobin)
	if err != nil {
		return c, err
	}
	p.Table = append(p.Table, newRow(out.Criteria))
	return out, nil
}

// RemoveRow deletes one row from a round-robin phase table.
func RemoveRow(c models.Championship, phase, row int) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseRoundRobin)
	if err != nil {
		return c, err
	}
	if row < 0 || row >= len(p.Table) {
		return c, fmt.Errorf("%w: %d", ErrRowIndex, row)
	}
	p.Table = append(p.Table[:row], p.Table[row+1:]...)
	return out, nil
}

// SetCell writes one value into a round-robin table row. A row that does not
// exist yet is materialized first, with default empty values for position,
// team name, team logo, and every declared criterion, so rows are never
// partially undefined once touched. Rows between the current end of the
// table and the target index are materialized the same way.
func SetCell(c models.Championship, phase, row int, key string, value any) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseRoundRobin)
	if err != nil {
		return c, err
	}
	if row < 0 {
		return c, fmt.Errorf("%w: %d", ErrRowIndex, row)
	}
	for len(p.Table) <= row {
		p.Table = append(p.Table, newRow(out.Criteria))
	}
	p.Table[row][key] = value
	return out, nil
}

// AddGroup appends a named empty group to a grouped phase.
func AddGroup(c models.Championship, phase int, name string) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseGrouped)
	if err != nil {
		return c, err
	}
	p.Groups = append(p.Groups, models.Group{Name: name, Table: []models.TableRow{}})
	return out, nil
}

// SetGroupCell is SetCell for one group's table; group rows share the
// round-robin row shape and materialization rules.
func SetGroupCell(c models.Championship, phase, group, row int, key string, value any) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseGrouped)
	if err != nil {
		return c, err
	}
	if group < 0 || group >= len(p.Groups) {
		return c, fmt.Errorf("%w: %d", ErrGroupIndex, group)
	}
	if row < 0 {
		return c, fmt.Errorf("%w: %d", ErrRowIndex, row)
	}
	g := &p.Groups[group]
	for len(g.Table) <= row {
		g.Table = append(g.Table, newRow(out.Criteria))
	}
	g.Table[row][key] = value
	return out, nil
}

// AddStage appends a named knockout stage. Append-only: stages are never
// reordered or removed once created.
func AddStage(c models.Championship, phase int, name string) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseKnockout)
	if err != nil {
		return c, err
	}
	p.Stages = append(p.Stages, models.Stage{Name: name, Matchups: []models.Matchup{}})
	return out, nil
}

// AddMatchup appends an empty matchup to a knockout stage. Append-only.
func AddMatchup(c models.Championship, phase, stage int) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseKnockout)
	if err != nil {
		return c, err
	}
	if stage < 0 || stage >= len(p.Stages) {
		return c, fmt.Errorf("%w: %d", ErrStageIndex, stage)
	}
	p.Stages[stage].Matchups = append(p.Stages[stage].Matchups, models.Matchup{})
	return out, nil
}

// SelectRowTeam snapshots a team's name and logo into a round-robin table
// row. Name and logo land together; there is no observable state with only
// one of them set.
func SelectRowTeam(c models.Championship, phase, row int, team models.TeamSlot) (models.Championship, error) {
	out, err := SetCell(c, phase, row, models.RowKeyTeamName, team.Name)
	if err != nil {
		return c, err
	}
	out.Phases[phase].Table[row][models.RowKeyTeamLogo] = team.Logo
	return out, nil
}

// SelectGroupRowTeam is SelectRowTeam for a group table row.
func SelectGroupRowTeam(c models.Championship, phase, group, row int, team models.TeamSlot) (models.Championship, error) {
	out, err := SetGroupCell(c, phase, group, row, models.RowKeyTeamName, team.Name)
	if err != nil {
		return c, err
	}
	out.Phases[phase].Groups[group].Table[row][models.RowKeyTeamLogo] = team.Logo
	return out, nil
}

// SelectMatchupTeam snapshots a team into one side of a knockout matchup.
func SelectMatchupTeam(c models.Championship, phase, stage, matchup int, side Side, team models.TeamSlot) (models.Championship, error) {
	out := Clone(c)
	p, err := phaseOfType(&out, phase, models.PhaseKnockout)
	if err != nil {
		return c, err
	}
	if stage < 0 || stage >= len(p.Stages) {
		return c, fmt.Errorf("%w: %d", ErrStageIndex, stage)
	}
	if matchup < 0 || matchup >= len(p.Stages[stage].Matchups) {
		return c, fmt.Errorf("%w: %d", ErrMatchupIndex, matchup)
	}
	m := &p.Stages[stage].Matchups[matchup]
	switch side {
	case SideHome:
		m.Home = team
	case SideAway:
		m.Away = team
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownSide, side)
	}
	return out, nil
}

func phaseOfType(c *models.Championship, phase int, want models.PhaseType) (*models.Phase, error) {
	if phase < 0 || phase >= len(c.Phases) {
		return nil, fmt.Errorf("%w: %d", ErrPhaseIndex, phase)
	}
	p := &c.Phases[phase]
	if p.Type != want {
		return nil, fmt.Errorf("%w: phase %d is %q, want %q", ErrPhaseTypeMismatch, phase, p.Type, want)
	}
	return p, nil
}

// newRow materializes a row with empty defaults for the reserved keys and
// every declared criterion.
func newRow(criteria []models.Criterion) models.TableRow {
	row := models.TableRow{
		models.RowKeyPosition: "",
		models.RowKeyTeamName: "",
		models.RowKeyTeamLogo: "",
	}
	for _, crit := range criteria {
		row[crit.Key] = ""
	}
	return row
}

// Clone deep-copies a championship's nested editing state.
func Clone(c models.Championship) models.Championship {
	out := c
	if c.Criteria != nil {
		out.Criteria = append([]models.Criterion(nil), c.Criteria...)
	}
	if c.Rankings != nil {
		out.Rankings = append([]models.RankingEntry(nil), c.Rankings...)
	}
	if c.Phases != nil {
		out.Phases = make([]models.Phase, len(c.Phases))
		for i, p := range c.Phases {
			out.Phases[i] = clonePhase(p)
		}
	}
	return out
}

func clonePhase(p models.Phase) models.Phase {
	out := p
	out.Table = cloneTable(p.Table)
	if p.Groups != nil {
		out.Groups = make([]models.Group, len(p.Groups))
		for i, g := range p.Groups {
			out.Groups[i] = models.Group{Name: g.Name, Table: cloneTable(g.Table)}
		}
	}
	if p.Stages != nil {
		out.Stages = make([]models.Stage, len(p.Stages))
		for i, s := range p.Stages {
			out.Stages[i] = models.Stage{
				Name:     s.Name,
				Matchups: append([]models.Matchup(nil), s.Matchups...),
			}
		}
	}
	return out
}

func cloneTable(table []models.TableRow) []models.TableRow {
	if table == nil {
		return nil
	}
	out := make([]models.TableRow, len(table))
	for i, row := range table {
		cp := make(models.TableRow, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
