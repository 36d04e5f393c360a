package transform

import "strings"

// VariableMarker in a fusion result means the result is not a fixed race.
const VariableMarker = "*"

// Demon is one row of the demon table.
type Demon struct {
	Name  string
	Race  string
	Level string
}

// FusionRule is one row of the basic fusion table: fusing a Demon1-race demon
// with a Demon2-race demon yields a Result-race demon.
type FusionRule struct {
	Result string
	Demon1 string
	Demon2 string
}

// IsVariable reports whether the result contains VariableMarker. Such rules
// produce no statements.
func (r FusionRule) IsVariable() bool {
	return strings.Contains(r.Result, VariableMarker)
}
