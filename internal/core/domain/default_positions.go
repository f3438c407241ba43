package domain

// PositionSeed is a catalog entry used to stamp out real positions when a new
// schedule is created or an import needs to know what open positions look like.
type PositionSeed struct {
	Name       string     `json:"name"`
	Department Department `json:"department"`
}

// DefaultPositionSet is the canonical list of positions for one store, one
// weekday, and one labor period.
type DefaultPositionSet struct {
	ID        string         `json:"id"`
	StoreID   string         `json:"store"`
	Weekday   int            `json:"weekday"` // 0 = week start day .. 6
	Period    LaborPeriod    `json:"period"`
	Positions []PositionSeed `json:"positions"`
	AuditFields
}

// Materialize stamps the seed list into fresh unassigned positions.
func (s *DefaultPositionSet) Materialize() []Position {
	out := make([]Position, 0, len(s.Positions))
	for _, seed := range s.Positions {
		out = append(out, NewPosition(seed.Name, seed.Department))
	}
	return out
}
