package dto

import "github.com/ShiftWise/shiftwise_app/internal/core/domain"

// PositionSeedPayload is one catalog entry on the wire.
type PositionSeedPayload struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// UpsertDefaultPositionsRequest creates or replaces the canonical position list
// for one store/weekday/period key.
type UpsertDefaultPositionsRequest struct {
	Weekday   int                   `json:"weekday" binding:"min=0,max=6"`
	Period    string                `json:"period" binding:"required"`
	Positions []PositionSeedPayload `json:"positions" binding:"required,dive"`
}

// DefaultPositionsResponse is a catalog entry on the wire.
type DefaultPositionsResponse struct {
	ID        string                `json:"id"`
	StoreID   string                `json:"store"`
	Weekday   int                   `json:"weekday"`
	Period    domain.LaborPeriod    `json:"period"`
	Positions []domain.PositionSeed `json:"positions"`
}

// ToDefaultPositionsResponse converts a catalog entry to wire form.
func ToDefaultPositionsResponse(s *domain.DefaultPositionSet) DefaultPositionsResponse {
	return DefaultPositionsResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		Weekday:   s.Weekday,
		Period:    s.Period,
		Positions: s.Positions,
	}
}

// ListDefaultPositionsResponse wraps a store's catalog.
type ListDefaultPositionsResponse struct {
	DefaultPositions []DefaultPositionsResponse `json:"defaultPositions"`
}

// ToListDefaultPositionsResponse converts catalog entries to wire form.
func ToListDefaultPositionsResponse(sets []domain.DefaultPositionSet) ListDefaultPositionsResponse {
	list := make([]DefaultPositionsResponse, len(sets))
	for i := range sets {
		list[i] = ToDefaultPositionsResponse(&sets[i])
	}
	return ListDefaultPositionsResponse{DefaultPositions: list}
}
