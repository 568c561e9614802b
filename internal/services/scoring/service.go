package scoring

import (
	"github.com/hexforge/catan-go/internal/model"
)

// Service computes victory points and holds the rules for the longest road
// and largest army awards
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// VictoryPoints computes a seat's current score: one point per settlement,
// two per city, one per victory point card, two for each held award.
func (s *Service) VictoryPoints(gs *model.GameState, seat model.SeatID) int {
	points := 0

	for i := range gs.Vertices {
		v := &gs.Vertices[i]
		if !v.OwnedBy(seat) {
			continue
		}
		switch v.Building {
		case model.BuildingSettlement:
			points++
		case model.BuildingCity:
			points += 2
		}
	}

	if gs.LongestRoadOwner != nil && *gs.LongestRoadOwner == seat {
		points += 2
	}
	if gs.LargestArmyOwner != nil && *gs.LargestArmyOwner == seat {
		points += 2
	}

	for _, card := range gs.DevCards[seat] {
		if card == model.DevCardVictoryPoint {
			points++
		}
	}

	return points
}

// Recalculate refreshes the stored score of every seat
func (s *Service) Recalculate(gs *model.GameState) {
	for i := range gs.Seats {
		gs.Seats[i].VictoryPoints = s.VictoryPoints(gs, gs.Seats[i].PlayerID)
	}
}

// LongestRoadLength returns the longest trail through the seat's road
// network. A trail may revisit vertices but never reuses an edge.
func (s *Service) LongestRoadLength(gs *model.GameState, seat model.SeatID) int {
	adj := make(map[model.VertexID][]*model.Edge)
	for i := range gs.Edges {
		e := &gs.Edges[i]
		if e.OwnedBy(seat) {
			adj[e.V1] = append(adj[e.V1], e)
			adj[e.V2] = append(adj[e.V2], e)
		}
	}
	if len(adj) == 0 {
		return 0
	}

	onTrail := make(map[int]bool)
	var walk func(v model.VertexID, length int) int
	walk = func(v model.VertexID, length int) int {
		best := length
		for _, e := range adj[v] {
			if onTrail[e.ID] {
				continue
			}
			onTrail[e.ID] = true
			if l := walk(e.Other(v), length+1); l > best {
				best = l
			}
			onTrail[e.ID] = false
		}
		return best
	}

	best := 0
	for v := range adj {
		if l := walk(v, 0); l > best {
			best = l
		}
	}
	return best
}

// UpdateLongestRoad reassigns the longest road award after a road is built.
// The award needs a road of at least five segments; the current holder keeps
// it on ties.
func (s *Service) UpdateLongestRoad(gs *model.GameState) {
	bestLen := 0
	var candidates []model.SeatID
	for i := range gs.Seats {
		seat := gs.Seats[i].PlayerID
		l := s.LongestRoadLength(gs, seat)
		if l > bestLen {
			bestLen = l
			candidates = candidates[:0]
		}
		if l == bestLen && l > 0 {
			candidates = append(candidates, seat)
		}
	}

	if bestLen < model.LongestRoadMinimum {
		return
	}

	if gs.LongestRoadOwner != nil {
		for _, c := range candidates {
			if c == *gs.LongestRoadOwner {
				gs.LongestRoadLength = bestLen
				return
			}
		}
	}

	owner := candidates[0]
	gs.LongestRoadOwner = &owner
	gs.LongestRoadLength = bestLen
}

// UpdateLargestArmy reassigns the largest army award after a knight is
// played. Three knights claim it; the holder keeps it until someone plays
// strictly more. Reports whether the award moved.
func (s *Service) UpdateLargestArmy(gs *model.GameState, seat model.SeatID) bool {
	knights := gs.PlayedKnights[seat]
	if knights < model.LargestArmyMinimum {
		return false
	}
	if gs.LargestArmyOwner != nil {
		if *gs.LargestArmyOwner == seat {
			return false
		}
		if gs.PlayedKnights[*gs.LargestArmyOwner] >= knights {
			return false
		}
	}

	owner := seat
	gs.LargestArmyOwner = &owner
	return true
}
