package bot

import (
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/catan"
)

// Strategy picks moves for a bot seat. Implementations act through the
// engine so bots obey exactly the rules humans do; ending the turn is the
// service's job.
type Strategy interface {
	// PlaceSetup makes the seat's settlement and road placement for the
	// current setup round
	PlaceSetup(eng *catan.Engine, seat model.SeatID) error

	// PlayTurn spends the seat's resources after the dice have been handled
	PlayTurn(eng *catan.Engine, seat model.SeatID)

	// ChooseRobberTarget picks the hex and victim after a seven
	ChooseRobberTarget(gs *model.GameState, seat model.SeatID) (int, *model.SeatID)
}

// maxActionsPerTurn bounds the greedy build loop. Every action shrinks the
// hand, so the bound only matters against bugs.
const maxActionsPerTurn = 24

// GreedyStrategy builds whatever scores soonest: city, then settlement,
// then road, then a development card, trading surplus into gaps when
// nothing is affordable.
type GreedyStrategy struct{}

// NewGreedyStrategy creates the default bot strategy.
func NewGreedyStrategy() *GreedyStrategy {
	return &GreedyStrategy{}
}

var _ Strategy = (*GreedyStrategy)(nil)

// PlaceSetup settles the highest-yield legal vertex and roads off it.
func (g *GreedyStrategy) PlaceSetup(eng *catan.Engine, seat model.SeatID) error {
	gs := eng.State()

	best := model.VertexID(-1)
	bestScore := -1
	for i := range gs.Vertices {
		v := &gs.Vertices[i]
		if v.Owner != nil || !settlementSpotFree(gs, v.ID) {
			continue
		}
		if score := vertexYield(gs, v.ID); score > bestScore {
			best, bestScore = v.ID, score
		}
	}
	if best < 0 {
		return model.NewRuleError("no free settlement spot for seat %d", seat)
	}
	if err := eng.BuildSettlement(seat, best); err != nil {
		return err
	}

	for i := range gs.Edges {
		e := &gs.Edges[i]
		if e.Owner == nil && e.Connects(best) {
			if err := eng.BuildRoad(seat, e.V1, e.V2); err == nil {
				return nil
			}
		}
	}
	for i := range gs.Edges {
		e := &gs.Edges[i]
		if e.Owner == nil {
			if err := eng.BuildRoad(seat, e.V1, e.V2); err == nil {
				return nil
			}
		}
	}
	return model.NewRuleError("no free road spot for seat %d", seat)
}

// PlayTurn greedily converts the hand into points until nothing is
// affordable.
func (g *GreedyStrategy) PlayTurn(eng *catan.Engine, seat model.SeatID) {
	gs := eng.State()
	for i := 0; i < maxActionsPerTurn; i++ {
		if gs.Winner() != nil {
			return
		}
		if g.tryCity(eng, seat) {
			continue
		}
		if g.trySettlement(eng, seat) {
			continue
		}
		if g.tryRoad(eng, seat) {
			continue
		}
		if g.tryDevCard(eng, seat) {
			continue
		}
		if g.tryBankTrade(eng, seat) {
			continue
		}
		return
	}
}

func (g *GreedyStrategy) tryCity(eng *catan.Engine, seat model.SeatID) bool {
	gs := eng.State()
	if !gs.ResourcesFor(seat).Covers(model.CityCost) {
		return false
	}
	for i := range gs.Vertices {
		v := &gs.Vertices[i]
		if v.OwnedBy(seat) && v.Building == model.BuildingSettlement {
			return eng.BuildCity(seat, v.ID) == nil
		}
	}
	return false
}

func (g *GreedyStrategy) trySettlement(eng *catan.Engine, seat model.SeatID) bool {
	gs := eng.State()
	if !gs.ResourcesFor(seat).Covers(model.SettlementCost) {
		return false
	}

	best := model.VertexID(-1)
	bestScore := -1
	for i := range gs.Vertices {
		v := &gs.Vertices[i]
		if v.Owner != nil || !settlementSpotFree(gs, v.ID) || !roadReaches(gs, seat, v.ID) {
			continue
		}
		if score := vertexYield(gs, v.ID); score > bestScore {
			best, bestScore = v.ID, score
		}
	}
	if best < 0 {
		return false
	}
	return eng.BuildSettlement(seat, best) == nil
}

// tryRoad extends the network one edge to open new settlement spots.
func (g *GreedyStrategy) tryRoad(eng *catan.Engine, seat model.SeatID) bool {
	gs := eng.State()
	if gs.FreeRoads[seat] == 0 && !gs.ResourcesFor(seat).Covers(model.RoadCost) {
		return false
	}
	for i := range gs.Edges {
		e := &gs.Edges[i]
		if e.Owner != nil {
			continue
		}
		if !touchesNetwork(gs, seat, e) {
			continue
		}
		if eng.BuildRoad(seat, e.V1, e.V2) == nil {
			return true
		}
	}
	return false
}

func (g *GreedyStrategy) tryDevCard(eng *catan.Engine, seat model.SeatID) bool {
	_, _, err := eng.BuyDevCard(seat)
	return err == nil
}

// tryBankTrade turns the deepest surplus into the scarcest resource still
// needed for a settlement or city.
func (g *GreedyStrategy) tryBankTrade(eng *catan.Engine, seat model.SeatID) bool {
	hand := eng.State().ResourcesFor(seat)

	var surplus model.Resource
	for _, r := range model.Resources {
		if hand[r] >= 4 && (surplus == "" || hand[r] > hand[surplus]) {
			surplus = r
		}
	}
	if surplus == "" {
		return false
	}

	var want model.Resource
	for _, r := range model.Resources {
		if r == surplus || hand[r] > 0 {
			continue
		}
		if model.SettlementCost[r] > 0 || model.CityCost[r] > 0 {
			want = r
			break
		}
	}
	if want == "" {
		return false
	}
	return eng.TradeBank(seat, surplus, 4, want, 1) == nil
}

// ChooseRobberTarget blocks the opponent hex with the most buildings,
// never one of the seat's own, and robs the fattest hand on it.
func (g *GreedyStrategy) ChooseRobberTarget(gs *model.GameState, seat model.SeatID) (int, *model.SeatID) {
	bestHex := -1
	bestScore := 0
	for i := range gs.Hexes {
		hex := &gs.Hexes[i]
		if hex.Index == gs.RobberHex {
			continue
		}
		score := 0
		own := false
		for _, vid := range hex.VertexIDs {
			v := gs.VertexByID(vid)
			if v == nil || v.Owner == nil {
				continue
			}
			if *v.Owner == seat {
				own = true
				break
			}
			score++
		}
		if own || score == 0 {
			continue
		}
		if score > bestScore {
			bestHex, bestScore = hex.Index, score
		}
	}
	if bestHex < 0 {
		// Nowhere worth blocking; park the robber where it stands
		return gs.RobberHex, nil
	}

	var victim *model.SeatID
	most := 0
	for _, vid := range gs.HexByIndex(bestHex).VertexIDs {
		v := gs.VertexByID(vid)
		if v == nil || v.Owner == nil || *v.Owner == seat {
			continue
		}
		if n := gs.ResourcesFor(*v.Owner).Total(); n > most {
			owner := *v.Owner
			victim, most = &owner, n
		}
	}
	return bestHex, victim
}

// settlementSpotFree applies the distance rule around the vertex.
func settlementSpotFree(gs *model.GameState, v model.VertexID) bool {
	for _, n := range gs.AdjacentVertices(v) {
		if nv := gs.VertexByID(n); nv != nil && nv.HasBuilding() {
			return false
		}
	}
	return true
}

// roadReaches reports whether one of the seat's roads ends at the vertex.
func roadReaches(gs *model.GameState, seat model.SeatID, v model.VertexID) bool {
	for i := range gs.Edges {
		if e := &gs.Edges[i]; e.OwnedBy(seat) && e.Connects(v) {
			return true
		}
	}
	return false
}

// touchesNetwork reports whether the edge meets one of the seat's roads or
// buildings at either end.
func touchesNetwork(gs *model.GameState, seat model.SeatID, edge *model.Edge) bool {
	for _, vid := range []model.VertexID{edge.V1, edge.V2} {
		if v := gs.VertexByID(vid); v != nil && v.OwnedBy(seat) {
			return true
		}
		if roadReaches(gs, seat, vid) {
			return true
		}
	}
	return false
}

// vertexYield scores a vertex by the pip count of its hexes.
func vertexYield(gs *model.GameState, v model.VertexID) int {
	score := 0
	for _, hex := range gs.HexesTouching(v) {
		score += pipValue(hex.Number)
	}
	return score
}

// pipValue is the number of dice combinations rolling the given token, the
// standard measure of a hex's yield.
func pipValue(number int) int {
	switch number {
	case 6, 8:
		return 5
	case 5, 9:
		return 4
	case 4, 10:
		return 3
	case 3, 11:
		return 2
	case 2, 12:
		return 1
	}
	return 0
}
