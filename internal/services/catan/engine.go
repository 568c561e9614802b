package catan

import (
	"github.com/google/uuid"

	"github.com/hexforge/catan-go/internal/dependencies/random"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/scoring"
)

// Engine applies the game rules to a single game state. All methods mutate
// the state in place; loading and persisting it is the caller's concern.
type Engine struct {
	gs      *model.GameState
	random  random.Random
	scoring *scoring.Service
}

// NewEngine wraps a started game's state.
func NewEngine(gs *model.GameState, random random.Random, scoring *scoring.Service) *Engine {
	return &Engine{
		gs:      gs,
		random:  random,
		scoring: scoring,
	}
}

// State returns the wrapped game state.
func (e *Engine) State() *model.GameState {
	return e.gs
}

// CurrentSeat returns the seat whose turn it is.
func (e *Engine) CurrentSeat() model.SeatID {
	return e.gs.Seats[e.gs.CurrentSeat].PlayerID
}

// RollDice rolls two dice for the current seat. A seven forces every
// overflowing hand to discard half; any other roll pays out production.
func (e *Engine) RollDice() (int, error) {
	if e.gs.Phase != model.PhaseTurn {
		return 0, model.ErrWrongPhase
	}
	roll := e.random.Intn(6) + 1 + e.random.Intn(6) + 1
	e.gs.LastRoll = roll
	if roll == 7 {
		e.discardOverflowingHands()
	} else {
		e.distribute(roll)
	}
	return roll, nil
}

// discardOverflowingHands makes every seat holding seven or more cards,
// the roller included, discard half of them rounded down.
func (e *Engine) discardOverflowingHands() {
	for i := range e.gs.Seats {
		seat := e.gs.Seats[i].PlayerID
		hand := e.gs.ResourcesFor(seat)
		total := hand.Total()
		if total < model.RobberDiscardAt {
			continue
		}
		e.discardRandom(hand, total/2)
	}
}

func (e *Engine) discardRandom(hand model.ResourceSet, n int) {
	cards := hand.Flatten()
	e.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for _, r := range cards[:n] {
		hand[r]--
	}
}

// distribute pays out every producing hex to the buildings on its corners.
// Settlements earn one card, cities two.
func (e *Engine) distribute(roll int) {
	for i := range e.gs.Hexes {
		hex := &e.gs.Hexes[i]
		if !hex.Produces(roll) {
			continue
		}
		resource, ok := hex.Terrain.Resource()
		if !ok {
			continue
		}
		for _, vid := range hex.VertexIDs {
			v := e.gs.VertexByID(vid)
			if v == nil || v.Owner == nil {
				continue
			}
			switch v.Building {
			case model.BuildingSettlement:
				e.gs.ResourcesFor(*v.Owner)[resource]++
			case model.BuildingCity:
				e.gs.ResourcesFor(*v.Owner)[resource] += 2
			}
		}
	}
}

// MoveRobber places the robber on the given hex and, when a victim is
// named, steals one random card from them. The steal silently yields
// nothing if the victim has no building on the hex or an empty hand.
func (e *Engine) MoveRobber(thief model.SeatID, hexIndex int, victim *model.SeatID) (model.Resource, error) {
	if e.gs.Phase != model.PhaseTurn {
		return "", model.ErrWrongPhase
	}
	hex := e.gs.HexByIndex(hexIndex)
	if hex == nil {
		return "", model.ErrHexNotFound
	}
	if old := e.gs.HexByIndex(e.gs.RobberHex); old != nil {
		old.HasRobber = false
	}
	hex.HasRobber = true
	e.gs.RobberHex = hexIndex

	if victim == nil {
		return "", nil
	}
	return e.steal(thief, *victim, hex), nil
}

func (e *Engine) steal(thief, victim model.SeatID, hex *model.Hex) model.Resource {
	onHex := false
	for _, vid := range hex.VertexIDs {
		if v := e.gs.VertexByID(vid); v != nil && v.OwnedBy(victim) && v.Building != "" {
			onHex = true
			break
		}
	}
	if !onHex {
		return ""
	}

	hand := e.gs.ResourcesFor(victim)
	cards := hand.Flatten()
	if len(cards) == 0 {
		return ""
	}
	r := cards[e.random.Intn(len(cards))]
	hand[r]--
	e.gs.ResourcesFor(thief)[r]++
	return r
}

// BuildSettlement places a settlement for the seat. During the initial
// phase the placement is free and limited to one per setup round; during
// normal turns it costs resources and must touch one of the seat's roads.
func (e *Engine) BuildSettlement(seat model.SeatID, vertexID model.VertexID) error {
	switch e.gs.Phase {
	case model.PhaseInitialSetup:
		return e.placeSetupSettlement(seat, vertexID)
	case model.PhaseTurn:
		return e.buildSettlement(seat, vertexID, false, false)
	default:
		return model.ErrWrongPhase
	}
}

func (e *Engine) placeSetupSettlement(seat model.SeatID, vertexID model.VertexID) error {
	if e.buildingCount(seat) >= e.gs.Setup.Round {
		return model.NewRuleError("settlement already placed this setup round")
	}
	// The second settlement pays out its adjacent hexes as starting capital
	grant := e.gs.Setup.Round == 2
	return e.buildSettlement(seat, vertexID, true, grant)
}

func (e *Engine) buildSettlement(seat model.SeatID, vertexID model.VertexID, free, grant bool) error {
	v := e.gs.VertexByID(vertexID)
	if v == nil {
		return model.ErrVertexNotFound
	}
	if !free {
		if missing, short := e.gs.ResourcesFor(seat).Missing(model.SettlementCost); short {
			return model.NewRuleError("not enough %s", missing)
		}
	}
	if v.Owner != nil {
		return model.NewRuleError("vertex %d is already occupied", vertexID)
	}
	for _, n := range e.gs.AdjacentVertices(vertexID) {
		if nv := e.gs.VertexByID(n); nv != nil && nv.HasBuilding() {
			return model.NewRuleError("too close to another settlement")
		}
	}
	if !free && !e.touchesOwnRoad(seat, vertexID) {
		return model.NewRuleError("settlement must connect to one of your roads")
	}

	if !free {
		e.gs.ResourcesFor(seat).Sub(model.SettlementCost)
	}
	v.Owner = &seat
	v.Building = model.BuildingSettlement
	if grant {
		e.grantAdjacentResources(seat, vertexID)
	}
	e.scoring.Recalculate(e.gs)
	return nil
}

func (e *Engine) grantAdjacentResources(seat model.SeatID, vertexID model.VertexID) {
	for _, hex := range e.gs.HexesTouching(vertexID) {
		if r, ok := hex.Terrain.Resource(); ok {
			e.gs.ResourcesFor(seat)[r]++
		}
	}
}

// BuildCity upgrades one of the seat's settlements.
func (e *Engine) BuildCity(seat model.SeatID, vertexID model.VertexID) error {
	if e.gs.Phase != model.PhaseTurn {
		return model.ErrWrongPhase
	}
	v := e.gs.VertexByID(vertexID)
	if v == nil {
		return model.ErrVertexNotFound
	}
	if missing, short := e.gs.ResourcesFor(seat).Missing(model.CityCost); short {
		return model.NewRuleError("not enough %s", missing)
	}
	if !v.OwnedBy(seat) {
		return model.NewRuleError("vertex %d does not hold one of your settlements", vertexID)
	}
	if v.Building != model.BuildingSettlement {
		return model.NewRuleError("only a settlement can become a city")
	}

	e.gs.ResourcesFor(seat).Sub(model.CityCost)
	v.Building = model.BuildingCity
	e.scoring.Recalculate(e.gs)
	return nil
}

// BuildRoad places a road on the edge between the two vertices. Setup
// placements are free and limited to one per round. During normal turns a
// road building credit waives the cost but the road must still connect to
// the seat's network.
func (e *Engine) BuildRoad(seat model.SeatID, v1, v2 model.VertexID) error {
	switch e.gs.Phase {
	case model.PhaseInitialSetup:
		if e.roadCount(seat) >= e.gs.Setup.Round {
			return model.NewRuleError("road already placed this setup round")
		}
		return e.buildRoad(seat, v1, v2, true)
	case model.PhaseTurn:
		return e.buildRoad(seat, v1, v2, false)
	default:
		return model.ErrWrongPhase
	}
}

func (e *Engine) buildRoad(seat model.SeatID, v1, v2 model.VertexID, setup bool) error {
	useCredit := !setup && e.gs.FreeRoads[seat] > 0
	if !setup && !useCredit {
		if missing, short := e.gs.ResourcesFor(seat).Missing(model.RoadCost); short {
			return model.NewRuleError("not enough %s", missing)
		}
	}
	if e.gs.VertexByID(v1) == nil || e.gs.VertexByID(v2) == nil {
		return model.ErrVertexNotFound
	}
	edge := e.gs.EdgeBetween(v1, v2)
	if edge == nil {
		return model.ErrEdgeNotFound
	}
	if edge.Owner != nil {
		return model.NewRuleError("edge is already occupied")
	}
	if !setup && !e.roadConnects(seat, v1, v2) {
		return model.NewRuleError("road must connect to your buildings or roads")
	}

	switch {
	case useCredit:
		e.gs.FreeRoads[seat]--
		if e.gs.FreeRoads[seat] == 0 {
			delete(e.gs.FreeRoads, seat)
		}
	case !setup:
		e.gs.ResourcesFor(seat).Sub(model.RoadCost)
	}
	edge.Owner = &seat
	e.scoring.UpdateLongestRoad(e.gs)
	e.scoring.Recalculate(e.gs)
	return nil
}

// touchesOwnRoad reports whether any of the seat's roads ends at the vertex.
func (e *Engine) touchesOwnRoad(seat model.SeatID, v model.VertexID) bool {
	for i := range e.gs.Edges {
		if edge := &e.gs.Edges[i]; edge.OwnedBy(seat) && edge.Connects(v) {
			return true
		}
	}
	return false
}

// roadConnects checks the new road against the seat's network: a building
// at either endpoint, or a walk over the seat's roads from the endpoints
// that reaches one of their buildings.
func (e *Engine) roadConnects(seat model.SeatID, v1, v2 model.VertexID) bool {
	if v := e.gs.VertexByID(v1); v != nil && v.OwnedBy(seat) {
		return true
	}
	if v := e.gs.VertexByID(v2); v != nil && v.OwnedBy(seat) {
		return true
	}

	visited := map[model.VertexID]bool{}
	queue := []model.VertexID{v1, v2}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for i := range e.gs.Edges {
			edge := &e.gs.Edges[i]
			if edge.OwnedBy(seat) && edge.Connects(cur) {
				if other := edge.Other(cur); !visited[other] {
					queue = append(queue, other)
				}
			}
		}
	}

	for vid := range visited {
		if v := e.gs.VertexByID(vid); v != nil && v.OwnedBy(seat) {
			return true
		}
	}
	return false
}

func (e *Engine) buildingCount(seat model.SeatID) int {
	n := 0
	for i := range e.gs.Vertices {
		if e.gs.Vertices[i].OwnedBy(seat) {
			n++
		}
	}
	return n
}

func (e *Engine) roadCount(seat model.SeatID) int {
	n := 0
	for i := range e.gs.Edges {
		if e.gs.Edges[i].OwnedBy(seat) {
			n++
		}
	}
	return n
}

// AdvanceTurn ends the current seat's turn. During setup it requires the
// seat to have placed its settlement and road, then steps the snake order;
// afterwards play simply rotates. Returns the seat now on turn.
func (e *Engine) AdvanceTurn() (model.SeatID, error) {
	switch e.gs.Phase {
	case model.PhaseInitialSetup:
		seat := e.CurrentSeat()
		round := e.gs.Setup.Round
		if e.buildingCount(seat) < round || e.roadCount(seat) < round {
			return 0, model.NewRuleError("place a settlement and a road before ending the setup turn")
		}
		e.advanceSetup()
	case model.PhaseTurn:
		e.gs.CurrentSeat = (e.gs.CurrentSeat + 1) % len(e.gs.Seats)
	default:
		return 0, model.ErrWrongPhase
	}
	return e.CurrentSeat(), nil
}

// advanceSetup steps the snake order: forward through round one, then the
// last seat goes again and the order reverses. When the reverse pass walks
// off the front the normal turn phase begins with the first seat.
func (e *Engine) advanceSetup() {
	n := len(e.gs.Seats)
	if e.gs.Setup.Round == 1 {
		e.gs.Setup.SeatIndex++
		if e.gs.Setup.SeatIndex == n {
			e.gs.Setup.Round = 2
			e.gs.Setup.SeatIndex = n - 1
		}
	} else {
		e.gs.Setup.SeatIndex--
		if e.gs.Setup.SeatIndex < 0 {
			e.gs.Setup.SeatIndex = 0
			e.gs.Phase = model.PhaseTurn
			e.gs.CurrentSeat = 0
			return
		}
	}
	e.gs.CurrentSeat = e.gs.Setup.SeatIndex
}

// BuyDevCard sells the top card of the deck to the seat. Victory point
// cards are revealed on purchase and score immediately.
func (e *Engine) BuyDevCard(seat model.SeatID) (model.DevCard, bool, error) {
	if e.gs.Phase != model.PhaseTurn {
		return "", false, model.ErrWrongPhase
	}
	if missing, short := e.gs.ResourcesFor(seat).Missing(model.DevCardCost); short {
		return "", false, model.NewRuleError("not enough %s", missing)
	}
	if len(e.gs.Deck) == 0 {
		return "", false, model.ErrDevCardDeckEmpty
	}

	e.gs.ResourcesFor(seat).Sub(model.DevCardCost)
	card := e.gs.Deck[0]
	e.gs.Deck = e.gs.Deck[1:]
	e.gs.DevCards[seat] = append(e.gs.DevCards[seat], card)

	revealed := card == model.DevCardVictoryPoint
	if revealed {
		e.scoring.Recalculate(e.gs)
	}
	return card, revealed, nil
}

// CardData carries the optional parameters of a played development card.
type CardData struct {
	Resource1    model.Resource // year_of_plenty
	Resource2    model.Resource // year_of_plenty
	ResourceType model.Resource // monopoly
}

// PlayDevCard plays a card from the seat's hand. Card data is validated
// before the card leaves the hand so a malformed request costs nothing.
func (e *Engine) PlayDevCard(seat model.SeatID, card model.DevCard, data CardData) error {
	if e.gs.Phase != model.PhaseTurn {
		return model.ErrWrongPhase
	}

	switch card {
	case model.DevCardKnight, model.DevCardRoadBuilding:
	case model.DevCardYearOfPlenty:
		if data.Resource1 == "" || data.Resource2 == "" {
			return model.NewValidationError("year_of_plenty needs resource1 and resource2")
		}
	case model.DevCardMonopoly:
		if data.ResourceType == "" {
			return model.NewValidationError("monopoly needs resource_type")
		}
	case model.DevCardVictoryPoint:
		return model.NewRuleError("victory point cards score automatically and cannot be played")
	default:
		return model.ErrUnknownDevCard
	}

	if !e.removeFromHand(seat, card) {
		return model.ErrDevCardNotHeld
	}

	switch card {
	case model.DevCardKnight:
		e.gs.PlayedKnights[seat]++
		e.scoring.UpdateLargestArmy(e.gs, seat)
		e.scoring.Recalculate(e.gs)
	case model.DevCardRoadBuilding:
		if e.gs.FreeRoads == nil {
			e.gs.FreeRoads = make(map[model.SeatID]int)
		}
		e.gs.FreeRoads[seat] += 2
	case model.DevCardYearOfPlenty:
		hand := e.gs.ResourcesFor(seat)
		hand[data.Resource1]++
		hand[data.Resource2]++
	case model.DevCardMonopoly:
		taken := 0
		for i := range e.gs.Seats {
			other := e.gs.Seats[i].PlayerID
			if other == seat {
				continue
			}
			hand := e.gs.ResourcesFor(other)
			taken += hand[data.ResourceType]
			hand[data.ResourceType] = 0
		}
		e.gs.ResourcesFor(seat)[data.ResourceType] += taken
	}
	return nil
}

func (e *Engine) removeFromHand(seat model.SeatID, card model.DevCard) bool {
	hand := e.gs.DevCards[seat]
	for i, c := range hand {
		if c == card {
			e.gs.DevCards[seat] = append(hand[:i], hand[i+1:]...)
			return true
		}
	}
	return false
}

// TradeBank swaps four of a kind (or more) for one card of choice.
func (e *Engine) TradeBank(seat model.SeatID, give model.Resource, giveAmount int, take model.Resource, takeAmount int) error {
	if e.gs.Phase != model.PhaseTurn {
		return model.ErrWrongPhase
	}
	if giveAmount < 4 || takeAmount != 1 {
		return model.NewRuleError("bank trades are four to one")
	}
	hand := e.gs.ResourcesFor(seat)
	if hand[give] < giveAmount {
		return model.NewRuleError("not enough %s", give)
	}
	hand[give] -= giveAmount
	hand[take] += takeAmount
	return nil
}

// TradePort trades through a harbour. The seat needs a building on the
// port vertex; generic ports trade three to one, resource ports two to one
// in their own resource.
func (e *Engine) TradePort(seat model.SeatID, vertexID model.VertexID, give model.Resource, giveAmount int, take model.Resource, takeAmount int) error {
	if e.gs.Phase != model.PhaseTurn {
		return model.ErrWrongPhase
	}
	port, ok := e.gs.Ports[vertexID]
	if !ok {
		return model.NewRuleError("vertex %d has no port", vertexID)
	}
	if v := e.gs.VertexByID(vertexID); v == nil || !v.OwnedBy(seat) {
		return model.NewRuleError("you need a building on the port vertex")
	}
	if port.Type == model.PortTypeGeneric {
		if giveAmount < 3 || takeAmount != 1 {
			return model.NewRuleError("generic ports trade three to one")
		}
	} else {
		if model.Resource(port.Type) != give {
			return model.NewRuleError("this port only accepts %s", port.Type)
		}
		if giveAmount < 2 || takeAmount != 1 {
			return model.NewRuleError("resource ports trade two to one")
		}
	}

	hand := e.gs.ResourcesFor(seat)
	if hand[give] < giveAmount {
		return model.NewRuleError("not enough %s", give)
	}
	hand[give] -= giveAmount
	hand[take] += takeAmount
	return nil
}

// CreateTradeOffer posts an open offer from the seat. The offered
// resources must be in hand when the offer is made.
func (e *Engine) CreateTradeOffer(seat model.SeatID, give, want model.ResourceSet) (*model.TradeOffer, error) {
	if e.gs.Phase != model.PhaseTurn {
		return nil, model.ErrWrongPhase
	}
	if give.Total() == 0 && want.Total() == 0 {
		return nil, model.NewValidationError("offer must move at least one resource")
	}
	hand := e.gs.ResourcesFor(seat)
	if !hand.Covers(give) {
		missing, _ := hand.Missing(give)
		return nil, model.NewRuleError("not enough %s", missing)
	}

	offer := model.TradeOffer{
		ID:   uuid.NewString(),
		From: seat,
		Give: give.Clone(),
		Want: want.Clone(),
	}
	e.gs.PendingTrades = append(e.gs.PendingTrades, offer)
	return &offer, nil
}

// AcceptTradeOffer settles a pending offer in the acceptor's favor. Both
// hands are re-checked at acceptance time since either may have changed
// since the offer was posted.
func (e *Engine) AcceptTradeOffer(acceptor model.SeatID, offerID string) error {
	if e.gs.Phase != model.PhaseTurn {
		return model.ErrWrongPhase
	}
	idx := -1
	for i := range e.gs.PendingTrades {
		if e.gs.PendingTrades[i].ID == offerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.ErrTradeOfferNotFound
	}
	offer := e.gs.PendingTrades[idx]
	if offer.From == acceptor {
		return model.NewRuleError("cannot accept your own trade offer")
	}

	fromHand := e.gs.ResourcesFor(offer.From)
	if !fromHand.Covers(offer.Give) {
		return model.NewRuleError("the offering player no longer has those resources")
	}
	toHand := e.gs.ResourcesFor(acceptor)
	if !toHand.Covers(offer.Want) {
		missing, _ := toHand.Missing(offer.Want)
		return model.NewRuleError("not enough %s to accept", missing)
	}

	fromHand.Sub(offer.Give)
	toHand.Add(offer.Give)
	toHand.Sub(offer.Want)
	fromHand.Add(offer.Want)
	e.gs.PendingTrades = append(e.gs.PendingTrades[:idx], e.gs.PendingTrades[idx+1:]...)
	return nil
}
