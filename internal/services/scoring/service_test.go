package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexforge/catan-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func newState(seats ...model.SeatID) *model.GameState {
	gs := &model.GameState{
		Resources:     make(map[model.SeatID]model.ResourceSet),
		DevCards:      make(map[model.SeatID][]model.DevCard),
		PlayedKnights: make(map[model.SeatID]int),
	}
	for i, id := range seats {
		gs.Seats = append(gs.Seats, model.Seat{PlayerID: id, Position: i + 1})
	}
	return gs
}

func addRoads(gs *model.GameState, owner model.SeatID, pairs ...[2]model.VertexID) {
	for _, p := range pairs {
		o := owner
		gs.Edges = append(gs.Edges, model.Edge{ID: len(gs.Edges), V1: p[0], V2: p[1], Owner: &o})
	}
}

func addBuilding(gs *model.GameState, owner model.SeatID, v model.VertexID, b model.Building) {
	o := owner
	gs.Vertices = append(gs.Vertices, model.Vertex{ID: v, Owner: &o, Building: b})
}

func (s *ServiceSuite) TestLongestRoadStraightChain() {
	gs := newState(1)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2},
		[2]model.VertexID{2, 3}, [2]model.VertexID{3, 4}, [2]model.VertexID{4, 5})

	s.Equal(5, s.service.LongestRoadLength(gs, 1))
}

func (s *ServiceSuite) TestLongestRoadIgnoresOtherSeats() {
	gs := newState(1, 2)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2})
	addRoads(gs, 2, [2]model.VertexID{2, 3}, [2]model.VertexID{3, 4})

	s.Equal(2, s.service.LongestRoadLength(gs, 1))
	s.Equal(2, s.service.LongestRoadLength(gs, 2))
}

func (s *ServiceSuite) TestLongestRoadTakesLongerArm() {
	// A five-segment chain with a one-segment spur off its middle.
	gs := newState(1)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2},
		[2]model.VertexID{2, 3}, [2]model.VertexID{3, 4},
		[2]model.VertexID{4, 5}, [2]model.VertexID{2, 6})

	s.Equal(6, s.service.LongestRoadLength(gs, 1))
}

func (s *ServiceSuite) TestLongestRoadReusesVertexNotEdge() {
	// A triangle with a tail: the best trail walks the tail onto the
	// triangle and all the way around it, revisiting the junction vertex.
	gs := newState(1)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2},
		[2]model.VertexID{0, 2}, [2]model.VertexID{2, 3})

	s.Equal(4, s.service.LongestRoadLength(gs, 1))
}

func (s *ServiceSuite) TestLongestRoadNoRoads() {
	gs := newState(1)
	s.Equal(0, s.service.LongestRoadLength(gs, 1))
}

func (s *ServiceSuite) TestUpdateLongestRoadNeedsFiveSegments() {
	gs := newState(1)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2},
		[2]model.VertexID{2, 3}, [2]model.VertexID{3, 4})

	s.service.UpdateLongestRoad(gs)
	s.Nil(gs.LongestRoadOwner)
	s.Equal(0, gs.LongestRoadLength)
}

func (s *ServiceSuite) TestUpdateLongestRoadAssignsAward() {
	gs := newState(1, 2)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2},
		[2]model.VertexID{2, 3}, [2]model.VertexID{3, 4}, [2]model.VertexID{4, 5})

	s.service.UpdateLongestRoad(gs)
	s.Require().NotNil(gs.LongestRoadOwner)
	s.Equal(model.SeatID(1), *gs.LongestRoadOwner)
	s.Equal(5, gs.LongestRoadLength)
}

func (s *ServiceSuite) TestUpdateLongestRoadHolderKeepsOnTie() {
	gs := newState(1, 2)
	addRoads(gs, 1, [2]model.VertexID{0, 1}, [2]model.VertexID{1, 2},
		[2]model.VertexID{2, 3}, [2]model.VertexID{3, 4}, [2]model.VertexID{4, 5})
	s.service.UpdateLongestRoad(gs)

	// Seat 2 matches the length but does not beat it.
	addRoads(gs, 2, [2]model.VertexID{10, 11}, [2]model.VertexID{11, 12},
		[2]model.VertexID{12, 13}, [2]model.VertexID{13, 14}, [2]model.VertexID{14, 15})
	s.service.UpdateLongestRoad(gs)

	s.Require().NotNil(gs.LongestRoadOwner)
	s.Equal(model.SeatID(1), *gs.LongestRoadOwner)

	// One more segment takes it.
	addRoads(gs, 2, [2]model.VertexID{15, 16})
	s.service.UpdateLongestRoad(gs)

	s.Equal(model.SeatID(2), *gs.LongestRoadOwner)
	s.Equal(6, gs.LongestRoadLength)
}

func (s *ServiceSuite) TestUpdateLargestArmyNeedsThreeKnights() {
	gs := newState(1)
	gs.PlayedKnights[1] = 2

	s.False(s.service.UpdateLargestArmy(gs, 1))
	s.Nil(gs.LargestArmyOwner)
}

func (s *ServiceSuite) TestUpdateLargestArmyHolderKeepsOnTie() {
	gs := newState(1, 2)
	gs.PlayedKnights[1] = 3

	s.True(s.service.UpdateLargestArmy(gs, 1))
	s.Require().NotNil(gs.LargestArmyOwner)
	s.Equal(model.SeatID(1), *gs.LargestArmyOwner)

	gs.PlayedKnights[2] = 3
	s.False(s.service.UpdateLargestArmy(gs, 2))
	s.Equal(model.SeatID(1), *gs.LargestArmyOwner)

	gs.PlayedKnights[2] = 4
	s.True(s.service.UpdateLargestArmy(gs, 2))
	s.Equal(model.SeatID(2), *gs.LargestArmyOwner)
}

func (s *ServiceSuite) TestVictoryPointsTally() {
	gs := newState(1, 2)
	addBuilding(gs, 1, 0, model.BuildingSettlement)
	addBuilding(gs, 1, 5, model.BuildingSettlement)
	addBuilding(gs, 1, 9, model.BuildingCity)
	addBuilding(gs, 2, 20, model.BuildingSettlement)
	gs.DevCards[1] = []model.DevCard{model.DevCardVictoryPoint, model.DevCardKnight}

	owner := model.SeatID(1)
	gs.LongestRoadOwner = &owner
	gs.LargestArmyOwner = &owner

	// 2 settlements + city + victory point card + both awards.
	s.Equal(2+2+1+2+2, s.service.VictoryPoints(gs, 1))
	s.Equal(1, s.service.VictoryPoints(gs, 2))
}

func (s *ServiceSuite) TestRecalculateWritesSeatScores() {
	gs := newState(1, 2)
	addBuilding(gs, 1, 0, model.BuildingSettlement)
	addBuilding(gs, 2, 5, model.BuildingCity)

	s.service.Recalculate(gs)

	s.Equal(1, gs.Seats[0].VictoryPoints)
	s.Equal(2, gs.Seats[1].VictoryPoints)
}
