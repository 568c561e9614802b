package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hexforge/catan-go/internal/dependencies/mocks"
	"github.com/hexforge/catan-go/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

func (s *ServiceSuite) TestLayoutShape() {
	s.Require().Len(hexLayout, 19)
	s.Equal([2]int{0, 0}, hexLayout[desertHexIndex], "center tile must sit at the desert index")
}

func (s *ServiceSuite) TestGenerateBoardShape() {
	board := s.service.Generate()

	s.Len(board.Hexes, 19)
	s.Len(board.Vertices, 54)
	s.Len(board.Edges, 72)
}

func (s *ServiceSuite) TestDesertInCenterWithRobber() {
	board := s.service.Generate()

	desert := board.Hexes[desertHexIndex]
	s.Equal(model.TerrainDesert, desert.Terrain)
	s.Equal(0, desert.Number)
	s.True(desert.HasRobber)
	s.Equal(0, desert.Q)
	s.Equal(0, desert.R)
	s.Equal(desertHexIndex, board.RobberHex)

	for _, h := range board.Hexes {
		if h.Index != desertHexIndex {
			s.NotEqual(model.TerrainDesert, h.Terrain)
			s.False(h.HasRobber)
		}
	}
}

func (s *ServiceSuite) TestTerrainDistribution() {
	board := s.service.Generate()

	counts := make(map[model.Terrain]int)
	for _, h := range board.Hexes {
		counts[h.Terrain]++
	}
	s.Equal(model.TerrainCounts, counts)
}

func (s *ServiceSuite) TestNumberTokensUsedExactlyOnce() {
	board := s.service.Generate()

	var numbers []int
	for _, h := range board.Hexes {
		if h.Terrain == model.TerrainDesert {
			continue
		}
		s.NotEqual(7, h.Number, "seven has no token")
		numbers = append(numbers, h.Number)
	}

	s.ElementsMatch(model.NumberTokens, numbers)
}

func (s *ServiceSuite) TestEveryHexHasSixDistinctCorners() {
	board := s.service.Generate()

	for _, h := range board.Hexes {
		s.Require().Len(h.VertexIDs, 6)
		seen := make(map[model.VertexID]bool)
		for _, id := range h.VertexIDs {
			s.False(seen[id], "hex %d repeats vertex %d", h.Index, id)
			seen[id] = true
			s.Less(int(id), len(board.Vertices))
		}
	}
}

func (s *ServiceSuite) TestAdjacentHexesShareTwoCorners() {
	board := s.service.Generate()

	// The center tile touches six neighbours; each shared border has two
	// corners on it.
	center := board.Hexes[desertHexIndex]
	for _, h := range board.Hexes {
		if h.Index == center.Index {
			continue
		}
		dq, dr := h.Q-center.Q, h.R-center.R
		if dq < -1 || dq > 1 || dr < -1 || dr > 1 || dq+dr < -1 || dq+dr > 1 {
			continue
		}

		shared := 0
		for _, a := range center.VertexIDs {
			for _, b := range h.VertexIDs {
				if a == b {
					shared++
				}
			}
		}
		s.Equal(2, shared, "hex %d should share two corners with the center", h.Index)
	}
}

func (s *ServiceSuite) TestVertexDegreeDistribution() {
	board := s.service.Generate()

	degree := make(map[model.VertexID]int)
	for _, e := range board.Edges {
		degree[e.V1]++
		degree[e.V2]++
	}

	interior, coastal := 0, 0
	for _, v := range board.Vertices {
		switch degree[v.ID] {
		case 3:
			interior++
		case 2:
			coastal++
		default:
			s.Failf("unexpected degree", "vertex %d has degree %d", v.ID, degree[v.ID])
		}
	}
	s.Equal(36, interior)
	s.Equal(18, coastal)
}

func (s *ServiceSuite) TestEdgesAreNormalizedAndUnique() {
	board := s.service.Generate()

	seen := make(map[[2]model.VertexID]bool)
	for i, e := range board.Edges {
		s.Equal(i, e.ID)
		s.Less(e.V1, e.V2)
		pair := [2]model.VertexID{e.V1, e.V2}
		s.False(seen[pair], "duplicate edge %v", pair)
		seen[pair] = true
		s.Nil(e.Owner)
	}
}

func (s *ServiceSuite) TestPortsSitOnCoastalVertices() {
	board := s.service.Generate()

	degree := make(map[model.VertexID]int)
	for _, e := range board.Edges {
		degree[e.V1]++
		degree[e.V2]++
	}

	s.Require().Len(board.Ports, portCount)

	typeCounts := make(map[model.PortType]int)
	for vid, port := range board.Ports {
		s.Less(degree[vid], 3, "port vertex %d is not coastal", vid)
		typeCounts[port.Type]++
		if port.Type == model.PortTypeGeneric {
			s.Equal("3:1", port.Ratio)
		} else {
			s.Equal("2:1", port.Ratio)
		}
	}

	s.Equal(4, typeCounts[model.PortTypeGeneric])
	for _, r := range model.Resources {
		s.Equal(1, typeCounts[model.PortType(r)], "one 2:1 port per resource")
	}
}

func (s *ServiceSuite) TestDeckComposition() {
	board := s.service.Generate()

	s.Require().Len(board.Deck, 25)
	counts := make(map[model.DevCard]int)
	for _, c := range board.Deck {
		counts[c]++
	}
	s.Equal(model.DevDeckCounts, counts)
}

func (s *ServiceSuite) TestShuffleIsWiredThroughRandom() {
	// A reversing shuffle must change the terrain layout relative to the
	// no-op default.
	plain := s.service.Generate()

	s.random.ShuffleFunc = func(n int, swap func(i, j int)) {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			swap(i, j)
		}
	}
	reversed := s.service.Generate()

	s.NotEqual(plain.Hexes[0].Terrain, reversed.Hexes[0].Terrain)
	s.Equal(model.TerrainDesert, reversed.Hexes[desertHexIndex].Terrain)
}

func (s *ServiceSuite) TestVertexCoordinatesAreDeduplicated() {
	board := s.service.Generate()

	seen := make(map[[2]int]bool)
	for _, v := range board.Vertices {
		key := cornerKey(v.X, v.Y)
		s.False(seen[key], "vertices %v collide", key)
		seen[key] = true
	}
}
