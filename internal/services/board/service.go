package board

import (
	"math"

	"github.com/hexforge/catan-go/internal/dependencies/random"
	"github.com/hexforge/catan-go/internal/model"
)

// The standard board is a radius-2 hexagon of 19 tiles. Tiles are indexed in
// row order (r from -2 to 2, q ascending within a row), which puts the center
// tile, and with it the desert and the robber's starting position, at index 9.
const (
	boardRadius    = 2
	desertHexIndex = 9
	hexSize        = 1.0
	portCount      = 9
)

// hexLayout lists the axial coordinates of all 19 tiles in board index order
var hexLayout = buildHexLayout()

func buildHexLayout() [][2]int {
	var coords [][2]int
	for r := -boardRadius; r <= boardRadius; r++ {
		for q := -boardRadius; q <= boardRadius; q++ {
			if q+r < -boardRadius || q+r > boardRadius {
				continue
			}
			coords = append(coords, [2]int{q, r})
		}
	}
	return coords
}

// terrainOrder fixes the order the tile pool is built in before shuffling
var terrainOrder = []model.Terrain{
	model.TerrainForest,
	model.TerrainHills,
	model.TerrainPasture,
	model.TerrainFields,
	model.TerrainMountains,
}

// devCardOrder fixes the order the deck is built in before shuffling
var devCardOrder = []model.DevCard{
	model.DevCardKnight,
	model.DevCardVictoryPoint,
	model.DevCardRoadBuilding,
	model.DevCardYearOfPlenty,
	model.DevCardMonopoly,
}

// portBag is the standard harbour composition: one 2:1 port per resource
// plus four generic 3:1 ports
var portBag = []model.PortType{
	model.PortType(model.ResourceWood),
	model.PortType(model.ResourceBrick),
	model.PortType(model.ResourceSheep),
	model.PortType(model.ResourceWheat),
	model.PortType(model.ResourceOre),
	model.PortTypeGeneric,
	model.PortTypeGeneric,
	model.PortTypeGeneric,
	model.PortTypeGeneric,
}

// Board is a freshly generated layout plus the shuffled development deck
type Board struct {
	Hexes     []model.Hex
	Vertices  []model.Vertex
	Edges     []model.Edge
	Ports     map[model.VertexID]model.Port
	Deck      []model.DevCard
	RobberHex int
}

// Service generates randomized standard boards
type Service struct {
	random random.Random
}

// New creates a new board Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// Generate builds a randomized standard board: shuffled terrain with the
// desert fixed in the center, shuffled number tokens over the non-desert
// tiles, shared corners deduplicated into 54 vertices joined by 72 edges,
// nine harbours on coastal vertices and a shuffled development deck.
func (s *Service) Generate() *Board {
	terrains := s.shuffledTerrains()
	numbers := s.shuffledNumbers()

	board := &Board{
		Ports: make(map[model.VertexID]model.Port),
	}

	byKey := make(map[[2]int]model.VertexID)
	tokenIdx := 0
	for idx, coord := range hexLayout {
		q, r := coord[0], coord[1]
		hex := model.Hex{
			Index:   idx,
			Q:       q,
			R:       r,
			Terrain: terrains[idx],
		}
		if hex.Terrain == model.TerrainDesert {
			hex.HasRobber = true
			board.RobberHex = idx
		} else {
			hex.Number = numbers[tokenIdx]
			tokenIdx++
		}

		for _, c := range hexCorners(q, r) {
			key := cornerKey(c[0], c[1])
			id, ok := byKey[key]
			if !ok {
				id = model.VertexID(len(board.Vertices))
				byKey[key] = id
				board.Vertices = append(board.Vertices, model.Vertex{
					ID: id,
					X:  math.Round(c[0]*100) / 100,
					Y:  math.Round(c[1]*100) / 100,
				})
			}
			hex.VertexIDs = append(hex.VertexIDs, id)
		}

		board.Hexes = append(board.Hexes, hex)
	}

	s.buildEdges(board)
	s.assignPorts(board)
	board.Deck = s.shuffledDeck()

	return board
}

// shuffledTerrains shuffles the 18 resource tiles and slots the desert into
// the center position
func (s *Service) shuffledTerrains() []model.Terrain {
	pool := make([]model.Terrain, 0, len(hexLayout)-1)
	for _, t := range terrainOrder {
		for i := 0; i < model.TerrainCounts[t]; i++ {
			pool = append(pool, t)
		}
	}
	s.random.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	out := make([]model.Terrain, 0, len(hexLayout))
	out = append(out, pool[:desertHexIndex]...)
	out = append(out, model.TerrainDesert)
	out = append(out, pool[desertHexIndex:]...)
	return out
}

func (s *Service) shuffledNumbers() []int {
	numbers := make([]int, len(model.NumberTokens))
	copy(numbers, model.NumberTokens)
	s.random.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})
	return numbers
}

func (s *Service) shuffledDeck() []model.DevCard {
	var deck []model.DevCard
	for _, c := range devCardOrder {
		for i := 0; i < model.DevDeckCounts[c]; i++ {
			deck = append(deck, c)
		}
	}
	s.random.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// buildEdges walks each tile's corner ring and records every distinct
// adjacent pair, smaller vertex ID first
func (s *Service) buildEdges(board *Board) {
	seen := make(map[[2]model.VertexID]bool)
	for i := range board.Hexes {
		ids := board.Hexes[i].VertexIDs
		for k := range ids {
			a, b := ids[k], ids[(k+1)%len(ids)]
			if a > b {
				a, b = b, a
			}
			pair := [2]model.VertexID{a, b}
			if seen[pair] {
				continue
			}
			seen[pair] = true
			board.Edges = append(board.Edges, model.Edge{
				ID: len(board.Edges),
				V1: a,
				V2: b,
			})
		}
	}
}

// assignPorts scatters the nine harbours over coastal vertices. A coastal
// vertex is one with fewer than three incident edges.
func (s *Service) assignPorts(board *Board) {
	degree := make(map[model.VertexID]int)
	for i := range board.Edges {
		degree[board.Edges[i].V1]++
		degree[board.Edges[i].V2]++
	}

	var coastal []model.VertexID
	for i := range board.Vertices {
		if degree[board.Vertices[i].ID] < 3 {
			coastal = append(coastal, board.Vertices[i].ID)
		}
	}

	types := make([]model.PortType, len(portBag))
	copy(types, portBag)
	s.random.Shuffle(len(types), func(i, j int) {
		types[i], types[j] = types[j], types[i]
	})
	s.random.Shuffle(len(coastal), func(i, j int) {
		coastal[i], coastal[j] = coastal[j], coastal[i]
	})

	for i, t := range types {
		ratio := "2:1"
		if t == model.PortTypeGeneric {
			ratio = "3:1"
		}
		board.Ports[coastal[i]] = model.Port{Type: t, Ratio: ratio}
	}
}

// hexCenter converts axial coordinates to the pointy-top pixel center
func hexCenter(q, r int) (float64, float64) {
	x := hexSize * (math.Sqrt(3)*float64(q) + math.Sqrt(3)/2*float64(r))
	y := hexSize * 1.5 * float64(r)
	return x, y
}

// hexCorners returns the six corners of a pointy-top tile in ring order
func hexCorners(q, r int) [][2]float64 {
	cx, cy := hexCenter(q, r)
	corners := make([][2]float64, 6)
	for i := range corners {
		angle := math.Pi/3*float64(i) - math.Pi/6
		corners[i] = [2]float64{
			cx + hexSize*math.Cos(angle),
			cy + hexSize*math.Sin(angle),
		}
	}
	return corners
}

// cornerKey buckets a corner coordinate so that the same physical corner
// computed from different tiles collapses to one vertex. Millimeter precision
// is far coarser than float error and far finer than corner spacing.
func cornerKey(x, y float64) [2]int {
	return [2]int{
		int(math.Round(x * 1000)),
		int(math.Round(y * 1000)),
	}
}
