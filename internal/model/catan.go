package model

// SeatID identifies a seat inside a started game. Seats held by registered
// users carry the UserID; bot seats use negative IDs and exist only in the
// game state, never in the users table.
type SeatID int64

// IsBot reports whether the seat ID belongs to a bot
func (id SeatID) IsBot() bool {
	return id < 0
}

// VertexID identifies a board vertex
type VertexID int

// Resource is a tradeable resource type
type Resource string

const (
	ResourceWood  Resource = "wood"
	ResourceBrick Resource = "brick"
	ResourceSheep Resource = "sheep"
	ResourceWheat Resource = "wheat"
	ResourceOre   Resource = "ore"
)

// Resources lists every resource type in a stable order
var Resources = []Resource{ResourceWood, ResourceBrick, ResourceSheep, ResourceWheat, ResourceOre}

// ParseResource validates a raw resource string
func ParseResource(s string) (Resource, bool) {
	for _, r := range Resources {
		if Resource(s) == r {
			return r, true
		}
	}
	return "", false
}

// Terrain is a hex tile type
type Terrain string

const (
	TerrainForest    Terrain = "forest"
	TerrainHills     Terrain = "hills"
	TerrainPasture   Terrain = "pasture"
	TerrainFields    Terrain = "fields"
	TerrainMountains Terrain = "mountains"
	TerrainDesert    Terrain = "desert"
)

// TerrainCounts is the standard tile distribution for the 19-hex board
var TerrainCounts = map[Terrain]int{
	TerrainForest:    4,
	TerrainHills:     3,
	TerrainPasture:   4,
	TerrainFields:    4,
	TerrainMountains: 3,
	TerrainDesert:    1,
}

// NumberTokens is the standard bag of roll numbers for non-desert hexes
var NumberTokens = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// Resource returns the resource a terrain produces, or false for desert
func (t Terrain) Resource() (Resource, bool) {
	switch t {
	case TerrainForest:
		return ResourceWood, true
	case TerrainHills:
		return ResourceBrick, true
	case TerrainPasture:
		return ResourceSheep, true
	case TerrainFields:
		return ResourceWheat, true
	case TerrainMountains:
		return ResourceOre, true
	}
	return "", false
}

// Building is a structure on a vertex
type Building string

const (
	BuildingSettlement Building = "settlement"
	BuildingCity       Building = "city"
)

// DevCard is a development card type
type DevCard string

const (
	DevCardKnight       DevCard = "knight"
	DevCardVictoryPoint DevCard = "victory_point"
	DevCardRoadBuilding DevCard = "road_building"
	DevCardYearOfPlenty DevCard = "year_of_plenty"
	DevCardMonopoly     DevCard = "monopoly"
)

// ParseDevCard validates a raw development card string
func ParseDevCard(s string) (DevCard, bool) {
	switch DevCard(s) {
	case DevCardKnight, DevCardVictoryPoint, DevCardRoadBuilding, DevCardYearOfPlenty, DevCardMonopoly:
		return DevCard(s), true
	}
	return "", false
}

// DevDeckCounts is the standard development deck composition
var DevDeckCounts = map[DevCard]int{
	DevCardKnight:       14,
	DevCardVictoryPoint: 5,
	DevCardRoadBuilding: 2,
	DevCardYearOfPlenty: 2,
	DevCardMonopoly:     2,
}

// Building costs
var (
	SettlementCost = ResourceSet{ResourceWood: 1, ResourceBrick: 1, ResourceSheep: 1, ResourceWheat: 1}
	CityCost       = ResourceSet{ResourceOre: 3, ResourceWheat: 2}
	RoadCost       = ResourceSet{ResourceWood: 1, ResourceBrick: 1}
	DevCardCost    = ResourceSet{ResourceSheep: 1, ResourceWheat: 1, ResourceOre: 1}
)

// Phase is the in-game phase, independent of the game row's GameStatus
type Phase string

const (
	PhaseInitialSetup Phase = "initial_setup" // Snake-order starting placements
	PhaseTurn         Phase = "turn"          // Normal turns
	PhaseFinished     Phase = "finished"      // A seat reached ten points
)

// ResourceSet is a multiset of resources held by a seat or quoted in a trade
type ResourceSet map[Resource]int

// Total returns the number of resource cards in the set
func (rs ResourceSet) Total() int {
	n := 0
	for _, c := range rs {
		n += c
	}
	return n
}

// Covers reports whether the set contains at least the given cost
func (rs ResourceSet) Covers(cost ResourceSet) bool {
	for r, c := range cost {
		if rs[r] < c {
			return false
		}
	}
	return true
}

// Missing returns the first resource the set lacks against the cost
func (rs ResourceSet) Missing(cost ResourceSet) (Resource, bool) {
	for _, r := range Resources {
		if rs[r] < cost[r] {
			return r, true
		}
	}
	return "", false
}

// Sub removes the cost from the set
func (rs ResourceSet) Sub(cost ResourceSet) {
	for r, c := range cost {
		rs[r] -= c
	}
}

// Add merges other into the set
func (rs ResourceSet) Add(other ResourceSet) {
	for r, c := range other {
		rs[r] += c
	}
}

// Clone returns an independent copy of the set
func (rs ResourceSet) Clone() ResourceSet {
	out := make(ResourceSet, len(rs))
	for r, c := range rs {
		out[r] = c
	}
	return out
}

// Flatten expands the set to one entry per card, in stable resource order
func (rs ResourceSet) Flatten() []Resource {
	var out []Resource
	for _, r := range Resources {
		for i := 0; i < rs[r]; i++ {
			out = append(out, r)
		}
	}
	return out
}

// NewResourceSet returns an empty set with all resources present at zero,
// which keeps JSON output stable for clients
func NewResourceSet() ResourceSet {
	rs := make(ResourceSet, len(Resources))
	for _, r := range Resources {
		rs[r] = 0
	}
	return rs
}

// Seat is one playing position inside a started game
type Seat struct {
	PlayerID      SeatID `json:"player_id"`
	Position      int    `json:"position"`
	IsBot         bool   `json:"is_ai"`
	VictoryPoints int    `json:"victory_points"`
}

// Hex is one terrain tile, addressed by axial coordinates
type Hex struct {
	Index     int        `json:"hex_index"`
	Q         int        `json:"q"`
	R         int        `json:"r"`
	Terrain   Terrain    `json:"hex_type"`
	Number    int        `json:"number"` // 0 for the desert
	HasRobber bool       `json:"has_robber"`
	VertexIDs []VertexID `json:"vertex_ids"` // The six corners, in ring order
}

// Produces reports whether the hex yields resources on the given roll
func (h *Hex) Produces(roll int) bool {
	return h.Number == roll && !h.HasRobber
}

// PortType is either "generic" (3:1) or a resource name (2:1)
type PortType string

// PortTypeGeneric is the 3:1 any-resource port
const PortTypeGeneric PortType = "generic"

// Port is a harbour attached to a coastal vertex
type Port struct {
	Type  PortType `json:"port_type"`
	Ratio string   `json:"trade_ratio"` // "3:1" or "2:1"
}

// Vertex is a board corner where settlements and cities are built
type Vertex struct {
	ID       VertexID `json:"vertex_id"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Owner    *SeatID  `json:"owner_id"`
	Building Building `json:"building_type,omitempty"`
}

// HasBuilding reports whether any settlement or city stands on the vertex
func (v *Vertex) HasBuilding() bool {
	return v.Owner != nil && v.Building != ""
}

// OwnedBy reports whether the vertex belongs to the given seat
func (v *Vertex) OwnedBy(id SeatID) bool {
	return v.Owner != nil && *v.Owner == id
}

// Edge is a board edge between two adjacent vertices where roads are built.
// V1 < V2 always.
type Edge struct {
	ID    int      `json:"edge_id"`
	V1    VertexID `json:"vertex1_id"`
	V2    VertexID `json:"vertex2_id"`
	Owner *SeatID  `json:"owner_id"`
}

// Connects reports whether the edge touches the given vertex
func (e *Edge) Connects(v VertexID) bool {
	return e.V1 == v || e.V2 == v
}

// OwnedBy reports whether the edge carries a road of the given seat
func (e *Edge) OwnedBy(id SeatID) bool {
	return e.Owner != nil && *e.Owner == id
}

// Other returns the edge's opposite endpoint
func (e *Edge) Other(v VertexID) VertexID {
	if e.V1 == v {
		return e.V2
	}
	return e.V1
}

// SetupState tracks snake-order progress through the initial placement phase
type SetupState struct {
	Round     int `json:"round"`        // 1 forward, 2 reverse
	SeatIndex int `json:"player_index"` // Index into Seats
}

// TradeOffer is a pending player-to-player trade
type TradeOffer struct {
	ID   string      `json:"id"`
	From SeatID      `json:"from_player_id"`
	Give ResourceSet `json:"give_resources"`
	Want ResourceSet `json:"want_resources"`
}

// GameState is the full in-progress state of a match, persisted as a single
// JSON document on the game row
type GameState struct {
	Seats             []Seat                 `json:"players"`
	Hexes             []Hex                  `json:"hexes"`
	Vertices          []Vertex               `json:"vertices"`
	Edges             []Edge                 `json:"edges"`
	Resources         map[SeatID]ResourceSet `json:"player_resources"`
	DevCards          map[SeatID][]DevCard   `json:"player_dev_cards"`
	PlayedKnights     map[SeatID]int         `json:"player_played_knights"`
	CurrentSeat       int                    `json:"current_player_index"`
	Phase             Phase                  `json:"phase"`
	Setup             SetupState             `json:"setup_phase"`
	LastRoll          int                    `json:"last_dice_roll,omitempty"`
	LongestRoadOwner  *SeatID                `json:"longest_road_player"`
	LongestRoadLength int                    `json:"longest_road_length"`
	LargestArmyOwner  *SeatID                `json:"largest_army_player"`
	RobberHex         int                    `json:"robber_location"`
	Ports             map[VertexID]Port      `json:"ports"`
	Deck              []DevCard              `json:"dev_cards_deck"`
	FreeRoads         map[SeatID]int         `json:"free_roads,omitempty"`
	PendingTrades     []TradeOffer           `json:"pending_trades"`
}

// CurrentSeatState returns the seat whose turn it is
func (gs *GameState) CurrentSeatState() *Seat {
	if len(gs.Seats) == 0 {
		return nil
	}
	return &gs.Seats[gs.CurrentSeat]
}

// SeatFor returns the seat held by the given ID, or nil
func (gs *GameState) SeatFor(id SeatID) *Seat {
	for i := range gs.Seats {
		if gs.Seats[i].PlayerID == id {
			return &gs.Seats[i]
		}
	}
	return nil
}

// VertexByID returns the vertex with the given ID, or nil
func (gs *GameState) VertexByID(id VertexID) *Vertex {
	for i := range gs.Vertices {
		if gs.Vertices[i].ID == id {
			return &gs.Vertices[i]
		}
	}
	return nil
}

// EdgeBetween returns the edge joining the two vertices, or nil
func (gs *GameState) EdgeBetween(a, b VertexID) *Edge {
	for i := range gs.Edges {
		e := &gs.Edges[i]
		if (e.V1 == a && e.V2 == b) || (e.V1 == b && e.V2 == a) {
			return e
		}
	}
	return nil
}

// HexByIndex returns the hex at the given board index, or nil
func (gs *GameState) HexByIndex(idx int) *Hex {
	if idx < 0 || idx >= len(gs.Hexes) {
		return nil
	}
	return &gs.Hexes[idx]
}

// AdjacentVertices returns the vertices one edge away from v
func (gs *GameState) AdjacentVertices(v VertexID) []VertexID {
	var out []VertexID
	for i := range gs.Edges {
		if gs.Edges[i].Connects(v) {
			out = append(out, gs.Edges[i].Other(v))
		}
	}
	return out
}

// HexesTouching returns the hexes that share the given corner vertex
func (gs *GameState) HexesTouching(v VertexID) []*Hex {
	var out []*Hex
	for i := range gs.Hexes {
		for _, vid := range gs.Hexes[i].VertexIDs {
			if vid == v {
				out = append(out, &gs.Hexes[i])
				break
			}
		}
	}
	return out
}

// ResourcesFor returns the seat's resource set, creating it if absent
func (gs *GameState) ResourcesFor(id SeatID) ResourceSet {
	if gs.Resources == nil {
		gs.Resources = make(map[SeatID]ResourceSet)
	}
	rs, ok := gs.Resources[id]
	if !ok {
		rs = NewResourceSet()
		gs.Resources[id] = rs
	}
	return rs
}

// Winner returns the first seat with ten or more victory points, or nil
func (gs *GameState) Winner() *Seat {
	for i := range gs.Seats {
		if gs.Seats[i].VictoryPoints >= WinningVictoryPoints {
			return &gs.Seats[i]
		}
	}
	return nil
}

// Victory thresholds
const (
	WinningVictoryPoints = 10
	LongestRoadMinimum   = 5 // Road segments required to claim longest road
	LargestArmyMinimum   = 3 // Knights required to claim largest army
	RobberDiscardAt      = 7 // Hand size at which a roll of seven forces a discard
)
