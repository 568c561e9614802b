// Package request holds the JSON request bodies accepted by the API.
package request

// CreateUserRequest is the request body for registering a user
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for creating a game.
// MaxPlayers defaults to four when omitted.
type CreateGameRequest struct {
	Name       string `json:"name"`
	MaxPlayers int    `json:"max_players,omitempty"`
}

// UpdateGameRequest is the request body for partially updating a game.
// Nil fields are left untouched.
type UpdateGameRequest struct {
	Name            *string `json:"name,omitempty"`
	Status          *string `json:"status,omitempty"`
	CurrentPlayerID *int64  `json:"current_player_id,omitempty"`
}

// StartGameRequest is the request body for dealing a board and starting play
type StartGameRequest struct {
	GameID int64 `json:"game_id"`
}

// BuildSettlementRequest is the request body for building a settlement
type BuildSettlementRequest struct {
	VertexID int `json:"vertex_id"`
}

// BuildCityRequest is the request body for upgrading a settlement to a city
type BuildCityRequest struct {
	VertexID int `json:"vertex_id"`
}

// BuildRoadRequest is the request body for building a road between two
// vertices
type BuildRoadRequest struct {
	Vertex1ID int `json:"vertex1_id"`
	Vertex2ID int `json:"vertex2_id"`
}

// MoveRobberRequest is the request body for moving the robber after a seven
type MoveRobberRequest struct {
	HexIndex          int    `json:"hex_index"`
	StealFromPlayerID *int64 `json:"steal_from_player_id,omitempty"`
}

// TradeWithBankRequest is the request body for a four-to-one bank trade.
// Amounts default to the bank's 4:1 rate when omitted.
type TradeWithBankRequest struct {
	GiveResource string `json:"give_resource"`
	GiveAmount   int    `json:"give_amount,omitempty"`
	TakeResource string `json:"take_resource"`
	TakeAmount   int    `json:"take_amount,omitempty"`
}

// TradeWithPortRequest is the request body for trading through an owned port
type TradeWithPortRequest struct {
	VertexID     int    `json:"vertex_id"`
	GiveResource string `json:"give_resource"`
	GiveAmount   int    `json:"give_amount"`
	TakeResource string `json:"take_resource"`
	TakeAmount   int    `json:"take_amount,omitempty"`
}

// CreateTradeOfferRequest is the request body for posting a trade offer to
// the other seats
type CreateTradeOfferRequest struct {
	GiveResources map[string]int `json:"give_resources"`
	WantResources map[string]int `json:"want_resources"`
}

// AcceptTradeOfferRequest is the request body for accepting a pending offer
type AcceptTradeOfferRequest struct {
	TradeOfferID string `json:"trade_offer_id"`
}

// CardData carries the optional parameters of a played development card
type CardData struct {
	Resource1    string `json:"resource1,omitempty"`
	Resource2    string `json:"resource2,omitempty"`
	ResourceType string `json:"resource_type,omitempty"`
}

// PlayDevCardRequest is the request body for playing a development card.
// CardData is required for year_of_plenty and monopoly.
type PlayDevCardRequest struct {
	CardType string    `json:"card_type"`
	CardData *CardData `json:"card_data,omitempty"`
}

// InitialSetupActionRequest is the request body for a placement during the
// initial setup phase
type InitialSetupActionRequest struct {
	Action    string `json:"action"`
	VertexID  *int   `json:"vertex_id,omitempty"`
	Vertex1ID *int   `json:"vertex1_id,omitempty"`
	Vertex2ID *int   `json:"vertex2_id,omitempty"`
}
