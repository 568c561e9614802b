package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hexforge/catan-go/internal/api/request"
	"github.com/hexforge/catan-go/internal/api/response"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/catan"
)

// CatanHandler handles the in-game action endpoints
type CatanHandler struct {
	catan catan.ControllerInterface
}

// NewCatanHandler creates a new catan handler
func NewCatanHandler(ctrl catan.ControllerInterface) *CatanHandler {
	return &CatanHandler{
		catan: ctrl,
	}
}

// Start handles POST /api/v1/catan/start
//
//	@Summary	Deal the board and start play
//	@Description	Requires a waiting game with at least two joined players.
//	@Description	Empty seats up to four are filled with bots.
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		start	body		request.StartGameRequest	true	"Game to start"
//	@Success	200		{object}	response.StartGameResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Not waiting or not enough players"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/start [post]
func (h *CatanHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	g, err := h.catan.StartGame(r.Context(), model.GameID(req.GameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StartGameResponse{
		Success:   true,
		Message:   "Game started",
		GameState: g.State,
	})
}

// State handles GET /api/v1/catan/{game_id}/state
//
//	@Summary	Fetch the live board state
//	@Tags		catan
//	@Produce	json
//	@Param		game_id	path		int	true	"Game ID"
//	@Success	200		{object}	response.GameStateResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Game not started"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/state [get]
func (h *CatanHandler) State(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := h.catan.GetState(r.Context(), model.GameID(gameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.GameStateResponse{
		GameState:       info.Game.State,
		CurrentPlayerID: int64(info.CurrentSeat),
		Phase:           string(info.Game.State.Phase),
	}
	if info.Winner != nil {
		winner := int64(*info.Winner)
		resp.Winner = &winner
	}
	response.JSON(w, http.StatusOK, resp)
}

// RollDice handles POST /api/v1/catan/{game_id}/roll-dice
//
//	@Summary	Roll the dice for the current player
//	@Description	A seven makes every player with more than seven cards
//	@Description	discard half; any other roll pays out adjacent hexes.
//	@Tags		catan
//	@Produce	json
//	@Param		game_id	path		int	true	"Game ID"
//	@Success	200		{object}	response.DiceRollResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Wrong status or phase"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/roll-dice [post]
func (h *CatanHandler) RollDice(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.catan.RollDice(r.Context(), model.GameID(gameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DiceRollResponse{
		DiceRoll:  result.Roll,
		GameState: result.Game.State,
	})
}

// BuildSettlement handles POST /api/v1/catan/{game_id}/build-settlement
//
//	@Summary	Build a settlement on a vertex
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int								true	"Game ID"
//	@Param		build	body		request.BuildSettlementRequest	true	"Vertex to build on"
//	@Success	200		{object}	response.BuildResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/build-settlement [post]
func (h *CatanHandler) BuildSettlement(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.BuildSettlementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	result, err := h.catan.BuildSettlement(r.Context(), model.GameID(gameID), model.VertexID(req.VertexID))
	if err != nil {
		WriteError(w, err)
		return
	}

	writeBuildResponse(w, "Settlement built", result)
}

// BuildCity handles POST /api/v1/catan/{game_id}/build-city
//
//	@Summary	Upgrade an owned settlement to a city
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int						true	"Game ID"
//	@Param		build	body		request.BuildCityRequest	true	"Vertex to upgrade"
//	@Success	200		{object}	response.BuildResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/build-city [post]
func (h *CatanHandler) BuildCity(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.BuildCityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	result, err := h.catan.BuildCity(r.Context(), model.GameID(gameID), model.VertexID(req.VertexID))
	if err != nil {
		WriteError(w, err)
		return
	}

	writeBuildResponse(w, "City built", result)
}

// BuildRoad handles POST /api/v1/catan/{game_id}/build-road
//
//	@Summary	Build a road between two adjacent vertices
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int						true	"Game ID"
//	@Param		build	body		request.BuildRoadRequest	true	"Edge endpoints"
//	@Success	200		{object}	response.BuildResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/build-road [post]
func (h *CatanHandler) BuildRoad(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.BuildRoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	result, err := h.catan.BuildRoad(r.Context(), model.GameID(gameID),
		model.VertexID(req.Vertex1ID), model.VertexID(req.Vertex2ID))
	if err != nil {
		WriteError(w, err)
		return
	}

	writeBuildResponse(w, "Road built", result)
}

// InitialSetup handles POST /api/v1/catan/{game_id}/initial-setup
//
//	@Summary	Place a free settlement or road during initial setup
//	@Description	Setup runs in snake order: each seat places one settlement
//	@Description	and one road per round, and the second settlement pays out
//	@Description	its adjacent hexes.
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int								true	"Game ID"
//	@Param		action	body		request.InitialSetupActionRequest	true	"Placement"
//	@Success	200		{object}	response.InitialSetupActionResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation or wrong phase"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/initial-setup [post]
func (h *CatanHandler) InitialSetup(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.InitialSetupActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	var vertexID, v1, v2 model.VertexID
	switch req.Action {
	case "place_settlement":
		if req.VertexID == nil {
			WriteError(w, NewValidationError("vertex_id is required for place_settlement"))
			return
		}
		vertexID = model.VertexID(*req.VertexID)
	case "place_road":
		if req.Vertex1ID == nil || req.Vertex2ID == nil {
			WriteError(w, NewValidationError("vertex1_id and vertex2_id are required for place_road"))
			return
		}
		v1 = model.VertexID(*req.Vertex1ID)
		v2 = model.VertexID(*req.Vertex2ID)
	}

	result, err := h.catan.PlaceSetup(r.Context(), model.GameID(gameID), req.Action, vertexID, v1, v2)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.InitialSetupActionResponse{
		Success:    true,
		Message:    fmt.Sprintf("Setup action %s applied", req.Action),
		GameState:  result.Game.State,
		SetupPhase: result.Game.State.Setup,
	})
}

// EndTurn handles POST /api/v1/catan/{game_id}/end-turn
//
//	@Summary	Pass the turn to the next seat
//	@Description	Bot seats take their turns automatically before control
//	@Description	returns to a human player.
//	@Tags		catan
//	@Produce	json
//	@Param		game_id	path		int	true	"Game ID"
//	@Success	200		{object}	response.EndTurnResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/end-turn [post]
func (h *CatanHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.catan.EndTurn(r.Context(), model.GameID(gameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EndTurnResponse{
		Success:         true,
		Message:         "Turn passed to the next player",
		CurrentPlayerID: int64(result.CurrentSeat),
		GameState:       result.Game.State,
	})
}

// MoveRobber handles POST /api/v1/catan/{game_id}/move-robber
//
//	@Summary	Move the robber and optionally steal a card
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int						true	"Game ID"
//	@Param		move	body		request.MoveRobberRequest	true	"Target hex and victim"
//	@Success	200		{object}	response.MoveRobberResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/move-robber [post]
func (h *CatanHandler) MoveRobber(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.MoveRobberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	var stealFrom *model.SeatID
	if req.StealFromPlayerID != nil {
		seat := model.SeatID(*req.StealFromPlayerID)
		stealFrom = &seat
	}

	result, err := h.catan.MoveRobber(r.Context(), model.GameID(gameID), req.HexIndex, stealFrom)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.MoveRobberResponse{
		Success:     true,
		Message:     "Robber moved",
		NewLocation: result.NewLocation,
		GameState:   result.Game.State,
	}
	if result.Stolen != "" {
		stolen := string(result.Stolen)
		resp.StolenResource = &stolen
		resp.Message = fmt.Sprintf("Robber moved, stole 1 %s", stolen)
	}
	response.JSON(w, http.StatusOK, resp)
}

// TradeBank handles POST /api/v1/catan/{game_id}/trade-bank
//
//	@Summary	Trade four of one resource to the bank for one of another
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int							true	"Game ID"
//	@Param		trade	body		request.TradeWithBankRequest	true	"Trade terms"
//	@Success	200		{object}	response.TradeResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/trade-bank [post]
func (h *CatanHandler) TradeBank(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.TradeWithBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}
	if req.GiveAmount == 0 {
		req.GiveAmount = 4
	}
	if req.TakeAmount == 0 {
		req.TakeAmount = 1
	}

	give, ok := model.ParseResource(req.GiveResource)
	if !ok {
		WriteError(w, NewValidationError(fmt.Sprintf("unknown resource %q", req.GiveResource)))
		return
	}
	take, ok := model.ParseResource(req.TakeResource)
	if !ok {
		WriteError(w, NewValidationError(fmt.Sprintf("unknown resource %q", req.TakeResource)))
		return
	}

	result, err := h.catan.TradeBank(r.Context(), model.GameID(gameID), give, req.GiveAmount, take, req.TakeAmount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TradeResponse{
		Success:   true,
		Message:   fmt.Sprintf("Traded %d %s for %d %s", req.GiveAmount, give, req.TakeAmount, take),
		Resources: result.Resources,
		GameState: result.Game.State,
	})
}

// TradePort handles POST /api/v1/catan/{game_id}/trade-port
//
//	@Summary	Trade through a port the player has built on
//	@Description	Generic ports take three of one resource for one of
//	@Description	another; resource ports take two of their resource.
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int							true	"Game ID"
//	@Param		trade	body		request.TradeWithPortRequest	true	"Trade terms"
//	@Success	200		{object}	response.TradeResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/trade-port [post]
func (h *CatanHandler) TradePort(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.TradeWithPortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}
	if req.TakeAmount == 0 {
		req.TakeAmount = 1
	}

	give, ok := model.ParseResource(req.GiveResource)
	if !ok {
		WriteError(w, NewValidationError(fmt.Sprintf("unknown resource %q", req.GiveResource)))
		return
	}
	take, ok := model.ParseResource(req.TakeResource)
	if !ok {
		WriteError(w, NewValidationError(fmt.Sprintf("unknown resource %q", req.TakeResource)))
		return
	}

	result, err := h.catan.TradePort(r.Context(), model.GameID(gameID),
		model.VertexID(req.VertexID), give, req.GiveAmount, take, req.TakeAmount)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TradeResponse{
		Success:   true,
		Message:   fmt.Sprintf("Traded %d %s for %d %s at the port", req.GiveAmount, give, req.TakeAmount, take),
		Resources: result.Resources,
		GameState: result.Game.State,
	})
}

// CreateTradeOffer handles POST /api/v1/catan/{game_id}/create-trade-offer
//
//	@Summary	Post a trade offer to the other players
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int								true	"Game ID"
//	@Param		offer	body		request.CreateTradeOfferRequest	true	"Offered and wanted resources"
//	@Success	200		{object}	response.TradeOfferResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/create-trade-offer [post]
func (h *CatanHandler) CreateTradeOffer(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.CreateTradeOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	give, err := resourceSetFromWire(req.GiveResources)
	if err != nil {
		WriteError(w, err)
		return
	}
	want, err := resourceSetFromWire(req.WantResources)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.catan.CreateTradeOffer(r.Context(), model.GameID(gameID), give, want)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TradeOfferResponse{
		Success:    true,
		Message:    "Trade offer posted",
		TradeOffer: &result.Offer,
		GameState:  result.Game.State,
	})
}

// AcceptTradeOffer handles POST /api/v1/catan/{game_id}/accept-trade-offer
//
//	@Summary	Accept a pending trade offer as the current player
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int								true	"Game ID"
//	@Param		accept	body		request.AcceptTradeOfferRequest	true	"Offer to accept"
//	@Success	200		{object}	response.TradeResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/accept-trade-offer [post]
func (h *CatanHandler) AcceptTradeOffer(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AcceptTradeOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}
	if req.TradeOfferID == "" {
		WriteError(w, NewValidationError("trade_offer_id is required"))
		return
	}

	result, err := h.catan.AcceptTradeOffer(r.Context(), model.GameID(gameID), req.TradeOfferID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TradeResponse{
		Success:   true,
		Message:   "Trade offer accepted",
		Resources: result.Resources,
		GameState: result.Game.State,
	})
}

// BuyDevCard handles POST /api/v1/catan/{game_id}/buy-dev-card
//
//	@Summary	Buy the top card of the development deck
//	@Description	Victory point cards are revealed immediately; other cards
//	@Description	stay hidden until played.
//	@Tags		catan
//	@Produce	json
//	@Param		game_id	path		int	true	"Game ID"
//	@Success	200		{object}	response.BuyDevCardResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation or empty deck"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/buy-dev-card [post]
func (h *CatanHandler) BuyDevCard(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.catan.BuyDevCard(r.Context(), model.GameID(gameID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BuyDevCardResponse{
		Success:   true,
		Message:   "Development card purchased",
		Card:      string(result.Card),
		Revealed:  result.Revealed,
		Resources: result.Resources,
		GameState: result.Game.State,
	})
}

// PlayDevCard handles POST /api/v1/catan/{game_id}/play-dev-card
//
//	@Summary	Play a development card from the current player's hand
//	@Tags		catan
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int							true	"Game ID"
//	@Param		play	body		request.PlayDevCardRequest	true	"Card and its parameters"
//	@Success	200		{object}	response.PlayDevCardResponse
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Rule violation"
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/catan/{game_id}/play-dev-card [post]
func (h *CatanHandler) PlayDevCard(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.PlayDevCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	card, ok := model.ParseDevCard(req.CardType)
	if !ok {
		WriteError(w, NewValidationError(fmt.Sprintf("unknown development card %q", req.CardType)))
		return
	}

	var data catan.CardData
	if req.CardData != nil {
		if data.Resource1, err = optionalResource(req.CardData.Resource1); err != nil {
			WriteError(w, err)
			return
		}
		if data.Resource2, err = optionalResource(req.CardData.Resource2); err != nil {
			WriteError(w, err)
			return
		}
		if data.ResourceType, err = optionalResource(req.CardData.ResourceType); err != nil {
			WriteError(w, err)
			return
		}
	}

	info, err := h.catan.PlayDevCard(r.Context(), model.GameID(gameID), card, data)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayDevCardResponse{
		Success:   true,
		Message:   fmt.Sprintf("Played %s", card),
		GameState: info.Game.State,
	})
}

// writeBuildResponse writes the shared build action response
func writeBuildResponse(w http.ResponseWriter, message string, result *catan.BuildResult) {
	response.JSON(w, http.StatusOK, response.BuildResponse{
		Success:       true,
		Message:       message,
		Resources:     result.Resources,
		VictoryPoints: result.VictoryPoints,
		GameState:     result.Game.State,
	})
}

// optionalResource parses a resource name, allowing empty
func optionalResource(name string) (model.Resource, error) {
	if name == "" {
		return "", nil
	}
	res, ok := model.ParseResource(name)
	if !ok {
		return "", NewValidationError(fmt.Sprintf("unknown resource %q", name))
	}
	return res, nil
}
