package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hexforge/catan-go/internal/api/request"
	"github.com/hexforge/catan-go/internal/api/response"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/game"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	games game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(games game.ControllerInterface) *GameHandler {
	return &GameHandler{
		games: games,
	}
}

// Create handles POST /api/v1/games/
//
//	@Summary	Create a game in the waiting state
//	@Tags		games
//	@Accept		json
//	@Produce	json
//	@Param		game	body		request.CreateGameRequest	true	"Game to create"
//	@Success	201		{object}	response.Game
//	@Failure	422		{object}	apierr.ErrorResponse	"Invalid name or max_players"
//	@Router		/games/ [post]
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	if req.MaxPlayers == 0 {
		req.MaxPlayers = model.DefaultMaxPlayers
	}

	g, err := h.games.CreateGame(r.Context(), req.Name, req.MaxPlayers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{game_id}
//
//	@Summary	Fetch a game with its players and board state
//	@Tags		games
//	@Produce	json
//	@Param		game_id	path		int	true	"Game ID"
//	@Success	200		{object}	response.Game
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/games/{game_id} [get]
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.games.GetGame(r.Context(), model.GameID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// List handles GET /api/v1/games/
//
//	@Summary	List games
//	@Tags		games
//	@Produce	json
//	@Param		status_filter	query		string	false	"Filter by status"	Enums(waiting, in_progress, finished, abandoned)
//	@Param		skip			query		int		false	"Rows to skip"		default(0)
//	@Param		limit			query		int		false	"Maximum rows"		default(100)
//	@Success	200				{array}		response.Game
//	@Failure	422				{object}	apierr.ErrorResponse
//	@Router		/games/ [get]
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var status *model.GameStatus
	if raw := r.URL.Query().Get("status_filter"); raw != "" {
		parsed, err := model.ParseGameStatus(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		status = &parsed
	}

	games, err := h.games.ListGames(r.Context(), skip, limit, status)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// Update handles PATCH /api/v1/games/{game_id}
//
//	@Summary	Partially update a game
//	@Description	Updates name, status or current player. Status changes must
//	@Description	follow the lifecycle: waiting can start or be abandoned, a
//	@Description	game in progress can finish or be abandoned.
//	@Tags		games
//	@Accept		json
//	@Produce	json
//	@Param		game_id	path		int							true	"Game ID"
//	@Param		update	body		request.UpdateGameRequest	true	"Fields to change"
//	@Success	200		{object}	response.Game
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	409		{object}	apierr.ErrorResponse	"Illegal status transition"
//	@Failure	422		{object}	apierr.ErrorResponse	"Unknown status or malformed body"
//	@Router		/games/{game_id} [patch]
func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.UpdateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	params := game.UpdateParams{
		Name:            req.Name,
		CurrentPlayerID: req.CurrentPlayerID,
	}
	if req.Status != nil {
		parsed, err := model.ParseGameStatus(*req.Status)
		if err != nil {
			WriteError(w, err)
			return
		}
		params.Status = &parsed
	}

	g, err := h.games.UpdateGame(r.Context(), model.GameID(id), params)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// AddPlayer handles POST /api/v1/games/{game_id}/players/{player_id}
//
//	@Summary	Join a user to a waiting game
//	@Tags		games
//	@Produce	json
//	@Param		game_id		path		int	true	"Game ID"
//	@Param		player_id	path		int	true	"User ID to seat"
//	@Success	200			{object}	response.Game
//	@Failure	404			{object}	apierr.ErrorResponse	"Game or user missing"
//	@Failure	409			{object}	apierr.ErrorResponse	"Already joined or game full"
//	@Failure	422			{object}	apierr.ErrorResponse
//	@Router		/games/{game_id}/players/{player_id} [post]
func (h *GameHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathID(r, "game_id")
	if err != nil {
		WriteError(w, err)
		return
	}
	playerID, err := pathID(r, "player_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.games.AddPlayer(r.Context(), model.GameID(gameID), model.UserID(playerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}
