package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hexforge/catan-go/internal/api/request"
	"github.com/hexforge/catan-go/internal/api/response"
	"github.com/hexforge/catan-go/internal/model"
	"github.com/hexforge/catan-go/internal/services/user"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	users user.ControllerInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(users user.ControllerInterface) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// Create handles POST /api/v1/users/
//
//	@Summary	Register a new user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		request.CreateUserRequest	true	"User to create"
//	@Success	201		{object}	response.User
//	@Failure	409		{object}	apierr.ErrorResponse	"Username or email already registered"
//	@Failure	422		{object}	apierr.ErrorResponse	"Malformed body or invalid fields"
//	@Router		/users/ [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewValidationError("invalid request body"))
		return
	}

	u, err := h.users.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.UserFromModel(u))
}

// Get handles GET /api/v1/users/{user_id}
//
//	@Summary	Fetch a user by ID
//	@Tags		users
//	@Produce	json
//	@Param		user_id	path		int	true	"User ID"
//	@Success	200		{object}	response.User
//	@Failure	404		{object}	apierr.ErrorResponse
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/users/{user_id} [get]
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	u, err := h.users.GetUser(r.Context(), model.UserID(id))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(u))
}

// List handles GET /api/v1/users/
//
//	@Summary	List users
//	@Tags		users
//	@Produce	json
//	@Param		skip	query		int	false	"Rows to skip"		default(0)
//	@Param		limit	query		int	false	"Maximum rows"		default(100)
//	@Success	200		{array}		response.User
//	@Failure	422		{object}	apierr.ErrorResponse
//	@Router		/users/ [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	users, err := h.users.ListUsers(r.Context(), skip, limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UsersFromModel(users))
}
