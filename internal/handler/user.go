package handler

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/habit-tracker/internal/config"
	"github.com/iliyamo/habit-tracker/internal/repository"
)

// UserHandler serves the user administration endpoints.
type UserHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u}
}

type adminCreateUserReq struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // MEMBER | ADMIN
}

type userResp struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// CreateByAdmin creates a user with an explicit role.  Only admins
// reach this handler (enforced in routing).
func (h *UserHandler) CreateByAdmin(c echo.Context) error {
	var req adminCreateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/email/password required"})
	}
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role != RoleAdmin && role != RoleMember {
		role = RoleMember
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Username, req.FullName, req.Email, req.Password, role, h.Cfg.BcryptCost)
	if err != nil {
		switch err {
		case repository.ErrEmailExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		case repository.ErrUsernameExists:
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, userResp{
		ID: uid, Username: req.Username, FullName: req.FullName, Email: req.Email, Role: role,
	})
}

// List returns users with paging.  Admin only.
func (h *UserHandler) List(c echo.Context) error {
	offset, limit := paging(c, 100)

	ctx, cancel := reqContext(c)
	defer cancel()

	users, err := h.Users.List(ctx, offset, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, userResp{ID: u.ID, Username: u.Username, FullName: u.FullName, Email: u.Email, Role: u.Role})
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one user by id.  Members can only fetch themselves.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if currentRole(c) != RoleAdmin && currentUserID(c) != id {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, userResp{ID: u.ID, Username: u.Username, FullName: u.FullName, Email: u.Email, Role: u.Role})
}

// Delete removes a user.  Allowed for admins and for the account
// owner.  The last remaining admin cannot delete themselves; the
// system must always keep at least one admin.  Habits and logs
// cascade with the user row.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	isAdmin := currentRole(c) == RoleAdmin
	isOwner := currentUserID(c) == id
	if !isAdmin && !isOwner {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if target.Role == RoleAdmin {
		admins, err := h.Users.CountByRole(ctx, RoleAdmin)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		if admins <= 1 {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "cannot delete the last admin"})
		}
	}

	if err := h.Users.Delete(ctx, id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted", "user_id": id})
}

// paging reads skip/limit query parameters with a default page size.
func paging(c echo.Context, defLimit int) (offset, limit int) {
	offset, _ = strconv.Atoi(c.QueryParam("skip"))
	if offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = defLimit
	}
	return offset, limit
}
