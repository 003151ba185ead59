package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/app/services"
	"github.com/shashiranjanraj/goldenaura/pkg/bind"
	"github.com/shashiranjanraj/goldenaura/pkg/resource"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

type AuthController struct {
	auth  *services.AuthService
	users *repositories.UserRepository
}

func NewAuthController() *AuthController {
	return &AuthController{
		auth:  services.NewAuthService(),
		users: repositories.NewUserRepository(),
	}
}

type registerInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Mobile   string `json:"mobile"`
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in registerInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Register(in.Name, in.Email, in.Password, in.Mobile)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Created(w, map[string]interface{}{"token": token, "user": user})
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Login(in.Email, in.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{"token": token, "user": user})
}

// Me returns the authenticated user's record.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	user, err := c.users.FindByID(userID)
	if err != nil {
		response.Unauthorized(w)
		return
	}
	response.Success(w, user)
}

type changePasswordInput struct {
	Current string `json:"current_password" validate:"required"`
	New     string `json:"new_password" validate:"required,min=6"`
}

func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in changePasswordInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := c.auth.ChangePassword(userID, in.Current, in.New); err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, map[string]bool{"changed": true})
}

type profileInput struct {
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	AvatarURL string `json:"avatar_url" validate:"nullable,url"`
}

func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in profileInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.UpdateProfile(userID, in.Name, in.Mobile, in.AvatarURL)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, user)
}

// ── Addresses ────────────────────────────────────────────────────────────────

func (c *AuthController) Addresses(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	addrs, err := c.users.Addresses(userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if addrs == nil {
		addrs = []models.Address{}
	}
	response.Success(w, addrs)
}

type addressInput struct {
	Label      string `json:"label"`
	Name       string `json:"name" validate:"required"`
	Line1      string `json:"line1" validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

func (c *AuthController) AddAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var in addressInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	addr := models.Address{
		UserID:     userID,
		Label:      in.Label,
		Name:       in.Name,
		Line1:      in.Line1,
		Line2:      in.Line2,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Country:    in.Country,
		Phone:      in.Phone,
		IsDefault:  in.IsDefault,
	}
	if err := c.users.AddAddress(&addr); err != nil {
		respondError(w, r, err)
		return
	}
	response.Created(w, addr)
}

func (c *AuthController) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	addressID, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	affected, err := c.users.DeleteAddress(userID, addressID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if affected == 0 {
		response.NotFound(w)
		return
	}
	response.Success(w, map[string]bool{"deleted": true})
}

// ── Admin user management ────────────────────────────────────────────────────

// userResource shapes the admin user listing: account fields only, no
// addresses or timestamps beyond the signup date.
type userResource struct{ resource.Base }

func (userResource) ToArray(v interface{}) resource.Map {
	m, _ := v.(map[string]interface{})
	return resource.Map{
		"id":        m["ID"],
		"name":      m["name"],
		"email":     m["email"],
		"role":      m["role"],
		"blocked":   m["blocked"],
		"mobile":    m["mobile"],
		"joined_at": m["CreatedAt"],
	}
}

func (c *AuthController) IndexUsers(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page", 1)
	limit := intQuery(r, "limit", 20)

	users, pagination, err := c.users.All(page, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	resource.CollectionOf(&userResource{}, users).WithPagination(pagination).Respond(w)
}

type blockInput struct {
	Blocked bool `json:"blocked"`
}

func (c *AuthController) SetBlocked(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r, "id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in blockInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.SetBlocked(id, in.Blocked)
	if err != nil {
		respondError(w, r, err)
		return
	}
	response.Success(w, user)
}
