package handlers

import (
	"errors"
	"net/http"
	"strings"

	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type signupRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Email     string `json:"email" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 on failure. Missing required fields come back field-keyed, the way
// clients expect to highlight individual inputs.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err, "requestId", c.GetString("requestId"))
		}
		c.JSON(http.StatusBadRequest, bindingErrorBody(err))
		return false
	}
	return true
}

// bindingErrorBody renders validator failures as {"errors": {field: msg}}
// and everything else (malformed JSON, wrong types) as {"error": msg}.
func bindingErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"error": err.Error()}
	}
	fields := gin.H{}
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = "this field is required"
	}
	return gin.H{"errors": fields}
}

// @Summary      Sign up
// @Description  Creates a user and issues its permanent token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   signupRequest  true  "Signup payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]interface{}
// @Router       /auth/signup [post]
func (h *Handler) signup(c *gin.Context) {
	var input signupRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	err := h.services.SignUp(service.SignupParams{
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("signup_failed", "username", input.Username, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}

// @Summary      Log in
// @Description  Accepts username+password or email+password; returns the stored token key.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body   loginRequest  true  "Login payload"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]interface{}
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.Login(input.Username, input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("login_failed", "username", input.Username, "email", input.Email, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
