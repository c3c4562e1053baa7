// Package controller provides the HTTP request handlers of the ad-hub
// backend: registration, token issuing, ads and comments.
package controller

import (
	"net/http"

	"ad-hub/web/entity"
	"ad-hub/web/service"

	"github.com/gin-gonic/gin"
)

// UserController serves registration and token issuing.
type UserController struct {
	userService  *service.UserService
	tokenService *service.TokenService
}

func NewUserController(g *gin.RouterGroup, userService *service.UserService, tokenService *service.TokenService) *UserController {
	c := &UserController{
		userService:  userService,
		tokenService: tokenService,
	}
	g.POST("/register", c.register)
	g.POST("/token", c.token)
	return c
}

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (a *UserController) register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	user, err := a.userService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// token exchanges form credentials for a bearer token. Unknown email and
// wrong password are deliberately the same 401.
func (a *UserController) token(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user := a.userService.Authenticate(c.Request.Context(), username, password)
	if user == nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
		return
	}

	token, err := a.tokenService.Issue(user.Id)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
