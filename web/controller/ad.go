package controller

import (
	"net/http"
	"strconv"

	"ad-hub/web/middleware"
	"ad-hub/web/service"

	"github.com/gin-gonic/gin"
)

// AdController serves the ad CRUD routes and the comment routes nested
// under an ad.
type AdController struct {
	adService      *service.AdService
	commentService *service.CommentService
}

func NewAdController(g *gin.RouterGroup, tokenService *service.TokenService, adService *service.AdService, commentService *service.CommentService) *AdController {
	c := &AdController{
		adService:      adService,
		commentService: commentService,
	}

	auth := middleware.TokenRequired(tokenService)

	ads := g.Group("/ads")
	{
		ads.POST("/", auth, c.create)
		ads.GET("/", c.list)
		ads.PUT("/:id", auth, c.update)
		ads.DELETE("/:id", auth, c.delete)
		ads.POST("/:id/comments/", auth, c.addComment)
		ads.GET("/:id/comments/", c.listComments)
	}

	return c
}

type adCreateReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (a *AdController) create(c *gin.Context) {
	var req adCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	ad, err := a.adService.Create(c.Request.Context(), middleware.UserId(c), req.Title, req.Description)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ad)
}

func (a *AdController) list(c *gin.Context) {
	ads, err := a.adService.List(c.Request.Context())
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ads)
}

type adUpdateReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (a *AdController) update(c *gin.Context) {
	adId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	var req adUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	ad, err := a.adService.Update(c.Request.Context(), adId, middleware.UserId(c), req.Title, req.Description)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (a *AdController) delete(c *gin.Context) {
	adId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if err := a.adService.Delete(c.Request.Context(), adId, middleware.UserId(c)); err != nil {
		jsonError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type commentCreateReq struct {
	Text string `json:"text" binding:"required"`
}

func (a *AdController) addComment(c *gin.Context) {
	adId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	var req commentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	comment, err := a.commentService.Add(c.Request.Context(), adId, middleware.UserId(c), req.Text)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (a *AdController) listComments(c *gin.Context) {
	adId, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	comments, err := a.commentService.ListForAd(c.Request.Context(), adId)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
