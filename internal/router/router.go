package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RegisterUser(c *ginext.Context)
	Login(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	GetEvent(c *ginext.Context)
	ListEvents(c *ginext.Context)
	TransitionEventStatus(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	ListEventRegistrations(c *ginext.Context)
	ListUserRegistrations(c *ginext.Context)
	AddComment(c *ginext.Context)
	ListComments(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	ListCategories(c *ginext.Context)
	CreateLocation(c *ginext.Context)
	ListLocations(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.RegisterUser)
		api.POST("/auth/login", h.Login)

		// Events
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.POST("/events/:id/status", h.TransitionEventStatus)

		// Registrations
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/cancel", h.CancelRegistration)
		api.GET("/events/:id/registrations", h.ListEventRegistrations)
		api.GET("/users/:id/registrations", h.ListUserRegistrations)

		// Comments
		api.POST("/events/:id/comments", h.AddComment)
		api.GET("/events/:id/comments", h.ListComments)

		// Reference data
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
		api.POST("/locations", h.CreateLocation)
		api.GET("/locations", h.ListLocations)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
