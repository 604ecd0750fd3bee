package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Reserve(c *ginext.Context)
	GetBooking(c *ginext.Context)
	Approve(c *ginext.Context)
	Reject(c *ginext.Context)
	Cancel(c *ginext.Context)
	Complete(c *ginext.Context)
	ListPropertyBookings(c *ginext.Context)
	ListPropertyHolds(c *ginext.Context)
	ListRequesterBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.Reserve)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/approve", h.Approve)
		api.POST("/bookings/:id/reject", h.Reject)
		api.POST("/bookings/:id/cancel", h.Cancel)
		api.POST("/bookings/:id/complete", h.Complete)

		// Properties
		api.GET("/properties/:id/bookings", h.ListPropertyBookings)
		api.GET("/properties/:id/holds", h.ListPropertyHolds)

		// Requesters
		api.GET("/requesters/:id/bookings", h.ListRequesterBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
