package controllers

import (
	"campusrent/dto"
	"campusrent/middleware"
	"campusrent/models"
	"campusrent/response"
	"campusrent/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	facade *services.BookingFacade
	images *services.ImageResolver
}

func NewBookingController(facade *services.BookingFacade, images *services.ImageResolver) *BookingController {
	return &BookingController{facade: facade, images: images}
}

func (ctl *BookingController) Quote(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	quote, err := ctl.facade.Quote(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, quote)
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	booking, err := ctl.facade.CreateBooking(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Created(c, ctl.withURLs(*booking))
}

func (ctl *BookingController) GetUserBookings(c *gin.Context) {
	buckets, err := ctl.facade.UserBookings(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.FromError(c, err, buckets)
		return
	}
	for i := range buckets.Upcoming {
		buckets.Upcoming[i] = ctl.withURLs(buckets.Upcoming[i])
	}
	for i := range buckets.Past {
		buckets.Past[i] = ctl.withURLs(buckets.Past[i])
	}
	response.SuccessWithTotal(c, buckets, buckets.Len())
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	booking, err := ctl.facade.CancelBooking(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, ctl.withURLs(*booking))
}

func (ctl *BookingController) CompleteBooking(c *gin.Context) {
	booking, err := ctl.facade.CompleteBooking(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err, nil)
		return
	}
	response.Success(c, ctl.withURLs(*booking))
}

func (ctl *BookingController) withURLs(b models.Booking) models.Booking {
	b.ItemImages = ctl.images.ResolveAll(b.ItemImages)
	return b
}
