package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eventhenoob/betay-server/internal/betay"
)

// Subscribe handles POST /newsLetter
// @Summary Register a newsletter subscriber
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body rest.SubscribeRequest true "Subscriber email"
// @Success 201 {object} rest.MessageResponse
// @Failure 400,500 {object} rest.MessageResponse
// @Router /newsLetter [post]
func (h *NewsHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid email provided")
	}

	err := h.uc.Subscribe(c.Request().Context(), req.Email)
	switch {
	case err == nil:
		return c.JSON(http.StatusCreated, MessageResponse{Message: "subscription created successfully"})
	case isValidationError(err):
		return h.handleError(c, err, http.StatusBadRequest, validationMessage(err))
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "something went wrong")
	}
}

// ContactMail handles POST /mail
// @Summary Relay a contact-form message
// @Tags mail
// @Accept json
// @Produce json
// @Param request body rest.ContactMailRequest true "Contact message"
// @Success 200 {object} rest.MessageResponse
// @Failure 400,500 {object} rest.MessageResponse
// @Router /mail [post]
func (h *NewsHandler) ContactMail(c echo.Context) error {
	var req ContactMailRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "please provide all the required fields")
	}

	err := h.uc.SendContactMail(c.Request().Context(), req.Name, req.Email, req.Message)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, MessageResponse{Message: "mail sent successfully"})
	case isValidationError(err):
		return h.handleError(c, err, http.StatusBadRequest, validationMessage(err))
	default:
		return h.handleError(c, err, http.StatusInternalServerError, "something went wrong")
	}
}

// isValidationError reports whether err belongs to the client-caused
// validation taxonomy, as opposed to a collaborator fault.
func isValidationError(err error) bool {
	return errors.Is(err, betay.ErrMissingFields) ||
		errors.Is(err, betay.ErrInvalidKey) ||
		errors.Is(err, betay.ErrInvalidEmail) ||
		errors.Is(err, betay.ErrEmailExists)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, betay.ErrMissingFields):
		return "please provide all the required fields"
	case errors.Is(err, betay.ErrInvalidKey):
		return "invalid key"
	case errors.Is(err, betay.ErrInvalidEmail):
		return "invalid email provided"
	case errors.Is(err, betay.ErrEmailExists):
		return "email already exists"
	default:
		return "invalid request"
	}
}
