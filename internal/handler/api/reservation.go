package api

import (
	"errors"
	"net/http"

	"salon-site/internal/domain/reservation"
	reqdto "salon-site/internal/handler/dto/request"
	resdto "salon-site/internal/handler/dto/response"
	"salon-site/internal/handler/httperr"
	"salon-site/internal/usecase/commands"
	"salon-site/internal/usecase/queries"
	"salon-site/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Create a reservation from the LINE mini-app intake form
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr,
			httperr.CodeValidationError, "Invalid request format", bindingFieldErrors(bindErr)...)
		return
	}

	result, err := h.reservationCommands.CreateReservation(c.Request.Context(), req)
	if err != nil {
		if fe, ok := reservationFieldError(err); ok {
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				httperr.CodeValidationError, fe.Message, fe)
			return
		}
		abortWithStoreError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+result.ID.String())
	httperr.JSON(c, http.StatusCreated, resdto.CreatedResponse{ID: result.ID})
}

// @Summary List reservations for a LINE user
// @Tags reservations
// @Produce json
// @Param lineUserId query string true "LINE user id"
// @Success 200 {object} httperr.Response
// @Failure 400 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) ListByLineUser(c *gin.Context) {
	lineUserID := c.Query("lineUserId")
	if lineUserID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, reservation.ErrEmptyLineUserID,
			httperr.CodeValidationError, "lineUserId is required",
			httperr.FieldError{Field: "lineUserId", Message: "required"})
		return
	}

	views, err := h.reservationQueries.ListByLineUser(c.Request.Context(), lineUserID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	responses := make([]*resdto.ReservationResponse, len(views))
	for i, rm := range views {
		responses[i] = resdto.FromReservationView(rm)
	}
	httperr.JSON(c, http.StatusOK, responses)
}

// reservationFieldError maps domain validation failures to their
// field-keyed description.
func reservationFieldError(err error) (httperr.FieldError, bool) {
	switch {
	case errors.Is(err, reservation.ErrEmptyLineUserID):
		return httperr.FieldError{Field: "lineUserId", Message: "lineUserId is required"}, true
	case errors.Is(err, reservation.ErrEmptyMenu):
		return httperr.FieldError{Field: "menu", Message: "menu is required"}, true
	case errors.Is(err, reservation.ErrInvalidReservedAt):
		return httperr.FieldError{Field: "reservedAt", Message: "reservedAt must be a valid date/time"}, true
	case errors.Is(err, reservation.ErrInvalidPhone):
		return httperr.FieldError{Field: "phone", Message: "phone must be 10-11 digits"}, true
	default:
		return httperr.FieldError{}, false
	}
}

// abortWithStoreError is the single mapping point from store outcomes
// to the response contract. Raw store detail never reaches the client.
func abortWithStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, shared.ErrStoreNotConfigured):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeConfigurationError, "Server configuration error: datastore is not configured")
	case errors.Is(err, shared.ErrSchemaNotApplied):
		httperr.AbortWithError(c, http.StatusInternalServerError, err,
			httperr.CodeConfigurationError, "Server configuration error: datastore schema is not applied")
	default:
		httperr.InternalError(c, err)
	}
}
