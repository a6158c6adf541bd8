package adaptor

import (
	"net/http"

	"hall-booking/internal/usecase"
	"hall-booking/pkg/apperror"
	"hall-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User      *UserHandler
	Hall      *HallHandler
	Booking   *BookingHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:      NewUserHandler(service.User, log),
		Hall:      NewHallHandler(service.Hall, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}

// respondError maps an apperror kind to an HTTP response.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	kind := apperror.KindOf(err)

	if kind == apperror.KindInternal {
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("kind", kind.String()),
	)

	switch kind {
	case apperror.KindNotFound:
		utils.ResponseNotFound(w, err.Error())
	case apperror.KindValidation:
		utils.ResponseBadRequest(w, err.Error(), nil)
	case apperror.KindConflict:
		utils.ResponseConflict(w, err.Error())
	case apperror.KindForbidden:
		utils.ResponseForbidden(w, err.Error())
	case apperror.KindState:
		utils.ResponseUnprocessable(w, err.Error())
	default:
		utils.ResponseInternalError(w, "Internal server error")
	}
}
