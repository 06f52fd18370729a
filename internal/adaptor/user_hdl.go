package adaptor

import (
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// FetchAll handles GET /auth/fetchAll
func (h *UserHandler) FetchAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.FetchAll(r.Context())
	if err != nil {
		h.log.Error("Failed to fetch users", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, users)
}
