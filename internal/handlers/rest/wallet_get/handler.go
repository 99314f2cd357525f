package wallet_get

import (
	"net/http"
	"strconv"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/convert"
	"fulfillment/internal/handlers/rest/response"
	"fulfillment/internal/pkg/apperr"
	"fulfillment/internal/pkg/middlewares/auth"

	"github.com/gorilla/mux"
)

var ErrWalletForbidden = apperr.Forbidden("wallet kind does not match caller role")

// Handler выписка по своему кошельку. Оператор может прочитать любой кошелек через owner_id.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.CallerFrom(r.Context())
	if !ok {
		response.Unauthorized(w, h.log)
		return
	}

	kind := entities.WalletKind(strings.ToUpper(mux.Vars(r)["kind"]))
	key := entities.WalletKey{OwnerID: caller.ID, Kind: kind}

	switch {
	case caller.Is(entities.RoleOperator):
		if ownerID := r.URL.Query().Get("owner_id"); ownerID != "" {
			key.OwnerID = ownerID
		}
	case kind.Valid() && !caller.Is(kind.HolderRole()):
		response.Error(w, h.log, ErrWalletForbidden)
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.BadRequest(w, h.log, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	statement, err := h.service.GetWallet(r.Context(), key, limit)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.FromStatement(*statement))
}
