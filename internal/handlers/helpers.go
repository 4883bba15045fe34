package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SalesMasterPro/sales-api/internal/httperr"
	"github.com/SalesMasterPro/sales-api/internal/middleware"
	"github.com/SalesMasterPro/sales-api/internal/store"
	ucClient "github.com/SalesMasterPro/sales-api/internal/usecase/client"
)

// respondError traduz as falhas dos casos de uso para o formato HTTP.
// Erros de validação voltam 422, donos/ids inexistentes 404, loja não
// inicializada 503; o restante é erro interno genérico.
func respondError(c *gin.Context, err error) {
	var dup ucClient.DuplicateCodeError
	if errors.As(err, &dup) {
		httperr.Unprocessable(c, "duplicate_client_code",
			fmt.Sprintf("O código de cliente %d já está em uso por outro cliente.", dup.Code))
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		if strings.HasSuffix(be.Code, "_not_found") {
			httperr.NotFound(c, be.Code, msg)
			return
		}
		httperr.Unprocessable(c, be.Code, msg)
		return
	}

	if errors.Is(err, store.ErrNotInitialized) {
		httperr.Write(c, http.StatusServiceUnavailable, "store_not_ready", "store not initialized")
		return
	}

	httperr.Internal(c, "internal_error", "internal error")
}

func respondBadRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", err.Error())
}

func ownerID(c *gin.Context) string {
	return c.MustGet(middleware.ContextUserID).(string)
}
