package middleware

import (
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if checkBrokenConnection(recovered) {
			log.Errorw("connection broken during request",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered)

		utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
		c.Abort()
	})
}

// checkBrokenConnection reports whether the panic came from writing to a
// closed connection, which is not worth a 500 response attempt.
func checkBrokenConnection(recovered interface{}) bool {
	netErr, ok := recovered.(*net.OpError)
	if !ok {
		return false
	}

	var sysErr *os.SyscallError
	if se, ok := netErr.Err.(*os.SyscallError); ok {
		sysErr = se
	}
	if sysErr == nil {
		return false
	}

	msg := strings.ToLower(sysErr.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
