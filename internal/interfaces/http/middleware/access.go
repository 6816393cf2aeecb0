package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tavolo/internal/domain/access"
	"tavolo/internal/shared/constants"
	"tavolo/internal/shared/logger"
	"tavolo/internal/shared/utils"
)

// AccessMiddleware runs the access engine on every request. Denials return a
// 403 with the gate's payload as the raw body; storefront clients key off the
// payload fields, so it is not wrapped in the standard response envelope.
type AccessMiddleware struct {
	engine *access.Engine
	logger logger.Interface
}

func NewAccessMiddleware(engine *access.Engine, logger logger.Interface) *AccessMiddleware {
	return &AccessMiddleware{
		engine: engine,
		logger: logger,
	}
}

func (m *AccessMiddleware) Evaluate() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := access.Request{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Params:    routeParams(c),
			Principal: PrincipalFromContext(c),
		}

		evaluation, err := m.engine.Evaluate(c.Request.Context(), req)
		if err != nil {
			m.logger.Errorw("access evaluation failed",
				"method", req.Method,
				"path", req.Path,
				"error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}

		if !evaluation.Decision.Allowed {
			m.logger.Infow("request denied",
				"method", req.Method,
				"path", req.Path,
				"capability", evaluation.Capability.String(),
				"tenant_id", evaluation.TenantID)
			c.JSON(http.StatusForbidden, evaluation.Decision.Payload)
			c.Abort()
			return
		}

		if evaluation.Capability.IsRestricted() {
			c.Set(constants.ContextKeyCapability, evaluation.Capability)
			c.Set(constants.ContextKeyTenantID, evaluation.TenantID)
		}

		c.Next()
	}
}

func routeParams(c *gin.Context) map[string]string {
	if len(c.Params) == 0 {
		return nil
	}
	params := make(map[string]string, len(c.Params))
	for _, param := range c.Params {
		params[param.Key] = param.Value
	}
	return params
}
