package middleware

import (
	"crypto/subtle"
	"net/http"

	"salon-site/internal/handler/httperr"
	"salon-site/internal/pkg/config"
	"salon-site/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type SetupKeyMiddleware struct {
	cfg config.SetupConfig
}

func NewSetupKeyMiddleware(cfg config.Config) *SetupKeyMiddleware {
	return &SetupKeyMiddleware{cfg: cfg.Setup}
}

// RequireSetupKey gates site provisioning behind the shared setup key.
// キー未設定の環境（ローカル開発）ではゲートしない。
func (m *SetupKeyMiddleware) RequireSetupKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.AccessKey == "" {
			c.Next()
			return
		}

		provided := c.GetHeader("X-Setup-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.cfg.AccessKey)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("invalid setup key"), httperr.CodeUnauthorized, "Invalid setup key")
			return
		}

		c.Next()
	}
}
