package middleware

import (
	"github.com/gin-gonic/gin"
	initdata "github.com/telegram-mini-apps/init-data-golang"

	"ton-mini-app-backend/internal/common/logger"
)

const (
	InitDataHeader  = "X-Telegram-Init-Data"
	TelegramUserKey = "telegram_user"
)

// TelegramInitData parses Mini App init data when the client sends it and
// stores the Telegram user in the context. The signature is not checked, so
// the values are only used to fill profile fields the body left empty.
func TelegramInitData() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(InitDataHeader)
		if raw == "" {
			c.Next()
			return
		}

		parsed, err := initdata.Parse(raw)
		if err != nil {
			logger.Debug().Err(err).Str("request_id", getRequestID(c)).Msg("Ignoring malformed init data")
			c.Next()
			return
		}

		if parsed.User.ID != 0 {
			c.Set(TelegramUserKey, parsed.User)
		}
		c.Next()
	}
}

// TelegramUser returns the user stored by TelegramInitData, if any.
func TelegramUser(c *gin.Context) (initdata.User, bool) {
	v, exists := c.Get(TelegramUserKey)
	if !exists {
		return initdata.User{}, false
	}
	u, ok := v.(initdata.User)
	return u, ok
}
