package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storecore/backend/internal/domain/channel"
	"github.com/storecore/backend/internal/domain/shared"
)

// ChannelTokenHeader carries the channel token on storefront requests
const ChannelTokenHeader = "X-Channel-Token"

// channelIDKey is the gin context key for the resolved channel ID
const channelIDKey = "channel_id"

// ChannelToken resolves the X-Channel-Token header to a channel and stores
// its ID in the request context. Requests without a token pass through
// unchanged; handlers that need a channel fall back to explicit parameters.
func ChannelToken(channelRepo channel.ChannelRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(ChannelTokenHeader)
		if token == "" {
			c.Next()
			return
		}

		ch, err := channelRepo.FindByToken(c.Request.Context(), token)
		if err != nil {
			status := http.StatusInternalServerError
			if err == shared.ErrNotFound {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "CHANNEL_TOKEN_INVALID",
					"message": "The provided channel token is not valid",
				},
			})
			return
		}

		c.Set(channelIDKey, ch.ID)
		c.Next()
	}
}

// GetChannelID returns the channel ID resolved from the request's channel
// token, if any
func GetChannelID(c *gin.Context) (uuid.UUID, bool) {
	value, ok := c.Get(channelIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
