package credential

import (
	"time"

	"github.com/livekit/protocol/auth"
)

var _TOKEN_EXPIRES_AFTER = time.Hour * 2

// TokenService mints join credentials for a named room. Every grant set
// allows join/publish/subscribe/publish-data, room admin only for hosts.
type TokenService struct {
	apiKey    string
	apiSecret string
}

func (s *TokenService) IssueToken(roomName, userID string, isHost bool) (string, error) {
	canPublish := true
	canSubscribe := true
	canPublishData := true

	grant := &auth.VideoGrant{
		RoomJoin:       true,
		Room:           roomName,
		RoomAdmin:      isHost,
		CanPublish:     &canPublish,
		CanSubscribe:   &canSubscribe,
		CanPublishData: &canPublishData,
	}

	token := auth.NewAccessToken(s.apiKey, s.apiSecret).
		AddGrant(grant).
		SetIdentity(userID).
		SetName(userID).
		SetValidFor(_TOKEN_EXPIRES_AFTER)

	return token.ToJWT()
}

func NewTokenService(apiKey, apiSecret string) *TokenService {
	return &TokenService{
		apiKey:    apiKey,
		apiSecret: apiSecret,
	}
}
