package service

import (
	"errors"

	"github.com/romashorodok/meeting-authority/internal/credential"
	"github.com/romashorodok/meeting-authority/internal/roomctl"
	"github.com/romashorodok/meeting-authority/pkg/variables"
	"go.uber.org/fx"
)

var ErrMissingLiveKitKeys = errors.New("LIVEKIT_API_KEY and LIVEKIT_API_SECRET must be set")

func liveKitKeyPair() (apiKey, apiSecret string, err error) {
	apiKey = variables.Env(variables.LIVEKIT_API_KEY_NAME, "")
	apiSecret = variables.Env(variables.LIVEKIT_API_SECRET_NAME, "")
	if apiKey == "" || apiSecret == "" {
		return "", "", ErrMissingLiveKitKeys
	}
	return apiKey, apiSecret, nil
}

func liveKitTokenService() (*credential.TokenService, error) {
	apiKey, apiSecret, err := liveKitKeyPair()
	if err != nil {
		return nil, err
	}
	return credential.NewTokenService(apiKey, apiSecret), nil
}

func liveKitRoomClient() (*roomctl.Client, error) {
	apiKey, apiSecret, err := liveKitKeyPair()
	if err != nil {
		return nil, err
	}
	url := variables.Env(variables.LIVEKIT_URL_NAME, variables.LIVEKIT_URL_DEFAULT)
	return roomctl.NewClient(url, apiKey, apiSecret), nil
}

var LiveKitModule = fx.Module("livekit", fx.Provide(
	liveKitTokenService,
	liveKitRoomClient,
))
