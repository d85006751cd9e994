package roomctl

import (
	"context"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
)

// Client drives the SFU room lifecycle. Rooms are auto-created by the SFU
// on first join, so only teardown goes through here.
type Client struct {
	roomService *lksdk.RoomServiceClient
}

func (c *Client) DeleteRoom(ctx context.Context, roomName string) error {
	_, err := c.roomService.DeleteRoom(ctx, &livekit.DeleteRoomRequest{
		Room: roomName,
	})
	return err
}

func NewClient(url, apiKey, apiSecret string) *Client {
	return &Client{
		roomService: lksdk.NewRoomServiceClient(url, apiKey, apiSecret),
	}
}
