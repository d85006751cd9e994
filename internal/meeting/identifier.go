package meeting

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordAlphabet = "0123456789"

	codeGroups    = 3
	codeGroupSize = 3
	passwordSize  = 6
	roomEntropy   = 8
)

// Identifiers is everything a new meeting needs: the shareable code, the
// shared secret, and the internal room name handed to the SFU.
type Identifiers struct {
	MeetingID string
	Password  string
	RoomName  string
}

func randString(alphabet string, n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("unable read entropy source: %s", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

func NewMeetingID() string {
	groups := make([]string, codeGroups)
	for i := range groups {
		groups[i] = randString(codeAlphabet, codeGroupSize)
	}
	return strings.Join(groups, "-")
}

func NewPassword() string {
	return randString(passwordAlphabet, passwordSize)
}

// NewRoomName combines the public code with unpredictable entropy so the
// canonical room name cannot be guessed from the meeting code alone.
func NewRoomName(meetingID string) string {
	buf := make([]byte, roomEntropy)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("unable read entropy source: %s", err))
	}
	return fmt.Sprintf("room_%s_%s", meetingID, hex.EncodeToString(buf))
}

func NewIdentifiers() Identifiers {
	meetingID := NewMeetingID()
	return Identifiers{
		MeetingID: meetingID,
		Password:  NewPassword(),
		RoomName:  NewRoomName(meetingID),
	}
}
