package meeting

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/romashorodok/meeting-authority/internal/credential"
	"github.com/romashorodok/meeting-authority/internal/registry"
	"github.com/romashorodok/meeting-authority/internal/roomctl"
	"go.uber.org/fx"
)

var (
	_MEETING_EXPIRES_AFTER = time.Hour * 24
	_CREATE_ATTEMPTS       = 3
)

type Registry interface {
	Insert(ctx context.Context, record *registry.MeetingRecord) error
	FindByCode(ctx context.Context, code string, activeOnly bool) (*registry.MeetingRecord, error)
	DeleteByCode(ctx context.Context, code string) error
}

type TokenIssuer interface {
	IssueToken(roomName, userID string, isHost bool) (string, error)
}

type RoomDeleter interface {
	DeleteRoom(ctx context.Context, roomName string) error
}

// Service holds the three meeting workflows. Each use case is a single
// method so its inconsistency window across the registry, the signer and
// the SFU stays in one place.
type Service struct {
	registry Registry
	tokens   TokenIssuer
	rooms    RoomDeleter
	logger   *slog.Logger
}

type CreateResult struct {
	MeetingID string
	Password  string
	RoomName  string
	Token     string
}

// Create persists a new meeting and issues a host-scoped token. The two
// effects are independent: when signing fails the record stays behind.
func (s *Service) Create(ctx context.Context, userID string) (*CreateResult, error) {
	if userID == "" {
		return nil, ErrMissingField
	}

	var ids Identifiers
	for attempt := 1; ; attempt++ {
		ids = NewIdentifiers()
		now := time.Now()

		err := s.registry.Insert(ctx, &registry.MeetingRecord{
			MeetingCode: ids.MeetingID,
			Password:    ids.Password,
			LivekitRoom: ids.RoomName,
			HostID:      userID,
			IsActive:    true,
			CreatedAt:   now,
			ExpiresAt:   now.Add(_MEETING_EXPIRES_AFTER),
		})
		if err == nil {
			break
		}
		if errors.Is(err, registry.ErrCodeConflict) && attempt < _CREATE_ATTEMPTS {
			s.logger.Warn("meeting code collision, regenerating",
				slog.String("meeting_id", ids.MeetingID),
				slog.Int("attempt", attempt),
			)
			continue
		}
		return nil, err
	}

	token, err := s.tokens.IssueToken(ids.RoomName, userID, true)
	if err != nil {
		return nil, err
	}

	return &CreateResult{
		MeetingID: ids.MeetingID,
		Password:  ids.Password,
		RoomName:  ids.RoomName,
		Token:     token,
	}, nil
}

type JoinResult struct {
	Token  string
	IsHost bool
}

// Join grants access when the password matches or the caller is the host.
// The host bypasses the password check entirely.
func (s *Service) Join(ctx context.Context, meetingID, password, userID string) (*JoinResult, error) {
	if meetingID == "" || userID == "" {
		return nil, ErrMissingField
	}

	record, err := s.registry.FindByCode(ctx, meetingID, true)
	if errors.Is(err, registry.ErrNotFound) {
		return nil, ErrMeetingNotFound
	}
	if err != nil {
		return nil, err
	}

	isHost := record.HostID == userID
	if !isHost && record.Password != password {
		return nil, ErrInvalidPassword
	}

	token, err := s.tokens.IssueToken(record.LivekitRoom, userID, isHost)
	if err != nil {
		return nil, err
	}

	return &JoinResult{
		Token:  token,
		IsHost: isHost,
	}, nil
}

// End tears the room/record pair down. The remote room delete is
// best-effort: a failure is logged and the record is removed anyway.
// A missing meeting or a non-host caller both map to ErrNotAuthorized.
func (s *Service) End(ctx context.Context, meetingID, userID string) error {
	record, err := s.registry.FindByCode(ctx, meetingID, false)
	if errors.Is(err, registry.ErrNotFound) {
		return ErrNotAuthorized
	}
	if err != nil {
		return err
	}

	if record.HostID != userID {
		return ErrNotAuthorized
	}

	if err := s.rooms.DeleteRoom(ctx, record.LivekitRoom); err != nil {
		s.logger.Warn("unable delete remote room",
			slog.String("room", record.LivekitRoom),
			slog.String("err", err.Error()),
		)
	}

	return s.registry.DeleteByCode(ctx, meetingID)
}

type NewServiceParams struct {
	fx.In

	Registry *registry.Client
	Tokens   *credential.TokenService
	Rooms    *roomctl.Client
	Logger   *slog.Logger
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		registry: params.Registry,
		tokens:   params.Tokens,
		rooms:    params.Rooms,
		logger:   params.Logger,
	}
}
