package registry

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/romashorodok/meeting-authority/internal/storage"
	"go.uber.org/fx"
)

var (
	ErrCodeConflict = errors.New("meeting code already exists")
	ErrNotFound     = errors.New("meeting not found")
)

// MeetingRecord is the canonical meeting_code -> livekit_room mapping.
// LivekitRoom is never regenerated once the record exists.
type MeetingRecord struct {
	MeetingCode string
	Password    string
	LivekitRoom string
	HostID      string
	IsActive    bool
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func recordFromStorage(m storage.Meeting) *MeetingRecord {
	return &MeetingRecord{
		MeetingCode: m.MeetingCode,
		Password:    m.Password,
		LivekitRoom: m.LivekitRoom,
		HostID:      m.HostID,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		ExpiresAt:   m.ExpiresAt,
	}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Client is a thin pass-through to the meetings table. No caching, no
// batching, one statement per call.
type Client struct {
	queries storage.Querier
}

func (c *Client) Insert(ctx context.Context, record *MeetingRecord) error {
	err := c.queries.InsertMeeting(ctx, storage.InsertMeetingParams{
		MeetingCode: record.MeetingCode,
		Password:    record.Password,
		LivekitRoom: record.LivekitRoom,
		HostID:      record.HostID,
		IsActive:    record.IsActive,
		CreatedAt:   record.CreatedAt,
		ExpiresAt:   record.ExpiresAt,
	})
	if isUniqueViolation(err) {
		return errors.Join(ErrCodeConflict, err)
	}
	return err
}

func (c *Client) FindByCode(ctx context.Context, code string, activeOnly bool) (*MeetingRecord, error) {
	var meeting storage.Meeting
	var err error

	if activeOnly {
		meeting, err = c.queries.GetActiveMeetingByCode(ctx, code)
	} else {
		meeting, err = c.queries.GetMeetingByCode(ctx, code)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return recordFromStorage(meeting), nil
}

// DeleteByCode is idempotent. Deleting a code that is already gone is not
// an error at this layer, the caller enforces host authorization first.
func (c *Client) DeleteByCode(ctx context.Context, code string) error {
	return c.queries.DeleteMeetingByCode(ctx, code)
}

type NewClientParams struct {
	fx.In

	Queries *storage.Queries
}

func NewClient(params NewClientParams) *Client {
	return &Client{
		queries: params.Queries,
	}
}
