package meeting

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v4"
	globalprotocol "github.com/romashorodok/meeting-authority/pkg/protocol"
	"github.com/romashorodok/meeting-authority/pkg/service"
	"go.uber.org/fx"
)

const _SERVICE_NAME = "meeting-authority"

type errResponse struct {
	Error string `json:"error"`
}

type meetingController struct {
	meetingService *Service
	requests       *service.RequestCounter
	logger         *slog.Logger
	startedAt      time.Time
}

// httpError maps workflow sentinels onto statuses. Dependency errors pass
// their message through as a 500 body.
func (ctrl *meetingController) httpError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ErrMissingField):
		return c.JSON(http.StatusBadRequest, errResponse{Error: err.Error()})
	case errors.Is(err, ErrMeetingNotFound):
		return c.JSON(http.StatusNotFound, errResponse{Error: "Meeting not found or inactive"})
	case errors.Is(err, ErrInvalidPassword):
		return c.JSON(http.StatusForbidden, errResponse{Error: "Invalid password"})
	case errors.Is(err, ErrNotAuthorized):
		return c.JSON(http.StatusForbidden, errResponse{Error: "Not authorized"})
	default:
		ctrl.logger.Error("meeting workflow failed", slog.String("err", err.Error()))
		return c.JSON(http.StatusInternalServerError, errResponse{Error: err.Error()})
	}
}

type createMeetingRequest struct {
	UserID string `json:"userId"`
}

type createMeetingResponse struct {
	MeetingID string `json:"meetingId"`
	Password  string `json:"password"`
	RoomName  string `json:"roomName"`
	Token     string `json:"token"`
}

func (ctrl *meetingController) CreateMeeting(c echo.Context) error {
	req := new(createMeetingRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse{Error: "bad request"})
	}

	result, err := ctrl.meetingService.Create(c.Request().Context(), req.UserID)
	if err != nil {
		return ctrl.httpError(c, err)
	}

	return c.JSON(http.StatusOK, createMeetingResponse{
		MeetingID: result.MeetingID,
		Password:  result.Password,
		RoomName:  result.RoomName,
		Token:     result.Token,
	})
}

type joinMeetingRequest struct {
	MeetingID string `json:"meetingId"`
	Password  string `json:"password"`
	UserID    string `json:"userId"`
}

type joinMeetingResponse struct {
	Token  string `json:"token"`
	IsHost bool   `json:"isHost"`
}

func (ctrl *meetingController) JoinMeeting(c echo.Context) error {
	req := new(joinMeetingRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse{Error: "bad request"})
	}

	result, err := ctrl.meetingService.Join(c.Request().Context(), req.MeetingID, req.Password, req.UserID)
	if err != nil {
		return ctrl.httpError(c, err)
	}

	return c.JSON(http.StatusOK, joinMeetingResponse{
		Token:  result.Token,
		IsHost: result.IsHost,
	})
}

type endMeetingRequest struct {
	MeetingID string `json:"meetingId"`
	UserID    string `json:"userId"`
}

type endMeetingResponse struct {
	Success bool `json:"success"`
}

func (ctrl *meetingController) EndMeeting(c echo.Context) error {
	req := new(endMeetingRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, errResponse{Error: "bad request"})
	}

	// Missing fields fall through to the lookup, which fails to match and
	// yields "not authorized" rather than a distinct 400.
	if err := ctrl.meetingService.End(c.Request().Context(), req.MeetingID, req.UserID); err != nil {
		return ctrl.httpError(c, err)
	}

	return c.JSON(http.StatusOK, endMeetingResponse{Success: true})
}

type healthResponse struct {
	Ok        bool    `json:"ok"`
	Timestamp string  `json:"timestamp"`
	Service   string  `json:"service"`
	Uptime    float64 `json:"uptime"`
	Requests  int64   `json:"requests"`
}

// Health is shallow: 200 while the process runs, no downstream probes.
func (ctrl *meetingController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Ok:        true,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   _SERVICE_NAME,
		Uptime:    time.Since(ctrl.startedAt).Seconds(),
		Requests:  ctrl.requests.Served(),
	})
}

type serviceDescriptor struct {
	Service   string   `json:"service"`
	Endpoints []string `json:"endpoints"`
}

func (ctrl *meetingController) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, serviceDescriptor{
		Service: _SERVICE_NAME,
		Endpoints: []string{
			"GET /health",
			"POST /create-meeting",
			"POST /join-meeting",
			"POST /end-meeting",
		},
	})
}

func (ctrl *meetingController) NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errResponse{Error: "Endpoint not found"})
}

func (ctrl *meetingController) Resolve(router *echo.Echo) error {
	router.GET("/health", ctrl.Health)
	router.GET("/", ctrl.Index)
	router.POST("/create-meeting", ctrl.CreateMeeting)
	router.POST("/join-meeting", ctrl.JoinMeeting)
	router.POST("/end-meeting", ctrl.EndMeeting)
	router.RouteNotFound("/*", ctrl.NotFound)
	return nil
}

var _ globalprotocol.HttpResolvable = (*meetingController)(nil)

type newMeetingController_Params struct {
	fx.In

	MeetingService *Service
	Requests       *service.RequestCounter
	Logger         *slog.Logger
}

func NewMeetingController(params newMeetingController_Params) *meetingController {
	return &meetingController{
		meetingService: params.MeetingService,
		requests:       params.Requests,
		logger:         params.Logger,
		startedAt:      time.Now(),
	}
}
