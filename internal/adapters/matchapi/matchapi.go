package matchapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jpp0ca/MusicSoulmate/internal/adapters/rest"
	"github.com/jpp0ca/MusicSoulmate/internal/domain"
)

// Client implements ports.MatchAPI against the remote match service.
type Client struct {
	baseURL  string
	rest     *rest.Client
	validate *validator.Validate
}

// NewClient creates a match API client. If httpClient is nil,
// http.DefaultClient is used.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		rest:     rest.NewClient(httpClient),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// MatchesURL builds the matches endpoint for a trimmed user id.
func (c *Client) MatchesURL(userID string, limit int) string {
	return fmt.Sprintf("%s/matches/%s?limit=%d", c.baseURL, url.PathEscape(strings.TrimSpace(userID)), limit)
}

func (c *Client) FetchMatches(ctx context.Context, userID, limitInput string) (*domain.MatchList, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &domain.ValidationError{
			Field:   "user_id",
			Message: "Missing user_id. Please enter a user_id (example: briana_test_002).",
		}
	}

	limit := domain.CoerceLimit(limitInput)
	body, err := c.rest.Do(ctx, http.MethodGet, c.MatchesURL(userID, limit), nil)
	if err != nil {
		return nil, err
	}

	return decodeMatchList(body, userID, limit), nil
}

func (c *Client) FetchProfile(ctx context.Context, userID string) (*domain.ProfileLookup, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, &domain.ValidationError{Field: "user_id", Message: "Missing user_id for profile lookup."}
	}

	endpoint := fmt.Sprintf("%s/profiles/%s", c.baseURL, url.PathEscape(userID))
	body, err := c.rest.Do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	return &domain.ProfileLookup{UserID: userID, Body: body}, nil
}

func (c *Client) Connect(ctx context.Context, fromUserID, toUserID string, connected domain.ConnectionSet) (*domain.ConnectAck, error) {
	req := domain.ConnectRequest{
		FromUserID: strings.TrimSpace(fromUserID),
		ToUserID:   strings.TrimSpace(toUserID),
	}
	if err := c.validate.Struct(req); err != nil {
		return nil, toValidationError(err)
	}

	if connected != nil && connected.Has(req.ToUserID) {
		return &domain.ConnectAck{FromUserID: req.FromUserID, ToUserID: req.ToUserID, Cached: true}, nil
	}

	body, err := c.rest.Do(ctx, http.MethodPost, c.baseURL+"/connect", req)
	if err != nil {
		return nil, err
	}

	return &domain.ConnectAck{FromUserID: req.FromUserID, ToUserID: req.ToUserID, Body: body}, nil
}

// PostTasteProfile asks the remote service to build a taste profile. When the
// response wraps it in taste_profile, only the inner object is kept.
func (c *Client) PostTasteProfile(ctx context.Context, items domain.TasteItems) (*domain.TasteProfileResult, error) {
	body, err := c.rest.Do(ctx, http.MethodPost, c.baseURL+"/taste-profile", domain.TasteProfileRequest{Items: items})
	if err != nil {
		return nil, err
	}

	if inner, ok := body.Object("taste_profile"); ok {
		body = domain.Body{Raw: body.Raw, Value: inner, JSON: true}
	}

	return &domain.TasteProfileResult{Body: body}, nil
}

func toValidationError(err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return &domain.ValidationError{Message: err.Error()}
	}

	fe := ve[0]
	return &domain.ValidationError{Field: fe.Field(), Message: getFieldErrorMsg(fe)}
}

// Converts validator's FieldError to a message string.
func getFieldErrorMsg(fe validator.FieldError) string {
	switch {
	case fe.Tag() == "nefield":
		return "You can't connect to yourself."
	case fe.Tag() == "required" && fe.Field() == "FromUserID":
		return "Missing user_id. Search for matches before connecting."
	case fe.Tag() == "required":
		return "Missing target user_id to connect to."
	}
	return "Invalid connect request"
}
