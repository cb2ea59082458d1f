package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/oops"

	"github.com/secureapp/secureapp-cli/internal/client/models"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

// HTTPClient is the Client implementation speaking the wire conventions of
// the SecureApp API: form-urlencoded login, JSON register, query-only
// verify-otp, bearer-authorized current-user.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the API at baseURL. The timeout bounds
// each round trip; there is no retry on top of it.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.TokenPair, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req, "login")
	if err != nil {
		return nil, err
	}
	defer drain(resp.Body)

	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var pair models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, fmt.Errorf("decoding login response: %w", err)
	}
	return &pair, nil
}

func (c *HTTPClient) Register(ctx context.Context, payload *models.RegistrationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/register", strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, "register")
	if err != nil {
		return err
	}
	defer drain(resp.Body)

	if !is2xx(resp.StatusCode) {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *HTTPClient) VerifyOtp(ctx context.Context, identifier, code string) error {
	q := url.Values{}
	q.Set("identifier", identifier)
	q.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/verify-otp?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.do(req, "verify-otp")
	if err != nil {
		return err
	}
	defer drain(resp.Body)

	if !is2xx(resp.StatusCode) {
		return decodeAPIError(resp)
	}
	return nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, accessToken string) (*models.UserProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/current-user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.do(req, "current-user")
	if err != nil {
		return nil, err
	}
	defer drain(resp.Body)

	if !is2xx(resp.StatusCode) {
		return nil, decodeAPIError(resp)
	}

	var profile models.UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}

// do sends the request with a fresh request id. Any transport-level failure
// is normalized to ErrUnavailable; HTTP status handling stays with callers.
func (c *HTTPClient) do(req *http.Request, op string) (*http.Response, error) {
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug(req.Context(), "api request", "op", op, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "api request failed", "op", op, "request_id", requestID, "error", err.Error())
		return nil, oops.Code("API_UNREACHABLE").
			With("op", op).
			With("request_id", requestID).
			Wrap(ErrUnavailable)
	}
	return resp, nil
}

// decodeAPIError turns a non-2xx response into an *APIError. A body that is
// not the documented {code, message} shape yields an APIError with only the
// status filled in; presentation falls back to generic text.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	_ = json.NewDecoder(resp.Body).Decode(apiErr)
	return apiErr
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
