package musiccast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"musiccast/internal/logger"
)

const (
	// DefaultEventPort is the well-known local UDP port the device pushes
	// state-change notifications to when no other port is configured.
	DefaultEventPort = 41100

	basePath       = "/YamahaExtendedControl/v1"
	requestTimeout = 15 * time.Second

	appNameHeader = "X-AppName"
	appPortHeader = "X-AppPort"
	appName       = "musiccast-go/1.0"
)

// Client is the shared HTTP transport for one device address. All six
// subsystem clients go through the same Client instance, so the device sees a
// consistent X-AppPort callback registration across every request.
type Client struct {
	httpClient *http.Client
	host       string
	eventPort  int
	logger     zerolog.Logger
}

// NewClient creates a transport for the device at host. host is an IP or
// host:port; the protocol serves on port 80 when none is given. eventPort is
// the local UDP port advertised to the device for push notifications.
func NewClient(host string, eventPort int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		host:      host,
		eventPort: eventPort,
		logger:    logger.New(),
	}
}

// Host returns the device address this transport points at.
func (c *Client) Host() string {
	return c.host
}

// EventPort returns the advertised callback port.
func (c *Client) EventPort() int {
	return c.eventPort
}

// get issues a GET against /YamahaExtendedControl/v1/<path> with the given
// query parameters and decodes the response envelope into out (out may be
// nil when the caller only needs the success/failure outcome).
func (c *Client) get(path string, query url.Values, out interface{}) error {
	u := fmt.Sprintf("http://%s%s/%s", c.host, basePath, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}

	return c.do(req, path, out)
}

// post issues a POST against /YamahaExtendedControl/v1/<path> with a JSON
// body and decodes the response envelope into out.
func (c *Client) post(path string, body interface{}, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal body for %s: %w", path, err)
	}

	u := fmt.Sprintf("http://%s%s/%s", c.host, basePath, path)
	req, err := http.NewRequest(http.MethodPost, u, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, out)
}

// do performs the exchange and applies the envelope contract: response_code
// zero resolves (into out), nonzero rejects with a DeviceError carrying the
// full body, and transport faults reject with the raw error.
func (c *Client) do(req *http.Request, path string, out interface{}) error {
	req.Header.Set(appNameHeader, appName)
	req.Header.Set(appPortHeader, strconv.Itoa(c.eventPort))

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("Sending device request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	var envelope struct {
		ResponseCode int `json:"response_code"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("invalid response from %s: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("response_code", envelope.ResponseCode).
		Int("body_size", len(body)).
		Msg("Device request completed")

	if envelope.ResponseCode != 0 {
		return &DeviceError{Code: envelope.ResponseCode, Body: body}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}

	return nil
}
