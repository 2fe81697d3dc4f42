// Package notification sends outbound alerts: SMS through the operator's
// query-string gateway and email through SMTP.
package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/batkt/sudalgaaQRBackend/internal/logger"
)

// SMSClient talks to the operator gateway. An empty base URL disables
// sending, so callers never need to branch on configuration.
type SMSClient struct {
	baseURL string
	client  *http.Client
}

// NewSMSClient creates an SMSClient for the gateway base URL.
func NewSMSClient(baseURL string) *SMSClient {
	return &SMSClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a gateway is configured.
func (c *SMSClient) Enabled() bool {
	return c.baseURL != ""
}

// Send delivers one message to each recipient. The gateway is a GET API
// taking the recipient and text as query parameters; failures are logged per
// recipient and the first error is returned after all sends are attempted.
func (c *SMSClient) Send(ctx context.Context, recipients []string, text string) error {
	if !c.Enabled() {
		return nil
	}

	log := logger.GetAppLogger()
	var firstErr error
	for _, recipient := range recipients {
		if recipient == "" {
			continue
		}

		endpoint := fmt.Sprintf("%s&to=%s&text=%s", c.baseURL, url.QueryEscape(recipient), url.QueryEscape(text))
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		resp, err := c.client.Do(req)
		if err != nil {
			log.WithField("recipient", recipient).WithError(err).Error("sms send failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("sms gateway returned %d", resp.StatusCode)
			log.WithField("recipient", recipient).Error(err.Error())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.WithField("recipient", recipient).Info("sms sent")
	}

	return firstErr
}
