// Package sidecar talks to the co-located Dapr-style sidecar over local HTTP.
// It backs both the event-publisher and key/value-store ports, keeping the
// core logic free of any messaging-platform dependency.
package sidecar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"payment_service/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	defaultHTTPPort       = "3500"
	defaultPubsubName     = "rabbitmq-pubsub"
	defaultStateStoreName = "statestore"
	defaultRequestTimeout = 30 * time.Second
)

// Client reaches the sidecar's publish and state APIs.
//
// Supported env vars:
//   - DAPR_HTTP_PORT (default: 3500)
//   - PUBSUB_NAME (default: rabbitmq-pubsub)
//   - STATE_STORE_NAME (default: statestore)
type Client struct {
	baseURL    string
	pubsubName string
	storeName  string
	httpClient *http.Client
	log        *logrus.Entry
}

var (
	_ interfaces.IEventPublisher = (*Client)(nil)
	_ interfaces.IKeyValueStore  = (*Client)(nil)
)

func NewClientFromEnv() *Client {
	port := getenvDefault("DAPR_HTTP_PORT", defaultHTTPPort)
	return &Client{
		baseURL:    "http://127.0.0.1:" + port,
		pubsubName: getenvDefault("PUBSUB_NAME", defaultPubsubName),
		storeName:  getenvDefault("STATE_STORE_NAME", defaultStateStoreName),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		log:        logrus.StandardLogger().WithField("type", "sidecar_client"),
	}
}

// NewClient builds a client against an explicit base URL. Used in tests.
func NewClient(baseURL, pubsubName, storeName string) *Client {
	return &Client{
		baseURL:    baseURL,
		pubsubName: pubsubName,
		storeName:  storeName,
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		log:        logrus.StandardLogger().WithField("type", "sidecar_client"),
	}
}

// Publish sends the event to /v1.0/publish/<pubsub>/<topic>. Delivery beyond
// the sidecar is at-least-once; callers bound their own retries.
func (c *Client) Publish(ctx context.Context, topic string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event for topic %s: %w", topic, err)
	}

	url := fmt.Sprintf("%s/v1.0/publish/%s/%s", c.baseURL, c.pubsubName, topic)
	resp, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("publish to %s: sidecar returned %d", topic, resp.StatusCode)
	}
	c.log.WithField("topic", topic).Debug("event published via sidecar")
	return nil
}

type stateItem struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Put upserts a key in the sidecar state store. The value must be valid JSON.
func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	body, err := json.Marshal([]stateItem{{Key: key, Value: value}})
	if err != nil {
		return fmt.Errorf("marshal state item %s: %w", key, err)
	}

	url := fmt.Sprintf("%s/v1.0/state/%s", c.baseURL, c.storeName)
	resp, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("put state %s: sidecar returned %d", key, resp.StatusCode)
	}
	return nil
}

// Get reads a key from the sidecar state store. Absent keys come back as
// (nil, false, nil): the sidecar answers 204 or an empty body.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	url := fmt.Sprintf("%s/v1.0/state/%s/%s", c.baseURL, c.storeName, key)
	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode >= 300 {
		return nil, false, fmt.Errorf("get state %s: sidecar returned %d", key, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read state %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil, false, nil
	}
	return data, true, nil
}

func (c *Client) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.httpClient.Do(req)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
