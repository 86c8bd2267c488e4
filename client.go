package bunnydns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.bunny.net"
	defaultTimeout = 30 * time.Second

	minPerPage = 5
	maxPerPage = 1000
)

// Error message constants for consistent error handling
const (
	errAccessKeyRequired = "access key is required"
	errPerPageRange      = "perPage must be between 5 and 1000"
)

// Options defines configuration parameters for the API client.
// Only AccessKey is required.
type Options struct {
	// AccessKey is the bunny.net API access key sent on every request.
	AccessKey string
	// BaseURL overrides the default API endpoint, useful for testing.
	BaseURL string
	// Timeout is the per-request timeout. Defaults to 30 seconds.
	Timeout time.Duration
	// options to inject for testing purposes
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Client talks to the bunny.net DNS API. All methods are blocking, issue
// exactly one HTTP request, and are safe for concurrent use.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a Client with the specified options.
// Returns an error if the access key is empty.
func New(opts Options) (*Client, error) {
	if opts.AccessKey == "" {
		return nil, &ValidationError{msg: errAccessKeyRequired}
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		accessKey:  opts.AccessKey,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
	}, nil
}

// request sends one HTTP request and returns the raw response body.
// Non-2xx statuses are mapped to the error taxonomy; a 204 or empty body
// yields a nil slice.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("AccessKey", c.accessKey)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("bunny.net api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if err := statusError(res.StatusCode, data); err != nil {
		return nil, err
	}
	if res.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil, nil
	}
	return data, nil
}

// requestJSON marshals body (when non-nil) and sends it as application/json.
func (c *Client) requestJSON(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}
	return c.request(ctx, method, path, query, reader, "application/json")
}

// statusError maps a non-success HTTP status to one of the typed errors.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	msg := string(body)
	switch status {
	case http.StatusUnauthorized:
		return &AuthenticationError{Message: msg}
	case http.StatusNotFound:
		return &NotFoundError{Message: msg}
	default:
		return &APIError{StatusCode: status, Message: msg}
	}
}

// decodeBody parses a JSON object body into a payload map. A nil body
// (204 / empty response) yields a nil payload.
func decodeBody(data []byte) (payload, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &DecodeError{msg: fmt.Sprintf("invalid response body: %v", err)}
	}
	return p, nil
}

// ListZonesOptions controls pagination and filtering for ListZones.
// Zero values select the first page with the maximum page size.
type ListZonesOptions struct {
	Page    int
	PerPage int
	Search  string
}

// ListZones retrieves one page of DNS zones on the account.
func (c *Client) ListZones(ctx context.Context, opts ListZonesOptions) (DNSZoneList, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.PerPage == 0 {
		opts.PerPage = maxPerPage
	}
	if opts.PerPage < minPerPage || opts.PerPage > maxPerPage {
		return DNSZoneList{}, &ValidationError{msg: errPerPageRange}
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(opts.Page))
	query.Set("perPage", strconv.Itoa(opts.PerPage))
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}

	data, err := c.requestJSON(ctx, http.MethodGet, "/dnszone", query, nil)
	if err != nil {
		return DNSZoneList{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSZoneList{}, err
	}
	return decodeDNSZoneList(p)
}

// AddZone creates a new DNS zone, optionally together with an initial set
// of records.
func (c *Client) AddZone(ctx context.Context, domain string, records []RecordInput) (DNSZone, error) {
	body := map[string]any{"Domain": domain}
	if records != nil {
		wireRecords := make([]map[string]any, 0, len(records))
		for _, r := range records {
			w, err := r.wirePayload()
			if err != nil {
				return DNSZone{}, err
			}
			wireRecords = append(wireRecords, w)
		}
		body["Records"] = wireRecords
	}

	data, err := c.requestJSON(ctx, http.MethodPost, "/dnszone", nil, body)
	if err != nil {
		return DNSZone{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSZone{}, err
	}
	return decodeDNSZone(p)
}

// GetZone retrieves a single DNS zone by ID.
func (c *Client) GetZone(ctx context.Context, zoneID int64) (DNSZone, error) {
	data, err := c.requestJSON(ctx, http.MethodGet, fmt.Sprintf("/dnszone/%d", zoneID), nil, nil)
	if err != nil {
		return DNSZone{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSZone{}, err
	}
	return decodeDNSZone(p)
}

// UpdateZone changes the settings of an existing zone. Only the options
// set on opts are sent; everything else is left unchanged.
func (c *Client) UpdateZone(ctx context.Context, zoneID int64, opts UpdateZoneOptions) (DNSZone, error) {
	body, err := opts.wirePayload()
	if err != nil {
		return DNSZone{}, err
	}
	data, err := c.requestJSON(ctx, http.MethodPost, fmt.Sprintf("/dnszone/%d", zoneID), nil, body)
	if err != nil {
		return DNSZone{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSZone{}, err
	}
	return decodeDNSZone(p)
}

// DeleteZone deletes a DNS zone.
func (c *Client) DeleteZone(ctx context.Context, zoneID int64) error {
	_, err := c.requestJSON(ctx, http.MethodDelete, fmt.Sprintf("/dnszone/%d", zoneID), nil, nil)
	return err
}

// ExportZone exports a zone as a BIND zone file and returns its raw text.
func (c *Client) ExportZone(ctx context.Context, zoneID int64) (string, error) {
	data, err := c.requestJSON(ctx, http.MethodGet, fmt.Sprintf("/dnszone/%d/export", zoneID), nil, nil)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CheckZoneAvailability reports whether a zone for the given domain can be
// added to the account.
func (c *Client) CheckZoneAvailability(ctx context.Context, domain string) (bool, error) {
	data, err := c.requestJSON(ctx, http.MethodPost, "/dnszone/checkavailability", nil, map[string]any{"Name": domain})
	if err != nil {
		return false, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return false, err
	}
	return p.boolOr("Available", false), nil
}

// ImportRecords imports DNS records into a zone from BIND zone file text.
func (c *Client) ImportRecords(ctx context.Context, zoneID int64, zoneFile string) (DNSZoneImportResult, error) {
	data, err := c.request(ctx, http.MethodPost, fmt.Sprintf("/dnszone/%d/import", zoneID), nil, strings.NewReader(zoneFile), "text/plain")
	if err != nil {
		return DNSZoneImportResult{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSZoneImportResult{}, err
	}
	return decodeDNSZoneImportResult(p), nil
}

// AddRecord adds a DNS record to a zone and returns the created record.
func (c *Client) AddRecord(ctx context.Context, zoneID int64, record RecordInput) (DNSRecord, error) {
	body, err := record.wirePayload()
	if err != nil {
		return DNSRecord{}, err
	}
	data, err := c.requestJSON(ctx, http.MethodPut, fmt.Sprintf("/dnszone/%d/records", zoneID), nil, body)
	if err != nil {
		return DNSRecord{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSRecord{}, err
	}
	return decodeDNSRecord(p)
}

// UpdateRecord updates an existing DNS record. The record ID from the path
// is filled into the body when the input does not carry one.
func (c *Client) UpdateRecord(ctx context.Context, zoneID, recordID int64, record RecordInput) error {
	if record.ID == nil {
		record.ID = &recordID
	}
	body, err := record.wirePayload()
	if err != nil {
		return err
	}
	_, err = c.requestJSON(ctx, http.MethodPost, fmt.Sprintf("/dnszone/%d/records/%d", zoneID, recordID), nil, body)
	return err
}

// DeleteRecord deletes a DNS record from a zone.
func (c *Client) DeleteRecord(ctx context.Context, zoneID, recordID int64) error {
	_, err := c.requestJSON(ctx, http.MethodDelete, fmt.Sprintf("/dnszone/%d/records/%d", zoneID, recordID), nil, nil)
	return err
}

// EnableDNSSEC enables DNSSEC on a zone and returns the DS record to
// publish at the registrar.
func (c *Client) EnableDNSSEC(ctx context.Context, zoneID int64) (DNSSECDSRecord, error) {
	data, err := c.requestJSON(ctx, http.MethodPost, fmt.Sprintf("/dnszone/%d/dnssec", zoneID), nil, nil)
	if err != nil {
		return DNSSECDSRecord{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSSECDSRecord{}, err
	}
	return decodeDNSSECDSRecord(p), nil
}

// DisableDNSSEC disables DNSSEC on a zone.
func (c *Client) DisableDNSSEC(ctx context.Context, zoneID int64) (DNSSECDSRecord, error) {
	data, err := c.requestJSON(ctx, http.MethodDelete, fmt.Sprintf("/dnszone/%d/dnssec", zoneID), nil, nil)
	if err != nil {
		return DNSSECDSRecord{}, err
	}
	p, err := decodeBody(data)
	if err != nil || p == nil {
		return DNSSECDSRecord{}, err
	}
	return decodeDNSSECDSRecord(p), nil
}
