package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"medvault/internal/app/client/config"
	"medvault/internal/domain/record"
)

var ErrMissingCredentials = errors.New("pinning service token not configured")

// Gateway talks to the pinning service: it fetches pinned JSON through the
// public gateway and registers new pins through the pinning API. Fetching
// needs no credentials; pinning requires the bearer token.
type Gateway struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	userAgent string
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

func NewGateway(cfg *config.Config, log *slog.Logger) *Gateway {
	client := &http.Client{
		Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &Gateway{
		client:    client,
		config:    cfg,
		log:       log.With("component", "gateway"),
		userAgent: "MedVault-Client/1.0",
	}
}

// Resolve fetches the JSON payload behind a content identifier from the
// gateway and decodes it as record data. A reference may carry the ipfs://
// prefix. Gateway-side failures come back as an unsuccessful Resolution;
// transport errors are returned as errors.
func (g *Gateway) Resolve(ctx context.Context, ref string) (*Resolution, error) {
	hash := strings.TrimPrefix(ref, "ipfs://")
	url := g.config.GatewayURL + "/ipfs/" + hash

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.log.Debug("gateway returned error", "ref", hash, "status", resp.StatusCode)
		return &Resolution{
			Success: false,
			Message: fmt.Sprintf("gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}, nil
	}

	var data record.Data
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode record payload: %w", err)
	}

	return &Resolution{Success: true, Data: &data}, nil
}

// PinJSON uploads a JSON payload to the pinning service and returns its
// ipfs:// reference.
func (g *Gateway) PinJSON(ctx context.Context, v any) (string, error) {
	if g.config.PinningJWT == "" {
		return "", ErrMissingCredentials
	}

	body, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.config.PinningAPIURL+"/pinning/pinJSONToIPFS", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.config.PinningJWT)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinning service unreachable: %w", err)
	}
	defer resp.Body.Close()

	pin, err := g.parsePinResponse(resp)
	if err != nil {
		return "", err
	}

	g.log.Info("payload pinned", "cid", pin.IpfsHash, "size", pin.PinSize)
	return "ipfs://" + pin.IpfsHash, nil
}

// PinFile uploads a file to the pinning service and returns its ipfs://
// reference.
func (g *Gateway) PinFile(ctx context.Context, name string, r io.Reader) (string, error) {
	if g.config.PinningJWT == "" {
		return "", ErrMissingCredentials
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	// Same pin options the web client sends.
	if err := mw.WriteField("pinataOptions", `{"cidVersion":1,"wrapWithDirectory":false}`); err != nil {
		return "", fmt.Errorf("write pin options: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.config.PinningAPIURL+"/pinning/pinFileToIPFS", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.config.PinningJWT)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("pinning service unreachable: %w", err)
	}
	defer resp.Body.Close()

	pin, err := g.parsePinResponse(resp)
	if err != nil {
		return "", err
	}

	g.log.Info("file pinned", "cid", pin.IpfsHash, "name", name, "size", pin.PinSize)
	return "ipfs://" + pin.IpfsHash, nil
}

func (g *Gateway) parsePinResponse(resp *http.Response) (*pinResponse, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusUnauthorized:
		return nil, fmt.Errorf("pinning service rejected credentials: %w", ErrMissingCredentials)
	case http.StatusRequestEntityTooLarge:
		return nil, fmt.Errorf("payload too large for pinning service")
	default:
		return nil, fmt.Errorf("pinning service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var pin pinResponse
	if err := json.Unmarshal(body, &pin); err != nil {
		return nil, fmt.Errorf("parse pin response: %w", err)
	}
	if pin.IpfsHash == "" {
		return nil, fmt.Errorf("pinning service returned no content identifier")
	}

	return &pin, nil
}
