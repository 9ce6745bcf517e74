package landmark

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/context"
)

// IProvider is the client to the external landmark-detection service. The
// detector owns the ML models; this service only consumes named points.
type IProvider interface {
	DetectPose(ctx context.Context, imageData []byte) (*Set, error)
	DetectFace(ctx context.Context, imageData []byte) (*Set, error)
}

type provider struct {
	baseURL string
	client  *http.Client
}

func NewProvider() (IProvider, error) {
	baseURL := os.Getenv("DETECTOR_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("DETECTOR_BASE_URL not set")
	}

	return &provider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type detectRequest struct {
	ImageBase64 string `json:"image_base64"`
}

type detectResponse struct {
	Detected bool                 `json:"detected"`
	Points   map[string][]float64 `json:"points"`
}

func (p *provider) DetectPose(ctx context.Context, imageData []byte) (*Set, error) {
	resp, err := p.detect(ctx, "/v1/detect/pose", imageData)
	if err != nil {
		return nil, err
	}
	if !resp.Detected || len(resp.Points) == 0 {
		return nil, ErrNoPoseDetected
	}
	return FromWire(resp.Points), nil
}

func (p *provider) DetectFace(ctx context.Context, imageData []byte) (*Set, error) {
	resp, err := p.detect(ctx, "/v1/detect/face", imageData)
	if err != nil {
		return nil, err
	}
	if !resp.Detected || len(resp.Points) == 0 {
		return nil, ErrNoFaceDetected
	}
	return FromWire(resp.Points), nil
}

func (p *provider) detect(ctx context.Context, path string, imageData []byte) (*detectResponse, error) {
	reqBody, err := json.Marshal(detectRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(imageData),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detector request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector returned status %d", httpResp.StatusCode)
	}

	var resp detectResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode detector response: %w", err)
	}

	return &resp, nil
}

// FromWire drops malformed entries rather than defaulting them: a point
// that cannot be parsed is the same as a point that was never detected.
func FromWire(points map[string][]float64) *Set {
	named := make(map[Name]Point, len(points))
	for key, coords := range points {
		if len(coords) < 2 {
			continue
		}
		named[Name(key)] = Point{X: coords[0], Y: coords[1]}
	}
	return NewSet(named)
}
