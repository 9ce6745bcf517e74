package handlerUtil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/internal/api/body"
	"StyleSense/internal/api/cloth"
	"StyleSense/internal/api/outfit"
	"StyleSense/pkg/colorsample"
	"StyleSense/pkg/landmark"
)

func handleError(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	h := New(logger)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return h.Handle(c, "req-1", err, "/", "test_operation")
	})

	resp, reqErr := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	payload := map[string]string{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	return resp.StatusCode, payload
}

func TestHandleMapsDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "no pose detected",
			err:        landmark.ErrNoPoseDetected,
			wantStatus: fiber.StatusUnprocessableEntity,
			wantCode:   "NO_POSE_DETECTED",
		},
		{
			name:       "no face detected",
			err:        landmark.ErrNoFaceDetected,
			wantStatus: fiber.StatusUnprocessableEntity,
			wantCode:   "NO_FACE_DETECTED",
		},
		{
			name:       "missing image",
			err:        body.ErrMissingImage,
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "MISSING_IMAGE",
		},
		{
			name:       "invalid image",
			err:        body.ErrInvalidImage,
			wantStatus: fiber.StatusBadRequest,
			wantCode:   "INVALID_IMAGE",
		},
		{
			name:       "item not found",
			err:        cloth.ErrItemNotFound,
			wantStatus: fiber.StatusNotFound,
			wantCode:   "ITEM_NOT_FOUND",
		},
		{
			name:       "item not owned",
			err:        cloth.ErrItemNotOwned,
			wantStatus: fiber.StatusForbidden,
			wantCode:   "ITEM_NOT_OWNED",
		},
		{
			name:       "unparsable analysis",
			err:        cloth.ErrUnparsableAnalysis,
			wantStatus: fiber.StatusBadGateway,
			wantCode:   "UNPARSABLE_ANALYSIS",
		},
		{
			name:       "empty wardrobe",
			err:        outfit.ErrEmptyWardrobe,
			wantStatus: fiber.StatusNotFound,
			wantCode:   "EMPTY_WARDROBE",
		},
		{
			name:       "unparsable suggestion",
			err:        outfit.ErrUnparsableSuggestion,
			wantStatus: fiber.StatusBadGateway,
			wantCode:   "UNPARSABLE_SUGGESTION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, payload["code"])
		})
	}
}

func TestHandleInsufficientLandmarks(t *testing.T) {
	err := landmark.NewInsufficientLandmarksError("LWaist", "RWaist")

	status, payload := handleError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "INSUFFICIENT_LANDMARKS", payload["code"])
	assert.Equal(t, "LWaist, RWaist", payload["details"])
}

func TestHandleAmbiguousSample(t *testing.T) {
	err := colorsample.NewAmbiguousSampleError("skin", "too much glare")

	status, payload := handleError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "AMBIGUOUS_SAMPLE", payload["code"])
	assert.Equal(t, "skin: too much glare", payload["details"])
}

func TestHandleSentinelWithoutDedicatedBranch(t *testing.T) {
	status, payload := handleError(t, outfit.ErrNoReferencesFound)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Empty(t, payload["code"])
	assert.Equal(t, "no relevant fashion advice found for this occasion", payload["error"])
}

func TestHandleUnknownError(t *testing.T) {
	status, payload := handleError(t, errors.New("boom"))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "An unexpected error occurred", payload["error"])
}
