package websocketPkg

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StyleSense/pkg/landmark"
)

// newEchoDetector serves a detector that tags its response with the first
// byte of the frame it received, so tests can verify request/response
// pairing under concurrency.
func newEchoDetector(t *testing.T) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, frame, err := conn.ReadMessage()
			if err != nil {
				return
			}

			resp := frameResponse{
				Detected: true,
				Points:   map[string][]float64{"Echo": {float64(frame[0]), 0}},
			}
			payload, err := json.Marshal(resp)
			if err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// waitConnected blocks until the background dials have finished, so a
// late startup Reconnect cannot close a connection mid-exchange.
func waitConnected(t *testing.T, client IWebsocket) {
	t.Helper()
	require.Eventually(t, func() bool {
		return client.IsConnected(PoseStream) && client.IsConnected(FaceStream)
	}, 5*time.Second, 10*time.Millisecond)
}

func TestProcessPoseFrame(t *testing.T) {
	srv := newEchoDetector(t)
	t.Setenv("DETECTOR_POSE_WS_URL", wsURL(srv))
	t.Setenv("DETECTOR_FACE_WS_URL", wsURL(srv))

	client := NewDetectorClient()
	defer client.CloseConnections()
	waitConnected(t, client)

	set, err := client.ProcessPoseFrame([]byte{42})
	require.NoError(t, err)

	point, ok := set.Get(landmark.Name("Echo"))
	require.True(t, ok)
	assert.Equal(t, 42.0, point.X)
}

func TestProcessFrameConcurrentClients(t *testing.T) {
	srv := newEchoDetector(t)
	t.Setenv("DETECTOR_POSE_WS_URL", wsURL(srv))
	t.Setenv("DETECTOR_FACE_WS_URL", wsURL(srv))

	client := NewDetectorClient()
	defer client.CloseConnections()
	waitConnected(t, client)

	const (
		workers         = 4
		framesPerWorker = 25
	)

	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for tag := 0; tag < workers; tag++ {
		wg.Add(1)
		go func(tag byte) {
			defer wg.Done()
			for i := 0; i < framesPerWorker; i++ {
				set, err := client.ProcessPoseFrame([]byte{tag})
				if err != nil {
					errs <- err
					return
				}
				point, ok := set.Get(landmark.Name("Echo"))
				if !ok {
					errs <- fmt.Errorf("response without echo point")
					return
				}
				if point.X != float64(tag) {
					errs <- fmt.Errorf("worker %d got response for frame %v", tag, point.X)
					return
				}
			}
		}(byte(tag))
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent frame exchange: %v", err)
	}
}

func TestProcessFrameUndetected(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			payload, _ := json.Marshal(frameResponse{Detected: false})
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	t.Setenv("DETECTOR_POSE_WS_URL", wsURL(srv))
	t.Setenv("DETECTOR_FACE_WS_URL", wsURL(srv))

	client := NewDetectorClient()
	defer client.CloseConnections()
	waitConnected(t, client)

	_, err := client.ProcessPoseFrame([]byte{1})
	assert.ErrorIs(t, err, landmark.ErrNoPoseDetected)

	_, err = client.ProcessFaceFrame([]byte{1})
	assert.ErrorIs(t, err, landmark.ErrNoFaceDetected)
}
