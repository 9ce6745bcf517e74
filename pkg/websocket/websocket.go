package websocketPkg

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"StyleSense/pkg/landmark"
)

// StreamType selects which detector stream a frame goes to.
type StreamType int

const (
	PoseStream StreamType = iota
	FaceStream
)

type IWebsocket interface {
	ProcessPoseFrame(frame []byte) (*landmark.Set, error)
	ProcessFaceFrame(frame []byte) (*landmark.Set, error)
	IsConnected(stream StreamType) bool
	Reconnect(stream StreamType) error
	CloseConnections()
}

type webSocketClient struct {
	poseConn *websocket.Conn
	faceConn *websocket.Conn

	// mu guards the connection fields. poseReq and faceReq serialize
	// whole request/response exchanges: the detector answers frames in
	// order on a single connection, so only one frame may be in flight
	// per stream.
	mu      sync.Mutex
	poseReq sync.Mutex
	faceReq sync.Mutex

	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewDetectorClient() IWebsocket {
	client := &webSocketClient{
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go client.connectInBackground(PoseStream)
	go client.connectInBackground(FaceStream)

	return client
}

func (c *webSocketClient) connectInBackground(stream StreamType) {
	err := c.Reconnect(stream)
	if err != nil {
		log.Printf("Initial connection to %s failed: %v. Will retry on demand.",
			streamName(stream), err)
	} else {
		log.Printf("Successfully connected to %s stream", streamName(stream))
	}
}

func (c *webSocketClient) IsConnected(stream StreamType) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch stream {
	case PoseStream:
		return c.poseConn != nil
	case FaceStream:
		return c.faceConn != nil
	default:
		return false
	}
}

func (c *webSocketClient) Reconnect(stream StreamType) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if stream == PoseStream && c.poseConn != nil {
		c.poseConn.Close()
		c.poseConn = nil
	} else if stream == FaceStream && c.faceConn != nil {
		c.faceConn.Close()
		c.faceConn = nil
	}

	url := streamURL(stream)
	if url == "" {
		return fmt.Errorf("URL for %s stream not configured", streamName(stream))
	}

	log.Printf("Connecting to %s at %s", streamName(stream), url)

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		err := conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
		if err != nil {
			log.Printf("Error sending pong: %v", err)
		}
		return nil
	})

	if stream == PoseStream {
		c.poseConn = conn
	} else {
		c.faceConn = conn
	}

	go c.keepAlive(stream)

	return nil
}

func (c *webSocketClient) CloseConnections() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.poseConn != nil {
		c.poseConn.Close()
		c.poseConn = nil
	}

	if c.faceConn != nil {
		c.faceConn.Close()
		c.faceConn = nil
	}
}

func (c *webSocketClient) keepAlive(stream StreamType) {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		var conn *websocket.Conn
		if stream == PoseStream {
			conn = c.poseConn
		} else {
			conn = c.faceConn
		}

		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(
			websocket.PingMessage,
			[]byte{},
			time.Now().Add(c.writeTimeout),
		)
		if err != nil {
			log.Printf("Ping failed for %s, marking connection as dead: %v",
				streamName(stream), err)
			if stream == PoseStream {
				c.poseConn = nil
			} else {
				c.faceConn = nil
			}
			conn.Close()
			c.mu.Unlock()
			return
		}

		c.mu.Unlock()
	}
}

func (c *webSocketClient) getConnection(stream StreamType) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var conn *websocket.Conn
	if stream == PoseStream {
		conn = c.poseConn
	} else {
		conn = c.faceConn
	}

	if conn == nil {
		return nil, fmt.Errorf("not connected to %s stream", streamName(stream))
	}

	return conn, nil
}

// frameResponse mirrors the detector's per-frame payload.
type frameResponse struct {
	Detected bool                 `json:"detected"`
	Points   map[string][]float64 `json:"points"`
}

func (c *webSocketClient) ProcessPoseFrame(frame []byte) (*landmark.Set, error) {
	set, err := c.processFrame(PoseStream, frame)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, landmark.ErrNoPoseDetected
	}
	return set, nil
}

func (c *webSocketClient) ProcessFaceFrame(frame []byte) (*landmark.Set, error) {
	set, err := c.processFrame(FaceStream, frame)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, landmark.ErrNoFaceDetected
	}
	return set, nil
}

func (c *webSocketClient) requestLock(stream StreamType) *sync.Mutex {
	if stream == PoseStream {
		return &c.poseReq
	}
	return &c.faceReq
}

// processFrame returns (nil, nil) when the detector saw nothing in the frame.
func (c *webSocketClient) processFrame(stream StreamType, frame []byte) (*landmark.Set, error) {
	req := c.requestLock(stream)
	req.Lock()
	defer req.Unlock()

	conn, err := c.getConnection(stream)
	if err != nil {
		if err := c.Reconnect(stream); err != nil {
			return nil, fmt.Errorf("cannot connect to %s stream: %w", streamName(stream), err)
		}
		conn, err = c.getConnection(stream)
		if err != nil {
			return nil, err
		}
	}

	c.mu.Lock()

	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))

	if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		c.dropConnection(stream, conn)
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending %s frame: %w", streamName(stream), err)
	}

	conn.SetReadDeadline(time.Now().Add(c.readTimeout))

	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.dropConnection(stream, conn)
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading %s message: %w", streamName(stream), err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var resp frameResponse
	if err := json.Unmarshal(message, &resp); err != nil {
		return nil, fmt.Errorf("error unmarshaling %s response: %w", streamName(stream), err)
	}

	if !resp.Detected || len(resp.Points) == 0 {
		return nil, nil
	}

	return landmark.FromWire(resp.Points), nil
}

// dropConnection must be called with c.mu held.
func (c *webSocketClient) dropConnection(stream StreamType, conn *websocket.Conn) {
	if stream == PoseStream {
		c.poseConn = nil
	} else {
		c.faceConn = nil
	}
	conn.Close()
}

func streamURL(stream StreamType) string {
	switch stream {
	case PoseStream:
		url := os.Getenv("DETECTOR_POSE_WS_URL")
		if url == "" {
			url = "ws://localhost:8000/v1/stream/pose"
		}
		return url
	case FaceStream:
		url := os.Getenv("DETECTOR_FACE_WS_URL")
		if url == "" {
			url = "ws://localhost:8000/v1/stream/face"
		}
		return url
	default:
		return ""
	}
}

func streamName(stream StreamType) string {
	switch stream {
	case PoseStream:
		return "pose"
	case FaceStream:
		return "face"
	default:
		return "unknown"
	}
}
