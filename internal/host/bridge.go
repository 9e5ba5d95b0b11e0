package host

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Bridge protocol constants. The bridge is a small plugin running inside
// the host application (a Python script in Maya or Blender) that serves
// this JSON protocol over a WebSocket.
const (
	BridgeProtocolVersion = "1"

	BridgeTypeHello       = "hello"
	BridgeTypeWelcome     = "welcome"
	BridgeTypeQueryUV     = "query_uv"
	BridgeTypeUV          = "uv"
	BridgeTypeTranslateUV = "translate_uv"
	BridgeTypeOK          = "ok"
	BridgeTypeError       = "error"

	// BridgeClientName identifies this tool in the hello message
	BridgeClientName = "udim-mover"

	// DefaultBridgeURL is the conventional bridge plugin endpoint
	DefaultBridgeURL = "ws://127.0.0.1:8765/udim"

	// BridgeHandshakeTimeout bounds the WebSocket dial and hello exchange
	BridgeHandshakeTimeout = 5 * time.Second
)

// BridgeHello is sent by the client immediately after the dial
type BridgeHello struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Client          string `json:"client"`
}

// BridgeWelcome is the host plugin's handshake answer
type BridgeWelcome struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Host            string `json:"host"`
}

// BridgeRequest is a client command matched to its response by ID
type BridgeRequest struct {
	Type string  `json:"type"`
	ID   string  `json:"id"`
	DU   float64 `json:"du,omitempty"`
	DV   float64 `json:"dv,omitempty"`
}

// BridgeResponse carries the host plugin's answer to one request
type BridgeResponse struct {
	Type    string  `json:"type"`
	ID      string  `json:"id"`
	U       float64 `json:"u,omitempty"`
	V       float64 `json:"v,omitempty"`
	Count   int     `json:"count,omitempty"`
	Message string  `json:"message,omitempty"`
}

// BridgeHost drives any host application running the bridge plugin over a
// WebSocket connection.
type BridgeHost struct {
	url     string
	timeout time.Duration

	connMutex sync.Mutex
	conn      *websocket.Conn
	hostName  string
}

// NewBridgeHost creates a bridge binding for the given WebSocket URL
func NewBridgeHost(url string, timeout time.Duration) *BridgeHost {
	if url == "" {
		url = DefaultBridgeURL
	}
	return &BridgeHost{
		url:     url,
		timeout: timeout,
	}
}

// Connect dials the bridge and performs the hello/welcome handshake
func (h *BridgeHost) Connect(ctx context.Context) error {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if h.conn != nil {
		return nil
	}

	d := websocket.Dialer{HandshakeTimeout: BridgeHandshakeTimeout}
	conn, resp, err := d.DialContext(ctx, h.url, http.Header{})
	if err != nil {
		return fmt.Errorf("failed to dial bridge at %s: %w", h.url, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	hello := BridgeHello{
		Type:            BridgeTypeHello,
		ProtocolVersion: BridgeProtocolVersion,
		Client:          BridgeClientName,
	}
	_ = conn.SetWriteDeadline(time.Now().Add(BridgeHandshakeTimeout))
	if err := conn.WriteJSON(hello); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to send bridge hello: %w", err)
	}

	var welcome BridgeWelcome
	_ = conn.SetReadDeadline(time.Now().Add(BridgeHandshakeTimeout))
	if err := conn.ReadJSON(&welcome); err != nil {
		_ = conn.Close()
		return fmt.Errorf("failed to read bridge welcome: %w", err)
	}
	if welcome.Type != BridgeTypeWelcome {
		_ = conn.Close()
		return fmt.Errorf("unexpected bridge handshake message type: %s", welcome.Type)
	}
	if welcome.ProtocolVersion != BridgeProtocolVersion {
		_ = conn.Close()
		return fmt.Errorf("unsupported bridge protocol version: %s", welcome.ProtocolVersion)
	}

	h.conn = conn
	h.hostName = welcome.Host
	log.Printf("Connected to %s bridge at %s", welcome.Host, h.url)
	return nil
}

// Close closes the bridge connection
func (h *BridgeHost) Close() error {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if h.conn == nil {
		return nil
	}
	err := h.conn.Close()
	h.conn = nil
	return err
}

// Describe returns a description of the binding for the status bar
func (h *BridgeHost) Describe() string {
	h.connMutex.Lock()
	name := h.hostName
	h.connMutex.Unlock()
	if name == "" {
		return "bridge at " + h.url
	}
	return name + " bridge at " + h.url
}

// FirstSelectionUV queries the UV position of the first selected UV vertex
func (h *BridgeHost) FirstSelectionUV(ctx context.Context) (float64, float64, error) {
	resp, err := h.roundTrip(ctx, BridgeRequest{Type: BridgeTypeQueryUV})
	if err != nil {
		return 0, 0, err
	}
	if resp.Type != BridgeTypeUV {
		return 0, 0, fmt.Errorf("unexpected bridge response type: %s", resp.Type)
	}
	if resp.Count == 0 {
		return 0, 0, ErrNoSelection
	}
	return resp.U, resp.V, nil
}

// TranslateUV asks the host plugin to translate the current selection
func (h *BridgeHost) TranslateUV(ctx context.Context, du, dv float64) error {
	resp, err := h.roundTrip(ctx, BridgeRequest{Type: BridgeTypeTranslateUV, DU: du, DV: dv})
	if err != nil {
		return err
	}
	if resp.Type != BridgeTypeOK {
		return fmt.Errorf("unexpected bridge response type: %s", resp.Type)
	}
	return nil
}

// roundTrip sends one request and waits for the response carrying its ID
func (h *BridgeHost) roundTrip(ctx context.Context, req BridgeRequest) (*BridgeResponse, error) {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if h.conn == nil {
		return nil, ErrNotConnected
	}

	req.ID = generateRequestID()

	deadline := time.Now().Add(h.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	_ = h.conn.SetWriteDeadline(deadline)
	if err := h.conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("failed to send bridge request: %w", err)
	}

	for {
		var resp BridgeResponse
		_ = h.conn.SetReadDeadline(deadline)
		if err := h.conn.ReadJSON(&resp); err != nil {
			return nil, fmt.Errorf("failed to read bridge response: %w", err)
		}
		// Skip unsolicited messages until our response arrives
		if resp.ID != req.ID {
			continue
		}
		if resp.Type == BridgeTypeError {
			if resp.Message == ErrNoSelection.Error() {
				return nil, ErrNoSelection
			}
			return nil, fmt.Errorf("bridge error: %s", resp.Message)
		}
		return &resp, nil
	}
}

// generateRequestID generates a unique request ID using UUID v7 so request
// IDs sort chronologically in bridge plugin logs.
func generateRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
