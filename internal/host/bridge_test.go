package host

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// fakeBridge serves the bridge protocol for one connection: handshake, then
// canned query/translate behavior over an in-memory selection.
type fakeBridge struct {
	upgrader websocket.Upgrader

	hasSelection bool
	u, v         float64
	version      string // welcome protocol version, defaults to the real one
}

func (b *fakeBridge) handler(w http.ResponseWriter, r *http.Request) {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var hello BridgeHello
	if err := conn.ReadJSON(&hello); err != nil || hello.Type != BridgeTypeHello {
		return
	}

	version := b.version
	if version == "" {
		version = BridgeProtocolVersion
	}
	if err := conn.WriteJSON(BridgeWelcome{Type: BridgeTypeWelcome, ProtocolVersion: version, Host: "fakehost"}); err != nil {
		return
	}

	for {
		var req BridgeRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}

		var resp BridgeResponse
		switch req.Type {
		case BridgeTypeQueryUV:
			if !b.hasSelection {
				resp = BridgeResponse{Type: BridgeTypeError, ID: req.ID, Message: ErrNoSelection.Error()}
			} else {
				resp = BridgeResponse{Type: BridgeTypeUV, ID: req.ID, U: b.u, V: b.v, Count: 1}
			}
		case BridgeTypeTranslateUV:
			if !b.hasSelection {
				resp = BridgeResponse{Type: BridgeTypeError, ID: req.ID, Message: ErrNoSelection.Error()}
			} else {
				b.u += req.DU
				b.v += req.DV
				resp = BridgeResponse{Type: BridgeTypeOK, ID: req.ID}
			}
		default:
			resp = BridgeResponse{Type: BridgeTypeError, ID: req.ID, Message: "unknown request"}
		}

		if err := conn.WriteJSON(resp); err != nil {
			return
		}
	}
}

func startFakeBridge(t *testing.T, b *fakeBridge) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(b.handler))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestBridgeHost_QueryAndTranslate(t *testing.T) {
	bridge := &fakeBridge{hasSelection: true, u: 0.5, v: 2.5}
	url := startFakeBridge(t, bridge)

	h := NewBridgeHost(url, time.Second)
	ctx := context.Background()
	if err := h.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer h.Close()

	u, v, err := h.FirstSelectionUV(ctx)
	if err != nil {
		t.Fatalf("FirstSelectionUV failed: %v", err)
	}
	if u != 0.5 || v != 2.5 {
		t.Errorf("FirstSelectionUV = (%v, %v), expected (0.5, 2.5)", u, v)
	}

	if err := h.TranslateUV(ctx, 2, -1); err != nil {
		t.Fatalf("TranslateUV failed: %v", err)
	}

	u, v, err = h.FirstSelectionUV(ctx)
	if err != nil {
		t.Fatalf("FirstSelectionUV after translate failed: %v", err)
	}
	if u != 2.5 || v != 1.5 {
		t.Errorf("FirstSelectionUV after translate = (%v, %v), expected (2.5, 1.5)", u, v)
	}
}

func TestBridgeHost_NoSelection(t *testing.T) {
	url := startFakeBridge(t, &fakeBridge{hasSelection: false})

	h := NewBridgeHost(url, time.Second)
	ctx := context.Background()
	if err := h.Connect(ctx); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer h.Close()

	if _, _, err := h.FirstSelectionUV(ctx); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection from query, got %v", err)
	}
	if err := h.TranslateUV(ctx, 1, 0); !errors.Is(err, ErrNoSelection) {
		t.Errorf("expected ErrNoSelection from translate, got %v", err)
	}
}

func TestBridgeHost_VersionMismatch(t *testing.T) {
	url := startFakeBridge(t, &fakeBridge{version: "99"})

	h := NewBridgeHost(url, time.Second)
	if err := h.Connect(context.Background()); err == nil {
		h.Close()
		t.Fatal("Connect should reject unsupported protocol version")
	}
}

func TestBridgeHost_Describe(t *testing.T) {
	url := startFakeBridge(t, &fakeBridge{hasSelection: true})

	h := NewBridgeHost(url, time.Second)
	if !strings.Contains(h.Describe(), "bridge at ") {
		t.Errorf("Describe() before connect = %q", h.Describe())
	}

	if err := h.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer h.Close()

	if !strings.Contains(h.Describe(), "fakehost") {
		t.Errorf("Describe() after connect = %q, expected host name", h.Describe())
	}
}

func TestBridgeHost_NotConnected(t *testing.T) {
	h := NewBridgeHost("ws://127.0.0.1:1/udim", time.Second)
	if _, _, err := h.FirstSelectionUV(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
}
