package host

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"
)

// MEL constants for the command port binding
const (
	// MELQueryFirstUV converts the live selection to UVs and prints the
	// position of the first UV vertex. Errors out with a fixed message when
	// the selection converts to nothing.
	MELQueryFirstUV = `string $udimSel[] = ` + "`ls -selection -flatten`" + `; string $udimUVs[] = ` + "`polyListComponentConversion -toUV $udimSel`" + `; if (size($udimUVs) == 0) { error "no UV components selected"; } float $udimPos[] = ` + "`polyEditUV -query -u -v $udimUVs[0]`" + `; print ($udimPos[0] + " " + $udimPos[1]);`

	// MELTranslateUV moves the selected UV shells; formatted with dU and dV
	MELTranslateUV = "polyMoveUV -translateU %s -translateV %s;"

	// MELNoSelectionMessage is the error text raised by MELQueryFirstUV
	MELNoSelectionMessage = "no UV components selected"

	// ReplyTerminator ends every command port reply
	ReplyTerminator = '\x00'

	// DefaultMayaAddress is the conventional commandPort address
	DefaultMayaAddress = "127.0.0.1:20220"
)

// MayaHost drives Maya through its commandPort: a plain TCP socket that
// accepts MEL source and answers with NUL-terminated result text.
// Open the port in Maya with: commandPort -name ":20220" -sourceType "mel"
type MayaHost struct {
	address string
	timeout time.Duration

	connMutex sync.Mutex
	conn      net.Conn
	reader    *bufio.Reader
}

// NewMayaHost creates a command port binding for the given TCP address
func NewMayaHost(address string, timeout time.Duration) *MayaHost {
	if address == "" {
		address = DefaultMayaAddress
	}
	return &MayaHost{
		address: address,
		timeout: timeout,
	}
}

// Connect dials the command port
func (h *MayaHost) Connect(ctx context.Context) error {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if h.conn != nil {
		return nil
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", h.address)
	if err != nil {
		return fmt.Errorf("failed to dial Maya command port %s: %w", h.address, err)
	}

	h.conn = conn
	h.reader = bufio.NewReader(conn)
	log.Printf("Connected to Maya command port at %s", h.address)
	return nil
}

// Close closes the command port connection
func (h *MayaHost) Close() error {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if h.conn == nil {
		return nil
	}
	err := h.conn.Close()
	h.conn = nil
	h.reader = nil
	return err
}

// Describe returns a description of the binding for the status bar
func (h *MayaHost) Describe() string {
	return "Maya command port at " + h.address
}

// FirstSelectionUV queries the UV position of the first selected UV vertex
func (h *MayaHost) FirstSelectionUV(ctx context.Context) (float64, float64, error) {
	reply, err := h.send(ctx, MELQueryFirstUV)
	if err != nil {
		return 0, 0, err
	}
	return parseUVReply(reply)
}

// TranslateUV issues a polyMoveUV for the current selection
func (h *MayaHost) TranslateUV(ctx context.Context, du, dv float64) error {
	cmd := fmt.Sprintf(MELTranslateUV, formatMELFloat(du), formatMELFloat(dv))
	reply, err := h.send(ctx, cmd)
	if err != nil {
		return err
	}
	return replyError(reply)
}

// send writes one MEL command and reads the NUL-terminated reply
func (h *MayaHost) send(ctx context.Context, cmd string) (string, error) {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()

	if h.conn == nil {
		return "", ErrNotConnected
	}

	deadline := time.Now().Add(h.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := h.conn.SetDeadline(deadline); err != nil {
		return "", fmt.Errorf("failed to set command deadline: %w", err)
	}

	if _, err := h.conn.Write([]byte(cmd + "\n")); err != nil {
		return "", fmt.Errorf("failed to send MEL command: %w", err)
	}

	// A partial reply without the terminator would leave the stream
	// desynced for the next command, so it is never surfaced as a result.
	reply, err := h.reader.ReadString(ReplyTerminator)
	if err != nil {
		return "", fmt.Errorf("failed to read command port reply: %w", err)
	}

	return strings.TrimRight(reply, "\x00\n\r "), nil
}

// parseUVReply extracts the two UV floats from a command port reply
func parseUVReply(reply string) (float64, float64, error) {
	if err := replyError(reply); err != nil {
		return 0, 0, err
	}

	fields := strings.Fields(stripResultDecoration(reply))
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("unexpected UV reply from Maya: %q", reply)
	}

	u, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid U value in Maya reply %q: %w", reply, err)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid V value in Maya reply %q: %w", reply, err)
	}
	return u, v, nil
}

// replyError maps MEL error replies to typed errors. The command port
// reports script errors as text, so preconditions must be detected here
// rather than surfacing as parse faults.
func replyError(reply string) error {
	lower := strings.ToLower(reply)
	if !strings.Contains(lower, "error:") {
		return nil
	}
	if strings.Contains(lower, MELNoSelectionMessage) {
		return ErrNoSelection
	}
	return fmt.Errorf("maya error: %s", strings.TrimSpace(stripResultDecoration(reply)))
}

// stripResultDecoration removes the optional "// Result: ... //" framing
// some Maya versions emit on command port replies.
func stripResultDecoration(reply string) string {
	s := strings.TrimSpace(reply)
	s = strings.TrimPrefix(s, "// Result:")
	s = strings.TrimPrefix(s, "// Error:")
	s = strings.TrimSuffix(s, "//")
	return strings.TrimSpace(s)
}

// formatMELFloat renders a float without exponent notation for MEL
func formatMELFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
