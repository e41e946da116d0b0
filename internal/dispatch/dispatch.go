// Package dispatch delivers order payloads to the control system over a
// websocket connection and handles order cancellation. Dry-run mode
// short-circuits before any network traffic.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osrtools/osrdesk/internal/logging"
	"github.com/osrtools/osrdesk/internal/payload"
)

// DefaultTimeout bounds a single dispatch round trip.
const DefaultTimeout = 10 * time.Second

// ConnectionError reports a failure to reach or talk to the controller.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("controller %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// RejectedError reports a payload the controller refused.
type RejectedError struct {
	Detail string
}

func (e *RejectedError) Error() string {
	return "order rejected: " + e.Detail
}

// Dispatcher sends order payloads to one controller endpoint.
type Dispatcher struct {
	Endpoint string
	DryRun   bool
	Timeout  time.Duration
}

// NewDispatcher creates a dispatcher for the given ws:// endpoint.
func NewDispatcher(endpoint string, dryRun bool) *Dispatcher {
	return &Dispatcher{Endpoint: endpoint, DryRun: dryRun, Timeout: DefaultTimeout}
}

// Send delivers the payload and waits for the controller's acknowledgement.
// An "ok" ack is success; "error: <detail>" becomes a RejectedError. In
// dry-run mode Send succeeds without touching the network.
func (d *Dispatcher) Send(ctx context.Context, doc string) error {
	if strings.TrimSpace(doc) == "" {
		return fmt.Errorf("payload is empty")
	}
	orderID := payload.OrderID(doc)
	if d.DryRun {
		logging.LogDispatch(d.Endpoint, orderID, true, nil)
		return nil
	}

	err := d.roundTrip(ctx, doc)
	logging.LogDispatch(d.Endpoint, orderID, false, err)
	return err
}

func (d *Dispatcher) roundTrip(ctx context.Context, message string) error {
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, d.Endpoint, nil)
	if err != nil {
		return &ConnectionError{Endpoint: d.Endpoint, Err: err}
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	conn.SetWriteDeadline(deadline)
	conn.SetReadDeadline(deadline)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(message)); err != nil {
		return &ConnectionError{Endpoint: d.Endpoint, Err: err}
	}

	_, ack, err := conn.ReadMessage()
	if err != nil {
		return &ConnectionError{Endpoint: d.Endpoint, Err: err}
	}
	return parseAck(string(ack))
}

func parseAck(ack string) error {
	ack = strings.TrimSpace(ack)
	if ack == "ok" {
		return nil
	}
	if detail, found := strings.CutPrefix(ack, "error:"); found {
		return &RejectedError{Detail: strings.TrimSpace(detail)}
	}
	return &RejectedError{Detail: "unexpected acknowledgement " + ack}
}

// Canceller withdraws previously dispatched orders.
type Canceller struct {
	Endpoint string
	DryRun   bool
	Timeout  time.Duration
}

// NewCanceller creates a canceller for the given ws:// endpoint.
func NewCanceller(endpoint string, dryRun bool) *Canceller {
	return &Canceller{Endpoint: endpoint, DryRun: dryRun, Timeout: DefaultTimeout}
}

type cancelFrame struct {
	Type      string `json:"type"`
	OrderType string `json:"order_type"`
	OrderID   string `json:"order_id"`
}

// Cancel asks the controller to withdraw the order. The returned message is
// operator-facing; ok reports whether the cancellation was accepted.
func (c *Canceller) Cancel(ctx context.Context, orderType, orderID string) (bool, string) {
	if c.DryRun {
		logging.LogCancel(orderType, orderID, true, "dry run")
		return true, "Dry run - order would be cancelled"
	}

	frame, err := json.Marshal(cancelFrame{Type: "cancel", OrderType: orderType, OrderID: orderID})
	if err != nil {
		return false, err.Error()
	}
	d := Dispatcher{Endpoint: c.Endpoint, Timeout: c.Timeout}
	if err := d.roundTrip(ctx, string(frame)); err != nil {
		logging.LogCancel(orderType, orderID, false, err.Error())
		return false, err.Error()
	}
	logging.LogCancel(orderType, orderID, true, "Success")
	return true, "Success"
}
