package wapcdriver

import (
	"context"
	"errors"
	"fmt"

	sdkproto "github.com/tarmac-project/protobuf-go/sdk"
	proto "github.com/tarmac-project/protobuf-go/sdk/sql"
	wapc "github.com/wapc/wapc-guest-tinygo"

	"github.com/guestkit/postgres/driver"
)

const (
	// DefaultNamespace is used when no explicit namespace is provided.
	DefaultNamespace = "tarmac"

	capabilityName = "sql"
	fnQuery        = "query"

	// probeQuery verifies the capability is reachable during Connect.
	probeQuery = "SELECT 1"

	hostStatusOK       = int32(200)
	hostStatusPartial  = int32(206)
	hostStatusBadInput = int32(400)
	hostStatusMissing  = int32(404)
	hostStatusError    = int32(500)
)

// ErrMarshalRequest wraps failures while encoding the request payload.
var ErrMarshalRequest = errors.New("failed to marshal request")

// HostCall defines the waPC host function signature used by the driver.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how the driver interacts with the host runtime.
type Config struct {
	// Namespace is the function namespace used to scope host calls. If
	// empty, DefaultNamespace is used.
	Namespace string

	// HostCall overrides the waPC host function used for SQL operations.
	HostCall HostCall
}

// Driver implements driver.Driver over the host "sql" capability.
type Driver struct {
	namespace string
	hostCall  HostCall
}

// New creates a waPC-backed database driver.
func New(config Config) (*Driver, error) {
	namespace := config.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	hostCall := config.HostCall
	if hostCall == nil {
		hostCall = wapc.HostCall
	}

	return &Driver{namespace: namespace, hostCall: hostCall}, nil
}

// Connect verifies the host capability answers queries. The host owns the
// physical connection, so settings are not used here.
func (d *Driver) Connect(ctx context.Context, _ driver.Settings) (driver.Session, error) {
	s := &session{driver: d}
	rs, err := s.Query(ctx, probeQuery)
	if err != nil {
		return nil, err
	}
	_ = rs.Close()
	return s, nil
}

// session is a logical session bound to the driver's namespace.
type session struct {
	driver *Driver
	closed bool
}

// Query submits query text to the host capability and materializes the
// response rows.
func (s *session) Query(_ context.Context, sql string) (driver.ResultSet, error) {
	if s.closed {
		return nil, &driver.StatusError{Class: driver.StatusFatal, Message: "session is closed"}
	}

	req := &proto.SQLQuery{Query: []byte(sql)}
	b, err := req.MarshalVT()
	if err != nil {
		return nil, errors.Join(ErrMarshalRequest, err)
	}

	respBytes, callErr := s.driver.hostCall(s.driver.namespace, capabilityName, fnQuery, b)
	if callErr != nil && len(respBytes) == 0 {
		return nil, &driver.StatusError{Class: driver.StatusFatal, Message: callErr.Error()}
	}

	var resp proto.SQLQueryResponse
	if unmarshalErr := resp.UnmarshalVT(respBytes); unmarshalErr != nil {
		return nil, &driver.StatusError{
			Class:   driver.StatusMalformed,
			Message: fmt.Sprintf("undecodable host response: %v", unmarshalErr),
		}
	}

	if statusErr := validateStatus(resp.GetStatus(), callErr); statusErr != nil {
		return nil, statusErr
	}

	return decodeRows(resp.GetColumns(), resp.GetData())
}

// Close marks the session closed. The host releases its own resources.
func (s *session) Close(_ context.Context) error {
	s.closed = true
	return nil
}

// validateStatus maps the host's status codes onto the capability's
// failure classes. 200 and 206 are success.
func validateStatus(status *sdkproto.Status, callErr error) *driver.StatusError {
	if status == nil {
		message := "host response carried no status"
		if callErr != nil {
			message = fmt.Sprintf("%s: %v", message, callErr)
		}
		return &driver.StatusError{Class: driver.StatusMalformed, Message: message}
	}

	code := status.GetCode()
	switch code {
	case hostStatusOK, hostStatusPartial:
		return nil
	case hostStatusBadInput, hostStatusMissing:
		return &driver.StatusError{Class: driver.StatusNonFatal, Message: statusText(status)}
	case hostStatusError:
		return &driver.StatusError{Class: driver.StatusFatal, Message: statusText(status)}
	default:
		return &driver.StatusError{
			Class:   driver.StatusMalformed,
			Message: fmt.Sprintf("unexpected host status code %d", code),
		}
	}
}

// statusText prefers the host's own diagnostic over a synthesized one.
func statusText(status *sdkproto.Status) string {
	if msg := status.GetStatus(); msg != "" {
		return msg
	}
	return fmt.Sprintf("host status %d", status.GetCode())
}

var (
	_ driver.Driver  = (*Driver)(nil)
	_ driver.Session = (*session)(nil)
)
