package ports

import (
	"context"
	"encoding/json"
	"fmt"
)

// Operation names a remote carrier operation. The set is closed: the compiler
// only ever invokes the operations declared here.
type Operation string

const (
	OpGeneratePackagesNumbers     Operation = "generatePackagesNumbersV4"
	OpGenerateSpedLabels          Operation = "generateSpedLabelsV4"
	OpFindPostalCode              Operation = "findPostalCodeV1"
	OpGetCourierOrderAvailability Operation = "getCourierOrderAvailabilityV1"
	OpGetEventsForCustomer        Operation = "getEventsForCustomerV4"
	OpGetEventsForWaybill         Operation = "getEventsForWaybillV1"
	OpMarkEventsAsProcessed       Operation = "markEventsAsProcessedV1"
)

// Operations lists every supported operation.
var Operations = []Operation{
	OpGeneratePackagesNumbers, OpGenerateSpedLabels, OpFindPostalCode,
	OpGetCourierOrderAvailability, OpGetEventsForCustomer, OpGetEventsForWaybill,
	OpMarkEventsAsProcessed,
}

// Response is the carrier's reply to one operation, left encoded until a caller
// knows what shape to expect.
type Response struct {
	Operation Operation       `json:"operation"`
	Body      json.RawMessage `json:"body"`
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return fmt.Errorf("decode %s response: empty body", r.Operation)
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode %s response: %w", r.Operation, err)
	}
	return nil
}

// RemoteFault is an error reported by the carrier itself (as opposed to a
// transport failure reaching it).
type RemoteFault struct {
	Operation Operation
	Code      string
	Message   string
}

func (f *RemoteFault) Error() string {
	if f.Code != "" {
		return fmt.Sprintf("remote fault in %s: %s: %s", f.Operation, f.Code, f.Message)
	}
	return fmt.Sprintf("remote fault in %s: %s", f.Operation, f.Message)
}

// RemoteInvoker performs one remote operation with fully-built documents. The
// last document is always the auth document. Implementations own the wire
// encoding, transport, and any retry policy.
type RemoteInvoker interface {
	Invoke(ctx context.Context, op Operation, docs ...any) (*Response, error)
}
