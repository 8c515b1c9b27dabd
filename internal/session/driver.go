package session

import (
	"context"

	"faregrid/internal/skyscanner"
)

// Client is the slice of the provider API a session needs.
type Client interface {
	CreateSearch(ctx context.Context, q skyscanner.Query) (*skyscanner.SearchResponse, error)
	PollSearch(ctx context.Context, sessionToken string) (*skyscanner.SearchResponse, error)
}

type phase uint8

const (
	phaseFresh phase = iota
	phaseRunning
	phaseTerminated
)

// Outcome records why a session terminated.
type Outcome uint8

const (
	OutcomeComplete Outcome = iota
	OutcomeFailed
)

// Driver walks one search session through the provider's create-then-poll
// protocol. Each Advance issues exactly one HTTP call until the session
// terminates; after that it returns (nil, nil).
//
// A Driver is not safe for concurrent use. Callers must serialize Advance.
type Driver struct {
	client  Client
	query   skyscanner.Query
	phase   phase
	token   string
	outcome Outcome
}

func New(client Client, query skyscanner.Query) *Driver {
	return &Driver{
		client: client,
		query:  query,
	}
}

// Advance produces the next snapshot. The first call creates the session;
// subsequent calls poll it with the token from the first snapshot. A nil
// snapshot with a nil error means the session is exhausted.
//
// A transport error or a failed snapshot terminates the session; later calls
// issue no HTTP and return (nil, nil).
func (d *Driver) Advance(ctx context.Context) (*skyscanner.SearchResponse, error) {
	switch d.phase {
	case phaseFresh:
		res, err := d.client.CreateSearch(ctx, d.query)
		if err != nil {
			d.terminate(OutcomeFailed)
			return nil, err
		}
		d.token = res.SessionToken
		d.phase = phaseRunning
		d.settle(res.Status)
		return res, nil

	case phaseRunning:
		res, err := d.client.PollSearch(ctx, d.token)
		if err != nil {
			d.terminate(OutcomeFailed)
			return nil, err
		}
		d.settle(res.Status)
		return res, nil

	default:
		return nil, nil
	}
}

// Done reports whether the session has terminated.
func (d *Driver) Done() bool {
	return d.phase == phaseTerminated
}

// Outcome is only meaningful once Done reports true.
func (d *Driver) Outcome() Outcome {
	return d.outcome
}

func (d *Driver) settle(status skyscanner.ResultStatus) {
	switch status {
	case skyscanner.ResultStatusComplete:
		d.terminate(OutcomeComplete)
	case skyscanner.ResultStatusFailed:
		d.terminate(OutcomeFailed)
	}
}

func (d *Driver) terminate(outcome Outcome) {
	d.phase = phaseTerminated
	d.outcome = outcome
}
