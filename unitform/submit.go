package unitform

import (
	"context"

	"github.com/milk9111/wargear/logger"
	"github.com/sirupsen/logrus"
)

// Result is the outcome of a background submission.
type Result struct {
	Form    Form
	Ack     Ack
	Err     error
	Message string
}

// Submitter runs submissions off the game loop and hands results back
// through a channel that Poll drains.
type Submitter struct {
	client  *Client
	results chan Result
	pending int
}

func NewSubmitter(client *Client) *Submitter {
	return &Submitter{client: client, results: make(chan Result, 4)}
}

// Pending reports how many submissions have not been polled yet.
func (s *Submitter) Pending() int {
	return s.pending
}

func (s *Submitter) Submit(ctx context.Context, form Form) {
	s.pending++
	go func() {
		ack, err := s.client.Submit(ctx, form)
		res := Result{Form: form, Ack: ack, Err: err, Message: MsgCreated}
		entry := logger.Log.WithFields(logrus.Fields{"unit_type": form.UnitType, "endpoint": s.client.Endpoint})
		if err != nil {
			res.Message = MsgFailed
			entry.WithError(err).Error("unit submission failed")
		} else {
			entry.WithField("ack", ack).Info("unit created")
		}
		s.results <- res
	}()
}

// Poll returns a finished result without blocking.
func (s *Submitter) Poll() (Result, bool) {
	select {
	case res := <-s.results:
		s.pending--
		return res, true
	default:
		return Result{}, false
	}
}
