package order

import "time"

// TimelineStage is one row of the customer-facing tracking timeline.
//
// Completed is true when the order's current status sits at or past this
// stage in the fixed sequence. Active is true only for the stage that equals
// the current status, so exactly one stage of a timeline is active.
// Timestamp is zero for stages the order has not entered yet.
type TimelineStage struct {
	Status    Status
	Label     string
	Completed bool
	Active    bool
	Timestamp time.Time
}

// Timeline derives the four-stage tracking timeline from the order's current
// status and transition history.
//
// The Received stage always carries the order date. Later stages carry the
// timestamp of their most recent history entry when the order has passed
// through them; orders recorded before transition history existed show those
// stages without a timestamp.
func (o *Order) Timeline() []TimelineStage {
	current := o.status.Index()

	stages := make([]TimelineStage, 0, len(StageSequence()))
	for i, stage := range StageSequence() {
		ts := TimelineStage{
			Status:    stage,
			Label:     stage.Text(),
			Completed: i <= current,
			Active:    i == current,
		}

		if stage == Received {
			ts.Timestamp = o.orderDate
		} else if i <= current {
			ts.Timestamp = o.lastEntered(stage)
		}

		stages = append(stages, ts)
	}

	return stages
}

// lastEntered returns the timestamp of the most recent history entry for the
// given status, or the zero time if the order never entered it.
func (o *Order) lastEntered(status Status) time.Time {
	for i := len(o.history) - 1; i >= 0; i-- {
		if o.history[i].Status == status {
			return o.history[i].Timestamp
		}
	}
	return time.Time{}
}
