package simulation

import (
	"fmt"

	"tower-simulator/pkg/types"
)

// RadioMessage is one exchange between the tower and an aircraft, stamped
// with the tick it happened on.
type RadioMessage struct {
	Tick     int64
	Callsign types.AircraftID
	Message  string
	IsUrgent bool
}

func (m RadioMessage) String() string {
	s := fmt.Sprintf("[%04d] %s: %s", m.Tick, m.Callsign, m.Message)
	if m.IsUrgent {
		s += " (URGENT)"
	}
	return s
}

func (s *Simulation) AddRadioMessage(callsign types.AircraftID, message string, isUrgent bool) {
	msg := RadioMessage{
		Tick:     s.Ticks,
		Callsign: callsign,
		Message:  message,
		IsUrgent: isUrgent,
	}
	s.RadioLog = append(s.RadioLog, msg)

	if s.maxRadioLogSize > 0 && len(s.RadioLog) > s.maxRadioLogSize {
		s.RadioLog = s.RadioLog[len(s.RadioLog)-s.maxRadioLogSize:]
	}
}
