package types

import "strings"

// AircraftID is an aircraft's callsign, the key used to refer to it in save
// files and operator commands.
type AircraftID string

// ParseAircraftID trims operator input into a callsign. Case is kept, since
// callsigns are compared exactly.
func ParseAircraftID(s string) AircraftID {
	return AircraftID(strings.TrimSpace(s))
}

func (id AircraftID) String() string {
	return string(id)
}

// Valid reports whether the callsign can be written to a save file. The save
// format uses ':' and ',' as separators, so neither may appear in a callsign.
func (id AircraftID) Valid() bool {
	return id != "" && id != "empty" && !strings.ContainsAny(string(id), ":,\n\r")
}
