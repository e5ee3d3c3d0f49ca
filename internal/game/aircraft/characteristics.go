package aircraft

type AircraftType int

const (
	AIRPLANE AircraftType = iota
	HELICOPTER
)

var TypeStringMap = map[AircraftType]string{
	AIRPLANE:   "AIRPLANE",
	HELICOPTER: "HELICOPTER",
}

func (t AircraftType) String() string {
	return TypeStringMap[t]
}

// Characteristics describes an aircraft model. Weights are in kilograms and
// fuel in litres.
type Characteristics struct {
	Name              string
	Type              AircraftType
	EmptyWeight       int
	MaxTakeoffWeight  int
	FuelCapacity      float64
	PassengerCapacity int
	FreightCapacity   int
}

var (
	AIRBUS_A320 = &Characteristics{
		Name: "AIRBUS_A320", Type: AIRPLANE,
		EmptyWeight: 42600, MaxTakeoffWeight: 78000, FuelCapacity: 27200,
		PassengerCapacity: 150,
	}
	BOEING_747_8F = &Characteristics{
		Name: "BOEING_747_8F", Type: AIRPLANE,
		EmptyWeight: 197131, MaxTakeoffWeight: 447700, FuelCapacity: 226117,
		FreightCapacity: 137756,
	}
	ROBINSON_R44 = &Characteristics{
		Name: "ROBINSON_R44", Type: HELICOPTER,
		EmptyWeight: 658, MaxTakeoffWeight: 1134, FuelCapacity: 190,
		PassengerCapacity: 4,
	}
	BOEING_787 = &Characteristics{
		Name: "BOEING_787", Type: AIRPLANE,
		EmptyWeight: 119950, MaxTakeoffWeight: 227930, FuelCapacity: 126206,
		PassengerCapacity: 242,
	}
	FOKKER_100 = &Characteristics{
		Name: "FOKKER_100", Type: AIRPLANE,
		EmptyWeight: 24375, MaxTakeoffWeight: 44450, FuelCapacity: 13365,
		PassengerCapacity: 97,
	}
	SIKORSKY_SKYCRANE = &Characteristics{
		Name: "SIKORSKY_SKYCRANE", Type: HELICOPTER,
		EmptyWeight: 8724, MaxTakeoffWeight: 19050, FuelCapacity: 3328,
		FreightCapacity: 9075,
	}
)

// AllCharacteristics is the table of known models in a fixed order.
var AllCharacteristics = []*Characteristics{
	AIRBUS_A320, BOEING_747_8F, ROBINSON_R44, BOEING_787, FOKKER_100, SIKORSKY_SKYCRANE,
}

// LookupCharacteristics finds a model by its exact identifier.
func LookupCharacteristics(name string) (*Characteristics, bool) {
	for _, c := range AllCharacteristics {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// CarriesPassengers reports whether the model is a passenger aircraft; models
// without passenger seats carry freight.
func (c *Characteristics) CarriesPassengers() bool {
	return c.PassengerCapacity > 0
}

// CargoCapacity is the passenger capacity for passenger models and the
// freight capacity in kilograms otherwise.
func (c *Characteristics) CargoCapacity() int {
	if c.CarriesPassengers() {
		return c.PassengerCapacity
	}
	return c.FreightCapacity
}
