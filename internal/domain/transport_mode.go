package domain

// TransportMode identifies a way of moving cargo, e.g. "Truck" or "Electric Truck".
type TransportMode string

const (
	ModeTruck         TransportMode = "Truck"
	ModeTrain         TransportMode = "Train"
	ModeShip          TransportMode = "Ship"
	ModePlane         TransportMode = "Plane"
	ModeElectricTruck TransportMode = "Electric Truck"
	ModeBiofuelTruck  TransportMode = "Biofuel Truck"
	ModeHydrogenTruck TransportMode = "Hydrogen Truck"
)

// ModeClass groups modes that serve the same function on a route.
type ModeClass string

const (
	ClassRoad ModeClass = "road"
	ClassRail ModeClass = "rail"
	ClassSea  ModeClass = "sea"
	ClassAir  ModeClass = "air"
)

// EmissionFactor is the kg of CO2 emitted per km per ton of cargo for a mode.
type EmissionFactor struct {
	Mode       TransportMode
	Class      ModeClass
	KgPerTonKm float64
}

// DefaultEmissionFactors returns the DEFRA-based factor table.
func DefaultEmissionFactors() []EmissionFactor {
	return []EmissionFactor{
		{Mode: ModeTruck, Class: ClassRoad, KgPerTonKm: 0.096},
		{Mode: ModeTrain, Class: ClassRail, KgPerTonKm: 0.028},
		{Mode: ModeShip, Class: ClassSea, KgPerTonKm: 0.016},
		{Mode: ModePlane, Class: ClassAir, KgPerTonKm: 0.602},
		{Mode: ModeElectricTruck, Class: ClassRoad, KgPerTonKm: 0.020},
		{Mode: ModeBiofuelTruck, Class: ClassRoad, KgPerTonKm: 0.050},
		{Mode: ModeHydrogenTruck, Class: ClassRoad, KgPerTonKm: 0.010},
	}
}
