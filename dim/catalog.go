package dim

// Catalog dimensions.
type (
	Dimensionless = Dim[Zero, Zero, Zero]
	Length        = Dim[Pos1, Zero, Zero]
	Mass          = Dim[Zero, Pos1, Zero]
	Time          = Dim[Zero, Zero, Pos1]
	Speed         = Dim[Pos1, Zero, Neg1]
	Acceleration  = Dim[Pos1, Zero, Neg2]
	Momentum      = Dim[Pos1, Pos1, Neg1]
	Force         = Dim[Pos1, Pos1, Neg2]
	Energy        = Dim[Pos2, Pos1, Neg2]

	Area       = Dim[Pos2, Zero, Zero]
	Volume     = Dim[Pos3, Zero, Zero]
	Frequency  = Dim[Zero, Zero, Neg1]
	Wavenumber = Dim[Neg1, Zero, Zero]
	Power      = Dim[Pos2, Pos1, Neg3]
	Pressure   = Dim[Neg1, Pos1, Neg2]
	Density    = Dim[Neg3, Pos1, Zero]
)

// Catalog descriptors, composed from the three base dimensions.
var (
	DimensionlessExponents = Exponents{}
	LengthExponents        = Exponents{L: 1}
	MassExponents          = Exponents{M: 1}
	TimeExponents          = Exponents{T: 1}
	SpeedExponents         = LengthExponents.Combine(TimeExponents.Invert())
	AccelerationExponents  = SpeedExponents.Combine(TimeExponents.Invert())
	MomentumExponents      = MassExponents.Combine(SpeedExponents)
	ForceExponents         = MomentumExponents.Combine(TimeExponents.Invert())
	EnergyExponents        = ForceExponents.Combine(LengthExponents)

	AreaExponents       = LengthExponents.Scale(2)
	VolumeExponents     = LengthExponents.Scale(3)
	FrequencyExponents  = TimeExponents.Invert()
	WavenumberExponents = LengthExponents.Invert()
	PowerExponents      = EnergyExponents.Combine(TimeExponents.Invert())
	PressureExponents   = ForceExponents.Combine(AreaExponents.Invert())
	DensityExponents    = MassExponents.Combine(VolumeExponents.Invert())
)

type entry struct {
	name string
	exp  Exponents
}

var catalog = []entry{
	{"dimensionless", DimensionlessExponents},
	{"length", LengthExponents},
	{"mass", MassExponents},
	{"time", TimeExponents},
	{"speed", SpeedExponents},
	{"acceleration", AccelerationExponents},
	{"momentum", MomentumExponents},
	{"force", ForceExponents},
	{"energy", EnergyExponents},
	{"area", AreaExponents},
	{"volume", VolumeExponents},
	{"frequency", FrequencyExponents},
	{"wavenumber", WavenumberExponents},
	{"power", PowerExponents},
	{"pressure", PressureExponents},
	{"density", DensityExponents},
}

// Name returns the catalog name of e ("speed", "energy", ...).
func Name(e Exponents) (string, bool) {
	for _, c := range catalog {
		if c.exp == e {
			return c.name, true
		}
	}
	return "", false
}

// Describe renders e for diagnostics: "speed (1,0,-1)" for catalog
// dimensions, "(3,-1,-2)" otherwise.
func Describe(e Exponents) string {
	if name, ok := Name(e); ok {
		return name + " " + e.String()
	}
	return e.String()
}
