package race

import "fmt"

// Compound identifies a tyre compound.
type Compound int

const (
	Soft Compound = iota
	Medium
	Hard
	Intermediate
	Wet
)

// NumCompounds is the number of compound variants.
const NumCompounds = 5

var compoundNames = map[Compound]string{
	Soft:         "Soft",
	Medium:       "Medium",
	Hard:         "Hard",
	Intermediate: "Intermediate",
	Wet:          "Wet",
}

var compoundColors = map[Compound]string{
	Soft:         "Red",
	Medium:       "Yellow",
	Hard:         "White",
	Intermediate: "Green",
	Wet:          "Blue",
}

// Degradation rates in seconds per lap of tyre age.
var degradationRates = map[Compound]float64{
	Soft:         0.15,
	Medium:       0.08,
	Hard:         0.05,
	Intermediate: 0.10,
	Wet:          0.12,
}

// Dry-track pace offsets in seconds; negative is faster.
var speedModifiers = map[Compound]float64{
	Soft:         -1.0,
	Medium:       0.0,
	Hard:         0.8,
	Intermediate: 2.0,
	Wet:          4.0,
}

// Compounds returns every compound in declaration order.
func Compounds() []Compound {
	return []Compound{Soft, Medium, Hard, Intermediate, Wet}
}

// Name returns the display name, or "Unknown" for an out-of-range value.
func (c Compound) Name() string {
	if n, ok := compoundNames[c]; ok {
		return n
	}
	return "Unknown"
}

// Color returns the sidewall colour of the compound.
func (c Compound) Color() string {
	return compoundColors[c]
}

// DegradationRate returns seconds lost per lap of tyre age. Unknown compounds degrade at 0.
func (c Compound) DegradationRate() float64 {
	return degradationRates[c]
}

// SpeedModifier returns the dry-track pace offset. Unknown compounds return 0.
func (c Compound) SpeedModifier() float64 {
	return speedModifiers[c]
}

// IsDry reports whether c is a slick compound.
func (c Compound) IsDry() bool {
	return c == Soft || c == Medium || c == Hard
}

// IsWet reports whether c is a treaded wet-weather compound.
func (c Compound) IsWet() bool {
	return c == Intermediate || c == Wet
}

func (c Compound) String() string {
	return fmt.Sprintf("%s (%s)", c.Name(), c.Color())
}

func (c Compound) MarshalText() ([]byte, error) {
	return []byte(c.Name()), nil
}

// ParseCompound looks up a compound by display name.
func ParseCompound(name string) (Compound, error) {
	for c, n := range compoundNames {
		if n == name {
			return c, nil
		}
	}
	return Medium, fmt.Errorf("unknown compound: %s", name)
}

func (c *Compound) UnmarshalText(b []byte) error {
	v, err := ParseCompound(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
