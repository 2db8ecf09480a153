package screen

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rotation is the display orientation in degrees clockwise from the panel's native landscape.
type Rotation int

// Supported rotations.
const (
	Landscape        Rotation = 0
	Portrait         Rotation = 90
	ReverseLandscape Rotation = 180
	ReversePortrait  Rotation = 270
)

var rotationNames = []struct {
	Name     string
	Rotation Rotation
}{
	{"portrait", Portrait},
	{"landscape", Landscape},
	{"reverse_portrait", ReversePortrait},
	{"reverse_landscape", ReverseLandscape},
}

// RotationNames lists the accepted rotation names.
func RotationNames() []string {
	names := make([]string, len(rotationNames))
	for i, r := range rotationNames {
		names[i] = r.Name
	}
	return names
}

// ParseRotation resolves a rotation name or a plain decimal number of degrees. Names are
// matched exactly.
func ParseRotation(s string) (Rotation, error) {
	for _, r := range rotationNames {
		if r.Name == s {
			return r.Rotation, nil
		}
	}
	if s != "" && strings.Trim(s, "0123456789") == "" {
		deg, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %w", ErrInvalidRotation, s, err)
		}
		return NormalizeRotation(Rotation(deg))
	}
	return 0, fmt.Errorf("%w %q, must be one of: %s", ErrInvalidRotation, s, strings.Join(RotationNames(), ", "))
}

// NormalizeRotation checks r is one of 0, 90, 180 or 270 degrees.
func NormalizeRotation(r Rotation) (Rotation, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	return r, nil
}

// Validate checks r is one of 0, 90, 180 or 270 degrees.
func (r Rotation) Validate() error {
	switch r {
	case Landscape, Portrait, ReverseLandscape, ReversePortrait:
		return nil
	default:
		return fmt.Errorf("%w: %d degrees, must be 0, 90, 180 or 270", ErrInvalidRotation, int(r))
	}
}

// Swapped reports whether the logical width and height are the native height and width.
func (r Rotation) Swapped() bool {
	return r == Portrait || r == ReversePortrait
}

// Name is the rotation name, or "unknown".
func (r Rotation) Name() string {
	for _, v := range rotationNames {
		if v.Rotation == r {
			return v.Name
		}
	}
	return "unknown"
}

func (r Rotation) String() string {
	return fmt.Sprintf("%s (%d°)", r.Name(), int(r))
}

// UnmarshalYAML accepts a rotation name or degrees.
func (r *Rotation) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseRotation(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalYAML encodes the rotation by name.
func (r Rotation) MarshalYAML() (any, error) {
	return r.Name(), nil
}
