package naija

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Tribe is an ethnic group covered by the name datasets. The zero value
// means no filter.
type Tribe string

const (
	TribeYoruba Tribe = "yoruba"
	TribeIgbo   Tribe = "igbo"
	TribeHausa  Tribe = "hausa"
	TribeEdo    Tribe = "edo"
	TribeFulani Tribe = "fulani"
	TribeIjaw   Tribe = "ijaw"
)

// Tribes returns all supported tribes.
func Tribes() []Tribe {
	return []Tribe{TribeYoruba, TribeIgbo, TribeHausa, TribeEdo, TribeFulani, TribeIjaw}
}

// Valid reports whether t is a known tribe. The empty no-filter value is
// not considered valid.
func (t Tribe) Valid() bool {
	return slices.Contains(Tribes(), t)
}

// ParseTribe normalizes and validates a tribe value.
func ParseTribe(s string) (Tribe, error) {
	t := Tribe(normalize(s))
	if t == "" {
		return "", nil
	}
	if !slices.Contains(Tribes(), t) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown tribe %q, expected one of [%s]", s, joinValues(Tribes())))
	}
	return t, nil
}

// Gender narrows name generation to one of the two values present in the
// datasets. The zero value means no filter.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Genders returns all supported genders.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Valid reports whether gd is a known gender.
func (gd Gender) Valid() bool {
	return slices.Contains(Genders(), gd)
}

// ParseGender normalizes and validates a gender value.
func ParseGender(s string) (Gender, error) {
	gd := Gender(normalize(s))
	if gd == "" {
		return "", nil
	}
	if !slices.Contains(Genders(), gd) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown gender %q, expected one of [%s]", s, joinValues(Genders())))
	}
	return gd, nil
}

// DegreeType distinguishes the academic levels in the degree dataset. The
// zero value means no filter.
type DegreeType string

const (
	DegreeUndergraduate DegreeType = "undergraduate"
	DegreeMasters       DegreeType = "masters"
	DegreeDoctorate     DegreeType = "doctorate"
)

// DegreeTypes returns all supported degree types.
func DegreeTypes() []DegreeType {
	return []DegreeType{DegreeUndergraduate, DegreeMasters, DegreeDoctorate}
}

// Valid reports whether dt is a known degree type.
func (dt DegreeType) Valid() bool {
	return slices.Contains(DegreeTypes(), dt)
}

// ParseDegreeType normalizes and validates a degree type.
func ParseDegreeType(s string) (DegreeType, error) {
	dt := DegreeType(normalize(s))
	if dt == "" {
		return "", nil
	}
	if !slices.Contains(DegreeTypes(), dt) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown degree type %q, expected one of [%s]", s, joinValues(DegreeTypes())))
	}
	return dt, nil
}

// SchoolType classifies institutions in the school dataset. The zero value
// means no filter.
type SchoolType string

const (
	SchoolUniversity         SchoolType = "university"
	SchoolPolytechnic        SchoolType = "polytechnic"
	SchoolCollegeOfEducation SchoolType = "college_of_education"
)

// SchoolTypes returns all supported school types.
func SchoolTypes() []SchoolType {
	return []SchoolType{SchoolUniversity, SchoolPolytechnic, SchoolCollegeOfEducation}
}

// Valid reports whether st is a known school type.
func (st SchoolType) Valid() bool {
	return slices.Contains(SchoolTypes(), st)
}

// ParseSchoolType normalizes and validates a school type.
func ParseSchoolType(s string) (SchoolType, error) {
	st := SchoolType(normalize(s))
	if st == "" {
		return "", nil
	}
	if !slices.Contains(SchoolTypes(), st) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown school type %q, expected one of [%s]", s, joinValues(SchoolTypes())))
	}
	return st, nil
}

// Ownership classifies who runs an institution. The zero value means no
// filter.
type Ownership string

const (
	OwnershipFederal Ownership = "federal"
	OwnershipState   Ownership = "state"
	OwnershipPrivate Ownership = "private"
)

// Ownerships returns all supported ownership kinds.
func Ownerships() []Ownership {
	return []Ownership{OwnershipFederal, OwnershipState, OwnershipPrivate}
}

// Valid reports whether o is a known ownership kind.
func (o Ownership) Valid() bool {
	return slices.Contains(Ownerships(), o)
}

// ParseOwnership normalizes and validates an ownership value.
func ParseOwnership(s string) (Ownership, error) {
	o := Ownership(normalize(s))
	if o == "" {
		return "", nil
	}
	if !slices.Contains(Ownerships(), o) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown ownership %q, expected one of [%s]", s, joinValues(Ownerships())))
	}
	return o, nil
}

// Network is a mobile carrier with its own prefix block. The zero value
// means any carrier.
type Network string

const (
	NetworkMTN      Network = "mtn"
	NetworkGlo      Network = "glo"
	NetworkAirtel   Network = "airtel"
	NetworkEtisalat Network = "etisalat"
)

// Networks returns all supported carriers.
func Networks() []Network {
	return []Network{NetworkMTN, NetworkGlo, NetworkAirtel, NetworkEtisalat}
}

// Valid reports whether n is a known carrier. The "9mobile" alias is only
// resolved by ParseNetwork.
func (n Network) Valid() bool {
	return slices.Contains(Networks(), n)
}

// ParseNetwork normalizes and validates a carrier name. The rebranded name
// "9mobile" is accepted as an alias for etisalat.
func ParseNetwork(s string) (Network, error) {
	n := Network(normalize(s))
	if n == "" {
		return "", nil
	}
	if n == "9mobile" {
		n = NetworkEtisalat
	}
	if !slices.Contains(Networks(), n) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown network %q, expected one of [%s]", s, joinValues(Networks())))
	}
	return n, nil
}

// Region is a geopolitical zone initial as used in the state dataset. The
// zero value means no filter.
type Region string

const (
	RegionNorthCentral Region = "NC"
	RegionNorthEast    Region = "NE"
	RegionNorthWest    Region = "NW"
	RegionSouthEast    Region = "SE"
	RegionSouthSouth   Region = "SS"
	RegionSouthWest    Region = "SW"
)

// Regions returns all geopolitical zone initials.
func Regions() []Region {
	return []Region{RegionNorthCentral, RegionNorthEast, RegionNorthWest, RegionSouthEast, RegionSouthSouth, RegionSouthWest}
}

// Valid reports whether r is a known zone initial.
func (r Region) Valid() bool {
	return slices.Contains(Regions(), r)
}

// ParseRegion normalizes and validates a zone initial.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(strings.TrimSpace(s)))
	if r == "" {
		return "", nil
	}
	if !slices.Contains(Regions(), r) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("unknown region %q, expected one of [%s]", s, joinValues(Regions())))
	}
	return r, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func joinValues[T ~string](vals []T) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
