package naija

import (
	"strings"

	"github.com/google/uuid"
)

// Person is a coherent identity: the names share one tribe, the email is
// derived from those same names, and the prefix agrees with the gender.
type Person struct {
	ID          uuid.UUID `json:"id"`
	Prefix      string    `json:"prefix"`
	FirstName   string    `json:"first_name"`
	MiddleName  string    `json:"middle_name,omitempty"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	Tribe       Tribe     `json:"tribe"`
	Gender      Gender    `json:"gender"`
	Degree      string    `json:"degree"`
	School      string    `json:"school"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	State       string    `json:"state"`
}

// Person returns a randomized person. Unset options are filled with random
// choices, and every name-derived field is generated from the same tribe
// and gender so the identity holds together.
func (g *Generator) Person(opts *NameOptions) (*Person, error) {
	tribe, gender, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if tribe == "" {
		tribe = g.randTribe()
	}
	if gender == "" {
		gender = g.randGender()
	}

	first, err := g.pickFirstName(tribe, gender)
	if err != nil {
		return nil, err
	}
	middle := ""
	if opts != nil && opts.MiddleName {
		if middle, err = g.pickFirstName(tribe, gender); err != nil {
			return nil, err
		}
	}
	last, err := g.pickLastName(tribe)
	if err != nil {
		return nil, err
	}

	prefix, err := g.Prefix(gender)
	if err != nil {
		return nil, err
	}
	degree, err := g.Degree("")
	if err != nil {
		return nil, err
	}
	school, err := g.School(nil)
	if err != nil {
		return nil, err
	}
	email, err := g.composeEmail(first, last, "")
	if err != nil {
		return nil, err
	}
	phone, err := g.PhoneNumber(nil)
	if err != nil {
		return nil, err
	}
	state, err := g.State(nil)
	if err != nil {
		return nil, err
	}

	parts := []string{first}
	if middle != "" {
		parts = append(parts, middle)
	}
	parts = append(parts, last)

	return &Person{
		ID:          uuid.New(),
		Prefix:      prefix,
		FirstName:   first,
		MiddleName:  middle,
		LastName:    last,
		FullName:    strings.Join(parts, " "),
		Tribe:       tribe,
		Gender:      gender,
		Degree:      degree,
		School:      school,
		Email:       email,
		PhoneNumber: phone,
		State:       state,
	}, nil
}

// VCard renders the person as a vCard 3.0 contact.
func (p *Person) VCard() string {
	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}
	writeLine("BEGIN:VCARD")
	writeLine("VERSION:3.0")
	writeLine("N:" + p.LastName + ";" + p.FirstName + ";" + p.MiddleName + ";" + p.Prefix + ";")
	writeLine("FN:" + p.FullName)
	writeLine("EMAIL;TYPE=INTERNET:" + p.Email)
	writeLine("TEL;TYPE=CELL:" + p.PhoneNumber)
	writeLine("ADR;TYPE=HOME:;;;" + p.State + ";;;Nigeria")
	writeLine("UID:urn:uuid:" + p.ID.String())
	writeLine("END:VCARD")
	return b.String()
}
