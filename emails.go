package naija

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// domainPattern allows up to four labels where the last is an
	// alphabetic TLD and the first neither starts nor ends with a hyphen.
	domainPattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9-]{1,63}){0,2}\.[A-Za-z]{2,}$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// diacriticFold strips combining marks so names like Ṣẹgun become
	// segun in address local parts.
	diacriticFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// EmailOptions narrows email generation. Zero values mean no filter.
type EmailOptions struct {
	Tribe  Tribe
	Gender Gender
	// Domain overrides the random domain pool, e.g. "unilag.edu.ng".
	Domain string
	// Name overrides the drawn name pair; its first and last words become
	// the local part.
	Name string
}

// Email returns a random address built from a matching first and last name
// pair, in one of four local-part styles, with a numeric suffix half of
// the time. Both names always come from the same tribe.
func (g *Generator) Email(opts *EmailOptions) (string, error) {
	if opts == nil {
		opts = &EmailOptions{}
	}
	tribe, err := ParseTribe(string(opts.Tribe))
	if err != nil {
		return "", err
	}
	gender, err := ParseGender(string(opts.Gender))
	if err != nil {
		return "", err
	}
	domain := ""
	if strings.TrimSpace(opts.Domain) != "" {
		if domain, err = normalizeDomain(opts.Domain); err != nil {
			return "", err
		}
	}
	if name := strings.TrimSpace(opts.Name); name != "" {
		parts := strings.Fields(name)
		first, last := parts[0], ""
		if len(parts) > 1 {
			last = parts[len(parts)-1]
		}
		return g.composeEmail(first, last, domain)
	}
	if tribe == "" {
		tribe = g.randTribe()
	}

	firsts := g.firstNames.Where("tribe", string(tribe))
	if gender != "" {
		firsts = firsts.Where("gender", string(gender))
	}
	firstPool := firsts.Values("name")
	lastPool := g.lastNames.Where("tribe", string(tribe)).Values("name")
	if len(firstPool) == 0 || len(lastPool) == 0 {
		return "", errors.Join(ErrEmptyPool, fmt.Errorf("no name pairs match tribe=%q gender=%q", tribe, gender))
	}

	return g.composeEmail(g.pick(firstPool), g.pick(lastPool), domain)
}

// composeEmail builds and validates an address from a name pair. An empty
// domain means one is drawn from the configured pool.
func (g *Generator) composeEmail(first, last, domain string) (string, error) {
	f, l := asciiLocal(first), asciiLocal(last)
	var formats []string
	switch {
	case f == "" && l == "":
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("name %q has no characters usable in an address", strings.TrimSpace(first+" "+last)))
	case f == "":
		formats = []string{l}
	case l == "":
		formats = []string{f}
	default:
		formats = []string{f + "." + l, f + l, l + "." + f, l + f}
	}
	local := formats[g.intn(len(formats))]
	if g.chance(0.5) {
		local += strconv.Itoa(g.intn(999) + 1)
	}
	if domain == "" {
		domain = g.pick(g.emailDomains)
	}
	email := local + "@" + domain
	if !emailPattern.MatchString(email) {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("generated address %q is not valid", email))
	}
	return email, nil
}

// asciiLocal lowercases a name and folds it to the characters allowed in a
// local part, dropping anything that survives the fold as non-alphanumeric.
func asciiLocal(s string) string {
	folded, _, err := transform.String(diacriticFold, s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// normalizeDomain lowercases and validates a domain.
func normalizeDomain(domain string) (string, error) {
	d := strings.ToLower(strings.TrimSpace(domain))
	if !domainPattern.MatchString(d) || strings.Count(d, ".") > 3 {
		return "", errors.Join(ErrInvalidArgument, fmt.Errorf("invalid email domain %q", domain))
	}
	return d, nil
}
