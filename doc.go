// Package naija generates realistic Nigeria-flavored data: names by tribe
// and gender, degrees, courses, faculties, schools, states with their LGAs
// and postal codes, email addresses, mobile numbers, naira price tags, and
// full coherent identities. It is meant for seeding databases, fixtures,
// demos, and anonymized test environments.
//
// Unlike a plain random picker, every value family cycles through its
// candidates without repeats: a value is only seen again once its pool is
// exhausted and the cycle restarts. Each filter combination tracks its own
// cycle, so igbo female first names and hausa male first names never steal
// candidates from each other.
//
// # Architecture
//
//   - Datasets ship embedded in the binary as JSON files with strict
//     schemas; a record with missing or unknown keys fails loading. Custom
//     datasets can be mounted via WithDataFS or WithDataDir in either JSON
//     or YAML.
//   - pkg/dataset loads and validates records and offers chainable
//     case-insensitive filtering (Where, Values, Flatten).
//   - pkg/unique implements the no-repeat selection: a Picker draws
//     uniformly over the distinct values not yet used, and a Tracker keeps
//     one used-set per category and clears it in place on exhaustion.
//   - The Generator front-loads all datasets in New, so malformed data is
//     reported once, up front, not in the middle of a run.
//
// # Usage
//
// Create a generator and draw values:
//
//	gen, err := naija.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	name, _ := gen.FullName(&naija.NameOptions{Tribe: naija.TribeIgbo, Gender: naija.GenderFemale})
//	email, _ := gen.Email(nil)
//	phone, _ := gen.PhoneNumber(&naija.PhoneOptions{Network: naija.NetworkMTN})
//
// Reproducible output for tests and fixtures:
//
//	gen, _ := naija.New(naija.WithSeed(42))
//
// A complete identity with a vCard:
//
//	p, _ := gen.Person(&naija.NameOptions{MiddleName: true})
//	fmt.Println(p.FullName, p.Email, p.PhoneNumber)
//	fmt.Println(p.VCard())
//
// # Error Handling
//
// All failures wrap one of four sentinels, matchable with errors.Is:
//
//   - ErrInvalidArgument: a filter value outside its closed set.
//   - ErrEmptyPool: a valid filter combination with no candidates.
//   - ErrNotFound: a dataset file or a named state that does not exist.
//   - ErrMalformedData: a dataset record violating its schema.
//
// # Concurrency
//
// A Generator is not safe for concurrent use. Create one per goroutine, or
// guard access with a mutex as internal/httpapi does.
package naija
