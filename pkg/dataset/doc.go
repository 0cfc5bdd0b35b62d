// Package dataset loads, validates, and filters the record files that feed
// the generators. A dataset is a flat list of records (JSON or YAML) whose
// key set is fixed: every record must carry exactly the keys its Schema
// declares, no more and no fewer, so data drift is caught at load time
// rather than at generation time.
//
// # Architecture
//
//   - Parser decodes raw bytes into records; JSONParser and YAMLParser are
//     included and ParserFor picks one by file extension.
//   - Schema declares the exact key set and performs strict validation.
//   - Store wraps the validated records and offers chainable,
//     case-insensitive equality filters plus ordered field projections.
//
// Stores are immutable after Load. Filtering returns views in file order,
// which keeps candidate ordering deterministic for the selection layer.
//
// # Usage
//
//	store, err := dataset.Load(dataFS, "first_names.json", dataset.Schema{
//		Name: "first_names",
//		Keys: []string{"tribe", "gender", "name"},
//	})
//	if err != nil {
//		// handle ErrNotFound / ErrMalformed / ErrUnsupportedFormat
//	}
//
//	igboFemale := store.Where("tribe", "igbo").Where("gender", "female")
//	pool := igboFemale.Values("name")
//
// # Error Handling
//
// Errors are sentinel values joined with detail via errors.Join, so both
// errors.Is checks and human-readable messages work:
//
//   - ErrNotFound: the dataset file does not exist.
//   - ErrReadFailed: the file exists but could not be read.
//   - ErrUnsupportedFormat: no parser claims the file extension.
//   - ErrMalformed: syntax errors, a non-list top level, or a record whose
//     keys deviate from the schema.
package dataset
