package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naija/pkg/dataset"
)

func TestParserFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		wantJSON bool
		wantYAML bool
		wantErr  bool
	}{
		{name: "json file", filename: "degrees.json", wantJSON: true},
		{name: "uppercase extension", filename: "DEGREES.JSON", wantJSON: true},
		{name: "yaml file", filename: "degrees.yaml", wantYAML: true},
		{name: "yml file", filename: "degrees.yml", wantYAML: true},
		{name: "csv file", filename: "degrees.csv", wantErr: true},
		{name: "no extension", filename: "degrees", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := dataset.ParserFor(tt.filename)
			if tt.wantErr {
				require.ErrorIs(t, err, dataset.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			if tt.wantJSON {
				assert.IsType(t, &dataset.JSONParser{}, p)
			}
			if tt.wantYAML {
				assert.IsType(t, &dataset.YAMLParser{}, p)
			}
		})
	}
}

func TestParsersRejectNonListContent(t *testing.T) {
	t.Parallel()

	_, err := dataset.NewJSONParser().Parse([]byte(`"just a string"`))
	require.ErrorIs(t, err, dataset.ErrMalformed)

	_, err = dataset.NewYAMLParser().Parse([]byte("key: value\n"))
	require.ErrorIs(t, err, dataset.ErrMalformed)
}

func TestSchemaValidate(t *testing.T) {
	t.Parallel()

	schema := dataset.Schema{Name: "degrees", Keys: []string{"name", "degree_type", "initials"}}

	valid := []dataset.Record{
		{"name": "Bachelor of Science", "degree_type": "undergraduate", "initials": "B.Sc."},
	}
	require.NoError(t, schema.Validate(valid))

	t.Run("reports both missing and unknown keys", func(t *testing.T) {
		t.Parallel()

		err := schema.Validate([]dataset.Record{
			{"name": "Master of Science", "initials": "M.Sc.", "level": "postgraduate"},
		})
		require.ErrorIs(t, err, dataset.ErrMalformed)
		assert.Contains(t, err.Error(), "missing keys [degree_type]")
		assert.Contains(t, err.Error(), "unknown keys [level]")
	})

	t.Run("empty record list is valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, schema.Validate(nil))
	})
}
