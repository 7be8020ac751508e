package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel-workers/internal/common/errors"
)

func validRecord(id string) TemplateRecord {
	return TemplateRecord{
		ID:                  id,
		ModuleType:          ModuleHook,
		StructuralPattern:   "{question}",
		MinLength:           10,
		MaxLength:           100,
		Tone:                "bold",
		Keywords:            []string{"question", "curiosity"},
		SemanticDescription: "Opens with a provocative question",
		Example:             "What if everything you knew was wrong?",
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	assert.Greater(t, cat.Len(), 0)

	// Every module type must have at least one candidate, and value slides
	// at least one per subtype.
	for _, mt := range []ModuleType{ModuleHook, ModuleTransition, ModuleValue, ModuleCTA} {
		assert.NotEmpty(t, cat.ByModule(mt, ""), "no templates for module %s", mt)
	}
	for _, vs := range []ValueSubtype{SubtypeData, SubtypeInsight, SubtypeSolution, SubtypeExample} {
		assert.NotEmpty(t, cat.ByModule(ModuleValue, vs), "no value templates for subtype %s", vs)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		records []TemplateRecord
		errPart string
	}{
		{
			name:    "empty catalog",
			records: nil,
			errPart: "at least one",
		},
		{
			name: "blank id",
			records: func() []TemplateRecord {
				r := validRecord(" ")
				return []TemplateRecord{r}
			}(),
			errPart: "id must not be empty",
		},
		{
			name: "unknown module type",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.ModuleType = "outro"
				return []TemplateRecord{r}
			}(),
			errPart: "module_type",
		},
		{
			name: "value without subtype",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.ModuleType = ModuleValue
				return []TemplateRecord{r}
			}(),
			errPart: "subtype",
		},
		{
			name: "subtype on non-value",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.ValueSubtype = SubtypeData
				return []TemplateRecord{r}
			}(),
			errPart: "subtype",
		},
		{
			name: "no keywords",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.Keywords = nil
				return []TemplateRecord{r}
			}(),
			errPart: "keyword",
		},
		{
			name: "blank keyword",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.Keywords = []string{"good", " "}
				return []TemplateRecord{r}
			}(),
			errPart: "keyword",
		},
		{
			name: "missing semantic description",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.SemanticDescription = ""
				return []TemplateRecord{r}
			}(),
			errPart: "semantic_description",
		},
		{
			name: "inverted length bounds",
			records: func() []TemplateRecord {
				r := validRecord("x")
				r.MinLength, r.MaxLength = 100, 10
				return []TemplateRecord{r}
			}(),
			errPart: "length",
		},
		{
			name:    "duplicate ids",
			records: []TemplateRecord{validRecord("dup"), validRecord("dup")},
			errPart: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.records)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogInvalid))
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestByModuleOrderAndFiltering(t *testing.T) {
	first := validRecord("hook-1")
	second := validRecord("hook-2")
	value := validRecord("value-1")
	value.ModuleType = ModuleValue
	value.ValueSubtype = SubtypeInsight

	cat, err := New([]TemplateRecord{first, value, second})
	require.NoError(t, err)

	hooks := cat.ByModule(ModuleHook, "")
	require.Len(t, hooks, 2)
	assert.Equal(t, "hook-1", hooks[0].ID)
	assert.Equal(t, "hook-2", hooks[1].ID)

	insights := cat.ByModule(ModuleValue, SubtypeInsight)
	require.Len(t, insights, 1)
	assert.Equal(t, "value-1", insights[0].ID)

	assert.Empty(t, cat.ByModule(ModuleValue, SubtypeData))
	assert.Empty(t, cat.ByModule(ModuleCTA, ""))
}

func TestGet(t *testing.T) {
	cat := Default()

	tpl, ok := cat.Get("hook-before-after")
	require.True(t, ok)
	assert.Equal(t, ModuleHook, tpl.ModuleType)

	_, ok = cat.Get("nope")
	assert.False(t, ok)
}

func TestRecordsReturnsCopy(t *testing.T) {
	cat := MustNew([]TemplateRecord{validRecord("x")})

	records := cat.Records()
	records[0].ID = "mutated"

	again, ok := cat.Get("x")
	require.True(t, ok)
	assert.Equal(t, "x", again.ID)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "templates.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"version": "1.0.0",
		"lastUpdated": "2026-07-01",
		"templates": [{
			"id": "hook-q",
			"module_type": "hook",
			"structural_pattern": "{question}",
			"min_length": 10,
			"max_length": 100,
			"tone": "bold",
			"keywords": ["question"],
			"semantic_description": "Opens with a question",
			"example": "Ready?"
		}]
	}`), 0o600))

	cat, err := LoadFile(valid)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	_, ok := cat.Get("hook-q")
	assert.True(t, ok)

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogLoadFail))
	})

	t.Run("malformed json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
		_, err := LoadFile(bad)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogLoadFail))
	})

	t.Run("invalid templates", func(t *testing.T) {
		invalid := filepath.Join(dir, "invalid.json")
		require.NoError(t, os.WriteFile(invalid, []byte(`{"templates": []}`), 0o600))
		_, err := LoadFile(invalid)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeCatalogInvalid))
	})
}
