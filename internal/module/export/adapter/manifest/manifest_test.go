package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinford/export-batch/internal/module/export/domain"
)

func TestParse(t *testing.T) {
	data := []byte(`
jobs:
  - kind: document
    name: readme
    config:
      line_width: 60
  - kind: raster
    name: banner
    config:
      width: 320
      height: 200
  - kind: archive
    name: bundle
`)

	jobs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, domain.KindDocument, jobs[0].Kind)
	assert.Equal(t, "readme", jobs[0].Identifier)
	assert.Equal(t, 60, jobs[0].Config["line_width"])

	assert.Equal(t, domain.KindRaster, jobs[1].Kind)
	assert.Equal(t, 320, jobs[1].Config["width"])

	// configは省略可能
	assert.Equal(t, domain.KindArchive, jobs[2].Kind)
	assert.Nil(t, jobs[2].Config)
}

func TestParse_UnknownKindAllowed(t *testing.T) {
	// 未登録種別は構文上は許容される（実行時にFailureとなる）
	jobs, err := Parse([]byte("jobs:\n  - kind: hologram\n    name: future\n"))
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, domain.JobKind("hologram"), jobs[0].Kind)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "name欠落", data: "jobs:\n  - kind: document\n"},
		{name: "kind欠落", data: "jobs:\n  - name: readme\n"},
		{name: "壊れたYAML", data: "jobs: [who knows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	jobs, err := Parse([]byte("jobs: []\n"))
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - kind: vector\n    name: logo\n"), 0o644))

	jobs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "logo", jobs[0].Identifier)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
