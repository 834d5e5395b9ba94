package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "classloc.dev/pkg/classloc/internal/model"
)

func TestStructuredUI_JSONResolution(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStructuredUI(&buf, FormatJSON)
	require.NoError(t, ui.DisplayResolution(context.Background(), archiveResult(), nil))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, true, doc["found"])
	assert.Equal(t, "/libs/dep.jar!/com/x/Foo.class", doc["path"])
	assert.Equal(t, []interface{}{"archive-entry-unverified"}, doc["caveats"])
	assert.NotContains(t, doc, "error")
	assert.NotContains(t, doc, "ResolutionResult")

	layout, ok := doc["layout"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SINGLE_MODULE", layout["kind"])
}

func TestStructuredUI_JSONResolutionError(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStructuredUI(&buf, FormatJSON)
	require.NoError(t, ui.DisplayResolution(context.Background(), notFoundResult(), m.ErrNoExistingArtifact))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, false, doc["found"])
	assert.Equal(t, m.ErrNoExistingArtifact.Error(), doc["error"])
	assert.Len(t, doc["candidates"], 2)
}

func TestStructuredUI_YAMLDocuments(t *testing.T) {
	var buf bytes.Buffer

	ui := NewStructuredUI(&buf, FormatYAML)
	require.NoError(t, ui.DisplayResolution(context.Background(), foundResult(), nil))
	require.NoError(t, ui.DisplayResolution(context.Background(), notFoundResult(), nil))

	dec := yaml.NewDecoder(strings.NewReader(buf.String()))

	var first, second m.ResolutionResult
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.True(t, first.Found)
	assert.Equal(t, m.LayoutSingleModule, first.Layout.Kind)
	assert.Equal(t, m.OriginBuildTool, first.Origin)
	assert.False(t, second.Found)
	assert.Len(t, second.Candidates, 2)
}

func TestStructuredUI_YAMLProject(t *testing.T) {
	var buf bytes.Buffer

	meta := m.ProjectMetadata{
		Root:         "/proj",
		Name:         "proj",
		ContentRoots: []m.Path{"/proj"},
		Modules: []m.Module{
			{
				Name:         "core",
				ContentRoots: []m.Path{"/proj/core"},
				OutputDir:    "/proj/core/target/classes",
				Dependencies: []m.Dependency{{Kind: m.DependencyModule, Module: "api"}},
			},
		},
	}

	require.NoError(t, NewStructuredUI(&buf, FormatYAML).DisplayProject(context.Background(), meta))

	var got m.ProjectMetadata
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, meta, got)
}

func TestStructuredUI_Candidates(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewStructuredUI(&buf, FormatJSON).DisplayCandidates(context.Background(), testReport(true)))

	var got m.CandidateReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.NotNil(t, got.MostLikely)
	assert.Equal(t, m.Path("/proj/bin/com/x/Foo.class"), got.MostLikely.Path)
	assert.Len(t, got.Candidates, 2)
}
