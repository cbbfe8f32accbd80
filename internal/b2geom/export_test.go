package b2geom

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestExportJSONGolden(t *testing.T) {
	rec := readFixture(t, modernFixture)
	out, err := rec.ExportJSON()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "modern_export", out)
}

func TestExportJSONLegacyMetadata(t *testing.T) {
	t.Parallel()
	rec := readFixture(t, legacyFixture)
	out, err := rec.ExportJSON()
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, `"format_type":"legacy"`)
	require.Contains(t, s, `"converted_from_legacy":true`)
	require.Contains(t, s, `"version":"03.001.005"`)
}
