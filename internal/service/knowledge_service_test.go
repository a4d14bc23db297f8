package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleCSV = "Nodes,Sub-type / VOC,Gold,Silver & Bronze,New & Iron\n" +
	"\"PDP Issues\nItem differs from the product page\",\"VOC: item looks different from pdp\",Replacement,Service No,Service No\n" +
	"Ordered by Mistake,\"VOC: I accidentally ordered the wrong product\",Service No,Service No,Service No\n"

func writeSampleCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sop.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestService(t *testing.T, sourcePath string) *KnowledgeService {
	t.Helper()
	return NewKnowledgeService(sourcePath, t.TempDir(), zap.NewNop())
}

func TestKnowledgeService_FallbackOnMissingSource(t *testing.T) {
	svc := newTestService(t, filepath.Join(t.TempDir(), "missing.csv"))

	assert.Equal(t, []string{"Ordered by Mistake", "Expectation Mismatch"}, svc.IssueTypes())
	assert.Equal(t, "loaded", svc.Info().Status)
}

func TestKnowledgeService_FallbackOnMalformedSource(t *testing.T) {
	svc := newTestService(t, writeSampleCSV(t, "Nodes,Gold\n\"broken\n"))
	assert.Equal(t, 2, svc.Current().Len())
}

func TestKnowledgeService_LoadsSource(t *testing.T) {
	svc := newTestService(t, writeSampleCSV(t, sampleCSV))

	assert.Equal(t, []string{"PDP Issues", "Ordered by Mistake"}, svc.IssueTypes())

	entry, ok := svc.Current().Entry("PDP Issues")
	require.True(t, ok)
	assert.Equal(t, "Replacement", entry.Resolutions.Gold)
}

func TestKnowledgeService_ReloadSwapsInstance(t *testing.T) {
	svc := newTestService(t, writeSampleCSV(t, sampleCSV))
	old := svc.Current()

	next := writeSampleCSV(t, "Nodes,Sub-type / VOC,Gold,Silver & Bronze,New & Iron\n"+
		"Wrong Item,\"VOC: this is not what I purchased\",Replacement,Replacement,Service No\n")
	require.NoError(t, svc.Reload(next))

	// A reload publishes a brand-new instance; the old one is untouched.
	assert.NotSame(t, old, svc.Current())
	assert.Equal(t, []string{"PDP Issues", "Ordered by Mistake"}, old.IssueTypes())
	assert.Equal(t, []string{"Wrong Item"}, svc.IssueTypes())
	assert.Equal(t, next, svc.SourcePath())
}

func TestKnowledgeService_ReloadMissingFileFails(t *testing.T) {
	svc := newTestService(t, writeSampleCSV(t, sampleCSV))
	before := svc.Current()

	err := svc.Reload(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Same(t, before, svc.Current())
}

func TestKnowledgeService_Validate(t *testing.T) {
	svc := newTestService(t, writeSampleCSV(t, sampleCSV))

	t.Run("known issue type", func(t *testing.T) {
		resp := svc.Validate("PDP Issues")
		assert.True(t, resp.Exists)
		assert.NotEmpty(t, resp.VOCExamples)
		require.NotNil(t, resp.Resolutions)
		assert.Equal(t, "Replacement", resp.Resolutions.Gold)
		assert.Contains(t, resp.SOPDetails, "PDP Issues")
	})

	t.Run("unknown issue type carries suggestions", func(t *testing.T) {
		resp := svc.Validate("Unheard Of")
		assert.False(t, resp.Exists)
		assert.Empty(t, resp.VOCExamples)
		assert.Equal(t, []string{"PDP Issues", "Ordered by Mistake"}, resp.Suggestions)
	})
}

func TestKnowledgeService_Validation(t *testing.T) {
	svc := newTestService(t, writeSampleCSV(t, sampleCSV))

	t.Run("matched interaction", func(t *testing.T) {
		resp := svc.Validation("PDP Issues", "item looks different from pdp")
		require.NotNil(t, resp)
		assert.Equal(t, "PDP Issues", resp.MatchedIssueType)
		assert.Equal(t, "Replacement", resp.SuggestedResolution)
		assert.LessOrEqual(t, len(resp.VOCExamples), 3)
	})

	t.Run("keyword match outside the base defaults the resolution", func(t *testing.T) {
		resp := svc.Validation("", "received an empty box only")
		require.NotNil(t, resp)
		assert.Equal(t, "Empty Box received", resp.MatchedIssueType)
		assert.Equal(t, "Service No", resp.SuggestedResolution)
		assert.Empty(t, resp.SOPDetails)
	})

	t.Run("no match is nil", func(t *testing.T) {
		assert.Nil(t, svc.Validation("zzz", "qqq"))
	})
}

func TestKnowledgeService_ValidationCapsExamples(t *testing.T) {
	csv := "Nodes,Sub-type / VOC,Gold,Silver & Bronze,New & Iron\n" +
		"Installation Pending,\"VOC: technician visit never happened for me\nVOC: installation still not scheduled today\nVOC: waiting on the install team all week\",Replacement,Service No,Service No\n"
	svc := newTestService(t, writeSampleCSV(t, csv))

	entry, ok := svc.Current().Entry("Installation Pending")
	require.True(t, ok)
	require.Greater(t, len(entry.VOCExamples), 3)

	resp := svc.Validation("Installation Pending", "installation never happened")
	require.NotNil(t, resp)
	assert.Len(t, resp.VOCExamples, 3)
}

func TestKnowledgeService_UploadSource(t *testing.T) {
	uploadDir := t.TempDir()
	svc := NewKnowledgeService(filepath.Join(t.TempDir(), "missing.csv"), uploadDir, zap.NewNop())

	resp, err := svc.UploadSource(strings.NewReader(sampleCSV), "policy.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalIssueTypes)
	assert.Equal(t, resp.CSVFile, svc.SourcePath())
	assert.FileExists(t, resp.CSVFile)
	assert.Equal(t, uploadDir, filepath.Dir(resp.CSVFile))
	assert.Equal(t, []string{"PDP Issues", "Ordered by Mistake"}, svc.IssueTypes())
}
