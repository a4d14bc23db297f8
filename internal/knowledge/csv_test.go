package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sop.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadRows(t *testing.T) {
	t.Run("reads rows with quoted multiline cells", func(t *testing.T) {
		content := "Nodes ,Sub-type / VOC,Gold,Silver & Bronze,New & Iron\n" +
			"\"PDP Issues\nDetails on the second line\",\"VOC: item looks different from pdp\",Replacement,Service No,Service No\n" +
			"Ordered by Mistake,,Service No,Service No,Service No\n"

		rows, err := ReadRows(writeTempCSV(t, content))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "PDP Issues\nDetails on the second line", rows[0].Nodes)
		assert.Equal(t, "VOC: item looks different from pdp", rows[0].SubTypeVOC)
		assert.Equal(t, "Replacement", rows[0].Gold)
		assert.Equal(t, "Service No", rows[0].SilverBronze)
		assert.Equal(t, "Service No", rows[0].NewIron)
		assert.Equal(t, "Ordered by Mistake", rows[1].Nodes)
		assert.Empty(t, rows[1].SubTypeVOC)
	})

	t.Run("missing columns read as empty", func(t *testing.T) {
		rows, err := ReadRows(writeTempCSV(t, "Nodes,Gold\nWrong Item,Replacement\n"))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Wrong Item", rows[0].Nodes)
		assert.Equal(t, "Replacement", rows[0].Gold)
		assert.Empty(t, rows[0].SubTypeVOC)
		assert.Empty(t, rows[0].NewIron)
	})

	t.Run("unreadable source", func(t *testing.T) {
		_, err := ReadRows(filepath.Join(t.TempDir(), "missing.csv"))
		assert.ErrorIs(t, err, ErrSourceUnreadable)
	})

	t.Run("malformed source", func(t *testing.T) {
		_, err := ReadRows(writeTempCSV(t, "Nodes,Gold\n\"unterminated,x\n"))
		assert.ErrorIs(t, err, ErrSourceMalformed)
	})

	t.Run("empty source has no header", func(t *testing.T) {
		_, err := ReadRows(writeTempCSV(t, ""))
		assert.ErrorIs(t, err, ErrSourceMalformed)
	})
}
