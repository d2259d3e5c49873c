package sts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ToluPeazy/uscp/format/sts"
	"github.com/stretchr/testify/require"
)

func TestReadFileDerivesNameFromPath(t *testing.T) {
	src := `4 3
1 2 3
1 2 4
2 3 4
`
	path := filepath.Join(t.TempDir(), "cyclic-9.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	inst, err := sts.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cyclic-9", inst.Name)
	require.Equal(t, 3, inst.PointsNumber)
}
