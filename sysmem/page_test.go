package sysmem_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/memhook/memutils"
	"github.com/vkngwrapper/memhook/sysmem"
)

func TestPageSize(t *testing.T) {
	pageSize := sysmem.PageSize()
	require.Greater(t, pageSize, 0)
	require.NoError(t, memutils.CheckPow2(pageSize, "page size"))
	require.Equal(t, pageSize, sysmem.PageSize())
}

func TestRoundUpToPageSize(t *testing.T) {
	pageSize := sysmem.PageSize()

	require.Equal(t, 0, sysmem.RoundUpToPageSize(0))
	require.Equal(t, pageSize, sysmem.RoundUpToPageSize(1))
	require.Equal(t, pageSize, sysmem.RoundUpToPageSize(pageSize))
	require.Equal(t, 2*pageSize, sysmem.RoundUpToPageSize(pageSize+1))

	for _, size := range []int{1, 7, 100, pageSize - 1, pageSize, pageSize + 1, 3*pageSize + 17, 1 << 30} {
		rounded := sysmem.RoundUpToPageSize(size)
		require.Zero(t, rounded%pageSize, "size %d", size)
		require.GreaterOrEqual(t, rounded, size)
		require.Less(t, rounded, size+pageSize)
	}
}
