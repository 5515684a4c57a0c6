package sysmem

import (
	"sync"

	"github.com/vkngwrapper/memhook/memutils"
)

var (
	pageSizeOnce sync.Once
	pageSize     int
)

// PageSize returns the allocation granularity of the operating system. It is queried the
// first time it is needed and cached for the life of the process.
func PageSize() int {
	pageSizeOnce.Do(func() {
		pageSize = queryPageSize()
		memutils.DebugCheckPow2(pageSize, "page size")
	})
	return pageSize
}

// RoundUpToPageSize rounds size up to the next multiple of the page size. A size of 0 stays 0.
// size must be far enough from the int limit that the rounding does not overflow.
func RoundUpToPageSize(size int) int {
	if size <= 0 {
		return 0
	}
	return memutils.AlignUp(size, uint(PageSize()))
}
