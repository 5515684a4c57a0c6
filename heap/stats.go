package heap

import (
	"fmt"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/memhook/memutils"
	"golang.org/x/exp/slices"
)

type liveBlockEntry struct {
	address uintptr
	liveBlock
}

// AddDetailedStatistics adds the outstanding blocks of this allocator to stats. Size
// extremes are only available when CreateTrackLiveBlocks is set.
func (a *Allocator) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	a.mutex.RLock()
	defer a.mutex.RUnlock()

	a.addDetailedStatistics(stats)
}

// addDetailedStatistics must be called with the mutex held
func (a *Allocator) addDetailedStatistics(stats *memutils.DetailedStatistics) {
	if a.liveBlocks == nil {
		stats.Statistics.AddStatistics(&a.statistics)
		return
	}

	a.addLiveBlocks(stats)
}

func (a *Allocator) addLiveBlocks(stats *memutils.DetailedStatistics) {
	a.liveBlocks.Iter(func(_ uintptr, block liveBlock) bool {
		stats.AddAllocation(block.size, block.blockSize)
		return false
	})
}

func (a *Allocator) sortedLiveBlocks() []liveBlockEntry {
	blocks := make([]liveBlockEntry, 0, a.liveBlocks.Count())
	a.liveBlocks.Iter(func(address uintptr, block liveBlock) bool {
		blocks = append(blocks, liveBlockEntry{address: address, liveBlock: block})
		return false
	})

	slices.SortFunc(blocks, func(left, right liveBlockEntry) bool {
		return left.address < right.address
	})
	return blocks
}

// BuildStatsString returns a json document describing the layout and outstanding blocks of
// this allocator. When detailed is true and CreateTrackLiveBlocks is set, every block is listed.
func (a *Allocator) BuildStatsString(detailed bool) string {
	var stats memutils.DetailedStatistics
	var blocks []liveBlockEntry
	stats.Clear()

	// Totals and block list are read together so they agree with each other
	a.mutex.RLock()
	a.addDetailedStatistics(&stats)
	if detailed && a.liveBlocks != nil {
		blocks = a.sortedLiveBlocks()
	}
	a.mutex.RUnlock()

	writer := jwriter.NewWriter()
	objState := writer.Object()

	layoutObj := objState.Name("Layout").Object()
	layoutObj.Name("Mode").String(a.layout.Mode().String())
	layoutObj.Name("Alignment").Int(a.layout.Alignment())
	layoutObj.Name("HeaderReservedBytes").Int(a.layout.HeaderReservedBytes())
	layoutObj.End()

	totalObj := objState.Name("Total").Object()
	stats.PrintJson(&totalObj)
	totalObj.End()

	if detailed && a.liveBlocks != nil {
		arrayState := objState.Name("Blocks").Array()
		for _, block := range blocks {
			obj := arrayState.Object()
			obj.Name("Address").String(fmt.Sprintf("%#x", block.address))
			obj.Name("Size").Int(block.size)
			obj.Name("BlockSize").Int(block.blockSize)
			obj.End()
		}
		arrayState.End()
	}

	objState.End()
	return string(writer.Bytes())
}
