package engine

import (
	"container/heap"

	"github.com/KirkDiggler/hexpath/internal/entities"
)

// visit is a frontier entry. Entries are never removed when a shorter
// distance is found; stale ones are skipped when popped.
type visit struct {
	hex      entities.Hex
	distance int
	seq      uint64
}

// frontier is a min-heap on distance. Among equal distances the most
// recently pushed entry pops first.
type frontier struct {
	items   []visit
	nextSeq uint64
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	if f.items[i].distance != f.items[j].distance {
		return f.items[i].distance < f.items[j].distance
	}
	return f.items[i].seq > f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x any) { f.items = append(f.items, x.(visit)) }

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]
	return item
}

// push stamps the entry with the next sequence number.
func (f *frontier) push(h entities.Hex, distance int) {
	f.nextSeq++
	heap.Push(f, visit{hex: h, distance: distance, seq: f.nextSeq})
}

func (f *frontier) pop() visit {
	return heap.Pop(f).(visit)
}
