// Package search runs fuzzy queries over the file paths of a path table, for
// jumping straight to a file without clicking down through the tree.
package search

import (
	"container/heap"
	"sort"

	"github.com/btidor/ziptree/tree"
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

const DefaultLimit = 100

// Query fuzzy-matches every file row of the table against the query and
// returns the top results by score, descending. Directory rows are not
// matched; they aren't navigable. Ties keep table order.
func Query(t *tree.PathTable, query string, limit int) []Result {
	var h = &ResultHeap{}
	heap.Init(h)

	runes := []rune(query)
	for i := 0; i < t.Length; i++ {
		if t.File[i] == nil {
			continue
		}
		chars := util.ToChars([]byte(t.Path[i]))
		res, _ := algo.FuzzyMatchV1(false, false, true, &chars, runes, false, nil)

		if res.Score <= 0 {
			continue
		} else if len(*h) < limit {
			heap.Push(h, Result{res.Score, t.Path[i], i})
		} else if res.Score > h.Peek().Score {
			heap.Pop(h)
			heap.Push(h, Result{res.Score, t.Path[i], i})
		}
	}

	sort.SliceStable(*h, h.Less)

	var out []Result
	for i := len(*h) - 1; i >= 0; i-- {
		out = append(out, (*h)[i])
	}
	return out
}
