package viewer

import (
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/btidor/ziptree/container"
	"github.com/btidor/ziptree/internal"
	"github.com/btidor/ziptree/search"
	"github.com/btidor/ziptree/tree"
)

type Server struct {
	Config Config
	Commit string

	// Views memoize internally and aren't safe for concurrent mutation, so
	// one lock covers all tree operations.
	mu     sync.Mutex
	loaded map[string]*loadedContainer
}

type loadedContainer struct {
	listing *container.Listing
	table   *tree.PathTable
	view    *tree.View
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Access-Control-Allow-Origin", "*")
	w.Header().Add("Cache-Control", "no-cache")

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	if parts[0] == "" {
		// Requests to `/` show a welcome message and the available containers
		fmt.Fprintf(w, "Hello from ziptree@%s!\n", s.Commit)
		matches, err := filepath.Glob(filepath.Join(s.Config.Containers, "*"))
		if err != nil {
			panic(err)
		}
		for _, m := range matches {
			fmt.Fprintf(w, "%s\n", filepath.Base(m))
		}
		return
	} else if parts[0] == "robots.txt" {
		fmt.Fprintf(w, "User-agent: *\nDisallow: /\n")
		return
	}

	id, err := url.PathUnescape(parts[0])
	if err != nil || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		internal.HTTPError(w, r, 404)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lc, err := s.ensure(id)
	if err != nil {
		internal.HTTPError(w, r, 404)
		return
	}

	var op string
	if len(parts) == 2 {
		op = parts[1]
	}
	switch op {
	case "":
		internal.WriteJSON(w, map[string]int{
			"length":   lc.table.Length,
			"maxDepth": lc.table.MaxDepth(),
		})
	case "roots":
		internal.WriteJSON(w, lc.view.Roots())
	case "children":
		parent := tree.NoParent
		if raw := r.URL.Query().Get("parent"); raw != "" {
			parent, err = strconv.Atoi(raw)
			if err != nil || parent < 0 || parent >= lc.table.Length {
				internal.HTTPError(w, r, 400)
				return
			}
		}
		internal.WriteJSON(w, lc.view.Children(parent))
	case "node":
		index, err := strconv.Atoi(r.URL.Query().Get("index"))
		if err != nil || index < 0 || index >= lc.table.Length {
			internal.HTTPError(w, r, 400)
			return
		}
		internal.WriteJSON(w, lc.view.Display(index))
	case "expand":
		expanded := tree.InitialExpansion(lc.view, s.Config.MaxExpanded)
		if expanded == nil {
			expanded = []int{}
		}
		internal.WriteJSON(w, expanded)
	case "search":
		query := r.URL.Query().Get("q")
		if query == "" {
			internal.HTTPError(w, r, 400)
			return
		}
		results := search.Query(lc.table, query, search.DefaultLimit)
		if results == nil {
			results = []search.Result{}
		}
		internal.WriteJSON(w, results)
	default:
		internal.HTTPError(w, r, 404)
	}
}

// ensure opens, filters and indexes a container on its first request. The
// view lives until the container file changes or the process exits.
func (s *Server) ensure(id string) (*loadedContainer, error) {
	if s.loaded == nil {
		s.loaded = make(map[string]*loadedContainer)
	}
	if lc, found := s.loaded[id]; found {
		return lc, nil
	}

	src := filepath.Join(s.Config.Containers, id)
	listing, err := container.Open(src)
	if err != nil {
		return nil, err
	}
	listing = container.Filter(listing, s.Config.Include, s.Config.Exclude)

	table := s.cachedTable(src, id, listing)
	lc := &loadedContainer{
		listing: listing,
		table:   table,
		view:    tree.NewView(table, id, s.Config.Origin, s.Config.Route),
	}
	s.loaded[id] = lc
	return lc, nil
}

func (s *Server) invalidate(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lc, found := s.loaded[id]; found {
		fmt.Printf("Invalidating %q\n", id)
		lc.listing.Close()
		delete(s.loaded, id)
	}
}
