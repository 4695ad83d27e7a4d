package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"github.com/sahilm/fuzzy"
)

const (
	ViewModeList = iota
	ViewModeGrid
)

type MainPanel struct {
	c          *fyne.Container
	viewMode   int
	results    *Results
	groups     []GroupContainer
	thumbnails map[*Item]*ThumbnailWidget
	loader     *StripLoader
	open       func(string)
	query      string

	searchDelay    time.Duration
	searchDebounce DebounceDispatcher[string]
	dispatcher     Dispatcher

	mu     sync.Mutex
	cancel context.CancelFunc

	// OnLoading is called on the UI loop when strip loading starts and ends.
	OnLoading func(loading bool)
}

func newMainPanel(config *Config, open func(string)) *MainPanel {
	return &MainPanel{
		c:           container.NewVBox(),
		viewMode:    config.ViewMode,
		thumbnails:  make(map[*Item]*ThumbnailWidget),
		loader:      newStripLoader(config),
		open:        open,
		searchDelay: config.SearchDelay,
		dispatcher:  fyneDispatcher{},
	}
}

func (m *MainPanel) Content() fyne.CanvasObject {
	return m.c
}

// Update replaces the displayed groups with results and starts loading their
// strips in the background.
func (m *MainPanel) Update(results *Results) {
	m.stopLoading()
	m.results = results
	m.groups = nil
	m.thumbnails = make(map[*Item]*ThumbnailWidget)

	if results == nil {
		m.c.Objects = nil
		m.c.Refresh()
		m.setLoading(false)
		return
	}

	log.Println("MainPanel.Update called with", len(results.Groups), "groups from", results.Path)

	items := []*Item{}
	for _, g := range results.Groups {
		gc := newGroupContainer(m.viewMode, groupTitle(g), g)
		for _, item := range g.Items {
			t := newThumbnail(item, m.loader.Height, m.open)
			m.thumbnails[item] = t
			gc.Add(t)
			items = append(items, item)
		}
		m.groups = append(m.groups, gc)
	}

	sortGroups(m.groups)
	m.applyFilter(m.query)
	m.loadStrips(items)
}

func (m *MainPanel) loadStrips(items []*Item) {
	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.cancel = cancel
	m.mu.Unlock()

	loader := m.loader
	m.setLoading(true)
	go func() {
		err := loader.LoadAll(ctx, items, func(item *Item, img image.Image) {
			m.dispatcher.Do(func() {
				if ctx.Err() != nil {
					return
				}
				if t := m.thumbnails[item]; t != nil {
					t.SetStrip(img)
				}
			})
		})
		if err != nil {
			log.Println("Strip loading stopped:", err)
			return
		}
		log.Println("Loaded strips for", len(items), "files")
		m.dispatcher.Do(func() {
			if ctx.Err() == nil {
				m.setLoading(false)
			}
		})
	}()
}

func (m *MainPanel) stopLoading() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *MainPanel) setLoading(loading bool) {
	if m.OnLoading != nil {
		m.OnLoading(loading)
	}
}

// Reload rebuilds the panel, for example after the view mode or thumbnail
// height changed.
func (m *MainPanel) Reload(config *Config) {
	m.viewMode = config.ViewMode
	m.searchDelay = config.SearchDelay
	if m.loader.Height != config.ThumbnailHeight || m.loader.Quality != config.JPEGQuality {
		m.stopLoading()
		m.loader = newStripLoader(config)
	}
	m.Update(m.results)
}

func (m *MainPanel) ExpandAll(expand bool) {
	toggleExpanders(m.c, expand)
}

// Search filters the groups once the query has stopped changing for the
// configured delay.
func (m *MainPanel) Search(query string) {
	m.searchDebounce.Debounce(m.searchDelay, m.applyFilter, query, PriorityIdle, m.dispatcher)
}

func (m *MainPanel) applyFilter(query string) {
	m.query = query

	visible := filterGroups(m.groups, query)
	objects := make([]fyne.CanvasObject, 0, len(visible))
	for _, g := range visible {
		objects = append(objects, g)
	}

	m.c.Objects = objects
	m.c.Refresh()
}

// filterGroups keeps the groups with at least one path fuzzily matching
// query, in their original order.
func filterGroups(groups []GroupContainer, query string) []GroupContainer {
	if query == "" {
		return groups
	}

	paths := []string{}
	owner := []int{}
	for i, g := range groups {
		for _, item := range g.Group().Items {
			paths = append(paths, item.Path)
			owner = append(owner, i)
		}
	}

	matched := make(map[int]bool)
	for _, match := range fuzzy.Find(query, paths) {
		matched[owner[match.Index]] = true
	}

	result := make([]GroupContainer, 0, len(matched))
	for i, g := range groups {
		if matched[i] {
			result = append(result, g)
		}
	}
	return result
}

func groupTitle(g *Group) string {
	first := g.Items[0].Path
	return fmt.Sprintf("%s (%d files)", filepath.Base(first), len(g.Items))
}

func sortGroups(groups []GroupContainer) {
	sort.SliceStable(groups, func(i, j int) bool {
		return naturalLess(groups[i].Group().Items[0].Path, groups[j].Group().Items[0].Path)
	})
}

var (
	reAll        = regexp.MustCompile(`(\d+)|(\D+)`)
	reNumPerfect = regexp.MustCompile(`^\d+$`)
)

// naturalLess orders digit runs by value, so "ep2" sorts before "ep10".
func naturalLess(a, b string) bool {
	partsA := reAll.FindAllString(a, -1)
	partsB := reAll.FindAllString(b, -1)

	for n := 0; n < min(len(partsA), len(partsB)); n++ {
		partA := partsA[n]
		partB := partsB[n]

		if partA == partB {
			continue
		}

		if reNumPerfect.MatchString(partA) {
			if reNumPerfect.MatchString(partB) {
				numA, _ := strconv.Atoi(partA)
				numB, _ := strconv.Atoi(partB)
				if numA != numB {
					return numA < numB
				}
				return len(partA) < len(partB)
			}
			return true
		}
		if reNumPerfect.MatchString(partB) {
			return false
		}
		return partA < partB
	}

	return len(partsA) < len(partsB)
}
