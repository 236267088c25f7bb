package services

import (
	"sort"

	"github.com/alimgiray/repostats/internal/models"
)

// componentCounter counts allow-listed labels, remembering the order in which
// components were first seen so that ties keep that order
type componentCounter struct {
	index  map[string]int
	counts []models.ComponentCount
}

func newComponentCounter() *componentCounter {
	return &componentCounter{index: make(map[string]int)}
}

func (c *componentCounter) add(pr *models.PullRequest) {
	for _, component := range pr.Components() {
		i, ok := c.index[component]
		if !ok {
			i = len(c.counts)
			c.index[component] = i
			c.counts = append(c.counts, models.ComponentCount{Component: component})
		}
		c.counts[i].Count++
	}
}

// top returns at most n components by count, descending
func (c *componentCounter) top(n int) []models.ComponentCount {
	ordered := make([]models.ComponentCount, len(c.counts))
	copy(ordered, c.counts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Count > ordered[j].Count
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}
