package costmodel

import (
	"fmt"
	"iter"
	"slices"
)

// ResourceGroup is an ordered collection of resources. Membership in several
// groups is not prevented.
type ResourceGroup struct {
	name      string
	location  string
	resources []Resource
}

func NewResourceGroup(name, location string) *ResourceGroup {
	return &ResourceGroup{name: name, location: location}
}

func (rg *ResourceGroup) Name() string     { return rg.name }
func (rg *ResourceGroup) Location() string { return rg.location }
func (rg *ResourceGroup) Len() int         { return len(rg.resources) }

func (rg *ResourceGroup) Add(r Resource) error {
	if r == nil {
		return ErrNilResource
	}
	rg.resources = append(rg.resources, r)
	return nil
}

// Remove drops the first resource with the given name
func (rg *ResourceGroup) Remove(name string) error {
	i := rg.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	rg.resources = slices.Delete(rg.resources, i, i+1)
	return nil
}

func (rg *ResourceGroup) Get(name string) (Resource, error) {
	i := rg.index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return rg.resources[i], nil
}

// Resources returns a copy of the member list
func (rg *ResourceGroup) Resources() []Resource {
	return slices.Clone(rg.resources)
}

// All iterates over the members in insertion order
func (rg *ResourceGroup) All() iter.Seq[Resource] {
	return slices.Values(rg.resources)
}

func (rg *ResourceGroup) ByKind(kind Kind) []Resource {
	var out []Resource
	for _, r := range rg.resources {
		if r.Kind() == kind {
			out = append(out, r)
		}
	}
	return out
}

func (rg *ResourceGroup) TotalCost(hours float64) float64 {
	var total float64
	for _, r := range rg.resources {
		total += r.MonthlyCost(hours)
	}
	return total
}

// StartAll returns how many resources changed state
func (rg *ResourceGroup) StartAll() int {
	n := 0
	for _, r := range rg.resources {
		if r.Start() {
			n++
		}
	}
	return n
}

// StopAll returns how many resources changed state
func (rg *ResourceGroup) StopAll() int {
	n := 0
	for _, r := range rg.resources {
		if r.Stop() {
			n++
		}
	}
	return n
}

func (rg *ResourceGroup) String() string {
	return fmt.Sprintf("ResourceGroup(name=%q, location=%q, resources=%d)", rg.name, rg.location, len(rg.resources))
}

func (rg *ResourceGroup) index(name string) int {
	return slices.IndexFunc(rg.resources, func(r Resource) bool {
		return r.Name() == name
	})
}
