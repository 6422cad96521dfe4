package config

import (
	"maps"
	"slices"
	"strings"
)

// Environment is a string map that remembers the order keys were first set
// in. Setting an existing key replaces its value in place.
type Environment struct {
	keys   []string
	values map[string]string
}

func NewEnvironment() *Environment {
	return &Environment{values: map[string]string{}}
}

// ParseEnvironment reads KEY=VALUE items, splitting on the first '=' only.
// An item without '=' sets the key to an empty value.
func ParseEnvironment(items []string) *Environment {
	env := NewEnvironment()
	for _, item := range items {
		if item == "" {
			continue
		}
		name, val, _ := strings.Cut(item, "=")
		env.Set(name, val)
	}
	return env
}

func (e *Environment) Set(key, value string) *Environment {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
	return e
}

func (e *Environment) Get(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

func (e *Environment) Len() int {
	return len(e.keys)
}

func (e *Environment) Keys() []string {
	return slices.Clone(e.keys)
}

// Clone returns an independent copy.
func (e *Environment) Clone() *Environment {
	return &Environment{keys: slices.Clone(e.keys), values: maps.Clone(e.values)}
}

// Pairs returns KEY=VALUE strings in insertion order.
func (e *Environment) Pairs() []string {
	pairs := make([]string, 0, len(e.keys))
	for _, k := range e.keys {
		pairs = append(pairs, k+"="+e.values[k])
	}
	return pairs
}
