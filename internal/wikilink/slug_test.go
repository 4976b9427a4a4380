package wikilink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "Jean", expected: "jean"},
		{name: "strips diacritics", input: "Genèse", expected: "genese"},
		{name: "joins words with hyphens", input: "Cantique des Cantiques", expected: "cantique-des-cantiques"},
		{name: "collapses punctuation runs", input: "  Élie & Élisée !! ", expected: "elie-elisee"},
		{name: "keeps digits", input: "1 Rois", expected: "1-rois"},
		{name: "cedilla", input: "Ça va", expected: "ca-va"},
		{name: "diaeresis", input: "Isaïe", expected: "isaie"},
		{name: "empty", input: "", expected: ""},
		{name: "only punctuation", input: "???", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugify_CollisionsAreAccepted(t *testing.T) {
	assert.Equal(t, Slugify("Père"), Slugify("Pere"))
}
