package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_ZeroValue(t *testing.T) {
	var m Model

	assert.Empty(t, m.Name)
	assert.Zero(t, m.Temperature)
	assert.Zero(t, m.MaxTokens)
}

func TestDefault(t *testing.T) {
	m := Default()

	assert.Empty(t, m.Name)
	assert.InDelta(t, 0.2, m.Temperature, 1e-9)
	assert.Equal(t, 4096, m.MaxTokens)
}

func TestKnown(t *testing.T) {
	assert.Equal(t, []string{"gpt-3.5-turbo", "gpt-4-turbo", "gpt-4o", "gpt-4o-mini"}, Known())
}

func TestLookup(t *testing.T) {
	for _, name := range Known() {
		t.Run(name, func(t *testing.T) {
			p, ok := Lookup(name)
			require.True(t, ok)
			assert.InDelta(t, 0.2, p.Temperature, 1e-9)
			assert.Equal(t, 4096, p.MaxTokens)
		})
	}

	_, ok := Lookup("llama-3-70b")
	assert.False(t, ok)
}

func TestModel_Select_Known(t *testing.T) {
	m := Model{Temperature: 0.9, MaxTokens: 128}.Select("gpt-4o")

	assert.Equal(t, "gpt-4o", m.Name)
	assert.InDelta(t, 0.2, m.Temperature, 1e-9)
	assert.Equal(t, 4096, m.MaxTokens)
}

func TestModel_Select_UnknownKeepsParams(t *testing.T) {
	m := Model{Temperature: 0.9, MaxTokens: 128}.Select("my-finetune")

	assert.Equal(t, "my-finetune", m.Name)
	assert.InDelta(t, 0.9, m.Temperature, 1e-9)
	assert.Equal(t, 128, m.MaxTokens)
}

func TestModel_Select_DoesNotMutateReceiver(t *testing.T) {
	orig := Default()
	_ = orig.Select("gpt-4o")

	assert.Empty(t, orig.Name)
}
