package anthropic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeModelJSON(t *testing.T) {
	var result TargetSalesResult
	err := decodeModelJSON(`{"targetSales": 25000, "reasoning": "steady growth"}`, &result)
	require.NoError(t, err)
	require.Equal(t, 25000.0, result.TargetSales)
	require.Equal(t, "steady growth", result.Reasoning)
}

func TestDecodeModelJSONStripsFences(t *testing.T) {
	var result CostSavingsResult
	err := decodeModelJSON("```json\n{\"suggestions\": \"trim overtime\"}\n```", &result)
	require.NoError(t, err)
	require.Equal(t, "trim overtime", result.Suggestions)
}

func TestDecodeModelJSONRepairsDamage(t *testing.T) {
	// Trailing comma and unclosed brace, the usual model mishaps.
	var result FocusAreasResult
	err := decodeModelJSON(`{"focusAreaSuggestion": "push weekday lunch promos",`, &result)
	require.NoError(t, err)
	require.Equal(t, "push weekday lunch promos", result.FocusAreaSuggestion)
}
