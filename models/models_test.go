package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModulesRoundTrip(t *testing.T) {
	modules := []Module{
		{
			Title: "Getting Started",
			Lessons: []Lesson{
				{Title: "Intro", Duration: "05:00"},
				{Title: "Setup", Duration: "10:30", VideoURL: "https://cdn.example.com/setup.mp4"},
			},
		},
		{Title: "Appendix"},
	}

	data, err := EncodeModules(modules)
	require.NoError(t, err)

	decoded, err := DecodeModules(data)
	require.NoError(t, err)
	require.Equal(t, modules, decoded)
}

func TestDecodeModulesEmptyColumn(t *testing.T) {
	decoded, err := DecodeModules("")
	require.NoError(t, err)
	require.Nil(t, decoded)
}

func TestDecodeModulesRejectsGarbage(t *testing.T) {
	_, err := DecodeModules("{not json")
	require.Error(t, err)
}

func TestItemsRoundTrip(t *testing.T) {
	items := []OrderItem{
		{CourseID: 1, Title: "Web Development Fundamentals", Price: 49},
		{CourseID: 2, Title: "Digital Marketing Essentials", Price: 39},
	}

	data, err := EncodeItems(items)
	require.NoError(t, err)

	decoded, err := DecodeItems(data)
	require.NoError(t, err)
	require.Equal(t, items, decoded)
}
