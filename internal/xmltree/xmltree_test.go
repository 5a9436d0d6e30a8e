package xmltree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SimpleDocument(t *testing.T) {
	input := `<?xml version="1.0"?>
<log owner="alice">
  <workout id="1">
    <name>First</name>
  </workout>
  <workout id="2">
    <name>Second</name>
  </workout>
</log>`

	root, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "log", root.Name())

	owner, ok := root.Attr("owner")
	require.True(t, ok)
	assert.Equal(t, "alice", owner)

	workouts := root.Children("workout")
	require.Len(t, workouts, 2)

	// Repeated siblings keep document order
	id, _ := workouts[0].Attr("id")
	assert.Equal(t, "1", id)
	id, _ = workouts[1].Attr("id")
	assert.Equal(t, "2", id)

	name, ok := workouts[1].ChildText("name")
	require.True(t, ok)
	assert.Equal(t, "Second", name)
}

func TestParse_NamespacesAreStripped(t *testing.T) {
	input := `<gpx xmlns="http://www.topografix.com/GPX/1/1" xmlns:ext="http://example.com/ext">
  <ext:extension><ext:hr>120</ext:hr></ext:extension>
</gpx>`

	root, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	ext, ok := root.Child("extension")
	require.True(t, ok)

	hr, ok := ext.ChildInt("hr")
	require.True(t, ok)
	assert.Equal(t, 120, hr)
}

func TestParse_NumericAccessors(t *testing.T) {
	input := `<lap><seconds>1800.5</seconds><calories>250</calories><junk>abc</junk></lap>`

	root, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	seconds, ok := root.ChildFloat("seconds")
	require.True(t, ok)
	assert.Equal(t, 1800.5, seconds)

	calories, ok := root.ChildInt("calories")
	require.True(t, ok)
	assert.Equal(t, 250, calories)

	_, ok = root.ChildFloat("junk")
	assert.False(t, ok)

	_, ok = root.ChildFloat("missing")
	assert.False(t, ok)
}

func TestParse_Malformed(t *testing.T) {
	inputs := []string{
		"<a><b></a>",
		"not xml at all",
		"<a>",
		"",
	}

	for _, input := range inputs {
		_, err := Parse(strings.NewReader(input))
		require.Error(t, err, "input: %q", input)
		assert.ErrorIs(t, err, ErrMalformed)
	}
}

func TestParse_MissingLookupsOnNilNode(t *testing.T) {
	var n *Node

	_, ok := n.Child("anything")
	assert.False(t, ok)
	assert.Empty(t, n.Children("anything"))
	_, ok = n.Attr("anything")
	assert.False(t, ok)
	assert.Equal(t, "", n.Text())
}
