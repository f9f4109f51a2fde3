package color_test

import (
	"testing"

	fatihcolor "github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/unoplusplus/uno/uno/card/color"
)

func TestByName(t *testing.T) {
	t.Run("finds_every_palette_color", func(t *testing.T) {
		for _, expected := range []color.Color{color.Red, color.Yellow, color.Green, color.Blue, color.Wild} {
			found, err := color.ByName(expected.Name())
			require.NoError(t, err)
			require.True(t, found == expected)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		found, err := color.ByName("purple")
		require.Nil(t, found)
		require.EqualError(t, err, "invalid color 'purple'")
	})
}

func TestAll(t *testing.T) {
	require.Len(t, color.All, 4)
	require.NotContains(t, color.All, color.Wild)
}

func TestPaintKeepsText(t *testing.T) {
	require.Contains(t, color.Red.Paint("7"), "7")
	require.Contains(t, color.Blue.Paintf("[%d]", 3), "[3]")
	require.Contains(t, color.Green.String(), "green")
}

func TestWildPaintsEveryRune(t *testing.T) {
	noColor := fatihcolor.NoColor
	fatihcolor.NoColor = true
	defer func() { fatihcolor.NoColor = noColor }()

	require.Equal(t, "+4!", color.Wild.Paint("+4!"))
	require.Equal(t, "[12]", color.Wild.Paintf("[%d]", 12))
	require.Equal(t, "wild", color.Wild.String())
}
