package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("2c3c4c5c6c7d8d")

	h, err := NewHand(cards...)
	require.NoError(t, err)
	assert.Equal(t, HandSize, h.CountCards())
	for _, c := range cards {
		assert.True(t, h.HasCard(c), "missing %s", c)
	}
	assert.Equal(t, uint16(0b11111), h.GetSuitMask(Clubs))
	assert.Equal(t, uint16(0b1100000), h.GetSuitMask(Diamonds))
	assert.Equal(t, uint64(h), h.Mask())
}

func TestNewHandValidation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cards  []Card
		reason error
	}{
		{"six cards", MustParseCards("2c3c4c5c6c7d"), ErrWrongCardCount},
		{"eight cards", MustParseCards("2c3c4c5c6c7d8d9d"), ErrWrongCardCount},
		{"no cards", nil, ErrWrongCardCount},
		{"duplicate", MustParseCards("2c3c4c5c6c7d2c"), ErrDuplicateCard},
		{"zero card", append(MustParseCards("2c3c4c5c6c7d"), 0), ErrInvalidCard},
		{"two bits", append(MustParseCards("2c3c4c5c6c7d"), NewCard(Ace, Spades)|NewCard(King, Spades)), ErrInvalidCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewHand(tc.cards...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.reason), "got %v", err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.cards, verr.Cards)
		})
	}
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	h, err := ParseHand("Ah Kd 9c 7s 4h 3c 2d")
	require.NoError(t, err)
	assert.Equal(t, "Ah Kd 9c 7s 4h 3c 2d", h.String())

	_, err = ParseHand("AhKd9c7s4h3c2x")
	assert.True(t, errors.Is(err, ErrInvalidCard))

	_, err = ParseHand("AhAhKd9c7s4h3c")
	assert.True(t, errors.Is(err, ErrDuplicateCard))

	assert.Panics(t, func() { MustParseHand("AhKd") })
}

func TestHandCards(t *testing.T) {
	t.Parallel()
	h := MustParseHand("As2c3d4h5s6c7d")
	cards := h.Cards()
	require.Len(t, cards, HandSize)
	assert.Equal(t, NewCard(Two, Clubs), cards[0])
	assert.Equal(t, NewCard(Ace, Spades), cards[len(cards)-1])
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()
	err := &ValidationError{Reason: ErrDuplicateCard, Cards: MustParseCards("AsAs")}
	assert.Equal(t, "invalid hand [As As]: duplicate card", err.Error())
}
