package poker

import "testing"

func TestDescribe(t *testing.T) {
	t.Parallel()
	e := Default()

	tests := []struct {
		cards string
		want  string
	}{
		{"AsKsQsJsTs9h8h", "Royal Flush"},
		{"2c3c4c5c6c7d8d", "Straight Flush, Six high"},
		{"As2s3s4s5sKhKd", "Straight Flush, Five high"},
		{"9c9d9h9sKcKdAh", "Four of a Kind, Nines"},
		{"2c3c2d3d2h7h9s", "Full House, Twos full of Threes"},
		{"6c6d6h8c8dAsKd", "Full House, Sixes full of Eights"},
		{"AsKsQs8s6s4h3h", "Flush, Ace high"},
		{"2c3d4h5s6c7d8h", "Straight, Eight high"},
		{"Ac2d3h4s5cKhQd", "Straight, Five high"},
		{"QcQdQh2c5d8hTs", "Three of a Kind, Queens"},
		{"2c2d7c7dJcJd3h", "Two Pair, Jacks and Sevens"},
		{"4c4dKh9c7d3h2s", "Pair of Fours"},
		{"2c4d6h8cTdQhKs", "High Card, King"},
	}

	for _, tt := range tests {
		if got := e.Describe(MustParseHand(tt.cards)); got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.cards, got, tt.want)
		}
	}
}
