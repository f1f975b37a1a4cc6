package deck

// Point values and ranking powers, indexed by Rank. The trump tables elevate
// the Jack and the Nine above every other card.
var (
	plainValues = [...]int{
		Six: 0, Seven: 0, Eight: 0, Nine: 0, Ten: 10,
		Jack: 2, Queen: 3, King: 4, Ace: 11,
	}
	trumpValues = [...]int{
		Six: 0, Seven: 0, Eight: 0, Nine: 14, Ten: 10,
		Jack: 20, Queen: 3, King: 4, Ace: 11,
	}
	plainPowers = [...]int{
		Six: 0, Seven: 1, Eight: 2, Nine: 3, Ten: 4,
		Jack: 5, Queen: 6, King: 7, Ace: 8,
	}
	trumpPowers = [...]int{
		Six: 10, Seven: 11, Eight: 12, Nine: 17, Ten: 13,
		Jack: 18, Queen: 14, King: 15, Ace: 16,
	}
)

// Value returns the point value of a card for trick and meld scoring
func Value(c Card, isTrump bool) int {
	if isTrump {
		return trumpValues[c.Rank]
	}
	return plainValues[c.Rank]
}

// Power returns the ranking power of a card, used to decide who wins a trick
func Power(c Card, isTrump bool) int {
	return RankPower(c.Rank, isTrump)
}

// RankPower returns the ranking power of a rank
func RankPower(r Rank, isTrump bool) int {
	if isTrump {
		return trumpPowers[r]
	}
	return plainPowers[r]
}

// TotalPoints returns the sum of all card values in a full deck for the given
// trump suit, excluding the last trick bonus.
func TotalPoints(trump Suit) int {
	total := 0
	for _, s := range Suits() {
		for _, r := range Ranks() {
			total += Value(NewCard(s, r), s == trump)
		}
	}
	return total
}
