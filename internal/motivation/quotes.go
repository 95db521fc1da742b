package motivation

import (
	"math/rand/v2"
	"time"
)

// Quote is an inspirational quote with attribution.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Quotes is the built-in quote collection.
var Quotes = []Quote{
	// Growth & learning
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"The secret of getting ahead is getting started.", "Mark Twain"},

	// Habits & consistency
	{"We are what we repeatedly do. Excellence, then, is not an act, but a habit.", "Aristotle"},
	{"Small daily improvements over time lead to stunning results.", "Robin Sharma"},
	{"Motivation is what gets you started. Habit is what keeps you going.", "Jim Rohn"},
	{"The chains of habit are too weak to be felt until they are too strong to be broken.", "Samuel Johnson"},
	{"Success is the sum of small efforts, repeated day in and day out.", "Robert Collier"},

	// Mindset
	{"Your limitation is only your imagination.", "Unknown"},
	{"Push yourself, because no one else is going to do it for you.", "Unknown"},
	{"Great things never come from comfort zones.", "Unknown"},
	{"Dream it. Wish it. Do it.", "Unknown"},
	{"Wake up with determination. Go to bed with satisfaction.", "Unknown"},

	// Action & progress
	{"Don't wait for opportunity. Create it.", "Unknown"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Unknown"},
	{"Don't stop when you're tired. Stop when you're done.", "Unknown"},
	{"Little things make big days.", "Unknown"},
	{"It's going to be hard, but hard does not mean impossible.", "Unknown"},

	// Self-belief
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"You are never too old to set another goal or to dream a new dream.", "C.S. Lewis"},
	{"What you get by achieving your goals is not as important as what you become by achieving your goals.", "Zig Ziglar"},
	{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson"},
	{"Do something today that your future self will thank you for.", "Unknown"},

	// Focus & discipline
	{"Focus on being productive instead of busy.", "Tim Ferriss"},
	{"Don't count the days, make the days count.", "Muhammad Ali"},
	{"Your daily routine is your daily ritual.", "Unknown"},
	{"Discipline is the bridge between goals and accomplishment.", "Jim Rohn"},
	{"The way to get started is to quit talking and begin doing.", "Walt Disney"},

	// Personal growth
	{"Become the person who would attract the results you seek.", "Jim Cathcart"},
	{"Growth is never by mere chance; it is the result of forces working together.", "James Cash Penney"},
	{"Change your thoughts and you change your world.", "Norman Vincent Peale"},
	{"The only impossible journey is the one you never begin.", "Tony Robbins"},
	{"Invest in yourself. It pays the best interest.", "Benjamin Franklin"},
}

// RandomQuote picks any quote using the given source.
func RandomQuote(rng *rand.Rand) Quote {
	return Quotes[rng.IntN(len(Quotes))]
}

// DailyQuote returns the quote for a given day. It is a pure function
// of the date: every call on the same calendar day returns the same
// quote.
func DailyQuote(t time.Time) Quote {
	return Quotes[t.YearDay()%len(Quotes)]
}
