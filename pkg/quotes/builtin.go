package quotes

var builtin = []Quote{
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney", Category: CategoryProductivity},
	{Text: "Focus on being productive instead of busy.", Author: "Tim Ferriss", Category: CategoryFocus},
	{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle", Category: CategoryFocus},
	{Text: "Productivity is never an accident. It is always the result of a commitment to excellence.", Author: "Paul J. Meyer", Category: CategoryProductivity},
	{Text: "The successful warrior is the average man with laser-like focus.", Author: "Bruce Lee", Category: CategoryFocus},
	{Text: "Time is what we want most, but what we use worst.", Author: "William Penn", Category: CategoryProductivity},
	{Text: "You may delay, but time will not.", Author: "Benjamin Franklin", Category: CategoryProductivity},
	{Text: "The key is not to prioritize what's on your schedule, but to schedule your priorities.", Author: "Stephen Covey", Category: CategoryProductivity},
	{Text: "Concentrate all your thoughts upon the work at hand. The sun's rays do not burn until brought to a focus.", Author: "Alexander Graham Bell", Category: CategoryFocus},
	{Text: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier", Category: CategorySuccess},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson", Category: CategoryMotivation},
	{Text: "The future depends on what you do today.", Author: "Mahatma Gandhi", Category: CategoryMotivation},
	{Text: "Start where you are. Use what you have. Do what you can.", Author: "Arthur Ashe", Category: CategoryMotivation},
	{Text: "It's not about time, it's about choices. How are you spending your choices?", Author: "Beverly Adamo", Category: CategoryProductivity},
	{Text: "Your limitation: it's only your imagination.", Author: "Unknown", Category: CategoryMotivation},
	{Text: "Push yourself, because no one else is going to do it for you.", Author: "Unknown", Category: CategoryMotivation},
	{Text: "Great things never come from comfort zones.", Author: "Unknown", Category: CategoryMotivation},
	{Text: "Dream it. Wish it. Do it.", Author: "Unknown", Category: CategoryMotivation},
	{Text: "Success doesn't just find you. You have to go out and get it.", Author: "Unknown", Category: CategorySuccess},
	{Text: "The harder you work for something, the greater you'll feel when you achieve it.", Author: "Unknown", Category: CategorySuccess},
}

// Builtin returns a copy of the built-in quote list.
func Builtin() []Quote {
	return append([]Quote(nil), builtin...)
}
