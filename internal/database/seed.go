package database

// DefaultQuotes is the starter quote set loaded by the seed command.
// Seeding is idempotent: quotes are matched by text, so re-running the seed
// never duplicates records.
var DefaultQuotes = []Quote{
	// Motivation
	{Text: "The only way to do great work is to love what you do.", Author: "Steve Jobs", Category: "Motivation"},
	{Text: "Innovation distinguishes between a leader and a follower.", Author: "Steve Jobs", Category: "Motivation"},
	{Text: "Life is what happens when you're busy making other plans.", Author: "John Lennon", Category: "Motivation"},
	{Text: "The future belongs to those who believe in the beauty of their dreams.", Author: "Eleanor Roosevelt", Category: "Motivation"},

	// Success
	{Text: "Success is not final, failure is not fatal.", Author: "Winston Churchill", Category: "Success"},
	{Text: "It is during our darkest moments that we must focus to see the light.", Author: "Aristotle", Category: "Success"},
	{Text: "The only impossible journey is the one you never begin.", Author: "Tony Robbins", Category: "Success"},
	{Text: "Success usually comes to those who are too busy to be looking for it.", Author: "Henry David Thoreau", Category: "Success"},

	// Wisdom
	{Text: "The only true wisdom is in knowing you know nothing.", Author: "Socrates", Category: "Wisdom"},
	{Text: "An unexamined life is not worth living.", Author: "Socrates", Category: "Wisdom"},
	{Text: "The mind is everything. What you think, you become.", Author: "Buddha", Category: "Wisdom"},
	{Text: "Do not dwell in the past, do not dream of the future, concentrate the mind on the present moment.", Author: "Buddha", Category: "Wisdom"},

	// Courage
	{Text: "Courage is not the absence of fear, but rather the assessment that something else is more important than fear.", Author: "Franklin D. Roosevelt", Category: "Courage"},
	{Text: "You gain strength, courage, and confidence by every experience.", Author: "Eleanor Roosevelt", Category: "Courage"},
	{Text: "Brave is the lion that roars; braver still is the one that rises after falling.", Author: "Unknown", Category: "Courage"},

	// Friendship
	{Text: "A friend is one who knows you and loves you just the same.", Author: "Elbert Hubbard", Category: "Friendship"},
	{Text: "True friendship is not about being inseparable, it's about being separated and nothing changes.", Author: "Unknown", Category: "Friendship"},
	{Text: "In the end, we will remember not the words of our enemies, but the silence of our friends.", Author: "Martin Luther King Jr.", Category: "Friendship"},

	// Love
	{Text: "The heart wants what it wants.", Author: "Woody Allen", Category: "Love"},
	{Text: "Love all, trust a few, do wrong to none.", Author: "William Shakespeare", Category: "Love"},
	{Text: "Love is the bridge between two hearts.", Author: "Unknown", Category: "Love"},
}
