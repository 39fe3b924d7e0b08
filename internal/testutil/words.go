package testutil

// EnglishWords is a small lowercase word list for the "en" locale
var EnglishWords = []string{
	"at", "be", "do", "go", "he", "if", "in", "is", "it", "me",
	"my", "no", "of", "on", "or", "so", "to", "up", "us", "we",
	"act", "and", "ant", "arc", "art", "ate", "bat", "cab", "can", "cap",
	"car", "cat", "eat", "sat", "sea", "tab", "tan", "tap", "tar", "tea",
	"ten", "the", "toe", "ton",
	"acts", "cars", "cart", "cast", "cats", "coat", "east", "eats", "neat", "scat",
	"seat", "star", "tact", "taco", "tear", "team",
	"carts", "coast", "coats", "react", "scare", "stare", "taste", "trace",
	"crates", "stance", "traces",
}

// ItalianWords is a small word list in the form of an Italian dictionary file,
// accents and capitalised proper nouns included
var ItalianWords = []string{
	"casa", "cane", "gatto", "città", "perché", "più", "caffè", "tè",
	"mare", "sole", "scarabeo", "scarabei", "Roma", "Milano", "x",
}
