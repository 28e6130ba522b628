package rewrite

// vocabulary is the fixed, ordered list of replacement spellings. Bad names
// receive entries by discovery index modulo its length; past 24 names the
// spellings repeat, which is accepted policy.
var vocabulary = [...]string{
	"yourmom", "yOurMom", "YourMom", "yourMom", "YOURMOM",
	"YouRmOm", "yOuRmOm", "YoUrMoM", "yourmOM", "YOURmom",
	"YoUrMoThEr", "yourmother", "YourMother", "YOURMOTHER",
	"yOuRmOtHeR", "yourmommy", "YourMommy", "YOURMOMMY",
	"urmom", "UrMom", "URMOM", "yomama", "YoMama", "YOMAMA",
}

// VocabularySize is the number of distinct replacement spellings.
const VocabularySize = len(vocabulary)

// VocabularyAt returns the spelling for assignment index i (i >= 0).
func VocabularyAt(i int) string {
	return vocabulary[i%VocabularySize]
}
