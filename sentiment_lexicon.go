package tweetsense

// SentimentLexicon holds the fixed word sets used by the lexicon scorer. It is
// never mutated after construction and is safe for concurrent use.
type SentimentLexicon struct {
	positive     map[string]bool
	negative     map[string]bool
	negations    map[string]bool
	intensifiers map[string]bool
}

// DefaultLexicon returns the built-in English lexicon
func DefaultLexicon() *SentimentLexicon {
	return defaultLexicon
}

// IsPositive reports whether word is in the positive set
func (sl *SentimentLexicon) IsPositive(word string) bool {
	return sl.positive[word]
}

// IsNegative reports whether word is in the negative set
func (sl *SentimentLexicon) IsNegative(word string) bool {
	return sl.negative[word]
}

// IsNegation reports whether word flips the polarity of the next word
func (sl *SentimentLexicon) IsNegation(word string) bool {
	return sl.negations[word]
}

// IsIntensifier reports whether word amplifies the next word
func (sl *SentimentLexicon) IsIntensifier(word string) bool {
	return sl.intensifiers[word]
}

// Size returns the number of positive and negative entries
func (sl *SentimentLexicon) Size() (positive, negative int) {
	return len(sl.positive), len(sl.negative)
}

var defaultLexicon = &SentimentLexicon{
	positive:     makeSet(positiveWords...),
	negative:     makeSet(negativeWords...),
	negations:    makeSet(negationWords...),
	intensifiers: makeSet(intensifierWords...),
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic", "awesome", "love", "like",
	"happy", "joy", "pleased", "satisfied", "perfect", "best", "outstanding", "brilliant",
	"superb", "terrific", "fabulous", "incredible", "unbelievable", "stunning", "beautiful",
	"gorgeous", "magnificent", "splendid", "marvelous", "delightful", "charming", "lovely",
	"sweet", "nice", "kind", "generous", "helpful", "supportive", "encouraging", "inspiring",
	"motivating", "exciting", "thrilling", "wow", "yay", "yes", "agree", "support", "back",
	"favorite", "favourite", "win", "winner", "winning", "success", "successful", "achieve",
	"achievement", "goal", "dream", "hope", "wish", "blessed", "grateful", "thankful",
	"appreciate", "enjoy", "fun", "entertaining", "hilarious", "funny", "laugh", "smile", "grin",
	"cheer", "celebrate", "party", "festival", "holiday", "vacation", "trip", "journey",
	"adventure", "explore", "discover", "learn", "grow", "improve", "better", "upgrade", "enhance",
	"boost", "increase", "rise", "gain", "profit", "benefit", "advantage", "opportunity", "chance",
	"luck", "fortune", "wealth", "rich", "money", "cash", "gold", "diamond", "precious",
	"valuable", "treasure", "gem", "jewel", "crown", "king", "queen", "prince", "princess", "hero",
	"heroine", "champion", "legend", "icon", "star", "celebrity", "famous", "popular", "trending",
	"viral", "hit", "smash", "blockbuster", "phenomenon", "sensation",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "dreadful", "disgusting", "nasty", "hate", "dislike",
	"sad", "angry", "mad", "furious", "upset", "disappointed", "frustrated", "annoyed",
	"irritated", "bothered", "worried", "anxious", "nervous", "scared", "afraid", "fearful",
	"terrified", "horrified", "shocked", "stunned", "surprised", "confused", "puzzled", "lost",
	"helpless", "hopeless", "desperate", "depressed", "miserable", "unhappy", "sorrow", "grief",
	"pain", "hurt", "injured", "sick", "ill", "disease", "virus", "infection", "cancer", "death",
	"die", "dead", "kill", "murder", "suicide", "accident", "crash", "disaster", "catastrophe",
	"tragedy", "crisis", "emergency", "danger", "dangerous", "risky", "threat", "threatening",
	"attack", "war", "battle", "fight", "conflict", "argument", "dispute", "quarrel", "violence",
	"abuse", "bully", "harass", "stalk", "threaten", "intimidate", "scare", "frighten", "terrify",
	"horrify", "shock", "stun", "surprise", "confuse", "puzzle", "mislead", "deceive", "lie",
	"fake", "fraud", "scam", "cheat", "steal", "rob", "burglar", "thief", "criminal", "illegal",
	"unlawful", "forbidden", "banned", "prohibited", "restricted", "limited", "blocked",
	"censored", "hidden", "secret", "private", "confidential", "sensitive", "vulnerable", "weak",
	"fragile", "delicate", "tender", "sore", "painful", "hurtful", "harmful", "damaging",
	"destructive", "ruinous", "devastating", "catastrophic", "disastrous", "tragic", "unfortunate",
	"unlucky", "misfortune", "curse", "doom", "fate", "destiny",
}

// Tokens are cleaned before lookup, so contractions appear without apostrophes.
var negationWords = []string{
	"not", "no", "never", "none", "nobody", "nothing", "neither", "nowhere", "hardly", "barely",
	"scarcely", "rarely", "seldom", "doesnt", "dont", "didnt", "wont", "wouldnt", "cant",
	"couldnt", "shouldnt", "isnt", "arent", "wasnt", "werent", "hasnt", "havent", "hadnt",
	"mightnt", "mustnt", "shant",
}

var intensifierWords = []string{
	"very", "really", "extremely", "absolutely", "completely", "totally", "entirely", "thoroughly",
	"utterly", "perfectly", "definitely", "certainly", "surely", "indeed", "truly", "genuinely",
	"honestly", "seriously", "literally", "actually", "quite", "rather", "pretty", "fairly",
	"somewhat", "so", "such", "too", "enough", "more", "most", "least", "less", "fewer", "many",
	"much", "lots", "tons", "loads",
}
