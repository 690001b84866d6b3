package screening

// QuestionCount is the number of questionnaire items.
const QuestionCount = 10

// Questions are the fixed questionnaire items. Order is load-bearing: the
// classifier reads responses positionally.
var Questions = [QuestionCount]string{
	"S/he often notices small sounds when others do not",
	"S/he usually concentrates more on the whole picture, rather than the small details",
	"In a social group, s/he can easily keep track of several different people's conversations",
	"S/he finds it easy to go back and forth between different activities",
	"S/he doesn't know how to keep a conversation going with his/her peers",
	"S/he is good at social chit-chat",
	"When s/he is read a story, s/he finds it difficult to work out the character's intentions or feelings",
	"When s/he was in preschool, s/he used to enjoy playing games involving pretending with other children",
	"S/he finds it easy to work out what someone is thinking or feeling just by looking at their face",
	"S/he finds it hard to make new friends",
}
